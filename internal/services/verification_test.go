package services

import (
	"errors"
	"testing"
	"time"

	"github.com/naijaemissions/emissions-station/internal/store"
)

func TestVerifyFreshCertificate(t *testing.T) {
	svc, st := newTestingService(t)
	day := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	svc.Now = func() time.Time { return day }
	res, err := svc.Submit(submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	verify := NewVerificationService(st)
	verify.Now = svc.Now
	out, err := verify.Verify(res.CertificateNumber)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if out.IsExpired {
		t.Fatalf("just-issued certificate reported expired")
	}
	if out.DaysUntilExpiry != 365 {
		t.Fatalf("expected 365 days until expiry got %d", out.DaysUntilExpiry)
	}
	if out.Vehicle.LicensePlate != "ABC123DE" || out.CertificateNumber != res.CertificateNumber {
		t.Fatalf("expected full joined record, got %#v", out)
	}
}

func TestVerifyLeapYearValidity(t *testing.T) {
	// validity is calendar-year addition, not a fixed 365-day offset
	svc, st := newTestingService(t)
	svc.Now = func() time.Time { return time.Date(2027, 9, 1, 12, 0, 0, 0, time.UTC) }
	res, err := svc.Submit(submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	verify := NewVerificationService(st)
	verify.Now = svc.Now
	out, err := verify.Verify(res.CertificateNumber)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	// 2027-09-01 → 2028-09-01 spans the 2028-02-29 leap day
	if out.DaysUntilExpiry != 366 {
		t.Fatalf("expected 366 days across leap year got %d", out.DaysUntilExpiry)
	}
}

func TestVerifyExpiredCertificate(t *testing.T) {
	svc, st := newTestingService(t)
	svc.Now = func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }
	res, err := svc.Submit(submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	verify := NewVerificationService(st)
	verify.Now = func() time.Time { return time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC) }
	out, err := verify.Verify(res.CertificateNumber)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !out.IsExpired {
		t.Fatalf("expected expired certificate")
	}
	if out.DaysUntilExpiry != 0 {
		t.Fatalf("expected 0 days for expired certificate got %d", out.DaysUntilExpiry)
	}
}

func TestVerifyOnExpiryDayStillValid(t *testing.T) {
	svc, st := newTestingService(t)
	svc.Now = func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }
	res, err := svc.Submit(submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	verify := NewVerificationService(st)
	verify.Now = func() time.Time { return time.Date(2026, 1, 15, 23, 0, 0, 0, time.UTC) }
	out, err := verify.Verify(res.CertificateNumber)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if out.IsExpired {
		t.Fatalf("certificate should remain valid through its end date")
	}
	if out.DaysUntilExpiry != 0 {
		t.Fatalf("expected 0 remaining days on the end date got %d", out.DaysUntilExpiry)
	}
}

func TestVerifyUnknownCertificate(t *testing.T) {
	_, st := newTestingService(t)
	verify := NewVerificationService(st)
	if _, err := verify.Verify("NIG-2026-999999"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
