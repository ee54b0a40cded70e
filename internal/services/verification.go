package services

import (
	"math"
	"time"

	"github.com/naijaemissions/emissions-station/internal/models"
	"github.com/naijaemissions/emissions-station/internal/store"
)

// VerificationResult is the full joined record plus the expiry fields derived
// against the wall clock. The derived fields are never persisted.
type VerificationResult struct {
	models.TestResult
	IsExpired       bool `json:"is_expired"`
	DaysUntilExpiry int  `json:"days_until_expiry"`
}

// VerificationService answers public certificate lookups.
type VerificationService struct {
	Store *store.Store
	Now   func() time.Time
}

func NewVerificationService(s *store.Store) *VerificationService {
	return &VerificationService{Store: s, Now: time.Now}
}

// Verify looks up a certificate and recomputes its expiry status. "Today"
// advances independently of record creation, so this is derived on every call.
func (v *VerificationService) Verify(number string) (*VerificationResult, error) {
	record, err := v.Store.ByCertificateNumber(number)
	if err != nil {
		return nil, err
	}

	now := v.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	expired := today.After(record.ValidUntil)
	days := 0
	if !expired {
		days = int(math.Ceil(record.ValidUntil.Sub(today).Hours() / 24))
	}

	return &VerificationResult{TestResult: *record, IsExpired: expired, DaysUntilExpiry: days}, nil
}
