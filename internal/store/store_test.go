package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naijaemissions/emissions-station/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Vehicle{}, &models.TestResult{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRecord(t *testing.T, s *Store, plate, number string) *models.TestResult {
	t.Helper()
	v := models.Vehicle{VIN: "1HGBH41JXMN109186", LicensePlate: plate, Make: "Toyota", Model: "Corolla", Year: 2018, OwnerName: "Owner", OwnerPhone: "08012345678"}
	if _, err := s.InsertVehicle(&v); err != nil {
		t.Fatalf("insert vehicle: %v", err)
	}
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tr := models.TestResult{
		VehicleID: v.ID, TestDate: day, COLevel: 3.2, HCLevel: 800, NOxLevel: 2500, PMLevel: 1.8,
		Status: "PASS", CertificateNumber: number, QRPayload: "{}", ValidUntil: day.AddDate(1, 0, 0),
	}
	if _, err := s.InsertTestResult(&tr); err != nil {
		t.Fatalf("insert test result: %v", err)
	}
	return &tr
}

func TestDuplicateCertificateNumberRejected(t *testing.T) {
	s := New(setupTestDB(t))
	first := seedRecord(t, s, "ABC123DE", "NIG-2026-000001")
	dup := models.TestResult{
		VehicleID: first.VehicleID, TestDate: first.TestDate, Status: "PASS",
		CertificateNumber: "NIG-2026-000001", QRPayload: "{}", ValidUntil: first.ValidUntil,
	}
	_, err := s.InsertTestResult(&dup)
	if err == nil {
		t.Fatalf("expected unique violation, second insert succeeded")
	}
	if !IsUniqueViolation(err, "test_results.certificate_number") {
		t.Fatalf("expected certificate unique violation got %v", err)
	}
}

func TestDuplicateLicensePlateRejected(t *testing.T) {
	s := New(setupTestDB(t))
	seedRecord(t, s, "ABC123DE", "NIG-2026-000001")
	v := models.Vehicle{VIN: "2HGBH41JXMN109186", LicensePlate: "ABC123DE", Make: "Honda", Model: "Civic", Year: 2020, OwnerName: "Other", OwnerPhone: "08012345679"}
	if _, err := s.InsertVehicle(&v); !IsUniqueViolation(err, "vehicles.license_plate") {
		t.Fatalf("expected plate unique violation got %v", err)
	}
}

func TestInsertTestResultUnknownVehicleRejected(t *testing.T) {
	s := New(setupTestDB(t))
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	tr := models.TestResult{
		VehicleID: 9999, TestDate: day, COLevel: 3.2, HCLevel: 800, NOxLevel: 2500, PMLevel: 1.8,
		Status: "PASS", CertificateNumber: "NIG-2026-000042", QRPayload: "{}", ValidUntil: day.AddDate(1, 0, 0),
	}
	if _, err := s.InsertTestResult(&tr); err == nil {
		t.Fatalf("expected foreign key violation, insert succeeded")
	}
}

func TestRecentOrderedNewestFirst(t *testing.T) {
	s := New(setupTestDB(t))
	seedRecord(t, s, "AAA111AA", "NIG-2026-000001")
	seedRecord(t, s, "BBB222BB", "NIG-2026-000002")
	seedRecord(t, s, "CCC333CC", "NIG-2026-000003")

	results, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results got %d", len(results))
	}
	if results[0].ID < results[1].ID {
		t.Fatalf("expected newest first, got ids %d then %d", results[0].ID, results[1].ID)
	}
	if results[0].Vehicle.LicensePlate == "" {
		t.Fatalf("expected joined vehicle data")
	}
}

func TestSearchByPlateSubstring(t *testing.T) {
	s := New(setupTestDB(t))
	seedRecord(t, s, "ABC123DE", "NIG-2026-000001")
	seedRecord(t, s, "XYZ987FG", "NIG-2026-000002")

	results, err := s.Search("abc")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Vehicle.LicensePlate != "ABC123DE" {
		t.Fatalf("unexpected search results: %#v", results)
	}

	byCert, err := s.Search("000002")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byCert) != 1 || byCert[0].CertificateNumber != "NIG-2026-000002" {
		t.Fatalf("unexpected certificate search results: %#v", byCert)
	}

	none, err := s.Search("ZZZZZZ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result got %d", len(none))
	}
}

func TestByCertificateNumberAndByTestID(t *testing.T) {
	s := New(setupTestDB(t))
	created := seedRecord(t, s, "ABC123DE", "NIG-2026-000001")

	rec, err := s.ByCertificateNumber("NIG-2026-000001")
	if err != nil {
		t.Fatalf("by certificate: %v", err)
	}
	if rec.ID != created.ID || rec.Vehicle.VIN != "1HGBH41JXMN109186" {
		t.Fatalf("unexpected record: %#v", rec)
	}

	byID, err := s.ByTestID(created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID.CertificateNumber != "NIG-2026-000001" {
		t.Fatalf("unexpected record: %#v", byID)
	}

	if _, err := s.ByCertificateNumber("NIG-2026-999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	if _, err := s.ByTestID(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
