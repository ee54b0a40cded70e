package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/naijaemissions/emissions-station/internal/certificate"
	"github.com/naijaemissions/emissions-station/internal/emissions"
	"github.com/naijaemissions/emissions-station/internal/models"
	"github.com/naijaemissions/emissions-station/internal/store"
	"github.com/naijaemissions/emissions-station/internal/validation"
)

var (
	ErrDuplicatePlate       = errors.New("a vehicle with this license plate is already registered")
	ErrCertificateExhausted = fmt.Errorf("could not allocate a unique certificate number after %d attempts", certificate.MaxAttempts)
)

// ValidationError carries the field-level messages for a rejected submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// SubmissionResult is the outcome of a successful test submission.
type SubmissionResult struct {
	TestID            uint   `json:"test_id"`
	VehicleID         uint   `json:"vehicle_id"`
	CertificateNumber string `json:"certificate_number"`
	Status            string `json:"pass_fail_status"`
}

// TestingService runs the submission flow: validate, evaluate, issue a
// certificate number, and persist vehicle plus test result in one transaction.
type TestingService struct {
	Store   *store.Store
	BaseURL string
	// Now and NewNumber are injection points for tests; nil means real clock
	// and random generation.
	Now       func() time.Time
	NewNumber func(time.Time) string
}

func NewTestingService(s *store.Store, baseURL string) *TestingService {
	return &TestingService{Store: s, BaseURL: baseURL, Now: time.Now, NewNumber: certificate.NewNumber}
}

// Submit validates the input, computes the verdict, and writes the vehicle and
// test result atomically. Both rows commit together: a certificate-number
// collision inside the transaction regenerates the number instead of leaving
// an orphan vehicle behind.
func (s *TestingService) Submit(in validation.Submission) (*SubmissionResult, error) {
	if msgs := validation.ValidateSubmission(in); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	now := s.Now()
	testDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	validUntil := testDate.AddDate(1, 0, 0)

	vehicle := models.Vehicle{
		VIN:          strings.ToUpper(in.VIN),
		LicensePlate: strings.ToUpper(in.LicensePlate),
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		OwnerName:    in.OwnerName,
		OwnerPhone:   in.OwnerPhone,
	}
	result := models.TestResult{
		TestDate:   testDate,
		COLevel:    in.COLevel,
		HCLevel:    in.HCLevel,
		NOxLevel:   in.NOxLevel,
		PMLevel:    in.PMLevel,
		Status:     emissions.Evaluate(in.COLevel, in.HCLevel, in.NOxLevel, in.PMLevel),
		ValidUntil: validUntil,
	}

	err := s.Store.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vehicle).Error; err != nil {
			if store.IsUniqueViolation(err, "vehicles.license_plate") {
				return ErrDuplicatePlate
			}
			return err
		}
		result.VehicleID = vehicle.ID

		for attempt := 0; attempt < certificate.MaxAttempts; attempt++ {
			result.ID = 0
			result.CertificateNumber = s.NewNumber(now)
			payload, err := certificate.NewPayload(result.CertificateNumber, vehicle.LicensePlate, testDate, validUntil, s.BaseURL).Encode()
			if err != nil {
				return err
			}
			result.QRPayload = payload

			err = tx.Omit("Vehicle").Create(&result).Error
			if err == nil {
				return nil
			}
			if !store.IsUniqueViolation(err, "test_results.certificate_number") {
				return err
			}
		}
		return ErrCertificateExhausted
	})
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{
		TestID:            result.ID,
		VehicleID:         vehicle.ID,
		CertificateNumber: result.CertificateNumber,
		Status:            result.Status,
	}, nil
}
