package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/naijaemissions/emissions-station/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Store wraps the gorm handle with the record queries the station needs.
// Vehicles and test results are insert-only; uniqueness of plates and
// certificate numbers is enforced by the schema's unique indexes.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// InsertVehicle persists a new vehicle and returns its assigned id.
func (s *Store) InsertVehicle(v *models.Vehicle) (uint, error) {
	if err := s.DB.Create(v).Error; err != nil {
		return 0, err
	}
	return v.ID, nil
}

// InsertTestResult persists a new test result. The unique certificate index
// and the vehicle foreign key reject collisions and dangling references. The
// Vehicle association is never written through this path.
func (s *Store) InsertTestResult(t *models.TestResult) (uint, error) {
	if err := s.DB.Omit("Vehicle").Create(t).Error; err != nil {
		return 0, err
	}
	return t.ID, nil
}

// Recent returns the newest-created test results joined with their vehicles.
func (s *Store) Recent(limit int) ([]models.TestResult, error) {
	if limit <= 0 {
		limit = 20
	}
	var results []models.TestResult
	err := s.DB.Preload("Vehicle").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// Search returns joined records whose license plate or certificate number
// contains the query. Plates and certificate numbers are stored upper-cased,
// so the query is upper-cased before matching.
func (s *Store) Search(query string) ([]models.TestResult, error) {
	like := "%" + strings.ToUpper(strings.TrimSpace(query)) + "%"
	var results []models.TestResult
	err := s.DB.Preload("Vehicle").
		Joins("JOIN vehicles ON vehicles.id = test_results.vehicle_id").
		Where("vehicles.license_plate LIKE ? OR test_results.certificate_number LIKE ?", like, like).
		Order("test_results.created_at DESC, test_results.id DESC").
		Find(&results).Error
	return results, err
}

// ByCertificateNumber returns the single joined record for a certificate.
func (s *Store) ByCertificateNumber(number string) (*models.TestResult, error) {
	var result models.TestResult
	err := s.DB.Preload("Vehicle").
		Where("certificate_number = ?", number).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ByTestID returns the single joined record for a test result id.
func (s *Store) ByTestID(id uint) (*models.TestResult, error) {
	var result models.TestResult
	err := s.DB.Preload("Vehicle").First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// IsUniqueViolation reports whether err is a unique-constraint failure on the
// given column (sqlite phrases these as "UNIQUE constraint failed: table.col").
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}
