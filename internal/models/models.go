package models

import "time"

// Vehicle is created once at test submission and never updated. The VIN and
// license plate are stored upper-cased; the plate is unique across the station.
type Vehicle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	VIN          string    `gorm:"not null" json:"vin"`
	LicensePlate string    `gorm:"not null;uniqueIndex" json:"license_plate"`
	Make         string    `gorm:"not null" json:"make"`
	Model        string    `gorm:"not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	OwnerName    string    `gorm:"not null" json:"owner_name"`
	OwnerPhone   string    `gorm:"not null" json:"owner_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

// TestResult is a single emissions test. Re-tests are new rows referencing the
// same vehicle, never updates. Status, CertificateNumber and ValidUntil are
// computed at creation time and immutable afterwards.
type TestResult struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	VehicleID         uint      `gorm:"not null;index" json:"vehicle_id"`
	Vehicle           Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle"`
	TestDate          time.Time `gorm:"not null" json:"test_date"`
	COLevel           float64   `gorm:"column:co_level;not null" json:"co_level"`   // % volume
	HCLevel           float64   `gorm:"column:hc_level;not null" json:"hc_level"`   // ppm
	NOxLevel          float64   `gorm:"column:nox_level;not null" json:"nox_level"` // ppm
	PMLevel           float64   `gorm:"column:pm_level;not null" json:"pm_level"`   // mg/m³
	Status            string    `gorm:"not null" json:"pass_fail_status"` // PASS or FAIL
	CertificateNumber string    `gorm:"not null;uniqueIndex" json:"certificate_number"`
	QRPayload         string    `gorm:"not null" json:"qr_payload"`
	ValidUntil        time.Time `gorm:"not null" json:"validity_period"`
	CreatedAt         time.Time `json:"created_at"`
}
