package validation

import (
	"regexp"
	"strings"
	"time"
)

// Sanity ceilings for measured values; anything above is an entry mistake, not
// a reading. These are distinct from the regulatory pass/fail limits.
const (
	MaxCO  = 10.0
	MaxHC  = 5000
	MaxNOx = 10000
	MaxPM  = 10.0
)

var (
	// 17 characters, excluding I, O and Q (no check digit verification).
	vinRegex = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	// Nigerian plate: 2-3 letters, 2-4 digits, 2 letters.
	plateRegex = regexp.MustCompile(`^[A-Z]{2,3}[0-9]{2,4}[A-Z]{2}$`)
	// Nigerian mobile numbers, international or local prefix.
	phoneRegex = regexp.MustCompile(`^(\+234|0)[7-9][0-1][0-9]{8}$`)
)

func ValidVIN(vin string) bool {
	return vinRegex.MatchString(strings.ToUpper(vin))
}

func ValidLicensePlate(plate string) bool {
	return plateRegex.MatchString(strings.ToUpper(plate))
}

func ValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(phone, " ", ""))
}

func ValidYear(year int) bool {
	return year >= 1980 && year <= time.Now().Year()
}

func ValidEmissionLevel(value, max float64) bool {
	return value >= 0 && value <= max
}

// Submission is the raw form input for one emissions test.
type Submission struct {
	VIN          string  `json:"vin"`
	LicensePlate string  `json:"license_plate"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	OwnerName    string  `json:"owner_name"`
	OwnerPhone   string  `json:"owner_phone"`
	COLevel      float64 `json:"co_level"`
	HCLevel      float64 `json:"hc_level"`
	NOxLevel     float64 `json:"nox_level"`
	PMLevel      float64 `json:"pm_level"`
}

// ValidateSubmission collects human-readable field errors. An empty slice
// means the submission may proceed to evaluation and persistence.
func ValidateSubmission(in Submission) []string {
	var errs []string
	if !ValidVIN(in.VIN) {
		errs = append(errs, "Invalid VIN format. Must be 17 characters long.")
	}
	if !ValidLicensePlate(in.LicensePlate) {
		errs = append(errs, "Invalid license plate format. Use format: ABC123DE")
	}
	if strings.TrimSpace(in.Make) == "" {
		errs = append(errs, "Vehicle make is required.")
	}
	if strings.TrimSpace(in.Model) == "" {
		errs = append(errs, "Vehicle model is required.")
	}
	if !ValidYear(in.Year) {
		errs = append(errs, "Invalid year. Must be between 1980 and current year.")
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		errs = append(errs, "Owner name is required.")
	}
	if !ValidPhoneNumber(in.OwnerPhone) {
		errs = append(errs, "Invalid phone number format. Use Nigerian format: +234XXXXXXXXX or 0XXXXXXXXX")
	}
	if !ValidEmissionLevel(in.COLevel, MaxCO) {
		errs = append(errs, "Invalid CO level.")
	}
	if !ValidEmissionLevel(in.HCLevel, MaxHC) {
		errs = append(errs, "Invalid HC level.")
	}
	if !ValidEmissionLevel(in.NOxLevel, MaxNOx) {
		errs = append(errs, "Invalid NOx level.")
	}
	if !ValidEmissionLevel(in.PMLevel, MaxPM) {
		errs = append(errs, "Invalid PM level.")
	}
	return errs
}
