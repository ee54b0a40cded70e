package certificate

import (
	"encoding/json"
	"errors"
	"time"
)

// DateLayout is the calendar-date format used in payloads and API responses.
const DateLayout = "2006-01-02"

var ErrMalformedPayload = errors.New("malformed verification payload")

// Payload is the verification data embedded in a certificate's QR code. It is
// stored on the test result as an opaque JSON blob and decoded again by the
// renderer; third parties follow VerificationURL to re-check validity.
type Payload struct {
	CertificateNumber string `json:"certificate_number"`
	LicensePlate      string `json:"license_plate"`
	TestDate          string `json:"test_date"`
	ExpiryDate        string `json:"expiry_date"`
	VerificationURL   string `json:"verification_url"`
}

// NewPayload assembles the payload for a freshly issued certificate.
func NewPayload(number, plate string, testDate, validUntil time.Time, baseURL string) Payload {
	return Payload{
		CertificateNumber: number,
		LicensePlate:      plate,
		TestDate:          testDate.Format(DateLayout),
		ExpiryDate:        validUntil.Format(DateLayout),
		VerificationURL:   baseURL + "/verify/" + number,
	}
}

func (p Payload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodePayload parses a stored payload blob. A blob that does not parse or
// lacks a certificate number is rejected; the renderer fails closed on it.
func DecodePayload(s string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Payload{}, ErrMalformedPayload
	}
	if p.CertificateNumber == "" {
		return Payload{}, ErrMalformedPayload
	}
	return p, nil
}
