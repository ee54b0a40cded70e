package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/naijaemissions/emissions-station/internal/certificate"
	"github.com/naijaemissions/emissions-station/internal/emissions"
	"github.com/naijaemissions/emissions-station/internal/models"
)

var (
	passGreen = props.Color{Red: 34, Green: 197, Blue: 94}
	failRed   = props.Color{Red: 239, Green: 68, Blue: 68}
	white     = props.Color{Red: 255, Green: 255, Blue: 255}
)

func statusColor(status string) *props.Color {
	if status == emissions.StatusPass {
		return &passGreen
	}
	return &failRed
}

// Certificate renders the fixed-layout emissions test certificate as PDF
// bytes. The stored QR payload is decoded first; a malformed payload fails the
// render with no partial document.
func Certificate(rec *models.TestResult) ([]byte, error) {
	payload, err := certificate.DecodePayload(rec.QRPayload)
	if err != nil {
		return nil, fmt.Errorf("render certificate %s: %w", rec.CertificateNumber, err)
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(9, text.NewCol(12, "FEDERAL REPUBLIC OF NIGERIA", props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(8, text.NewCol(12, "MINISTRY OF ENVIRONMENT", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(10, text.NewCol(12, "VEHICLE EMISSIONS TEST CERTIFICATE", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Center}))

	m.AddRow(8,
		text.NewCol(9, "Certificate Number: "+rec.CertificateNumber, props.Text{Size: 11, Top: 2}),
		col.New(3).Add(text.New(rec.Status, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Center, Top: 2, Color: &white})).WithStyle(&props.Cell{BackgroundColor: statusColor(rec.Status)}),
	)
	m.AddRow(6, text.NewCol(12, "Test Date: "+rec.TestDate.Format(certificate.DateLayout), props.Text{Size: 11}))
	m.AddRow(6, text.NewCol(12, "Valid Until: "+rec.ValidUntil.Format(certificate.DateLayout), props.Text{Size: 11}))

	m.AddRow(10, text.NewCol(12, "VEHICLE INFORMATION", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}))
	addField(m, "VIN", rec.Vehicle.VIN)
	addField(m, "License Plate", rec.Vehicle.LicensePlate)
	addField(m, "Make", rec.Vehicle.Make)
	addField(m, "Model", rec.Vehicle.Model)
	addField(m, "Year", fmt.Sprintf("%d", rec.Vehicle.Year))

	m.AddRow(10, text.NewCol(12, "OWNER INFORMATION", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}))
	addField(m, "Name", rec.Vehicle.OwnerName)
	addField(m, "Phone", rec.Vehicle.OwnerPhone)

	m.AddRow(10, text.NewCol(12, "EMISSIONS TEST RESULTS", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}))
	m.AddRow(6,
		text.NewCol(4, "Parameter", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, "Result", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, "Limit", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Status", props.Text{Size: 10, Style: fontstyle.Bold}),
	)
	m.AddRows(line.NewRow(2))
	addMeasurement(m, "CO (% volume)", rec.COLevel, emissions.COLimit, "%")
	addMeasurement(m, "HC (ppm)", rec.HCLevel, emissions.HCLimit, "ppm")
	addMeasurement(m, "NOx (ppm)", rec.NOxLevel, emissions.NOxLimit, "ppm")
	addMeasurement(m, "PM (mg/m³)", rec.PMLevel, emissions.PMLimit, "mg/m³")

	m.AddRow(10, text.NewCol(8, "OVERALL RESULT: "+rec.Status, props.Text{Size: 12, Style: fontstyle.Bold, Top: 4, Color: statusColor(rec.Status)}))

	m.AddRow(42,
		col.New(8),
		code.NewQrCol(4, rec.QRPayload, props.Rect{Center: true, Percent: 90}),
	)
	m.AddRow(5, text.NewCol(12, "Scan QR code to verify: "+payload.VerificationURL, props.Text{Size: 8, Align: align.Right}))

	m.AddRow(8, text.NewCol(12, "Official Stamp: ________________________ (Testing Station Seal)", props.Text{Size: 10, Top: 4}))
	m.AddRow(5, text.NewCol(12, "This certificate is valid for 12 months from the test date.", props.Text{Size: 8, Top: 2}))
	m.AddRow(5, text.NewCol(12, "For verification, visit our website or scan the QR code.", props.Text{Size: 8}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render certificate %s: %w", rec.CertificateNumber, err)
	}
	return doc.GetBytes(), nil
}

func addField(m core.Maroto, label, value string) {
	m.AddRow(6, text.NewCol(12, label+": "+value, props.Text{Size: 10}))
}

func addMeasurement(m core.Maroto, name string, value, limit float64, unit string) {
	status := emissions.StatusPass
	if emissions.Exceeds(value, limit) {
		status = emissions.StatusFail
	}
	m.AddRows(row.New(6).Add(
		text.NewCol(4, name, props.Text{Size: 10}),
		text.NewCol(3, fmt.Sprintf("%g %s", value, unit), props.Text{Size: 10}),
		text.NewCol(3, fmt.Sprintf("<= %g %s", limit, unit), props.Text{Size: 10}),
		text.NewCol(2, status, props.Text{Size: 10, Style: fontstyle.Bold, Color: statusColor(status)}),
	))
}
