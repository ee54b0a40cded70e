package emissions

// Regulatory limits. A measurement exactly at the limit passes.
const (
	COLimit  = 4.5  // % volume
	HCLimit  = 1200 // ppm
	NOxLimit = 3000 // ppm
	PMLimit  = 2.5  // mg/m³
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Evaluate maps the four measured pollutant levels to a PASS/FAIL verdict.
// Pure and total over non-negative inputs; callers validate ranges beforehand.
func Evaluate(co, hc, nox, pm float64) string {
	if co <= COLimit && hc <= HCLimit && nox <= NOxLimit && pm <= PMLimit {
		return StatusPass
	}
	return StatusFail
}

// Exceeds reports whether a single measurement is over its limit. Used by the
// certificate renderer for the per-pollutant status column.
func Exceeds(value, limit float64) bool {
	return value > limit
}
