package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/naijaemissions/emissions-station/internal/httpx"
	"github.com/naijaemissions/emissions-station/internal/services"
	"github.com/naijaemissions/emissions-station/internal/store"
	"github.com/naijaemissions/emissions-station/internal/validation"
)

const defaultRecentLimit = 20

// TestHandler serves the front-desk flow: submit a test, list recent results,
// search by plate or certificate number.
type TestHandler struct {
	Svc   *services.TestingService
	Store *store.Store
}

func NewTestHandler(svc *services.TestingService, st *store.Store) *TestHandler {
	return &TestHandler{Svc: svc, Store: st}
}

// Submit: POST /api/tests
func (h *TestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validation.Submission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	res, err := h.Svc.Submit(in)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.JSONError(w, http.StatusBadRequest, "Validation failed", verr.Messages)
		case errors.Is(err, services.ErrDuplicatePlate), errors.Is(err, services.ErrCertificateExhausted):
			httpx.JSONError(w, http.StatusConflict, "Failed to save vehicle data", err.Error())
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "Failed to save vehicle data", err.Error())
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"success":            true,
		"test_id":            res.TestID,
		"vehicle_id":         res.VehicleID,
		"certificate_number": res.CertificateNumber,
		"pass_fail_status":   res.Status,
	})
}

// Recent: GET /api/tests?limit=N
func (h *TestHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	results, err := h.Store.Recent(limit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to fetch test results", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, results)
}

// Search: GET /api/tests/search?q=...
func (h *TestHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	results, err := h.Store.Search(q)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to search test results", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, results)
}
