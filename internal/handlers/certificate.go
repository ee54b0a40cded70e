package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/naijaemissions/emissions-station/internal/httpx"
	"github.com/naijaemissions/emissions-station/internal/pdf"
	"github.com/naijaemissions/emissions-station/internal/store"
)

// CertificateHandler streams the rendered certificate document for download.
type CertificateHandler struct {
	Store *store.Store
}

func NewCertificateHandler(st *store.Store) *CertificateHandler {
	return &CertificateHandler{Store: st}
}

// Download: GET /api/certificate/{id}
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Test ID is required", nil)
		return
	}
	rec, err := h.Store.ByTestID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Certificate not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to fetch certificate data", nil)
		return
	}
	data, err := pdf.Certificate(rec)
	if err != nil {
		log.Printf("certificate render failed id=%d: %v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to generate certificate PDF", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Certificate_`+rec.CertificateNumber+`.pdf"`)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
