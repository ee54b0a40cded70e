package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naijaemissions/emissions-station/internal/httpx"
	"github.com/naijaemissions/emissions-station/internal/services"
	"github.com/naijaemissions/emissions-station/internal/store"
)

// VerifyHandler answers public certificate verification, the target of the QR
// code's verification URL.
type VerifyHandler struct {
	Svc *services.VerificationService
}

func NewVerifyHandler(svc *services.VerificationService) *VerifyHandler {
	return &VerifyHandler{Svc: svc}
}

// Verify: GET /api/verify/{certificateNumber} and GET /verify/{certificateNumber}
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "certificateNumber")
	if number == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Certificate number is required", nil)
		return
	}
	res, err := h.Svc.Verify(number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Certificate not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to fetch certificate data", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
