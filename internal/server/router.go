package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/naijaemissions/emissions-station/internal/handlers"
	"github.com/naijaemissions/emissions-station/internal/httpx"
	"github.com/naijaemissions/emissions-station/internal/services"
	"github.com/naijaemissions/emissions-station/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, baseURL string) http.Handler {
	st := store.New(db)
	th := handlers.NewTestHandler(services.NewTestingService(st, baseURL), st)
	vh := handlers.NewVerifyHandler(services.NewVerificationService(st))
	ch := handlers.NewCertificateHandler(st)

	r := chi.NewRouter()
	r.Use(withLogging, withRecover)

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	r.Route("/api", func(r chi.Router) {
		r.Post("/tests", th.Submit)
		r.Get("/tests", th.Recent)
		r.Get("/tests/search", th.Search)
		r.Get("/certificate/{id}", ch.Download)
		r.Get("/verify/{certificateNumber}", vh.Verify)
	})

	// public target of the QR code's verification URL
	r.Get("/verify/{certificateNumber}", vh.Verify)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeFile(w, r, "openapi.yaml")
	})

	return r
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
