package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
)

type RouterConfig struct {
	Service *clinic.Service
	Logger  zerolog.Logger
	PgPool  *pgxpool.Pool // nil when running on the in-memory store
	Redis   *redis.Client // nil when local locking is in use
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(Recoverer(cfg.Logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})

	r.Get("/", welcomeHandler())

	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	svc := cfg.Service

	r.Route("/api/appointments", func(r chi.Router) {
		r.Get("/", listAppointmentsHandler(svc))
		r.Post("/schedule", bookAppointmentHandler(svc))
		r.Get("/available-slots", availableSlotsHandler(svc))
		r.Get("/{id}", getAppointmentHandler(svc))
		r.Put("/{id}", editAppointmentHandler(svc))
		r.Patch("/{id}/cancel", cancelAppointmentHandler(svc))
	})

	r.Route("/api/professionals", func(r chi.Router) {
		r.Get("/", listProfessionalsHandler(svc))
		r.Get("/{id}", getProfessionalHandler(svc))
		r.Get("/{id}/agenda", professionalAgendaHandler(svc))
		r.Post("/{id}/block-slot", blockSlotHandler(svc))
		r.Delete("/{id}/unblock-slot", unblockSlotHandler(svc))
		r.Get("/{id}/blocks", listBlocksHandler(svc))
	})

	r.Route("/api/patients", func(r chi.Router) {
		r.Get("/", listPatientsHandler(svc))
		r.Get("/{id}", getPatientHandler(svc))
		r.Get("/{id}/appointments", patientAppointmentsHandler(svc))
		r.Get("/{id}/history", patientHistoryHandler(svc))
	})

	return r
}

func welcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]any{
			"message": "Dental Clinic Scheduling API",
			"endpoints": map[string]string{
				"appointments":  "/api/appointments",
				"professionals": "/api/professionals",
				"patients":      "/api/patients",
			},
		})
	}
}
