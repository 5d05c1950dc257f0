package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
	redisclient "github.com/odontotech/clinic-scheduling/internal/redis"
)

// Response envelope: {"success":true,"data":...,"message"?,"total"?} on
// success, {"success":false,"error":...,"message"?} on failure.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeDataMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Total: &total})
}

func writeError(w http.ResponseWriter, status int, errText string) {
	writeJSON(w, status, envelope{Success: false, Error: errText})
}

func writeInternal(w http.ResponseWriter, errText string, err error) {
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Error:   errText,
		Message: err.Error(),
	})
}

// writeServiceError maps domain failures to HTTP statuses: missing entity
// references are 404, invalid input and state conflicts are 400, anything
// unexpected is 500 with the given fallback text.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, clinic.ErrProfessionalNotFound),
		errors.Is(err, clinic.ErrPatientNotFound),
		errors.Is(err, clinic.ErrAppointmentNotFound),
		errors.Is(err, clinic.ErrBlockNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, clinic.ErrMissingFields),
		errors.Is(err, clinic.ErrInvalidDate),
		errors.Is(err, clinic.ErrPastDate),
		errors.Is(err, clinic.ErrInvalidTime),
		errors.Is(err, clinic.ErrSlotOccupied),
		errors.Is(err, clinic.ErrSlotBlocked),
		errors.Is(err, clinic.ErrSlotOccupiedEdit),
		errors.Is(err, clinic.ErrSlotBlockedEdit),
		errors.Is(err, clinic.ErrAlreadyBlocked),
		errors.Is(err, clinic.ErrBlockOverActive),
		errors.Is(err, clinic.ErrEditCancelled),
		errors.Is(err, clinic.ErrAlreadyCancelled),
		errors.Is(err, clinic.ErrCancelCompleted):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, redisclient.ErrLockNotAcquired):
		writeError(w, http.StatusBadRequest, "slot is currently being booked, please retry")

	default:
		writeInternal(w, fallback, err)
	}
}
