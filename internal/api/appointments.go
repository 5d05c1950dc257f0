package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
)

func listAppointmentsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointments, err := svc.ListAppointments(r.Context())
		if err != nil {
			writeInternal(w, "failed to list appointments", err)
			return
		}
		writeList(w, appointments, len(appointments))
	}
}

func bookAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not parse request body")
			return
		}

		detail, err := svc.BookAppointment(r.Context(), clinic.BookAppointmentInput{
			PatientID:      req.PatientID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			Time:           req.Time,
			Type:           req.Type,
			Notes:          req.Notes,
		})
		if err != nil {
			writeServiceError(w, err, "failed to schedule appointment")
			return
		}

		writeDataMessage(w, http.StatusCreated, "appointment scheduled successfully", detail)
	}
}

func availableSlotsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionalID, ok := queryInt(w, r, "professionalId")
		if !ok {
			return
		}

		availability, err := svc.AvailableSlots(r.Context(), professionalID, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, err, "failed to compute available slots")
			return
		}

		writeData(w, http.StatusOK, availability)
	}
}

func getAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "appointment")
		if !ok {
			return
		}

		detail, err := svc.GetAppointment(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to fetch appointment")
			return
		}

		writeData(w, http.StatusOK, detail)
	}
}

func editAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "appointment")
		if !ok {
			return
		}

		var req EditAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not parse request body")
			return
		}

		detail, err := svc.EditAppointment(r.Context(), id, clinic.AppointmentPatch{
			Date:  req.Date,
			Time:  req.Time,
			Type:  req.Type,
			Notes: req.Notes,
		})
		if err != nil {
			writeServiceError(w, err, "failed to edit appointment")
			return
		}

		writeDataMessage(w, http.StatusOK, "appointment updated successfully", detail)
	}
}

func cancelAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "appointment")
		if !ok {
			return
		}

		detail, err := svc.CancelAppointment(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to cancel appointment")
			return
		}

		writeDataMessage(w, http.StatusOK, "appointment cancelled successfully", detail)
	}
}

// pathID parses the {id} path segment as a base-10 integer and reports a 400
// envelope when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, what string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, what+" id must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter; absent yields zero so the
// service can apply its required-field validation.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return n, true
}
