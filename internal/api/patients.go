package api

import (
	"net/http"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
)

func listPatientsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patients, err := svc.ListPatients(r.Context())
		if err != nil {
			writeInternal(w, "failed to list patients", err)
			return
		}
		writeList(w, patients, len(patients))
	}
}

func getPatientHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "patient")
		if !ok {
			return
		}

		patient, err := svc.GetPatient(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to fetch patient")
			return
		}

		writeData(w, http.StatusOK, patient)
	}
}

func patientAppointmentsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "patient")
		if !ok {
			return
		}

		appointments, err := svc.PatientAppointments(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to list patient appointments")
			return
		}

		writeData(w, http.StatusOK, appointments)
	}
}

func patientHistoryHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "patient")
		if !ok {
			return
		}

		history, err := svc.PatientHistory(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to fetch patient history")
			return
		}

		writeData(w, http.StatusOK, history)
	}
}
