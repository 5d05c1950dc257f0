package api

import (
	"encoding/json"
	"net/http"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
)

func listProfessionalsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionals, err := svc.ListProfessionals(r.Context())
		if err != nil {
			writeInternal(w, "failed to list professionals", err)
			return
		}
		writeList(w, professionals, len(professionals))
	}
}

func getProfessionalHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "professional")
		if !ok {
			return
		}

		prof, err := svc.GetProfessional(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to fetch professional")
			return
		}

		writeData(w, http.StatusOK, prof)
	}
}

func professionalAgendaHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "professional")
		if !ok {
			return
		}

		agenda, err := svc.ProfessionalAgenda(r.Context(), id, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, err, "failed to fetch agenda")
			return
		}

		writeData(w, http.StatusOK, agenda)
	}
}

func blockSlotHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "professional")
		if !ok {
			return
		}

		var req BlockSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not parse request body")
			return
		}

		block, err := svc.BlockSlot(r.Context(), clinic.BlockSlotInput{
			ProfessionalID: id,
			Date:           req.Date,
			Time:           req.Time,
			Type:           req.Type,
			Reason:         req.Reason,
		})
		if err != nil {
			writeServiceError(w, err, "failed to block slot")
			return
		}

		writeDataMessage(w, http.StatusCreated, "slot blocked successfully", block)
	}
}

func unblockSlotHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "professional")
		if !ok {
			return
		}

		var req UnblockSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not parse request body")
			return
		}

		block, err := svc.UnblockSlot(r.Context(), id, req.Date, req.Time)
		if err != nil {
			writeServiceError(w, err, "failed to unblock slot")
			return
		}

		writeDataMessage(w, http.StatusOK, "slot unblocked successfully", block)
	}
}

func listBlocksHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "professional")
		if !ok {
			return
		}

		blocks, err := svc.ListBlocks(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "failed to list blocks")
			return
		}

		writeData(w, http.StatusOK, blocks)
	}
}
