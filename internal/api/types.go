package api

type BookAppointmentRequest struct {
	PatientID      int    `json:"patientId"`
	ProfessionalID int    `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Type           string `json:"type"`
	Notes          string `json:"notes"`
}

// EditAppointmentRequest is a partial update: nil fields are left untouched.
// Notes distinguishes "absent" from "present and empty" so notes can be
// cleared.
type EditAppointmentRequest struct {
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Type  *string `json:"type"`
	Notes *string `json:"notes"`
}

type BlockSlotRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type UnblockSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
