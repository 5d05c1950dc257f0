package clinic

const (
	// Date layout for appointment and block dates.
	DateLayout = "2006-01-02"
	// Timestamp layout for creation stamps.
	TimestampLayout = "2006-01-02 15:04:05"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// WorkingHours is the professional's individual schedule range. It is stored
// and returned as-is but never enforced against the shared slot catalog.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Professional struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Specialty     string       `json:"specialty"`
	LicenseNumber string       `json:"licenseNumber"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	WorkingHours  WorkingHours `json:"workingHours"`
}

type Patient struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	BirthDate  string `json:"birthDate"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type Appointment struct {
	ID             int               `json:"id"`
	PatientID      int               `json:"patientId"`
	ProfessionalID int               `json:"professionalId"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Type           string            `json:"type"`
	Notes          string            `json:"notes"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      string            `json:"createdAt"`
}

type Block struct {
	ID             int    `json:"id"`
	ProfessionalID int    `json:"professionalId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	CreatedAt      string `json:"createdAt"`
}

// PatientRef is the reduced patient view embedded in enriched responses.
type PatientRef struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
}

// ProfessionalRef is the reduced professional view embedded in enriched responses.
type ProfessionalRef struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// AppointmentDetail is an appointment enriched with reduced patient and
// professional views. The refs are nil when the referenced record is missing.
type AppointmentDetail struct {
	Appointment
	Patient      *PatientRef      `json:"patient"`
	Professional *ProfessionalRef `json:"professional"`
}

// DayAvailability is the availability engine's answer for one professional
// and one calendar day.
type DayAvailability struct {
	Professional ProfessionalRef `json:"professional"`
	Date         string          `json:"date"`
	Slots        []string        `json:"availableSlots"`
	Total        int             `json:"totalSlots"`
}

// Agenda groups a professional's appointments and blocks, optionally
// filtered to a single date.
type Agenda struct {
	Professional      ProfessionalRef `json:"professional"`
	Date              string          `json:"date"`
	Appointments      []Appointment   `json:"appointments"`
	Blocks            []Block         `json:"blocks"`
	TotalAppointments int             `json:"totalAppointments"`
	TotalBlocks       int             `json:"totalBlocks"`
}

// BlockList is a professional's full set of blocks.
type BlockList struct {
	Professional ProfessionalRef `json:"professional"`
	Blocks       []Block         `json:"blocks"`
	Total        int             `json:"total"`
}

// PatientAppointments is a patient's appointment list with the reduced
// patient view attached.
type PatientAppointments struct {
	Patient      PatientRef    `json:"patient"`
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

// StatusGroup is one bucket of a patient history.
type StatusGroup struct {
	Total        int           `json:"total"`
	Appointments []Appointment `json:"appointments"`
}

// PatientHistory is the full patient record with appointments grouped
// by lifecycle status.
type PatientHistory struct {
	Patient Patient `json:"patient"`
	History struct {
		Total     int         `json:"totalAppointments"`
		Scheduled StatusGroup `json:"scheduled"`
		Cancelled StatusGroup `json:"cancelled"`
		Completed StatusGroup `json:"completed"`
	} `json:"history"`
}

func (p *Patient) Ref() PatientRef {
	return PatientRef{ID: p.ID, Name: p.Name, NationalID: p.NationalID}
}

func (p *Professional) Ref() ProfessionalRef {
	return ProfessionalRef{ID: p.ID, Name: p.Name, Specialty: p.Specialty}
}
