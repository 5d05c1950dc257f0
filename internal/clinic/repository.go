package clinic

import (
	"context"
	"errors"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrBlockNotFound        = errors.New("block not found")

	ErrMissingFields    = errors.New("all required fields must be provided")
	ErrInvalidDate      = errors.New("invalid date")
	ErrPastDate         = errors.New("invalid or past date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrSlotOccupied     = errors.New("slot is already occupied for this professional")
	ErrSlotBlocked      = errors.New("slot is blocked for this professional")
	ErrSlotBlockedEdit  = errors.New("new slot is blocked")
	ErrSlotOccupiedEdit = errors.New("new slot is already occupied")
	ErrAlreadyBlocked   = errors.New("slot is already blocked")
	ErrBlockOverActive  = errors.New("cannot block a slot with an active appointment")
	ErrEditCancelled    = errors.New("cannot edit a cancelled appointment")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
)

// Repository contains all store interactions needed by the service.
// Implementations: the in-memory store (default) and Postgres.
type Repository interface {
	ListProfessionals(ctx context.Context) ([]Professional, error)
	GetProfessionalByID(ctx context.Context, id int) (*Professional, error)

	ListPatients(ctx context.Context) ([]Patient, error)
	GetPatientByID(ctx context.Context, id int) (*Patient, error)

	ListAppointments(ctx context.Context) ([]Appointment, error)
	GetAppointmentByID(ctx context.Context, id int) (*Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID int) ([]Appointment, error)
	// ListAppointmentsByProfessional filters to one date when date is
	// non-empty, otherwise returns every appointment of the professional.
	ListAppointmentsByProfessional(ctx context.Context, professionalID int, date string) ([]Appointment, error)

	// FindActiveAppointment looks up a non-cancelled appointment occupying
	// the professional/date/time slot. excludeID skips one appointment id
	// (the one being edited); pass 0 to exclude nothing.
	FindActiveAppointment(ctx context.Context, professionalID int, date, timeSlot string, excludeID int) (*Appointment, error)
	CreateAppointment(ctx context.Context, a *Appointment) error
	UpdateAppointment(ctx context.Context, a *Appointment) error

	FindBlock(ctx context.Context, professionalID int, date, timeSlot string) (*Block, error)
	// ListBlocksByProfessional filters to one date when date is non-empty.
	ListBlocksByProfessional(ctx context.Context, professionalID int, date string) ([]Block, error)
	CreateBlock(ctx context.Context, b *Block) error
	DeleteBlock(ctx context.Context, professionalID int, date, timeSlot string) (*Block, error)
}
