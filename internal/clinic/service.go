package clinic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	redisclient "github.com/odontotech/clinic-scheduling/internal/redis"
)

// ErrCancelCompleted guards the terminal completed state: a completed
// appointment accepts no further status transitions.
var ErrCancelCompleted = errors.New("cannot cancel a completed appointment")

// Service implements the availability engine and the scheduling operations.
// All conflict checks run before any mutation; the check-then-insert
// sequences are serialized per slot through the locker.
type Service struct {
	repo    Repository
	catalog *SlotCatalog
	locker  redisclient.Locker
	log     zerolog.Logger
}

func NewService(repo Repository, catalog *SlotCatalog, locker redisclient.Locker, log zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		locker:  locker,
		log:     log,
	}
}

type BookAppointmentInput struct {
	PatientID      int
	ProfessionalID int
	Date           string
	Time           string
	Type           string
	Notes          string
}

// AppointmentPatch carries partial-update fields for EditAppointment.
// A nil pointer leaves the current value untouched. Notes may be present
// and empty, which clears the field; the other fields ignore empty values.
type AppointmentPatch struct {
	Date  *string
	Time  *string
	Type  *string
	Notes *string
}

type BlockSlotInput struct {
	ProfessionalID int
	Date           string
	Time           string
	Type           string
	Reason         string
}

// Catalog exposes the shared slot catalog.
func (s *Service) Catalog() *SlotCatalog {
	return s.catalog
}

// AvailableSlots computes the bookable times for one professional and one
// calendar day: the slot catalog minus non-cancelled appointments and minus
// blocks, in catalog order.
func (s *Service) AvailableSlots(ctx context.Context, professionalID int, date string) (*DayAvailability, error) {
	if professionalID <= 0 || date == "" {
		return nil, ErrMissingFields
	}

	prof, err := s.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := s.repo.ListAppointmentsByProfessional(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	blocks, err := s.repo.ListBlocksByProfessional(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	taken := make(map[string]struct{})
	for _, a := range appointments {
		if a.Status != StatusCancelled {
			taken[a.Time] = struct{}{}
		}
	}
	for _, b := range blocks {
		taken[b.Time] = struct{}{}
	}

	free := make([]string, 0, s.catalog.Len())
	for _, slot := range s.catalog.Slots() {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return &DayAvailability{
		Professional: prof.Ref(),
		Date:         date,
		Slots:        free,
		Total:        len(free),
	}, nil
}

// BookAppointment validates the request, checks the slot is neither occupied
// nor blocked, and appends a new scheduled appointment.
func (s *Service) BookAppointment(ctx context.Context, in BookAppointmentInput) (*AppointmentDetail, error) {
	if in.PatientID <= 0 || in.ProfessionalID <= 0 || in.Date == "" || in.Time == "" || in.Type == "" {
		return nil, ErrMissingFields
	}

	patient, err := s.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	prof, err := s.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse(DateLayout, in.Date)
	if err != nil {
		return nil, ErrPastDate
	}
	// Same-day booking is allowed; only strictly earlier days are rejected.
	if day.Format(DateLayout) < time.Now().Format(DateLayout) {
		return nil, ErrPastDate
	}

	if !s.catalog.Contains(in.Time) {
		return nil, ErrInvalidTime
	}

	appt := &Appointment{
		PatientID:      in.PatientID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
		Type:           in.Type,
		Notes:          in.Notes,
		Status:         StatusScheduled,
		CreatedAt:      time.Now().Format(TimestampLayout),
	}

	err = s.locker.WithSlotLock(ctx, slotKey(in.ProfessionalID, in.Date, in.Time), func(lockCtx context.Context) error {
		existing, err := s.repo.FindActiveAppointment(lockCtx, in.ProfessionalID, in.Date, in.Time, 0)
		if err != nil && !errors.Is(err, ErrAppointmentNotFound) {
			return fmt.Errorf("check occupied slot: %w", err)
		}
		if existing != nil {
			return ErrSlotOccupied
		}

		block, err := s.repo.FindBlock(lockCtx, in.ProfessionalID, in.Date, in.Time)
		if err != nil && !errors.Is(err, ErrBlockNotFound) {
			return fmt.Errorf("check blocked slot: %w", err)
		}
		if block != nil {
			return ErrSlotBlocked
		}

		if err := s.repo.CreateAppointment(lockCtx, appt); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("appointment_id", appt.ID).
		Int("professional_id", in.ProfessionalID).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("appointment booked")

	patientRef := patient.Ref()
	profRef := prof.Ref()
	return &AppointmentDetail{
		Appointment:  *appt,
		Patient:      &patientRef,
		Professional: &profRef,
	}, nil
}

// EditAppointment applies a partial update. Moving the appointment to a
// different date or time re-runs the occupation and block checks against the
// effective slot, excluding the appointment itself from the occupation check.
func (s *Service) EditAppointment(ctx context.Context, id int, patch AppointmentPatch) (*AppointmentDetail, error) {
	appt, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if appt.Status == StatusCancelled {
		return nil, ErrEditCancelled
	}

	newDate := appt.Date
	if patch.Date != nil && *patch.Date != "" {
		newDate = *patch.Date
	}
	newTime := appt.Time
	if patch.Time != nil && *patch.Time != "" {
		newTime = *patch.Time
	}

	moved := newDate != appt.Date || newTime != appt.Time

	apply := func() error {
		if patch.Date != nil && *patch.Date != "" {
			appt.Date = *patch.Date
		}
		if patch.Time != nil && *patch.Time != "" {
			appt.Time = *patch.Time
		}
		if patch.Type != nil && *patch.Type != "" {
			appt.Type = *patch.Type
		}
		if patch.Notes != nil {
			appt.Notes = *patch.Notes
		}
		if err := s.repo.UpdateAppointment(ctx, appt); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		return nil
	}

	if moved {
		err = s.locker.WithSlotLock(ctx, slotKey(appt.ProfessionalID, newDate, newTime), func(lockCtx context.Context) error {
			existing, err := s.repo.FindActiveAppointment(lockCtx, appt.ProfessionalID, newDate, newTime, appt.ID)
			if err != nil && !errors.Is(err, ErrAppointmentNotFound) {
				return fmt.Errorf("check occupied slot: %w", err)
			}
			if existing != nil {
				return ErrSlotOccupiedEdit
			}

			block, err := s.repo.FindBlock(lockCtx, appt.ProfessionalID, newDate, newTime)
			if err != nil && !errors.Is(err, ErrBlockNotFound) {
				return fmt.Errorf("check blocked slot: %w", err)
			}
			if block != nil {
				return ErrSlotBlockedEdit
			}

			return apply()
		})
	} else {
		err = apply()
	}
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("appointment_id", appt.ID).Msg("appointment edited")

	detail := s.enrich(ctx, *appt)
	return &detail, nil
}

// CancelAppointment moves a scheduled appointment to the terminal cancelled
// state. The record is kept; its slot becomes available again.
func (s *Service) CancelAppointment(ctx context.Context, id int) (*AppointmentDetail, error) {
	appt, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch appt.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusCompleted:
		return nil, ErrCancelCompleted
	}

	appt.Status = StatusCancelled
	if err := s.repo.UpdateAppointment(ctx, appt); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.log.Info().Int("appointment_id", appt.ID).Msg("appointment cancelled")

	detail := s.enrich(ctx, *appt)
	return &detail, nil
}

// BlockSlot marks a professional's date/time as unavailable. Unlike booking
// there is no past-date restriction: blocks on past dates are accepted.
func (s *Service) BlockSlot(ctx context.Context, in BlockSlotInput) (*Block, error) {
	if in.ProfessionalID <= 0 || in.Date == "" || in.Time == "" || in.Type == "" || in.Reason == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.GetProfessionalByID(ctx, in.ProfessionalID); err != nil {
		return nil, err
	}

	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return nil, ErrInvalidDate
	}

	if !s.catalog.Contains(in.Time) {
		return nil, ErrInvalidTime
	}

	block := &Block{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
		Type:           in.Type,
		Reason:         in.Reason,
		CreatedAt:      time.Now().Format(TimestampLayout),
	}

	err := s.locker.WithSlotLock(ctx, slotKey(in.ProfessionalID, in.Date, in.Time), func(lockCtx context.Context) error {
		existing, err := s.repo.FindBlock(lockCtx, in.ProfessionalID, in.Date, in.Time)
		if err != nil && !errors.Is(err, ErrBlockNotFound) {
			return fmt.Errorf("check existing block: %w", err)
		}
		if existing != nil {
			return ErrAlreadyBlocked
		}

		appt, err := s.repo.FindActiveAppointment(lockCtx, in.ProfessionalID, in.Date, in.Time, 0)
		if err != nil && !errors.Is(err, ErrAppointmentNotFound) {
			return fmt.Errorf("check active appointment: %w", err)
		}
		if appt != nil {
			return ErrBlockOverActive
		}

		if err := s.repo.CreateBlock(lockCtx, block); err != nil {
			return fmt.Errorf("create block: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("block_id", block.ID).
		Int("professional_id", in.ProfessionalID).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("slot blocked")

	return block, nil
}

// UnblockSlot physically removes a block and returns the removed record.
func (s *Service) UnblockSlot(ctx context.Context, professionalID int, date, timeSlot string) (*Block, error) {
	if date == "" || timeSlot == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.GetProfessionalByID(ctx, professionalID); err != nil {
		return nil, err
	}

	block, err := s.repo.DeleteBlock(ctx, professionalID, date, timeSlot)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("block_id", block.ID).
		Int("professional_id", professionalID).
		Str("date", date).
		Str("time", timeSlot).
		Msg("slot unblocked")

	return block, nil
}

// -- Read operations --

func (s *Service) ListAppointments(ctx context.Context) ([]AppointmentDetail, error) {
	appointments, err := s.repo.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	out := make([]AppointmentDetail, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, s.enrich(ctx, a))
	}
	return out, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int) (*AppointmentDetail, error) {
	appt, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := s.enrich(ctx, *appt)
	return &detail, nil
}

func (s *Service) ListProfessionals(ctx context.Context) ([]Professional, error) {
	return s.repo.ListProfessionals(ctx)
}

func (s *Service) GetProfessional(ctx context.Context, id int) (*Professional, error) {
	return s.repo.GetProfessionalByID(ctx, id)
}

// ProfessionalAgenda returns a professional's appointments and blocks,
// limited to one date when date is non-empty.
func (s *Service) ProfessionalAgenda(ctx context.Context, professionalID int, date string) (*Agenda, error) {
	prof, err := s.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.ListAppointmentsByProfessional(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	blocks, err := s.repo.ListBlocksByProfessional(ctx, professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	label := date
	if label == "" {
		label = "all"
	}

	return &Agenda{
		Professional:      prof.Ref(),
		Date:              label,
		Appointments:      emptyIfNilAppointments(appointments),
		Blocks:            emptyIfNilBlocks(blocks),
		TotalAppointments: len(appointments),
		TotalBlocks:       len(blocks),
	}, nil
}

func (s *Service) ListBlocks(ctx context.Context, professionalID int) (*BlockList, error) {
	prof, err := s.repo.GetProfessionalByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.repo.ListBlocksByProfessional(ctx, professionalID, "")
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	return &BlockList{
		Professional: prof.Ref(),
		Blocks:       emptyIfNilBlocks(blocks),
		Total:        len(blocks),
	}, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]Patient, error) {
	return s.repo.ListPatients(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int) (*Patient, error) {
	return s.repo.GetPatientByID(ctx, id)
}

func (s *Service) PatientAppointments(ctx context.Context, patientID int) (*PatientAppointments, error) {
	patient, err := s.repo.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.ListAppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return &PatientAppointments{
		Patient:      patient.Ref(),
		Appointments: emptyIfNilAppointments(appointments),
		Total:        len(appointments),
	}, nil
}

// PatientHistory returns the full patient record with appointments grouped
// by lifecycle status.
func (s *Service) PatientHistory(ctx context.Context, patientID int) (*PatientHistory, error) {
	patient, err := s.repo.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.ListAppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	grouped := map[AppointmentStatus][]Appointment{
		StatusScheduled: {},
		StatusCancelled: {},
		StatusCompleted: {},
	}
	for _, a := range appointments {
		grouped[a.Status] = append(grouped[a.Status], a)
	}

	h := &PatientHistory{Patient: *patient}
	h.History.Total = len(appointments)
	h.History.Scheduled = StatusGroup{Total: len(grouped[StatusScheduled]), Appointments: grouped[StatusScheduled]}
	h.History.Cancelled = StatusGroup{Total: len(grouped[StatusCancelled]), Appointments: grouped[StatusCancelled]}
	h.History.Completed = StatusGroup{Total: len(grouped[StatusCompleted]), Appointments: grouped[StatusCompleted]}
	return h, nil
}

// enrich attaches reduced patient and professional views to an appointment.
// Missing references yield nil views rather than an error so historical
// records stay readable.
func (s *Service) enrich(ctx context.Context, a Appointment) AppointmentDetail {
	detail := AppointmentDetail{Appointment: a}
	if patient, err := s.repo.GetPatientByID(ctx, a.PatientID); err == nil {
		ref := patient.Ref()
		detail.Patient = &ref
	}
	if prof, err := s.repo.GetProfessionalByID(ctx, a.ProfessionalID); err == nil {
		ref := prof.Ref()
		detail.Professional = &ref
	}
	return detail
}

func slotKey(professionalID int, date, timeSlot string) string {
	return fmt.Sprintf("%d:%s:%s", professionalID, date, timeSlot)
}

func emptyIfNilAppointments(in []Appointment) []Appointment {
	if in == nil {
		return []Appointment{}
	}
	return in
}

func emptyIfNilBlocks(in []Block) []Block {
	if in == nil {
		return []Block{}
	}
	return in
}
