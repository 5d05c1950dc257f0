package clinic

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestService(t *testing.T) (*Service, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	repo.Seed(SeedProfessionals(), SeedPatients())
	return NewService(repo, NewSlotCatalog(9, 18), NewLocalLocker(), zerolog.Nop()), repo
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(DateLayout)
}

func mustBook(t *testing.T, svc *Service, in BookAppointmentInput) *AppointmentDetail {
	t.Helper()
	detail, err := svc.BookAppointment(context.Background(), in)
	if err != nil {
		t.Fatalf("BookAppointment(%+v): %v", in, err)
	}
	return detail
}

func booking(patientID, professionalID int, date, slot string) BookAppointmentInput {
	return BookAppointmentInput{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Date:           date,
		Time:           slot,
		Type:           "Cleaning",
	}
}

// -- Availability engine --

func TestAvailableSlotsFullDay(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.AvailableSlots(context.Background(), 2, futureDate(1))
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	if !reflect.DeepEqual(got.Slots, svc.Catalog().Slots()) {
		t.Errorf("slots = %v, want full catalog", got.Slots)
	}
	if got.Total != 10 {
		t.Errorf("total = %d, want 10", got.Total)
	}
	if got.Professional.Name != "Dra. Ana Paula Santos" {
		t.Errorf("professional = %q, want seeded name", got.Professional.Name)
	}
}

func TestAvailableSlotsExcludesBookedAndBlocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	mustBook(t, svc, booking(1, 2, date, "11:00"))
	cancelled := mustBook(t, svc, booking(2, 2, date, "15:00"))
	if _, err := svc.CancelAppointment(ctx, cancelled.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if _, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 2, Date: date, Time: "14:00", Type: "Lunch", Reason: "lunch break"}); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}

	got, err := svc.AvailableSlots(ctx, 2, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	// 11:00 booked and 14:00 blocked are gone, 15:00 returned by the
	// cancellation, order preserved.
	want := []string{"09:00", "10:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Errorf("slots = %v, want %v", got.Slots, want)
	}

	// Another professional's day is untouched.
	other, err := svc.AvailableSlots(ctx, 3, date)
	if err != nil {
		t.Fatalf("AvailableSlots(3): %v", err)
	}
	if other.Total != 10 {
		t.Errorf("other professional total = %d, want 10", other.Total)
	}
}

func TestAvailableSlotsValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AvailableSlots(ctx, 99, futureDate(1)); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("unknown professional err = %v, want ErrProfessionalNotFound", err)
	}
	if _, err := svc.AvailableSlots(ctx, 0, futureDate(1)); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing professional err = %v, want ErrMissingFields", err)
	}
	if _, err := svc.AvailableSlots(ctx, 1, ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing date err = %v, want ErrMissingFields", err)
	}
	if _, err := svc.AvailableSlots(ctx, 1, "not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad date err = %v, want ErrInvalidDate", err)
	}
}

// -- Booking --

func TestBookAppointment(t *testing.T) {
	svc, _ := newTestService(t)

	detail := mustBook(t, svc, BookAppointmentInput{
		PatientID:      1,
		ProfessionalID: 2,
		Date:           futureDate(1),
		Time:           "11:00",
		Type:           "Evaluation",
		Notes:          "first visit",
	})

	if detail.ID != 1 {
		t.Errorf("id = %d, want 1", detail.ID)
	}
	if detail.Status != StatusScheduled {
		t.Errorf("status = %q, want scheduled", detail.Status)
	}
	if detail.CreatedAt == "" {
		t.Error("createdAt is empty")
	}
	if detail.Patient == nil || detail.Patient.Name != "João Pedro Almeida" || detail.Patient.NationalID == "" {
		t.Errorf("patient view = %+v, want seeded patient 1", detail.Patient)
	}
	if detail.Professional == nil || detail.Professional.Specialty != "Endodontics" {
		t.Errorf("professional view = %+v, want seeded professional 2", detail.Professional)
	}
}

func TestBookAppointmentSameDayAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.BookAppointment(context.Background(), booking(1, 1, futureDate(0), "09:00")); err != nil {
		t.Fatalf("same-day booking failed: %v", err)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	cases := []struct {
		name string
		in   BookAppointmentInput
		want error
	}{
		{"missing patient", booking(0, 1, date, "09:00"), ErrMissingFields},
		{"missing professional", booking(1, 0, date, "09:00"), ErrMissingFields},
		{"missing date", booking(1, 1, "", "09:00"), ErrMissingFields},
		{"missing time", booking(1, 1, date, ""), ErrMissingFields},
		{"missing type", BookAppointmentInput{PatientID: 1, ProfessionalID: 1, Date: date, Time: "09:00"}, ErrMissingFields},
		{"unknown patient", booking(99, 1, date, "09:00"), ErrPatientNotFound},
		{"unknown professional", booking(1, 99, date, "09:00"), ErrProfessionalNotFound},
		{"malformed date", booking(1, 1, "2030-13-99", "09:00"), ErrPastDate},
		{"past date", booking(1, 1, "2020-01-01", "09:00"), ErrPastDate},
		{"time outside catalog", booking(1, 1, date, "22:00"), ErrInvalidTime},
		{"time not on the hour", booking(1, 1, date, "09:30"), ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.BookAppointment(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBookAppointmentSlotOccupied(t *testing.T) {
	svc, _ := newTestService(t)
	date := futureDate(1)

	mustBook(t, svc, booking(1, 2, date, "11:00"))

	if _, err := svc.BookAppointment(context.Background(), booking(2, 2, date, "11:00")); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("double booking err = %v, want ErrSlotOccupied", err)
	}

	// Same time is free for a different professional.
	mustBook(t, svc, booking(2, 3, date, "11:00"))
}

func TestBookAppointmentSlotBlocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	if _, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 2, Date: date, Time: "11:00", Type: "Holiday", Reason: "bank holiday"}); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}

	if _, err := svc.BookAppointment(ctx, booking(1, 2, date, "11:00")); !errors.Is(err, ErrSlotBlocked) {
		t.Fatalf("blocked slot booking err = %v, want ErrSlotBlocked", err)
	}

	if _, err := svc.UnblockSlot(ctx, 2, date, "11:00"); err != nil {
		t.Fatalf("UnblockSlot: %v", err)
	}
	mustBook(t, svc, booking(1, 2, date, "11:00"))
}

func TestBookCancelRebook(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	first := mustBook(t, svc, booking(1, 2, date, "11:00"))

	cancelled, err := svc.CancelAppointment(ctx, first.ID)
	if err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	// The record survives cancellation.
	kept, err := svc.GetAppointment(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetAppointment after cancel: %v", err)
	}
	if kept.Status != StatusCancelled {
		t.Errorf("kept status = %q, want cancelled", kept.Status)
	}

	second := mustBook(t, svc, booking(2, 2, date, "11:00"))
	if second.ID == first.ID {
		t.Errorf("rebooked id = %d, expected a fresh id", second.ID)
	}
}

func TestIdentifiersAssignedDensely(t *testing.T) {
	svc, _ := newTestService(t)
	date := futureDate(1)

	a := mustBook(t, svc, booking(1, 1, date, "09:00"))
	b := mustBook(t, svc, booking(2, 2, date, "10:00"))
	c := mustBook(t, svc, booking(3, 3, date, "11:00"))
	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Errorf("ids = %d,%d,%d, want 1,2,3", a.ID, b.ID, c.ID)
	}

	// Blocks run on an independent sequence.
	block, err := svc.BlockSlot(context.Background(), BlockSlotInput{ProfessionalID: 1, Date: date, Time: "12:00", Type: "Lunch", Reason: "lunch"})
	if err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}
	if block.ID != 1 {
		t.Errorf("block id = %d, want 1", block.ID)
	}
}

// -- Cancelling --

func TestCancelAppointmentGuards(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CancelAppointment(ctx, 42); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("unknown id err = %v, want ErrAppointmentNotFound", err)
	}

	detail := mustBook(t, svc, booking(1, 1, futureDate(1), "09:00"))
	if _, err := svc.CancelAppointment(ctx, detail.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if _, err := svc.CancelAppointment(ctx, detail.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("double cancel err = %v, want ErrAlreadyCancelled", err)
	}

	// completed is terminal; only external seeding can produce it.
	done := &Appointment{PatientID: 1, ProfessionalID: 1, Date: futureDate(1), Time: "10:00", Type: "Cleaning", Status: StatusCompleted}
	if err := repo.CreateAppointment(ctx, done); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if _, err := svc.CancelAppointment(ctx, done.ID); !errors.Is(err, ErrCancelCompleted) {
		t.Errorf("cancel completed err = %v, want ErrCancelCompleted", err)
	}
}

// -- Editing --

func TestEditAppointmentMoveConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	target := mustBook(t, svc, booking(1, 2, date, "11:00"))
	other := mustBook(t, svc, booking(2, 2, date, "15:00"))

	// Moving onto another appointment's slot collides.
	slot := "11:00"
	if _, err := svc.EditAppointment(ctx, other.ID, AppointmentPatch{Time: &slot}); !errors.Is(err, ErrSlotOccupiedEdit) {
		t.Errorf("move onto occupied err = %v, want ErrSlotOccupiedEdit", err)
	}

	// Re-stating the appointment's own slot is not a collision.
	own := "11:00"
	ownDate := date
	if _, err := svc.EditAppointment(ctx, target.ID, AppointmentPatch{Date: &ownDate, Time: &own}); err != nil {
		t.Errorf("edit to own slot err = %v, want nil", err)
	}

	// Moving onto a blocked slot collides.
	if _, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 2, Date: date, Time: "16:00", Type: "Lunch", Reason: "lunch"}); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}
	blocked := "16:00"
	if _, err := svc.EditAppointment(ctx, other.ID, AppointmentPatch{Time: &blocked}); !errors.Is(err, ErrSlotBlockedEdit) {
		t.Errorf("move onto blocked err = %v, want ErrSlotBlockedEdit", err)
	}

	// A valid move frees the old slot.
	free := "17:00"
	moved, err := svc.EditAppointment(ctx, other.ID, AppointmentPatch{Time: &free})
	if err != nil {
		t.Fatalf("EditAppointment: %v", err)
	}
	if moved.Time != "17:00" {
		t.Errorf("time = %q, want 17:00", moved.Time)
	}
	mustBook(t, svc, booking(3, 2, date, "15:00"))
}

func TestEditAppointmentPatchSemantics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	detail := mustBook(t, svc, BookAppointmentInput{
		PatientID: 1, ProfessionalID: 2, Date: date, Time: "11:00",
		Type: "Cleaning", Notes: "bring x-rays",
	})

	// Absent fields keep their values; type changes alone.
	newType := "Evaluation"
	got, err := svc.EditAppointment(ctx, detail.ID, AppointmentPatch{Type: &newType})
	if err != nil {
		t.Fatalf("EditAppointment: %v", err)
	}
	if got.Type != "Evaluation" || got.Date != date || got.Time != "11:00" || got.Notes != "bring x-rays" {
		t.Errorf("after type patch: %+v", got.Appointment)
	}

	// Empty strings for date/time/type are treated as absent.
	empty := ""
	got, err = svc.EditAppointment(ctx, detail.ID, AppointmentPatch{Date: &empty, Time: &empty, Type: &empty})
	if err != nil {
		t.Fatalf("EditAppointment: %v", err)
	}
	if got.Date != date || got.Time != "11:00" || got.Type != "Evaluation" {
		t.Errorf("after empty patch: %+v", got.Appointment)
	}

	// Notes present-and-empty clears the field.
	got, err = svc.EditAppointment(ctx, detail.ID, AppointmentPatch{Notes: &empty})
	if err != nil {
		t.Fatalf("EditAppointment: %v", err)
	}
	if got.Notes != "" {
		t.Errorf("notes = %q, want cleared", got.Notes)
	}
}

func TestEditAppointmentGuards(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.EditAppointment(ctx, 42, AppointmentPatch{}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("unknown id err = %v, want ErrAppointmentNotFound", err)
	}

	detail := mustBook(t, svc, booking(1, 1, futureDate(1), "09:00"))
	if _, err := svc.CancelAppointment(ctx, detail.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if _, err := svc.EditAppointment(ctx, detail.ID, AppointmentPatch{}); !errors.Is(err, ErrEditCancelled) {
		t.Errorf("edit cancelled err = %v, want ErrEditCancelled", err)
	}
}

// -- Blocking --

func TestBlockSlotValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	cases := []struct {
		name string
		in   BlockSlotInput
		want error
	}{
		{"missing date", BlockSlotInput{ProfessionalID: 1, Time: "09:00", Type: "Holiday", Reason: "x"}, ErrMissingFields},
		{"missing time", BlockSlotInput{ProfessionalID: 1, Date: date, Type: "Holiday", Reason: "x"}, ErrMissingFields},
		{"missing type", BlockSlotInput{ProfessionalID: 1, Date: date, Time: "09:00", Reason: "x"}, ErrMissingFields},
		{"missing reason", BlockSlotInput{ProfessionalID: 1, Date: date, Time: "09:00", Type: "Holiday"}, ErrMissingFields},
		{"unknown professional", BlockSlotInput{ProfessionalID: 99, Date: date, Time: "09:00", Type: "Holiday", Reason: "x"}, ErrProfessionalNotFound},
		{"malformed date", BlockSlotInput{ProfessionalID: 1, Date: "nope", Time: "09:00", Type: "Holiday", Reason: "x"}, ErrInvalidDate},
		{"time outside catalog", BlockSlotInput{ProfessionalID: 1, Date: date, Time: "22:00", Type: "Holiday", Reason: "x"}, ErrInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.BlockSlot(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBlockSlotPastDateAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	// Booking rejects past dates; blocking deliberately does not.
	past := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	if _, err := svc.BlockSlot(context.Background(), BlockSlotInput{ProfessionalID: 1, Date: past, Time: "09:00", Type: "Unavailable", Reason: "retro entry"}); err != nil {
		t.Fatalf("past-date block err = %v, want nil", err)
	}
}

func TestBlockSlotConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	in := BlockSlotInput{ProfessionalID: 2, Date: date, Time: "11:00", Type: "Holiday", Reason: "bank holiday"}
	if _, err := svc.BlockSlot(ctx, in); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}
	if _, err := svc.BlockSlot(ctx, in); !errors.Is(err, ErrAlreadyBlocked) {
		t.Errorf("duplicate block err = %v, want ErrAlreadyBlocked", err)
	}

	// An active appointment prevents blocking its slot until cancelled.
	appt := mustBook(t, svc, booking(1, 2, date, "15:00"))
	over := BlockSlotInput{ProfessionalID: 2, Date: date, Time: "15:00", Type: "Holiday", Reason: "bank holiday"}
	if _, err := svc.BlockSlot(ctx, over); !errors.Is(err, ErrBlockOverActive) {
		t.Errorf("block over active err = %v, want ErrBlockOverActive", err)
	}
	if _, err := svc.CancelAppointment(ctx, appt.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if _, err := svc.BlockSlot(ctx, over); err != nil {
		t.Errorf("block after cancel err = %v, want nil", err)
	}
}

func TestUnblockSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	if _, err := svc.UnblockSlot(ctx, 1, "", "09:00"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing date err = %v, want ErrMissingFields", err)
	}
	if _, err := svc.UnblockSlot(ctx, 99, date, "09:00"); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("unknown professional err = %v, want ErrProfessionalNotFound", err)
	}
	if _, err := svc.UnblockSlot(ctx, 1, date, "09:00"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("no block err = %v, want ErrBlockNotFound", err)
	}

	created, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 1, Date: date, Time: "09:00", Type: "Lunch", Reason: "lunch"})
	if err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}
	removed, err := svc.UnblockSlot(ctx, 1, date, "09:00")
	if err != nil {
		t.Fatalf("UnblockSlot: %v", err)
	}
	if removed.ID != created.ID {
		t.Errorf("removed id = %d, want %d", removed.ID, created.ID)
	}
}

// -- Read operations --

func TestProfessionalAgenda(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day1, day2 := futureDate(1), futureDate(2)

	mustBook(t, svc, booking(1, 2, day1, "09:00"))
	mustBook(t, svc, booking(2, 2, day2, "09:00"))
	if _, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 2, Date: day1, Time: "12:00", Type: "Lunch", Reason: "lunch"}); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}

	all, err := svc.ProfessionalAgenda(ctx, 2, "")
	if err != nil {
		t.Fatalf("ProfessionalAgenda: %v", err)
	}
	if all.Date != "all" || all.TotalAppointments != 2 || all.TotalBlocks != 1 {
		t.Errorf("agenda(all) = date %q, %d appointments, %d blocks", all.Date, all.TotalAppointments, all.TotalBlocks)
	}

	day, err := svc.ProfessionalAgenda(ctx, 2, day1)
	if err != nil {
		t.Fatalf("ProfessionalAgenda(day): %v", err)
	}
	if day.Date != day1 || day.TotalAppointments != 1 || day.TotalBlocks != 1 {
		t.Errorf("agenda(day) = date %q, %d appointments, %d blocks", day.Date, day.TotalAppointments, day.TotalBlocks)
	}

	if _, err := svc.ProfessionalAgenda(ctx, 99, ""); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("unknown professional err = %v, want ErrProfessionalNotFound", err)
	}
}

func TestListBlocks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	list, err := svc.ListBlocks(ctx, 3)
	if err != nil {
		t.Fatalf("ListBlocks: %v", err)
	}
	if list.Total != 0 || list.Blocks == nil {
		t.Errorf("empty list = %+v, want zero total and non-nil slice", list)
	}

	if _, err := svc.BlockSlot(ctx, BlockSlotInput{ProfessionalID: 3, Date: futureDate(1), Time: "09:00", Type: "Vacation", Reason: "pto"}); err != nil {
		t.Fatalf("BlockSlot: %v", err)
	}
	list, err = svc.ListBlocks(ctx, 3)
	if err != nil {
		t.Fatalf("ListBlocks: %v", err)
	}
	if list.Total != 1 || list.Professional.ID != 3 {
		t.Errorf("list = %+v, want one block for professional 3", list)
	}
}

func TestPatientAppointmentsAndHistory(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	date := futureDate(1)

	first := mustBook(t, svc, booking(1, 2, date, "09:00"))
	mustBook(t, svc, booking(1, 3, date, "10:00"))
	if _, err := svc.CancelAppointment(ctx, first.ID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	done := &Appointment{PatientID: 1, ProfessionalID: 2, Date: "2024-01-10", Time: "09:00", Type: "Cleaning", Status: StatusCompleted}
	if err := repo.CreateAppointment(ctx, done); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	list, err := svc.PatientAppointments(ctx, 1)
	if err != nil {
		t.Fatalf("PatientAppointments: %v", err)
	}
	if list.Total != 3 || list.Patient.ID != 1 {
		t.Errorf("appointments = %+v, want 3 for patient 1", list)
	}

	history, err := svc.PatientHistory(ctx, 1)
	if err != nil {
		t.Fatalf("PatientHistory: %v", err)
	}
	if history.History.Total != 3 {
		t.Errorf("history total = %d, want 3", history.History.Total)
	}
	if history.History.Scheduled.Total != 1 || history.History.Cancelled.Total != 1 || history.History.Completed.Total != 1 {
		t.Errorf("history groups = %d/%d/%d, want 1/1/1",
			history.History.Scheduled.Total, history.History.Cancelled.Total, history.History.Completed.Total)
	}

	if _, err := svc.PatientHistory(ctx, 99); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("unknown patient err = %v, want ErrPatientNotFound", err)
	}
}

func TestListAppointmentsEnriched(t *testing.T) {
	svc, _ := newTestService(t)

	mustBook(t, svc, booking(2, 3, futureDate(1), "09:00"))

	list, err := svc.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Patient == nil || list[0].Patient.Name != "Maria Fernanda Lima" {
		t.Errorf("patient view = %+v", list[0].Patient)
	}
	if list[0].Professional == nil || list[0].Professional.Specialty != "Periodontics" {
		t.Errorf("professional view = %+v", list[0].Professional)
	}
}
