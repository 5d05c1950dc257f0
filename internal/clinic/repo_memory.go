package clinic

import (
	"context"
	"sync"
)

// MemoryRepository is the default store: plain slices guarded by a RWMutex.
// Appointment and block ids are independent max+1 sequences, assigned under
// the write lock so they stay dense even with parallel request handling.
type MemoryRepository struct {
	mu            sync.RWMutex
	professionals []Professional
	patients      []Patient
	appointments  []Appointment
	blocks        []Block
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Seed loads the read-only professional and patient rosters. Meant to be
// called once at startup, before the store serves requests.
func (r *MemoryRepository) Seed(professionals []Professional, patients []Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.professionals = append(r.professionals[:0], professionals...)
	r.patients = append(r.patients[:0], patients...)
}

func (r *MemoryRepository) ListProfessionals(_ context.Context) ([]Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Professional, len(r.professionals))
	copy(out, r.professionals)
	return out, nil
}

func (r *MemoryRepository) GetProfessionalByID(_ context.Context, id int) (*Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.professionals {
		if r.professionals[i].ID == id {
			p := r.professionals[i]
			return &p, nil
		}
	}
	return nil, ErrProfessionalNotFound
}

func (r *MemoryRepository) ListPatients(_ context.Context) ([]Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Patient, len(r.patients))
	copy(out, r.patients)
	return out, nil
}

func (r *MemoryRepository) GetPatientByID(_ context.Context, id int) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.patients {
		if r.patients[i].ID == id {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, ErrPatientNotFound
}

func (r *MemoryRepository) ListAppointments(_ context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

func (r *MemoryRepository) GetAppointmentByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			a := r.appointments[i]
			return &a, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func (r *MemoryRepository) ListAppointmentsByPatient(_ context.Context, patientID int) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAppointmentsByProfessional(_ context.Context, professionalID int, date string) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Appointment
	for _, a := range r.appointments {
		if a.ProfessionalID != professionalID {
			continue
		}
		if date != "" && a.Date != date {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepository) FindActiveAppointment(_ context.Context, professionalID int, date, timeSlot string, excludeID int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.appointments {
		a := r.appointments[i]
		if a.ID == excludeID {
			continue
		}
		if a.ProfessionalID == professionalID && a.Date == date && a.Time == timeSlot && a.Status != StatusCancelled {
			return &a, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func (r *MemoryRepository) CreateAppointment(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = nextAppointmentID(r.appointments)
	r.appointments = append(r.appointments, *a)
	return nil
}

func (r *MemoryRepository) UpdateAppointment(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == a.ID {
			r.appointments[i] = *a
			return nil
		}
	}
	return ErrAppointmentNotFound
}

func (r *MemoryRepository) FindBlock(_ context.Context, professionalID int, date, timeSlot string) (*Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.blocks {
		b := r.blocks[i]
		if b.ProfessionalID == professionalID && b.Date == date && b.Time == timeSlot {
			return &b, nil
		}
	}
	return nil, ErrBlockNotFound
}

func (r *MemoryRepository) ListBlocksByProfessional(_ context.Context, professionalID int, date string) ([]Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Block
	for _, b := range r.blocks {
		if b.ProfessionalID != professionalID {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryRepository) CreateBlock(_ context.Context, b *Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = nextBlockID(r.blocks)
	r.blocks = append(r.blocks, *b)
	return nil
}

func (r *MemoryRepository) DeleteBlock(_ context.Context, professionalID int, date, timeSlot string) (*Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.blocks {
		b := r.blocks[i]
		if b.ProfessionalID == professionalID && b.Date == date && b.Time == timeSlot {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return &b, nil
		}
	}
	return nil, ErrBlockNotFound
}

func nextAppointmentID(appointments []Appointment) int {
	max := 0
	for _, a := range appointments {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func nextBlockID(blocks []Block) int {
	max := 0
	for _, b := range blocks {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}
