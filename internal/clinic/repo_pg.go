package clinic

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgRepository is the optional Postgres-backed store, selected when
// POSTGRES_DSN is configured. Dates, times and creation stamps are stored
// as text so both backends share the same value semantics.
type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Helpers

func scanProfessional(row pgx.Row) (*Professional, error) {
	var p Professional
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Specialty,
		&p.LicenseNumber,
		&p.Email,
		&p.Phone,
		&p.WorkingHours.Start,
		&p.WorkingHours.End,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.NationalID,
		&p.BirthDate,
		&p.Email,
		&p.Phone,
		&p.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.ProfessionalID,
		&a.Date,
		&a.Time,
		&a.Type,
		&a.Notes,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanBlock(row pgx.Row) (*Block, error) {
	var b Block
	err := row.Scan(
		&b.ID,
		&b.ProfessionalID,
		&b.Date,
		&b.Time,
		&b.Type,
		&b.Reason,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}
	return &b, nil
}

const professionalColumns = `id, name, specialty, license_number, email, phone, work_start, work_end`
const patientColumns = `id, name, national_id, birth_date, email, phone, address`
const appointmentColumns = `id, patient_id, professional_id, date, time, type, notes, status, created_at`
const blockColumns = `id, professional_id, date, time, type, reason, created_at`

// Interface methods

func (r *PgRepository) ListProfessionals(ctx context.Context) ([]Professional, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+professionalColumns+`
		FROM professionals
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *PgRepository) GetProfessionalByID(ctx context.Context, id int) (*Professional, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+professionalColumns+`
		FROM professionals
		WHERE id = $1
	`, id)
	return scanProfessional(row)
}

func (r *PgRepository) ListPatients(ctx context.Context) ([]Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *PgRepository) GetPatientByID(ctx context.Context, id int) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE id = $1
	`, id)
	return scanPatient(row)
}

func (r *PgRepository) ListAppointments(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *PgRepository) GetAppointmentByID(ctx context.Context, id int) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)
	return scanAppointment(row)
}

func (r *PgRepository) ListAppointmentsByPatient(ctx context.Context, patientID int) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE patient_id = $1
		ORDER BY id
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *PgRepository) ListAppointmentsByProfessional(ctx context.Context, professionalID int, date string) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE professional_id = $1
		  AND ($2 = '' OR date = $2)
		ORDER BY id
	`, professionalID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *PgRepository) FindActiveAppointment(ctx context.Context, professionalID int, date, timeSlot string, excludeID int) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE professional_id = $1
		  AND date = $2
		  AND time = $3
		  AND status <> 'cancelled'
		  AND id <> $4
		LIMIT 1
	`, professionalID, date, timeSlot, excludeID)
	return scanAppointment(row)
}

func (r *PgRepository) CreateAppointment(ctx context.Context, a *Appointment) error {
	// max+1 id assignment, computed inside the insert so the sequence stays
	// dense under concurrent writers.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, professional_id, date, time, type, notes, status, created_at)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM appointments), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, a.PatientID, a.ProfessionalID, a.Date, a.Time, a.Type, a.Notes, a.Status, a.CreatedAt)

	if err := row.Scan(&a.ID); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *PgRepository) UpdateAppointment(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET date = $2, time = $3, type = $4, notes = $5, status = $6
		WHERE id = $1
	`, a.ID, a.Date, a.Time, a.Type, a.Notes, a.Status)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *PgRepository) FindBlock(ctx context.Context, professionalID int, date, timeSlot string) (*Block, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+blockColumns+`
		FROM blocks
		WHERE professional_id = $1
		  AND date = $2
		  AND time = $3
	`, professionalID, date, timeSlot)
	return scanBlock(row)
}

func (r *PgRepository) ListBlocksByProfessional(ctx context.Context, professionalID int, date string) ([]Block, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+blockColumns+`
		FROM blocks
		WHERE professional_id = $1
		  AND ($2 = '' OR date = $2)
		ORDER BY id
	`, professionalID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, rows.Err()
}

func (r *PgRepository) CreateBlock(ctx context.Context, b *Block) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blocks (id, professional_id, date, time, type, reason, created_at)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM blocks), $1, $2, $3, $4, $5, $6)
		RETURNING id
	`, b.ProfessionalID, b.Date, b.Time, b.Type, b.Reason, b.CreatedAt)

	if err := row.Scan(&b.ID); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

func (r *PgRepository) DeleteBlock(ctx context.Context, professionalID int, date, timeSlot string) (*Block, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM blocks
		WHERE professional_id = $1
		  AND date = $2
		  AND time = $3
		RETURNING `+blockColumns+`
	`, professionalID, date, timeSlot)
	return scanBlock(row)
}

func collectAppointments(rows pgx.Rows) ([]Appointment, error) {
	var result []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}
