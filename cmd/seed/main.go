package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odontotech/clinic-scheduling/internal/clinic"
	"github.com/odontotech/clinic-scheduling/internal/db"
)

// Seeds the Postgres backend with the fixed clinic roster plus extra fake
// patients for load testing. The in-memory store seeds itself at startup and
// does not need this command.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	extraPatients := 100
	if v := os.Getenv("SEED_EXTRA_PATIENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			extraPatients = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := createTables(context.Background(), pool); err != nil {
		log.Fatalf("create tables: %v", err)
	}
	if err := seedProfessionals(context.Background(), pool); err != nil {
		log.Fatalf("seed professionals: %v", err)
	}
	if err := seedPatients(context.Background(), pool, extraPatients); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS professionals (
			id             INTEGER PRIMARY KEY,
			name           TEXT NOT NULL,
			specialty      TEXT NOT NULL,
			license_number TEXT NOT NULL,
			email          TEXT NOT NULL,
			phone          TEXT NOT NULL,
			work_start     TEXT NOT NULL,
			work_end       TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS patients (
			id          INTEGER PRIMARY KEY,
			name        TEXT NOT NULL,
			national_id TEXT NOT NULL,
			birth_date  TEXT NOT NULL,
			email       TEXT NOT NULL,
			phone       TEXT NOT NULL,
			address     TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS appointments (
			id              INTEGER PRIMARY KEY,
			patient_id      INTEGER NOT NULL REFERENCES patients (id),
			professional_id INTEGER NOT NULL REFERENCES professionals (id),
			date            TEXT NOT NULL,
			time            TEXT NOT NULL,
			type            TEXT NOT NULL,
			notes           TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL,
			created_at      TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS blocks (
			id              INTEGER PRIMARY KEY,
			professional_id INTEGER NOT NULL REFERENCES professionals (id),
			date            TEXT NOT NULL,
			time            TEXT NOT NULL,
			type            TEXT NOT NULL,
			reason          TEXT NOT NULL,
			created_at      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_appointments_slot
			ON appointments (professional_id, date, time);
		CREATE INDEX IF NOT EXISTS idx_blocks_slot
			ON blocks (professional_id, date, time);
	`)
	return err
}

func seedProfessionals(ctx context.Context, pool *pgxpool.Pool) error {
	roster := clinic.SeedProfessionals()
	log.Printf("seeding %d professionals", len(roster))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range roster {
		_, err := tx.Exec(ctx, `
			INSERT INTO professionals (id, name, specialty, license_number, email, phone, work_start, work_end)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Name, p.Specialty, p.LicenseNumber, p.Email, p.Phone, p.WorkingHours.Start, p.WorkingHours.End)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedPatients(ctx context.Context, pool *pgxpool.Pool, extra int) error {
	roster := clinic.SeedPatients()
	log.Printf("seeding %d patients plus %d fake ones", len(roster), extra)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insert := func(p clinic.Patient) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO patients (id, name, national_id, birth_date, email, phone, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Name, p.NationalID, p.BirthDate, p.Email, p.Phone, p.Address)
		return err
	}

	for _, p := range roster {
		if err := insert(p); err != nil {
			return err
		}
	}

	nextID := len(roster) + 1
	for i := 0; i < extra; i++ {
		birth := gofakeit.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		p := clinic.Patient{
			ID:         nextID + i,
			Name:       gofakeit.Name(),
			NationalID: gofakeit.SSN(),
			BirthDate:  birth.Format(clinic.DateLayout),
			Email:      gofakeit.Email(),
			Phone:      gofakeit.Phone(),
			Address:    gofakeit.Address().Address,
		}
		if err := insert(p); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
