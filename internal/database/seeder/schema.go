package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/database"
)

// EnsureSchema creates the jobs table if it does not exist yet. It is
// idempotent and is invoked once during the startup initialization phase,
// before the HTTP listener accepts traffic.
func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id                  UUID PRIMARY KEY,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
			status              TEXT NOT NULL DEFAULT 'PENDING'
			                    CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
			company_name        TEXT NOT NULL,
			company_website     TEXT,
			company_contact     TEXT NOT NULL,
			company_description TEXT NOT NULL,
			job_title           TEXT NOT NULL,
			department          TEXT NOT NULL,
			location_type       TEXT NOT NULL,
			location            TEXT,
			job_type            TEXT NOT NULL,
			salary_range        TEXT,
			job_description     TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure jobs table: %w", err)
	}

	_, err = db.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_status_created_at ON jobs (status, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("ensure jobs index: %w", err)
	}

	return nil
}
