package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, created_at, updated_at, status,
	 company_name, COALESCE(company_website, ''), company_contact, company_description,
	 job_title, department, location_type, COALESCE(location, ''),
	 job_type, COALESCE(salary_range, ''), job_description`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

var _ job.Repository = (*PostgresJobRepository)(nil)

func (r *PostgresJobRepository) Insert(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (
			id, created_at, updated_at, status,
			company_name, company_website, company_contact, company_description,
			job_title, department, location_type, location,
			job_type, salary_range, job_description
		 ) VALUES (
			$1, $2, $3, $4,
			$5, NULLIF($6, ''), $7, $8,
			$9, $10, $11, NULLIF($12, ''),
			$13, NULLIF($14, ''), $15
		 )`,
		j.ID, j.CreatedAt, j.UpdatedAt, j.Status,
		j.CompanyName, j.CompanyWebsite, j.CompanyContact, j.CompanyDescription,
		j.JobTitle, j.Department, j.LocationType, j.Location,
		j.JobType, j.SalaryRange, j.JobDescription,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at DESC`,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, status,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.CreatedAt, &j.UpdatedAt, &j.Status,
		&j.CompanyName, &j.CompanyWebsite, &j.CompanyContact, &j.CompanyDescription,
		&j.JobTitle, &j.Department, &j.LocationType, &j.Location,
		&j.JobType, &j.SalaryRange, &j.JobDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.CreatedAt, &j.UpdatedAt, &j.Status,
			&j.CompanyName, &j.CompanyWebsite, &j.CompanyContact, &j.CompanyDescription,
			&j.JobTitle, &j.Department, &j.LocationType, &j.Location,
			&j.JobType, &j.SalaryRange, &j.JobDescription,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
