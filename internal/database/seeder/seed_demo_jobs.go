package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// DemoJobsSeeder inserts two approved demo postings into an empty table so a
// fresh deployment has something on the public board. A non-empty table is
// left untouched.
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demos := []struct {
		CompanyName        string
		CompanyWebsite     string
		CompanyContact     string
		CompanyDescription string
		JobTitle           string
		Department         job.Department
		LocationType       job.LocationType
		Location           string
		JobType            job.JobType
		SalaryRange        string
		JobDescription     string
	}{
		{
			CompanyName:        "DeFi Protocol Labs",
			CompanyWebsite:     "https://defiprotocol.com",
			CompanyContact:     "careers@defiprotocol.com",
			CompanyDescription: "We are building the next generation of decentralized finance protocols to revolutionize how people interact with financial services.",
			JobTitle:           "Senior Frontend Developer",
			Department:         job.DepartmentFrontend,
			LocationType:       job.LocationRemote,
			Location:           "Worldwide",
			JobType:            job.TypeFullTime,
			SalaryRange:        "$120k - $180k",
			JobDescription:     "We are looking for a Senior Frontend Developer to join our growing team and help build the future of decentralized finance.",
		},
		{
			CompanyName:        "Blockchain Ventures",
			CompanyWebsite:     "https://blockchainventures.io",
			CompanyContact:     "team@blockchainventures.io",
			CompanyDescription: "A leading blockchain consultancy helping enterprises adopt Web3 technologies.",
			JobTitle:           "Smart Contract Developer",
			Department:         job.DepartmentSmartContract,
			LocationType:       job.LocationHybrid,
			Location:           "New York, NY",
			JobType:            job.TypeFullTime,
			SalaryRange:        "$140k - $200k",
			JobDescription:     "Join our team of blockchain experts and help enterprise clients build secure and efficient smart contracts.",
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, d := range demos {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (
				id, status,
				company_name, company_website, company_contact, company_description,
				job_title, department, location_type, location,
				job_type, salary_range, job_description
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			uuid.New(), job.StatusApproved,
			d.CompanyName, d.CompanyWebsite, d.CompanyContact, d.CompanyDescription,
			d.JobTitle, d.Department, d.LocationType, d.Location,
			d.JobType, d.SalaryRange, d.JobDescription,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
