package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
)

type JobTypeRepository struct {
	db *sql.DB
}

func NewJobTypeRepository(db *sql.DB) *JobTypeRepository {
	return &JobTypeRepository{db: db}
}

func (r *JobTypeRepository) FindByCode(code string) (*models.JobType, error) {
	query := `
		SELECT id, code, name, source_platform_id, target_platform_id, is_extraction_only, dependencies
		FROM job_types
		WHERE code = $1
	`
	return r.scanOne(r.db.QueryRow(query, code))
}

func (r *JobTypeRepository) FindByID(id int) (*models.JobType, error) {
	query := `
		SELECT id, code, name, source_platform_id, target_platform_id, is_extraction_only, dependencies
		FROM job_types
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *JobTypeRepository) List() ([]*models.JobType, error) {
	query := `
		SELECT id, code, name, source_platform_id, target_platform_id, is_extraction_only, dependencies
		FROM job_types
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobTypes []*models.JobType
	for rows.Next() {
		jt := &models.JobType{}
		var deps pq.Int64Array

		err := rows.Scan(&jt.ID, &jt.Code, &jt.Name, &jt.SourcePlatformID, &jt.TargetPlatformID, &jt.IsExtractionOnly, &deps)
		if err != nil {
			return nil, err
		}

		for _, d := range deps {
			jt.Dependencies = append(jt.Dependencies, int(d))
		}
		jobTypes = append(jobTypes, jt)
	}

	return jobTypes, rows.Err()
}

func (r *JobTypeRepository) scanOne(row *sql.Row) (*models.JobType, error) {
	jt := &models.JobType{}
	var deps pq.Int64Array

	err := row.Scan(&jt.ID, &jt.Code, &jt.Name, &jt.SourcePlatformID, &jt.TargetPlatformID, &jt.IsExtractionOnly, &deps)
	if err != nil {
		return nil, err
	}

	for _, d := range deps {
		jt.Dependencies = append(jt.Dependencies, int(d))
	}
	return jt, nil
}
