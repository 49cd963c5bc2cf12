package repository

import (
	"database/sql"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
)

type FieldMappingRepository struct {
	db *sql.DB
}

func NewFieldMappingRepository(db *sql.DB) *FieldMappingRepository {
	return &FieldMappingRepository{db: db}
}

func (r *FieldMappingRepository) FindByJobType(jobTypeID int, sourcePlatform, targetEntity string) ([]*models.FieldMapping, error) {
	query := `
		SELECT id, job_type_id, source_platform, target_entity, source_field, target_field, transformation_rule, is_required, description, created_at
		FROM field_mappings
		WHERE job_type_id = $1 AND source_platform = $2 AND target_entity = $3
		ORDER BY target_field
	`

	rows, err := r.db.Query(query, jobTypeID, sourcePlatform, targetEntity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMappings(rows)
}

func (r *FieldMappingRepository) List(sourcePlatform, targetEntity string) ([]*models.FieldMapping, error) {
	query := `
		SELECT id, job_type_id, source_platform, target_entity, source_field, target_field, transformation_rule, is_required, description, created_at
		FROM field_mappings
		WHERE ($1 = '' OR source_platform = $1)
		  AND ($2 = '' OR target_entity = $2)
		ORDER BY job_type_id, source_platform, target_entity, target_field
	`

	rows, err := r.db.Query(query, sourcePlatform, targetEntity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMappings(rows)
}

// Upsert inserts or replaces a mapping row. The conflict target is
// (job_type_id, source_platform, target_entity, target_field), so a mapping
// set can never hold two rows writing the same target field.
func (r *FieldMappingRepository) Upsert(mapping *models.FieldMapping) (*models.FieldMapping, error) {
	query := `
		INSERT INTO field_mappings (job_type_id, source_platform, target_entity, source_field, target_field, transformation_rule, is_required, description)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''))
		ON CONFLICT (job_type_id, source_platform, target_entity, target_field)
		DO UPDATE SET
			source_field = EXCLUDED.source_field,
			transformation_rule = EXCLUDED.transformation_rule,
			is_required = EXCLUDED.is_required,
			description = EXCLUDED.description
		RETURNING id, job_type_id, source_platform, target_entity, source_field, target_field, transformation_rule, is_required, description, created_at
	`

	row := &models.FieldMapping{}
	var rule, description sql.NullString

	err := r.db.QueryRow(
		query,
		mapping.JobTypeID,
		mapping.SourcePlatform,
		mapping.TargetEntity,
		mapping.SourceField,
		mapping.TargetField,
		mapping.TransformationRule,
		mapping.IsRequired,
		mapping.Description,
	).Scan(
		&row.ID,
		&row.JobTypeID,
		&row.SourcePlatform,
		&row.TargetEntity,
		&row.SourceField,
		&row.TargetField,
		&rule,
		&row.IsRequired,
		&description,
		&row.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rule.Valid {
		row.TransformationRule = rule.String
	}
	if description.Valid {
		row.Description = description.String
	}

	return row, nil
}

func (r *FieldMappingRepository) DeleteByID(id string) error {
	_, err := r.db.Exec(`DELETE FROM field_mappings WHERE id = $1`, id)
	return err
}

func scanMappings(rows *sql.Rows) ([]*models.FieldMapping, error) {
	var mappings []*models.FieldMapping
	for rows.Next() {
		m := &models.FieldMapping{}
		var rule, description sql.NullString

		err := rows.Scan(
			&m.ID,
			&m.JobTypeID,
			&m.SourcePlatform,
			&m.TargetEntity,
			&m.SourceField,
			&m.TargetField,
			&rule,
			&m.IsRequired,
			&description,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if rule.Valid {
			m.TransformationRule = rule.String
		}
		if description.Valid {
			m.Description = description.String
		}
		mappings = append(mappings, m)
	}

	return mappings, rows.Err()
}
