package repository

import (
	"database/sql"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
)

type TransformationConfigRepository struct {
	db *sql.DB
}

func NewTransformationConfigRepository(db *sql.DB) *TransformationConfigRepository {
	return &TransformationConfigRepository{db: db}
}

// FindByJobTypeCode loads the YAML transformation config for a job type and
// returns it parsed. A missing row is not an error: the caller falls back to
// engine defaults on a nil config.
func (r *TransformationConfigRepository) FindByJobTypeCode(code string) (*models.TransformationConfig, error) {
	query := `
		SELECT job_type_code, config_yaml
		FROM transformation_configs
		WHERE job_type_code = $1
	`

	cfg := &models.TransformationConfig{}
	err := r.db.QueryRow(query, code).Scan(&cfg.JobTypeCode, &cfg.RawYAML)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal([]byte(cfg.RawYAML), &cfg.Config); err != nil {
		return nil, fmt.Errorf("parsing transformation config for %s: %w", code, err)
	}

	return cfg, nil
}

// Config returns just the parsed key/value bundle for a job type, nil when
// no row exists. This is the shape the dispatch layer consumes.
func (r *TransformationConfigRepository) Config(code string) (map[string]interface{}, error) {
	cfg, err := r.FindByJobTypeCode(code)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	return cfg.Config, nil
}

// Upsert stores a YAML config after checking it parses.
func (r *TransformationConfigRepository) Upsert(cfg *models.TransformationConfig) error {
	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(cfg.RawYAML), &parsed); err != nil {
		return fmt.Errorf("invalid transformation config yaml: %w", err)
	}
	cfg.Config = parsed

	query := `
		INSERT INTO transformation_configs (job_type_code, config_yaml)
		VALUES ($1, $2)
		ON CONFLICT (job_type_code)
		DO UPDATE SET config_yaml = EXCLUDED.config_yaml
	`
	_, err := r.db.Exec(query, cfg.JobTypeCode, cfg.RawYAML)
	return err
}
