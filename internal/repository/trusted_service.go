package repository

import (
	"database/sql"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/lib/pq"
)

type TrustedServiceRepository struct {
	db *sql.DB
}

func NewTrustedServiceRepository(db *sql.DB) *TrustedServiceRepository {
	return &TrustedServiceRepository{db: db}
}

func (r *TrustedServiceRepository) FindByAPIKey(apiKey string) (*models.TrustedService, error) {
	query := `
		SELECT id, api_key, name, allowed_actions, allowed_platforms, is_active, created_at
		FROM trusted_services
		WHERE api_key = $1 AND is_active = true
	`

	service := &models.TrustedService{}
	var actions, platforms pq.StringArray

	err := r.db.QueryRow(query, apiKey).Scan(
		&service.ID,
		&service.APIKey,
		&service.Name,
		&actions,
		&platforms,
		&service.IsActive,
		&service.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	service.AllowedActions = []string(actions)
	service.AllowedPlatforms = []string(platforms)
	return service, nil
}
