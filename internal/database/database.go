package database

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "database")

func New(connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	log.Info("connected to PostgreSQL")
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS job_types (
		id INTEGER PRIMARY KEY,
		code VARCHAR(100) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		source_platform_id INTEGER NOT NULL,
		target_platform_id INTEGER NOT NULL,
		is_extraction_only BOOLEAN DEFAULT false,
		dependencies INTEGER[] DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS field_mappings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		job_type_id INTEGER NOT NULL,
		source_platform VARCHAR(50) NOT NULL,
		target_entity VARCHAR(50) NOT NULL,
		source_field VARCHAR(255) NOT NULL,
		target_field VARCHAR(255) NOT NULL,
		transformation_rule VARCHAR(50),
		is_required BOOLEAN DEFAULT false,
		description TEXT,
		created_at TIMESTAMP DEFAULT NOW(),
		UNIQUE(job_type_id, source_platform, target_entity, target_field)
	);

	CREATE TABLE IF NOT EXISTS transformation_configs (
		job_type_code VARCHAR(100) PRIMARY KEY,
		config_yaml TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trusted_services (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		api_key VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		allowed_actions TEXT[],
		allowed_platforms TEXT[] DEFAULT '{}',
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT NOW()
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return err
	}

	log.Info("migrations applied")
	return nil
}
