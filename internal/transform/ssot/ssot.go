// Package ssot holds the SSOT-to-Zoom entity transformers. Unlike the
// RingCentral set, these are driven by FieldMapping rows where the operator
// has configured them, with hard-coded defaults otherwise, because SSOT
// record shapes vary per deployment.
package ssot

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
)

var log = logrus.WithField("component", "transform.ssot")

// MappingSource supplies FieldMapping rows; *mapper.Mapper implements it.
type MappingSource interface {
	Mappings(jobTypeID int, sourcePlatform, targetEntity string) ([]*models.FieldMapping, error)
}

// loadMappings fetches mapping rows, degrading to nil (engine defaults) on
// any fetch failure.
func loadMappings(src MappingSource, jobTypeID int, targetEntity string) []*models.FieldMapping {
	if src == nil || jobTypeID == 0 {
		return nil
	}
	mappings, err := src.Mappings(jobTypeID, "ssot", targetEntity)
	if err != nil {
		log.Warnf("could not load field mappings for %s (job type %d), using defaults: %v", targetEntity, jobTypeID, err)
		return nil
	}
	return mappings
}

// firstString returns the first non-empty string among the record values at
// the given keys.
func firstString(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := record[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// configString reads a string override from a transformation config, falling
// back when the config or key is absent.
func configString(config map[string]interface{}, key, fallback string) string {
	if s, ok := config[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// configInt reads an integer override from a transformation config. YAML
// parses whole numbers as int, but float64 shows up after a JSON round trip.
func configInt(config map[string]interface{}, key string, fallback int) int {
	switch v := config[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}
