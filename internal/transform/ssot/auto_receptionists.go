package ssot

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// AutoReceptionistsTransformer converts SSOT auto-attendant records to the
// RingCentral-shaped auto receptionist output: rc_site_id from the owning
// site, a 30-char-safe name when derived from a site name.
type AutoReceptionistsTransformer struct {
	mappings []*models.FieldMapping
}

func NewAutoReceptionistsTransformer(src MappingSource, jobTypeID int) *AutoReceptionistsTransformer {
	return &AutoReceptionistsTransformer{
		mappings: loadMappings(src, jobTypeID, "auto_receptionists"),
	}
}

func (t *AutoReceptionistsTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if len(t.mappings) > 0 {
		mapped, missing := mapper.ApplyFlat(record, t.mappings)
		if len(missing) > 0 {
			return nil, transform.NewValidationError("missing required auto receptionist fields", missing...)
		}
		for k, v := range mapped {
			out[k] = v
		}
	}

	if siteID := resolver.Get(record, "site.id"); siteID != nil {
		out["rc_site_id"] = fmt.Sprint(siteID)
	}

	// derive the placeholder name when only a site name is known
	if firstString(record, "name") == "" {
		if siteName := firstString(record, "site_name"); siteName != "" {
			out["name"] = rules.AutoReceptionistName(siteName)
		}
	}

	return out, nil
}

func (t *AutoReceptionistsTransformer) ValidateInput(record map[string]interface{}) error {
	if record["id"] == nil {
		return transform.NewValidationError("invalid auto receptionist record", "id")
	}
	return nil
}

func (t *AutoReceptionistsTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if firstString(record, "name") == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed auto receptionist record", missing...)
	}
	return nil
}
