package ssot

import (
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// SitesTransformer converts SSOT location records to Zoom site shape.
// businessAddress is removed after folding into default_emergency_address;
// that is the documented difference from the RingCentral variant.
type SitesTransformer struct {
	mappings []*models.FieldMapping
	config   map[string]interface{}
}

func NewSitesTransformer(src MappingSource, jobTypeID int, config map[string]interface{}) *SitesTransformer {
	return &SitesTransformer{
		mappings: loadMappings(src, jobTypeID, "sites"),
		config:   config,
	}
}

func (t *SitesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if len(t.mappings) > 0 {
		mapped, missing := mapper.ApplyFlat(record, t.mappings)
		if len(missing) > 0 {
			return nil, transform.NewValidationError("missing required site fields", missing...)
		}
		for k, v := range mapped {
			out[k] = v
		}
	}

	if addr, ok := record["businessAddress"].(map[string]interface{}); ok {
		country, _ := addr["country"].(string)
		emergency := map[string]interface{}{
			"address_line1": rules.NormalizeAddressField(stringOrEmpty(addr["street"])),
			"city":          stringOrEmpty(addr["city"]),
			"state_code":    stringOrEmpty(addr["state"]),
			"zip":           stringOrEmpty(addr["zip"]),
			"country":       rules.CountryToISO(country),
		}
		if street2, ok := addr["street2"].(string); ok && street2 != "" {
			emergency["address_line2"] = rules.NormalizeAddressField(street2)
		}
		out["default_emergency_address"] = emergency
		delete(out, "businessAddress")
	}

	if name, ok := record["name"].(string); ok && name != "" {
		out["site_code"] = rules.SiteCode(name)
	}

	if _, ok := out["status"]; !ok {
		out["status"] = configString(t.config, "default_status", "active")
	}

	return out, nil
}

func (t *SitesTransformer) ValidateInput(record map[string]interface{}) error {
	if s, _ := record["name"].(string); s == "" {
		return transform.NewValidationError("invalid site record", "name")
	}
	return nil
}

func (t *SitesTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if _, ok := record["businessAddress"]; ok {
		log.Warn("businessAddress still present after SSOT site transform")
	}
	if resolver.Get(record, "site_code") == nil {
		missing = append(missing, "site_code")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed site record", missing...)
	}
	return nil
}

func stringOrEmpty(v interface{}) string {
	s, _ := v.(string)
	return s
}
