// Package ringcentral holds the RingCentral-to-Zoom entity transformers.
// Their output shape is the canonical one: the Dialpad transformers
// reproduce it so a single downstream loader serves both sources.
package ringcentral

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

var log = logrus.WithField("component", "transform.ringcentral")

// SitesTransformer converts RingCentral site records to Zoom site shape.
// The input businessAddress is kept; default_emergency_address, site_code
// and auto_receptionist_name are added alongside it.
type SitesTransformer struct{}

func NewSitesTransformer() *SitesTransformer {
	return &SitesTransformer{}
}

func (t *SitesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if addr, ok := record["businessAddress"].(map[string]interface{}); ok {
		out["default_emergency_address"] = emergencyAddress(addr)
	}

	if name, ok := record["name"].(string); ok && name != "" {
		out["site_code"] = rules.SiteCode(name)
		out["auto_receptionist_name"] = rules.AutoReceptionistName(name)
	}

	if tz := regionalTimezone(record); tz != "" {
		out["timezone"] = tz
	}

	return out, nil
}

func (t *SitesTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if _, ok := record["businessAddress"].(map[string]interface{}); !ok {
		missing = append(missing, "businessAddress")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid site record", missing...)
	}
	return nil
}

func (t *SitesTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if resolver.Get(record, "default_emergency_address.address_line1") == nil {
		missing = append(missing, "default_emergency_address.address_line1")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed site record", missing...)
	}
	return nil
}

// emergencyAddress converts a businessAddress block to the Zoom
// default_emergency_address shape. street2 only appears when present.
func emergencyAddress(addr map[string]interface{}) map[string]interface{} {
	country, _ := addr["country"].(string)

	emergency := map[string]interface{}{
		"address_line1": stringOrEmpty(addr["street"]),
		"city":          stringOrEmpty(addr["city"]),
		"state_code":    stringOrEmpty(addr["state"]),
		"zip":           stringOrEmpty(addr["zip"]),
		"country":       rules.CountryToISO(country),
	}

	if street2, ok := addr["street2"].(string); ok && street2 != "" {
		emergency["address_line2"] = street2
	}

	return emergency
}

// regionalTimezone resolves regionalSettings.timezone (numeric id or
// display name) to an IANA zone, or "" when the block is absent.
func regionalTimezone(record map[string]interface{}) string {
	tz, ok := resolver.Get(record, "regionalSettings.timezone").(map[string]interface{})
	if !ok {
		return ""
	}

	if id, ok := tz["id"].(string); ok && id != "" {
		return rules.TimezoneToIANA(id)
	}
	if name, ok := tz["name"].(string); ok && name != "" {
		return rules.TimezoneToIANA(name)
	}
	return ""
}

func stringOrEmpty(v interface{}) string {
	s, _ := v.(string)
	return s
}
