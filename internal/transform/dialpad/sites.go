package dialpad

import (
	"fmt"
	"strings"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// SitesTransformer reshapes a Dialpad office into the RingCentral-shaped
// site record: e911_address becomes default_emergency_address and a
// regionalSettings block is synthesized.
type SitesTransformer struct{}

func NewSitesTransformer() *SitesTransformer {
	return &SitesTransformer{}
}

func (t *SitesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	id := entityID(record)
	name := stringOrEmpty(record["name"])

	out["uri"] = fmt.Sprintf("https://dialpad-api/offices/%s", id)
	if record["office_id"] != nil {
		out["extensionNumber"] = fmt.Sprint(record["office_id"])
	} else {
		out["extensionNumber"] = id
	}
	out["regionalSettings"] = regionalSettings(record)
	out["siteAccess"] = "Unlimited"
	out["callerIdName"] = strings.ToUpper(name)

	if name != "" {
		out["site_code"] = rules.SiteCode(name)
	}

	if e911, ok := record["e911_address"].(map[string]interface{}); ok {
		out["default_emergency_address"] = emergencyAddress(e911)
	}

	return out, nil
}

func (t *SitesTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if entityID(record) == "" {
		missing = append(missing, "id")
	}
	if stringOrEmpty(record["name"]) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid site record", missing...)
	}
	return nil
}

func (t *SitesTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	if stringOrEmpty(record["name"]) == "" {
		missing = append(missing, "name")
	}
	if resolver.Get(record, "regionalSettings.timezone.name") == nil {
		missing = append(missing, "regionalSettings.timezone.name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed site record", missing...)
	}
	return nil
}

// emergencyAddress maps Dialpad's e911_address to the shape the RingCentral
// site transformer emits (address, not street, is the line-1 source).
func emergencyAddress(e911 map[string]interface{}) map[string]interface{} {
	country := stringOrEmpty(e911["country"])
	iso := rules.CountryToISO(country)
	// Dialpad country values are often lowercase ISO already
	if len(iso) == 2 {
		iso = strings.ToUpper(iso)
	}

	return map[string]interface{}{
		"address_line1": stringOrEmpty(e911["address"]),
		"city":          stringOrEmpty(e911["city"]),
		"state_code":    stringOrEmpty(e911["state"]),
		"zip":           stringOrEmpty(e911["zip"]),
		"country":       iso,
	}
}

// regionalSettings synthesizes the RingCentral regionalSettings block from
// the office timezone; the downstream loader only relies on timezone.name.
func regionalSettings(record map[string]interface{}) map[string]interface{} {
	tz := stringOrEmpty(record["timezone"])
	if tz == "" {
		tz = "US/Pacific"
	}
	iana := timezoneToIANA(tz)

	return map[string]interface{}{
		"timezone": map[string]interface{}{
			"name": iana,
		},
		"homeCountry": map[string]interface{}{
			"id":      "1",
			"name":    "United States",
			"isoCode": "US",
		},
		"language": map[string]interface{}{
			"id":         "1033",
			"name":       "English (United States)",
			"localeCode": "en-US",
		},
		"timeFormat": "24h",
	}
}
