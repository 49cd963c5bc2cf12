package dialpad

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// dayFields maps Dialpad's per-day hour arrays to weekday names.
var dayFields = map[string]string{
	"monday_hours":    "monday",
	"tuesday_hours":   "tuesday",
	"wednesday_hours": "wednesday",
	"thursday_hours":  "thursday",
	"friday_hours":    "friday",
	"saturday_hours":  "saturday",
	"sunday_hours":    "sunday",
}

// CallQueuesTransformer reshapes a Dialpad department into the
// RingCentral-shaped call queue record, with a deterministic "cq"-band
// extension and per-day hours folded through the weeklyRanges form into
// custom_hours_settings.
type CallQueuesTransformer struct{}

func NewCallQueuesTransformer() *CallQueuesTransformer {
	return &CallQueuesTransformer{}
}

func (t *CallQueuesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	id := entityID(record)
	name := stringOrEmpty(record["name"])
	extension := rules.DeterministicExtension(id, "cq")

	out["uri"] = fmt.Sprintf("https://dialpad-api/callqueues/%s", id)
	out["extensionNumber"] = extension
	out["site"] = siteRef(record, name)
	out["queue_settings"] = []interface{}{
		map[string]interface{}{
			"id":              fieldString(record, "id"),
			"name":            name,
			"extensionNumber": extension,
			"status":          statusFromState(stringOrEmpty(record["state"])),
			"site":            siteRef(record, name),
		},
	}

	weekly := weeklyRangesFromDays(record)
	out["business_hours"] = []interface{}{
		map[string]interface{}{
			"uri":      fmt.Sprintf("https://dialpad-api/callqueues/%s/business-hours", id),
			"schedule": map[string]interface{}{"weeklyRanges": weekly},
		},
	}
	if len(weekly) > 0 {
		if settings := rules.WeeklyRangesToCustomHours(weekly); len(settings) > 0 {
			out["custom_hours_settings"] = settings
		}
	}

	return out, nil
}

func (t *CallQueuesTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if entityID(record) == "" {
		missing = append(missing, "id")
	}
	if stringOrEmpty(record["name"]) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid call queue record", missing...)
	}
	return nil
}

func (t *CallQueuesTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	if record["extensionNumber"] == nil {
		missing = append(missing, "extensionNumber")
	}
	if resolver.Get(record, "site.id") == nil {
		missing = append(missing, "site.id")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed call queue record", missing...)
	}
	return nil
}

// siteRef builds the site reference from the owning office. A department
// without an office keeps an empty id rather than a formatted nil.
func siteRef(record map[string]interface{}, name string) map[string]interface{} {
	return map[string]interface{}{
		"id":   fieldString(record, "office_id"),
		"name": name,
	}
}

// weeklyRangesFromDays folds Dialpad's [start, end] per-day arrays into the
// weeklyRanges shape the rule library understands.
func weeklyRangesFromDays(record map[string]interface{}) map[string]interface{} {
	weekly := map[string]interface{}{}

	for field, day := range dayFields {
		hours, ok := record[field].([]interface{})
		if !ok || len(hours) < 2 {
			continue
		}
		weekly[day] = []interface{}{
			map[string]interface{}{
				"from": fmt.Sprint(hours[0]),
				"to":   fmt.Sprint(hours[1]),
			},
		}
	}

	return weekly
}
