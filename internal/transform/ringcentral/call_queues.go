package ringcentral

import (
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// CallQueuesTransformer flattens a call queue's weekly business hours into
// the Zoom custom_hours_settings array. Records without business hours pass
// through untouched.
type CallQueuesTransformer struct{}

func NewCallQueuesTransformer() *CallQueuesTransformer {
	return &CallQueuesTransformer{}
}

func (t *CallQueuesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if weekly := weeklyRanges(record); weekly != nil {
		settings := rules.WeeklyRangesToCustomHours(weekly)
		if len(settings) > 0 {
			out["custom_hours_settings"] = settings
		} else {
			log.Warnf("no valid time ranges in weeklyRanges for queue %v", record["id"])
		}
	}

	return out, nil
}

func (t *CallQueuesTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid call queue record", missing...)
	}
	return nil
}

func (t *CallQueuesTransformer) ValidateOutput(record map[string]interface{}) error {
	if record["id"] == nil {
		return transform.NewValidationError("invalid transformed call queue record", "id")
	}
	return nil
}

// weeklyRanges finds the schedule whether business_hours is the API's array
// form or a bare object.
func weeklyRanges(record map[string]interface{}) map[string]interface{} {
	if weekly, ok := resolver.Get(record, "business_hours[0].schedule.weeklyRanges").(map[string]interface{}); ok {
		return weekly
	}
	if weekly, ok := resolver.Get(record, "business_hours.schedule.weeklyRanges").(map[string]interface{}); ok {
		return weekly
	}
	return nil
}
