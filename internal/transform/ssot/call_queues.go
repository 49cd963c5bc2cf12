package ssot

import (
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// CallQueuesTransformer converts SSOT call-group records to the same shape
// the RingCentral call queue transformer produces, with optional mapping
// rows applied first for deployment-specific field renames.
type CallQueuesTransformer struct {
	mappings []*models.FieldMapping
}

func NewCallQueuesTransformer(src MappingSource, jobTypeID int) *CallQueuesTransformer {
	return &CallQueuesTransformer{
		mappings: loadMappings(src, jobTypeID, "call_queues"),
	}
}

func (t *CallQueuesTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if len(t.mappings) > 0 {
		mapped, missing := mapper.ApplyFlat(record, t.mappings)
		if len(missing) > 0 {
			return nil, transform.NewValidationError("missing required call queue fields", missing...)
		}
		for k, v := range mapped {
			out[k] = v
		}
	}

	if weekly, ok := resolver.Get(out, "business_hours.schedule.weeklyRanges").(map[string]interface{}); ok {
		if settings := rules.WeeklyRangesToCustomHours(weekly); len(settings) > 0 {
			out["custom_hours_settings"] = settings
		}
	} else if weekly, ok := resolver.Get(out, "business_hours[0].schedule.weeklyRanges").(map[string]interface{}); ok {
		if settings := rules.WeeklyRangesToCustomHours(weekly); len(settings) > 0 {
			out["custom_hours_settings"] = settings
		}
	}

	return out, nil
}

func (t *CallQueuesTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if firstString(record, "name") == "" {
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
