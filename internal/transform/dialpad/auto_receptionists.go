package dialpad

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// AutoReceptionistsTransformer reshapes a Dialpad office into the
// RingCentral-shaped auto receptionist record. Each office maps 1:1 to a
// site, so the office id doubles as the site dependency key.
type AutoReceptionistsTransformer struct{}

func NewAutoReceptionistsTransformer() *AutoReceptionistsTransformer {
	return &AutoReceptionistsTransformer{}
}

func (t *AutoReceptionistsTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	id := entityID(record)
	name := stringOrEmpty(record["name"])

	out["id"] = id
	out["extensionNumber"] = rules.DeterministicExtension(id, "ar")
	out["site.id"] = id
	out["rc_site_id"] = id
	out["office_id"] = id

	out["ivr_details"] = []interface{}{
		map[string]interface{}{
			"uri":  fmt.Sprintf("https://dialpad-api/offices/%s/ivr", id),
			"id":   id,
			"name": name,
			"prompt": map[string]interface{}{
				"mode": "TextToSpeech",
				"text": resolver.RenderTemplate("Thank you for calling {name}.", record),
			},
			"site": map[string]interface{}{"id": id},
		},
	}

	return out, nil
}

func (t *AutoReceptionistsTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if entityID(record) == "" {
		missing = append(missing, "id")
	}
	if stringOrEmpty(record["name"]) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid auto receptionist record", missing...)
	}
	return nil
}

func (t *AutoReceptionistsTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	for _, field := range []string{"id", "name", "extensionNumber", "site.id"} {
		if record[field] == nil || record[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed auto receptionist record", missing...)
	}
	return nil
}
