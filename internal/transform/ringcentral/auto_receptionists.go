package ringcentral

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// AutoReceptionistsTransformer exposes the owning site id as rc_site_id,
// the key the downstream loader resolves site dependencies with.
type AutoReceptionistsTransformer struct{}

func NewAutoReceptionistsTransformer() *AutoReceptionistsTransformer {
	return &AutoReceptionistsTransformer{}
}

func (t *AutoReceptionistsTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	// site.id may be a literal key (pre-flattened extracts) or a nested
	// object; the resolver checks the literal form first.
	if siteID := resolver.Get(record, "site.id"); siteID != nil {
		out["rc_site_id"] = fmt.Sprint(siteID)
	}

	return out, nil
}

func (t *AutoReceptionistsTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid auto receptionist record", missing...)
	}
	return nil
}

func (t *AutoReceptionistsTransformer) ValidateOutput(record map[string]interface{}) error {
	if record["id"] == nil {
		return transform.NewValidationError("invalid transformed auto receptionist record", "id")
	}
	return nil
}
