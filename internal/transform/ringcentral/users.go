package ringcentral

import (
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// UsersTransformer folds a RingCentral user's contact block into the Zoom
// user_info shape. contact is the one removed key; everything else is kept.
type UsersTransformer struct{}

func NewUsersTransformer() *UsersTransformer {
	return &UsersTransformer{}
}

func (t *UsersTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	if contact, ok := record["contact"].(map[string]interface{}); ok {
		out["user_info"] = map[string]interface{}{
			"first_name":   stringOrEmpty(contact["firstName"]),
			"last_name":    stringOrEmpty(contact["lastName"]),
			"email":        stringOrEmpty(contact["email"]),
			"phone_number": stringOrEmpty(contact["businessPhone"]),
		}
		delete(out, "contact")
	}

	if _, ok := record["type"]; !ok {
		out["type"] = 1
	}

	if tz := regionalTimezone(record); tz != "" {
		out["timezone"] = tz
	}

	return out, nil
}

func (t *UsersTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if resolver.Get(record, "contact.email") == nil {
		missing = append(missing, "contact.email")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid user record", missing...)
	}
	return nil
}

func (t *UsersTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	for _, field := range []string{"user_info.first_name", "user_info.last_name", "user_info.email"} {
		if v := resolver.Get(record, field); v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed user record", missing...)
	}
	return nil
}
