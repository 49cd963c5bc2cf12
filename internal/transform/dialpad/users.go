package dialpad

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// UsersTransformer reshapes a Dialpad user into the RingCentral-shaped user
// record, including the user_info block the Zoom loader reads.
type UsersTransformer struct{}

func NewUsersTransformer() *UsersTransformer {
	return &UsersTransformer{}
}

func (t *UsersTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	id := entityID(record)
	state := stringOrEmpty(record["state"])

	out["uri"] = fmt.Sprintf("https://dialpad-api/users/%s", id)
	out["name"] = stringOrEmpty(record["display_name"])
	out["type"] = "User"
	out["status"] = statusFromState(state)
	if ext := record["extension"]; ext != nil {
		out["extensionNumber"] = fmt.Sprint(ext)
	}

	out["permissions"] = map[string]interface{}{
		"admin": map[string]interface{}{
			"enabled": boolValue(record["is_admin"]) || boolValue(record["is_super_admin"]),
		},
		"internationalCalling": map[string]interface{}{
			"enabled": boolValue(record["international_dialing_enabled"]),
		},
	}

	out["user_info"] = userInfo(record)

	return out, nil
}

func (t *UsersTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if entityID(record) == "" {
		missing = append(missing, "id")
	}
	if firstOf(record, "emails") == "" {
		missing = append(missing, "emails")
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

// userInfo builds the RingCentral-equivalent user_info block from Dialpad's
// flat fields and first-of arrays.
func userInfo(record map[string]interface{}) map[string]interface{} {
	info := map[string]interface{}{
		"first_name":   stringOrEmpty(record["first_name"]),
		"last_name":    stringOrEmpty(record["last_name"]),
		"email":        firstOf(record, "emails"),
		"phone_number": firstOf(record, "phone_numbers"),
		"type":         "User",
	}

	if tz := stringOrEmpty(record["timezone"]); tz != "" {
		info["timezone"] = timezoneToIANA(tz)
	}

	return info
}

// firstOf returns the first element of a string array field.
func firstOf(record map[string]interface{}, key string) string {
	arr, ok := record[key].([]interface{})
	if !ok || len(arr) == 0 {
		return ""
	}
	return fmt.Sprint(arr[0])
}

func boolValue(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
