package ssot

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// UsersTransformer converts SSOT person records to Zoom user shape:
// user_info assembled from mapping rows (or field-name defaults), user type
// string mapped to the numeric code, phone numbers reformatted, and
// display_name derived.
type UsersTransformer struct {
	mappings []*models.FieldMapping
	config   map[string]interface{}
}

func NewUsersTransformer(src MappingSource, jobTypeID int, config map[string]interface{}) *UsersTransformer {
	return &UsersTransformer{
		mappings: loadMappings(src, jobTypeID, "users"),
		config:   config,
	}
}

func (t *UsersTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	userInfo := t.buildUserInfo(record)

	if tz := record["timezone"]; tz != nil {
		userInfo["timezone"] = timezoneToIANA(tz)
	}

	if userType, ok := record["user_type"].(string); ok && userType != "" {
		userInfo["type"] = rules.MapUserType(userType)
	} else if _, ok := userInfo["type"]; !ok {
		userInfo["type"] = configInt(t.config, "default_user_type", 1)
	}

	out["user_info"] = userInfo

	if phones, ok := record["phone_numbers"].([]interface{}); ok {
		if formatted := rules.FormatPhoneNumbers(phones); len(formatted) > 0 {
			out["phone_numbers"] = formatted
		}
	}

	first, _ := userInfo["first_name"].(string)
	last, _ := userInfo["last_name"].(string)
	if display := rules.DisplayName(first, last); display != "" {
		out["display_name"] = display
	}

	if _, ok := out["status"]; !ok {
		out["status"] = configString(t.config, "default_status", "active")
	}

	return out, nil
}

// buildUserInfo assembles user_info from configured nested mappings, or
// from the conventional SSOT field names when no rows exist.
func (t *UsersTransformer) buildUserInfo(record map[string]interface{}) map[string]interface{} {
	if len(t.mappings) > 0 {
		mapped := mapper.ApplyNested(record, t.mappings, "user_info")
		if info, ok := mapped["user_info"].(map[string]interface{}); ok && len(info) > 0 {
			return info
		}
		log.Debug("mapping rows produced no user_info fields, falling back to defaults")
	}

	return map[string]interface{}{
		"first_name":   firstString(record, "first_name", "firstName"),
		"last_name":    firstString(record, "last_name", "lastName"),
		"email":        firstString(record, "email"),
		"phone_number": firstString(record, "phone_number", "phoneNumber", "business_phone"),
	}
}

func (t *UsersTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if firstString(record, "email") == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid user record", missing...)
	}
	return nil
}

func (t *UsersTransformer) ValidateOutput(record map[string]interface{}) error {
	var missing []string
	for _, field := range []string{"user_info.first_name", "user_info.last_name", "user_info.email", "user_info.type"} {
		if v := resolver.Get(record, field); v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid transformed user record", missing...)
	}
	return nil
}

// timezoneToIANA accepts the SSOT timezone forms: a plain string, or an
// object carrying a numeric platform id or display name.
func timezoneToIANA(tz interface{}) string {
	switch v := tz.(type) {
	case string:
		return rules.TimezoneToIANA(v)
	case map[string]interface{}:
		if id, ok := v["id"]; ok && id != nil {
			return rules.TimezoneToIANA(fmt.Sprint(id))
		}
		if name, ok := v["name"].(string); ok {
			return rules.TimezoneToIANA(name)
		}
	}
	return rules.TimezoneToIANA("")
}
