package ssot

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// IVRTransformer folds SSOT IVR menus into the same ivr_actions shape the
// RingCentral IVR transformer emits.
type IVRTransformer struct{}

func NewIVRTransformer() *IVRTransformer {
	return &IVRTransformer{}
}

func (t *IVRTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	details, ok := record["ivr_details"].([]interface{})
	if !ok || len(details) == 0 {
		return out, nil
	}

	first, ok := details[0].(map[string]interface{})
	if !ok {
		return out, nil
	}

	actions, _ := first["actions"].([]interface{})
	ivrActions := make([]map[string]interface{}, 0, len(actions))
	for _, item := range actions {
		action, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		ivrActions = append(ivrActions, transformAction(action))
	}

	out["ivr_actions"] = ivrActions
	delete(out, "ivr_details")

	return out, nil
}

func (t *IVRTransformer) ValidateInput(record map[string]interface{}) error {
	if record["id"] == nil {
		return transform.NewValidationError("invalid IVR record", "id")
	}
	return nil
}

func (t *IVRTransformer) ValidateOutput(record map[string]interface{}) error {
	if _, ok := record["ivr_details"]; ok {
		log.Warn("ivr_details still present after transform")
	}
	if record["id"] == nil {
		return transform.NewValidationError("invalid transformed IVR record", "id")
	}
	return nil
}

func transformAction(action map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}

	if input, ok := action["input"].(string); ok {
		out["key"] = rules.MapIVRKey(input)
	} else if key, ok := action["key"]; ok {
		out["key"] = key
	}

	var extensionID, extensionName string
	if ext, ok := action["extension"].(map[string]interface{}); ok {
		if ext["id"] != nil {
			extensionID = fmt.Sprint(ext["id"])
		}
		extensionName, _ = ext["name"].(string)
	}

	targetType := "user"
	if extensionName != "" {
		targetType = rules.DetectExtensionType(extensionName)
	}

	if name, ok := action["action"].(string); ok {
		code := rules.MapIVRAction(name, targetType)
		out["action"] = code

		if extensionID != "" && rules.ActionNeedsTarget(code) {
			out["target"] = map[string]interface{}{
				"type":         targetType,
				"extension_id": extensionID,
			}
		}
	}

	return out
}
