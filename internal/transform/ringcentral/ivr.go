package ringcentral

import (
	"fmt"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// IVRTransformer folds ivr_details[0].actions into the flat ivr_actions
// array Zoom expects. ivr_details is the one removed key.
type IVRTransformer struct{}

func NewIVRTransformer() *IVRTransformer {
	return &IVRTransformer{}
}

func (t *IVRTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	details, ok := record["ivr_details"].([]interface{})
	if !ok || len(details) == 0 {
		log.Debugf("no ivr_details on record %v, nothing to fold", record["id"])
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
			log.Warnf("skipping non-object IVR action: %v", item)
			continue
		}
		ivrActions = append(ivrActions, transformAction(action))
	}

	out["ivr_actions"] = ivrActions
	delete(out, "ivr_details")

	return out, nil
}

func (t *IVRTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if record["id"] == nil {
		missing = append(missing, "id")
	}
	if s, _ := record["name"].(string); s == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid IVR record", missing...)
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

// transformAction maps one menu action: input key, action code keyed off the
// heuristically detected target type, and a target object only when the
// action takes one.
func transformAction(action map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}

	if input, ok := action["input"].(string); ok {
		out["key"] = rules.MapIVRKey(input)
	} else if key, ok := action["key"]; ok {
		out["key"] = key
	}

	extensionID, extensionName := actionExtension(action)

	// Target type comes from name keywords. Best effort: authoritative
	// extension type data is not available at transform time.
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

// actionExtension reads the pointed-at extension from either the source
// form (extension.id/name) or the already-mapped form (target.extension_id).
func actionExtension(action map[string]interface{}) (id, name string) {
	if ext, ok := action["extension"].(map[string]interface{}); ok {
		if ext["id"] != nil {
			id = fmt.Sprint(ext["id"])
		}
		name, _ = ext["name"].(string)
		return id, name
	}
	if target, ok := action["target"].(map[string]interface{}); ok {
		if target["extension_id"] != nil {
			id = fmt.Sprint(target["extension_id"])
		}
	}
	return id, name
}
