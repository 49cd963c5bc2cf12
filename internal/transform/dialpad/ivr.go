package dialpad

import (
	"fmt"
	"strings"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/rules"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// IVRTransformer reshapes a Dialpad office's routing_options.dtmf entries
// into the RingCentral-shaped ivr_actions array.
type IVRTransformer struct{}

func NewIVRTransformer() *IVRTransformer {
	return &IVRTransformer{}
}

func (t *IVRTransformer) Transform(record map[string]interface{}) (map[string]interface{}, error) {
	out := transform.Copy(record)

	id := entityID(record)
	out["id"] = id
	out["site.id"] = id
	if record["office_id"] != nil {
		out["extensionNumber"] = fmt.Sprint(record["office_id"])
	} else {
		out["extensionNumber"] = id
	}
	out["ivr_actions"] = t.ivrActions(record)

	return out, nil
}

func (t *IVRTransformer) ValidateInput(record map[string]interface{}) error {
	var missing []string
	if entityID(record) == "" {
		missing = append(missing, "id")
	}
	if stringOrEmpty(record["name"]) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return transform.NewValidationError("invalid IVR record", missing...)
	}
	return nil
}

func (t *IVRTransformer) ValidateOutput(record map[string]interface{}) error {
	if _, ok := record["ivr_actions"].([]map[string]interface{}); !ok {
		return transform.NewValidationError("invalid transformed IVR record", "ivr_actions")
	}
	return nil
}

// ivrActions walks the open and closed routing options and appends the
// timeout action derived from no_operators_action.
func (t *IVRTransformer) ivrActions(record map[string]interface{}) []map[string]interface{} {
	actions := []map[string]interface{}{}

	routing, ok := record["routing_options"].(map[string]interface{})
	if !ok {
		log.Warnf("no routing_options on office %v", record["id"])
		return actions
	}

	for _, state := range []string{"open", "closed"} {
		stateOptions, ok := routing[state].(map[string]interface{})
		if !ok {
			continue
		}
		dtmf, ok := stateOptions["dtmf"].([]interface{})
		if !ok {
			continue
		}
		for _, item := range dtmf {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if action := transformDTMF(entry); action != nil {
				actions = append(actions, action)
			}
		}
	}

	return append(actions, timeoutAction(record))
}

// transformDTMF converts one DTMF entry to the RingCentral-shaped action.
func transformDTMF(entry map[string]interface{}) map[string]interface{} {
	input := stringOrEmpty(entry["input"])
	options, ok := entry["options"].(map[string]interface{})
	if input == "" || !ok {
		return nil
	}

	dialpadAction := stringOrEmpty(options["action"])
	targetType := targetTypeFromOptions(options)
	code := mapDialpadAction(dialpadAction, targetType)

	action := map[string]interface{}{
		"key":    mapInputKey(input),
		"action": code,
	}

	targetID := stringOrEmpty(options["action_target_id"])
	if targetID != "" && rules.ActionNeedsTarget(code) {
		action["target"] = map[string]interface{}{
			"type":         targetType,
			"extension_id": targetID,
		}
	}

	return action
}

// mapInputKey folds Dialpad key spellings to the Zoom key vocabulary.
func mapInputKey(input string) string {
	switch strings.ToLower(input) {
	case "star", "*":
		return "*"
	case "hash", "pound", "#":
		return "#"
	}
	return input
}

// mapDialpadAction converts Dialpad routing action names to Zoom action
// codes, voicemail keyed by target type like the RingCentral table.
func mapDialpadAction(action, targetType string) int {
	switch action {
	case "operator":
		return 2
	case "department":
		return 7
	case "voicemail":
		switch targetType {
		case "call_queue":
			return 400
		case "auto_receptionist":
			return 300
		default:
			return 200
		}
	case "directory":
		return 4
	case "repeat":
		return 21
	case "disabled", "disconnect":
		return -1
	}
	log.Warnf("unknown routing action %q, disabling", action)
	return -1
}

// targetTypeFromOptions classifies the DTMF target from the option fields.
func targetTypeFromOptions(options map[string]interface{}) string {
	action := stringOrEmpty(options["action"])
	targetType := stringOrEmpty(options["action_target_type"])

	switch {
	case action == "department" || targetType == "department":
		return "call_queue"
	case action == "operator":
		return "user"
	case targetType == "office":
		return "auto_receptionist"
	}
	return "user"
}

// timeoutAction derives the timeout entry from no_operators_action.
func timeoutAction(record map[string]interface{}) map[string]interface{} {
	code := -1
	if stringOrEmpty(record["no_operators_action"]) == "voicemail" || record["no_operators_action"] == nil {
		code = 200
	}
	return map[string]interface{}{
		"key":    "timeout",
		"action": code,
	}
}
