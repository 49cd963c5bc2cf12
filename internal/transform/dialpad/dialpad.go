// Package dialpad holds the Dialpad-to-Zoom entity transformers. Dialpad
// raw records are reshaped into the RingCentral post-transform structure so
// the single downstream Zoom loader consumes either source unchanged.
package dialpad

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "transform.dialpad")

var dialpadTimezones = map[string]string{
	"US/Pacific":  "America/Los_Angeles",
	"US/Mountain": "America/Denver",
	"US/Central":  "America/Chicago",
	"US/Eastern":  "America/New_York",
}

// timezoneToIANA folds Dialpad's US/* zone names to IANA; values already in
// IANA form pass through.
func timezoneToIANA(tz string) string {
	if iana, ok := dialpadTimezones[tz]; ok {
		return iana
	}
	return tz
}

var statusByState = map[string]string{
	"active":    "Enabled",
	"inactive":  "Disabled",
	"pending":   "NotActivated",
	"suspended": "Disabled",
}

// statusFromState maps a Dialpad state to the RingCentral status vocabulary
// the downstream loader expects.
func statusFromState(state string) string {
	if status, ok := statusByState[state]; ok {
		return status
	}
	return "Enabled"
}

// entityID returns the record's id, falling back to office_id, as a string.
func entityID(record map[string]interface{}) string {
	if record["id"] != nil {
		return fmt.Sprint(record["id"])
	}
	if record["office_id"] != nil {
		return fmt.Sprint(record["office_id"])
	}
	return ""
}

func stringOrEmpty(v interface{}) string {
	s, _ := v.(string)
	return s
}

// fieldString renders a record field as a string, "" when absent, so a
// missing field never leaks a formatted nil into the output.
func fieldString(record map[string]interface{}, key string) string {
	if record[key] == nil {
		return ""
	}
	return fmt.Sprint(record[key])
}
