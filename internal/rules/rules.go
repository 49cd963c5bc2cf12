// Package rules holds the vocabulary conversions shared by the entity
// transformers: country names to ISO codes, platform timezones to IANA,
// IVR key/action codes, user types, business-hours flattening and the
// naming helpers for sites and auto receptionists. Every function is pure
// and total: unknown input degrades to a logged default, never an error.
package rules

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "rules")

var countryISO = map[string]string{
	"United States":            "US",
	"United States of America": "US",
	"USA":                      "US",
	"US":                       "US",
	"Canada":                   "CA",
	"United Kingdom":           "GB",
	"Great Britain":            "GB",
	"UK":                       "GB",
	"Australia":                "AU",
	"Germany":                  "DE",
	"France":                   "FR",
	"Japan":                    "JP",
	"China":                    "CN",
	"India":                    "IN",
	"Brazil":                   "BR",
	"Mexico":                   "MX",
}

// CountryToISO converts a country name to its ISO 3166-1 alpha-2 code.
// Unknown names pass through unchanged so a caller that already holds an
// ISO code is not mangled.
func CountryToISO(name string) string {
	if iso, ok := countryISO[name]; ok {
		return iso
	}
	return name
}

// timezoneIDToIANA maps numeric platform timezone IDs to IANA names.
var timezoneIDToIANA = map[string]string{
	"58": "America/New_York",
	"59": "America/Chicago",
	"60": "America/Denver",
	"61": "America/Los_Angeles",
	"62": "America/Phoenix",
	"63": "America/Anchorage",
	"64": "Pacific/Honolulu",
}

var timezoneNameToIANA = map[string]string{
	"Eastern Time":  "America/New_York",
	"Central Time":  "America/Chicago",
	"Mountain Time": "America/Denver",
	"Pacific Time":  "America/Los_Angeles",
	"Alaska Time":   "America/Anchorage",
	"Hawaii Time":   "Pacific/Honolulu",
}

var timezoneLongToIANA = map[string]string{
	"Pacific Standard Time":            "America/Los_Angeles",
	"Pacific Daylight Time":            "America/Los_Angeles",
	"Mountain Standard Time":           "America/Denver",
	"Mountain Daylight Time":           "America/Denver",
	"Central Standard Time":            "America/Chicago",
	"Central Daylight Time":            "America/Chicago",
	"Eastern Standard Time":            "America/New_York",
	"Eastern Daylight Time":            "America/New_York",
	"Atlantic Standard Time":           "America/Halifax",
	"Atlantic Daylight Time":           "America/Halifax",
	"Alaska Standard Time":             "America/Anchorage",
	"Alaska Daylight Time":             "America/Anchorage",
	"Hawaii Standard Time":             "Pacific/Honolulu",
	"Greenwich Mean Time":              "Europe/London",
	"British Summer Time":              "Europe/London",
	"Central European Time":            "Europe/Paris",
	"Central European Summer Time":     "Europe/Paris",
	"Eastern European Time":            "Europe/Bucharest",
	"Eastern European Summer Time":     "Europe/Bucharest",
	"Japan Standard Time":              "Asia/Tokyo",
	"China Standard Time":              "Asia/Shanghai",
	"Australian Eastern Standard Time": "Australia/Sydney",
	"Australian Eastern Daylight Time": "Australia/Sydney",
	"UTC":                              "UTC",
	"GMT":                              "UTC",
	"PST":                              "America/Los_Angeles",
	"PDT":                              "America/Los_Angeles",
	"MST":                              "America/Denver",
	"MDT":                              "America/Denver",
	"CST":                              "America/Chicago",
	"CDT":                              "America/Chicago",
	"EST":                              "America/New_York",
	"EDT":                              "America/New_York",
}

// TimezoneToIANA converts a platform timezone value to an IANA zone name.
// It accepts numeric platform IDs ("58"), short display names
// ("Eastern Time"), long platform names ("Pacific Standard Time"),
// abbreviations ("PST"), and values already in IANA form, which pass
// through. Anything it cannot place defaults to America/Los_Angeles with
// a warning.
func TimezoneToIANA(tz string) string {
	if tz == "" {
		log.Warn("empty timezone, defaulting to America/Los_Angeles")
		return "America/Los_Angeles"
	}

	if iana, ok := timezoneIDToIANA[tz]; ok {
		return iana
	}
	if iana, ok := timezoneNameToIANA[tz]; ok {
		return iana
	}

	if strings.Contains(tz, "/") {
		for _, prefix := range []string{"America/", "Europe/", "Asia/", "Australia/", "Pacific/"} {
			if strings.HasPrefix(tz, prefix) {
				return tz
			}
		}
	}
	if tz == "UTC" {
		return tz
	}

	if iana, ok := timezoneLongToIANA[tz]; ok {
		return iana
	}

	lower := strings.ToLower(strings.TrimSpace(tz))
	switch {
	case strings.Contains(lower, "pacific"):
		return "America/Los_Angeles"
	case strings.Contains(lower, "mountain"):
		return "America/Denver"
	case strings.Contains(lower, "central"):
		return "America/Chicago"
	case strings.Contains(lower, "eastern"):
		return "America/New_York"
	}

	log.Warnf("unknown timezone %q, defaulting to America/Los_Angeles", tz)
	return "America/Los_Angeles"
}

var userTypes = map[string]int{
	"User":                 1,
	"DigitalUser":          2,
	"FlexibleUser":         1,
	"FaxUser":              99,
	"VirtualUser":          99,
	"Department":           99,
	"Announcement":         99,
	"Voicemail":            99,
	"SharedLinesGroup":     99,
	"PagingOnly":           99,
	"IvrMenu":              99,
	"ApplicationExtension": 99,
	"ParkLocation":         99,
	"Limited":              99,
	"Bot":                  99,
	"ProxyAdmin":           99,
	"DelegatedLinesGroup":  99,
	"Site":                 99,
}

// MapUserType converts a source-platform extension type string to the
// target's numeric user type. Unknown types map to 99 (other).
func MapUserType(userType string) int {
	if code, ok := userTypes[userType]; ok {
		return code
	}
	if userType != "" {
		log.Warnf("unknown user type %q, mapping to 99", userType)
	}
	return 99
}

var inputKeys = map[string]string{
	"Star":    "*",
	"Hash":    "#",
	"NoInput": "timeout",
}

// MapIVRKey converts an IVR input key name to the target's key symbol.
// Digit keys pass through unchanged.
func MapIVRKey(key string) string {
	if mapped, ok := inputKeys[key]; ok {
		return mapped
	}
	return key
}

// universalActions apply regardless of what the action points at.
var universalActions = map[string]int{
	"Repeat":               21,
	"ReturnToRoot":         22,
	"ReturnToTopLevelMenu": 22,
	"ReturnToPrevious":     23,
	"Disconnect":           -1,
	"DoNothing":            -1,
}

var targetActions = map[string]map[string]int{
	"user": {
		"Connect":           2,
		"Voicemail":         200,
		"Transfer":          10,
		"ConnectToOperator": 2,
		"DialByName":        4,
	},
	"call_queue": {
		"Connect":           7,
		"Voicemail":         400,
		"Transfer":          10,
		"ConnectToOperator": 7,
		"DialByName":        4,
	},
	"auto_receptionist": {
		"Connect":           8,
		"Voicemail":         300,
		"Transfer":          10,
		"ConnectToOperator": 8,
		"DialByName":        4,
	},
}

// MapIVRAction converts an IVR action name to the target platform's numeric
// action code. Universal actions win over target-specific ones; unknown
// actions come back as -1 (disabled).
func MapIVRAction(action, targetType string) int {
	if code, ok := universalActions[action]; ok {
		return code
	}
	if table, ok := targetActions[targetType]; ok {
		if code, ok := table[action]; ok {
			return code
		}
	}
	log.Warnf("unknown IVR action %q for target type %q, disabling", action, targetType)
	return -1
}

// ActionNeedsTarget reports whether an action code expects a target
// extension. Disabled, repeat and return actions never take one.
func ActionNeedsTarget(code int) bool {
	switch code {
	case -1, 21, 22, 23:
		return false
	}
	return true
}

var weekdays = map[string]int{
	"sunday":    1,
	"monday":    2,
	"tuesday":   3,
	"wednesday": 4,
	"thursday":  5,
	"friday":    6,
	"saturday":  7,
}

// WeekdayNumber returns the target platform's 1-based weekday number
// (Sunday=1) for a day name, case-insensitively.
func WeekdayNumber(day string) (int, bool) {
	n, ok := weekdays[strings.ToLower(day)]
	return n, ok
}

// WeeklyRangesToCustomHours flattens a weeklyRanges object
// ({"monday": [{"from": "08:00", "to": "17:00"}], ...}) into the target's
// custom hours array. Each entry carries type 2 (custom hours). Unknown
// day names are skipped with a warning; malformed ranges are ignored.
func WeeklyRangesToCustomHours(weeklyRanges map[string]interface{}) []map[string]interface{} {
	settings := []map[string]interface{}{}

	for day, value := range weeklyRanges {
		weekday, ok := WeekdayNumber(day)
		if !ok {
			log.Warnf("unknown weekday %q, skipping", day)
			continue
		}

		ranges, ok := value.([]interface{})
		if !ok {
			continue
		}
		for _, r := range ranges {
			timeRange, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			from, fromOK := timeRange["from"].(string)
			to, toOK := timeRange["to"].(string)
			if !fromOK || !toOK {
				continue
			}
			settings = append(settings, map[string]interface{}{
				"weekday": weekday,
				"from":    from,
				"to":      to,
				"type":    2,
			})
		}
	}

	return settings
}

var detectCallQueue = []string{"queue", "support", "sales", "service", "help", "department", "team", "pso"}
var detectAutoReceptionist = []string{"receptionist", "menu", "main", "ivr", "auto", "greeting"}

// DetectExtensionType guesses whether an extension display name refers to a
// call queue, an auto receptionist, or a user. This is a best-effort keyword
// heuristic over the name; anything that matches nothing is assumed to be a
// user.
func DetectExtensionType(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range detectCallQueue {
		if strings.Contains(lower, kw) {
			return "call_queue"
		}
	}
	for _, kw := range detectAutoReceptionist {
		if strings.Contains(lower, kw) {
			return "auto_receptionist"
		}
	}
	return "user"
}
