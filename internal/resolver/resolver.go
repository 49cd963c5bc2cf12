// Package resolver reads and writes values in untyped JSON-like records
// using dot notation. Paths may address array elements with a concrete
// index ("business_hours[0].schedule") or fan out over every element with
// a wildcard ("ivr_details[*].actions").
package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "resolver")

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Get resolves a dotted path against record and returns the value, or nil
// if any segment fails to resolve. It never panics: traversal failures are
// logged at debug level and collapse to nil.
//
// The path is first checked as a literal key of the record, so mapping rows
// that use dotted target-field names (e.g. "zoomMapping.action" stored as a
// single key) resolve to the literal value before any nested traversal is
// attempted.
func Get(record map[string]interface{}, path string) interface{} {
	if record == nil || path == "" {
		return nil
	}

	if value, ok := record[path]; ok {
		return value
	}

	var current interface{} = record
	parts := strings.Split(path, ".")

	for i, part := range parts {
		key, index, wildcard, hasIndex := splitIndex(part)

		if key != "" {
			obj, ok := current.(map[string]interface{})
			if !ok {
				log.Debugf("cannot traverse %q in %q: not an object", part, path)
				return nil
			}
			next, ok := obj[key]
			if !ok {
				log.Debugf("key %q not found while resolving %q", key, path)
				return nil
			}
			current = next
		}

		if !hasIndex {
			continue
		}

		arr, ok := current.([]interface{})
		if !ok {
			log.Debugf("segment %q in %q is not an array", part, path)
			return nil
		}

		if wildcard {
			rest := strings.Join(parts[i+1:], ".")
			if rest == "" {
				return arr
			}
			// Fan out the remaining sub-path over every element. Failed
			// positions are kept as nil so the result stays zippable
			// against parallel arrays.
			results := make([]interface{}, 0, len(arr))
			for _, item := range arr {
				if obj, ok := item.(map[string]interface{}); ok {
					results = append(results, Get(obj, rest))
				} else {
					results = append(results, nil)
				}
			}
			return results
		}

		if index < 0 || index >= len(arr) {
			log.Debugf("index %d out of bounds (len %d) while resolving %q", index, len(arr), path)
			return nil
		}
		current = arr[index]
	}

	return current
}

// GetAll resolves a path that may contain a [*] wildcard and always returns
// a slice: the fan-out result for wildcard paths, a single-element slice for
// a plain path that resolves, and an empty slice otherwise.
func GetAll(record map[string]interface{}, path string) []interface{} {
	if strings.Contains(path, "[*]") {
		if values, ok := Get(record, path).([]interface{}); ok {
			return values
		}
		return []interface{}{}
	}

	if value := Get(record, path); value != nil {
		return []interface{}{value}
	}
	return []interface{}{}
}

// Set assigns value at the dotted path, creating intermediate objects as
// needed. It only builds maps; array segments are not supported here since
// mapping appliers never assign through arrays.
func Set(record map[string]interface{}, path string, value interface{}) {
	if record == nil || path == "" {
		return
	}

	parts := strings.Split(path, ".")
	current := record
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// RenderTemplate replaces every single-brace {path} placeholder in template
// with the stringified resolved value, or the empty string when the path
// does not resolve.
func RenderTemplate(template string, record map[string]interface{}) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		path := strings.TrimSpace(match[1 : len(match)-1])
		value := Get(record, path)
		if value == nil {
			return ""
		}
		return fmt.Sprint(value)
	})
}

// splitIndex parses a path segment of the form key, key[3] or key[*].
func splitIndex(segment string) (key string, index int, wildcard, hasIndex bool) {
	open := strings.Index(segment, "[")
	close := strings.Index(segment, "]")
	if open < 0 || close < open {
		return segment, 0, false, false
	}

	key = segment[:open]
	inner := segment[open+1 : close]
	if inner == "*" {
		return key, 0, true, true
	}

	idx, err := strconv.Atoi(inner)
	if err != nil {
		log.Debugf("invalid array index %q in segment %q", inner, segment)
		return segment, 0, false, false
	}
	return key, idx, false, true
}
