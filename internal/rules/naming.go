package rules

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// SiteCode derives a short site code from a site name: uppercased, spaces
// and hyphens folded to underscores, everything else non-alphanumeric
// dropped, capped at 20 characters.
func SiteCode(name string) string {
	upper := strings.ToUpper(name)
	var b strings.Builder
	for _, r := range upper {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('_')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len(code) > 20 {
		code = code[:20]
	}
	return code
}

const arSuffix = " (NIU)"

// AutoReceptionistName builds the placeholder auto receptionist name for a
// site. The " (NIU)" suffix marks it not-in-use; the base name is truncated
// so the result never exceeds 30 characters.
func AutoReceptionistName(siteName string) string {
	const maxLength = 30

	clean := strings.TrimSpace(siteName)
	if clean == "" {
		log.Warnf("invalid site name %q for auto receptionist", siteName)
		return "Unknown" + arSuffix
	}

	full := clean + arSuffix
	if len(full) <= maxLength {
		return full
	}

	available := maxLength - len(arSuffix)
	return strings.TrimRight(clean[:available], " ") + arSuffix
}

// addressAbbreviations restores the all-caps form of common street and unit
// abbreviations that title-casing lowercases.
var addressAbbreviations = []string{"PO", "NE", "NW", "SE", "SW", "CT", "ST", "AVE", "BLVD", "DR", "LN", "RD", "APT", "STE"}

// NormalizeAddressField title-cases an address line while keeping common
// abbreviations (PO, NE, BLVD, ...) uppercase.
func NormalizeAddressField(value string) string {
	if value == "" {
		return value
	}

	words := strings.Fields(value)
	for i, word := range words {
		titled := titleWord(word)
		for _, abbr := range addressAbbreviations {
			if strings.EqualFold(word, abbr) {
				titled = abbr
				break
			}
		}
		words[i] = titled
	}
	return strings.Join(words, " ")
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// DisplayName joins first and last name, tolerating either being empty.
func DisplayName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

var phoneTypes = map[string]string{
	"work":     "office",
	"home":     "home",
	"mobile":   "mobile",
	"business": "office",
	"direct":   "office",
}

// FormatPhoneNumbers converts a list of source phone-number objects
// ({"type": "work", "number": "+1..."}) to the target's {number, type}
// shape. Entries without a number are skipped; unknown types fall back to
// office.
func FormatPhoneNumbers(phoneNumbers []interface{}) []map[string]interface{} {
	formatted := []map[string]interface{}{}

	for _, item := range phoneNumbers {
		phone, ok := item.(map[string]interface{})
		if !ok {
			log.Warnf("skipping invalid phone entry: %v", item)
			continue
		}

		number := fmt.Sprint(phone["number"])
		if phone["number"] == nil || number == "" {
			continue
		}

		phoneType, _ := phone["type"].(string)
		zoomType, ok := phoneTypes[strings.ToLower(phoneType)]
		if !ok {
			zoomType = "office"
		}

		formatted = append(formatted, map[string]interface{}{
			"number": number,
			"type":   zoomType,
		})
	}

	return formatted
}

// DeterministicExtension derives a stable extension number for an entity.
// The draw is seeded from the entity id and class so repeated runs assign
// the same number, and each class gets a disjoint band: call queues
// 200-299, auto receptionists 300-399, everything else 400-999.
func DeterministicExtension(entityID, class string) string {
	h := fnv.New64a()
	h.Write([]byte(entityID + "_" + class))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	var ext int
	switch class {
	case "cq":
		ext = 200 + rng.Intn(100)
	case "ar":
		ext = 300 + rng.Intn(100)
	default:
		ext = 400 + rng.Intn(600)
	}
	return fmt.Sprintf("%d", ext)
}
