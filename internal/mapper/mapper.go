// Package mapper applies database-backed field mappings to untyped records:
// each mapping row reads one source path, optionally runs a named simple
// rule, and writes one target path.
package mapper

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/repository"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/resolver"
)

var log = logrus.WithField("component", "mapper")

type Mapper struct {
	repo  *repository.FieldMappingRepository
	cache map[string][]*models.FieldMapping
	mu    sync.RWMutex
}

func New(repo *repository.FieldMappingRepository) *Mapper {
	return &Mapper{
		repo:  repo,
		cache: make(map[string][]*models.FieldMapping),
	}
}

// Mappings returns the mapping rows for a (job type, source platform,
// target entity) triple, loading from the repository once and caching.
func (m *Mapper) Mappings(jobTypeID int, sourcePlatform, targetEntity string) ([]*models.FieldMapping, error) {
	cacheKey := strconv.Itoa(jobTypeID) + ":" + sourcePlatform + ":" + targetEntity

	m.mu.RLock()
	if cached, ok := m.cache[cacheKey]; ok {
		m.mu.RUnlock()
		return cached, nil
	}
	m.mu.RUnlock()

	mappings, err := m.repo.FindByJobType(jobTypeID, sourcePlatform, targetEntity)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[cacheKey] = mappings
	m.mu.Unlock()

	return mappings, nil
}

// ClearCache clears the mapping cache.
func (m *Mapper) ClearCache() {
	m.mu.Lock()
	m.cache = make(map[string][]*models.FieldMapping)
	m.mu.Unlock()
}

// ApplyFlat runs every mapping against data and returns the mapped record
// plus the source fields that were required but absent. A missing optional
// field is simply skipped; duplicate target fields are tolerated last-wins
// with a warning.
func ApplyFlat(data map[string]interface{}, mappings []*models.FieldMapping) (map[string]interface{}, []string) {
	result := make(map[string]interface{})
	var missing []string
	seen := make(map[string]bool)

	for _, mapping := range mappings {
		value := resolver.Get(data, mapping.SourceField)
		if value == nil {
			if mapping.IsRequired {
				missing = append(missing, mapping.SourceField)
			}
			continue
		}

		if mapping.TransformationRule != "" {
			value = applyRule(value, mapping.TransformationRule)
		}

		if seen[mapping.TargetField] {
			log.Warnf("duplicate target field %q in mapping set, overwriting", mapping.TargetField)
		}
		seen[mapping.TargetField] = true

		result[mapping.TargetField] = value
	}

	return result, missing
}

// ApplyNested applies mappings whose target fields live under targetParent
// ("user_info.first_name" with parent "user_info") into a nested object on
// the result; all other mappings are written at the root.
func ApplyNested(data map[string]interface{}, mappings []*models.FieldMapping, targetParent string) map[string]interface{} {
	result := make(map[string]interface{})
	prefix := targetParent + "."

	for _, mapping := range mappings {
		value := resolver.Get(data, mapping.SourceField)
		if value == nil {
			continue
		}

		if mapping.TransformationRule != "" {
			value = applyRule(value, mapping.TransformationRule)
		}

		if strings.HasPrefix(mapping.TargetField, prefix) {
			resolver.Set(result, mapping.TargetField, value)
		} else {
			result[mapping.TargetField] = value
		}
	}

	return result
}

// applyRule runs a named simple transformation. Unknown rule names are a
// logged no-op so a bad mapping row never breaks a whole record.
func applyRule(value interface{}, rule string) interface{} {
	switch rule {
	case "uppercase":
		if s, ok := value.(string); ok {
			return strings.ToUpper(s)
		}
	case "lowercase":
		if s, ok := value.(string); ok {
			return strings.ToLower(s)
		}
	case "capitalize":
		if s, ok := value.(string); ok && s != "" {
			return strings.ToUpper(s[:1]) + s[1:]
		}
	case "string":
		return toString(value)
	case "integer":
		return toInt(value)
	case "boolean":
		return toBool(value)
	default:
		log.Warnf("unknown transformation rule %q, passing value through", rule)
	}
	return value
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func toInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		i, _ := strconv.Atoi(val)
		return i
	default:
		return 0
	}
}

func toBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1" || val == "yes"
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return false
	}
}
