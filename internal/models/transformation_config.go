package models

// TransformationConfig is an optional per-job-type YAML document that tunes
// transformer behavior. Config holds the parsed document; RawYAML keeps the
// stored text for the admin API.
type TransformationConfig struct {
	JobTypeCode string
	RawYAML     string
	Config      map[string]interface{}
}
