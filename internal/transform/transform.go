// Package transform defines the contract shared by every entity
// transformer: a record goes in, the target platform's shape comes out, and
// input/output validation bracket the conversion.
package transform

// Transformer converts one source-platform record into the target
// platform's provisioning shape. Implementations keep every input key they
// do not explicitly rewrite (copy-all-then-augment), so running one twice
// over its own output is harmless.
type Transformer interface {
	Transform(record map[string]interface{}) (map[string]interface{}, error)
	ValidateInput(record map[string]interface{}) error
	ValidateOutput(record map[string]interface{}) error
}

// Context carries optional job information from the caller. Transformers
// that do not need it accept nil.
type Context struct {
	JobTypeID   int
	JobTypeCode string
	JobGroupID  int
}

// Copy returns a shallow copy of a record, the starting point for every
// copy-all-then-augment transformer.
func Copy(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
