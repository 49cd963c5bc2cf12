// Package dispatch routes transformation requests to the entity transformer
// registered for a (source platform, target platform, job type) triple.
package dispatch

import (
	"sort"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

var log = logrus.WithField("component", "dispatch")

// TransformerFactory builds a transformer for one job type. Construction is
// deferred so a dispatcher only pays for the job types it actually serves.
type TransformerFactory func() transform.Transformer

// Dispatcher owns the job-type routing table for one platform pair.
// Transformer instances are cached after first use.
type Dispatcher struct {
	source string
	target string

	factories map[string]TransformerFactory
	idCodes   map[int]string

	mu        sync.RWMutex
	instances map[string]transform.Transformer
}

func NewDispatcher(source, target string) *Dispatcher {
	return &Dispatcher{
		source:    source,
		target:    target,
		factories: map[string]TransformerFactory{},
		idCodes:   map[int]string{},
		instances: map[string]transform.Transformer{},
	}
}

func (d *Dispatcher) Source() string { return d.source }
func (d *Dispatcher) Target() string { return d.target }

// RegisterJobType binds a job type code to its transformer factory.
func (d *Dispatcher) RegisterJobType(code string, factory TransformerFactory) {
	d.factories[code] = factory
}

// RegisterJobTypeID binds a numeric job type id to an already registered
// code, so callers holding only the id can still route.
func (d *Dispatcher) RegisterJobTypeID(id int, code string) {
	d.idCodes[id] = code
}

// SupportedJobTypes returns the registered job type codes, sorted.
func (d *Dispatcher) SupportedJobTypes() []string {
	codes := make([]string, 0, len(d.factories))
	for code := range d.factories {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (d *Dispatcher) Supports(code string) bool {
	_, ok := d.factories[resolveCode(d.idCodes, code)]
	return ok
}

// Transform resolves the job type (an all-digit value is treated as a job
// type id), validates the record, runs the transformer, and validates the
// result. Validation failures come back as-is; anything else is wrapped in a
// TransformationError carrying the job type.
func (d *Dispatcher) Transform(jobType string, data map[string]interface{}, ctx *transform.Context) (map[string]interface{}, error) {
	code := resolveCode(d.idCodes, jobType)
	if code != jobType {
		log.Infof("mapped job type id %s to code %s", jobType, code)
	}

	tr, err := d.transformer(code)
	if err != nil {
		return nil, err
	}

	entry := log.WithField("job_type", code)
	if ctx != nil && ctx.JobGroupID != 0 {
		entry = entry.WithField("job_group_id", ctx.JobGroupID)
	}

	if err := tr.ValidateInput(data); err != nil {
		return nil, err
	}

	out, err := tr.Transform(data)
	if err != nil {
		if _, ok := err.(*transform.ValidationError); ok {
			return nil, err
		}
		return nil, &transform.TransformationError{JobTypeCode: code, Err: err}
	}

	if err := tr.ValidateOutput(out); err != nil {
		return nil, err
	}

	entry.Debug("transformed record")
	return out, nil
}

// transformer returns the cached instance for a code, constructing it on
// first use. Building twice under contention and keeping one is fine.
func (d *Dispatcher) transformer(code string) (transform.Transformer, error) {
	d.mu.RLock()
	tr, ok := d.instances[code]
	d.mu.RUnlock()
	if ok {
		return tr, nil
	}

	factory, ok := d.factories[code]
	if !ok {
		return nil, &transform.NotFoundError{
			What:      "transformer",
			Requested: code,
			Supported: d.SupportedJobTypes(),
		}
	}

	tr = factory()
	d.mu.Lock()
	d.instances[code] = tr
	d.mu.Unlock()
	return tr, nil
}

// resolveCode maps an all-digit job type through the id table; anything else
// passes through unchanged.
func resolveCode(idCodes map[int]string, jobType string) string {
	id, err := strconv.Atoi(jobType)
	if err != nil {
		return jobType
	}
	if code, ok := idCodes[id]; ok {
		return code
	}
	return jobType
}
