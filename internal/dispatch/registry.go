package dispatch

import (
	"sort"
	"strings"
	"sync"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// DispatcherFactory builds the dispatcher for one platform pair.
type DispatcherFactory func() *Dispatcher

// Registry maps (source, target) platform pairs to dispatchers. Lookups are
// case-insensitive and instances are cached after first construction.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]DispatcherFactory
	cache     map[string]*Dispatcher
}

func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]DispatcherFactory{},
		cache:     map[string]*Dispatcher{},
	}
}

// Register binds a platform pair to a dispatcher factory. Re-registering a
// pair replaces the factory and drops any cached instance.
func (r *Registry) Register(source, target string, factory DispatcherFactory) {
	key := pairKey(source, target)

	r.mu.Lock()
	r.factories[key] = factory
	delete(r.cache, key)
	r.mu.Unlock()

	log.Infof("registered dispatcher for %s", key)
}

// Dispatcher returns the dispatcher for a platform pair, constructing and
// caching it on first use. Unknown pairs list what is available.
func (r *Registry) Dispatcher(source, target string) (*Dispatcher, error) {
	key := pairKey(source, target)

	r.mu.RLock()
	d, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return d, nil
	}

	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &transform.NotFoundError{
			What:      "dispatcher",
			Requested: key,
			Supported: r.SupportedPairs(),
		}
	}

	d = factory()
	r.mu.Lock()
	r.cache[key] = d
	r.mu.Unlock()
	return d, nil
}

// SupportedPairs returns the registered platform pairs, sorted.
func (r *Registry) SupportedPairs() []string {
	r.mu.RLock()
	pairs := make([]string, 0, len(r.factories))
	for key := range r.factories {
		pairs = append(pairs, key)
	}
	r.mu.RUnlock()

	sort.Strings(pairs)
	return pairs
}

// Transform is the registry-level entry point: pick the dispatcher for the
// pair, then route by job type.
func (r *Registry) Transform(source, target, jobType string, data map[string]interface{}, ctx *transform.Context) (map[string]interface{}, error) {
	d, err := r.Dispatcher(source, target)
	if err != nil {
		return nil, err
	}
	return d.Transform(jobType, data, ctx)
}

func pairKey(source, target string) string {
	return strings.ToLower(source) + " -> " + strings.ToLower(target)
}
