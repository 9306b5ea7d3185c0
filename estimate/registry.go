package estimate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ExtractorFunc turns a fitted model of a known kind into a
// ParameterEstimate. The bootstrap engine never sees the fitted model; it
// depends only on the ParameterEstimate contract.
type ExtractorFunc func(model any) (*ParameterEstimate, error)

// Registry maps fitted-model kinds to extraction routines. It is populated
// once at process start and queried by model-fitting integrations.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]ExtractorFunc
}

// NewRegistry creates a new extractor registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]ExtractorFunc)}
}

// Register adds an extractor for a model kind.
func (r *Registry) Register(kind string, fn ExtractorFunc) error {
	if strings.TrimSpace(kind) == "" || fn == nil {
		return errors.New("estimate: invalid extractor registration")
	}
	kind = strings.TrimSpace(kind)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.extractors[kind]; exists {
		return fmt.Errorf("estimate: extractor %q already registered", kind)
	}
	r.extractors[kind] = fn
	return nil
}

// Extract runs the extractor registered for kind against model.
func (r *Registry) Extract(kind string, model any) (*ParameterEstimate, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil, errors.New("estimate: model kind is required")
	}

	r.mu.RLock()
	fn, ok := r.extractors[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExtractorNotFound, kind)
	}

	return fn(model)
}

// Kinds returns registered model kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.extractors))
	for kind := range r.extractors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// DefaultRegistry is the global registry for model extractors.
var DefaultRegistry = NewRegistry()

// Register adds an extractor to the default registry.
func Register(kind string, fn ExtractorFunc) error {
	return DefaultRegistry.Register(kind, fn)
}

// Extract runs an extractor from the default registry.
func Extract(kind string, model any) (*ParameterEstimate, error) {
	return DefaultRegistry.Extract(kind, model)
}
