package dictionary

import (
	"fmt"
	"sync"
)

// Registry manages named Extractor instances, letting a caller select a
// tokenization mode by name (e.g. from a CLI flag).
type Registry struct {
	extractors map[string]Extractor
	mu         sync.RWMutex
}

// NewRegistry creates a Registry with the built-in extractors registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	r.extractors["standard"] = NewStandardExtractor()
	r.extractors["whitespace"] = NewWhitespaceExtractor()
	r.extractors["keyword"] = NewKeywordExtractor()
	return r
}

// Get returns the extractor registered under name.
func (r *Registry) Get(name string) (Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[name]
	if !ok {
		return nil, fmt.Errorf("unknown extractor: %q", name)
	}
	return e, nil
}

// Register adds a custom extractor to the registry.
func (r *Registry) Register(name string, e Extractor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.extractors[name]; exists {
		return fmt.Errorf("extractor already registered: %q", name)
	}
	r.extractors[name] = e
	return nil
}

// Names returns the names of all registered extractors.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	return names
}
