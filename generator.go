package barcodegen

import (
	"fmt"
	"sort"
	"sync"
)

// Generator is the public entry point of a symbology. A Generator holds an
// immutable copy of its configuration and may be used concurrently; each
// canvas must belong to a single call.
type Generator interface {
	Symbology() Symbology
	// CalcDimensions returns the physical size msg would be rendered at.
	CalcDimensions(msg string) (Dimension, error)
	// GenerateBarcode validates msg and renders it onto canvas. On error the
	// canvas is left untouched.
	GenerateBarcode(canvas Canvas, msg string) error
}

// ClassicGenerator is implemented by linear symbologies.
type ClassicGenerator interface {
	Generator
	Generate(h ClassicHandler, msg string) error
}

// TwoDimGenerator is implemented by stacked and matrix symbologies.
type TwoDimGenerator interface {
	Generator
	Generate(h TwoDimHandler, msg string) error
}

// GeneratorFactory builds a Generator from configuration overrides.
type GeneratorFactory func(opts *Options) (Generator, error)

var (
	generatorsMu       sync.RWMutex
	generatorFactories = map[Symbology]GeneratorFactory{}
)

// RegisterGenerator registers a generator factory for the given symbology.
// It is safe to call concurrently with New and Registered.
func RegisterGenerator(sym Symbology, factory GeneratorFactory) {
	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	generatorFactories[sym] = factory
}

// New returns a Generator for sym configured with opts. A nil opts uses the
// symbology defaults.
func New(sym Symbology, opts *Options) (Generator, error) {
	generatorsMu.RLock()
	factory, ok := generatorFactories[sym]
	generatorsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no generator registered for symbology %s: %w", sym, ErrConfiguration)
	}
	return factory(opts)
}

// Registered returns the symbologies with a registered generator.
func Registered() []Symbology {
	generatorsMu.RLock()
	defer generatorsMu.RUnlock()
	out := make([]Symbology, 0, len(generatorFactories))
	for s := range generatorFactories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
