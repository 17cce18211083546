package generator

import (
	"fmt"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/config"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/generator/python"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// Generator defines the interface for model generators
type Generator interface {
	// Generate emits models for the resolved schema registry
	Generate(out config.Output, schemas map[string]*ir.Schema, analysis *ir.CycleAnalysis) error
	// GetType returns the type identifier for this generator (e.g., "python")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a registry with all built-in generators registered
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Generator)}
	r.Register(python.NewGenerator())
	return r
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get returns the generator for the given type
func (r *Registry) Get(typ string) (Generator, error) {
	gen, ok := r.generators[typ]
	if !ok {
		return nil, fmt.Errorf("unknown generator type %q", typ)
	}
	return gen, nil
}
