package python

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/config"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

//go:embed templates/*
var templatesFS embed.FS

// Generator emits Python dataclass models from a resolved schema registry
type Generator struct{}

// NewGenerator creates a new Python generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GetType returns the generator type identifier
func (g *Generator) GetType() string {
	return "python"
}

// Generate renders the models module for the resolved registry. Schemas
// marked as cycle participants are referenced through quoted forward
// references so the emitted module imports cleanly.
func (g *Generator) Generate(out config.Output, schemas map[string]*ir.Schema, analysis *ir.CycleAnalysis) error {
	pkgDir := filepath.Join(out.OutDir, out.PackageName)
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return err
	}

	tmpl, err := template.New("models.py.tmpl").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	mod := buildModule(out.PackageName, schemas)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "models.py.tmpl", mod); err != nil {
		return fmt.Errorf("render models: %w", err)
	}
	if err := os.WriteFile(filepath.Join(pkgDir, "models.py"), buf.Bytes(), 0o644); err != nil {
		return err
	}

	initContent := "from .models import *  # noqa: F401,F403\n"
	return os.WriteFile(filepath.Join(pkgDir, "__init__.py"), []byte(initContent), 0o644)
}
