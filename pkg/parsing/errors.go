package parsing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// ErrInvalidOptions is returned before traversal begins when the
// configured limits or strategy are unusable.
var ErrInvalidOptions = errors.New("parsing: invalid options")

// CycleError is the structured hard failure produced when the configured
// strategy rejects a detected cycle. It carries the full cycle path for
// diagnostics.
type CycleError struct {
	Type     ir.CycleType
	Path     []string
	Strategy Strategy
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("parsing: %s cycle rejected by strategy %s: %s",
		e.Type, e.Strategy, strings.Join(e.Path, " -> "))
}

// TooManyCyclesError aborts a parse whose cycle count exceeded the
// configured MaxCycles bound.
type TooManyCyclesError struct {
	Limit int
}

func (e *TooManyCyclesError) Error() string {
	return fmt.Sprintf("parsing: cycle count exceeded configured limit of %d", e.Limit)
}
