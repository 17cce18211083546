package parsing

import (
	"fmt"
	"log/slog"
)

// Strategy selects how a detected reference cycle is resolved at the
// point of reentry.
type Strategy string

const (
	// StrategyAllowSelfReference permits direct self-references only;
	// any longer cycle is a hard error.
	StrategyAllowSelfReference Strategy = "allow_self_reference"
	// StrategyErrorAllCycles fails the parse on any detected cycle.
	StrategyErrorAllCycles Strategy = "error_all_cycles"
	// StrategyForwardReference resolves the reentrant edge to a plain
	// named reference, leaving deferred binding to the emitter.
	StrategyForwardReference Strategy = "forward_reference"
	// StrategyBreakAtReentry substitutes a generic placeholder for the
	// reentrant edge so emitted structures cannot recurse.
	StrategyBreakAtReentry Strategy = "break_at_reentry"
)

// DefaultMaxDepth bounds recursion when no explicit limit is configured.
const DefaultMaxDepth = 150

// Options configures a single top-level parse.
type Options struct {
	// MaxDepth is the maximum recursion depth. Zero selects
	// DefaultMaxDepth; negative values are rejected.
	MaxDepth int
	// Strategy is the cycle-handling strategy. Empty selects
	// StrategyForwardReference.
	Strategy Strategy
	// MaxCycles aborts the parse once more than this many cycles have
	// been recorded. Zero means unlimited; negative values are rejected.
	MaxCycles int
	// Logger receives structured diagnostics. Nil disables logging.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Strategy == "" {
		o.Strategy = StrategyForwardReference
	}
	return o
}

func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: maxDepth must not be negative, got %d", ErrInvalidOptions, o.MaxDepth)
	}
	if o.MaxCycles < 0 {
		return fmt.Errorf("%w: maxCycles must not be negative, got %d", ErrInvalidOptions, o.MaxCycles)
	}
	switch o.Strategy {
	case StrategyAllowSelfReference, StrategyErrorAllCycles, StrategyForwardReference, StrategyBreakAtReentry:
		return nil
	default:
		return fmt.Errorf("%w: unknown cycle strategy %q", ErrInvalidOptions, o.Strategy)
	}
}

// ParseStrategy converts a configuration string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAllowSelfReference, StrategyErrorAllCycles, StrategyForwardReference, StrategyBreakAtReentry:
		return Strategy(s), nil
	case "":
		return StrategyForwardReference, nil
	default:
		return "", fmt.Errorf("%w: unknown cycle strategy %q", ErrInvalidOptions, s)
	}
}
