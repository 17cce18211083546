package parsing

import (
	"strings"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// handleReentry records a cycle for a reference whose target is already
// on the in-progress stack and produces the strategy-chosen local
// substitution for the reentrant edge. The original in-progress chain is
// untouched: it keeps resolving toward completion.
func handleReentry(name string, ctx *Context) (*ir.Schema, error) {
	path := ctx.cyclePath(name)
	record := &ir.CycleRecord{
		Type:    ir.ClassifyCycle(len(path) - 1),
		Path:    path,
		Entry:   path[0],
		Reentry: name,
	}
	ctx.ledger = append(ctx.ledger, record)

	ctx.log.Warn("cycle detected",
		"type", string(record.Type),
		"path", strings.Join(path, " -> "),
		"strategy", string(ctx.opts.Strategy))

	if ctx.opts.MaxCycles > 0 && len(ctx.ledger) > ctx.opts.MaxCycles {
		return nil, &TooManyCyclesError{Limit: ctx.opts.MaxCycles}
	}

	switch ctx.opts.Strategy {
	case StrategyAllowSelfReference:
		if record.Type != ir.CycleSelfReference {
			return nil, &CycleError{Type: record.Type, Path: path, Strategy: ctx.opts.Strategy}
		}
		return &ir.Schema{
			Name:                  name,
			Kind:                  ir.KindRef,
			Ref:                   name,
			IsSelfReferentialStub: true,
		}, nil

	case StrategyErrorAllCycles:
		return nil, &CycleError{Type: record.Type, Path: path, Strategy: ctx.opts.Strategy}

	case StrategyBreakAtReentry:
		// Substitute a generic placeholder so the emitted structure is
		// finite even without deferred-binding support in the target.
		return &ir.Schema{
			Name:         name,
			Kind:         ir.KindObject,
			IsCircular:   true,
			CircularPath: record.Participants(),
		}, nil

	default: // StrategyForwardReference
		return &ir.Schema{Kind: ir.KindRef, Ref: name}, nil
	}
}

// markCycleParticipants runs after the full registry is resolved and
// propagates cycle membership from the ledger onto every participant,
// not only the schema whose traversal triggered detection.
func markCycleParticipants(ctx *Context) {
	for _, record := range ctx.ledger {
		for _, name := range record.Participants() {
			s, ok := ctx.resolved[name]
			if !ok {
				continue
			}
			s.IsCircular = true
			if s.CircularPath == nil {
				s.CircularPath = record.Participants()
			}
			s.CycleInfo = append(s.CycleInfo, record)
			if ctx.opts.Strategy == StrategyAllowSelfReference && record.Type == ir.CycleSelfReference {
				s.IsSelfReferentialStub = true
			}
		}
	}
}
