package parsing

import (
	"strings"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

const schemaRefPrefix = "#/components/schemas/"

// refSchemaName extracts the target schema name from a $ref pointer.
// Canonical component refs are preferred; for any other pointer shape the
// last path segment is used, matching how loose specs reference schemas.
func refSchemaName(ref string) string {
	if name, ok := strings.CutPrefix(ref, schemaRefPrefix); ok {
		return name
	}
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// resolveRef resolves a $ref pointer against the registry. Four outcomes
// are possible: the target is unknown (terminal unresolved placeholder),
// the target is mid-resolution on the current DFS path (cycle event,
// delegated to the strategy), the target is already resolved, or the
// target still needs a recursive descent. In the latter two cases the
// returned node is a named reference into the registry, never an
// embedded copy of the target.
func resolveRef(ref string, ctx *Context) (*ir.Schema, error) {
	name := refSchemaName(ref)
	if name == "" {
		ctx.warnf("unsupported $ref format: %q", ref)
		return &ir.Schema{Kind: ir.KindUnknown, IsFromUnresolvedRef: true}, nil
	}

	target, found := ctx.registry[name]
	if !found {
		ctx.log.Warn("unresolved reference", "ref", ref, "name", name)
		ctx.warnf("could not resolve $ref %q", ref)
		placeholder := &ir.Schema{Name: name, Kind: ir.KindUnknown, IsFromUnresolvedRef: true}
		ctx.cache(name, placeholder)
		return placeholder, nil
	}

	// A target already on the in-progress stack means following this
	// edge would reenter the active DFS path: a cycle.
	if ctx.resolving(name) {
		return handleReentry(name, ctx)
	}

	if _, done := ctx.resolved[name]; !done {
		node, ok := asMap(target)
		if !ok {
			ctx.warnf("schema %s: registry entry is not a mapping", name)
			placeholder := &ir.Schema{Name: name, Kind: ir.KindUnknown, IsFromUnresolvedRef: true}
			ctx.cache(name, placeholder)
			return placeholder, nil
		}
		if _, err := parseSchema(name, node, ctx); err != nil {
			return nil, err
		}
	}

	return &ir.Schema{Kind: ir.KindRef, Ref: name}, nil
}
