package parsing

import (
	"slices"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// Result is the output of one top-level parse: the resolved name->schema
// registry, the aggregated cycle analysis, and any soft-failure warnings
// collected along the way.
type Result struct {
	Schemas  map[string]*ir.Schema
	Analysis *ir.CycleAnalysis
	Warnings []string
}

// ParseRegistry resolves a raw named-schema registry into IR. The input
// maps schema names to raw nodes (generic maps, lists and scalars) and is
// treated as read-only: inline promotion rewrites operate on copies.
//
// Soft failures (unresolved references, depth exhaustion, malformed
// nodes) become placeholder schemas and never abort the parse. Hard
// failures are cycles rejected by the configured strategy and the
// MaxCycles bound; both surface as typed errors.
func ParseRegistry(registry map[string]any, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	promoted := promoteInline(registry)
	ctx := newContext(promoted, opts)

	for _, name := range sortedKeys(promoted) {
		if _, done := ctx.resolved[name]; done {
			continue
		}
		node, ok := asMap(promoted[name])
		if !ok {
			ctx.warnf("schema %s: registry entry is not a mapping", name)
			ctx.cache(name, &ir.Schema{Name: name, Kind: ir.KindUnknown, IsFromUnresolvedRef: true})
			continue
		}
		if _, err := parseSchema(name, node, ctx); err != nil {
			return nil, err
		}
	}

	markCycleParticipants(ctx)

	return &Result{
		Schemas:  ctx.resolved,
		Analysis: ir.AnalyzeCycles(ctx.ledger, len(ctx.resolved)),
		Warnings: ctx.warnings,
	}, nil
}

// parseSchema is the recursive-descent orchestrator. A named call pushes
// the name onto the in-progress stack for the duration of its expansion;
// anonymous children share the parent's stack frame.
func parseSchema(name string, node map[string]any, ctx *Context) (*ir.Schema, error) {
	if node == nil {
		s := &ir.Schema{Name: name, Kind: ir.KindUnknown, IsFromUnresolvedRef: true}
		ctx.cache(name, s)
		return s, nil
	}

	// Reference aliases resolve without consuming a depth level: only
	// actual node expansion recurses structurally.
	if ref, ok := node["$ref"].(string); ok {
		if name != "" {
			ctx.push(name)
			defer ctx.pop(name)
		}
		s, err := resolveRef(ref, ctx)
		if err != nil {
			return nil, err
		}
		switch {
		case s.Name == "":
			s.Name = name
		case name != "" && s.Name != name && s.IsFromUnresolvedRef:
			// The target's placeholder is cached under the target name
			// and must not be shared; the alias records its own.
			s = &ir.Schema{Name: name, Kind: ir.KindUnknown, IsFromUnresolvedRef: true}
		}
		ctx.cache(name, s)
		return s, nil
	}

	ctx.depth++
	defer func() { ctx.depth-- }()

	if ctx.depth > ctx.opts.MaxDepth {
		return depthPlaceholder(name, ctx), nil
	}

	if name != "" {
		ctx.push(name)
		defer ctx.pop(name)
	}

	s := &ir.Schema{Name: name}
	if d, ok := node["description"].(string); ok {
		s.Description = d
	}
	if f, ok := node["format"].(string); ok {
		s.Format = f
	}

	kind, nullable, warns := extractType(node["type"], name)
	ctx.warnings = append(ctx.warnings, warns...)
	s.Kind = kind
	s.Nullable = nullable
	if b, ok := node["nullable"].(bool); ok && b {
		s.Nullable = true
	}

	hasComposition := false

	if members, ok := asSlice(node["anyOf"]); ok {
		hasComposition = true
		subs, sawNull, err := parseVariantList(members, ctx)
		if err != nil {
			return nil, err
		}
		s.AnyOf = subs
		if sawNull {
			s.Nullable = true
		}
	}

	if members, ok := asSlice(node["oneOf"]); ok {
		hasComposition = true
		subs, sawNull, err := parseVariantList(members, ctx)
		if err != nil {
			return nil, err
		}
		s.OneOf = subs
		if sawNull {
			s.Nullable = true
		}
	}

	if _, ok := node["allOf"]; ok {
		hasComposition = true
		props, _, components, err := parseAllOf(node, name, ctx)
		if err != nil {
			return nil, err
		}
		s.AllOf = components
		s.Properties = props
		if s.Kind == ir.KindUnknown {
			s.Kind = ir.KindObject
		}
	} else if propsNode, ok := asMap(node["properties"]); ok {
		props, err := parseProperties(propsNode, node["required"], ctx)
		if err != nil {
			return nil, err
		}
		s.Properties = props
		if s.Kind == ir.KindUnknown {
			s.Kind = ir.KindObject
		}
	}

	if enumVals, ok := asSlice(node["enum"]); ok {
		s.EnumValues = slices.Clone(enumVals)
		s.EnumBase = enumBaseKind(s.Kind, enumVals)
		s.Kind = ir.KindEnum
	}

	if s.Kind == ir.KindUnknown {
		if _, ok := node["items"]; ok {
			s.Kind = ir.KindArray
		}
	}
	if s.Kind == ir.KindArray {
		if itemsNode, ok := asMap(node["items"]); ok {
			item, err := parseSchema("", itemsNode, ctx)
			if err != nil {
				return nil, err
			}
			s.Items = item
		}
		// Absent items leaves the element type unconstrained.
	}

	if s.Kind == ir.KindUnknown && !hasComposition && len(s.Properties) == 0 && s.EnumValues == nil {
		ctx.log.Warn("malformed schema node", "schema", name)
		ctx.warnf("schema %s: no determinable type, reference or composition", displayName(name))
		s.IsFromUnresolvedRef = true
	}

	ctx.cache(name, s)
	return s, nil
}

// parseProperties resolves the members of an object node in
// deterministic order and records the required set.
func parseProperties(propsNode map[string]any, requiredField any, ctx *Context) ([]ir.Property, error) {
	required := stringSet(requiredField)

	out := make([]ir.Property, 0, len(propsNode))
	for _, key := range sortedKeys(propsNode) {
		propNode, ok := asMap(propsNode[key])
		if !ok {
			ctx.warnf("property %s: node is not a mapping", key)
			out = append(out, ir.Property{
				Name:   key,
				Schema: &ir.Schema{Kind: ir.KindUnknown, IsFromUnresolvedRef: true},
			})
			continue
		}
		child, err := parseSchema("", propNode, ctx)
		if err != nil {
			return nil, err
		}
		_, req := required[key]
		out = append(out, ir.Property{Name: key, Schema: child, Required: req})
	}
	return out, nil
}

func depthPlaceholder(name string, ctx *Context) *ir.Schema {
	ctx.log.Warn("maximum recursion depth exceeded",
		"schema", displayName(name), "maxDepth", ctx.opts.MaxDepth)
	ctx.warnf("schema %s: maximum recursion depth (%d) exceeded", displayName(name), ctx.opts.MaxDepth)

	s := &ir.Schema{Name: name, Kind: ir.KindObject, IsDepthExceededPlaceholder: true}
	ctx.cache(name, s)
	return s
}

func displayName(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}
