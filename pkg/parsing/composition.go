package parsing

import (
	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// parseAllOf merges every member of an allOf list into a single object
// shape. Member properties are merged in list order with the last member
// winning on conflicting names; properties declared directly on the node
// (siblings of allOf) are applied afterwards and therefore win over all
// members. Required sets are unioned.
func parseAllOf(node map[string]any, name string, ctx *Context) ([]ir.Property, map[string]struct{}, []*ir.Schema, error) {
	members, _ := asSlice(node["allOf"])

	var props []ir.Property
	index := make(map[string]int)
	required := stringSet(node["required"])
	components := make([]*ir.Schema, 0, len(members))

	merge := func(p ir.Property) {
		if i, ok := index[p.Name]; ok {
			props[i] = p
			return
		}
		index[p.Name] = len(props)
		props = append(props, p)
	}

	for _, member := range members {
		memberNode, ok := asMap(member)
		if !ok {
			ctx.warnf("schema %s: ignoring non-mapping allOf member", name)
			continue
		}
		sub, err := parseSchema("", memberNode, ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		components = append(components, sub)

		// Referenced members contribute the properties of their target.
		contributor := sub
		if sub.Kind == ir.KindRef {
			if target, ok := ctx.resolved[sub.Ref]; ok {
				contributor = target
			}
		}
		for _, p := range contributor.Properties {
			merge(p)
			if p.Required {
				required[p.Name] = struct{}{}
			}
		}
		for r := range stringSet(memberNode["required"]) {
			required[r] = struct{}{}
		}
	}

	// Direct sibling properties override member definitions.
	if direct, ok := asMap(node["properties"]); ok {
		directProps, err := parseProperties(direct, node["required"], ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, p := range directProps {
			merge(p)
		}
	}

	for i := range props {
		_, req := required[props[i].Name]
		props[i].Required = req
	}

	return props, required, components, nil
}

// parseVariantList handles anyOf and oneOf: children are collected in
// list order with no merging. A null-typed alternative is consumed to
// mark the parent nullable instead of being retained as a child.
func parseVariantList(members []any, ctx *Context) ([]*ir.Schema, bool, error) {
	var out []*ir.Schema
	nullable := false

	for _, member := range members {
		memberNode, ok := asMap(member)
		if !ok {
			continue
		}
		if t, _ := memberNode["type"].(string); t == "null" {
			nullable = true
			continue
		}
		sub, err := parseSchema("", memberNode, ctx)
		if err != nil {
			return nil, false, err
		}
		if sub.Kind == ir.KindNull {
			nullable = true
			continue
		}
		out = append(out, sub)
	}

	return out, nullable, nil
}
