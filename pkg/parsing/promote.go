package parsing

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/utils"
)

// promoteInline rewrites anonymous enum and object shapes nested inside
// property and items definitions into standalone named registry entries,
// replacing each original site with a named reference. It runs before
// resolution, so promoted entries take part in reference and cycle
// handling like any declared schema. The caller's registry is read-only:
// every rewritten tree is a deep copy.
func promoteInline(registry map[string]any) map[string]any {
	out := make(map[string]any, len(registry))
	for k, v := range registry {
		out[k] = v
	}

	p := &promoter{registry: out}
	for _, name := range sortedKeys(registry) {
		node, ok := asMap(registry[name])
		if !ok {
			continue
		}
		clone, ok := asMap(deepcopy.Copy(node))
		if !ok {
			continue
		}
		p.rewrite(clone, utils.SanitizeClassName(name))
		out[name] = clone
	}
	return out
}

type promoter struct {
	registry map[string]any
}

// rewrite walks a copied node in place. Children are rewritten before
// their enclosing site is promoted, so promoted entries are already in
// their final shape when they land in the registry.
func (p *promoter) rewrite(node map[string]any, base string) {
	if _, isRef := node["$ref"]; isRef {
		return
	}

	if props, ok := asMap(node["properties"]); ok {
		for _, key := range sortedKeys(props) {
			child, ok := asMap(props[key])
			if !ok {
				continue
			}
			if _, isRef := child["$ref"]; isRef {
				continue
			}
			childBase := base + utils.SanitizeClassName(key)
			p.rewrite(child, childBase)
			if name, promoted := p.promote(child, childBase); promoted {
				props[key] = refNode(name)
			}
		}
	}

	if items, ok := asMap(node["items"]); ok {
		if _, isRef := items["$ref"]; !isRef {
			itemBase := base + "Item"
			p.rewrite(items, itemBase)
			if name, promoted := p.promote(items, itemBase); promoted {
				node["items"] = refNode(name)
			}
		}
	}

	for _, keyword := range []string{"allOf", "anyOf", "oneOf"} {
		members, ok := asSlice(node[keyword])
		if !ok {
			continue
		}
		for _, member := range members {
			if m, ok := asMap(member); ok {
				p.rewrite(m, base)
			}
		}
	}
}

func (p *promoter) promote(node map[string]any, base string) (string, bool) {
	switch {
	case isInlineEnum(node):
		return p.register(node, base+"Enum"), true
	case isInlineObject(node):
		return p.register(node, base), true
	}
	return "", false
}

// register stores the node under base, or under base_2, base_3, ... when
// the name is already taken. Promotion order is deterministic, so the
// suffixing is too.
func (p *promoter) register(node map[string]any, base string) string {
	name := base
	for i := 2; ; i++ {
		if _, taken := p.registry[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}
	p.registry[name] = node
	return name
}

func isInlineEnum(node map[string]any) bool {
	vals, ok := asSlice(node["enum"])
	return ok && len(vals) > 0
}

func isInlineObject(node map[string]any) bool {
	_, ok := asMap(node["properties"])
	return ok
}

func refNode(name string) map[string]any {
	return map[string]any{"$ref": schemaRefPrefix + name}
}
