package python

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
	"github.com/mindhiveoy/pyopenapi-gen/pkg/utils"
)

// module is the render model handed to the models template.
type module struct {
	Package     string
	HasDatetime bool
	Enums       []enumDef
	Classes     []classDef
	Aliases     []aliasDef
}

type enumDef struct {
	Name        string
	Base        string
	Description string
	Members     []enumMember
}

type enumMember struct {
	Name    string
	Literal string
}

type classDef struct {
	Name        string
	Description string
	Fields      []fieldDef
}

type fieldDef struct {
	Name    string
	Type    string
	Default string
}

type aliasDef struct {
	Name   string
	Target string
}

type builder struct {
	schemas     map[string]*ir.Schema
	defined     map[string]bool
	hasDatetime bool

	// noQuote suppresses forward-reference quoting while rendering
	// alias targets, which are emitted after every definition.
	noQuote bool
}

// emitAsAny reports schemas that degrade to Any at emission time. A
// self-referential stub flag on a fully resolved schema is cycle
// metadata, not a placeholder.
func emitAsAny(s *ir.Schema) bool {
	return s == nil || s.IsFromUnresolvedRef || s.IsDepthExceededPlaceholder
}

// buildModule translates the resolved registry into Python constructs:
// enums first, dataclasses in name order, and type aliases last so alias
// targets are always defined by the time they are evaluated.
func buildModule(pkg string, schemas map[string]*ir.Schema) *module {
	b := &builder{schemas: schemas, defined: make(map[string]bool)}

	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	mod := &module{Package: pkg}

	for _, name := range names {
		s := schemas[name]
		if s.Kind == ir.KindEnum && !emitAsAny(s) {
			mod.Enums = append(mod.Enums, b.buildEnum(name, s))
			b.defined[name] = true
		}
	}
	for _, name := range names {
		s := schemas[name]
		if b.isClass(s) {
			mod.Classes = append(mod.Classes, b.buildClass(name, s))
			b.defined[name] = true
		}
	}
	for _, name := range names {
		s := schemas[name]
		if s.Kind == ir.KindEnum && !emitAsAny(s) || b.isClass(s) {
			continue
		}
		mod.Aliases = append(mod.Aliases, aliasDef{
			Name:   utils.SanitizeClassName(name),
			Target: b.aliasTarget(s),
		})
	}

	mod.HasDatetime = b.hasDatetime
	return mod
}

func (b *builder) isClass(s *ir.Schema) bool {
	return s.Kind == ir.KindObject && !emitAsAny(s)
}

// aliasTarget renders the right-hand side of a type alias. Reference
// chains through other aliases are collapsed to their final expression
// so alias order never matters, and nothing is quoted: by the time the
// alias block is evaluated every class and enum is already defined.
func (b *builder) aliasTarget(s *ir.Schema) string {
	seen := make(map[string]bool)
	for s != nil && s.Kind == ir.KindRef {
		if emitAsAny(s) {
			return "Any"
		}
		if b.defined[s.Ref] {
			return utils.SanitizeClassName(s.Ref)
		}
		if seen[s.Ref] {
			return "Any"
		}
		seen[s.Ref] = true
		s = b.schemas[s.Ref]
	}
	if emitAsAny(s) {
		return "Any"
	}
	b.noQuote = true
	defer func() { b.noQuote = false }()
	return b.typeExpr(s)
}

func (b *builder) buildEnum(name string, s *ir.Schema) enumDef {
	def := enumDef{
		Name:        utils.SanitizeClassName(name),
		Base:        enumBase(s.EnumBase),
		Description: s.Description,
	}
	seen := make(map[string]int)
	for _, v := range s.EnumValues {
		member := enumMember{Name: memberName(v), Literal: pyLiteral(v)}
		if n := seen[member.Name]; n > 0 {
			member.Name = fmt.Sprintf("%s_%d", member.Name, n+1)
		}
		seen[member.Name]++
		def.Members = append(def.Members, member)
	}
	return def
}

func (b *builder) buildClass(name string, s *ir.Schema) classDef {
	def := classDef{
		Name:        utils.SanitizeClassName(name),
		Description: s.Description,
	}

	// Required members first: dataclass fields with defaults must
	// follow the ones without.
	for _, pass := range []bool{true, false} {
		for _, p := range s.Properties {
			if p.Required != pass {
				continue
			}
			f := fieldDef{Name: fieldName(p.Name)}
			typ := b.typeExpr(p.Schema)
			if !p.Required || (p.Schema != nil && p.Schema.Nullable) {
				typ = optional(typ)
			}
			if !p.Required {
				f.Default = "None"
			}
			f.Type = typ
			def.Fields = append(def.Fields, f)
		}
	}
	return def
}

// typeExpr renders the Python type expression for a schema. References
// whose target is not yet defined in emission order, or whose target
// participates in a cycle, are rendered as quoted forward references.
func (b *builder) typeExpr(s *ir.Schema) string {
	if emitAsAny(s) {
		return "Any"
	}
	if s.Kind == ir.KindRef {
		return b.refExpr(s.Ref)
	}
	if len(s.AnyOf) > 0 || len(s.OneOf) > 0 {
		return b.unionExpr(append(append([]*ir.Schema{}, s.AnyOf...), s.OneOf...))
	}

	switch s.Kind {
	case ir.KindString:
		switch s.Format {
		case "date-time":
			b.hasDatetime = true
			return "datetime"
		case "date":
			b.hasDatetime = true
			return "date"
		}
		return "str"
	case ir.KindInteger:
		return "int"
	case ir.KindNumber:
		return "float"
	case ir.KindBoolean:
		return "bool"
	case ir.KindNull:
		return "None"
	case ir.KindArray:
		if s.Items == nil {
			return "List[Any]"
		}
		return "List[" + b.typeExpr(s.Items) + "]"
	case ir.KindEnum:
		// Anonymous enums fall back to their base primitive; named
		// enums are referenced through KindRef after promotion.
		return enumPrimitive(s.EnumBase)
	case ir.KindObject:
		// Anonymous objects survive only outside property sites (the
		// promotion pass names the rest); render them as open dicts.
		return "Dict[str, Any]"
	}
	return "Any"
}

func (b *builder) refExpr(name string) string {
	cls := utils.SanitizeClassName(name)
	target := b.schemas[name]
	if target != nil && emitAsAny(target) {
		return "Any"
	}
	if b.noQuote {
		return cls
	}
	if !b.defined[name] || (target != nil && target.IsCircular) {
		return fmt.Sprintf("%q", cls)
	}
	return cls
}

func (b *builder) unionExpr(variants []*ir.Schema) string {
	var parts []string
	seen := make(map[string]struct{})
	for _, v := range variants {
		expr := b.typeExpr(v)
		if _, dup := seen[expr]; dup {
			continue
		}
		seen[expr] = struct{}{}
		parts = append(parts, expr)
	}
	switch len(parts) {
	case 0:
		return "Any"
	case 1:
		return parts[0]
	}
	return "Union[" + strings.Join(parts, ", ") + "]"
}

func optional(typ string) string {
	if strings.HasPrefix(typ, "Optional[") {
		return typ
	}
	return "Optional[" + typ + "]"
}

func enumBase(kind ir.Kind) string {
	if kind == ir.KindInteger {
		return "int"
	}
	return "str"
}

func enumPrimitive(kind ir.Kind) string {
	switch kind {
	case ir.KindInteger:
		return "int"
	case ir.KindNumber:
		return "float"
	case ir.KindBoolean:
		return "bool"
	}
	return "str"
}

var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {},
	"finally": {}, "for": {}, "from": {}, "global": {}, "if": {},
	"import": {}, "in": {}, "is": {}, "lambda": {}, "nonlocal": {},
	"not": {}, "or": {}, "pass": {}, "raise": {}, "return": {},
	"try": {}, "while": {}, "with": {}, "yield": {},
}

func fieldName(name string) string {
	out := utils.ToSnakeCase(name)
	if out == "" {
		out = "field"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	if _, kw := pythonKeywords[out]; kw {
		out += "_"
	}
	return out
}

func memberName(v any) string {
	s, ok := v.(string)
	if !ok {
		return "VALUE_" + strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' {
				return r
			}
			if r >= 'a' && r <= 'z' {
				return r - 'a' + 'A'
			}
			return '_'
		}, fmt.Sprint(v))
	}
	out := strings.ToUpper(utils.ToSnakeCase(s))
	if out == "" {
		return "EMPTY"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "VALUE_" + out
	}
	return out
}

// pyLiteral renders a raw enum value as a Python literal. JSON string
// quoting is valid Python, so strings round-trip through the encoder.
func pyLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case bool:
		if t {
			return "True"
		}
		return "False"
	case string:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%q", t)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
