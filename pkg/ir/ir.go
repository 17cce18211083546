package ir

// Kind represents the resolved kind of a schema
type Kind string

const (
	KindUnknown Kind = "unknown"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindEnum    Kind = "enum"
	KindRef     Kind = "ref"
)

// Property represents a named member of an object schema
type Property struct {
	Name     string
	Schema   *Schema
	Required bool
}

// Schema is the resolved, language-agnostic representation of a single
// schema. Named schemas live in the registry produced by the parser;
// cross-schema edges are expressed as KindRef nodes carrying the target
// name, never as embedded copies, so the registry stays cycle-safe.
type Schema struct {
	// Name is unique within a resolved registry. Anonymous inline
	// schemas promoted to the registry receive synthesized names.
	Name string

	Kind        Kind
	Format      string
	Nullable    bool
	Description string

	// Object
	Properties []Property

	// Array
	Items *Schema

	// Enum
	EnumValues []any
	// EnumBase is the underlying primitive kind of the enum values
	EnumBase Kind

	// Ref holds the target schema name when Kind is KindRef
	Ref string

	// Compositions
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema

	// Cycle metadata, finalized by the post-pass marker once the full
	// registry is resolved.
	IsCircular   bool
	CircularPath []string
	CycleInfo    []*CycleRecord

	IsSelfReferentialStub      bool
	IsFromUnresolvedRef        bool
	IsDepthExceededPlaceholder bool
}

// Property returns the named member and whether it exists.
func (s *Schema) Property(name string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// RequiredNames returns the names of required members in declaration order.
func (s *Schema) RequiredNames() []string {
	var out []string
	for _, p := range s.Properties {
		if p.Required {
			out = append(out, p.Name)
		}
	}
	return out
}

// IsPlaceholder reports whether the schema is a terminal stand-in rather
// than a fully resolved definition.
func (s *Schema) IsPlaceholder() bool {
	return s.IsFromUnresolvedRef || s.IsDepthExceededPlaceholder || s.IsSelfReferentialStub
}
