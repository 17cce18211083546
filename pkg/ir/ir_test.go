package ir

import (
	"reflect"
	"testing"
)

func TestSchemaProperty(t *testing.T) {
	s := &Schema{
		Name: "User",
		Kind: KindObject,
		Properties: []Property{
			{Name: "id", Schema: &Schema{Kind: KindString}, Required: true},
			{Name: "email", Schema: &Schema{Kind: KindString}},
			{Name: "age", Schema: &Schema{Kind: KindInteger}, Required: true},
		},
	}

	p, ok := s.Property("email")
	if !ok || p.Schema.Kind != KindString || p.Required {
		t.Errorf("Property(email) = %+v, %v", p, ok)
	}
	if _, ok := s.Property("missing"); ok {
		t.Error("Property(missing) reported ok")
	}

	if got, want := s.RequiredNames(), []string{"id", "age"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredNames() = %v, want %v", got, want)
	}
}

func TestSchemaIsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		s    Schema
		want bool
	}{
		{"resolved object", Schema{Kind: KindObject}, false},
		{"unresolved ref", Schema{IsFromUnresolvedRef: true}, true},
		{"depth exceeded", Schema{Kind: KindObject, IsDepthExceededPlaceholder: true}, true},
		{"self-referential stub", Schema{Kind: KindRef, IsSelfReferentialStub: true}, true},
		{"circular but resolved", Schema{Kind: KindObject, IsCircular: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsPlaceholder(); got != tt.want {
				t.Errorf("IsPlaceholder() = %v, want %v", got, tt.want)
			}
		})
	}
}
