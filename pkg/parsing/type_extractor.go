package parsing

import (
	"fmt"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// extractType determines the primary kind and nullability of a schema
// from its raw "type" field. OpenAPI 3.0 uses a single string, 3.1 a
// string or a list that may include "null". Unexpected shapes produce a
// warning and an unknown kind; the caller decides whether structural
// hints can still classify the node.
func extractType(typeField any, name string) (ir.Kind, bool, []string) {
	var warnings []string

	display := name
	if display == "" {
		display = "<anonymous>"
	}

	switch t := typeField.(type) {
	case nil:
		return ir.KindUnknown, false, nil
	case string:
		if t == "null" {
			return ir.KindNull, true, nil
		}
		return kindFromTypeName(t, display, &warnings), false, warnings
	case []any:
		if len(t) == 0 {
			return ir.KindUnknown, false, nil
		}
		nullable := false
		var nonNull []string
		for _, v := range t {
			s, ok := v.(string)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("schema %s: ignoring non-string entry %v in type list", display, v))
				continue
			}
			if s == "null" {
				nullable = true
			} else {
				nonNull = append(nonNull, s)
			}
		}
		switch len(nonNull) {
		case 0:
			if nullable {
				return ir.KindNull, true, warnings
			}
			return ir.KindUnknown, false, warnings
		case 1:
			return kindFromTypeName(nonNull[0], display, &warnings), nullable, warnings
		default:
			warnings = append(warnings, fmt.Sprintf("schema %s: multiple types %v, using %q", display, nonNull, nonNull[0]))
			return kindFromTypeName(nonNull[0], display, &warnings), nullable, warnings
		}
	default:
		warnings = append(warnings, fmt.Sprintf("schema %s: unexpected type field %v, ignoring", display, typeField))
		return ir.KindUnknown, false, warnings
	}
}

func kindFromTypeName(t, display string, warnings *[]string) ir.Kind {
	switch t {
	case "string":
		return ir.KindString
	case "integer":
		return ir.KindInteger
	case "number":
		return ir.KindNumber
	case "boolean":
		return ir.KindBoolean
	case "array":
		return ir.KindArray
	case "object":
		return ir.KindObject
	default:
		*warnings = append(*warnings, fmt.Sprintf("schema %s: unknown type %q", display, t))
		return ir.KindUnknown
	}
}

// enumBaseKind infers the underlying primitive kind for enum values.
// An explicit primitive kind wins; otherwise the first value decides.
func enumBaseKind(explicit ir.Kind, values []any) ir.Kind {
	switch explicit {
	case ir.KindString, ir.KindInteger, ir.KindNumber, ir.KindBoolean:
		return explicit
	}
	if len(values) == 0 {
		return ir.KindUnknown
	}
	switch values[0].(type) {
	case string:
		return ir.KindString
	case int, int32, int64, uint, uint32, uint64:
		return ir.KindInteger
	case float32, float64:
		return ir.KindNumber
	case bool:
		return ir.KindBoolean
	}
	return ir.KindUnknown
}
