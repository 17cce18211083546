package parsing

import "sort"

// Helpers for reading the externally supplied raw schema nodes, which
// arrive as generic maps, lists and scalars and are never mutated.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func stringSet(v any) map[string]struct{} {
	out := make(map[string]struct{})
	items, ok := asSlice(v)
	if !ok {
		return out
	}
	for _, it := range items {
		if s, ok := it.(string); ok {
			out[s] = struct{}{}
		}
	}
	return out
}

// sortedKeys gives the deterministic member order used everywhere the
// engine iterates a raw mapping. Generic maps carry no source order, so
// lexicographic order is the stable, testable choice.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
