// Package parsing turns a raw named-schema registry, as loaded from an
// OpenAPI document, into the resolved IR registry consumed by code
// generators.
//
// The engine is a sequential recursive-descent parser. All state for one
// parse lives in a Context constructed by ParseRegistry, so independent
// parses may run concurrently as long as each uses its own call. Named
// references between schemas may form cycles; detection, classification
// and the configured handling strategy are applied at every point a
// reference is followed, and a post-pass marks every participant of
// every detected cycle before the result is returned.
package parsing
