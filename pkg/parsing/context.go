package parsing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mindhiveoy/pyopenapi-gen/pkg/ir"
)

// Context carries the mutable state of a single top-level parse: the raw
// registry being resolved, the cache of finished schemas, the in-progress
// stack forming the active DFS path, the recursion depth, and the ledger
// of detected cycles.
//
// A Context is owned by exactly one traversal and must not be shared
// across concurrent parses; each call to ParseRegistry constructs its own.
type Context struct {
	registry map[string]any

	// resolved is append-only: once a name is present its schema is
	// immutable until the post-pass marker finalizes cycle metadata.
	resolved map[string]*ir.Schema

	inProgress    []string
	inProgressIdx map[string]int

	depth  int
	ledger []*ir.CycleRecord

	warnings []string

	opts Options
	log  *slog.Logger
}

func newContext(registry map[string]any, opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Context{
		registry:      registry,
		resolved:      make(map[string]*ir.Schema, len(registry)),
		inProgressIdx: make(map[string]int),
		opts:          opts,
		log:           log,
	}
}

func (c *Context) push(name string) {
	c.inProgressIdx[name] = len(c.inProgress)
	c.inProgress = append(c.inProgress, name)
}

func (c *Context) pop(name string) {
	if n := len(c.inProgress); n > 0 && c.inProgress[n-1] == name {
		c.inProgress = c.inProgress[:n-1]
		delete(c.inProgressIdx, name)
	}
}

func (c *Context) resolving(name string) bool {
	_, ok := c.inProgressIdx[name]
	return ok
}

// cyclePath returns the closed walk from the first in-progress occurrence
// of name to the top of the stack, terminated by name itself.
func (c *Context) cyclePath(name string) []string {
	idx := c.inProgressIdx[name]
	path := make([]string, 0, len(c.inProgress)-idx+1)
	path = append(path, c.inProgress[idx:]...)
	return append(path, name)
}

func (c *Context) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// cache stores a finished named schema. The first entry for a name wins;
// reentrant placeholders never displace a real resolution.
func (c *Context) cache(name string, s *ir.Schema) {
	if name == "" {
		return
	}
	if _, ok := c.resolved[name]; !ok {
		c.resolved[name] = s
	}
}
