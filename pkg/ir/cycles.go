package ir

import "sort"

// CycleType classifies a detected reference cycle by the number of
// distinct schemas participating in it.
type CycleType string

const (
	CycleSelfReference CycleType = "self_reference" // A -> A
	CycleMutual        CycleType = "mutual"         // A -> B -> A
	CycleIndirect      CycleType = "indirect"       // 3-5 participants
	CycleComplex       CycleType = "complex"        // 6 or more participants
)

// ClassifyCycle maps a distinct-participant count to a CycleType.
func ClassifyCycle(participants int) CycleType {
	switch {
	case participants <= 1:
		return CycleSelfReference
	case participants == 2:
		return CycleMutual
	case participants <= 5:
		return CycleIndirect
	default:
		return CycleComplex
	}
}

// CycleRecord describes one detected cycle in the named-schema
// reference graph.
type CycleRecord struct {
	Type CycleType `json:"cycleType"`
	// Path is the closed walk through the cycle: the first and last
	// entries name the same schema.
	Path []string `json:"path"`
	// Entry is the schema where traversal first entered the cycle.
	Entry string `json:"entryName"`
	// Reentry is the schema whose repeated visit triggered detection.
	Reentry string `json:"reentryName"`
}

// Participants returns the distinct schema names in the cycle, in walk
// order (the closing duplicate is dropped).
func (r *CycleRecord) Participants() []string {
	if len(r.Path) == 0 {
		return nil
	}
	if len(r.Path) > 1 && r.Path[0] == r.Path[len(r.Path)-1] {
		return r.Path[:len(r.Path)-1]
	}
	return r.Path
}

// Len returns the cycle length as the number of distinct participants.
func (r *CycleRecord) Len() int {
	return len(r.Participants())
}

// CycleAnalysis aggregates all cycles detected during one parse.
type CycleAnalysis struct {
	HasCycles            bool           `json:"hasCycles"`
	Cycles               []*CycleRecord `json:"cycles"`
	TotalSchemasInCycles int            `json:"totalSchemasInCycles"`
	// UniqueCycleSchemaNames is sorted for stable output.
	UniqueCycleSchemaNames []string `json:"uniqueCycleSchemaNames"`
	MaxCycleLength         int      `json:"maxCycleLength"`
	ComplexityScore        float64  `json:"complexityScore"`
}

// AnalyzeCycles builds a CycleAnalysis from the cycle ledger.
// ComplexityScore is unique participant count times max cycle length,
// normalized by the total number of resolved schemas.
func AnalyzeCycles(cycles []*CycleRecord, totalResolved int) *CycleAnalysis {
	if len(cycles) == 0 {
		return &CycleAnalysis{Cycles: []*CycleRecord{}, UniqueCycleSchemaNames: []string{}}
	}

	unique := make(map[string]struct{})
	maxLen := 0
	for _, c := range cycles {
		for _, name := range c.Participants() {
			unique[name] = struct{}{}
		}
		if n := c.Len(); n > maxLen {
			maxLen = n
		}
	}

	names := make([]string, 0, len(unique))
	for name := range unique {
		names = append(names, name)
	}
	sort.Strings(names)

	score := 0.0
	if totalResolved > 0 {
		score = float64(len(names)) * float64(maxLen) / float64(totalResolved)
	}

	return &CycleAnalysis{
		HasCycles:              true,
		Cycles:                 cycles,
		TotalSchemasInCycles:   len(names),
		UniqueCycleSchemaNames: names,
		MaxCycleLength:         maxLen,
		ComplexityScore:        score,
	}
}
