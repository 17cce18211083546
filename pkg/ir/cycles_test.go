package ir

import (
	"math"
	"reflect"
	"testing"
)

func TestClassifyCycle(t *testing.T) {
	tests := []struct {
		participants int
		want         CycleType
	}{
		{1, CycleSelfReference},
		{2, CycleMutual},
		{3, CycleIndirect},
		{5, CycleIndirect},
		{6, CycleComplex},
		{12, CycleComplex},
	}

	for _, tt := range tests {
		if got := ClassifyCycle(tt.participants); got != tt.want {
			t.Errorf("ClassifyCycle(%d) = %q, want %q", tt.participants, got, tt.want)
		}
	}
}

func TestCycleRecordParticipants(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want []string
	}{
		{"closed mutual", []string{"A", "B", "A"}, []string{"A", "B"}},
		{"closed self", []string{"A", "A"}, []string{"A"}},
		{"open path", []string{"A", "B"}, []string{"A", "B"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &CycleRecord{Path: tt.path}
			if got := r.Participants(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Participants() = %v, want %v", got, tt.want)
			}
			if got := r.Len(); got != len(tt.want) {
				t.Errorf("Len() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestAnalyzeCycles_Empty(t *testing.T) {
	a := AnalyzeCycles(nil, 10)
	if a.HasCycles {
		t.Error("HasCycles = true for empty ledger")
	}
	if a.Cycles == nil || a.UniqueCycleSchemaNames == nil {
		t.Error("empty analysis must carry empty, non-nil slices")
	}
	if a.ComplexityScore != 0 {
		t.Errorf("ComplexityScore = %v, want 0", a.ComplexityScore)
	}
}

func TestAnalyzeCycles_MutualPair(t *testing.T) {
	cycles := []*CycleRecord{
		{Type: CycleMutual, Path: []string{"B", "A", "B"}, Entry: "B", Reentry: "B"},
	}

	a := AnalyzeCycles(cycles, 2)

	if !a.HasCycles {
		t.Fatal("HasCycles = false")
	}
	if a.TotalSchemasInCycles != 2 {
		t.Errorf("TotalSchemasInCycles = %d, want 2", a.TotalSchemasInCycles)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(a.UniqueCycleSchemaNames, want) {
		t.Errorf("UniqueCycleSchemaNames = %v, want %v (sorted)", a.UniqueCycleSchemaNames, want)
	}
	if a.MaxCycleLength != 2 {
		t.Errorf("MaxCycleLength = %d, want 2", a.MaxCycleLength)
	}
	// 2 names * length 2 / 2 resolved
	if math.Abs(a.ComplexityScore-2.0) > 1e-9 {
		t.Errorf("ComplexityScore = %v, want 2.0", a.ComplexityScore)
	}
}

func TestAnalyzeCycles_MixedLedger(t *testing.T) {
	cycles := []*CycleRecord{
		{Type: CycleSelfReference, Path: []string{"S", "S"}},
		{Type: CycleIndirect, Path: []string{"A", "B", "C", "A"}},
	}

	a := AnalyzeCycles(cycles, 8)

	if a.MaxCycleLength != 3 {
		t.Errorf("MaxCycleLength = %d, want 3", a.MaxCycleLength)
	}
	if a.TotalSchemasInCycles != 4 {
		t.Errorf("TotalSchemasInCycles = %d, want 4", a.TotalSchemasInCycles)
	}
	// 4 names * max length 3 / 8 resolved
	if math.Abs(a.ComplexityScore-1.5) > 1e-9 {
		t.Errorf("ComplexityScore = %v, want 1.5", a.ComplexityScore)
	}
}

func TestAnalyzeCycles_ZeroResolved(t *testing.T) {
	cycles := []*CycleRecord{{Path: []string{"A", "A"}}}
	a := AnalyzeCycles(cycles, 0)
	if a.ComplexityScore != 0 {
		t.Errorf("ComplexityScore = %v, want 0 when nothing resolved", a.ComplexityScore)
	}
}
