package parsing

import (
	"errors"
	"testing"
)

func TestOptionsWithDefaults(t *testing.T) {
	got := Options{}.withDefaults()
	if got.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got.MaxDepth, DefaultMaxDepth)
	}
	if got.Strategy != StrategyForwardReference {
		t.Errorf("Strategy = %q, want %q", got.Strategy, StrategyForwardReference)
	}
	if got.MaxCycles != 0 {
		t.Errorf("MaxCycles = %d, want 0 (unlimited)", got.MaxCycles)
	}

	kept := Options{MaxDepth: 7, Strategy: StrategyErrorAllCycles, MaxCycles: 3}.withDefaults()
	if kept.MaxDepth != 7 || kept.Strategy != StrategyErrorAllCycles || kept.MaxCycles != 3 {
		t.Errorf("explicit options changed: %+v", kept)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Options{}.withDefaults(), false},
		{"all strategies", Options{MaxDepth: 1, Strategy: StrategyBreakAtReentry}, false},
		{"negative depth", Options{MaxDepth: -1, Strategy: StrategyForwardReference}, true},
		{"negative cycles", Options{MaxDepth: 1, MaxCycles: -2, Strategy: StrategyForwardReference}, true},
		{"unknown strategy", Options{MaxDepth: 1, Strategy: "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("validate() error %v does not wrap ErrInvalidOptions", err)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"allow_self_reference", StrategyAllowSelfReference, false},
		{"error_all_cycles", StrategyErrorAllCycles, false},
		{"forward_reference", StrategyForwardReference, false},
		{"break_at_reentry", StrategyBreakAtReentry, false},
		{"", StrategyForwardReference, false},
		{"whatever", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
