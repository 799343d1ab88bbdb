package rankdomain

import (
	"testing"
)

func TestScoreStandardRegime(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		want    int
		wantErr bool
	}{
		{name: "all zero", counts: []int{0, 0, 0, 0, 0}, want: 0},
		{name: "one of each", counts: []int{1, 1, 1, 1, 1}, want: 15},
		{name: "weighted sum", counts: []int{2, 0, 3, 1, 10}, want: 2*5 + 3*3 + 1*2 + 10*1},
		{name: "wrong length", counts: []int{1, 2, 3}, wantErr: true},
		{name: "negative count", counts: []int{1, -1, 0, 0, 0}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegimeStandard.Score(tt.counts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.counts, got, tt.want)
			}
		})
	}
}

func TestScoreDeltaRegime(t *testing.T) {
	// Delta regime drops the top-15 threshold but keeps identical weights for
	// the thresholds both regimes share.
	got, err := RegimeDelta.Score([]int{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 5 + 4 + 2 + 1; got != want {
		t.Errorf("delta score = %d, want %d", got, want)
	}
}

func TestScoreDeterministicAndMonotonic(t *testing.T) {
	counts := []int{3, 7, 2, 11, 40}
	first, err := RegimeStandard.Score(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := RegimeStandard.Score(counts)
	if first != second {
		t.Fatalf("score not deterministic: %d vs %d", first, second)
	}

	doubled := make([]int, len(counts))
	for i, c := range counts {
		doubled[i] = c * 2
	}
	doubledScore, err := RegimeStandard.Score(doubled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doubledScore < first {
		t.Errorf("doubling counts decreased score: %d -> %d", first, doubledScore)
	}
}

func TestScoreWithOverrides(t *testing.T) {
	counts := []int{1, 2, 3, 4, 5}

	t.Run("override equals direct computation", func(t *testing.T) {
		got, err := RegimeStandard.ScoreWithOverrides(counts, map[int]int{15: 10, 1: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := RegimeStandard.Score([]int{0, 2, 10, 4, 5})
		if got != want {
			t.Errorf("override score = %d, direct score = %d", got, want)
		}
	})

	t.Run("no overrides matches plain score", func(t *testing.T) {
		got, err := RegimeStandard.ScoreWithOverrides(counts, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := RegimeStandard.Score(counts)
		if got != want {
			t.Errorf("score with no overrides = %d, want %d", got, want)
		}
	})

	t.Run("unknown threshold rejected", func(t *testing.T) {
		if _, err := RegimeStandard.ScoreWithOverrides(counts, map[int]int{100: 1}); err == nil {
			t.Fatal("expected error for threshold outside regime")
		}
	})

	t.Run("original slice untouched", func(t *testing.T) {
		if _, err := RegimeStandard.ScoreWithOverrides(counts, map[int]int{1: 99}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts[0] != 1 {
			t.Errorf("input slice mutated: %v", counts)
		}
	})
}

func TestRegimeThresholds(t *testing.T) {
	if got := RegimeStandard.Thresholds(); len(got) != 5 {
		t.Errorf("standard thresholds = %v", got)
	}
	if got := RegimeDelta.Thresholds(); len(got) != 4 {
		t.Errorf("delta thresholds = %v", got)
	}
	if !RegimeStandard.Valid() || !RegimeDelta.Valid() || Regime("other").Valid() {
		t.Error("regime validity misreported")
	}
}
