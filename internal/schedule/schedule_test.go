package schedule

import "testing"

func TestLimitForScore_Table(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 60},
		{1, 60},
		{2, 60},
		{3, 50},
		{5, 50},
		{6, 40},
		{9, 30},
		{12, 25},
		{15, 20},
		{18, 15},
		{21, 10},
		{24, 9},
		{27, 8},
		{30, 7},
		{33, 6},
		{36, 5},
		{37, 5},
		{99, 5},
	}

	for _, tt := range tests {
		got := LimitForScore(tt.score)
		if got != tt.want {
			t.Errorf("LimitForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestLimitForScore_NonIncreasing(t *testing.T) {
	prev := LimitForScore(0)
	for s := 1; s <= 120; s++ {
		cur := LimitForScore(s)
		if cur > prev {
			t.Fatalf("LimitForScore(%d) = %d exceeds LimitForScore(%d) = %d", s, cur, s-1, prev)
		}
		prev = cur
	}
}

func TestLimitForScore_NegativeScore(t *testing.T) {
	if got := LimitForScore(-5); got != InitialLimit {
		t.Errorf("LimitForScore(-5) = %d, want %d", got, InitialLimit)
	}
}

func TestTransitionForScore_FirstQuestionsNeverChange(t *testing.T) {
	for s := -1; s <= 1; s++ {
		tr := TransitionForScore(s)
		if tr.Changed {
			t.Errorf("TransitionForScore(%d).Changed = true, want false", s)
		}
	}
}

func TestTransitionForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score       int
		wantOld     int
		wantNew     int
		wantChanged bool
	}{
		{2, 60, 60, false},
		{3, 60, 50, true},
		{4, 50, 50, false},
		{5, 50, 50, false},
		{6, 50, 40, true},
		{9, 40, 30, true},
		{12, 30, 25, true},
		{36, 6, 5, true},
		{37, 5, 5, false},
		{39, 5, 5, false},
	}

	for _, tt := range tests {
		tr := TransitionForScore(tt.score)
		if tr.OldLimit != tt.wantOld || tr.NewLimit != tt.wantNew || tr.Changed != tt.wantChanged {
			t.Errorf("TransitionForScore(%d) = {%d %d %t}, want {%d %d %t}",
				tt.score, tr.OldLimit, tr.NewLimit, tr.Changed,
				tt.wantOld, tt.wantNew, tt.wantChanged)
		}
	}
}

func TestTransitionForScore_Idempotent(t *testing.T) {
	a := TransitionForScore(3)
	b := TransitionForScore(3)
	if a != b {
		t.Errorf("TransitionForScore(3) not stable: %+v vs %+v", a, b)
	}
}
