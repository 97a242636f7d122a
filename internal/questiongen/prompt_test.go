package questiongen

import (
	"strings"
	"testing"
)

func TestDifficultyForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{5, 1},
		{6, 2},
		{11, 2},
		{12, 3},
		{18, 4},
		{24, 5},
		{100, 5},
		{-3, 1},
	}
	for _, tt := range tests {
		if got := difficultyForScore(tt.score); got != tt.want {
			t.Errorf("difficultyForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestBuildUserMessage_NoCategories(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Score: 0}, DefaultConfig())
	if !strings.Contains(msg, "Categories: any") {
		t.Errorf("expected any categories: %q", msg)
	}
	if !strings.Contains(msg, "None") {
		t.Errorf("expected empty dedup list: %q", msg)
	}
}

func TestBuildDedup_Truncates(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4", "q5"}
	out := buildDedup(prior, 3)
	if strings.Contains(out, "q1") || strings.Contains(out, "q2") {
		t.Errorf("expected oldest entries dropped: %q", out)
	}
	for _, q := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(out, q) {
			t.Errorf("expected %s in dedup list: %q", q, out)
		}
	}
}
