package store

import (
	"testing"
	"time"

	"github.com/joe192839/Mindduel/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrefs_SoundDefaultsOn(t *testing.T) {
	s := openTestStore(t)

	enabled, err := s.Prefs().SoundEnabled()
	if err != nil {
		t.Fatalf("SoundEnabled failed: %v", err)
	}
	if !enabled {
		t.Fatal("sound default = off, want on")
	}
}

func TestPrefs_SoundRoundTrip(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Prefs()

	if err := prefs.SetSoundEnabled(false); err != nil {
		t.Fatalf("SetSoundEnabled failed: %v", err)
	}
	enabled, err := prefs.SoundEnabled()
	if err != nil {
		t.Fatalf("SoundEnabled failed: %v", err)
	}
	if enabled {
		t.Fatal("sound = on after saving off")
	}

	if err := prefs.SetSoundEnabled(true); err != nil {
		t.Fatalf("SetSoundEnabled failed: %v", err)
	}
	enabled, err = prefs.SoundEnabled()
	if err != nil {
		t.Fatalf("SoundEnabled failed: %v", err)
	}
	if !enabled {
		t.Fatal("sound = off after saving on")
	}
}

func TestPrefs_InstallIDStable(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Prefs()

	first, err := prefs.InstallID()
	if err != nil {
		t.Fatalf("InstallID failed: %v", err)
	}
	if first == "" {
		t.Fatal("InstallID is empty")
	}

	second, err := prefs.InstallID()
	if err != nil {
		t.Fatalf("second InstallID failed: %v", err)
	}
	if first != second {
		t.Fatalf("InstallID changed between calls: %q vs %q", first, second)
	}
}

func TestMatches_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	matches := s.Matches()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{5, 12, 3} {
		err := matches.RecordMatch(game.MatchRecord{
			SessionID:         "s-" + string(rune('a'+i)),
			Score:             score,
			Lives:             0,
			HighestSpeedLevel: 50,
			UsedAIQuestions:   i == 1,
			Reason:            "lives",
			Duration:          90 * time.Second,
			PlayedAt:          base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("RecordMatch %d failed: %v", i, err)
		}
	}

	recent, err := matches.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d records, want 2", len(recent))
	}
	if recent[0].Score != 3 || recent[1].Score != 12 {
		t.Fatalf("Recent order wrong: %+v", recent)
	}
	if !recent[1].UsedAIQuestions {
		t.Error("UsedAIQuestions not round-tripped")
	}
	if recent[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", recent[0].Duration)
	}
}

func TestMatches_Summarize(t *testing.T) {
	s := openTestStore(t)
	matches := s.Matches()

	empty, err := matches.Summarize()
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if empty.Games != 0 || empty.BestScore != 0 || empty.FastestLevel != 60 {
		t.Fatalf("empty summary = %+v", empty)
	}

	for _, m := range []game.MatchRecord{
		{SessionID: "a", Score: 4, HighestSpeedLevel: 50, Reason: "lives", PlayedAt: time.Now()},
		{SessionID: "b", Score: 10, HighestSpeedLevel: 25, Reason: "quit", PlayedAt: time.Now()},
	} {
		if err := matches.RecordMatch(m); err != nil {
			t.Fatalf("RecordMatch failed: %v", err)
		}
	}

	sum, err := matches.Summarize()
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if sum.Games != 2 || sum.BestScore != 10 || sum.FastestLevel != 25 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.AverageScore != 7 {
		t.Errorf("average = %v, want 7", sum.AverageScore)
	}
}
