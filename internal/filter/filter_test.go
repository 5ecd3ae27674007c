package filter

import (
	"encoding/json"
	"testing"
)

func TestToggleMoodParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		s := New(StandardDefaults)
		for i := 0; i < n; i++ {
			s.ToggleMood("isolation")
		}
		if got, want := s.MoodSelected("isolation"), n%2 == 1; got != want {
			t.Errorf("after %d toggles selected = %v, want %v", n, got, want)
		}
		if got := len(s.Moods()); got != n%2 {
			t.Errorf("after %d toggles len(Moods) = %d", n, got)
		}
	}
}

func TestMoodsFollowChipOrder(t *testing.T) {
	s := New(StandardDefaults)
	s.SetAvailable([]string{"psychological", "isolation", "madness"})
	s.ToggleMood("madness")
	s.ToggleMood("custom")
	s.ToggleMood("psychological")

	got := s.Moods()
	want := []string{"psychological", "madness", "custom"}
	if len(got) != len(want) {
		t.Fatalf("Moods() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Moods()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	s.ToggleMood("custom")
	if len(s.Moods()) != 2 {
		t.Errorf("expected custom to be removed, got %v", s.Moods())
	}
}

func TestSetAvailableKeepsSurvivingSelections(t *testing.T) {
	s := New(StandardDefaults)
	s.SetAvailable([]string{"isolation", "madness", "whispers"})
	s.ToggleMood("isolation")
	s.ToggleMood("whispers")

	s.SetAvailable([]string{"isolation", "gothic_decay", "isolation", ""})

	if !s.MoodSelected("isolation") {
		t.Error("isolation should stay selected")
	}
	if s.MoodSelected("whispers") {
		t.Error("whispers is no longer offered and should be dropped")
	}
	chips := s.Chips()
	if len(chips) != 2 {
		t.Fatalf("expected 2 deduplicated chips, got %d", len(chips))
	}
	if chips[1].Label != "gothic decay" {
		t.Errorf("label = %q, want %q", chips[1].Label, "gothic decay")
	}
	if !chips[0].Selected || chips[1].Selected {
		t.Errorf("unexpected selection: %+v", chips)
	}
}

func TestSetQualityClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{6, 6},
		{10, 10},
		{11, 10},
	}
	s := New(StandardDefaults)
	for _, tt := range tests {
		if got := s.SetQuality(tt.in); got != tt.want {
			t.Errorf("SetQuality(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if s.Quality() != tt.want {
			t.Errorf("Quality() after SetQuality(%d) = %d", tt.in, s.Quality())
		}
	}
}

func TestSetLengthBounds(t *testing.T) {
	tests := []struct {
		min, max         string
		wantMin, wantMax int
	}{
		{"45", "90", 45, 90},
		{"abc", "", 30, 120},
		{" 60 ", "300s", 60, 300},
		{"0", "0", 30, 120},
		{"-5", "+7", -5, 7},
		{"200", "100", 200, 100},
		{"99999999999", "86401", MaxLengthSeconds, MaxLengthSeconds},
		{"-99999999999999999999", "00090", -MaxLengthSeconds, 90},
	}
	for _, tt := range tests {
		s := New(StandardDefaults)
		s.SetLengthBounds(tt.min, tt.max)
		gotMin, gotMax := s.LengthBounds()
		if gotMin != tt.wantMin || gotMax != tt.wantMax {
			t.Errorf("SetLengthBounds(%q, %q) = (%d, %d), want (%d, %d)",
				tt.min, tt.max, gotMin, gotMax, tt.wantMin, tt.wantMax)
		}
	}
}

func TestInvertedRangeIsStored(t *testing.T) {
	s := New(StandardDefaults)
	s.SetLengthBounds("200", "100")
	if !s.Inverted() {
		t.Error("expected inverted range to be reported")
	}
}

func TestCriteriaDefaultWireForm(t *testing.T) {
	s := New(StandardDefaults)
	b, err := json.Marshal(s.Criteria())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"mood":[],"min_quality":6,"min_length":30,"max_length":120}`
	if string(b) != want {
		t.Errorf("Criteria() = %s, want %s", b, want)
	}
}

func TestCriteriaIsACopy(t *testing.T) {
	s := New(StandardDefaults)
	s.ToggleMood("madness")
	c := s.Criteria()
	s.ToggleMood("madness")
	s.SetQuality(9)

	if len(c.Mood) != 1 || c.MinQuality != 6 {
		t.Errorf("criteria changed after state mutation: %+v", c)
	}
}

func TestReset(t *testing.T) {
	s := New(StandardDefaults)
	s.SetAvailable([]string{"madness"})
	s.ToggleMood("madness")
	s.SetQuality(2)
	s.SetSource("reddit")
	s.Reset()

	c := s.Criteria()
	if len(c.Mood) != 0 || c.MinQuality != 6 || c.Source != "" {
		t.Errorf("unexpected state after reset: %+v", c)
	}
	if len(s.Chips()) != 1 {
		t.Error("reset should keep the chip set")
	}
}
