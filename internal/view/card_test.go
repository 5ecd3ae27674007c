package view

import (
	"strings"
	"testing"
	"time"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int       { return &v }

func TestStarCount(t *testing.T) {
	tests := []struct {
		q    *float64
		want int
	}{
		{f64(0), 0},
		{f64(5), 5},
		{f64(10), 10},
		{f64(4.6), 5},
		{f64(4.4), 4},
		{f64(7.5), 8},
		{f64(-2), 0},
		{f64(14), 10},
		{nil, 5},
	}
	for _, tt := range tests {
		got := StarCount(tt.q)
		if got != tt.want {
			t.Errorf("StarCount(%v) = %d, want %d", deref(tt.q), got, tt.want)
		}
		if stars := Stars(tt.q); strings.Count(stars, StarGlyph) != tt.want {
			t.Errorf("Stars(%v) has %d glyphs, want %d", deref(tt.q), strings.Count(stars, StarGlyph), tt.want)
		}
	}
}

func deref(f *float64) any {
	if f == nil {
		return "nil"
	}
	return *f
}

func TestMoodGlyph(t *testing.T) {
	if got := MoodGlyph("madness"); got != "🌀" {
		t.Errorf("MoodGlyph(madness) = %q", got)
	}
	if got := MoodGlyph("cheerful"); got != FallbackGlyph {
		t.Errorf("MoodGlyph(cheerful) = %q, want fallback", got)
	}
	if got := MoodGlyph(""); got != FallbackGlyph {
		t.Errorf("MoodGlyph(\"\") = %q, want fallback", got)
	}
}

func TestNewCard(t *testing.T) {
	c := NewCard(api.Story{
		ID:            "42",
		Title:         "The Lighthouse",
		Preview:       "A keeper hears knocking.",
		Mood:          "gothic_decay",
		QualityScore:  f64(8),
		LengthSeconds: intp(95),
		Score:         f64(0.87654),
	})

	if c.ID != "42" {
		t.Errorf("ID = %q", c.ID)
	}
	if c.Heading() != "🏚️ The Lighthouse" {
		t.Errorf("Heading() = %q", c.Heading())
	}
	if c.Score != "Score: 0.88" {
		t.Errorf("Score = %q", c.Score)
	}
	if c.Mood != "gothic decay" {
		t.Errorf("Mood = %q", c.Mood)
	}
	if c.Length != "⏱️ 95s" {
		t.Errorf("Length = %q", c.Length)
	}
	if c.StarCount != 8 {
		t.Errorf("StarCount = %d", c.StarCount)
	}
}

func TestNewCardDefaults(t *testing.T) {
	c := NewCard(api.Story{ID: "x", Content: strings.Repeat("a", 250)})

	if c.Title != "Untitled" || c.Mood != "unknown" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Score != "Score: 0.00" || c.Length != "⏱️ 60s" || c.StarCount != 5 {
		t.Errorf("unexpected numeric defaults: %+v", c)
	}
	if len([]rune(c.Preview)) != 203 || !strings.HasSuffix(c.Preview, "...") {
		t.Errorf("preview not derived from content: %q", c.Preview)
	}
}

func TestNewCardEscapesMarkup(t *testing.T) {
	c := NewCard(api.Story{
		ID:      "1",
		Title:   `<img src=x onerror=alert(1)>Night <b>Shift</b>`,
		Preview: "\x1b[31mred\x1b[0m text\x07",
	})
	if c.Title != "Night Shift" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Preview != "red text" {
		t.Errorf("Preview = %q", c.Preview)
	}
}

func TestNewResults(t *testing.T) {
	for _, in := range [][]api.Story{nil, {}} {
		r := NewResults(in)
		if !r.Empty() || r.Placeholder != PlaceholderText || r.Count != NoStoriesLabel {
			t.Errorf("NewResults(%v) = %+v", in, r)
		}
	}

	r := NewResults([]api.Story{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	if len(r.Cards) != 3 || r.Count != "3 stories found" || r.Placeholder != "" {
		t.Fatalf("unexpected results: %+v", r)
	}
	for i, id := range []string{"a", "b", "c"} {
		if r.Cards[i].ID != id {
			t.Errorf("card %d ID = %q, want %q", i, r.Cards[i].ID, id)
		}
	}

	if got := NewResults([]api.Story{{ID: "a"}}).Count; got != "1 story found" {
		t.Errorf("single count = %q", got)
	}
}

func TestNewDetail(t *testing.T) {
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	d := NewDetail(api.Story{
		ID:              "7",
		Title:           "Whispers in the Wall",
		Content:         "It started at night.\n\nThen it never stopped.",
		Mood:            "whispers",
		QualityScore:    f64(3),
		LengthSeconds:   intp(45),
		Themes:          []string{"mirrors", "isolation"},
		Source:          "reddit",
		CreatedAt:       "2025-03-18T09:30:00.123456",
		EngagementScore: f64(0.8125),
	}, NewLocale("en-US"), now)

	checks := map[string][2]string{
		"Title":      {d.Title, "👻 Whispers in the Wall"},
		"Mood":       {d.Mood, "whispers"},
		"Quality":    {d.Quality, strings.Repeat(StarGlyph, 3)},
		"Length":     {d.Length, "45s"},
		"Themes":     {d.Themes, "mirrors, isolation"},
		"Source":     {d.Source, "reddit"},
		"Created":    {d.Created, "3/18/2025"},
		"Age":        {d.Age, "2 days ago"},
		"Engagement": {d.Engagement, "0.8"},
		"Body":       {d.Body, "It started at night.\n\nThen it never stopped."},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", name, c[0], c[1])
		}
	}
}

func TestNewDetailFallbacks(t *testing.T) {
	d := NewDetail(api.Story{ID: "1", CreatedAt: "not a date"}, NewLocale("en"), time.Now())
	if d.Themes != "None" || d.Source != "unknown" || d.Created != "Unknown" {
		t.Errorf("unexpected fallbacks: %+v", d)
	}
	if d.Body != "No content available" || d.Text != "" {
		t.Errorf("unexpected body fallback: body=%q text=%q", d.Body, d.Text)
	}
	if d.Engagement != "" {
		t.Errorf("absent engagement should render empty, got %q", d.Engagement)
	}
	if d.Quality != strings.Repeat(StarGlyph, 5) {
		t.Errorf("absent quality should show 5 stars, got %q", d.Quality)
	}
}

func TestNewStats(t *testing.T) {
	s := NewStats(api.Stats{TotalStories: 1234, MoodsCount: 8, AvgQuality: 7.26, LastUpdated: " 2025-03-20 "}, NewLocale("en-US"))
	if s.Total != "1,234" || s.Moods != "8" || s.AvgQuality != "7.3" || s.Updated != "2025-03-20" {
		t.Errorf("unexpected stats: %+v", s)
	}
}
