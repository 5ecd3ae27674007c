// Package view turns API records into display-ready descriptions. Nothing here
// touches the network or terminal; the TUI and the CLI both render from these types.
package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
	"github.com/RoboSyntax/white-raven-webapp/internal/filter"
	"github.com/dustin/go-humanize"
)

const (
	StarGlyph     = "⭐"
	FallbackGlyph = "📖"

	defaultQuality = 5
	defaultLength  = 60
	previewRunes   = 200

	PlaceholderText = "No stories found. Try different filters or search terms."
	NoStoriesLabel  = "No stories found"
)

var moodGlyphs = map[string]string{
	"psychological": "🧠",
	"gothic_decay":  "🏚️",
	"isolation":     "🌑",
	"conspiracy":    "👁️",
	"madness":       "🌀",
	"ancient_dread": "🦑",
	"urban_legend":  "🏙️",
	"whispers":      "👻",
}

// MoodGlyph returns the decorative glyph for a mood, or the book glyph for unknown moods.
func MoodGlyph(mood string) string {
	if g, ok := moodGlyphs[mood]; ok {
		return g
	}
	return FallbackGlyph
}

// StarCount rounds a quality score to the nearest integer within [0,10].
// An absent score counts as 5.
func StarCount(q *float64) int {
	v := float64(defaultQuality)
	if q != nil {
		v = *q
	}
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v))
	switch {
	case n < filter.MinQuality:
		return filter.MinQuality
	case n > filter.MaxQuality:
		return filter.MaxQuality
	}
	return n
}

func Stars(q *float64) string {
	return strings.Repeat(StarGlyph, StarCount(q))
}

// Card is the list representation of one story.
type Card struct {
	ID        string
	Glyph     string
	Title     string
	Preview   string
	Mood      string
	Score     string
	Length    string
	Stars     string
	StarCount int
}

func NewCard(s api.Story) Card {
	n := StarCount(s.QualityScore)
	return Card{
		ID:        s.ID,
		Glyph:     MoodGlyph(s.Mood),
		Title:     title(s),
		Preview:   preview(s),
		Mood:      moodLabel(s.Mood),
		Score:     fmt.Sprintf("Score: %.2f", score(s.Score)),
		Length:    "⏱️ " + lengthLabel(s.LengthSeconds),
		Stars:     strings.Repeat(StarGlyph, n),
		StarCount: n,
	}
}

// Heading is the glyph-prefixed title used by cards and the modal.
func (c Card) Heading() string {
	return c.Glyph + " " + c.Title
}

// Results is what the results area shows for one response.
type Results struct {
	Cards       []Card
	Count       string
	Placeholder string
}

// NewResults renders a story list. A nil or empty list yields the placeholder.
func NewResults(stories []api.Story) Results {
	if len(stories) == 0 {
		return Results{Count: NoStoriesLabel, Placeholder: PlaceholderText}
	}
	cards := make([]Card, len(stories))
	for i, s := range stories {
		cards[i] = NewCard(s)
	}
	count := fmt.Sprintf("%d stories found", len(cards))
	if len(cards) == 1 {
		count = "1 story found"
	}
	return Results{Cards: cards, Count: count}
}

func (r Results) Empty() bool { return len(r.Cards) == 0 }

// Detail is the full-story modal content.
type Detail struct {
	ID         string
	Title      string
	Mood       string
	Quality    string
	Length     string
	Themes     string
	Source     string
	Created    string
	Age        string
	Engagement string // empty when the server sent no engagement score
	Body       string

	// Text is what the copy action writes; empty when the story has no content.
	Text string
}

func NewDetail(s api.Story, loc Locale, now time.Time) Detail {
	d := Detail{
		ID:      s.ID,
		Title:   MoodGlyph(s.Mood) + " " + title(s),
		Mood:    moodLabel(s.Mood),
		Quality: Stars(s.QualityScore),
		Length:  lengthLabel(s.LengthSeconds),
		Themes:  "None",
		Source:  "unknown",
		Created: "Unknown",
		Text:    Clean(s.Content),
	}

	var themes []string
	for _, t := range s.Themes {
		if t = CleanLine(t); t != "" {
			themes = append(themes, t)
		}
	}
	if len(themes) > 0 {
		d.Themes = strings.Join(themes, ", ")
	}
	if src := CleanLine(s.Source); src != "" {
		d.Source = src
	}
	if t, ok := parseCreated(strings.TrimSpace(s.CreatedAt)); ok {
		d.Created = loc.Date(t)
		d.Age = humanize.RelTime(t, now, "ago", "from now")
	}

	if s.EngagementScore != nil {
		d.Engagement = loc.Decimal1(*s.EngagementScore)
	}

	d.Body = d.Text
	if d.Body == "" {
		d.Body = "No content available"
	}
	return d
}

// Stats is the header summary.
type Stats struct {
	Total      string
	Moods      string
	AvgQuality string
	Updated    string
}

// EmptyStats is shown before the first successful stats load.
func EmptyStats() Stats {
	return Stats{Total: "-", Moods: "-", AvgQuality: "-"}
}

func NewStats(s api.Stats, loc Locale) Stats {
	return Stats{
		Total:      loc.Int(s.TotalStories),
		Moods:      loc.Int(s.MoodsCount),
		AvgQuality: loc.Decimal1(s.AvgQuality),
		Updated:    CleanLine(s.LastUpdated),
	}
}

func title(s api.Story) string {
	if t := CleanLine(s.Title); t != "" {
		return t
	}
	return "Untitled"
}

func preview(s api.Story) string {
	if p := CleanLine(s.Preview); p != "" {
		return p
	}
	content := []rune(CleanLine(s.Content))
	if len(content) > previewRunes {
		return string(content[:previewRunes]) + "..."
	}
	return string(content)
}

func moodLabel(mood string) string {
	if m := CleanLine(mood); m != "" {
		return filter.MoodLabel(m)
	}
	return "unknown"
}

func lengthLabel(n *int) string {
	v := defaultLength
	if n != nil {
		v = *n
	}
	return fmt.Sprintf("%ds", v)
}

func score(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
