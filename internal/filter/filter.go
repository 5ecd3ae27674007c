// Package filter holds the client-side search filter state.
package filter

import (
	"strings"

	"github.com/RoboSyntax/white-raven-webapp/internal/api"
)

const (
	MinQuality = 0
	MaxQuality = 10

	// MaxLengthSeconds caps the magnitude of a length bound. Longer input is clamped.
	MaxLengthSeconds = 24 * 60 * 60
)

// Defaults are the values a fresh State starts from and the fallbacks for
// unparseable length input.
type Defaults struct {
	MinQuality int
	MinLength  int
	MaxLength  int
}

// StandardDefaults matches the dashboard's out-of-the-box filters.
var StandardDefaults = Defaults{MinQuality: 6, MinLength: 30, MaxLength: 120}

// Chip is one mood toggle as the UI shows it.
type Chip struct {
	Tag      string
	Label    string
	Selected bool
}

// State is the mutable filter state owned by a dashboard controller.
type State struct {
	defaults Defaults

	available []string
	selected  map[string]bool
	// extra keeps tags toggled on that are not among the available chips, in toggle order.
	extra []string

	minQuality int
	minLength  int
	maxLength  int
	source     string
}

func New(d Defaults) *State {
	s := &State{defaults: d}
	s.Reset()
	return s
}

// Reset restores the defaults and clears the mood selection. Available chips are kept.
func (s *State) Reset() {
	s.selected = make(map[string]bool)
	s.extra = nil
	s.minQuality = clamp(s.defaults.MinQuality)
	s.minLength = s.defaults.MinLength
	s.maxLength = s.defaults.MaxLength
	s.source = ""
}

// ToggleMood flips tag membership and reports whether the tag is now selected.
func (s *State) ToggleMood(tag string) bool {
	if s.selected[tag] {
		delete(s.selected, tag)
		for i, t := range s.extra {
			if t == tag {
				s.extra = append(s.extra[:i], s.extra[i+1:]...)
				break
			}
		}
		return false
	}
	s.selected[tag] = true
	if !s.isAvailable(tag) {
		s.extra = append(s.extra, tag)
	}
	return true
}

func (s *State) MoodSelected(tag string) bool {
	return s.selected[tag]
}

// Moods returns the selected tags: chip order first, then tags outside the chip set.
func (s *State) Moods() []string {
	out := make([]string, 0, len(s.selected))
	for _, t := range s.available {
		if s.selected[t] {
			out = append(out, t)
		}
	}
	return append(out, s.extra...)
}

// SetAvailable replaces the chip set. Selections of tags still offered survive.
func (s *State) SetAvailable(tags []string) {
	seen := make(map[string]bool, len(tags))
	available := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		available = append(available, t)
	}
	s.available = available

	selected := make(map[string]bool)
	for t := range s.selected {
		if seen[t] {
			selected[t] = true
		}
	}
	s.selected = selected
	s.extra = nil
}

func (s *State) Available() []string {
	return append([]string(nil), s.available...)
}

func (s *State) Chips() []Chip {
	chips := make([]Chip, len(s.available))
	for i, t := range s.available {
		chips[i] = Chip{Tag: t, Label: MoodLabel(t), Selected: s.selected[t]}
	}
	return chips
}

func (s *State) isAvailable(tag string) bool {
	for _, t := range s.available {
		if t == tag {
			return true
		}
	}
	return false
}

// SetQuality stores n clamped to [0,10] and returns the stored value.
func (s *State) SetQuality(n int) int {
	s.minQuality = clamp(n)
	return s.minQuality
}

func (s *State) Quality() int { return s.minQuality }

// SetMinLength parses raw input; anything without a non-zero leading integer
// falls back to the default minimum.
func (s *State) SetMinLength(raw string) int {
	s.minLength = parseOr(raw, s.defaults.MinLength)
	return s.minLength
}

// SetMaxLength is SetMinLength for the upper bound.
func (s *State) SetMaxLength(raw string) int {
	s.maxLength = parseOr(raw, s.defaults.MaxLength)
	return s.maxLength
}

// SetLengthBounds stores both bounds. min <= max is not enforced.
func (s *State) SetLengthBounds(min, max string) {
	s.SetMinLength(min)
	s.SetMaxLength(max)
}

func (s *State) LengthBounds() (min, max int) {
	return s.minLength, s.maxLength
}

// Inverted reports a length range that cannot match anything.
func (s *State) Inverted() bool {
	return s.minLength > s.maxLength
}

func (s *State) SetSource(source string) {
	s.source = strings.TrimSpace(source)
}

func (s *State) Source() string { return s.source }

// Criteria returns a copy of the state in wire form.
func (s *State) Criteria() api.Filters {
	return api.Filters{
		Mood:       s.Moods(),
		MinQuality: s.minQuality,
		MinLength:  s.minLength,
		MaxLength:  s.maxLength,
		Source:     s.source,
	}
}

// MoodLabel is the display form of a mood tag.
func MoodLabel(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

func clamp(n int) int {
	switch {
	case n < MinQuality:
		return MinQuality
	case n > MaxQuality:
		return MaxQuality
	}
	return n
}

// parseOr reads the leading integer of raw ("45s" is 45), clamped to
// ±MaxLengthSeconds. Empty, non-numeric and zero input yield def.
func parseOr(raw string, def int) int {
	s := strings.TrimSpace(raw)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits++
		if n < MaxLengthSeconds {
			n = n*10 + int(r-'0')
		}
	}
	if digits == 0 || n == 0 {
		return def
	}
	if n > MaxLengthSeconds {
		n = MaxLengthSeconds
	}
	if neg {
		n = -n
	}
	return n
}
