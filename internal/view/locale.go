package view

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale formats dates and numbers the way a given language tag expects.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocale parses a BCP 47 tag such as "en-US" or "de". Unparseable tags fall back to en-US.
func NewLocale(name string) Locale {
	tag, err := language.Parse(name)
	if err != nil || name == "" {
		tag = language.AmericanEnglish
	}
	return Locale{tag: tag, printer: message.NewPrinter(tag)}
}

func (l Locale) Tag() language.Tag { return l.tag }

// IsZero reports a Locale that was never initialized with NewLocale.
func (l Locale) IsZero() bool { return l.printer == nil }

func (l Locale) printerOrDefault() *message.Printer {
	if l.printer == nil {
		return message.NewPrinter(language.AmericanEnglish)
	}
	return l.printer
}

// Int formats n with the locale's digit grouping.
func (l Locale) Int(n int) string {
	return l.printerOrDefault().Sprintf("%d", n)
}

// Decimal1 formats f with one decimal place.
func (l Locale) Decimal1(f float64) string {
	return l.printerOrDefault().Sprintf("%.1f", f)
}

// Date renders the calendar date in the locale's short numeric form.
func (l Locale) Date(t time.Time) string {
	return t.Format(l.dateLayout())
}

func (l Locale) dateLayout() string {
	base, _ := l.tag.Base()
	region, conf := l.tag.Region()
	switch base.String() {
	case "en":
		if conf == language.Exact && region.String() != "US" {
			return "02/01/2006"
		}
		return "1/2/2006"
	case "de", "pl", "ru", "cs", "fi", "nb", "da":
		return "2.1.2006"
	case "fr", "es", "it", "pt", "nl", "el", "tr":
		return "02/01/2006"
	case "ja", "zh", "ko", "hu":
		return "2006/1/2"
	}
	return "2006-01-02"
}

var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseCreated accepts the timestamp shapes the API emits: RFC 3339 and
// zone-less ISO 8601.
func parseCreated(s string) (time.Time, bool) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
