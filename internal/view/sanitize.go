package view

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/x/ansi"
)

// Clean turns untrusted story text into plain printable text: markup is reduced
// to its text content, terminal escape sequences and control characters are
// dropped. Newlines and tabs survive.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<&") {
		s = htmlText(s)
	}
	s = ansi.Strip(s)
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// CleanLine is Clean with all whitespace runs collapsed to single spaces.
func CleanLine(s string) string {
	return strings.Join(strings.Fields(Clean(s)), " ")
}

func htmlText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6").AppendHtml("\n")
	return doc.Text()
}
