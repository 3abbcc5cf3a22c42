// Package styles renders unified citations into fixed academic citation
// formats. Every renderer is pure: it reads the citation and returns a
// string, with defined substitutes for missing authors and years.
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
)

// Style names accepted by Render.
const (
	StyleAPA     = "apa"
	StyleMLA     = "mla"
	StyleChicago = "chicago"
	StyleHarvard = "harvard"
	StyleBibTeX  = "bibtex"
)

// UnknownAuthor is the author segment every style substitutes for an empty
// author list.
const UnknownAuthor = "Unknown Author"

// All lists the supported style names in display order.
func All() []string {
	return []string{StyleAPA, StyleMLA, StyleChicago, StyleHarvard, StyleBibTeX}
}

// Render formats the citation in the named style.
func Render(c schema.Citation, style string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleAPA:
		return APA(c), nil
	case StyleMLA:
		return MLA(c), nil
	case StyleChicago:
		return Chicago(c), nil
	case StyleHarvard:
		return Harvard(c), nil
	case StyleBibTeX:
		return BibTeX(c), nil
	}
	return "", fmt.Errorf("unknown style: %q", style)
}

// title renders the title segment: italicized for books, otherwise plain or
// double-quoted depending on the style.
func title(c schema.Citation, quoted bool) string {
	t := strings.TrimSpace(c.Title)
	if t == "" {
		t = schema.UntitledFallback
	}
	if c.Type == schema.TypeBook {
		return "<i>" + t + "</i>"
	}
	if quoted {
		return "\"" + t + "\""
	}
	return t
}

// yearOr returns the year or the style's no-date placeholder.
func yearOr(c schema.Citation, nd string) string {
	if c.Year != nil {
		return strconv.Itoa(*c.Year)
	}
	return nd
}

// swapAll renders every author as "Family, Given".
func swapAll(as schema.Authors) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = names.Swap(a)
	}
	return out
}
