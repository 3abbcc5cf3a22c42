package styles

import (
	"fmt"
	"strconv"
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
	"citations/src/internal/stringsx"
)

// BibTeX renders a BibTeX entry. Books become @book; every other type
// collapses to @article. Field order is fixed: title, author, year,
// publisher, doi, isbn (first element only), url. Each present field goes
// on its own "  field={value}," line.
func BibTeX(c schema.Citation) string {
	entry := "article"
	if c.Type == schema.TypeBook {
		entry = "book"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entry, bibKey(c))
	field := func(k, v string) {
		if strings.TrimSpace(v) != "" {
			fmt.Fprintf(&b, "  %s={%s},\n", k, v)
		}
	}
	t := strings.TrimSpace(c.Title)
	if t == "" {
		t = schema.UntitledFallback
	}
	field("title", t)
	if len(c.Authors) > 0 {
		field("author", strings.Join(c.Authors, " and "))
	}
	if c.Year != nil {
		field("year", strconv.Itoa(*c.Year))
	}
	field("publisher", c.Publisher)
	field("doi", c.DOI)
	if len(c.ISBN) > 0 {
		field("isbn", c.ISBN[0])
	}
	field("url", c.URL)
	b.WriteString("}")
	return b.String()
}

// bibKey builds the entry key: first author's lowercased family name (or
// "unknown"), the year (or "nodate"), and the lowercased first title word
// (or "untitled"), concatenated without separators.
func bibKey(c schema.Citation) string {
	author := "unknown"
	if len(c.Authors) > 0 {
		if f := names.Family(c.Authors[0]); f != "" {
			author = strings.ToLower(f)
		}
	}
	year := "nodate"
	if c.Year != nil {
		year = strconv.Itoa(*c.Year)
	}
	word := "untitled"
	if w := stringsx.FirstWord(c.Title); w != "" {
		word = strings.ToLower(w)
	}
	return author + year + word
}
