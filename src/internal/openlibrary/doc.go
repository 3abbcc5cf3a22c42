package openlibrary

import (
	"strings"

	"citations/src/internal/schema"
	"citations/src/internal/stringsx"
)

// BaseURL is the site prefix joined with a doc's key path to form the
// record URL.
const BaseURL = "https://openlibrary.org"

// Doc is one document in an Open Library search response.
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	Publisher        []string `json:"publisher"`
	ISBN             []string `json:"isbn"`
	Key              string   `json:"key"`
	Language         []string `json:"language"`
}

// FromDoc maps a raw Open Library search doc onto the unified citation.
// Open Library search results are book records, so the type is always book.
func FromDoc(d Doc) schema.Citation {
	c := schema.Citation{
		Title:     schema.UntitledFallback,
		Publisher: stringsx.FirstOf(d.Publisher),
		ISBN:      d.ISBN,
		Language:  stringsx.FirstOf(d.Language),
		Type:      schema.TypeBook,
		Source:    schema.SourceOpenLibrary,
	}
	if t := strings.TrimSpace(d.Title); t != "" {
		c.Title = t
	}
	if len(d.AuthorName) > 0 {
		c.Authors = append(c.Authors, d.AuthorName...)
	}
	if d.FirstPublishYear > 0 {
		y := d.FirstPublishYear
		c.Year = &y
	}
	if k := strings.TrimSpace(d.Key); k != "" {
		c.URL = BaseURL + k
	}
	return c
}
