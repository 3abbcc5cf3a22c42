package googlebooks

import (
	"strings"

	"citations/src/internal/dates"
	"citations/src/internal/schema"
)

// Volume is one item in a Google Books volumes response.
type Volume struct {
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo is the partial volume schema the adapter consumes.
type VolumeInfo struct {
	Title               string       `json:"title"`
	Authors             []string     `json:"authors"`
	Publisher           string       `json:"publisher"`
	PublishedDate       string       `json:"publishedDate"`
	Description         string       `json:"description"`
	IndustryIdentifiers []Identifier `json:"industryIdentifiers"`
	Language            string       `json:"language"`
}

// Identifier is one industry identifier entry; only the identifier value is
// kept when adapting, the ISBN-10/13 type distinction is discarded.
type Identifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// FromVolume maps a raw Google Books volume onto the unified citation.
// Google Books only serves books, so the type is always book.
func FromVolume(v VolumeInfo) schema.Citation {
	c := schema.Citation{
		Title:     schema.UntitledFallback,
		Publisher: v.Publisher,
		Abstract:  v.Description,
		Language:  v.Language,
		Type:      schema.TypeBook,
		Source:    schema.SourceGoogleBooks,
	}
	if t := strings.TrimSpace(v.Title); t != "" {
		c.Title = t
	}
	if len(v.Authors) > 0 {
		c.Authors = append(c.Authors, v.Authors...)
	}
	// publishedDate is usually YYYY or YYYY-MM-DD, but free-form strings
	// like "c1999" show up too; fall back to scanning for a year.
	y := dates.YearFromDate(v.PublishedDate)
	if y == 0 {
		y = dates.ExtractYear(v.PublishedDate)
	}
	if y > 0 {
		c.Year = &y
	}
	for _, id := range v.IndustryIdentifiers {
		if s := strings.TrimSpace(id.Identifier); s != "" {
			c.ISBN = append(c.ISBN, s)
		}
	}
	return c
}
