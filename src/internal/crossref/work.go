package crossref

import (
	"strings"

	"citations/src/internal/dates"
	"citations/src/internal/schema"
	"citations/src/internal/stringsx"
)

// Work is a partial model of a Crossref works item; only the fields the
// adapter consumes are declared.
type Work struct {
	Title     []string     `json:"title"`
	Author    []WorkAuthor `json:"author"`
	Created   WorkDate     `json:"created"`
	Publisher string       `json:"publisher"`
	DOI       string       `json:"DOI"`
	ISBN      []string     `json:"ISBN"`
	URL       string       `json:"URL"`
	Abstract  string       `json:"abstract"`
	Language  string       `json:"language"`
	Type      string       `json:"type"`
	Resource  WorkResource `json:"resource"`
}

type WorkAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type WorkDate struct {
	DateTime string `json:"date-time"`
}

type WorkResource struct {
	Primary struct {
		URL string `json:"URL"`
	} `json:"primary"`
}

// FromWork maps a raw Crossref work onto the unified citation. Pure; missing
// optional fields degrade to their defaults and never error.
func FromWork(w Work) schema.Citation {
	c := schema.Citation{
		Title:     schema.UntitledFallback,
		Publisher: w.Publisher,
		DOI:       w.DOI,
		ISBN:      w.ISBN,
		URL:       stringsx.FirstNonEmpty(w.URL, w.Resource.Primary.URL),
		Abstract:  w.Abstract,
		Language:  w.Language,
		Type:      classify(w.Type),
		Source:    schema.SourceCrossref,
	}
	if t := stringsx.FirstOf(w.Title); t != "" {
		c.Title = t
	}
	for _, a := range w.Author {
		name := strings.TrimSpace(a.Given + " " + a.Family)
		if name != "" {
			c.Authors = append(c.Authors, name)
		}
	}
	if y := dates.YearFromDate(w.Created.DateTime); y > 0 {
		c.Year = &y
	}
	return c
}

// classify maps a Crossref work type onto the unified type set by substring,
// in a fixed order: book, then journal/article, then proceedings/paper.
// "proceedings-article" therefore classifies as article, not paper, because
// the article check runs before the proceedings check.
func classify(t string) string {
	t = strings.ToLower(t)
	switch {
	case strings.Contains(t, "book"):
		return schema.TypeBook
	case strings.Contains(t, "journal"), strings.Contains(t, "article"):
		return schema.TypeArticle
	case strings.Contains(t, "proceedings"), strings.Contains(t, "paper"):
		return schema.TypePaper
	default:
		return schema.TypeUnknown
	}
}
