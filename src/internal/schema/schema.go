package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Citation is the unified record every source adapter produces and every
// style renderer consumes. Adapters construct it once; renderers only read.
type Citation struct {
	Title     string   `yaml:"title" json:"title"`
	Authors   Authors  `yaml:"authors,omitempty" json:"authors,omitempty"`
	Year      *int     `yaml:"year,omitempty" json:"year,omitempty"`
	Publisher string   `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	DOI       string   `yaml:"doi,omitempty" json:"doi,omitempty"`
	ISBN      []string `yaml:"isbn,omitempty" json:"isbn,omitempty"`
	URL       string   `yaml:"url,omitempty" json:"url,omitempty"`
	Abstract  string   `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Language  string   `yaml:"language,omitempty" json:"language,omitempty"`
	Type      string   `yaml:"type" json:"type"`
	Source    string   `yaml:"source,omitempty" json:"source,omitempty"`
}

// UntitledFallback is substituted when a source record carries no title.
const UntitledFallback = "Untitled"

// Citation types.
const (
	TypeBook    = "book"
	TypeArticle = "article"
	TypePaper   = "paper"
	TypeUnknown = "unknown"
)

// Provenance tags. Set once by the adapter, never altered.
const (
	SourceCrossref    = "crossref"
	SourceGoogleBooks = "googlebooks"
	SourceOpenLibrary = "openlibrary"
)

// Authors is an ordered list of full author names ("Given Family").
// It unmarshals from either a single YAML scalar or a sequence of scalars,
// so hand-written citation files can use whichever shape is convenient.
type Authors []string

func (a *Authors) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		s := strings.TrimSpace(value.Value)
		if s == "" || s == "null" {
			*a = nil
			return nil
		}
		*a = Authors{s}
		return nil
	case yaml.SequenceNode:
		var out Authors
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				continue
			}
			if s := strings.TrimSpace(n.Value); s != "" {
				out = append(out, s)
			}
		}
		*a = out
		return nil
	default:
		*a = nil
		return nil
	}
}

// Validate checks enum fields on records read from files. Adapters always
// produce valid values, so only the render path needs this.
func (c *Citation) Validate() error {
	switch c.Type {
	case TypeBook, TypeArticle, TypePaper, TypeUnknown:
	default:
		return fmt.Errorf("invalid type: %q", c.Type)
	}
	switch c.Source {
	case "", SourceCrossref, SourceGoogleBooks, SourceOpenLibrary:
	default:
		return fmt.Errorf("invalid source: %q", c.Source)
	}
	return nil
}
