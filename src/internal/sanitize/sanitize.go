package sanitize

import (
	"net/url"
	"strings"

	"citations/src/internal/schema"
)

// CleanString trims and removes ASCII control characters except tab/newline/
// carriage return up to max runes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			if max > 0 && b.Len() >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanURL returns a validated http/https URL or empty string.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	u.Path = strings.ReplaceAll(u.Path, " ", "%20")
	return u.String()
}

// CleanAuthors drops blank author names and trims the rest.
func CleanAuthors(authors schema.Authors) schema.Authors {
	if len(authors) == 0 {
		return nil
	}
	const max = 256
	out := make(schema.Authors, 0, len(authors))
	for _, a := range authors {
		if s := CleanString(a, max); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CleanCitation applies conservative sanitization to all strings in the
// citation. Retrieval clients call this after adapting a raw record; the
// pure adapters themselves never modify their output.
func CleanCitation(c *schema.Citation) {
	if c == nil {
		return
	}
	c.Title = CleanString(c.Title, 512)
	c.Publisher = CleanString(c.Publisher, 512)
	c.DOI = CleanString(c.DOI, 128)
	c.URL = CleanURL(c.URL)
	c.Abstract = CleanString(c.Abstract, 12000)
	c.Language = CleanString(c.Language, 32)
	c.Authors = CleanAuthors(c.Authors)
	if len(c.ISBN) > 0 {
		out := make([]string, 0, len(c.ISBN))
		for _, i := range c.ISBN {
			if s := CleanString(i, 64); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			out = nil
		}
		c.ISBN = out
	}
}
