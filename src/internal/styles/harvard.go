package styles

import (
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
)

// Harvard renders a Harvard-style reference. Only the URL gets a locator
// segment; a DOI is not specially handled in this style.
func Harvard(c schema.Citation) string {
	var b strings.Builder
	b.WriteString(harvardAuthors(c.Authors))
	b.WriteString(" (")
	b.WriteString(yearOr(c, "n.d."))
	b.WriteString(") ")
	b.WriteString(title(c, false))
	b.WriteString(".")
	if p := strings.TrimSpace(c.Publisher); p != "" {
		b.WriteString(" ")
		b.WriteString(p)
		b.WriteString(".")
	}
	if u := strings.TrimSpace(c.URL); u != "" {
		b.WriteString(" Available at: ")
		b.WriteString(u)
	}
	return b.String()
}

func harvardAuthors(as schema.Authors) string {
	switch len(as) {
	case 0:
		return UnknownAuthor
	case 1:
		return names.Swap(as[0])
	case 2:
		return names.Swap(as[0]) + " and " + names.Swap(as[1])
	}
	return names.Swap(as[0]) + " et al."
}
