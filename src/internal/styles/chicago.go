package styles

import (
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
)

// Chicago renders a Chicago-style reference with the year directly after
// the authors.
func Chicago(c schema.Citation) string {
	var b strings.Builder
	b.WriteString(chicagoAuthors(c.Authors))
	b.WriteString(". ")
	b.WriteString(yearOr(c, "n.d."))
	b.WriteString(". ")
	b.WriteString(title(c, true))
	b.WriteString(".")
	if p := strings.TrimSpace(c.Publisher); p != "" {
		b.WriteString(" ")
		b.WriteString(p)
		b.WriteString(".")
	}
	if d := strings.TrimSpace(c.DOI); d != "" {
		b.WriteString(" https://doi.org/")
		b.WriteString(d)
		b.WriteString(".")
	} else if u := strings.TrimSpace(c.URL); u != "" {
		b.WriteString(" ")
		b.WriteString(u)
		b.WriteString(".")
	}
	return b.String()
}

// chicagoAuthors: the final author keeps its original given-family order
// while the preceding authors are swapped. Same asymmetry as MLA; it stays.
func chicagoAuthors(as schema.Authors) string {
	switch len(as) {
	case 0:
		return UnknownAuthor
	case 1:
		return names.Swap(as[0])
	case 2:
		return names.Swap(as[0]) + " and " + as[1]
	}
	swapped := swapAll(as[:len(as)-1])
	return strings.Join(swapped, ", ") + ", and " + as[len(as)-1]
}
