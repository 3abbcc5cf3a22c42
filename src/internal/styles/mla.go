package styles

import (
	"strconv"
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
)

// MLA renders an MLA-style reference. Non-book titles are double-quoted;
// publisher and year share one trailing period block.
func MLA(c schema.Citation) string {
	var b strings.Builder
	b.WriteString(mlaAuthors(c.Authors))
	b.WriteString(". ")
	b.WriteString(title(c, true))
	b.WriteString(". ")
	b.WriteString(strings.TrimSpace(c.Publisher))
	if c.Year != nil {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(*c.Year))
	}
	b.WriteString(".")
	if u := strings.TrimSpace(c.URL); u != "" {
		b.WriteString(" ")
		b.WriteString(u)
		b.WriteString(".")
	}
	return b.String()
}

// mlaAuthors: with two authors the second keeps its original given-family
// order rather than being swapped like the first. That asymmetry is the
// established output contract, so it stays.
func mlaAuthors(as schema.Authors) string {
	switch len(as) {
	case 0:
		return UnknownAuthor
	case 1:
		return names.Swap(as[0])
	case 2:
		return names.Swap(as[0]) + ", and " + as[1]
	}
	return names.Swap(as[0]) + ", et al"
}
