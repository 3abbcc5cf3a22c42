package styles

import (
	"strings"

	"citations/src/internal/names"
	"citations/src/internal/schema"
)

// APA renders an APA-style reference. DOI is preferred over URL when both
// are present.
func APA(c schema.Citation) string {
	var b strings.Builder
	b.WriteString(apaAuthors(c.Authors))
	b.WriteString(" (")
	b.WriteString(yearOr(c, "n.d."))
	b.WriteString("). ")
	b.WriteString(title(c, false))
	b.WriteString(".")
	if p := strings.TrimSpace(c.Publisher); p != "" {
		b.WriteString(" ")
		b.WriteString(p)
		b.WriteString(".")
	}
	if d := strings.TrimSpace(c.DOI); d != "" {
		b.WriteString(" https://doi.org/")
		b.WriteString(d)
	} else if u := strings.TrimSpace(c.URL); u != "" {
		b.WriteString(" ")
		b.WriteString(u)
	}
	return b.String()
}

func apaAuthors(as schema.Authors) string {
	switch len(as) {
	case 0:
		return UnknownAuthor
	case 1:
		return names.Swap(as[0])
	case 2:
		return names.Swap(as[0]) + " & " + names.Swap(as[1])
	}
	swapped := swapAll(as)
	return strings.Join(swapped[:len(swapped)-1], ", ") + ", & " + swapped[len(swapped)-1]
}
