package names

import (
	"strings"
)

// Split divides a full name on whitespace into family and given parts.
// The last token is the family name; everything before it is the given
// name(s). A single-token name (e.g. "Madonna") is all family, no given.
func Split(name string) (family, given string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
}

// Swap renders a full name as "Family, Given". Single-token names are
// returned unchanged rather than split.
func Swap(name string) string {
	family, given := Split(name)
	if given == "" {
		return family
	}
	return family + ", " + given
}

// Family returns just the family-name token of a full name.
func Family(name string) string {
	family, _ := Split(name)
	return family
}
