package schema

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAuthorsUnmarshalYAML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"sequence", "authors:\n  - Jane Doe\n  - Madonna\n", []string{"Jane Doe", "Madonna"}},
		{"scalar", "authors: Jane Doe\n", []string{"Jane Doe"}},
		{"empty scalar", "authors: \"\"\n", nil},
		{"null", "authors: null\n", nil},
		{"blank entries dropped", "authors:\n  - \"  \"\n  - Jane Doe\n", []string{"Jane Doe"}},
	}
	for _, tc := range cases {
		var c Citation
		if err := yaml.Unmarshal([]byte(tc.in), &c); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if len(c.Authors) != len(tc.want) {
			t.Fatalf("%s: got %d authors %v; want %d", tc.name, len(c.Authors), c.Authors, len(tc.want))
		}
		for i := range tc.want {
			if c.Authors[i] != tc.want[i] {
				t.Errorf("%s: authors[%d] = %q; want %q", tc.name, i, c.Authors[i], tc.want[i])
			}
		}
	}
}

func TestValidate(t *testing.T) {
	ok := Citation{Title: "T", Type: TypeBook, Source: SourceCrossref}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid citation rejected: %v", err)
	}
	noSource := Citation{Title: "T", Type: TypeUnknown}
	if err := noSource.Validate(); err != nil {
		t.Fatalf("empty source should be allowed for file records: %v", err)
	}
	badType := Citation{Title: "T", Type: "thesis"}
	if err := badType.Validate(); err == nil {
		t.Fatal("invalid type accepted")
	}
	badSource := Citation{Title: "T", Type: TypeBook, Source: "elsewhere"}
	if err := badSource.Validate(); err == nil {
		t.Fatal("invalid source accepted")
	}
}
