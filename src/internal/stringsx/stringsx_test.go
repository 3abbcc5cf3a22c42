package stringsx

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonEmpty = %q; want x", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("FirstNonEmpty() = %q; want empty", got)
	}
}

func TestFirstOf(t *testing.T) {
	if got := FirstOf([]string{" MIT Press ", "Elsevier"}); got != "MIT Press" {
		t.Errorf("FirstOf = %q; want MIT Press", got)
	}
	if got := FirstOf(nil); got != "" {
		t.Errorf("FirstOf(nil) = %q; want empty", got)
	}
}

func TestFirstWord(t *testing.T) {
	if got := FirstWord("Introduction to Algorithms"); got != "Introduction" {
		t.Errorf("FirstWord = %q; want Introduction", got)
	}
	if got := FirstWord("   "); got != "" {
		t.Errorf("FirstWord = %q; want empty", got)
	}
}
