package vtcore

import (
	"regexp"
	"testing"
)

func TestMatchCheckFindsURLUnderCursor(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("see https://example.com for info")

	tag := term.AddMatch(regexp.MustCompile(`https?://\S+`))

	result := term.MatchCheck(10, 0)
	if result == nil {
		t.Fatal("expected a match under the cursor")
	}
	if result.Text != "https://example.com" {
		t.Errorf("expected %q, got %q", "https://example.com", result.Text)
	}
	if result.Tag != tag {
		t.Errorf("expected tag %d, got %d", tag, result.Tag)
	}
}

func TestMatchCheckLastMatchCacheHit(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("see https://example.com for info")
	term.AddMatch(regexp.MustCompile(`https?://\S+`))

	first := term.MatchCheck(10, 0)
	if first == nil {
		t.Fatal("expected a match")
	}
	second := term.MatchCheck(15, 0)
	if second == nil || second.Text != first.Text {
		t.Errorf("expected cached match to still cover neighbouring column")
	}
}

func TestMatchCheckOutsideAnyMatch(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("no links here")
	term.AddMatch(regexp.MustCompile(`https?://\S+`))

	result := term.MatchCheck(0, 0)
	if result != nil {
		t.Errorf("expected no match, got %+v", result)
	}
}

func TestRemoveMatchReusesHole(t *testing.T) {
	term := New(WithSize(5, 40))

	tag1 := term.AddMatch(regexp.MustCompile(`a+`))
	term.RemoveMatch(tag1)
	tag2 := term.AddMatch(regexp.MustCompile(`b+`))

	if tag2 != tag1 {
		t.Errorf("expected removed tag %d to be reused, got %d", tag1, tag2)
	}
}

func TestRemoveAllMatchesClearsTable(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("https://example.com")
	term.AddMatch(regexp.MustCompile(`https?://\S+`))

	term.RemoveAllMatches()

	if result := term.MatchCheck(5, 0); result != nil {
		t.Errorf("expected no match after RemoveAllMatches, got %+v", result)
	}
}

func TestMatchCacheInvalidatesOnContentChange(t *testing.T) {
	term := New(WithSize(5, 40))
	term.AddMatch(regexp.MustCompile(`https?://\S+`))

	if result := term.MatchCheck(0, 0); result != nil {
		t.Fatalf("expected no match on empty screen, got %+v", result)
	}

	term.WriteString("https://example.com")

	result := term.MatchCheck(5, 0)
	if result == nil {
		t.Error("expected match after content changed and cache rebuilt")
	}
}

// TestMatchCacheInvalidatesOnScroll verifies that scrolling the viewport
// back into history rebuilds the match cache against the newly-visible
// rows instead of reusing a projection built from the live buffer.
func TestMatchCacheInvalidatesOnScroll(t *testing.T) {
	term := New(WithSize(3, 40), WithScrollback(NewRingScrollback(100)))
	term.AddMatch(regexp.MustCompile(`https?://\S+`))

	term.WriteString("https://first.example\r\n")
	term.WriteString("no links here\r\n")
	term.WriteString("no links here\r\n")

	if result := term.MatchCheck(5, 0); result != nil {
		t.Fatalf("expected no match on the bottom row at the live view, got %+v", result)
	}

	term.ScrollToTop()

	result := term.MatchCheck(5, 0)
	if result == nil || result.Text != "https://first.example" {
		t.Errorf("expected the scrolled-back row to match after cache rebuild, got %+v", result)
	}
}
