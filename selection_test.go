package vtcore

import "testing"

func TestStartAndExtendSelectionChar(t *testing.T) {
	term := New(WithSize(5, 20))
	term.WriteString("hello world")

	term.StartSelection(Position{Row: 0, Col: 0}, SelectionChar)
	term.ExtendSelection(Position{Row: 0, Col: 4})

	text, attrs := term.GetTextRange()
	if text != "hello" {
		t.Errorf("expected %q, got %q", "hello", text)
	}
	if len(attrs) != len(text) {
		t.Errorf("expected %d attrs, got %d", len(text), len(attrs))
	}
}

func TestSelectionWordExpandsToBoundaries(t *testing.T) {
	term := New(WithSize(5, 20))
	term.WriteString("hello world")

	term.StartSelection(Position{Row: 0, Col: 7}, SelectionWord)

	text, _ := term.GetTextRange()
	if text != "world" {
		t.Errorf("expected %q, got %q", "world", text)
	}
}

func TestSelectionLineSpansWrapChain(t *testing.T) {
	term := New(WithSize(5, 5))
	term.WriteString("abcdefghij")

	term.StartSelection(Position{Row: 0, Col: 0}, SelectionLine)
	term.ExtendSelection(Position{Row: 1, Col: 0})

	text, _ := term.GetTextRange()
	if text != "abcdefghij" {
		t.Errorf("expected %q, got %q", "abcdefghij", text)
	}
}

func TestExtendSelectionPixelSnapsToCell(t *testing.T) {
	term := New(WithSize(5, 20))
	term.StartSelection(Position{Row: 0, Col: 0}, SelectionChar)

	term.ExtendSelectionPixel(25, 5) // default 10x20 cell size -> col 2, row 0

	if term.selection.End.Col != 2 {
		t.Errorf("expected snapped column 2, got %d", term.selection.End.Col)
	}
}

func TestSetWordCharsCustomTable(t *testing.T) {
	term := New(WithSize(5, 20))
	term.SetWordChars("a-z")
	term.WriteString("foo-bar")

	term.StartSelection(Position{Row: 0, Col: 1}, SelectionWord)

	text, _ := term.GetTextRange()
	if text != "foo" {
		t.Errorf("expected %q, got %q", "foo", text)
	}
}

func TestGetTextRangeTrimsTrailingBlanks(t *testing.T) {
	term := New(WithSize(5, 20))
	term.WriteString("hi")

	term.StartSelection(Position{Row: 0, Col: 0}, SelectionChar)
	term.ExtendSelection(Position{Row: 0, Col: 19})

	text, _ := term.getTextRangeLocked(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 19}, false)
	if text != "hi" {
		t.Errorf("expected trimmed %q, got %q", "hi", text)
	}
}

// TestSelectionReachesIntoScrollback verifies that a selection whose
// ring-absolute rows point into history (rather than the live buffer) is
// projected from the scrollback, matching the spec's ring-absolute
// addressing for Selection.Start/End.
func TestSelectionReachesIntoScrollback(t *testing.T) {
	term := New(WithSize(3, 10), WithScrollback(NewRingScrollback(100)))

	for i := 0; i < 3; i++ {
		term.WriteString("line\r\n")
	}

	top := term.activeBuffer.Delta()
	term.mu.Lock()
	term.selection = Selection{
		Start:  Position{Row: top, Col: 0},
		End:    Position{Row: top, Col: 3},
		Active: true,
	}
	term.mu.Unlock()

	text, _ := term.GetTextRange()
	if text != "line" {
		t.Errorf("expected %q from scrolled-back row, got %q", "line", text)
	}
}

// TestScrollViewportMovesSelectionBase verifies that StartSelection/
// ExtendSelection, which take viewport-relative coordinates, resolve
// against whatever row ScrollViewport has put at the top of the view.
func TestScrollViewportMovesSelectionBase(t *testing.T) {
	term := New(WithSize(3, 10), WithScrollback(NewRingScrollback(100)))

	term.WriteString("aaaa\r\n")
	term.WriteString("bbbb\r\n")
	term.WriteString("cccc\r\n")

	if !term.IsScrolledBack() {
		term.ScrollToTop()
	}
	if !term.IsScrolledBack() {
		t.Fatal("expected ScrollToTop to report scrolled back")
	}

	term.StartSelection(Position{Row: 0, Col: 0}, SelectionChar)
	term.ExtendSelection(Position{Row: 0, Col: 3})

	text, _ := term.GetTextRange()
	if text != "aaaa" {
		t.Errorf("expected the oldest retained row %q, got %q", "aaaa", text)
	}

	term.ScrollToBottom()
	if term.IsScrolledBack() {
		t.Error("expected ScrollToBottom to clear scrolled-back state")
	}
}

// TestWordSelectionCrossesSoftWrapBoundary verifies wordStartLocked/
// wordEndLocked walk across a soft-wrapped row boundary, not just within
// the row the click landed on.
func TestWordSelectionCrossesSoftWrapBoundary(t *testing.T) {
	term := New(WithSize(5, 4))
	term.WriteString("abcdefgh")

	term.StartSelection(Position{Row: 1, Col: 0}, SelectionWord)

	text, _ := term.GetTextRange()
	if text != "abcdefgh" {
		t.Errorf("expected word selection to cross the wrap boundary and yield %q, got %q", "abcdefgh", text)
	}
}
