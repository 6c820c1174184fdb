package vtcore

import "testing"

func cellRow(s string) []Cell {
	cells := make([]Cell, len(s))
	for i, r := range s {
		cells[i] = NewCell()
		cells[i].Char = r
	}
	return cells
}

func TestRingScrollbackPushAndLen(t *testing.T) {
	r := NewRingScrollback(3)

	r.Push(cellRow("a"))
	r.Push(cellRow("b"))

	if r.Len() != 2 {
		t.Errorf("expected 2 lines, got %d", r.Len())
	}
	if r.Delta() != 0 {
		t.Errorf("expected delta 0, got %d", r.Delta())
	}
	if r.Next() != 2 {
		t.Errorf("expected next 2, got %d", r.Next())
	}
}

func TestRingScrollbackEviction(t *testing.T) {
	r := NewRingScrollback(2)

	r.Push(cellRow("a"))
	r.Push(cellRow("b"))
	r.Push(cellRow("c"))

	if r.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", r.Len())
	}
	if r.Delta() != 1 {
		t.Errorf("expected delta 1 after eviction, got %d", r.Delta())
	}
	if r.Next() != 3 {
		t.Errorf("expected next 3, got %d", r.Next())
	}
	if r.Line(0)[0].Char != 'b' {
		t.Errorf("expected oldest retained line to be 'b', got %q", string(r.Line(0)[0].Char))
	}
}

func TestRingScrollbackZeroCapacity(t *testing.T) {
	r := NewRingScrollback(0)

	r.Push(cellRow("a"))

	if r.Len() != 0 {
		t.Errorf("expected 0 lines with zero capacity, got %d", r.Len())
	}
}

func TestRingScrollbackSetMaxLinesShrinks(t *testing.T) {
	r := NewRingScrollback(5)
	for _, s := range []string{"a", "b", "c", "d"} {
		r.Push(cellRow(s))
	}

	r.SetMaxLines(2)

	if r.Len() != 2 {
		t.Fatalf("expected 2 lines after shrink, got %d", r.Len())
	}
	if r.Line(0)[0].Char != 'c' {
		t.Errorf("expected 'c' as oldest retained line, got %q", string(r.Line(0)[0].Char))
	}
	if r.Delta() != 2 {
		t.Errorf("expected delta 2, got %d", r.Delta())
	}
}

func TestRingScrollbackClearKeepsDelta(t *testing.T) {
	r := NewRingScrollback(2)
	r.Push(cellRow("a"))
	r.Push(cellRow("b"))

	r.Clear()

	if r.Len() != 0 {
		t.Errorf("expected 0 lines after clear, got %d", r.Len())
	}
	if r.Delta() != r.Next() {
		t.Errorf("expected delta == next after clear, got delta=%d next=%d", r.Delta(), r.Next())
	}
}

func TestRingScrollbackContains(t *testing.T) {
	r := NewRingScrollback(2)
	r.Push(cellRow("a"))
	r.Push(cellRow("b"))
	r.Push(cellRow("c"))

	if r.Contains(0) {
		t.Error("expected evicted index 0 to not be contained")
	}
	if !r.Contains(1) || !r.Contains(2) {
		t.Error("expected retained indices to be contained")
	}
}

func TestBufferWithRingScrollback(t *testing.T) {
	ring := NewRingScrollback(10)
	b := NewBufferWithStorage(3, 5, ring)

	for i := 0; i < 5; i++ {
		b.ScrollUp(0, 3, 1)
	}

	if b.ScrollbackLen() != 5 {
		t.Errorf("expected 5 scrollback lines, got %d", b.ScrollbackLen())
	}
}

func TestRingScrollbackPushWrappedCarriesFlag(t *testing.T) {
	r := NewRingScrollback(3)

	r.PushWrapped(cellRow("a"), true)
	r.PushWrapped(cellRow("b"), false)

	line, wrapped := r.LineWrapped(0)
	if line[0].Char != 'a' || !wrapped {
		t.Errorf("expected ('a', wrapped=true), got (%q, %v)", string(line[0].Char), wrapped)
	}
	line, wrapped = r.LineWrapped(1)
	if line[0].Char != 'b' || wrapped {
		t.Errorf("expected ('b', wrapped=false), got (%q, %v)", string(line[0].Char), wrapped)
	}
}

func TestRingScrollbackPushDefaultsWrappedFalse(t *testing.T) {
	r := NewRingScrollback(3)
	r.Push(cellRow("a"))

	_, wrapped := r.LineWrapped(0)
	if wrapped {
		t.Error("expected Push to record wrapped=false")
	}
}

func TestBufferScrollUpCarriesWrappedFlagIntoScrollback(t *testing.T) {
	ring := NewRingScrollback(10)
	b := NewBufferWithStorage(3, 5, ring)

	b.SetWrapped(0, true)
	b.ScrollUp(0, 3, 1)

	if ring.Len() != 1 {
		t.Fatalf("expected 1 scrollback line, got %d", ring.Len())
	}
	_, wrapped := ring.LineWrapped(0)
	if !wrapped {
		t.Error("expected the pushed row's wrapped flag to be preserved in scrollback")
	}
}

func TestBufferRingAddressing(t *testing.T) {
	ring := NewRingScrollback(10)
	b := NewBufferWithStorage(3, 5, ring)

	if b.Delta() != 0 || b.InsertDelta() != 0 || b.Next() != 3 {
		t.Fatalf("expected fresh buffer delta=0 insertDelta=0 next=3, got delta=%d insertDelta=%d next=%d",
			b.Delta(), b.InsertDelta(), b.Next())
	}

	b.Cell(0, 0).Char = 'X'
	b.ScrollUp(0, 3, 1)

	if b.Delta() != 0 {
		t.Errorf("expected delta 0, got %d", b.Delta())
	}
	if b.InsertDelta() != 1 {
		t.Errorf("expected insertDelta 1 after one scrolled row, got %d", b.InsertDelta())
	}
	if b.Next() != 4 {
		t.Errorf("expected next 4, got %d", b.Next())
	}

	cells, _, ok := b.RowAt(0)
	if !ok || cells[0].Char != 'X' {
		t.Errorf("expected ring-absolute row 0 to resolve into scrollback with 'X', got ok=%v", ok)
	}

	if b.IsScrolledBack() {
		t.Error("expected buffer to auto-track the bottom after a plain ScrollUp")
	}

	b.SetScrollDelta(0)
	if !b.IsScrolledBack() {
		t.Error("expected buffer to report scrolled back after SetScrollDelta(0)")
	}
	if b.ScrollDelta() != 0 {
		t.Errorf("expected ScrollDelta 0, got %d", b.ScrollDelta())
	}

	b.ScrollToBottom()
	if b.IsScrolledBack() {
		t.Error("expected ScrollToBottom to clear scrolled-back state")
	}
}
