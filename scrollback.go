package vtcore

// RingScrollback is a capacity-bounded ring buffer of scrolled-off rows.
// It implements ScrollbackProvider and additionally exposes the ring's
// delta/next bookkeeping so callers that need absolute-row addressing
// (shell integration prompt marks, selection across scrollback, search)
// can convert between scrollback index and ring-absolute row without
// re-deriving it.
//
// delta is the ring index of the oldest retained row; it only increases,
// and increases by one each time a push overflows capacity. next is one
// past the newest pushed row. Both start at zero for a freshly created
// ring, so a ring that has never overflowed has delta()==0.
type RingScrollback struct {
	lines    [][]Cell
	wrapped  []bool
	maxLines int
	delta    int
	next     int
}

// NewRingScrollback creates a ring scrollback with the given maximum
// capacity. A non-positive maxLines disables storage (Push is a no-op).
func NewRingScrollback(maxLines int) *RingScrollback {
	if maxLines < 0 {
		maxLines = 0
	}
	return &RingScrollback{maxLines: maxLines}
}

// Push appends a line with wrapped=false, evicting the oldest line if at
// capacity. Equivalent to PushWrapped(line, false).
func (r *RingScrollback) Push(line []Cell) {
	r.PushWrapped(line, false)
}

// PushWrapped appends a line, recording whether it continues onto the next
// row (soft-wrap) rather than ending with a hard newline, evicting the
// oldest line if at capacity.
func (r *RingScrollback) PushWrapped(line []Cell, wrapped bool) {
	if r.maxLines <= 0 {
		return
	}
	cp := make([]Cell, len(line))
	copy(cp, line)

	if len(r.lines) >= r.maxLines {
		copy(r.lines, r.lines[1:])
		copy(r.wrapped, r.wrapped[1:])
		r.lines[len(r.lines)-1] = cp
		r.wrapped[len(r.wrapped)-1] = wrapped
		r.delta++
	} else {
		r.lines = append(r.lines, cp)
		r.wrapped = append(r.wrapped, wrapped)
	}
	r.next = r.delta + len(r.lines)
}

// Len returns the number of stored lines.
func (r *RingScrollback) Len() int {
	return len(r.lines)
}

// Line returns the line at index, where 0 is the oldest line.
func (r *RingScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(r.lines) {
		return nil
	}
	return r.lines[index]
}

// LineWrapped returns the line and its wrapped flag at index, where 0 is
// the oldest line. Returns (nil, false) if index is out of range.
func (r *RingScrollback) LineWrapped(index int) ([]Cell, bool) {
	if index < 0 || index >= len(r.lines) {
		return nil, false
	}
	return r.lines[index], r.wrapped[index]
}

// Clear removes all stored lines. delta/next are left at their current
// values: history that existed is still accounted for in absolute-row
// arithmetic for marks recorded before the clear.
func (r *RingScrollback) Clear() {
	r.lines = nil
	r.wrapped = nil
	r.delta = r.next
}

// SetMaxLines changes capacity, trimming the oldest lines if shrinking.
func (r *RingScrollback) SetMaxLines(max int) {
	if max < 0 {
		max = 0
	}
	r.maxLines = max
	if max == 0 {
		r.lines = nil
		r.wrapped = nil
		r.delta = r.next
		return
	}
	if len(r.lines) > max {
		evicted := len(r.lines) - max
		r.lines = append([][]Cell(nil), r.lines[evicted:]...)
		r.wrapped = append([]bool(nil), r.wrapped[evicted:]...)
		r.delta += evicted
	}
}

// MaxLines returns the current maximum capacity.
func (r *RingScrollback) MaxLines() int {
	return r.maxLines
}

// Delta returns the ring index of the oldest retained line.
func (r *RingScrollback) Delta() int {
	return r.delta
}

// Next returns one past the ring index of the newest line.
func (r *RingScrollback) Next() int {
	return r.next
}

// Contains reports whether absolute ring index i currently addresses a
// retained line.
func (r *RingScrollback) Contains(i int) bool {
	return i >= r.delta && i < r.next
}

var _ ScrollbackProvider = (*RingScrollback)(nil)
