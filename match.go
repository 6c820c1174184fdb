package vtcore

import "regexp"

// matchEntry is one row of the match-regex table. Tags are dense, stable
// integers: removing an entry turns it into a hole (re, nil) rather than
// shifting the slice, so later adds reuse the hole instead of growing the
// table without bound.
type matchEntry struct {
	re  *regexp.Regexp
	tag int
}

// matchAttr records where one byte of matchContents came from, mirroring
// CharAttributes but kept minimal since only position is needed for the
// lookup.
type matchAttr struct {
	row int
	col int
}

// MatchResult is returned by MatchCheck for a regex match under the cursor.
type MatchResult struct {
	Text  string
	Tag   int
	Start int
	End   int
}

// matchCache holds the projected screen text used by MatchCheck, plus the
// last successful match so that repeated lookups in the same region (the
// common case: the pointer drifting a few columns while hovering a URL)
// avoid re-scanning the whole projection.
type matchCache struct {
	contents    string
	attrs       []matchAttr
	valid       bool
	generation  int
	scrollDelta int // ring-absolute row shown at the top when this cache was built

	lastValid bool
	lastStart int
	lastEnd   int
	lastTag   int
	lastText  string
}

// AddMatch registers a regex against the screen's projected text and
// returns a tag that identifies it for RemoveMatch. Registration order
// determines lookup precedence in MatchCheck.
func (t *Terminal) AddMatch(re *regexp.Regexp) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.matchTable {
		if e.re == nil {
			t.matchTable[i] = matchEntry{re: re, tag: e.tag}
			return e.tag
		}
	}
	tag := len(t.matchTable)
	t.matchTable = append(t.matchTable, matchEntry{re: re, tag: tag})
	return tag
}

// RemoveMatch turns tag into a hole. The slot is reused by a later AddMatch
// rather than shifting subsequent tags.
func (t *Terminal) RemoveMatch(tag int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.matchTable {
		if e.tag == tag {
			t.matchTable[i].re = nil
			break
		}
	}
	t.invalidateLastMatchLocked()
}

// RemoveAllMatches clears the entire match-regex table.
func (t *Terminal) RemoveAllMatches() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.matchTable = nil
	t.invalidateLastMatchLocked()
}

func (t *Terminal) invalidateLastMatchLocked() {
	t.matchCache.lastValid = false
}

// rebuildMatchCacheLocked materializes the currently visible screen (which,
// if the viewport has been scrolled back via ScrollViewport, is scrollback
// rather than the live buffer's bottom) into a single string plus a
// parallel per-byte attribute slice, one row per line, rows joined by '\n'.
// attrs record viewport-relative (row, col), matching MatchCheck's public
// contract, even though the cells themselves are fetched by ring-absolute
// row. Caller must hold t.mu.
func (t *Terminal) rebuildMatchCacheLocked() {
	var runes []rune
	var attrs []matchAttr

	top := t.activeBuffer.ScrollDelta()
	for row := 0; row < t.rows; row++ {
		cells, _, ok := t.activeBuffer.RowAt(top + row)
		for col := 0; col < t.cols; col++ {
			if !ok || col >= len(cells) {
				continue
			}
			cell := &cells[col]
			if cell.IsWideSpacer() {
				continue
			}
			ch := cell.Char
			if ch == 0 {
				ch = ' '
			}
			runes = append(runes, ch)
			for k := 0; k < len(string(ch)); k++ {
				attrs = append(attrs, matchAttr{row: row, col: col})
			}
		}
		if row < t.rows-1 {
			runes = append(runes, '\n')
			attrs = append(attrs, matchAttr{row: row, col: -1})
		}
	}

	t.matchCache.contents = string(runes)
	t.matchCache.attrs = attrs
	t.matchCache.valid = true
	t.matchCache.generation = t.activeBuffer.Generation()
	t.matchCache.scrollDelta = top
}

// MatchCheck looks up whether (col, row) falls inside a registered regex
// match on the current screen. It rebuilds the projection cache lazily,
// reuses the last-match cache when the pointer stayed inside the previous
// hit, and otherwise scans the enclosing line against the match table in
// registration order.
func (t *Terminal) MatchCheck(col, row int) *MatchResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.matchCache.valid || t.matchCache.generation != t.activeBuffer.Generation() ||
		t.matchCache.scrollDelta != t.activeBuffer.ScrollDelta() {
		t.rebuildMatchCacheLocked()
		t.matchCache.lastValid = false
	}

	off := t.offsetForLocked(row, col)
	if off < 0 {
		return nil
	}

	if t.matchCache.lastValid && off >= t.matchCache.lastStart && off < t.matchCache.lastEnd {
		return &MatchResult{
			Text:  t.matchCache.lastText,
			Tag:   t.matchCache.lastTag,
			Start: t.matchCache.lastStart,
			End:   t.matchCache.lastEnd,
		}
	}

	lineStart, lineEnd := t.enclosingLineLocked(off)
	line := t.matchCache.contents[lineStart:lineEnd]

	for _, e := range t.matchTable {
		if e.re == nil {
			continue
		}
		loc := e.re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		start, end := lineStart+loc[0], lineStart+loc[1]
		if off >= start && off < end {
			text := t.matchCache.contents[start:end]
			t.matchCache.lastValid = true
			t.matchCache.lastStart = start
			t.matchCache.lastEnd = end
			t.matchCache.lastTag = e.tag
			t.matchCache.lastText = text
			return &MatchResult{Text: text, Tag: e.tag, Start: start, End: end}
		}
	}

	t.matchCache.lastValid = false
	return nil
}

// offsetForLocked finds the byte offset in matchContents whose attribute
// is (row, col) and whose character is not a space. Returns -1 if none.
func (t *Terminal) offsetForLocked(row, col int) int {
	for i, a := range t.matchCache.attrs {
		if a.row == row && a.col == col {
			if i < len(t.matchCache.contents) && t.matchCache.contents[i] == ' ' {
				return -1
			}
			return i
		}
	}
	return -1
}

// enclosingLineLocked scans outward from off to the nearest newline
// boundaries (or buffer edges) on either side.
func (t *Terminal) enclosingLineLocked(off int) (start, end int) {
	contents := t.matchCache.contents
	start = off
	for start > 0 && contents[start-1] != '\n' {
		start--
	}
	end = off
	for end < len(contents) && contents[end] != '\n' {
		end++
	}
	return start, end
}
