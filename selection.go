package vtcore

import (
	"image/color"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// SelectionType controls how ExtendSelection expands the selected range.
type SelectionType int

const (
	// SelectionChar selects individual characters.
	SelectionChar SelectionType = iota
	// SelectionWord extends outward to word boundaries (same_class).
	SelectionWord
	// SelectionLine extends to whole rows, following soft-wrap chains.
	SelectionLine
)

// CharAttributes describes the style of one output rune produced by
// GetTextRange, so callers can render (or re-colorize) selected text
// without re-walking the grid.
type CharAttributes struct {
	Row           int
	Col           int
	Fg            color.Color
	Bg            color.Color
	Underline     bool
	Strikethrough bool
}

const defaultWordChars = "" // empty: graphic, non-punctuation, non-space, non-NUL

// SetWordChars configures which characters count as "word characters" for
// word selection. spec is a string of literal characters and "a-z" style
// ranges; an empty spec restores the default graphic/non-punctuation rule.
func (t *Terminal) SetWordChars(spec string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wordChars = spec
}

// isWordChar reports whether r counts as a word character under the
// configured word-char table, or the default rule if none is set.
func (t *Terminal) isWordChar(r rune) bool {
	if t.wordChars == "" {
		return isGraphicNonPunct(r)
	}
	return runeInSpec(t.wordChars, r)
}

// wordRuneSet classifies non-ASCII runes as word characters when they are
// letters, numbers, or combining marks (CJK ideographs, accented letters,
// etc.), excluding non-ASCII punctuation and symbols.
var wordRuneSet = runes.In(rangetable.Merge(unicode.L, unicode.N, unicode.M))

func isGraphicNonPunct(r rune) bool {
	if r == 0 || r == ' ' {
		return false
	}
	if r < 0x80 {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return true
		case r == '_':
			return true
		default:
			return false
		}
	}
	return wordRuneSet.Contains(r)
}

func runeInSpec(spec string, r rune) bool {
	runes := []rune(spec)
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := runes[i], runes[i+2]
			if r >= lo && r <= hi {
				return true
			}
			i += 2
			continue
		}
		if runes[i] == r {
			return true
		}
	}
	return false
}

// sameClass implements the spec's same_class rule: both runes must be word
// characters, or both must be non-word characters.
func (t *Terminal) sameClass(a, b rune) bool {
	return t.isWordChar(a) == t.isWordChar(b)
}

// StartSelection begins a new selection of the given type anchored at the
// viewport-relative position pos (row 0 is the top of the current view).
func (t *Terminal) StartSelection(pos Position, typ SelectionType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos.Row = t.viewportToAbsoluteLocked(pos.Row)
	t.selectionOrigin = pos
	t.selectionType = typ
	t.selection = Selection{Start: pos, End: pos, Active: true}
	t.expandSelectionLocked()
}

// ExtendSelection moves the non-anchored end of the selection to the
// viewport-relative position pos, re-running the type-specific expansion
// (word/line snapping).
func (t *Terminal) ExtendSelection(pos Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos.Row = t.viewportToAbsoluteLocked(pos.Row)

	if !t.selection.Active {
		t.selectionOrigin = pos
		t.selection = Selection{Start: pos, End: pos, Active: true}
	}

	start, end := t.selectionOrigin, pos
	if end.Before(start) {
		start, end = end, start
	}
	t.selection.Start = start
	t.selection.End = end
	t.expandSelectionLocked()
}

// ExtendSelectionPixel converts a pixel-space coordinate to a cell
// position using SizeProvider, applying the "middle third of a cell is
// inclusive, outer thirds round to the adjacent boundary" snap rule, then
// extends the selection to that cell.
func (t *Terminal) ExtendSelectionPixel(x, y int) {
	t.mu.RLock()
	cellW, cellH := t.getCellSizePixels()
	rows, cols := t.rows, t.cols
	t.mu.RUnlock()

	if y < 0 {
		y = 0
	}
	maxY := rows*cellH - 1
	if y > maxY {
		y = maxY
	}

	row := snapPixelToCell(y, cellH, rows)
	col := snapPixelToCell(x, cellW, cols)

	t.ExtendSelection(Position{Row: row, Col: col})
}

// snapPixelToCell applies the third-rule snap along one axis: the middle
// third of a cell maps to that cell; the outer thirds round toward the
// nearer inter-cell boundary (i.e. toward the neighboring cell).
func snapPixelToCell(pixel, cellSize, count int) int {
	if cellSize <= 0 {
		return 0
	}
	cell := pixel / cellSize
	offset := pixel % cellSize
	third := cellSize / 3
	if offset < third {
		// first third: still this cell, but a drag passing the boundary
		// rounds to the nearer edge - no-op here, the division already
		// placed us in the correct cell for a left-aligned snap.
	} else if offset >= cellSize-third {
		cell++
	}
	if cell < 0 {
		cell = 0
	}
	if cell >= count {
		cell = count - 1
	}
	return cell
}

// EndSelection finalizes the current selection without clearing it.
func (t *Terminal) EndSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selecting = false
}

// expandSelectionLocked applies type-specific expansion to t.selection.
// Caller must hold t.mu.
func (t *Terminal) expandSelectionLocked() {
	switch t.selectionType {
	case SelectionWord:
		t.selection.Start = t.wordStartLocked(t.selection.Start)
		t.selection.End = t.wordEndLocked(t.selection.End)
	case SelectionLine:
		t.selection.Start = Position{Row: t.wrapChainStartLocked(t.selection.Start.Row), Col: 0}
		endRow := t.wrapChainEndLocked(t.selection.End.Row)
		t.selection.End = Position{Row: endRow, Col: t.cols - 1}
	}
}

// wordStartLocked walks backward from pos to the start of its word-class
// run, following soft-wrap chains across row boundaries: reaching column 0
// continues into the previous ring-absolute row only if that row wrapped
// into this one (spec's "word selection crosses soft-wrapped boundaries").
func (t *Terminal) wordStartLocked(pos Position) Position {
	row, col := pos.Row, pos.Col
	cell := t.activeBuffer.CellAt(row, col)
	if cell == nil {
		return pos
	}
	base := cell.Char
	for {
		for col > 0 {
			prev := t.activeBuffer.CellAt(row, col-1)
			if prev == nil || !t.sameClass(prev.Char, base) {
				return Position{Row: row, Col: col}
			}
			col--
		}
		prevRow := row - 1
		if prevRow < t.activeBuffer.Delta() || !t.activeBuffer.IsWrappedAt(prevRow) {
			return Position{Row: row, Col: col}
		}
		last := t.activeBuffer.CellAt(prevRow, t.cols-1)
		if last == nil || !t.sameClass(last.Char, base) {
			return Position{Row: row, Col: col}
		}
		row, col = prevRow, t.cols-1
	}
}

// wordEndLocked is wordStartLocked's mirror: walks forward, continuing into
// the next ring-absolute row only if the current row soft-wraps into it.
func (t *Terminal) wordEndLocked(pos Position) Position {
	row, col := pos.Row, pos.Col
	cell := t.activeBuffer.CellAt(row, col)
	if cell == nil {
		return pos
	}
	base := cell.Char
	for {
		for col < t.cols-1 {
			next := t.activeBuffer.CellAt(row, col+1)
			if next == nil || !t.sameClass(next.Char, base) {
				return Position{Row: row, Col: col}
			}
			col++
		}
		nextRow := row + 1
		if nextRow >= t.activeBuffer.Next() || !t.activeBuffer.IsWrappedAt(row) {
			return Position{Row: row, Col: col}
		}
		first := t.activeBuffer.CellAt(nextRow, 0)
		if first == nil || !t.sameClass(first.Char, base) {
			return Position{Row: row, Col: col}
		}
		row, col = nextRow, 0
	}
}

func (t *Terminal) wrapChainStartLocked(row int) int {
	for row > t.activeBuffer.Delta() && t.activeBuffer.IsWrappedAt(row-1) {
		row--
	}
	return row
}

func (t *Terminal) wrapChainEndLocked(row int) int {
	for row < t.activeBuffer.Next()-1 && t.activeBuffer.IsWrappedAt(row) {
		row++
	}
	return row
}

// GetTextRange projects the active selection into text and a parallel
// per-rune attribute slice, following the spec's get_text_range policy:
// trailing blank cells are trimmed unless includeTrailing is set, and a
// newline is appended after rows that are not soft-wrapped. Start/End are
// ring-absolute, so a selection that reaches into scrollback is projected
// from there rather than only from the visible screen.
func (t *Terminal) GetTextRange() (string, []CharAttributes) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.selection.Active {
		return "", nil
	}
	return t.getTextRangeLocked(t.selection.Start, t.selection.End, true)
}

// getTextRangeLocked implements get_text_range for the half-open (by row)
// range [start, end], addressed in ring-absolute rows (scrollback or live,
// via Buffer.RowAt) rather than assuming the visible screen. Caller must
// hold t.mu (read or write).
func (t *Terminal) getTextRangeLocked(start, end Position, includeTrailing bool) (string, []CharAttributes) {
	var runes []rune
	var attrs []CharAttributes

	lastRow := t.activeBuffer.Next() - 1
	if end.Row < lastRow {
		lastRow = end.Row
	}

	for row := start.Row; row <= lastRow; row++ {
		cells, wrapped, ok := t.activeBuffer.RowAt(row)
		if !ok {
			continue
		}

		startCol := 0
		endCol := len(cells) - 1
		if row == start.Row {
			startCol = start.Col
		}
		if row == end.Row {
			endCol = end.Col
		}

		trimRunes, trimAttrs := len(runes), len(attrs)

		for col := startCol; col <= endCol && col < len(cells); col++ {
			cell := &cells[col]
			if cell.IsWideSpacer() {
				continue
			}
			ch := cell.Char
			blank := ch == 0 || (ch == ' ' && cell.Combining == "")
			if ch == 0 {
				runes = append(runes, ' ')
			} else if cell.Combining != "" {
				for _, r := range cell.Combining {
					runes = append(runes, r)
				}
			} else {
				runes = append(runes, ch)
			}
			attrs = append(attrs, CharAttributes{
				Row:           row,
				Col:           col,
				Fg:            cell.Fg,
				Bg:            cell.Bg,
				Underline:     cell.HasFlag(CellFlagUnderline),
				Strikethrough: cell.HasFlag(CellFlagStrike),
			})
			if !blank {
				trimRunes, trimAttrs = len(runes), len(attrs)
			}
		}

		if !includeTrailing {
			runes = runes[:trimRunes]
			attrs = attrs[:trimAttrs]
		}

		if row < end.Row && !wrapped {
			runes = append(runes, '\n')
		}
	}

	return string(runes), attrs
}

// SelectAll selects the entire visible screen (not scrollback history).
func (t *Terminal) SelectAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectionType = SelectionChar
	top := t.activeBuffer.InsertDelta()
	t.selection = Selection{
		Start:  Position{Row: top, Col: 0},
		End:    Position{Row: top + t.rows - 1, Col: t.cols - 1},
		Active: true,
	}
}

// SelectNone clears the current selection. Equivalent to ClearSelection.
func (t *Terminal) SelectNone() {
	t.ClearSelection()
}
