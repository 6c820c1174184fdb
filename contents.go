package vtcore

import "io"

// ContentsFlags controls WriteContents' output.
type ContentsFlags int

const (
	// ContentsVisibleOnly restricts output to the active screen, skipping
	// scrollback entirely.
	ContentsVisibleOnly ContentsFlags = 1 << iota
	// ContentsIncludeTrailing preserves trailing blank cells on each row
	// instead of trimming them at the last non-space column.
	ContentsIncludeTrailing
)

// WriteContents reconstructs the terminal's text content as plain,
// unistr-decoded UTF-8 and writes it to w: scrollback followed by the
// visible screen, unless flags include ContentsVisibleOnly. Rows get a
// newline at soft-wrap-false boundaries, matching GetTextRange's policy.
// There is no binary header or framing; the output is exactly the text a
// user would see if they selected the whole buffer.
func (t *Terminal) WriteContents(w io.Writer, flags ContentsFlags) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	includeTrailing := flags&ContentsIncludeTrailing != 0

	if flags&ContentsVisibleOnly == 0 {
		if err := t.writeScrollbackLocked(w, includeTrailing); err != nil {
			return err
		}
	}

	top := t.activeBuffer.InsertDelta()
	text, _ := t.getTextRangeLocked(
		Position{Row: top, Col: 0},
		Position{Row: top + t.rows - 1, Col: t.cols - 1},
		includeTrailing,
	)
	if text != "" {
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}

// writeScrollbackLocked writes every stored scrollback line, oldest
// first, applying the same trailing-cell trimming policy as the visible
// screen. A newline is suppressed after a line that soft-wrapped into the
// next one, matching getTextRangeLocked's policy for the live buffer.
// Caller must hold t.mu (read or write).
func (t *Terminal) writeScrollbackLocked(w io.Writer, includeTrailing bool) error {
	provider := t.primaryBuffer.ScrollbackProvider()
	if provider == nil {
		return nil
	}
	n := t.primaryBuffer.ScrollbackLen()
	for i := 0; i < n; i++ {
		line, wrapped := provider.LineWrapped(i)
		text := contentsLineText(line, includeTrailing)
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		if !wrapped {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// contentsLineText projects a stored scrollback row (a plain []Cell, not
// backed by a Buffer) into text using the same unistr/trailing-trim rules
// as getTextRangeLocked.
func contentsLineText(line []Cell, includeTrailing bool) string {
	var runes []rune
	lastNonBlank := -1

	for i := range line {
		cell := &line[i]
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 || (cell.Char == ' ' && cell.Combining == "") {
			runes = append(runes, ' ')
			continue
		}
		if cell.Combining != "" {
			runes = append(runes, []rune(cell.Combining)...)
		} else {
			runes = append(runes, cell.Char)
		}
		lastNonBlank = len(runes) - 1
	}

	if !includeTrailing && lastNonBlank >= 0 {
		runes = runes[:lastNonBlank+1]
	} else if !includeTrailing {
		runes = nil
	}
	return string(runes)
}
