// Package vtcore implements the core state machine of a VT-style terminal
// emulator: an incoming-byte pipeline, a screen model with ring-buffered
// scrollback, an insertion engine, and a selection/match engine. It has no
// display of its own, which makes it useful for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Driving terminal-based web front ends
//   - Automated testing of CLI tools
//   - Screen scraping and automation
//
// # Quick Start
//
// Create a terminal and write ANSI sequences to it:
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: the main emulator; implements [ansicode.Handler]
//   - [Buffer]: a 2D grid of cells, paired with a [ScrollbackProvider]
//   - [Cell]: a single grid position, holding a rune (or an interned
//     combining-mark sequence), colors, and attribute flags
//   - [Cursor]: position, rendering style, visibility, and the pending-wrap
//     flag; pen attributes live in a [CellTemplate] and the DECSC/DECRC
//     save slot in a [SavedCursor]
//
// Bytes do not flow straight from [Terminal.Write] to the ANSI decoder.
// They first land in a pooled chunk queue ([Terminal.Feed]); a separate
// drain step ([Terminal.ProcessIncoming]) pulls chunks through the decoder
// under a per-pass byte budget, so a caller feeding multiple terminals from
// one goroutine can interleave fairly instead of starving on a single
// flood of output. [Terminal.Write] and [Terminal.WriteString] perform both
// steps synchronously, matching the plain [io.Writer] contract callers
// expect when they don't care about pacing.
//
// # Terminal
//
//	term := vtcore.New(
//	    vtcore.WithSize(24, 80),               // 24 rows, 80 columns
//	    vtcore.WithScrollback(storage),        // enable scrollback
//	    vtcore.WithResponse(ptyWriter),        // handle terminal responses
//	)
//
//	cmd := exec.Command("ls", "-la", "--color")
//	cmd.Stdout = term
//	cmd.Run()
//
//	for row := 0; row < term.Rows(); row++ {
//	    fmt.Println(term.LineContent(row))
//	}
//
// # Dual Buffers
//
//   - Primary buffer: normal mode, backed by a [RingScrollback] (or any
//     [ScrollbackProvider])
//   - Alternate buffer: used by full-screen apps (vim, less, htop); always
//     backed by [NoopScrollback], capacity equal to the visible rows
//
// Applications switch buffers via CSI ?1049h/l:
//
//	if term.IsAlternateScreen() {
//	    // full-screen app is running
//	}
//
// # Cells and Attributes
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(vtcore.CellFlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Cell flags include: Bold, Dim, Italic, Underline, Blink, Reverse, Hidden,
// Strike, WideChar, WideCharSpacer. A wide character occupies two adjacent
// cells: the first carries the rune with [CellFlagWideChar], the second is
// a zero-width [CellFlagWideCharSpacer] fragment that moves and erases with
// its owner but never renders its own glyph.
//
// # Colors
//
// Colors are stored using Go's [image/color] interface:
//
//   - Named colors (indices 0-15 for standard ANSI colors)
//   - 256-color palette (indices 0-255)
//   - True color (24-bit RGB via [color.RGBA])
//
// Cells keep their colors unresolved. Snapshots at [SnapshotDetailStyled]
// and [SnapshotDetailFull] report them as "#rrggbb" strings, taking OSC 4
// palette overrides into account; [Terminal.HasColorOverride] reports
// whether a palette index is overridden.
//
// # Scrollback
//
// Lines scrolled off the top of the primary buffer are kept by whatever
// [ScrollbackProvider] is configured. [RingScrollback] is the built-in
// ring-buffer implementation: it tracks a wrap-around delta so scrolled
// content can be addressed without copying. Whether the view is scrolled to
// the bottom or scrolled back is tracked by the [Buffer]'s scroll delta,
// not by the provider.
//
//	storage := vtcore.NewRingScrollback(10000)
//	term := vtcore.New(vtcore.WithScrollback(storage))
//
//	for i := 0; i < term.ScrollbackLen(); i++ {
//	    line := term.ScrollbackLine(i) // []Cell
//	}
//
// # Terminal Responses
//
// A [ResponseProvider] (any [io.Writer]) receives terminal responses meant
// for the PTY (cursor position reports, device attributes, etc.):
//
//	term := vtcore.New(vtcore.WithResponse(os.Stdout))
//
// # Providers
//
// Providers handle terminal events and queries. All are optional, with
// no-op defaults:
//
//   - [BellProvider]: bell/beep events
//   - [TitleProvider]: window title changes (OSC 0/1/2)
//   - [ClipboardProvider]: clipboard operations (OSC 52)
//   - [ScrollbackProvider]: lines scrolled off screen
//   - [RecordingProvider]: captures raw input for replay
//   - [SizeProvider]: pixel dimensions for pixel-space selection and queries
//   - [ShellIntegrationProvider]: shell integration marks (OSC 133)
//
//	term := vtcore.New(
//	    vtcore.WithResponse(os.Stdout),
//	    vtcore.WithBell(&MyBellHandler{}),
//	    vtcore.WithTitle(&MyTitleHandler{}),
//	)
//
// # Middleware
//
// Middleware intercepts handler calls for custom behavior:
//
//	mw := &vtcore.Middleware{
//	    Input: func(r rune, next func(rune)) {
//	        log.Printf("Input: %c", r)
//	        next(r)
//	    },
//	    Bell: func(next func()) {
//	        log.Println("Bell!")
//	        // don't call next() to suppress the bell
//	    },
//	}
//	term := vtcore.New(vtcore.WithMiddleware(mw))
//
// # Terminal Modes
//
//	term.HasMode(vtcore.ModeLineWrap)       // auto line wrap enabled?
//	term.HasMode(vtcore.ModeShowCursor)     // cursor visible?
//	term.HasMode(vtcore.ModeBracketedPaste) // bracketed paste enabled?
//	term.HasMode(vtcore.ModeExtendedWrap)   // xn: defer wrap to next write?
//
// See [TerminalMode] for all available modes.
//
// # Dirty Tracking
//
//	if term.HasDirty() {
//	    for _, pos := range term.DirtyCells() {
//	        // redraw cell at pos.Row, pos.Col
//	    }
//	    term.ClearDirty()
//	}
//
// [Terminal.DirtyCells] lists every modified cell individually. Separately,
// [Terminal.DirtyBoundingBox] reports a single rectangle covering what
// [Terminal.ProcessIncoming] changed since the last
// [Terminal.ClearDirtyBoundingBox] call.
//
// # Selection
//
// [Terminal] supports character, word, and line selection. There is no
// rectangular block mode; a selection always runs linearly from its start
// to its end:
//
//	term.StartSelection(vtcore.Position{Row: 0, Col: 0}, vtcore.SelectionChar)
//	term.ExtendSelection(vtcore.Position{Row: 2, Col: 10})
//	text, attrs := term.GetTextRange()
//	term.ClearSelection()
//
// [Terminal.ExtendSelectionPixel] snaps a pixel-space coordinate to a cell
// using [SizeProvider]: a point in the last third of a cell snaps to the
// next cell, anywhere else in the cell snaps to that cell.
//
// # Search and Match
//
// [Terminal.Search] and [Terminal.SearchScrollback] scan for literal text.
// For persistent highlighting, register regular expressions:
//
//	id := term.AddMatch(regexp.MustCompile(`https?://\S+`))
//	hit := term.MatchCheck(col, row) // nil if no registered pattern covers it
//	term.RemoveMatch(id)
//
// Registered matches are checked in registration order; removing one leaves
// a slot that the next [Terminal.AddMatch] reuses instead of shifting the
// rest. The projected screen text is cached until the buffer's contents
// change or the view scrolls, and the last hit is reused while the queried
// position stays inside it.
//
// # Snapshots
//
//	snap := term.Snapshot(vtcore.SnapshotDetailText)   // text only (smallest)
//	snap := term.Snapshot(vtcore.SnapshotDetailStyled) // style segments, for HTML
//	snap := term.Snapshot(vtcore.SnapshotDetailFull)   // full cell data
//	data, _ := json.Marshal(snap)
//
// [Terminal.WriteContents] writes the plain text of the scrollback followed
// by the visible screen (the screen only with [ContentsVisibleOnly]). Rows
// that soft-wrapped are joined without a newline, and trailing blank cells
// of each row are trimmed unless [ContentsIncludeTrailing] is set; blank
// rows are kept.
//
// # Shell Integration
//
// Prompt marks (OSC 133) are tracked for prompt-based navigation:
//
//	term := vtcore.New(vtcore.WithShellIntegration(&MyProvider{}))
//
//	currentAbsRow := term.ScrollbackLen() // absolute row of screen row 0
//	nextAbsRow := term.NextPromptRow(currentAbsRow, -1)
//	prevAbsRow := term.PrevPromptRow(currentAbsRow, -1)
//	output := term.GetLastCommandOutput()
//
// # Auto-Resize Mode
//
// In auto-resize mode the buffer grows instead of scrolling, so no output
// is discarded:
//
//	term := vtcore.New(vtcore.WithAutoResize())
//	cmd.Stdout = term
//	cmd.Run()
//	fmt.Printf("Total rows: %d\n", term.Rows())
//
// # Thread Safety
//
// All [Terminal] methods are safe for concurrent use; a single internal
// [sync.RWMutex] protects state. Callers needing several operations to
// appear atomic should add their own synchronization around the call
// sequence.
//
// # Supported ANSI Sequences
//
//   - Cursor movement (CUU, CUD, CUF, CUB, CUP, HVP, etc.)
//   - Cursor save/restore (DECSC, DECRC)
//   - Erase commands (ED, EL, ECH)
//   - Insert/delete (ICH, DCH, IL, DL)
//   - Scrolling (SU, SD, DECSTBM)
//   - Character attributes (SGR) with full color support
//   - Terminal modes (DECSET, DECRST); [ModeExtendedWrap] (xn) is not set
//     by any escape sequence
//   - Device status reports (DSR)
//   - Alternate screen buffer
//   - Bracketed paste mode
//   - Mouse reporting
//   - Window title (OSC 0/1/2)
//   - Clipboard (OSC 52)
//   - Hyperlinks (OSC 8)
//   - Shell integration (OSC 133)
//
// For the complete list of recognized sequences, see the [go-ansicode]
// package documentation; this package's [Terminal] implements its
// [ansicode.Handler] interface.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package vtcore
