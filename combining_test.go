package vtcore

import "testing"

const combiningAcute = '́'
const combiningDiaeresis = '̈'

func TestIsCombiningMark(t *testing.T) {
	if !isCombiningMark(combiningAcute) {
		t.Error("expected U+0301 to be a combining mark")
	}
	if isCombiningMark('a') {
		t.Error("expected 'a' to not be a combining mark")
	}
}

func TestCombiningTableInternReusesSequence(t *testing.T) {
	table := newCombiningTable()

	seq1 := table.intern('e', combiningAcute)
	seq2 := table.intern('e', combiningAcute)

	if seq1 != seq2 {
		t.Errorf("expected interned sequences to be equal, got %q and %q", seq1, seq2)
	}
	want := string('e') + string(combiningAcute)
	if seq1 != want {
		t.Errorf("expected %q, got %q", want, seq1)
	}
}

func TestMergeCombiningAppendsToExistingSequence(t *testing.T) {
	table := newCombiningTable()
	cell := NewCell()
	cell.Char = 'e'

	table.mergeCombining(&cell, combiningAcute)
	want := string('e') + string(combiningAcute)
	if cell.Combining != want {
		t.Errorf("expected %q, got %q", want, cell.Combining)
	}

	table.mergeCombining(&cell, combiningDiaeresis)
	want += string(combiningDiaeresis)
	if cell.Combining != want {
		t.Errorf("expected %q, got %q", want, cell.Combining)
	}
}

func TestInputCombiningMarkMergesIntoPreviousCell(t *testing.T) {
	term := New(WithSize(5, 20))
	term.WriteString("e")
	term.Input(combiningAcute)

	cell := term.activeBuffer.Cell(0, 0)
	want := string('e') + string(combiningAcute)
	if cell.Combining != want {
		t.Errorf("expected combined cell %q, got %q", want, cell.Combining)
	}
}

func TestInputCombiningMarkAtColumnZeroAttachesToPreviousWrappedRow(t *testing.T) {
	term := New(WithSize(5, 3))
	term.WriteString("abc")

	// Simulate having just soft-wrapped onto a fresh row: row 0 is marked
	// wrapped and the cursor rests at column 0 of row 1.
	term.activeBuffer.SetWrapped(0, true)
	term.cursor.Row = 1
	term.cursor.Col = 0

	term.Input(combiningAcute)

	cell := term.activeBuffer.Cell(0, 2)
	want := string('c') + string(combiningAcute)
	if cell.Combining != want {
		t.Errorf("expected combined cell %q, got %q", want, cell.Combining)
	}
}

func TestInputCombiningMarkDroppedAfterTabFragment(t *testing.T) {
	term := New(WithSize(5, 20))
	term.Tab(1) // advances the cursor past columns marked as tab fragments
	term.Input(combiningAcute)

	cell := term.activeBuffer.Cell(0, term.cursor.Col-1)
	if cell.Combining != "" {
		t.Errorf("expected combining mark to be dropped after a tab fragment, got %q", cell.Combining)
	}
}
