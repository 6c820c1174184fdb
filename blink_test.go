package vtcore

import (
	"testing"
	"time"
)

func TestBlinkStateDefaultsToOnWithoutEnable(t *testing.T) {
	term := New()
	if term.BlinkState() != BlinkOn {
		t.Errorf("expected BlinkOn by default, got %v", term.BlinkState())
	}
}

func TestBlinkTogglesOnHalfCycle(t *testing.T) {
	term := New()
	term.EnableBlink(5*time.Millisecond, time.Second)
	defer term.DisableBlink()

	time.Sleep(20 * time.Millisecond)

	if term.BlinkState() == BlinkDisabled {
		t.Error("expected blink to still be toggling, not disabled")
	}
}

func TestBlinkDisablesAfterIdleTimeout(t *testing.T) {
	term := New()
	term.EnableBlink(2*time.Millisecond, 10*time.Millisecond)
	defer term.DisableBlink()

	time.Sleep(40 * time.Millisecond)

	if term.BlinkState() != BlinkDisabled {
		t.Errorf("expected BlinkDisabled after idle timeout, got %v", term.BlinkState())
	}
}

func TestNoteActivityResetsFromDisabled(t *testing.T) {
	term := New()
	term.EnableBlink(2*time.Millisecond, 10*time.Millisecond)
	defer term.DisableBlink()

	time.Sleep(30 * time.Millisecond)
	if term.BlinkState() != BlinkDisabled {
		t.Fatalf("expected BlinkDisabled before activity, got %v", term.BlinkState())
	}

	term.NoteActivity()
	if term.BlinkState() != BlinkOn {
		t.Errorf("expected BlinkOn immediately after activity, got %v", term.BlinkState())
	}
}

func TestDisableBlinkStopsTimers(t *testing.T) {
	term := New()
	term.EnableBlink(2*time.Millisecond, time.Second)
	term.DisableBlink()

	if term.BlinkState() != BlinkOn {
		t.Errorf("expected BlinkOn after disabling, got %v", term.BlinkState())
	}
}
