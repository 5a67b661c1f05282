package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("bytes.Buffer should not be a TTY")
	}
}

func TestSupportsColor(t *testing.T) {
	// t.Setenv restores the original values; Unsetenv makes "absent" testable.
	unset := func(t *testing.T, key string) {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("tty with color-capable term", func(t *testing.T) {
		unset(t, "NO_COLOR")
		t.Setenv("TERM", "xterm-256color")
		if !supportsColor(&bytes.Buffer{}, true) {
			t.Error("expected color support")
		}
	})

	t.Run("not a tty", func(t *testing.T) {
		unset(t, "NO_COLOR")
		t.Setenv("TERM", "xterm-256color")
		if supportsColor(&bytes.Buffer{}, false) {
			t.Error("non-TTY should not support color")
		}
	})

	t.Run("NO_COLOR set", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("TERM", "xterm-256color")
		if supportsColor(&bytes.Buffer{}, true) {
			t.Error("NO_COLOR should disable color")
		}
	})

	t.Run("dumb terminal", func(t *testing.T) {
		unset(t, "NO_COLOR")
		t.Setenv("TERM", "dumb")
		if supportsColor(&bytes.Buffer{}, true) {
			t.Error("dumb terminal should not support color")
		}
	})
}
