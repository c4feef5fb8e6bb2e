package util

import (
	"strings"
	"testing"
)

// TestWrapString tests that no wrapped line exceeds Wrap unless a single word does
func TestWrapString(t *testing.T) {
	text := "Number of seven line records to read from the dictionary, the first record is the header"

	wrapped := WrapString(text)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > Wrap {
			t.Errorf("Line exceeds %d characters: %q", Wrap, line)
		}
	}

	if strings.Join(strings.Fields(wrapped), " ") != text {
		t.Errorf("Wrapping changed the words: %q", wrapped)
	}

	long := strings.Repeat("x", Wrap+10)
	if WrapString(long) != long {
		t.Errorf("A single long word must be kept as is")
	}

	if WrapString("") != "" {
		t.Errorf("Expected empty result for empty input")
	}
}
