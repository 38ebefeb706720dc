package hotkey

import (
	"fmt"
	"testing"

	"golang.design/x/hotkey"
)

func TestParseKeyLetters(t *testing.T) {
	for _, name := range []string{"m", "M", " m ", "Z", "a"} {
		if _, ok := ParseKey(name); !ok {
			t.Errorf("ParseKey(%q) not recognized", name)
		}
	}

	if key, _ := ParseKey("M"); key != hotkey.KeyM {
		t.Errorf("ParseKey(\"M\") = %v, want KeyM", key)
	}
}

func TestParseKeyDigitAliases(t *testing.T) {
	for i := 0; i <= 9; i++ {
		plain := fmt.Sprintf("%d", i)
		alias := fmt.Sprintf("Digit%d", i)

		got, ok := ParseKey(alias)
		if !ok {
			t.Fatalf("ParseKey(%q) not recognized", alias)
		}
		want, _ := ParseKey(plain)
		if got != want {
			t.Errorf("ParseKey(%q) = %v, want same as ParseKey(%q) = %v", alias, got, plain, want)
		}
	}

	// The alias only covers digits; "digit" alone or with a letter is not a
	// key even though the suffix would be one.
	for _, name := range []string{"digit", "DigitA", "digitf", "digitm", "Digit10"} {
		if _, ok := ParseKey(name); ok {
			t.Errorf("ParseKey(%q) unexpectedly recognized", name)
		}
	}
}

func TestParseKeySpecials(t *testing.T) {
	tests := []struct {
		name string
		want hotkey.Key
	}{
		{"Space", hotkey.KeySpace},
		{"TAB", hotkey.KeyTab},
		{"Enter", hotkey.KeyReturn},
		{"Escape", hotkey.KeyEscape},
		{"Esc", hotkey.KeyEscape},
		{"esc", hotkey.KeyEscape},
		{"F1", hotkey.KeyF1},
		{"f12", hotkey.KeyF12},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.name)
		if !ok {
			t.Errorf("ParseKey(%q) not recognized", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "F13", "Backspace", "comma", "??", "MediaPlayPause"} {
		if _, ok := ParseKey(name); ok {
			t.Errorf("ParseKey(%q) unexpectedly recognized", name)
		}
	}
}
