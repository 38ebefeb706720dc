package hotkey

import "testing"

func TestParseModifiersSynonyms(t *testing.T) {
	tests := []struct {
		names []string
		want  Modifier
	}{
		{[]string{"Alt"}, ModAlt},
		{[]string{"option"}, ModAlt},
		{[]string{"Ctrl"}, ModCtrl},
		{[]string{"CONTROL"}, ModCtrl},
		{[]string{"shift"}, ModShift},
		{[]string{"Meta"}, ModMeta},
		{[]string{"Command"}, ModMeta},
		{[]string{"cmd"}, ModMeta},
		{[]string{"Super"}, ModMeta},
		{[]string{"win"}, ModMeta},
		{[]string{"Ctrl", "Shift"}, ModCtrl | ModShift},
		{[]string{"alt", "ALT", "Option"}, ModAlt}, // duplicates collapse
		{[]string{" alt "}, ModAlt},
		{nil, 0},
		{[]string{}, 0},
		{[]string{"Hyper", "bogus"}, 0}, // unknown names are ignored
		{[]string{"Hyper", "Shift"}, ModShift},
	}
	for _, tt := range tests {
		if got := ParseModifiers(tt.names); got != tt.want {
			t.Errorf("ParseModifiers(%v) = %b, want %b", tt.names, got, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || !m.Has(ModCtrl|ModShift) {
		t.Errorf("Has failed for set bits of %b", m)
	}
	if m.Has(ModAlt) || m.Has(ModCtrl|ModMeta) {
		t.Errorf("Has reported unset bits of %b", m)
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		modifiers []string
		key       string
		want      string
	}{
		{[]string{"Alt"}, "M", "⌥M"},
		{[]string{"Ctrl", "Shift"}, "P", "⌃⇧P"},
		// Glyph order is fixed regardless of input order.
		{[]string{"Shift", "Ctrl"}, "P", "⌃⇧P"},
		{[]string{"Command"}, "Space", "⌘Space"},
		{[]string{"alt", "ctrl", "shift", "meta"}, "K", "⌥⌃⇧⌘K"},
		{nil, "F5", "F5"},
		// Key casing passes through untouched.
		{[]string{"Alt"}, "m", "⌥m"},
	}
	for _, tt := range tests {
		if got := FormatDisplay(tt.modifiers, tt.key); got != tt.want {
			t.Errorf("FormatDisplay(%v, %q) = %q, want %q", tt.modifiers, tt.key, got, tt.want)
		}
	}
}
