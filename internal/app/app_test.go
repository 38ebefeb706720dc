package app

import (
	"reflect"
	"testing"
)

func TestParseShortcutEntry(t *testing.T) {
	tests := []struct {
		entry     string
		modifiers []string
		key       string
		ok        bool
	}{
		{"alt+m", []string{"alt"}, "m", true},
		{"ctrl+shift+p", []string{"ctrl", "shift"}, "p", true},
		{"m", nil, "m", true},
		{" Alt + M ", []string{"Alt"}, "M", true},
		{"ctrl++k", []string{"ctrl"}, "k", true},
		{"", nil, "", false},
		{"+", nil, "", false},
		{"  +  ", nil, "", false},
	}
	for _, tt := range tests {
		mods, key, ok := parseShortcutEntry(tt.entry)
		if ok != tt.ok {
			t.Errorf("parseShortcutEntry(%q) ok = %v, want %v", tt.entry, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if !reflect.DeepEqual(mods, tt.modifiers) || key != tt.key {
			t.Errorf("parseShortcutEntry(%q) = %v, %q; want %v, %q", tt.entry, mods, key, tt.modifiers, tt.key)
		}
	}
}
