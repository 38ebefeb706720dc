package hotkey

import "strings"

// Modifier is a platform-independent modifier key set, stored as a bitset.
// Parsing collapses synonyms and duplicates, so two spellings of the same
// combination always compare equal.
type Modifier uint8

const (
	ModAlt Modifier = 1 << iota
	ModCtrl
	ModShift
	ModMeta
)

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// ParseModifiers folds a list of modifier names into a Modifier set.
// Recognized spellings (case-insensitive): Alt/Option, Ctrl/Control, Shift,
// Meta/Command/Cmd/Super/Win. Unrecognized tokens are silently ignored; an
// empty list yields the empty set, meaning "no modifiers".
func ParseModifiers(names []string) Modifier {
	var mods Modifier
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "alt", "option":
			mods |= ModAlt
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "meta", "command", "cmd", "super", "win":
			mods |= ModMeta
		}
	}
	return mods
}

// FormatDisplay renders a shortcut as a compact glyph sequence for menu
// labels, e.g. ["Alt"], "M" becomes "⌥M". Modifier glyphs appear in the fixed
// order Alt, Control, Shift, Meta; the key name is appended as given.
func FormatDisplay(modifiers []string, key string) string {
	mods := ParseModifiers(modifiers)

	var b strings.Builder
	if mods.Has(ModAlt) {
		b.WriteString("⌥")
	}
	if mods.Has(ModCtrl) {
		b.WriteString("⌃")
	}
	if mods.Has(ModShift) {
		b.WriteString("⇧")
	}
	if mods.Has(ModMeta) {
		b.WriteString("⌘")
	}
	b.WriteString(key)
	return b.String()
}
