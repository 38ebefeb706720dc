//go:build linux

package hotkey

import "golang.design/x/hotkey"

// expandModifiers converts a Modifier set into X11 modifier masks.
//
// X11 notes:
// - Alt is typically Mod1
// - Super/Win is typically Mod4
func expandModifiers(mods Modifier) []hotkey.Modifier {
	var out []hotkey.Modifier
	if mods.Has(ModAlt) {
		out = append(out, hotkey.Mod1)
	}
	if mods.Has(ModCtrl) {
		out = append(out, hotkey.ModCtrl)
	}
	if mods.Has(ModShift) {
		out = append(out, hotkey.ModShift)
	}
	if mods.Has(ModMeta) {
		out = append(out, hotkey.Mod4)
	}
	return out
}
