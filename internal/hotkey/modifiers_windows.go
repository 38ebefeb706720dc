//go:build windows

package hotkey

import "golang.design/x/hotkey"

// expandModifiers converts a Modifier set into Win32 modifier flags.
func expandModifiers(mods Modifier) []hotkey.Modifier {
	var out []hotkey.Modifier
	if mods.Has(ModAlt) {
		out = append(out, hotkey.ModAlt)
	}
	if mods.Has(ModCtrl) {
		out = append(out, hotkey.ModCtrl)
	}
	if mods.Has(ModShift) {
		out = append(out, hotkey.ModShift)
	}
	if mods.Has(ModMeta) {
		out = append(out, hotkey.ModWin)
	}
	return out
}
