//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// expandModifiers converts a Modifier set into Carbon modifier flags.
// Alt maps to Option and Meta to Command.
func expandModifiers(mods Modifier) []hotkey.Modifier {
	var out []hotkey.Modifier
	if mods.Has(ModAlt) {
		out = append(out, hotkey.ModOption)
	}
	if mods.Has(ModCtrl) {
		out = append(out, hotkey.ModCtrl)
	}
	if mods.Has(ModShift) {
		out = append(out, hotkey.ModShift)
	}
	if mods.Has(ModMeta) {
		out = append(out, hotkey.ModCmd)
	}
	return out
}
