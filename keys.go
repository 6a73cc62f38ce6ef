package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/keybind"
)

// ModKey is the primary modifier used by the default bindings (Mod4 / the
// "super"/"windows" key), matching dwm's default config.h MODKEY.
const ModKey = xproto.ModMask4

// Keysym constants used by the default bindings. Only the handful the
// default config touches are named here; anything else can be added the
// same way keybind.StrToKeysym resolves them at grab time.
const (
	XKReturn = 0xff0d
	XKb      = 0x0062
	XKp      = 0x0070
	XKcomma  = 0x002c
	XKperiod = 0x002e
	XKj      = 0x006a
	XKk      = 0x006b
	XKi      = 0x0069
	XKd      = 0x0064
	XKh      = 0x0068
	XKl      = 0x006c
	XKm      = 0x006d
	XKt      = 0x0074
	XKf      = 0x0066
	XKspace  = 0x0020
	XKc      = 0x0063
	XKq      = 0x0071
	XK0      = 0x0030
	XK1      = 0x0031
	XKTab    = 0xff09
)

func defaultKeys(cfg Config) []Key {
	shift := uint16(xproto.ModMaskShift)
	keys := []Key{
		{Mod: ModKey, Keysym: XKp, Action: spawn, Arg: Arg{V: []string{"dmenu_run"}}},
		{Mod: ModKey | shift, Keysym: XKReturn, Action: spawn, Arg: Arg{V: cfg.Terminal}},
		{Mod: ModKey, Keysym: XKb, Action: toggleBar},
		{Mod: ModKey, Keysym: XKj, Action: focusStackCmd, Arg: Arg{Int: +1}},
		{Mod: ModKey, Keysym: XKk, Action: focusStackCmd, Arg: Arg{Int: -1}},
		{Mod: ModKey, Keysym: XKi, Action: incNMaster, Arg: Arg{Int: +1}},
		{Mod: ModKey, Keysym: XKd, Action: incNMaster, Arg: Arg{Int: -1}},
		{Mod: ModKey, Keysym: XKh, Action: setMFact, Arg: Arg{Float: -0.05}},
		{Mod: ModKey, Keysym: XKl, Action: setMFact, Arg: Arg{Float: +0.05}},
		{Mod: ModKey, Keysym: XKReturn, Action: zoom},
		{Mod: ModKey, Keysym: XKTab, Action: view, Arg: Arg{UInt: 0}},
		{Mod: ModKey | shift, Keysym: XKc, Action: killClient},
		{Mod: ModKey, Keysym: XKt, Action: setLayout, Arg: Arg{Int: 0}},
		{Mod: ModKey, Keysym: XKm, Action: setLayout, Arg: Arg{Int: 1}},
		{Mod: ModKey, Keysym: XKf, Action: setLayout, Arg: Arg{Int: 2}},
		{Mod: ModKey, Keysym: XKspace, Action: setLayout, Arg: Arg{Int: -1}},
		{Mod: ModKey | shift, Keysym: XKspace, Action: toggleFloating},
		{Mod: ModKey, Keysym: XK0, Action: view, Arg: Arg{UInt: tagMask(len(cfg.Tags))}},
		{Mod: ModKey | shift, Keysym: XK0, Action: tag, Arg: Arg{UInt: tagMask(len(cfg.Tags))}},
		{Mod: ModKey, Keysym: XKcomma, Action: focusMon, Arg: Arg{Int: -1}},
		{Mod: ModKey, Keysym: XKperiod, Action: focusMon, Arg: Arg{Int: +1}},
		{Mod: ModKey | shift, Keysym: XKcomma, Action: tagMon, Arg: Arg{Int: -1}},
		{Mod: ModKey | shift, Keysym: XKperiod, Action: tagMon, Arg: Arg{Int: +1}},
		{Mod: ModKey | shift, Keysym: XKq, Action: quit},
	}
	for i := range cfg.Tags {
		bit := uint32(1) << uint(i)
		keysym := uint32(XK1) + uint32(i)
		keys = append(keys,
			Key{Mod: ModKey, Keysym: keysym, Action: view, Arg: Arg{UInt: bit}},
			Key{Mod: ModKey | uint16(xproto.ModMaskControl), Keysym: keysym, Action: toggleView, Arg: Arg{UInt: bit}},
			Key{Mod: ModKey | shift, Keysym: keysym, Action: tag, Arg: Arg{UInt: bit}},
			Key{Mod: ModKey | shift | uint16(xproto.ModMaskControl), Keysym: keysym, Action: toggleTag, Arg: Arg{UInt: bit}},
		)
	}
	return keys
}

// cleanMask strips the NumLock bit (detected at runtime via keybind) and
// CapsLock (Lock) from a modifier mask before comparing bindings to event
// state, realizing the CLEANMASK macro.
func cleanMask(wm *WM, mod uint16) uint16 {
	num := keybind.NumLockMask(wm.x.conn)
	clean := mod &^ (uint16(num) | xproto.ModMaskLock)
	return clean & (xproto.ModMaskShift | xproto.ModMaskControl | xproto.ModMask1 |
		xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5)
}
