package main

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/xprop"
)

// Atom names this WM sends or inspects directly (beyond what the icccm/ewmh
// convenience wrappers already cover internally).
const (
	atomWMProtocols    = "WM_PROTOCOLS"
	atomWMDeleteWindow = "WM_DELETE_WINDOW"
	atomWMTakeFocus    = "WM_TAKE_FOCUS"
	atomWMState        = "WM_STATE"
	atomNetWMState          = "_NET_WM_STATE"
	atomNetWMStateFullscreen = "_NET_WM_STATE_FULLSCREEN"
	atomNetActiveWindow      = "_NET_ACTIVE_WINDOW"
	atomNetWMWindowType       = "_NET_WM_WINDOW_TYPE"
	atomNetWMWindowTypeDialog = "_NET_WM_WINDOW_TYPE_DIALOG"
)

// atom interns name against the connection, logging nothing on failure (an
// unresolvable atom just means the feature it backs silently no-ops, the
// same failure mode dwm has when XInternAtom fails).
func (wm *WM) atom(name string) xproto.Atom {
	a, err := xprop.Atm(wm.x.X, name)
	if err != nil {
		return xproto.AtomNone
	}
	return a
}

// supportsProtocol reports whether c's WM_PROTOCOLS list contains the named
// protocol atom.
func (wm *WM) supportsProtocol(c *Client, name string) bool {
	if !wm.hasX() {
		return false
	}
	protos, err := icccm.WmProtocolsGet(wm.x.X, c.win)
	if err != nil {
		return false
	}
	for _, p := range protos {
		if p == name {
			return true
		}
	}
	return false
}

// sendProtocol sends a ClientMessage invoking the named WM_PROTOCOLS entry
// (WM_DELETE_WINDOW, WM_TAKE_FOCUS) on c, per ICCCM.
func (wm *WM) sendProtocol(c *Client, name string) bool {
	if !wm.supportsProtocol(c, name) {
		return false
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: c.win,
		Type:   wm.atom(atomWMProtocols),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(wm.atom(name)), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	xproto.SendEvent(wm.x.X.Conn(), false, c.win, xproto.EventMaskNoEvent, string(ev.Bytes()))
	return true
}
