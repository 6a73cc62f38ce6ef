// dwm
//
// Copyright (C) 2024 The dwm authors
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"log"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	"github.com/jezek/xgbutil/xevent"
)

// setupEvents registers every handler on the root window via xgbutil's
// <Type>Fun(handler).Connect(X, win) family — the same registration
// mechanism the teacher uses for ConfigureNotify on the root, generalized
// to all fourteen event types this WM reacts to. Events with no registered
// callback are ignored by construction; there is no catch-all branch.
func (wm *WM) setupEvents() {
	keybind.Initialize(wm.x.X)
	mousebind.Initialize(wm.x.X)
	wm.numLockMask = uint16(keybind.NumLockMask(wm.x.X))

	root := wm.x.root

	xevent.MapRequestFun(func(X *xgbutil.XUtil, e xevent.MapRequestEvent) {
		wm.onMapRequest(e)
	}).Connect(wm.x.X, root)

	xevent.UnmapNotifyFun(func(X *xgbutil.XUtil, e xevent.UnmapNotifyEvent) {
		wm.onUnmapNotify(e)
	}).Connect(wm.x.X, root)

	xevent.DestroyNotifyFun(func(X *xgbutil.XUtil, e xevent.DestroyNotifyEvent) {
		wm.onDestroyNotify(e)
	}).Connect(wm.x.X, root)

	xevent.ConfigureRequestFun(func(X *xgbutil.XUtil, e xevent.ConfigureRequestEvent) {
		wm.onConfigureRequest(e)
	}).Connect(wm.x.X, root)

	xevent.ConfigureNotifyFun(func(X *xgbutil.XUtil, e xevent.ConfigureNotifyEvent) {
		wm.onConfigureNotify(e)
	}).Connect(wm.x.X, root)

	xevent.PropertyNotifyFun(func(X *xgbutil.XUtil, e xevent.PropertyNotifyEvent) {
		wm.onPropertyNotify(e)
	}).Connect(wm.x.X, root)

	xevent.ClientMessageFun(func(X *xgbutil.XUtil, e xevent.ClientMessageEvent) {
		wm.onClientMessage(e)
	}).Connect(wm.x.X, root)

	xevent.KeyPressFun(func(X *xgbutil.XUtil, e xevent.KeyPressEvent) {
		wm.onKeyPress(e)
	}).Connect(wm.x.X, root)

	xevent.ButtonPressFun(func(X *xgbutil.XUtil, e xevent.ButtonPressEvent) {
		wm.onButtonPress(e)
	}).Connect(wm.x.X, root)

	xevent.EnterNotifyFun(func(X *xgbutil.XUtil, e xevent.EnterNotifyEvent) {
		wm.onEnterNotify(e)
	}).Connect(wm.x.X, root)

	xevent.FocusInFun(func(X *xgbutil.XUtil, e xevent.FocusInEvent) {
		wm.onFocusIn(e)
	}).Connect(wm.x.X, root)

	xevent.MotionNotifyFun(func(X *xgbutil.XUtil, e xevent.MotionNotifyEvent) {
		wm.onMotionNotify(e)
	}).Connect(wm.x.X, root)

	xevent.ExposeFun(func(X *xgbutil.XUtil, e xevent.ExposeEvent) {
		wm.onExpose(e)
	}).Connect(wm.x.X, root)

	xevent.MappingNotifyFun(func(X *xgbutil.XUtil, e xevent.MappingNotifyEvent) {
		wm.onMappingNotify(e)
	}).Connect(wm.x.X, root)
}

func runEventLoop(wm *WM)  { xevent.Main(wm.x.X) }
func stopEventLoop(wm *WM) { xgbutil.Quit(wm.x.X) }

// onMapRequest ignores override-redirect and already-managed windows, else
// manages the new window.
func (wm *WM) onMapRequest(e xevent.MapRequestEvent) {
	attrs, err := xproto.GetWindowAttributes(wm.x.X.Conn(), e.Window).Reply()
	if err != nil || attrs == nil || attrs.OverrideRedirect {
		return
	}
	if wm.winToClient(e.Window) != nil {
		return
	}
	wm.manage(e.Window)
}

// onUnmapNotify treats the unmap as the client's own withdrawal: detach it
// as unmanage(destroyed=false) would, which leaves WM_STATE set to
// WithdrawnState rather than skipping X requests against a dead window (the
// DestroyNotify path does that instead). xgbutil's event decoding does not
// surface the synthetic/send_event bit on UnmapNotify, so this WM cannot
// distinguish a client-requested withdrawal from the reparenting races the
// distinction exists to filter; treating every UnmapNotify as destroyed=false
// is the safe direction since DestroyNotify still fires for real teardown.
func (wm *WM) onUnmapNotify(e xevent.UnmapNotifyEvent) {
	c := wm.winToClient(e.Window)
	if c == nil {
		return
	}
	wm.unmanage(c, false)
}

func (wm *WM) onDestroyNotify(e xevent.DestroyNotifyEvent) {
	if c := wm.winToClient(e.Window); c != nil {
		wm.unmanage(c, true)
	}
}

// onConfigureRequest forwards the request verbatim for unmanaged windows
// and floating managed clients; for tiled clients it ignores the requested
// geometry and sends a synthetic ConfigureNotify reflecting reality, the
// ICCCM "lie" contract.
func (wm *WM) onConfigureRequest(e xevent.ConfigureRequestEvent) {
	c := wm.winToClient(e.Window)
	if c == nil {
		mask := uint16(e.ValueMask)
		values := configureValues(e)
		xproto.ConfigureWindow(wm.x.X.Conn(), e.Window, mask, values)
		return
	}
	if c.isFloating || c.mon.curLayout() == nil || c.mon.curLayout().Arrange == nil {
		if e.ValueMask&xproto.ConfigWindowX != 0 {
			c.x = int(e.X)
		}
		if e.ValueMask&xproto.ConfigWindowY != 0 {
			c.y = int(e.Y)
		}
		if e.ValueMask&xproto.ConfigWindowWidth != 0 {
			c.w = int(e.Width)
		}
		if e.ValueMask&xproto.ConfigWindowHeight != 0 {
			c.h = int(e.Height)
		}
		if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			c.bw = int(e.BorderWidth)
		}
		xproto.ConfigureWindow(wm.x.X.Conn(), e.Window, uint16(e.ValueMask), configureValues(e))
		wm.sendConfigureNotify(c)
		return
	}
	wm.sendConfigureNotify(c)
}

func configureValues(e xevent.ConfigureRequestEvent) []uint32 {
	var vals []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		vals = append(vals, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		vals = append(vals, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		vals = append(vals, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		vals = append(vals, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		vals = append(vals, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		vals = append(vals, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		vals = append(vals, uint32(e.StackMode))
	}
	return vals
}

// sendConfigureNotify issues the synthetic ConfigureNotify dwm's resize()
// emits after ConfigureWindow, so clients observe the geometry the WM
// actually applied.
func (wm *WM) sendConfigureNotify(c *Client) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.win,
		Window:           c.win,
		X:                int16(c.x),
		Y:                int16(c.y),
		Width:            uint16(c.w),
		Height:           uint16(c.h),
		BorderWidth:      uint16(c.bw),
		OverrideRedirect: false,
	}
	xproto.SendEvent(wm.x.X.Conn(), false, c.win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// onConfigureNotify, on the root window, re-reads screen dimensions and
// reconciles monitors; this is monitor hot-plug handling, generalizing the
// teacher's own ConfigureNotify-on-root callback (there used to detect
// Xinerama head changes for the status bar).
func (wm *WM) onConfigureNotify(e xevent.ConfigureNotifyEvent) {
	if e.Window != wm.x.root {
		return
	}
	changed := int(e.Width) != wm.sw || int(e.Height) != wm.sh
	wm.sw, wm.sh = int(e.Width), int(e.Height)
	if err := wm.updateGeom(); err != nil {
		log.Printf("dwm: update_geom failed: %v", err)
		return
	}
	if changed {
		for _, m := range wm.mons {
			wm.repositionBar(m)
		}
	}
	for _, m := range wm.mons {
		for _, c := range m.clients {
			if c.isFullscreen {
				resizeClient(c, c.mon.mx, c.mon.my, c.mon.mw, c.mon.mh)
			}
		}
	}
	wm.focus(nil)
	wm.arrangeAll()
}

func (wm *WM) onPropertyNotify(e xevent.PropertyNotifyEvent) {
	name, _ := xevent.AtomName(wm.x.X, e.Atom)

	if e.Window == wm.x.root {
		return
	}
	c := wm.winToClient(e.Window)
	if c == nil {
		return
	}
	switch name {
	case "WM_TRANSIENT_FOR":
		if !c.isFloating {
			if t, ok := transientFor(wm, c.win); ok && wm.winToClient(t) != nil {
				c.isFloating = true
				c.mon.arrange()
			}
		}
	case "WM_NORMAL_HINTS":
		wm.updateSizeHints(c)
	case "WM_HINTS":
		wm.updateWMHints(c)
	case "_NET_WM_NAME", "WM_NAME":
		wm.updateTitle(c)
	case "_NET_WM_WINDOW_TYPE":
		wm.updateWindowType(c)
	}
}

func (wm *WM) onClientMessage(e xevent.ClientMessageEvent) {
	c := wm.winToClient(e.Window)
	if c == nil {
		return
	}
	name, _ := xevent.AtomName(wm.x.X, e.Type)
	switch name {
	case atomNetWMState:
		data := e.Data.Data32
		if len(data) < 2 {
			return
		}
		fsAtom := wm.atom(atomNetWMStateFullscreen)
		if xproto.Atom(data[1]) == fsAtom || xproto.Atom(data[2]) == fsAtom {
			want := data[0] == 1 || (data[0] == 2 && !c.isFullscreen)
			wm.setFullscreen(c, want)
		}
	case atomNetActiveWindow:
		if c != wm.selMon.sel && !c.isUrgent {
			wm.setUrgent(c, true)
		}
	}
}

func (wm *WM) onKeyPress(e xevent.KeyPressEvent) {
	keysyms := keybind.LookupKeysym(wm.x.X, e.Detail, e.State)
	clean := cleanMask(wm, uint16(e.State))
	for _, k := range wm.config.Keys {
		if uint32(keysyms) == k.Keysym && cleanMask(wm, k.Mod) == clean {
			if k.Action != nil {
				arg := k.Arg
				k.Action(wm, &arg)
			}
			return
		}
	}
}

// onButtonPress classifies the click location — tag box, layout symbol,
// window title or status text on the bar; client area; or root — and
// dispatches the matching binding. A tag-box click carries the hit tag's
// bit as Arg.UInt for bindings that don't already specify one, mirroring
// dwm's "click == ClkTagBar && buttons[i].arg.ui == 0" override.
func (wm *WM) onButtonPress(e xevent.ButtonPressEvent) {
	click := ClkRootWin
	var target *Client
	var tagArg uint32
	if m := wm.winToMon(e.Event); m != nil && m != wm.selMon {
		wm.focus(nil)
		wm.selMon = m
	}
	if m := wm.barMonitor(e.Event); m != nil {
		click, tagArg = barHitTest(m, len(wm.config.Tags), int(e.EventX))
	} else if c := wm.winToClient(e.Event); c != nil {
		wm.focus(c)
		wm.selMon.restack()
		target = c
		click = ClkClientWin
	}
	clean := cleanMask(wm, uint16(e.State))
	for _, b := range wm.config.Buttons {
		if b.Click != click || b.Button != e.Detail || cleanMask(wm, b.Mod) != clean {
			continue
		}
		if b.Click == ClkClientWin && target == nil {
			continue
		}
		arg := b.Arg
		if b.Click == ClkTagBar && arg.UInt == 0 {
			arg.UInt = tagArg
		}
		if b.Action != nil {
			b.Action(wm, &arg)
		}
		return
	}
}

// barMonitor reports the monitor whose bar window is w, or nil.
func (wm *WM) barMonitor(w xproto.Window) *Monitor {
	for _, m := range wm.mons {
		if m.barWin != 0 && m.barWin == w {
			return m
		}
	}
	return nil
}

// onEnterNotify realizes focus-follows-pointer. Non-normal and inferior
// notifications are ignored unless they are on the root; this is the only
// filter against the EnterNotify events raise/restack generate, since
// restack does not discard them. Entering the root or another monitor's
// window switches the selected monitor; entering a client focuses it.
func (wm *WM) onEnterNotify(e xevent.EnterNotifyEvent) {
	if (e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior) && e.Event != wm.x.root {
		return
	}
	c := wm.winToClient(e.Event)
	if e.Event == wm.x.root {
		c = nil
	}
	m := wm.winToMon(e.Event)
	if m != nil && m != wm.selMon {
		wm.selMon = m
	}
	if c == nil || c == wm.selMon.sel {
		return
	}
	wm.focus(c)
}

// onFocusIn restores focus to the selection if some other window stole
// input focus, protecting against misbehaving applications.
func (wm *WM) onFocusIn(e xevent.FocusInEvent) {
	if wm.selMon.sel != nil && e.Event != wm.selMon.sel.win {
		wm.x.setInputFocus(wm.selMon.sel.win)
	}
}

// onMotionNotify tracks the selected monitor across pointer crossings on
// the root window.
func (wm *WM) onMotionNotify(e xevent.MotionNotifyEvent) {
	if e.Event != wm.x.root {
		return
	}
	m := wm.rectToMon(int(e.RootX), int(e.RootY), 1, 1)
	if m != wm.selMon {
		wm.unfocus(wm.selMon.sel, true)
		wm.selMon = m
		wm.focus(nil)
	}
}

func (wm *WM) onExpose(e xevent.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for _, m := range wm.mons {
		if m.barWin == e.Window {
			wm.drawBar(m)
		}
	}
}

func (wm *WM) onMappingNotify(e xevent.MappingNotifyEvent) {
	ev := xproto.MappingNotifyEvent{Request: e.Request, FirstKeycode: e.FirstKeycode, Count: e.Count}
	keybind.RefreshKeyboardMapping(wm.x.X, &ev)
	if e.Request == xproto.MappingKeyboard {
		wm.grabKeys()
	}
}

// grabKeys ungrabs and regrabs every configured key chord under every
// NumLock/CapsLock combination, resolving CLEANMASK at grab time the way
// keybind already does internally.
func (wm *WM) grabKeys() {
	keybind.UngrabAll(wm.x.X)
	wm.numLockMask = uint16(keybind.NumLockMask(wm.x.X))
	for _, k := range wm.config.Keys {
		ks := xproto.Keysym(k.Keysym)
		kcs := keybind.KeysymToKeycodes(wm.x.X, ks)
		for _, kc := range kcs {
			for _, mod := range wm.modCombos(k.Mod) {
				_ = keybind.GrabKeybind(wm.x.X, wm.x.root, mod, kc)
			}
		}
	}
}

// drainEnterNotify round-trips a synchronous request so every request
// restack just issued has been processed by the server before onEnterNotify
// sees whatever EnterNotify events the restack generated. Combined with
// onEnterNotify's own NotifyNormal/NotifyInferior check, this keeps a
// restack from re-selecting a client merely because the pointer ended up
// over it, the Go analogue of dwm's raw XSync before draining its event
// queue by hand.
func (wm *WM) drainEnterNotify() {
	xproto.GetInputFocus(wm.x.X.Conn()).Reply()
}

