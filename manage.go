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
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/xevent"
)

// manage creates a Client for a newly mapped (or scanned) window, applies
// rules, reads size hints and WM hints, attaches it to its monitor's lists,
// paints its border, sets WM_STATE to NormalState, maps it, and focuses it.
func (wm *WM) manage(w xproto.Window) {
	attrs, err := xproto.GetWindowAttributes(wm.x.X.Conn(), w).Reply()
	if err != nil || attrs == nil || attrs.OverrideRedirect {
		return
	}
	if wm.winToClient(w) != nil {
		return
	}

	c := &Client{win: w, bw: wm.config.BorderWidth, mon: wm.selMon}

	geom, err := xproto.GetGeometry(wm.x.X.Conn(), xproto.Drawable(w)).Reply()
	if err == nil && geom != nil {
		c.x, c.y, c.w, c.h = int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height)
	}
	c.oldX, c.oldY, c.oldW, c.oldH = c.x, c.y, c.w, c.h
	c.oldBW = c.bw

	if trans, ok := transientFor(wm, w); ok {
		if t := wm.winToClient(trans); t != nil {
			c.mon = t.mon
			c.isFloating = true
		}
	}

	wm.updateClassHints(c)
	wm.applyRules(c)
	wm.updateTitle(c)
	wm.updateSizeHints(c)
	wm.updateWMHints(c)
	wm.updateWindowType(c)

	if c.x+c.width() > c.mon.mx+c.mon.mw {
		c.x = c.mon.mx + c.mon.mw - c.width()
	}
	if c.y+c.height() > c.mon.my+c.mon.mh {
		c.y = c.mon.my + c.mon.mh - c.height()
	}
	if c.x < c.mon.mx {
		c.x = c.mon.mx
	}
	if c.y < c.mon.my {
		c.y = c.mon.my
	}

	wm.x.configureBorder(w, c.bw)
	wm.x.setBorderColor(w, wm.config.NormColor.pixel())
	wm.selectClientEvents(c)

	attach(c)
	attachStack(c)

	_ = ewmh.ClientListAdd(wm.x.X, w)

	wm.x.moveResizeWindow(w, c.x, c.y, c.w, c.h)
	_ = icccm.WmStateSet(wm.x.X, w, &icccm.WmState{State: icccm.StateNormal})

	if c.mon == wm.selMon {
		wm.unfocus(wm.selMon.sel, false)
	}
	c.mon.arrange()
	wm.x.mapWindow(w)
	wm.focus(nil)
}

// unmanage detaches c from its lists. If destroyed is false the window is
// still alive (a real UnmapNotify, not a DestroyNotify) so WM_STATE is set
// to WithdrawnState before the window is released. The window's border
// width and event mask are left as the WM set them.
func (wm *WM) unmanage(c *Client, destroyed bool) {
	m := c.mon
	detach(c)
	detachStack(c)

	if !destroyed {
		_ = icccm.WmStateSet(wm.x.X, c.win, &icccm.WmState{State: icccm.StateWithdrawn})
	}

	wm.updateClientList()
	m.arrange()
	wm.focus(nil)
}

// updateClientList rewrites _NET_CLIENT_LIST from scratch by walking every
// monitor's client list in order, matching dwm's real (non-stub)
// updateclientlist rather than an incremental append.
func (wm *WM) updateClientList() {
	var wins []xproto.Window
	for _, m := range wm.mons {
		for _, c := range m.clients {
			wins = append(wins, c.win)
		}
	}
	_ = ewmh.ClientListSet(wm.x.X, wins)
}

// selectClientEvents selects the per-window event mask manage() needs on a
// newly managed window and registers this WM's handlers against that window
// id, the way dwm's manage() sets wa.event_mask before mapping. Root's own
// SubstructureNotify/SubstructureRedirect mask (becomeWM) only ever reports
// events relative to root; PropertyNotify, EnterNotify and FocusIn are
// reported relative to whichever window actually selected them, so each
// managed window needs its own selection and its own registered handler.
func (wm *WM) selectClientEvents(c *Client) {
	xproto.ChangeWindowAttributes(wm.x.X.Conn(), c.win, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
			xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify})

	xevent.PropertyNotifyFun(func(X *xgbutil.XUtil, e xevent.PropertyNotifyEvent) {
		wm.onPropertyNotify(e)
	}).Connect(wm.x.X, c.win)

	xevent.EnterNotifyFun(func(X *xgbutil.XUtil, e xevent.EnterNotifyEvent) {
		wm.onEnterNotify(e)
	}).Connect(wm.x.X, c.win)

	xevent.FocusInFun(func(X *xgbutil.XUtil, e xevent.FocusInEvent) {
		wm.onFocusIn(e)
	}).Connect(wm.x.X, c.win)

	xevent.ButtonPressFun(func(X *xgbutil.XUtil, e xevent.ButtonPressEvent) {
		wm.onButtonPress(e)
	}).Connect(wm.x.X, c.win)
}

func transientFor(wm *WM, w xproto.Window) (xproto.Window, bool) {
	t, err := icccm.WmTransientForGet(wm.x.X, w)
	if err != nil || t == 0 {
		return 0, false
	}
	return t, true
}

// updateClassHints reads WM_CLASS once at manage time.
func (wm *WM) updateClassHints(c *Client) {
	class, err := icccm.WmClassGet(wm.x.X, c.win)
	if err != nil || class == nil {
		c.class, c.instance = brokenName, brokenName
		return
	}
	c.class, c.instance = class.Class, class.Instance
}

// updateTitle reads _NET_WM_NAME falling back to WM_NAME, per §4.F's
// PropertyNotify handling and manage-time initialization.
func (wm *WM) updateTitle(c *Client) {
	name, err := ewmh.WmNameGet(wm.x.X, c.win)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(wm.x.X, c.win)
	}
	if err != nil || name == "" {
		c.name = brokenName
		return
	}
	if len(name) > 255 {
		name = name[:255]
	}
	c.name = name
}

// updateSizeHints reads WM_NORMAL_HINTS and derives is_fixed.
func (wm *WM) updateSizeHints(c *Client) {
	hints, err := icccm.WmNormalHintsGet(wm.x.X, c.win)
	if err != nil || hints == nil {
		c.sizeHints = SizeHints{}
		return
	}
	sh := SizeHints{}
	if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		sh.baseW, sh.baseH = int(hints.BaseWidth), int(hints.BaseHeight)
	} else if hints.Flags&icccm.SizeHintPMinSize != 0 {
		sh.baseW, sh.baseH = int(hints.MinWidth), int(hints.MinHeight)
	}
	if hints.Flags&icccm.SizeHintPResizeInc != 0 {
		sh.incW, sh.incH = int(hints.WidthInc), int(hints.HeightInc)
	}
	if hints.Flags&icccm.SizeHintPMinSize != 0 {
		sh.minW, sh.minH = int(hints.MinWidth), int(hints.MinHeight)
	} else if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		sh.minW, sh.minH = int(hints.BaseWidth), int(hints.BaseHeight)
	}
	if hints.Flags&icccm.SizeHintPMaxSize != 0 {
		sh.maxW, sh.maxH = int(hints.MaxWidth), int(hints.MaxHeight)
	}
	if hints.Flags&icccm.SizeHintPAspect != 0 && hints.MaxAspectDen != 0 && hints.MinAspectDen != 0 {
		sh.minA = float64(hints.MinAspectNum) / float64(hints.MinAspectDen)
		sh.maxA = float64(hints.MaxAspectNum) / float64(hints.MaxAspectDen)
	}
	c.sizeHints = sh
	c.isFloating = c.isFloating || sh.isFixed()
}

// updateWMHints reads WM_HINTS urgency, raising the border to the selected
// scheme when a non-focused client becomes urgent.
func (wm *WM) updateWMHints(c *Client) {
	hints, err := icccm.WmHintsGet(wm.x.X, c.win)
	if err != nil || hints == nil {
		return
	}
	if c == wm.selMon.sel && hints.Flags&icccm.HintUrgent != 0 {
		hints.Flags &^= icccm.HintUrgent
		_ = icccm.WmHintsSet(wm.x.X, c.win, hints)
		return
	}
	c.isUrgent = hints.Flags&icccm.HintUrgent != 0
	if c.isUrgent {
		wm.setUrgent(c, true)
	}
	if hints.Flags&icccm.HintInput != 0 {
		c.neverFocus = !hints.Input
	} else {
		c.neverFocus = false
	}
}

// updateWindowType floats dialog windows, per _NET_WM_WINDOW_TYPE, and puts
// any client with _NET_WM_STATE fullscreen already set into fullscreen.
func (wm *WM) updateWindowType(c *Client) {
	state, _ := ewmh.WmStateGet(wm.x.X, c.win)
	for _, s := range state {
		if s == atomNetWMStateFullscreen {
			wm.setFullscreen(c, true)
		}
	}
	wtype, _ := ewmh.WmWindowTypeGet(wm.x.X, c.win)
	for _, t := range wtype {
		if t == atomNetWMWindowTypeDialog {
			c.isFloating = true
		}
	}
}

// setFullscreen enters or exits fullscreen, saving/restoring geometry and
// border width, per invariant 6 and end-to-end scenario 5.
func (wm *WM) setFullscreen(c *Client, fullscreen bool) {
	if fullscreen && !c.isFullscreen {
		_ = ewmh.WmStateSet(wm.x.X, c.win, []string{atomNetWMStateFullscreen})
		c.isFullscreen = true
		c.saved = oldState{x: c.x, y: c.y, w: c.w, h: c.h, bw: c.bw, isFloating: c.isFloating}
		c.isFloating = true
		c.bw = 0
		resizeClient(c, c.mon.mx, c.mon.my, c.mon.mw, c.mon.mh)
		wm.x.raiseWindow(c.win)
	} else if !fullscreen && c.isFullscreen {
		_ = ewmh.WmStateSet(wm.x.X, c.win, nil)
		c.isFullscreen = false
		c.isFloating = c.saved.isFloating
		c.bw = c.saved.bw
		resizeClient(c, c.saved.x, c.saved.y, c.saved.w, c.saved.h)
		c.mon.arrange()
	}
}
