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
	"fmt"
	"log"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/xwindow"
)

// WM is the process-wide context: the X connection, the monitor list, the
// selected monitor, the running configuration. Everything else in this
// module reaches shared state through a *WM rather than package globals.
type WM struct {
	x      *xConn
	config Config

	sw, sh int // screen dimensions, re-read on root ConfigureNotify

	mons   []*Monitor
	selMon *Monitor

	wmCheckWin xproto.Window

	running bool

	numLockMask uint16
	cursors     cursors
}

// NewWM opens the display, probes for a competing window manager, and
// returns a WM ready for setup(). cfg.Tags must not exceed maxTags.
func NewWM(cfg Config) (*WM, error) {
	if len(cfg.Tags) > maxTags {
		return nil, fmt.Errorf("dwm: %d tags exceeds the %d-tag limit", len(cfg.Tags), maxTags)
	}
	TAGMASK = tagMask(len(cfg.Tags))

	x, err := openDisplay()
	if err != nil {
		return nil, err
	}
	if err := x.becomeWM(); err != nil {
		return nil, err
	}
	return &WM{x: x, config: cfg, sw: x.screenW, sh: x.screenH}, nil
}

// hasX reports whether wm holds a live X connection. Command/layout unit
// tests build a *WM with x left nil to exercise tag/geometry/stacking logic
// without a display. The X-touching call sites those tests reach guard on
// this first; event handlers, manage/unmanage and setup do not, and assume
// a live connection.
func (wm *WM) hasX() bool { return wm.x != nil }

// setup finishes initialization after becomeWM has succeeded: cursors,
// EWMH property advertisement, monitor geometry, atoms, and the event
// dispatch table.
func (wm *WM) setup() error {
	wm.setupCursors()

	if err := wm.updateGeom(); err != nil {
		return err
	}
	if len(wm.mons) == 0 {
		return fmt.Errorf("dwm: no monitors detected")
	}
	wm.selMon = wm.mons[0]

	if err := wm.setupSupporting(); err != nil {
		return err
	}
	if err := ewmh.SupportedSet(wm.x.X, []string{
		atomNetWMState, atomNetWMStateFullscreen, atomNetActiveWindow,
		atomNetWMWindowType, atomNetWMWindowTypeDialog,
		"_NET_SUPPORTING_WM_CHECK", "_NET_WM_NAME", "_NET_CLIENT_LIST",
	}); err != nil {
		log.Printf("dwm: failed to set _NET_SUPPORTED: %v", err)
	}
	_ = ewmh.ClientListSet(wm.x.X, nil)

	for _, m := range wm.mons {
		wm.createBarWindow(m)
	}

	wm.grabKeys()
	wm.setupEvents()

	wm.x.sync()
	return nil
}

// setupSupporting creates the dedicated _NET_SUPPORTING_WM_CHECK child
// window and sets its own properties, per §6.2.
func (wm *WM) setupSupporting() error {
	win, err := xwindow.Generate(wm.x.X)
	if err != nil {
		return err
	}
	win.Create(wm.x.root, 0, 0, 1, 1, 0)
	wm.wmCheckWin = win.Id
	if err := ewmh.SupportingWmCheckSet(wm.x.X, wm.x.root, win.Id); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(wm.x.X, win.Id, win.Id); err != nil {
		return err
	}
	return ewmh.WmNameSet(wm.x.X, win.Id, wm.config.WMName)
}

// scan walks the existing window tree at startup and manages every mapped,
// non-override-redirect top-level window, so the WM takes over cleanly on
// restart.
func (wm *WM) scan() {
	children := wm.x.queryTree(wm.x.root)
	for _, w := range children {
		attrs, err := xproto.GetWindowAttributes(wm.x.X.Conn(), w).Reply()
		if err != nil || attrs == nil {
			continue
		}
		if attrs.OverrideRedirect {
			continue
		}
		state, _ := icccm.WmStateGet(wm.x.X, w)
		if attrs.MapState == xproto.MapStateViewable || state == icccm.StateIconic {
			wm.manage(w)
		}
	}
}

// run is the blocking main loop: fetch and dispatch until quit() clears
// running. The actual fetch/dispatch mechanics live in events.go, wired to
// xgbutil's xevent package.
func (wm *WM) run() {
	wm.running = true
	wm.x.sync()
	runEventLoop(wm)
}

// quit clears running so run's event loop exits at its next chance.
func quit(wm *WM, _ *Arg) {
	wm.running = false
	stopEventLoop(wm)
}

// cleanup unmanages every client, ungrabs input, and destroys WM-owned
// windows, returning the display to a state another WM can take over.
func (wm *WM) cleanup() {
	for _, m := range wm.mons {
		for len(m.clients) > 0 {
			wm.unmanage(m.clients[0], false)
		}
	}
	keybind.UngrabAll(wm.x.X)
	for _, m := range wm.mons {
		if m.barWin != 0 {
			wm.x.destroyWindow(m.barWin)
		}
	}
	if wm.wmCheckWin != 0 {
		wm.x.destroyWindow(wm.wmCheckWin)
	}
}
