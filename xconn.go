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
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xwindow"
)

// xConn wraps the xgbutil connection handle plus the handful of raw
// xproto-level operations xgbutil's ewmh/icccm packages don't cover: grabs,
// ConfigureWindow, CreateWindow, ChangeWindowAttributes. Every component
// reaches the X server only through this type.
type xConn struct {
	X    *xgbutil.XUtil
	conn *xgbutil.XUtil // alias kept for keybind.NumLockMask(wm.x.conn)-style call sites
	root xproto.Window

	screenW, screenH int
}

// openDisplay opens the X connection named by $DISPLAY (empty string lets
// xgbutil consult the environment itself, matching the teacher's NewBar).
func openDisplay() (*xConn, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("cannot open display: %w", err)
	}
	xc := &xConn{
		X:       X,
		conn:    X,
		root:    X.RootWin(),
		screenW: int(X.Screen().WidthInPixels),
		screenH: int(X.Screen().HeightInPixels),
	}
	return xc, nil
}

// becomeWM performs the startup probe: request SubstructureRedirect on the
// root as a checked request, sync, and report whether another window
// manager already holds it (the server answers with BadAccess). This is
// the probe/sync sequence dwm relies on as its only portable detection of a
// running WM. There is no handler to reinstall afterwards: this one checked
// error is treated as fatal, and no other request's error is passed through
// checkErr and the benign allowlist, since checkErr has no callers.
func (xc *xConn) becomeWM() error {
	cookie := xproto.ChangeWindowAttributesChecked(xc.X.Conn(), xc.root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
			xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange |
			xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion | xproto.EventMaskEnterWindow})
	err := cookie.Check()
	xc.X.Sync()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return fmt.Errorf("another window manager is already running")
		}
		return fmt.Errorf("cannot select substructure redirect: %w", err)
	}
	return nil
}

// checkErr inspects the error from a Checked() request against the benign
// allowlist (§7): benign errors are swallowed, anything else is logged.
// reqName identifies the request for the allowlist and for the log line.
func (xc *xConn) checkErr(reqName string, err error) {
	if err == nil {
		return
	}
	if isBenignXError(reqName, err) {
		return
	}
	log.Printf("dwm: X error on %s: %v", reqName, err)
}

func (xc *xConn) sync() {
	if xc == nil {
		return
	}
	xc.X.Sync()
}

// Every method below no-ops on a nil receiver. Production code always holds
// a live xConn; command/layout unit tests build a *WM with x left nil so
// they can exercise tag/geometry/stacking logic without a display.

func (xc *xConn) moveWindow(w xproto.Window, x, y int) {
	if xc == nil {
		return
	}
	xwindow.New(xc.X, w).Move(x, y)
}

func (xc *xConn) moveResizeWindow(w xproto.Window, x, y, width, height int) {
	if xc == nil {
		return
	}
	xwindow.New(xc.X, w).MoveResize(x, y, width, height)
}

func (xc *xConn) configureBorder(w xproto.Window, bw int) {
	if xc == nil {
		return
	}
	xproto.ConfigureWindow(xc.X.Conn(), w, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(bw)})
}

func (xc *xConn) setBorderColor(w xproto.Window, pixel uint32) {
	if xc == nil {
		return
	}
	xproto.ChangeWindowAttributes(xc.X.Conn(), w, xproto.CwBorderPixel, []uint32{pixel})
}

func (xc *xConn) raiseWindow(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.ConfigureWindow(xc.X.Conn(), w, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

func (xc *xConn) queryPointer() (x, y int, ok bool) {
	if xc == nil {
		return 0, 0, false
	}
	reply, err := xproto.QueryPointer(xc.X.Conn(), xc.root).Reply()
	if err != nil || reply == nil {
		return 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), true
}

func (xc *xConn) queryTree(win xproto.Window) []xproto.Window {
	if xc == nil {
		return nil
	}
	reply, err := xproto.QueryTree(xc.X.Conn(), win).Reply()
	if err != nil || reply == nil {
		return nil
	}
	return reply.Children
}

func (xc *xConn) destroyWindow(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.DestroyWindow(xc.X.Conn(), w)
}

func (xc *xConn) killClientWindow(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.KillClient(xc.X.Conn(), uint32(w))
}

func (xc *xConn) setInputFocus(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.SetInputFocusChecked(xc.X.Conn(), xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime).Check()
}

func (xc *xConn) setInputFocusRoot() {
	if xc == nil {
		return
	}
	xproto.SetInputFocusChecked(xc.X.Conn(), xproto.InputFocusPointerRoot, xc.root, xproto.TimeCurrentTime).Check()
}

func (xc *xConn) unmapWindow(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.UnmapWindow(xc.X.Conn(), w)
}

func (xc *xConn) mapWindow(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.MapWindow(xc.X.Conn(), w)
}

func (xc *xConn) reparentToRoot(w xproto.Window) {
	if xc == nil {
		return
	}
	xproto.ReparentWindow(xc.X.Conn(), w, xc.root, 0, 0)
}
