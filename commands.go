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
	"os"
	"os/exec"
	"syscall"

	"github.com/jezek/xgb/xproto"
)

// view switches sel_tags to the given tagmask; tagmask == 0 means "flip
// back to the previous view" (view(A);view(B);view(0) returns to A).
func view(wm *WM, arg *Arg) {
	m := wm.selMon
	if arg.UInt&TAGMASK == m.tagset[m.selTags] {
		return
	}
	m.selTags ^= 1
	if arg.UInt != 0 {
		m.tagset[m.selTags] = arg.UInt & TAGMASK
	}
	wm.focus(nil)
	m.arrange()
}

// toggleView XORs the given tagmask into the live view; rejected if the
// result would be empty.
func toggleView(wm *WM, arg *Arg) {
	m := wm.selMon
	newTags := m.tagset[m.selTags] ^ (arg.UInt & TAGMASK)
	if newTags == 0 {
		return
	}
	m.tagset[m.selTags] = newTags
	wm.focus(nil)
	m.arrange()
}

// tag reassigns the selected client's tags; rejected if there is no
// selection or the masked value is empty.
func tag(wm *WM, arg *Arg) {
	c := wm.selMon.sel
	if c == nil || arg.UInt&TAGMASK == 0 {
		return
	}
	c.tags = arg.UInt & TAGMASK
	wm.focus(nil)
	wm.selMon.arrange()
}

// toggleTag XORs into the selected client's tags; rejected if empty or no
// selection.
func toggleTag(wm *WM, arg *Arg) {
	c := wm.selMon.sel
	if c == nil {
		return
	}
	newTags := c.tags ^ (arg.UInt & TAGMASK)
	if newTags == 0 {
		return
	}
	c.tags = newTags
	wm.focus(nil)
	wm.selMon.arrange()
}

// focusStackCmd moves selection by arg.Int (+1/-1) along the client list.
func focusStackCmd(wm *WM, arg *Arg) {
	focusStackDir(wm, arg.Int)
}

// focusMon moves the selected monitor by arg.Int positions, wrapping, and
// focuses its current selection.
func focusMon(wm *WM, arg *Arg) {
	m := wm.dirToMon(arg.Int)
	if m == wm.selMon {
		return
	}
	wm.unfocus(wm.selMon.sel, false)
	wm.selMon = m
	wm.focus(nil)
}

// tagMon moves the selected client to the monitor arg.Int positions away.
func tagMon(wm *WM, arg *Arg) {
	c := wm.selMon.sel
	if c == nil || len(wm.mons) < 2 {
		return
	}
	dest := wm.dirToMon(arg.Int)
	if dest == c.mon {
		return
	}
	detach(c)
	detachStack(c)
	oldMon := c.mon
	c.mon = dest
	c.tags = dest.tagset[dest.selTags]
	attach(c)
	attachStack(c)
	wm.focus(nil)
	oldMon.arrange()
	dest.arrange()
}

// zoom promotes the selection to master: if it already is master, the next
// tiled client is promoted instead.
func zoom(wm *WM, _ *Arg) {
	m := wm.selMon
	c := m.sel
	if c == nil || c.isFloating {
		return
	}
	if lt := m.curLayout(); lt == nil || lt.Arrange == nil {
		return
	}
	if c == nextTiled(firstClient(m)) {
		c = nextTiled(c.next())
		if c == nil {
			return
		}
	}
	detach(c)
	attach(c)
	wm.focus(c)
	m.arrange()
}

func firstClient(m *Monitor) *Client {
	if len(m.clients) == 0 {
		return nil
	}
	return m.clients[0]
}

// setLayout toggles or sets the active layout slot and re-arranges.
// arg.Int < 0 toggles sel_lt; otherwise it names a layout table index.
func setLayout(wm *WM, arg *Arg) {
	m := wm.selMon
	if arg.Int < 0 {
		m.selLt ^= 1
	} else if arg.Int < len(wm.config.Layouts) {
		m.layouts[m.selLt] = &wm.config.Layouts[arg.Int]
	}
	if m.layouts[m.selLt] != nil {
		m.layoutSymbol = m.layouts[m.selLt].Symbol
	}
	if m.sel != nil {
		m.arrange()
	}
}

// setMFact adjusts mfact: values >= 1.0 are absolute (interpreted as
// delta-1.0), else relative; clamped to [0.05, 0.95].
func setMFact(wm *WM, arg *Arg) {
	m := wm.selMon
	if m.curLayout() == nil || m.curLayout().Arrange == nil {
		return
	}
	f := arg.Float
	if f >= 1.0 {
		f = f - 1.0
	} else {
		f = f + m.mFact
	}
	if f < 0.05 || f > 0.95 {
		return
	}
	m.mFact = f
	m.arrange()
}

// incNMaster adjusts nmaster (clamped at 0), re-arranging the tile layout.
func incNMaster(wm *WM, arg *Arg) {
	m := wm.selMon
	m.nMaster = maxInt(m.nMaster+arg.Int, 0)
	m.arrange()
}

// toggleFloating flips the selection's floating flag. Fixed-aspect clients
// are always floating and ignore this. On transition to floating the
// client is resized to its stored geometry.
func toggleFloating(wm *WM, _ *Arg) {
	c := wm.selMon.sel
	if c == nil || c.isFullscreen {
		return
	}
	if c.sizeHints.isFixed() {
		return
	}
	c.isFloating = !c.isFloating
	if c.isFloating {
		resize(c, c.x, c.y, c.w, c.h, false)
	}
	wm.selMon.arrange()
}

// toggleBar flips bar visibility and adjusts the monitor's window area.
func toggleBar(wm *WM, _ *Arg) {
	m := wm.selMon
	m.showBar = !m.showBar
	wm.updateBarPos(m)
	wm.repositionBar(m)
	m.arrange()
}

// killClient politely asks a WM_DELETE_WINDOW-supporting client to close,
// or forcibly kills its connection otherwise. No-op with no selection.
func killClient(wm *WM, _ *Arg) {
	c := wm.selMon.sel
	if c == nil {
		return
	}
	if !wm.sendProtocol(c, atomWMDeleteWindow) {
		wm.x.killClientWindow(c.win)
	}
}

// spawn starts argv in a new session (setsid). The child does not inherit
// the WM's X socket: os/exec passes on only stdin/stdout/stderr, and Go
// opens its descriptors close-on-exec.
func spawn(wm *WM, arg *Arg) {
	if len(arg.V) == 0 {
		return
	}
	cmd := exec.Command(arg.V[0], arg.V[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	if err := cmd.Start(); err != nil {
		log.Printf("dwm: spawn %v failed: %v", arg.V, err)
		return
	}
	go func() { _ = cmd.Wait() }()
}

// moveMouse grabs the pointer and tracks motion, moving the client (made
// floating if it was tiled; it stays floating afterwards) until button
// release, snapping
// edges within SnapThreshold pixels of the window-area boundary.
func moveMouse(wm *WM, _ *Arg) {
	c := wm.selMon.sel
	if c == nil || c.isFullscreen {
		return
	}
	ocx, ocy := c.x, c.y
	startX, startY, ok := wm.x.queryPointer()
	if !ok {
		return
	}
	if !c.isFloating {
		c.isFloating = true
		wm.selMon.arrange()
	}
	wm.trackPointer(wm.cursors.move, func(x, y int) {
		nx := ocx + (x - startX)
		ny := ocy + (y - startY)
		nx, ny = snap(wm.selMon, nx, ny, c.w, c.h, wm.config.SnapThreshold)
		resize(c, nx, ny, c.w, c.h, true)
	})
}

// resizeMouse grabs the pointer and tracks motion, resizing the client from
// its top-left corner until button release.
func resizeMouse(wm *WM, _ *Arg) {
	c := wm.selMon.sel
	if c == nil || c.isFullscreen {
		return
	}
	startX, startY, ok := wm.x.queryPointer()
	if !ok {
		return
	}
	ow, oh := c.w, c.h
	if !c.isFloating {
		c.isFloating = true
		wm.selMon.arrange()
	}
	wm.trackPointer(wm.cursors.resize, func(x, y int) {
		nw := maxInt(ow+(x-startX), 1)
		nh := maxInt(oh+(y-startY), 1)
		resize(c, c.x, c.y, nw, nh, true)
	})
}

// snap clamps (x, y) to the window-area boundary when within threshold
// pixels of it, matching move_mouse's edge-snap behavior.
func snap(m *Monitor, x, y, w, h, threshold int) (int, int) {
	if abs(x-m.wx) < threshold {
		x = m.wx
	} else if abs((m.wx+m.ww)-(x+w)) < threshold {
		x = m.wx + m.ww - w
	}
	if abs(y-m.wy) < threshold {
		y = m.wy
	} else if abs((m.wy+m.wh)-(y+h)) < threshold {
		y = m.wy + m.wh - h
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// trackPointer grabs the pointer and runs its own nested event pump, the
// only other suspension point besides next_event per §5, calling onMove for
// every MotionNotify until the grabbed button is released. cursor is
// displayed for the duration of the grab (the move or resize glyph).
func (wm *WM) trackPointer(cursor xproto.Cursor, onMove func(x, y int)) {
	err := xproto.GrabPointerChecked(wm.x.X.Conn(), false, wm.x.root,
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		0, cursor, xproto.TimeCurrentTime).Check()
	if err != nil {
		return
	}
	defer xproto.UngrabPointer(wm.x.X.Conn(), xproto.TimeCurrentTime)

	for {
		ev, xerr := wm.x.X.Conn().WaitForEvent()
		if xerr != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			onMove(int(e.RootX), int(e.RootY))
		case xproto.ButtonReleaseEvent:
			return
		}
	}
}

// exitCleanly runs cleanup, restoring the X server to a state another WM
// can take over, and exits the process with code. main does not use it; it
// calls cleanup directly after run() returns.
func exitCleanly(wm *WM, code int) {
	wm.cleanup()
	os.Exit(code)
}
