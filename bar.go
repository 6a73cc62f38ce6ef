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
	"github.com/jezek/xgbutil/xevent"
	"github.com/jezek/xgbutil/xwindow"
)

const barHeight = 20

// Bar hit-test zone widths. This WM draws no glyphs (status-bar text
// rendering is out of scope), so these are fixed-size boxes rather than
// widths measured from rendered text the way dwm's TEXTW() computes them.
const (
	tagBoxWidth    = barHeight * 2
	layoutBoxWidth = barHeight * 2
	statusBoxWidth = 0
)

// createBarWindow creates m's dock window and publishes the EWMH dock
// properties other clients rely on for correct work-area geometry, the way
// the teacher's NewBar does for its status-bar window — except this WM
// never draws text into it, per spec.md's explicit exclusion of status-bar
// rendering from scope.
func (wm *WM) createBarWindow(m *Monitor) {
	wm.updateBarPos(m)

	win, err := xwindow.Generate(wm.x.X)
	if err != nil {
		return
	}
	win.Create(wm.x.root, m.wx, m.by, m.ww, barHeight, 0)
	m.barWin = win.Id

	_ = ewmh.WmWindowTypeSet(wm.x.X, win.Id, []string{"_NET_WM_WINDOW_TYPE_DOCK"})
	_ = ewmh.WmStateSet(wm.x.X, win.Id, []string{"_NET_WM_STATE_STICKY", "_NET_WM_STATE_ABOVE"})
	_ = ewmh.WmDesktopSet(wm.x.X, win.Id, 0xffffffff)
	_ = ewmh.WmStrutSet(wm.x.X, win.Id, &ewmh.WmStrut{})
	wm.setStrut(m)

	xproto.ChangeWindowAttributes(wm.x.X.Conn(), win.Id, xproto.CwEventMask,
		[]uint32{xproto.EventMaskExposure | xproto.EventMaskButtonPress})

	xevent.ExposeFun(func(X *xgbutil.XUtil, e xevent.ExposeEvent) {
		wm.onExpose(e)
	}).Connect(wm.x.X, win.Id)

	xevent.ButtonPressFun(func(X *xgbutil.XUtil, e xevent.ButtonPressEvent) {
		wm.onButtonPress(e)
	}).Connect(wm.x.X, win.Id)

	if m.showBar {
		wm.x.mapWindow(win.Id)
	}
}

// setStrut publishes a partial strut reserving m's bar strip, so other
// clients' work-area queries exclude it.
func (wm *WM) setStrut(m *Monitor) {
	if m.barWin == 0 {
		return
	}
	strut := &ewmh.WmStrutPartial{}
	if m.showBar {
		if m.topBar {
			strut.Top = uint(barHeight)
			strut.TopStartX, strut.TopEndX = uint(m.mx), uint(m.mx+m.mw)
		} else {
			strut.Bottom = uint(barHeight)
			strut.BottomStartX, strut.BottomEndX = uint(m.mx), uint(m.mx+m.mw)
		}
	}
	_ = ewmh.WmStrutPartialSet(wm.x.X, m.barWin, strut)
}

// updateBarPos recomputes m's window area and bar position from
// mx/my/mw/mh, show_bar and top_bar.
func (wm *WM) updateBarPos(m *Monitor) {
	m.wx = m.mx
	m.ww = m.mw
	m.wy = m.my
	m.wh = m.mh
	if !m.showBar {
		m.by = -barHeight
		return
	}
	m.wh -= barHeight
	if m.topBar {
		m.by = m.wy
		m.wy += barHeight
	} else {
		m.by = m.wy + m.wh
	}
}

// repositionBar moves (and maps/unmaps) m's bar window to match its current
// geometry and visibility, and republishes its strut.
func (wm *WM) repositionBar(m *Monitor) {
	if m.barWin == 0 {
		return
	}
	wm.x.moveResizeWindow(m.barWin, m.wx, m.by, m.ww, barHeight)
	if m.showBar {
		wm.x.mapWindow(m.barWin)
	} else {
		wm.x.unmapWindow(m.barWin)
	}
	wm.setStrut(m)
}

// drawBar is the Expose handler's redraw hook. No text or graphics are
// rendered here (out of scope); geometry/visibility bookkeeping above is
// the whole of this WM's bar responsibility.
func (wm *WM) drawBar(m *Monitor) {
	_ = m
}

// barHitTest classifies an x coordinate inside m's bar into a click zone,
// mirroring dwm's buttonpress: walk the tag boxes left to right, then the
// layout-symbol box, then the window title, reserving nothing for status
// text since this WM never draws any. tagBit is only meaningful when click
// is ClkTagBar.
func barHitTest(m *Monitor, numTags int, x int) (click int, tagBit uint32) {
	bound := 0
	for i := 0; i < numTags; i++ {
		bound += tagBoxWidth
		if x < bound {
			return ClkTagBar, uint32(1) << uint(i)
		}
	}
	if x < bound+layoutBoxWidth {
		return ClkLtSymbol, 0
	}
	// No status text is ever drawn, so there is no reserved zone at the
	// right edge for it to claim; ClkStatusText is reachable only when a
	// future drawBar starts rendering something there.
	if x > m.ww-statusBoxWidth {
		return ClkStatusText, 0
	}
	return ClkWinTitle, 0
}
