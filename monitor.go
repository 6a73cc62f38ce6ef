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

import "github.com/jezek/xgb/xproto"

// Monitor is a logical screen region: its own tag state, layout, bar and
// client/stack lists.
type Monitor struct {
	num int

	mx, my, mw, mh int // screen rect
	wx, wy, ww, wh int // window area (screen minus the bar strip)

	by      int
	showBar bool
	topBar  bool

	tagset  [2]uint32
	selTags int

	selLt       int
	layouts     [2]*Layout
	layoutSymbol string

	mFact   float64
	nMaster int

	clients []*Client
	stack   []*Client
	sel     *Client

	barWin xproto.Window

	wm *WM
}

// createMon builds a monitor with the WM's default layout/tag/mfact
// configuration, ready to be positioned by updateGeom.
func (wm *WM) createMon() *Monitor {
	m := &Monitor{
		wm:      wm,
		showBar: wm.config.ShowBar,
		topBar:  wm.config.TopBar,
		mFact:   wm.config.MFact,
		nMaster: wm.config.NMaster,
		tagset:  [2]uint32{1, 1},
	}
	if len(wm.config.Layouts) > 0 {
		m.layouts[0] = &wm.config.Layouts[0]
	}
	if len(wm.config.Layouts) > 1 {
		m.layouts[1] = &wm.config.Layouts[1]
	}
	if m.layouts[0] != nil {
		m.layoutSymbol = m.layouts[0].Symbol
	}
	return m
}

// cleanupMon removes m from the monitor list, moving its clients to the
// previous monitor in the list (or the next one if m was first).
func (wm *WM) cleanupMon(m *Monitor) {
	idx := -1
	for i, mm := range wm.mons {
		if mm == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wm.mons = append(wm.mons[:idx], wm.mons[idx+1:]...)
	if len(wm.mons) == 0 {
		return
	}
	dest := wm.mons[0]
	if idx > 0 {
		dest = wm.mons[idx-1]
	}
	for _, c := range m.clients {
		c.mon = dest
		attach(c)
		attachStack(c)
	}
}

// curLayout returns the active layout slot, or nil for floating.
func (m *Monitor) curLayout() *Layout {
	return m.layouts[m.selLt]
}

// arrange runs showhide then the active layout's arrange function (if any)
// and restacks m.
func (m *Monitor) arrange() {
	m.showhide()
	if lt := m.curLayout(); lt != nil && lt.Arrange != nil {
		lt.Arrange(m)
	}
	m.restack()
}

// arrangeAll re-arranges every monitor, used after events that can affect
// more than one (root ConfigureNotify, monitor hot-plug).
func (wm *WM) arrangeAll() {
	for _, m := range wm.mons {
		m.arrange()
	}
}

// showhide shows visible clients (top of stack order) from stack-top down,
// hiding everything else, mirroring dwm's recursive showhide.
func (m *Monitor) showhide() {
	shown := make(map[*Client]bool)
	for _, c := range m.stack {
		if c.visible() {
			shown[c] = true
		}
	}
	for _, c := range m.clients {
		if shown[c] {
			m.wm.x.moveWindow(c.win, c.x, c.y)
			if (m.curLayout() == nil || m.curLayout().Arrange == nil) && !c.isFullscreen {
				resize(c, c.x, c.y, c.w, c.h, false)
			}
		} else {
			m.wm.x.moveWindow(c.win, -2*c.width(), c.y)
		}
	}
}

// pointerMon returns the monitor under the current pointer position, used
// by winToMon for root-window events.
func (wm *WM) pointerMon() (*Monitor, bool) {
	x, y, ok := wm.x.queryPointer()
	if !ok {
		return nil, false
	}
	return wm.rectToMon(x, y, 1, 1), true
}

// dirToMon returns the monitor `dir` positions away from the selected
// monitor in the monitor list, wrapping.
func (wm *WM) dirToMon(dir int) *Monitor {
	if len(wm.mons) <= 1 {
		return wm.selMon
	}
	idx := -1
	for i, m := range wm.mons {
		if m == wm.selMon {
			idx = i
			break
		}
	}
	n := len(wm.mons)
	next := ((idx+dir)%n + n) % n
	return wm.mons[next]
}
