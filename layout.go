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

import "fmt"

// visibleTiled returns m's tiled (non-floating, visible) clients in client
// order.
func visibleTiled(m *Monitor) []*Client {
	var out []*Client
	for _, c := range m.clients {
		if c.visible() && !c.isFloating {
			out = append(out, c)
		}
	}
	return out
}

// tile arranges clients in a master column and a stack column per the
// tiled-master layout: the first nmaster clients go left at mfact width,
// the rest go right sharing the remainder.
func tile(m *Monitor) {
	cs := visibleTiled(m)
	n := len(cs)
	if n == 0 {
		return
	}

	nmaster := m.nMaster
	if nmaster > n {
		nmaster = n
	}

	mw := m.ww
	if n > nmaster {
		if nmaster > 0 {
			mw = int(float64(m.ww) * m.mFact)
		} else {
			mw = 0
		}
	}

	var my, ty int
	for i, c := range cs {
		if i < nmaster {
			h := (m.wh - my) / (nmaster - i)
			resize(c, m.wx, m.wy+my, mw-2*c.bw, h-2*c.bw, false)
			my += c.height()
		} else {
			h := (m.wh - ty) / (n - i)
			resize(c, m.wx+mw, m.wy+ty, m.ww-mw-2*c.bw, h-2*c.bw, false)
			ty += c.height()
		}
	}
}

// monocle resizes every visible tiled client to the full window area;
// stacking order (not geometry) determines which one is seen.
func monocle(m *Monitor) {
	cs := visibleTiled(m)
	if len(cs) > 0 {
		m.layoutSymbol = fmt.Sprintf("[%d]", len(cs))
	}
	for _, c := range cs {
		resize(c, m.wx, m.wy, m.ww-2*c.bw, m.wh-2*c.bw, false)
	}
}

// resize applies size hints and, iff the resulting geometry differs from
// c's current geometry, issues ConfigureWindow followed by a synthetic
// ConfigureNotify with the final values (in that order, per the ordering
// guarantee in §5).
func resize(c *Client, x, y, w, h int, interact bool) {
	if applySizeHints(c, &x, &y, &w, &h, interact) {
		resizeClient(c, x, y, w, h)
	}
}

// resizeClient unconditionally updates c's stored geometry and issues the
// ConfigureWindow + synthetic ConfigureNotify pair.
func resizeClient(c *Client, x, y, w, h int) {
	c.oldX, c.oldY, c.oldW, c.oldH = c.x, c.y, c.w, c.h
	c.x, c.y, c.w, c.h = x, y, w, h

	wm := c.mon.wm
	wm.x.moveResizeWindow(c.win, x, y, w, h)
	wm.x.configureBorder(c.win, c.bw)
	wm.sendConfigureNotify(c)
}
