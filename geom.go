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

// Rect is a root-coordinate rectangle with accessors and setters shaped like
// xgbutil/xrect.Rect's. Monitor detection in randr.go does not use it; heads
// are converted into monitorGeom values there.
type Rect struct {
	x, y          int
	width, height int
}

func NewRect(x, y, width, height int) Rect { return Rect{x, y, width, height} }

func (r Rect) X() int      { return r.x }
func (r Rect) Y() int      { return r.y }
func (r Rect) Width() int  { return r.width }
func (r Rect) Height() int { return r.height }

func (r *Rect) XSet(x int)           { r.x = x }
func (r *Rect) YSet(y int)           { r.y = y }
func (r *Rect) WidthSet(w int)       { r.width = w }
func (r *Rect) HeightSet(h int)      { r.height = h }

// intersect returns the clamped overlap area between rect and the monitor's
// window area (wx, wy, ww, wh). Never negative.
func intersect(x, y, w, h int, m *Monitor) int {
	ix := max(0, min(x+w, m.wx+m.ww)-max(x, m.wx))
	iy := max(0, min(y+h, m.wy+m.wh)-max(y, m.wy))
	return ix * iy
}

// rectToMon returns the monitor maximizing intersection with (x,y,w,h).
// Ties are broken by monitor list order (mons is already in list order).
func (wm *WM) rectToMon(x, y, w, h int) *Monitor {
	var best *Monitor
	bestArea := -1
	for _, m := range wm.mons {
		area := intersect(x, y, w, h, m)
		if area > bestArea {
			bestArea = area
			best = m
		}
	}
	if best == nil {
		return wm.selMon
	}
	return best
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// applySizeHints clamps (x,y,w,h) to the monitor bounds (or the whole screen
// when interact is true), enforces minw/minh, snaps to the increment grid,
// honors the aspect ratio bounds and returns true iff the resulting geometry
// differs from the client's current (x,y,w,h). Floating or fullscreen
// clients skip the increment/aspect treatment; only the absolute min/max
// still apply to them.
func applySizeHints(c *Client, x, y, w, h *int, interact bool) bool {
	m := c.mon
	sh := c.sizeHints

	if interact {
		if *x > m.wm.sw {
			*x = m.wm.sw - whTotal(*w, c.bw)
		}
		if *y > m.wm.sh {
			*y = m.wm.sh - whTotal(*h, c.bw)
		}
		if *x+*w+2*c.bw < 0 {
			*x = 0
		}
		if *y+*h+2*c.bw < 0 {
			*y = 0
		}
	} else {
		if *x >= m.wx+m.ww {
			*x = m.wx + m.ww - whTotal(*w, c.bw)
		}
		if *y >= m.wy+m.wh {
			*y = m.wy + m.wh - whTotal(*h, c.bw)
		}
		if *x+*w+2*c.bw <= m.wx {
			*x = m.wx
		}
		if *y+*h+2*c.bw <= m.wy {
			*y = m.wy
		}
	}
	if *h < 1 {
		*h = 1
	}
	if *w < 1 {
		*w = 1
	}

	if (c.isFloating || c.isFullscreen) && !m.wm.config.ResizeHints {
		*w = maxInt(*w, sh.minW)
		*h = maxInt(*h, sh.minH)
		if sh.maxW > 0 {
			*w = min(*w, sh.maxW)
		}
		if sh.maxH > 0 {
			*h = min(*h, sh.maxH)
		}
	} else {
		baseIsMin := sh.baseW == sh.minW && sh.baseH == sh.minH
		if !baseIsMin {
			*w -= sh.baseW
			*h -= sh.baseH
		}
		if sh.minA > 0 && sh.maxA > 0 {
			aspect(w, h, sh)
		}
		if baseIsMin {
			*w -= sh.baseW
			*h -= sh.baseH
		}
		if sh.incW > 0 {
			*w -= *w % sh.incW
		}
		if sh.incH > 0 {
			*h -= *h % sh.incH
		}
		*w = maxInt(*w+sh.baseW, sh.minW)
		*h = maxInt(*h+sh.baseH, sh.minH)
		if sh.maxW > 0 {
			*w = min(*w, sh.maxW)
		}
		if sh.maxH > 0 {
			*h = min(*h, sh.maxH)
		}
	}

	return *x != c.x || *y != c.y || *w != c.w || *h != c.h
}

// aspect adjusts (w, h) in place so minA <= w/h <= maxA, where minA and maxA
// are the width/height ratios updateSizeHints reads from WM_NORMAL_HINTS.
func aspect(w, h *int, sh SizeHints) {
	if sh.maxA < float64(*w)/float64(*h) {
		*w = int(float64(*h) * sh.maxA)
	} else if float64(*w)/float64(*h) < sh.minA {
		*h = int(float64(*w) / sh.minA)
	}
}

func whTotal(v, bw int) int { return v + 2*bw }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
