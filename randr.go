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
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgbutil/xinerama"
)

// monitorGeom is a physical-head rectangle, RandR's or Xinerama's, reduced
// to plain ints before monitor reconciliation.
type monitorGeom struct {
	x, y, w, h int
}

// updateGeom reconciles wm.mons with the physical outputs currently
// reported by RandR (preferred) or Xinerama (fallback, as the teacher
// uses), growing or shrinking the monitor list and clamping clients whose
// monitor disappeared onto whatever monitor remains.
func (wm *WM) updateGeom() error {
	heads := wm.randrHeads()
	if len(heads) == 0 {
		heads = wm.xineramaHeads()
	}
	if len(heads) == 0 {
		heads = []monitorGeom{{0, 0, wm.sw, wm.sh}}
	}

	dirty := false
	for len(wm.mons) < len(heads) {
		wm.mons = append(wm.mons, wm.createMon())
		dirty = true
	}
	for len(wm.mons) > len(heads) {
		last := wm.mons[len(wm.mons)-1]
		wm.cleanupMon(last)
		dirty = true
	}

	for i, h := range heads {
		m := wm.mons[i]
		if m.num != i || m.mx != h.x || m.my != h.y || m.mw != h.w || m.mh != h.h {
			dirty = true
		}
		m.num = i
		m.mx, m.my, m.mw, m.mh = h.x, h.y, h.w, h.h
		wm.updateBarPos(m)
	}

	if dirty {
		if wm.selMon == nil || !monInList(wm.selMon, wm.mons) {
			if len(wm.mons) > 0 {
				wm.selMon = wm.mons[0]
			}
		}
		for _, m := range wm.mons {
			clients := append([]*Client(nil), m.clients...)
			for _, c := range clients {
				nm := wm.rectToMon(c.x, c.y, c.w, c.h)
				if nm != c.mon {
					detach(c)
					detachStack(c)
					c.mon = nm
					attach(c)
					attachStack(c)
				}
			}
		}
	}
	return nil
}

func monInList(m *Monitor, list []*Monitor) bool {
	for _, mm := range list {
		if mm == m {
			return true
		}
	}
	return false
}

// randrHeads enumerates connected outputs via RandR's GetScreenResources/
// GetOutputInfo/GetCrtcInfo sequence, grounded on the cortile store-root.go
// pattern.
func (wm *WM) randrHeads() []monitorGeom {
	conn := wm.x.X.Conn()
	if err := randr.Init(conn); err != nil {
		return nil
	}
	res, err := randr.GetScreenResources(conn, wm.x.root).Reply()
	if err != nil || res == nil {
		return nil
	}
	var heads []monitorGeom
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, 0).Reply()
		if err != nil || info == nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, 0).Reply()
		if err != nil || crtc == nil || crtc.Width == 0 || crtc.Height == 0 {
			continue
		}
		heads = append(heads, monitorGeom{
			x: int(crtc.X), y: int(crtc.Y),
			w: int(crtc.Width), h: int(crtc.Height),
		})
	}
	return heads
}

// xineramaHeads is the single-call fallback the teacher itself uses
// (xinerama.PhysicalHeads) when RandR reports no usable output.
func (wm *WM) xineramaHeads() []monitorGeom {
	heads, err := xinerama.PhysicalHeads(wm.x.X)
	if err != nil {
		return nil
	}
	out := make([]monitorGeom, 0, len(heads))
	for _, h := range heads {
		out = append(out, monitorGeom{x: h.X(), y: h.Y(), w: h.Width(), h: h.Height()})
	}
	return out
}
