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

// SizeHints mirrors the fields of ICCCM WM_NORMAL_HINTS this WM acts on.
type SizeHints struct {
	baseW, baseH int
	incW, incH   int
	minW, minH   int
	maxW, maxH   int
	minA, maxA   float64
}

// isFixed reports an aspect-fixed client: min == max in both dimensions.
// Such clients are always floating.
func (sh SizeHints) isFixed() bool {
	return sh.maxW > 0 && sh.maxH > 0 && sh.maxW == sh.minW && sh.maxH == sh.minH
}

// oldState is the pre-fullscreen geometry, border width and floating flag,
// saved so fullscreen can be undone cleanly.
type oldState struct {
	x, y, w, h int
	bw         int
	isFloating bool
}

// Client is a managed top-level window.
type Client struct {
	win  xproto.Window
	name string

	x, y, w, h         int
	oldX, oldY         int
	oldW, oldH         int
	bw, oldBW          int

	sizeHints SizeHints

	tags uint32

	isFloating  bool
	isUrgent    bool
	isFullscreen bool
	neverFocus  bool
	saved       oldState

	class, instance string

	mon *Monitor
}

const brokenName = "broken"

// visible reports whether c is part of the current view on its monitor.
func (c *Client) visible() bool {
	return c.tags&c.mon.tagset[c.mon.selTags] != 0
}

// width/height including the border, matching dwm's WIDTH/HEIGHT macros.
func (c *Client) width() int  { return c.w + 2*c.bw }
func (c *Client) height() int { return c.h + 2*c.bw }

// attach prepends c to its monitor's client list.
func attach(c *Client) {
	c.mon.clients = append([]*Client{c}, c.mon.clients...)
}

// detach removes c from its monitor's client list, preserving the relative
// order of the rest.
func detach(c *Client) {
	m := c.mon
	for i, cc := range m.clients {
		if cc == c {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return
		}
	}
}

// attachStack prepends c to its monitor's focus-history stack.
func attachStack(c *Client) {
	c.mon.stack = append([]*Client{c}, c.mon.stack...)
}

// detachStack removes c from its monitor's focus-history stack. If c was
// the selected client, selection advances to the next visible client in the
// stack (or none).
func detachStack(c *Client) {
	m := c.mon
	for i, cc := range m.stack {
		if cc == c {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			break
		}
	}
	if c != m.sel {
		return
	}
	var t *Client
	for _, cc := range m.stack {
		if cc.visible() {
			t = cc
			break
		}
	}
	m.sel = t
}

// winToClient reverse-looks-up a managed client by its X window id across
// all monitors.
func (wm *WM) winToClient(w xproto.Window) *Client {
	for _, m := range wm.mons {
		for _, c := range m.clients {
			if c.win == w {
				return c
			}
		}
	}
	return nil
}

// winToMon reverse-looks-up the monitor owning window w. For the root it
// returns the monitor under the pointer (selMon if that cannot be found);
// otherwise the monitor whose bar window is w, or the monitor of the client
// owning w, and selMon if w is neither.
func (wm *WM) winToMon(w xproto.Window) *Monitor {
	if wm.hasX() && w == wm.x.root {
		if m, ok := wm.pointerMon(); ok {
			return m
		}
		return wm.selMon
	}
	for _, m := range wm.mons {
		if m.barWin == w {
			return m
		}
	}
	if c := wm.winToClient(w); c != nil {
		return c.mon
	}
	return wm.selMon
}

// nextTiled returns, starting at c and moving forward through client order,
// the next client that is visible and not floating.
func nextTiled(c *Client) *Client {
	for ; c != nil; c = c.next() {
		if c.visible() && !c.isFloating {
			return c
		}
	}
	return nil
}

// next returns the client immediately after c in its monitor's client list,
// or nil. Client order is realized as a slice rather than an intrusive
// list, so "next" is a lookup rather than a pointer follow.
func (c *Client) next() *Client {
	m := c.mon
	for i, cc := range m.clients {
		if cc == c {
			if i+1 < len(m.clients) {
				return m.clients[i+1]
			}
			return nil
		}
	}
	return nil
}
