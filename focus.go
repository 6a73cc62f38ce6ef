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
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/mousebind"
)

// focus selects c as the focused client, repainting borders and updating
// input focus as needed. c may be nil: the top visible client of the
// selected monitor's stack is used instead.
func (wm *WM) focus(c *Client) {
	if c == nil || !c.visible() {
		c = nil
		for _, cc := range wm.selMon.stack {
			if cc.visible() {
				c = cc
				break
			}
		}
	}
	if wm.selMon.sel != nil && wm.selMon.sel != c {
		wm.unfocus(wm.selMon.sel, false)
	}
	if c != nil {
		if c.mon != wm.selMon {
			wm.selMon = c.mon
		}
		if c.isUrgent {
			wm.setUrgent(c, false)
		}
		detachStack(c)
		attachStack(c)
		if wm.hasX() {
			wm.grabButtons(c, true)
			wm.x.setBorderColor(c.win, wm.config.SelColor.pixel())
			wm.setFocus(c)
		}
	} else if wm.hasX() {
		wm.x.setInputFocusRoot()
	}
	if wm.hasX() {
		for _, m := range wm.mons {
			for _, cc := range m.clients {
				if cc != c {
					wm.grabButtons(cc, false)
				}
			}
		}
	}
	wm.selMon.sel = c
	wm.updateActiveWindow()
}

// unfocus repaints c with the normal color scheme, ungrabs its focused-
// variant button grabs, and — if setfocus — reverts input focus to root.
func (wm *WM) unfocus(c *Client, setfocus bool) {
	if c == nil || !wm.hasX() {
		return
	}
	wm.grabButtons(c, false)
	wm.x.setBorderColor(c.win, wm.config.NormColor.pixel())
	if setfocus {
		wm.x.setInputFocusRoot()
	}
}

// setFocus sets input focus to c.win (unless it refuses focus) and, if c
// advertises WM_TAKE_FOCUS, sends the synthetic ClientMessage for it.
func (wm *WM) setFocus(c *Client) {
	if !wm.hasX() {
		return
	}
	if !c.neverFocus {
		wm.x.setInputFocus(c.win)
		_ = ewmh.ActiveWindowSet(wm.x.X, c.win)
	}
	wm.sendProtocol(c, atomWMTakeFocus)
}

// updateActiveWindow republishes _NET_ACTIVE_WINDOW from the selected
// monitor's selection.
func (wm *WM) updateActiveWindow() {
	if !wm.hasX() {
		return
	}
	if wm.selMon.sel != nil {
		_ = ewmh.ActiveWindowSet(wm.x.X, wm.selMon.sel.win)
	} else {
		_ = ewmh.ActiveWindowSet(wm.x.X, wm.x.root)
	}
}

// setUrgent sets or clears c's urgency flag and repaints its border when
// setting urgency on an unfocused client.
func (wm *WM) setUrgent(c *Client, urgent bool) {
	c.isUrgent = urgent
	if urgent && wm.selMon.sel != c && wm.hasX() {
		wm.x.setBorderColor(c.win, wm.config.SelColor.pixel())
	}
}

// restack raises the selected floating client above tiled ones, raises the
// bar above all clients, and stacks tiled clients below the bar in stack
// order so redraws are flicker-free. It then makes one synchronous round
// trip (drainEnterNotify); EnterNotify events the restack generated are not
// discarded, and onEnterNotify's mode/detail check is the only filter
// against them.
func (m *Monitor) restack() {
	wm := m.wm
	if !wm.hasX() {
		return
	}
	if m.curLayout() != nil && m.curLayout().Arrange != nil {
		for i := len(m.stack) - 1; i >= 0; i-- {
			c := m.stack[i]
			if !c.isFloating && c.visible() {
				wm.x.raiseWindow(c.win)
			}
		}
	}
	if m.sel != nil && (m.sel.isFloating || m.curLayout() == nil || m.curLayout().Arrange == nil) {
		wm.x.raiseWindow(m.sel.win)
	}
	if m.barWin != 0 {
		wm.x.raiseWindow(m.barWin)
	}
	wm.drainEnterNotify()
}

// focusStackDir moves selection along the client list by dir (+1/-1),
// wrapping and skipping invisible clients, then focuses and restacks.
func focusStackDir(wm *WM, dir int) {
	m := wm.selMon
	if m.sel == nil || len(m.clients) == 0 {
		return
	}
	idx := -1
	for i, c := range m.clients {
		if c == m.sel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	n := len(m.clients)
	for i := 1; i <= n; i++ {
		next := ((idx+dir*i)%n + n) % n
		if m.clients[next].visible() {
			wm.focus(m.clients[next])
			wm.selMon.restack()
			return
		}
	}
}

// grabButtons grabs (or ungrabs+regrabs) the configured button chords on
// c.win: the focused client gets plain button grabs, unfocused clients only
// get the modifier-qualified ones, so a plain click on an unfocused client
// goes to that client and produces no ButtonPress for the WM. The
// ungrab step is scoped to c.win alone — dwm's XUngrabButton(dpy, AnyButton,
// AnyModifier, c->win) only ever touches the one window being regrabbed, so
// that every other client's existing grants survive this client's focus
// change.
func (wm *WM) grabButtons(c *Client, focused bool) {
	if !wm.hasX() {
		return
	}
	for _, b := range wm.config.Buttons {
		if b.Click != ClkClientWin {
			continue
		}
		for _, mod := range wm.modCombos(b.Mod) {
			mousebind.UngrabButton(wm.x.X, c.win, mod, b.Button)
		}
	}
	for _, b := range wm.config.Buttons {
		if b.Click != ClkClientWin {
			continue
		}
		if !focused && b.Mod == 0 {
			continue
		}
		mods := wm.modCombos(b.Mod)
		for _, mod := range mods {
			_ = mousebind.GrabButton(wm.x.X, c.win, mod, b.Button, false)
		}
	}
}

// modCombos expands mod into the four combinations produced by an unknown
// NumLock/CapsLock state, matching dwm's grab-with-every-lock-combination
// behavior.
func (wm *WM) modCombos(mod uint16) []uint16 {
	lock := uint16(xproto.ModMaskLock)
	num := wm.numLockMask
	return []uint16{mod, mod | lock, mod | num, mod | lock | num}
}
