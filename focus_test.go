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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFocusSelectionIsInStackAndVisible checks invariant 2: whenever
// m.sel is non-nil, it is a member of m.stack and currently visible.
func TestFocusSelectionIsInStackAndVisible(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)

	wm.focus(c)

	assert.Equal(t, c, m.sel)
	assert.Contains(t, m.stack, m.sel)
	assert.True(t, m.sel.visible())
}

// TestFocusFallsBackToTopOfStackWhenTargetInvisible checks that focusing an
// invisible (or nil) client falls back to the top visible stack entry
// instead of leaving an invisible client selected.
func TestFocusFallsBackToTopOfStackWhenTargetInvisible(t *testing.T) {
	wm, m := newLayoutWM()
	c1 := mkClient(wm, m, 0)
	c2 := mkClient(wm, m, 0)
	c2.tags = 2 // not on the current view

	wm.focus(c2)

	assert.Equal(t, c1, m.sel)
}

func TestFocusWithNoVisibleClientsSelectsNil(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)
	c.tags = 2

	wm.focus(nil)

	assert.Nil(t, m.sel)
}

func TestUnfocusNilClientIsNoOp(t *testing.T) {
	wm, _ := newLayoutWM()
	assert.NotPanics(t, func() { wm.unfocus(nil, false) })
}

func TestSetUrgentTogglesFlag(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)

	wm.setUrgent(c, true)
	assert.True(t, c.isUrgent)

	wm.setUrgent(c, false)
	assert.False(t, c.isUrgent)
}

func TestFocusStackDirWrapsAndSkipsInvisible(t *testing.T) {
	wm, m := newLayoutWM()
	w1 := mkClient(wm, m, 0)
	w2 := mkClient(wm, m, 0)
	w2.tags = 2 // invisible, must be skipped
	w3 := mkClient(wm, m, 0)
	m.sel = w3

	focusStackDir(wm, 1)

	assert.Equal(t, w1, m.sel)
}
