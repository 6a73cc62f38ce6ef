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

func countOccurrences(cs []*Client, c *Client) int {
	n := 0
	for _, cc := range cs {
		if cc == c {
			n++
		}
	}
	return n
}

func TestAttachDetachExactlyOnce(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)

	assert.Equal(t, 1, countOccurrences(m.clients, c))
	assert.Equal(t, 1, countOccurrences(m.stack, c))

	detach(c)
	detachStack(c)
	assert.Equal(t, 0, countOccurrences(m.clients, c))
	assert.Equal(t, 0, countOccurrences(m.stack, c))

	attach(c)
	attachStack(c)
	assert.Equal(t, 1, countOccurrences(m.clients, c))
	assert.Equal(t, 1, countOccurrences(m.stack, c))
}

func TestAttachPrependsToClientList(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := newTestClient(wm, m, 0)
	w2 := newTestClient(wm, m, 0)

	assert.Equal(t, []*Client{w2, w1}, m.clients)
	assert.Equal(t, []*Client{w2, w1}, m.stack)
}

func TestDetachStackAdvancesSelection(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := newTestClient(wm, m, 0)
	w2 := newTestClient(wm, m, 0)
	m.sel = w2

	detachStack(w2)

	assert.Equal(t, w1, m.sel)
}

func TestDetachStackSkipsInvisibleOnAdvance(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := newTestClient(wm, m, 0)
	w2 := newTestClient(wm, m, 0)
	w2.tags = 2 // not on the selected tag; must be skipped
	w3 := newTestClient(wm, m, 0)
	m.sel = w3

	detachStack(w3)

	// stack order after removing w3 is [w2, w1]; w2 is invisible so
	// selection must advance past it to w1.
	assert.Equal(t, w1, m.sel)
}

func TestDetachStackLeavesSelectionWhenNotSelected(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := newTestClient(wm, m, 0)
	w2 := newTestClient(wm, m, 0)
	m.sel = w1

	detachStack(w2)

	assert.Equal(t, w1, m.sel)
}

func TestWinToClient(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)
	c.win = 42

	assert.Equal(t, c, wm.winToClient(42))
	assert.Nil(t, wm.winToClient(99))
}

func TestNextWalksClientOrder(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := newTestClient(wm, m, 0)
	w2 := newTestClient(wm, m, 0)
	// attach prepends, so client order is [w2, w1]
	assert.Equal(t, w1, w2.next())
	assert.Nil(t, w1.next())
}

func TestVisibleRespectsSelectedTags(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)

	assert.True(t, c.visible())
	c.tags = 2
	assert.False(t, c.visible())
}
