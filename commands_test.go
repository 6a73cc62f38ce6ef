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

// TestViewZeroReturnsToPreviousView exercises view's two-slot toggle: calling
// view(0) flips seltags back to whichever slot held the view active before
// the most recent view call, not the one just switched away from.
func TestViewZeroReturnsToPreviousView(t *testing.T) {
	wm, m := newLayoutWM()
	const tagA, tagB = 1 << 1, 1 << 2

	view(wm, &Arg{UInt: tagA})
	assert.EqualValues(t, tagA, m.tagset[m.selTags])

	view(wm, &Arg{UInt: tagB})
	assert.EqualValues(t, tagB, m.tagset[m.selTags])

	view(wm, &Arg{UInt: 0})
	assert.EqualValues(t, tagA, m.tagset[m.selTags])
}

func TestToggleTagTwiceIsIdentity(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)
	m.sel = c
	orig := c.tags

	toggleTag(wm, &Arg{UInt: 1 << 3})
	assert.NotEqual(t, orig, c.tags)

	toggleTag(wm, &Arg{UInt: 1 << 3})
	assert.Equal(t, orig, c.tags)
}

func TestToggleFloatingTwiceRestoresGeometry(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 1)
	m.sel = c
	m.arrange()
	ox, oy, ow, oh := c.x, c.y, c.w, c.h

	toggleFloating(wm, &Arg{})
	assert.True(t, c.isFloating)

	toggleFloating(wm, &Arg{})
	assert.False(t, c.isFloating)
	assert.Equal(t, ox, c.x)
	assert.Equal(t, oy, c.y)
	assert.Equal(t, ow, c.w)
	assert.Equal(t, oh, c.h)
}

func TestSetMFactRoundTrip(t *testing.T) {
	wm, m := newLayoutWM()
	orig := m.mFact

	setMFact(wm, &Arg{Float: 0.05})
	assert.InDelta(t, orig+0.05, m.mFact, 1e-9)

	setMFact(wm, &Arg{Float: -0.05})
	assert.InDelta(t, orig, m.mFact, 1e-9)
}

func TestSetMFactClampsRatherThanSaturates(t *testing.T) {
	wm, m := newLayoutWM()
	orig := m.mFact

	setMFact(wm, &Arg{Float: -10})
	assert.Equal(t, orig, m.mFact, "out-of-range mfact must be rejected, not clamped to the boundary")
}

func TestTagZeroIsNoOp(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)
	m.sel = c
	orig := c.tags

	tag(wm, &Arg{UInt: 0})
	assert.Equal(t, orig, c.tags)
}

func TestToggleTagEmptyResultIsNoOp(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)
	c.tags = 1
	m.sel = c

	toggleTag(wm, &Arg{UInt: 1})
	assert.EqualValues(t, 1, c.tags)
}

func TestToggleViewEmptyResultIsNoOp(t *testing.T) {
	wm, m := newLayoutWM()
	m.tagset[m.selTags] = 1

	toggleView(wm, &Arg{UInt: 1})
	assert.EqualValues(t, 1, m.tagset[m.selTags])
}

func TestKillClientNoSelectionIsNoOp(t *testing.T) {
	wm, m := newLayoutWM()
	m.sel = nil

	assert.NotPanics(t, func() { killClient(wm, &Arg{}) })
}

func TestFocusStackOneClientUnchanged(t *testing.T) {
	wm, m := newLayoutWM()
	c := mkClient(wm, m, 0)
	m.sel = c

	focusStackDir(wm, 1)
	assert.Equal(t, c, m.sel)
}

func TestIncNMasterClampsAtZero(t *testing.T) {
	wm, m := newLayoutWM()
	m.nMaster = 1

	incNMaster(wm, &Arg{Int: -5})
	assert.Equal(t, 0, m.nMaster)
}
