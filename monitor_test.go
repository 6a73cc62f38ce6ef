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

// TestTileMasterStackHeightsFillWindowArea checks invariant 5: the master
// and stack columns each cover the full window height and never overlap.
func TestTileMasterStackHeightsFillWindowArea(t *testing.T) {
	wm, m := newLayoutWM()
	m.nMaster = 2
	w1 := mkClient(wm, m, 0)
	w2 := mkClient(wm, m, 0)
	w3 := mkClient(wm, m, 0)
	w4 := mkClient(wm, m, 0)

	tile(m)

	master := []*Client{w1, w2}
	stack := []*Client{w3, w4}

	masterHeight := 0
	for _, c := range master {
		masterHeight += c.height()
	}
	stackHeight := 0
	for _, c := range stack {
		stackHeight += c.height()
	}
	assert.Equal(t, m.wh, masterHeight)
	assert.Equal(t, m.wh, stackHeight)

	for _, c := range master {
		assert.True(t, c.x+c.width() <= m.wx+int(float64(m.ww)*m.mFact)+1)
	}
	for _, c := range stack {
		assert.True(t, c.x >= m.wx+int(float64(m.ww)*m.mFact)-1)
	}
}

// TestTileClientsStayWithinWindowArea checks invariant 5's bounding clause:
// no tiled client's rectangle extends outside (wx, wy, ww, wh).
func TestTileClientsStayWithinWindowArea(t *testing.T) {
	wm, m := newLayoutWM()
	mkClient(wm, m, 1)
	mkClient(wm, m, 1)
	mkClient(wm, m, 1)

	tile(m)

	for _, c := range m.clients {
		assert.GreaterOrEqual(t, c.x, m.wx)
		assert.GreaterOrEqual(t, c.y, m.wy)
		assert.LessOrEqual(t, c.x+c.width(), m.wx+m.ww)
		assert.LessOrEqual(t, c.y+c.height(), m.wy+m.wh)
	}
}

func TestCleanupMonMovesClientsToSurvivingMonitor(t *testing.T) {
	wm, m1 := newLayoutWM()
	m2 := wm.createMon()
	m2.mx, m2.my, m2.mw, m2.mh = 1000, 0, 1000, 800
	m2.wx, m2.wy, m2.ww, m2.wh = 1000, 0, 1000, 800
	wm.mons = append(wm.mons, m2)

	c := mkClient(wm, m2, 0)
	assert.Equal(t, m2, c.mon)

	wm.cleanupMon(m2)

	assert.Equal(t, []*Monitor{m1}, wm.mons)
	assert.Equal(t, m1, c.mon)
	assert.Contains(t, m1.clients, c)
}

func TestDirToMonWrapsAroundList(t *testing.T) {
	wm, m1 := newLayoutWM()
	m2 := wm.createMon()
	wm.mons = append(wm.mons, m2)
	wm.selMon = m1

	assert.Equal(t, m2, wm.dirToMon(1))
	assert.Equal(t, m2, wm.dirToMon(-1))

	wm.selMon = m2
	assert.Equal(t, m1, wm.dirToMon(1))
}

func TestDirToMonSingleMonitorIsNoOp(t *testing.T) {
	wm, m := newLayoutWM()
	assert.Equal(t, m, wm.dirToMon(1))
	assert.Equal(t, m, wm.dirToMon(-1))
}
