package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testWM(tags int) *WM {
	TAGMASK = tagMask(tags)
	cfg := DefaultConfig()
	wm := &WM{config: cfg, sw: 1000, sh: 800}
	m := wm.createMon()
	m.mx, m.my, m.mw, m.mh = 0, 0, 1000, 800
	m.wx, m.wy, m.ww, m.wh = 0, 0, 1000, 800
	m.tagset = [2]uint32{1, 1}
	wm.mons = []*Monitor{m}
	wm.selMon = m
	return wm
}

func newTestClient(wm *WM, m *Monitor, bw int) *Client {
	c := &Client{mon: m, bw: bw, tags: m.tagset[m.selTags]}
	attach(c)
	attachStack(c)
	return c
}

func TestIntersect(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]

	assert.Equal(t, 1000*800, intersect(0, 0, 1000, 800, m))
	assert.Equal(t, 0, intersect(1000, 0, 100, 100, m))
	assert.Equal(t, 50*50, intersect(-50, -50, 100, 100, m))
}

func TestRectToMon(t *testing.T) {
	wm := testWM(9)
	m2 := wm.createMon()
	m2.mx, m2.my, m2.mw, m2.mh = 1000, 0, 1000, 800
	m2.wx, m2.wy, m2.ww, m2.wh = 1000, 0, 1000, 800
	wm.mons = append(wm.mons, m2)

	got := wm.rectToMon(1100, 0, 200, 200)
	assert.Equal(t, m2, got)

	got = wm.rectToMon(0, 0, 200, 200)
	assert.Equal(t, wm.mons[0], got)
}

func TestApplySizeHintsMinMax(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 1)
	c.sizeHints = SizeHints{minW: 50, minH: 40, maxW: 400, maxH: 300}
	c.x, c.y, c.w, c.h = 0, 0, 10, 10

	x, y, w, h := 0, 0, 10, 10
	changed := applySizeHints(c, &x, &y, &w, &h, false)
	assert.True(t, changed)
	assert.Equal(t, 50, w)
	assert.Equal(t, 40, h)
}

func TestApplySizeHintsFloatingSkipsIncrement(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)
	c.isFloating = true
	c.sizeHints = SizeHints{minW: 10, minH: 10, incW: 16, incH: 16, baseW: 2, baseH: 2}
	c.x, c.y, c.w, c.h = 0, 0, 100, 100

	x, y, w, h := 0, 0, 101, 103
	applySizeHints(c, &x, &y, &w, &h, false)
	// floating clients are not snapped to the increment grid by default
	assert.Equal(t, 101, w)
	assert.Equal(t, 103, h)
}

func TestApplySizeHintsTiledSnapsToIncrement(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)
	c.sizeHints = SizeHints{minW: 10, minH: 10, incW: 10, incH: 10, baseW: 0, baseH: 0}
	c.x, c.y, c.w, c.h = 0, 0, 100, 100

	x, y, w, h := 0, 0, 107, 113
	applySizeHints(c, &x, &y, &w, &h, false)
	assert.Equal(t, 100, w)
	assert.Equal(t, 110, h)
}

func TestApplySizeHintsFullscreenAbsoluteOnly(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	c := newTestClient(wm, m, 0)
	c.isFullscreen = true
	c.sizeHints = SizeHints{minW: 5, minH: 5, maxW: 900, maxH: 700}

	x, y, w, h := 0, 0, 1000, 800
	applySizeHints(c, &x, &y, &w, &h, false)
	assert.Equal(t, 900, w)
	assert.Equal(t, 700, h)
}
