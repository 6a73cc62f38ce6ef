package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newLayoutWM builds a 1000x800 monitor with mfact=0.55, nmaster=1, bw=1 —
// scenario 1 from spec.md's end-to-end scenarios.
func newLayoutWM() (*WM, *Monitor) {
	wm := testWM(9)
	m := wm.mons[0]
	m.mFact = 0.55
	m.nMaster = 1
	m.layouts[0] = &Layout{Symbol: "[]=", Arrange: tile}
	m.selLt = 0
	return wm, m
}

// mkClient appends a new client to m's client list, so client order is
// creation order (the first client made is the master), and pushes it onto
// the top of m's focus stack. attach, by contrast, prepends.
func mkClient(wm *WM, m *Monitor, bw int) *Client {
	c := &Client{mon: m, bw: bw, tags: m.tagset[m.selTags]}
	m.clients = append(m.clients, c)
	attachStack(c)
	return c
}

func TestTileTwoClients(t *testing.T) {
	wm, m := newLayoutWM()
	w1 := mkClient(wm, m, 1)
	w2 := mkClient(wm, m, 1)

	tile(m)

	assert.Equal(t, 0, w1.x)
	assert.Equal(t, 0, w1.y)
	assert.Equal(t, 548, w1.w)
	assert.Equal(t, 798, w1.h)

	assert.Equal(t, 550, w2.x)
	assert.Equal(t, 0, w2.y)
	assert.Equal(t, 448, w2.w)
	assert.Equal(t, 798, w2.h)
}

func TestTileNoClientsNoOp(t *testing.T) {
	_, m := newLayoutWM()
	tile(m) // must not panic with zero clients
}

func TestZoomPromotesNextTiled(t *testing.T) {
	wm, m := newLayoutWM()
	w1 := mkClient(wm, m, 1)
	w2 := mkClient(wm, m, 1)
	m.sel = w2

	tile(m)
	zoom(wm, &Arg{})

	assert.Equal(t, []*Client{w2, w1}, m.clients)
}

func TestMonocleSymbolReflectsCount(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	mkClient(wm, m, 0)
	mkClient(wm, m, 0)

	monocle(m)
	assert.Equal(t, "[2]", m.layoutSymbol)
}

func TestNextTiledSkipsFloating(t *testing.T) {
	wm := testWM(9)
	m := wm.mons[0]
	w1 := mkClient(wm, m, 0)
	w2 := mkClient(wm, m, 0)
	w2.isFloating = true
	w3 := mkClient(wm, m, 0)

	assert.Equal(t, w1, nextTiled(w1))
	assert.Equal(t, w3, nextTiled(w2))
}
