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
	"github.com/jezek/xgbutil/xgraphics"
)

// TAGMASK is derived from the configured tag count. numTags must never
// exceed 31; enforced in init().
var TAGMASK uint32

const maxTags = 31

// Arg carries the single typed argument a bound action receives. Exactly one
// field is meaningful per action; which one is documented at each action
// function.
type Arg struct {
	UInt  uint32
	Int   int
	Float float64
	V     []string
}

// Layout names an arrangement function. A nil Arrange means floating: no
// automatic placement.
type Layout struct {
	Symbol  string
	Arrange func(m *Monitor)
}

// Rule is a compile-time pattern matched against a new client's class,
// instance and title to preset tags, floating state and target monitor. An
// empty string field matches anything; Monitor < 0 means "don't force a
// monitor".
type Rule struct {
	Class      string
	Instance   string
	Title      string
	Tags       uint32
	IsFloating bool
	Monitor    int
}

// Key is a grabbed key chord: Mod+Keysym invokes Action(Arg).
type Key struct {
	Mod    uint16
	Keysym uint32
	Action func(wm *WM, arg *Arg)
	Arg    Arg
}

// Button is a grabbed pointer chord, scoped to a click location the way
// dwm's ButtonPress handler classifies clicks (title bar, tag area, client
// area, root).
type Button struct {
	Click  int
	Mod    uint16
	Button xproto.Button
	Action func(wm *WM, arg *Arg)
	Arg    Arg
}

// Click location identifiers, matching the ButtonPress classification in
// the event dispatcher.
const (
	ClkTagBar = iota
	ClkLtSymbol
	ClkStatusText
	ClkWinTitle
	ClkClientWin
	ClkRootWin
)

// ColorScheme holds the border color repainted on focus transitions (normal
// vs. selected), the supplemented behavior recovered from the non-skeleton
// dwm's SchemeNorm/SchemeSel. Border is parsed the way the teacher's bar
// parses {CF/{CB color escapes, through xgraphics.BGRA, rather than as a
// bare pixel value.
type ColorScheme struct {
	Border *xgraphics.BGRA
}

// pixel repacks Border into the 0xRRGGBB value ChangeWindowAttributes wants
// for CwBorderPixel; alpha has no meaning for a border pixel and is dropped.
func (s ColorScheme) pixel() uint32 {
	if s.Border == nil {
		return 0
	}
	return uint32(s.Border.R)<<16 | uint32(s.Border.G)<<8 | uint32(s.Border.B)
}

// newBGRA parses a 0xRRGGBB color the way the teacher's NewBGRA parses its
// 0xAARRGGBB bar-text colors, minus the alpha channel this WM has no use for.
func newBGRA(color uint32) *xgraphics.BGRA {
	r := uint8((color & 0x00ff0000) >> 16)
	g := uint8((color & 0x0000ff00) >> 8)
	b := uint8(color & 0x000000ff)
	return &xgraphics.BGRA{B: b, G: g, R: r, A: 0xff}
}

// Config is built once at process start from CLI flags plus the compiled-in
// defaults below; it replaces dwm's config.h with a typed Go value.
type Config struct {
	Tags    []string
	Rules   []Rule
	Layouts []Layout
	Keys    []Key
	Buttons []Button

	BorderWidth   int
	SnapThreshold int
	ShowBar       bool
	TopBar        bool
	MFact         float64
	NMaster       int
	ResizeHints   bool // when true, floating/fullscreen clients also snap to increment/aspect hints

	NormColor ColorScheme
	SelColor  ColorScheme

	Fonts []string

	WMName string

	Terminal []string
}

// DefaultConfig returns the compiled-in configuration: nine tags, the three
// shipped layouts (tile, monocle, floating), and a minimal but usable set of
// key/button bindings. Callers may override individual fields (e.g. from
// CLI flags) before passing the Config to NewWM.
func DefaultConfig() Config {
	cfg := Config{
		Tags:          []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		BorderWidth:   1,
		SnapThreshold: 32,
		ShowBar:       true,
		TopBar:        true,
		MFact:         0.55,
		NMaster:       1,
		ResizeHints:   false,
		NormColor:     ColorScheme{Border: newBGRA(0x444444)},
		SelColor:      ColorScheme{Border: newBGRA(0x005577)},
		WMName:        "dwm",
		Terminal:      []string{"st"},
	}
	cfg.Layouts = []Layout{
		{Symbol: "[]=", Arrange: tile},
		{Symbol: "[M]", Arrange: monocle},
		{Symbol: "><>", Arrange: nil},
	}
	cfg.Keys = defaultKeys(cfg)
	cfg.Buttons = defaultButtons()
	return cfg
}

func defaultButtons() []Button {
	return []Button{
		{Click: ClkLtSymbol, Button: xproto.ButtonIndex1, Action: setLayout, Arg: Arg{}},
		{Click: ClkWinTitle, Button: xproto.ButtonIndex2, Action: zoom},
		{Click: ClkClientWin, Mod: ModKey, Button: xproto.ButtonIndex1, Action: moveMouse},
		{Click: ClkClientWin, Mod: ModKey, Button: xproto.ButtonIndex2, Action: toggleFloating},
		{Click: ClkClientWin, Mod: ModKey, Button: xproto.ButtonIndex3, Action: resizeMouse},
		{Click: ClkTagBar, Button: xproto.ButtonIndex1, Action: view},
		{Click: ClkTagBar, Button: xproto.ButtonIndex3, Action: toggleView},
		{Click: ClkTagBar, Mod: ModKey, Button: xproto.ButtonIndex1, Action: tag},
		{Click: ClkTagBar, Mod: ModKey, Button: xproto.ButtonIndex3, Action: toggleTag},
	}
}

func init() {
	// A conservative static check mirroring dwm's TAGMASK compile-time
	// assertion, applied to the compiled-in default tag count. Configs
	// built with more tags than maxTags are rejected at NewWM time too.
	if len(DefaultConfig().Tags) > maxTags {
		panic("dwm: too many tags in default config")
	}
}

func tagMask(numTags int) uint32 {
	return uint32(1)<<uint(numTags) - 1
}
