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

func TestApplyRulesMatchesClassAndSetsFloatingAndTags(t *testing.T) {
	wm := testWM(9)
	wm.config.Rules = []Rule{
		{Class: "Gimp", IsFloating: true, Tags: 1 << 3, Monitor: -1},
	}
	m := wm.mons[0]
	c := &Client{mon: m, class: "Gimp", instance: "gimp"}

	wm.applyRules(c)

	assert.True(t, c.isFloating)
	assert.EqualValues(t, 1<<3, c.tags)
}

func TestApplyRulesNoMatchKeepsCurrentView(t *testing.T) {
	wm := testWM(9)
	wm.config.Rules = []Rule{
		{Class: "Gimp", Tags: 1 << 3, Monitor: -1},
	}
	m := wm.mons[0]
	m.tagset[m.selTags] = 1 << 5
	c := &Client{mon: m, class: "xterm"}

	wm.applyRules(c)

	assert.False(t, c.isFloating)
	assert.EqualValues(t, 1<<5, c.tags)
}

func TestApplyRulesMatchesOnTitleSubstring(t *testing.T) {
	wm := testWM(9)
	wm.config.Rules = []Rule{
		{Title: "Firefox", Tags: 1 << 2, Monitor: -1},
	}
	m := wm.mons[0]
	c := &Client{mon: m, name: "Mozilla Firefox - example.com"}

	wm.applyRules(c)

	assert.EqualValues(t, 1<<2, c.tags)
}

func TestApplyRulesOutOfMaskTagsFallBackToCurrentView(t *testing.T) {
	wm := testWM(9)
	// rule's tag bit lands outside TAGMASK for a 9-tag config
	wm.config.Rules = []Rule{
		{Class: "X", Tags: 1 << 20, Monitor: -1},
	}
	m := wm.mons[0]
	m.tagset[m.selTags] = 1 << 4
	c := &Client{mon: m, class: "X"}

	wm.applyRules(c)

	assert.EqualValues(t, 1<<4, c.tags)
}

func TestApplyRulesAssignsTargetMonitor(t *testing.T) {
	wm := testWM(9)
	m2 := wm.createMon()
	m2.num = 1
	wm.mons = append(wm.mons, m2)
	wm.config.Rules = []Rule{
		{Class: "Term", Tags: 1 << 1, Monitor: 1},
	}
	c := &Client{mon: wm.mons[0], class: "Term"}

	wm.applyRules(c)

	assert.Equal(t, m2, c.mon)
}
