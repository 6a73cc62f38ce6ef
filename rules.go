package main

import "strings"

// applyRules matches c's class/instance/title against the configured rules
// in order, applying the first match's tags/floating/monitor preset. If no
// rule matches, c keeps the selected monitor's current tag view.
func (wm *WM) applyRules(c *Client) {
	c.tags = 0
	for _, r := range wm.config.Rules {
		if r.Title != "" && !strings.Contains(c.name, r.Title) {
			continue
		}
		if r.Class != "" && r.Class != c.class {
			continue
		}
		if r.Instance != "" && r.Instance != c.instance {
			continue
		}
		c.isFloating = r.IsFloating
		c.tags |= r.Tags

		if r.Monitor >= 0 {
			for _, m := range wm.mons {
				if m.num == r.Monitor {
					c.mon = m
					break
				}
			}
		}
		break
	}
	if c.tags&TAGMASK != 0 {
		c.tags &= TAGMASK
	} else {
		c.tags = c.mon.tagset[c.mon.selTags]
	}
}
