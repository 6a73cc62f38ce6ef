package main

import (
	"log"
	"os"
	"strings"
)

// checkLocale warns (without failing) when LC_CTYPE names an encoding this
// WM doesn't expect, matching dwm's setlocale(LC_CTYPE, "") check: startup
// continues regardless.
func checkLocale() {
	lc := os.Getenv("LC_CTYPE")
	if lc == "" {
		lc = os.Getenv("LC_ALL")
	}
	if lc == "" {
		lc = os.Getenv("LANG")
	}
	if lc != "" && !strings.Contains(strings.ToUpper(lc), "UTF-8") && !strings.Contains(strings.ToUpper(lc), "UTF8") {
		log.Printf("dwm: warning: no locale support for %q, expect UTF-8 titles to render incorrectly", lc)
	}
}
