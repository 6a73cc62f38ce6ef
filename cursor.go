package main

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Cursor glyph indices from the X core "cursor" font, used for the minimal
// visual feedback during grabs that move_mouse/resize_mouse describe. No
// text rendering is involved.
const (
	xcLeftPtr = 68
	xcSizing  = 120
	xcFleur   = 52
)

// cursors holds the three cursors this WM creates once at setup: the
// default root cursor, and the move/resize grab cursors.
type cursors struct {
	normal xproto.Cursor
	resize xproto.Cursor
	move   xproto.Cursor
}

// setupCursors creates the cursor set from the X core font and sets the
// root window's default cursor.
func (wm *WM) setupCursors() {
	conn := wm.x.X.Conn()

	font, err := xproto.NewFontId(conn)
	if err != nil {
		return
	}
	if xproto.OpenFontChecked(conn, font, uint16(len("cursor")), "cursor").Check() != nil {
		return
	}

	wm.cursors = cursors{
		normal: newGlyphCursor(conn, font, xcLeftPtr),
		resize: newGlyphCursor(conn, font, xcSizing),
		move:   newGlyphCursor(conn, font, xcFleur),
	}
	xproto.CloseFont(conn, font)

	xproto.ChangeWindowAttributes(conn, wm.x.root, xproto.CwCursor,
		[]uint32{uint32(wm.cursors.normal)})
}

func newGlyphCursor(conn *xgb.Conn, font xproto.Font, glyph uint16) xproto.Cursor {
	id, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0
	}
	xproto.CreateGlyphCursor(conn, id, font, font, glyph, glyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff)
	return id
}
