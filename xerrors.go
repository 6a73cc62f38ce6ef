package main

import "github.com/jezek/xgb/xproto"

// isBenignXError reports whether err is one of the race-condition errors
// this WM expects and swallows silently: a client can vanish between the
// event that named it and the request the handler issues against it.
// reqName is the request that produced err (e.g. "SetInputFocus",
// "ConfigureWindow", "GrabButton").
func isBenignXError(reqName string, err error) bool {
	switch err.(type) {
	case xproto.WindowError:
		return true
	case xproto.MatchError:
		switch reqName {
		case "SetInputFocus", "ConfigureWindow":
			return true
		}
	case xproto.DrawableError:
		switch reqName {
		case "PolyText8", "PolyFillRectangle", "PolySegment", "CopyArea":
			return true
		}
	case xproto.AccessError:
		switch reqName {
		case "GrabButton", "GrabKey":
			return true
		}
	}
	return false
}
