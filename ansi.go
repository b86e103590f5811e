package liso

import (
	"strconv"
	"strings"
)

// AddANSIText appends text to the line, interpreting CSI SGR (Select
// Graphic Rendition) escape sequences — "\x1B[" ... "m" — as style and
// color changes, and passing everything else through to AddText
// (including control-character substitution). Malformed or non-SGR CSI
// sequences are emitted as literal text.
func (l *Line) AddANSIText(s string) *Line {
	for len(s) > 0 {
		idx := strings.IndexByte(s, 0x1b)
		if idx < 0 || idx+1 >= len(s) || s[idx+1] != '[' {
			l.AddText(s)
			return l
		}
		if idx > 0 {
			l.AddText(s[:idx])
		}
		rest := s[idx+2:]

		// CSI grammar: parameter bytes 0x30-0x3F, then intermediate bytes
		// 0x20-0x2F, then one final byte 0x40-0x7E.
		i := 0
		for i < len(rest) && rest[i] >= 0x30 && rest[i] <= 0x3f {
			i++
		}
		paramEnd := i
		intermediateStart := i
		for i < len(rest) && rest[i] >= 0x20 && rest[i] <= 0x2f {
			i++
		}
		intermediateEnd := i

		if i >= len(rest) || rest[i] != 'm' || intermediateStart != intermediateEnd {
			// Not a recognized SGR sequence: pass the CSI intro through
			// literally and keep scanning from just past it.
			l.AddText("\x1b[")
			s = rest
			continue
		}
		applySGR(l, rest[:paramEnd])
		s = rest[i+1:]
	}
	return l
}

func applySGR(l *Line, params string) {
	codes := strings.Split(params, ";")
	for i := 0; i < len(codes); i++ {
		code, err := strconv.Atoi(codes[i])
		if err != nil {
			code = 0
		}
		switch code {
		case 0:
			l.SetStyle(Plain)
			l.SetColors(nil, nil)
		case 1:
			l.ActivateStyle(Bold)
		case 2:
			l.ActivateStyle(Dim)
		case 3:
			l.ActivateStyle(Italic)
		case 4:
			l.ActivateStyle(Underline)
		case 7:
			l.ActivateStyle(Inverse)
		case 21:
			l.DeactivateStyle(Bold)
		case 22:
			l.DeactivateStyle(Bold | Dim)
		case 23:
			l.DeactivateStyle(Italic)
		case 24:
			l.DeactivateStyle(Underline)
		case 27:
			l.DeactivateStyle(Inverse)
		case 30, 31, 32, 33, 34, 35, 36, 37:
			c := Color(code - 30)
			l.SetFGColor(&c)
		case 39:
			l.SetFGColor(nil)
		case 40, 41, 42, 43, 44, 45, 46, 47:
			c := Color(code - 40)
			l.SetBGColor(&c)
		case 49:
			l.SetBGColor(nil)
		case 38, 48, 58:
			// Consume and ignore 8-bit (5;n) or RGB (2;r;g;b) arguments.
			if i+1 < len(codes) {
				switch codes[i+1] {
				case "5":
					i += 2
				case "2":
					i += 4
				}
			}
		default:
			// Unknown SGR codes are silently skipped.
		}
	}
}
