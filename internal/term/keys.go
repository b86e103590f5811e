package term

import "time"

// DecodeResult is the outcome of feeding one byte to the escape-sequence
// decoder.
type DecodeResult int

const (
	// DecodePending means the decoder has consumed a byte that might be
	// the start of a longer sequence; the caller should read another byte
	// before EscapeDelay elapses, or call Timeout.
	DecodePending DecodeResult = iota
	// DecodeEvent means Event is populated and ready.
	DecodeEvent
	// DecodeNone means the byte was consumed but produced nothing (part of
	// a sequence the decoder doesn't recognize and has now discarded).
	DecodeNone
)

// KeyDecoder turns a raw byte stream (as read from a terminal in raw mode)
// into Events, recognizing common ANSI/VT100 cursor-key and editing-key
// escape sequences. Bytes that don't start with ESC are reported
// immediately as plain runes; a lone ESC not followed by another byte
// within EscapeDelay is reported as KeyEscape.
type KeyDecoder struct {
	buf []byte
}

// NewKeyDecoder returns a fresh decoder with no pending bytes.
func NewKeyDecoder() *KeyDecoder {
	return &KeyDecoder{}
}

// Feed processes one input byte. When it returns DecodeEvent, ev is valid.
func (k *KeyDecoder) Feed(b byte) (ev Event, result DecodeResult) {
	if len(k.buf) == 0 && b != 0x1b {
		return Event{Code: KeyNone, Ch: rune(b)}, DecodeEvent
	}
	k.buf = append(k.buf, b)
	return k.tryDecode()
}

// Timeout is called when EscapeDelay elapses with bytes still pending; it
// resolves a lone ESC (or an unrecognized partial sequence) to its best
// interpretation and clears the buffer.
func (k *KeyDecoder) Timeout() (ev Event, ok bool) {
	if len(k.buf) == 0 {
		return Event{}, false
	}
	if len(k.buf) == 1 && k.buf[0] == 0x1b {
		k.buf = nil
		return Event{Code: KeyEscape}, true
	}
	k.buf = nil
	return Event{}, false
}

// Deadline returns when a pending partial sequence should be resolved via
// Timeout if no further bytes arrive.
func (k *KeyDecoder) Deadline() time.Time {
	return time.Now().Add(EscapeDelay)
}

// Pending reports whether bytes are buffered awaiting more input.
func (k *KeyDecoder) Pending() bool { return len(k.buf) > 0 }

func (k *KeyDecoder) tryDecode() (Event, DecodeResult) {
	buf := k.buf
	if len(buf) == 1 {
		return Event{}, DecodePending
	}
	if buf[1] != '[' && buf[1] != 'O' {
		// Alt+key: ESC followed directly by a printable byte.
		ch := rune(buf[1])
		k.buf = nil
		return Event{Code: KeyNone, Ch: ch, Ctrl: false}, DecodeEvent
	}
	if len(buf) == 2 {
		return Event{}, DecodePending
	}
	// CSI/SS3 final byte is the first one in A-Z, a-z, or ~.
	final := buf[len(buf)-1]
	isFinal := (final >= 'A' && final <= 'Z') || (final >= 'a' && final <= 'z') || final == '~'
	if !isFinal {
		if len(buf) > 8 {
			k.buf = nil
			return Event{}, DecodeNone
		}
		return Event{}, DecodePending
	}
	defer func() { k.buf = nil }()
	switch {
	case buf[1] == '[' && final == 'A':
		return Event{Code: KeyUp}, DecodeEvent
	case buf[1] == '[' && final == 'B':
		return Event{Code: KeyDown}, DecodeEvent
	case buf[1] == '[' && final == 'C':
		return Event{Code: KeyRight}, DecodeEvent
	case buf[1] == '[' && final == 'D':
		return Event{Code: KeyLeft}, DecodeEvent
	case buf[1] == '[' && final == 'H':
		return Event{Code: KeyHome}, DecodeEvent
	case buf[1] == '[' && final == 'F':
		return Event{Code: KeyEnd}, DecodeEvent
	case buf[1] == 'O' && final == 'H':
		return Event{Code: KeyHome}, DecodeEvent
	case buf[1] == 'O' && final == 'F':
		return Event{Code: KeyEnd}, DecodeEvent
	case buf[1] == '[' && final == '~' && string(buf[2:len(buf)-1]) == "1":
		return Event{Code: KeyHome}, DecodeEvent
	case buf[1] == '[' && final == '~' && string(buf[2:len(buf)-1]) == "3":
		return Event{Code: KeyDelete}, DecodeEvent
	case buf[1] == '[' && final == '~' && string(buf[2:len(buf)-1]) == "4":
		return Event{Code: KeyEnd}, DecodeEvent
	default:
		return Event{}, DecodeNone
	}
}
