package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(t *testing.T, dec *KeyDecoder, bytes []byte) (Event, DecodeResult) {
	t.Helper()
	var ev Event
	var result DecodeResult
	for _, b := range bytes {
		ev, result = dec.Feed(b)
	}
	return ev, result
}

func TestKeyDecoder_PlainByteIsImmediateEvent(t *testing.T) {
	dec := NewKeyDecoder()
	ev, result := dec.Feed('a')
	require.Equal(t, DecodeEvent, result)
	assert.Equal(t, KeyNone, ev.Code)
	assert.Equal(t, 'a', ev.Ch)
}

func TestKeyDecoder_ArrowKeys(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
		want KeyCode
	}{
		{"up", []byte{0x1b, '[', 'A'}, KeyUp},
		{"down", []byte{0x1b, '[', 'B'}, KeyDown},
		{"right", []byte{0x1b, '[', 'C'}, KeyRight},
		{"left", []byte{0x1b, '[', 'D'}, KeyLeft},
		{"home (H form)", []byte{0x1b, '[', 'H'}, KeyHome},
		{"end (F form)", []byte{0x1b, '[', 'F'}, KeyEnd},
		{"home (SS3)", []byte{0x1b, 'O', 'H'}, KeyHome},
		{"end (SS3)", []byte{0x1b, 'O', 'F'}, KeyEnd},
		{"home (tilde form)", []byte{0x1b, '[', '1', '~'}, KeyHome},
		{"delete", []byte{0x1b, '[', '3', '~'}, KeyDelete},
		{"end (tilde form)", []byte{0x1b, '[', '4', '~'}, KeyEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewKeyDecoder()
			ev, result := feedAll(t, dec, tt.seq)
			require.Equal(t, DecodeEvent, result)
			assert.Equal(t, tt.want, ev.Code)
			assert.False(t, dec.Pending())
		})
	}
}

func TestKeyDecoder_EscIsPendingUntilTimeout(t *testing.T) {
	dec := NewKeyDecoder()
	_, result := dec.Feed(0x1b)
	assert.Equal(t, DecodePending, result)
	assert.True(t, dec.Pending())

	ev, ok := dec.Timeout()
	require.True(t, ok)
	assert.Equal(t, KeyEscape, ev.Code)
	assert.False(t, dec.Pending())
}

func TestKeyDecoder_AltKeyIsEscThenPrintable(t *testing.T) {
	dec := NewKeyDecoder()
	_, result := dec.Feed(0x1b)
	require.Equal(t, DecodePending, result)
	ev, result := dec.Feed('x')
	require.Equal(t, DecodeEvent, result)
	assert.Equal(t, KeyNone, ev.Code)
	assert.Equal(t, 'x', ev.Ch)
}

func TestKeyDecoder_UnrecognizedSequenceIsDiscarded(t *testing.T) {
	dec := NewKeyDecoder()
	dec.Feed(0x1b)
	dec.Feed('[')
	_, result := dec.Feed('Z') // a real final byte, but not one we bind
	assert.Equal(t, DecodeNone, result)
	assert.False(t, dec.Pending())
}

func TestKeyDecoder_TimeoutWithNoPendingBytesIsNoop(t *testing.T) {
	dec := NewKeyDecoder()
	_, ok := dec.Timeout()
	assert.False(t, ok)
}

func TestKeyDecoder_OverlongUnterminatedSequenceIsDiscarded(t *testing.T) {
	dec := NewKeyDecoder()
	dec.Feed(0x1b)
	dec.Feed('[')
	// Seven more bytes push the buffer past the 8-byte cutoff without ever
	// hitting a recognized final byte.
	var result DecodeResult
	for i := 0; i < 7; i++ {
		_, result = dec.Feed('0')
	}
	assert.Equal(t, DecodeNone, result)
	assert.False(t, dec.Pending())
}
