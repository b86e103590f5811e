package liso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddANSIText_PlainTextPassesThrough(t *testing.T) {
	l := NewLine()
	l.AddANSIText("hello")
	assert.Equal(t, "hello", l.Text())
	require.Len(t, l.Elements(), 1)
	assert.Equal(t, Plain, l.Elements()[0].Style)
}

func TestAddANSIText_BoldAndColorCodesApply(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[1;31mred bold\x1b[0m plain")

	require.Len(t, l.Elements(), 2)
	first := l.Elements()[0]
	assert.Equal(t, "red bold", l.Text()[first.Start:first.End])
	assert.True(t, first.Style.Contains(Bold))
	require.NotNil(t, first.FG)
	assert.Equal(t, Red, *first.FG)

	second := l.Elements()[1]
	assert.Equal(t, " plain", l.Text()[second.Start:second.End])
	assert.Equal(t, Plain, second.Style)
	assert.Nil(t, second.FG)
}

func TestAddANSIText_BackgroundAndResetSingleColor(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[44mblue bg\x1b[49m")
	// The reset at the very end is kept as an empty trailing element.
	require.Len(t, l.Elements(), 2)
	e := l.Elements()[0]
	require.NotNil(t, e.BG)
	assert.Equal(t, Blue, *e.BG)
	assert.Equal(t, 0, l.Elements()[1].Len())
	assert.Nil(t, l.Elements()[1].BG)
}

func TestAddANSIText_DeactivateNarrowsStyle(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[1;4munderbold\x1b[24mbold only")
	require.Len(t, l.Elements(), 2)
	assert.True(t, l.Elements()[0].Style.Contains(Bold))
	assert.True(t, l.Elements()[0].Style.Contains(Underline))
	assert.True(t, l.Elements()[1].Style.Contains(Bold))
	assert.False(t, l.Elements()[1].Style.Contains(Underline))
}

func TestAddANSIText_Extended256ColorArgsAreSkipped(t *testing.T) {
	l := NewLine()
	// 38;5;N (8-bit) should be consumed without affecting subsequent codes.
	l.AddANSIText("\x1b[38;5;200;1mstill bold")
	require.Len(t, l.Elements(), 1)
	e := l.Elements()[0]
	assert.True(t, e.Style.Contains(Bold))
	assert.Nil(t, e.FG)
}

func TestAddANSIText_ExtendedRGBColorArgsAreSkipped(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[48;2;10;20;30;1mstill bold")
	require.Len(t, l.Elements(), 1)
	assert.True(t, l.Elements()[0].Style.Contains(Bold))
	assert.Nil(t, l.Elements()[0].BG)
}

func TestAddANSIText_UnknownCodeIsIgnored(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[99mtext")
	require.Len(t, l.Elements(), 1)
	assert.Equal(t, Plain, l.Elements()[0].Style)
}

func TestAddANSIText_NonSGRFinalByteIsLiteral(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[2Jcleared")
	// The literal ESC then gets the usual caret substitution.
	assert.Equal(t, "^[[2Jcleared", l.Text())
}

func TestAddANSIText_UnterminatedEscapeIsLiteral(t *testing.T) {
	l := NewLine()
	l.AddANSIText("abc\x1b[31")
	assert.Equal(t, "abc^[[31", l.Text())
}

func TestAddANSIText_MalformedCodeDefaultsToZero(t *testing.T) {
	l := NewLine()
	l.AddANSIText("\x1b[;1mbold")
	require.Len(t, l.Elements(), 1)
	assert.True(t, l.Elements()[0].Style.Contains(Bold))
}
