package liso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutput() *Output {
	return &Output{reqs: make(chan Request, 64)}
}

func TestEditorHandleEvent_BasicInsertAndMove(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()

	e.HandleEvent(Event{Code: KeyNone, Ch: 'h'}, out)
	e.HandleEvent(Event{Code: KeyNone, Ch: 'i'}, out)
	assert.Equal(t, "hi", e.input)
	assert.Equal(t, 2, e.inputCursor)

	e.HandleEvent(Event{Code: KeyLeft}, out)
	assert.Equal(t, 1, e.inputCursor)
	e.HandleEvent(Event{Code: KeyHome}, out)
	assert.Equal(t, 0, e.inputCursor)
	e.HandleEvent(Event{Code: KeyEnd}, out)
	assert.Equal(t, 2, e.inputCursor)
}

func TestEditorHandleEvent_EnterCommitsAndResets(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	for _, r := range "hello" {
		e.HandleEvent(Event{Code: KeyNone, Ch: r}, out)
	}
	resp := e.HandleEvent(Event{Code: KeyEnter}, out)
	require.NotNil(t, resp)
	assert.Equal(t, Input, resp.Kind)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, "", e.input)
	assert.Equal(t, 0, e.inputCursor)
}

func TestEditorHandleRune_ControlCharacterResponses(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		kind ResponseKind
	}{
		{"ctrl-c quits", 0x03, Quit},
		{"ctrl-t requests info", 0x14, Info},
		{"ctrl-x swaps", 0x18, Swap},
		{"ctrl-backslash breaks", 0x1c, Break},
		{"escape", 0x1b, Escape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditorState()
			out := newTestOutput()
			resp := e.handleRune(tt.r, out)
			require.NotNil(t, resp)
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestEditorHandleRune_CtrlDFinishesOnlyWhenEmpty(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()

	resp := e.handleRune(0x04, out)
	require.NotNil(t, resp)
	assert.Equal(t, Finish, resp.Kind)

	e.insertChar('x')
	resp = e.handleRune(0x04, out)
	assert.Nil(t, resp)
	assert.Equal(t, "", e.input, "ctrl-D on a non-empty line clears it instead of finishing")
}

func TestEditorHandleRune_CtrlGDiscardsInput(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	for _, r := range "garbage" {
		e.insertChar(r)
	}
	resp := e.handleRune(0x07, out)
	require.NotNil(t, resp)
	assert.Equal(t, Discarded, resp.Kind)
	assert.Equal(t, "garbage", resp.Text)
	assert.Equal(t, "", e.input)
}

func TestEditorHandleRune_UnknownControlByte(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	// 0x00 (NUL) has no bound meaning.
	resp := e.handleRune(0x00, out)
	require.NotNil(t, resp)
	assert.Equal(t, Unknown, resp.Kind)
	assert.Equal(t, byte(0x00), resp.UnknownByte)
}

func TestEditorKillAndYank(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	for _, r := range "hello world" {
		e.insertChar(r)
	}
	e.inputCursor = 5 // after "hello"
	e.handleRune(0x0b, out)
	assert.Equal(t, "hello", e.input)
	assert.Equal(t, " world", e.clipboard)

	e.handleRune(0x19, out)
	assert.Equal(t, "hello world", e.input)
}

func TestEditorKillToStart(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	for _, r := range "hello world" {
		e.insertChar(r)
	}
	e.inputCursor = 6 // after "hello "
	e.handleRune(0x15, out)
	assert.Equal(t, "world", e.input)
	assert.Equal(t, 0, e.inputCursor)
	assert.Equal(t, "hello ", e.clipboard)
}

func TestEditorDeleteWordBack(t *testing.T) {
	e := NewEditorState()
	for _, r := range "foo bar  " {
		e.insertChar(r)
	}
	e.deleteWordBack()
	assert.Equal(t, "foo ", e.input, "trailing whitespace and the last word are both consumed")

	e2 := NewEditorState()
	for _, r := range "   " {
		e2.insertChar(r)
	}
	e2.deleteWordBack()
	assert.Equal(t, "", e2.input, "leading whitespace alone is fully consumed")
}

func TestEditorBackspaceAndDelete(t *testing.T) {
	e := NewEditorState()
	for _, r := range "abc" {
		e.insertChar(r)
	}
	e.deleteBack()
	assert.Equal(t, "ab", e.input)
	assert.Equal(t, 2, e.inputCursor)

	e.inputCursor = 0
	e.deleteForward()
	assert.Equal(t, "b", e.input)
	assert.Equal(t, 0, e.inputCursor)
}

func TestEditorHistoryNavigation(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.AddLine("first"))
	require.NoError(t, h.AddLine("second"))

	e := NewEditorState()
	e.history = h
	for _, r := range "draft" {
		e.insertChar(r)
	}

	e.historyPrev()
	assert.Equal(t, "second", e.input)
	e.historyPrev()
	assert.Equal(t, "first", e.input)
	e.historyPrev() // already at oldest: no-op
	assert.Equal(t, "first", e.input)

	e.historyNext()
	assert.Equal(t, "second", e.input)
	e.historyNext()
	assert.Equal(t, "draft", e.input, "walking past the newest entry restores the shadowed in-progress line")
	assert.Equal(t, -1, e.historyIndex)
}

func TestEditorHistoryNavigation_EmptyHistoryIsNoop(t *testing.T) {
	e := NewEditorState()
	e.history = NewHistory()
	e.insertChar('x')
	e.historyPrev()
	assert.Equal(t, "x", e.input)
	assert.Equal(t, -1, e.historyIndex)
}

func TestEditorRelocateAfterBump_FindsRelocatedEntry(t *testing.T) {
	h := NewHistory()
	require.NoError(t, h.AddLine("alpha"))
	e := NewEditorState()
	e.history = h
	e.historyPrev()
	require.Equal(t, "alpha", e.input)

	require.NoError(t, h.AddLine("beta"))
	e.relocateAfterBump()
	assert.Equal(t, 0, e.historyIndex, "alpha is still present, just shifted")
}

func TestEditorRelocateAfterBump_FallsBackWhenEntryGone(t *testing.T) {
	h := NewHistory()
	h.SetLimit(1)
	require.NoError(t, h.AddLine("alpha"))
	e := NewEditorState()
	e.history = h
	e.historyShadow = "shadow"
	e.historyIndex = 0
	e.historyOriginal = "alpha"

	require.NoError(t, h.AddLine("beta")) // evicts "alpha" under the limit-1 cap
	e.relocateAfterBump()
	assert.Equal(t, -1, e.historyIndex)
	assert.Equal(t, "shadow", e.input)
}

func TestEditorCursorSkipsZeroWidthCombiningMarks(t *testing.T) {
	e := NewEditorState()
	e.insertChar('e')
	e.insertChar(rune(0x0301)) // combining acute accent, zero width
	e.inputCursor = 0
	e.moveRight()
	assert.Equal(t, len(e.input), e.inputCursor, "cursor must not stop between a base rune and its combining mark")
}

func TestEditorComplete_InsertAtCursor(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	e.completor = completorFunc(func(out *Output, input string, cursor int, presses uint32) *Completion {
		return &Completion{Kind: InsertAtCursor, Text: "X"}
	})
	e.insertChar('a')
	e.insertChar('b')
	e.inputCursor = 1
	e.complete(out)
	assert.Equal(t, "aXb", e.input)
	assert.Equal(t, 2, e.inputCursor)
}

func TestEditorComplete_ReplaceWholeLine(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	e.completor = completorFunc(func(out *Output, input string, cursor int, presses uint32) *Completion {
		return &Completion{Kind: ReplaceWholeLine, NewLine: "replaced", NewCursor: 100}
	})
	e.insertChar('a')
	e.complete(out)
	assert.Equal(t, "replaced", e.input)
	assert.Equal(t, len("replaced"), e.inputCursor, "out-of-range cursor is clamped to the new line's length")
}

func TestEditorComplete_NoCompletorIsNoop(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	resp := e.complete(out)
	assert.Nil(t, resp)
}

func TestEditorComplete_TracksConsecutivePresses(t *testing.T) {
	e := NewEditorState()
	out := newTestOutput()
	var seen []uint32
	e.completor = completorFunc(func(out *Output, input string, cursor int, presses uint32) *Completion {
		seen = append(seen, presses)
		return nil
	})
	e.HandleEvent(Event{Code: KeyTab}, out)
	e.HandleEvent(Event{Code: KeyTab}, out)
	e.HandleEvent(Event{Code: KeyLeft}, out) // any non-Tab key resets the streak
	e.HandleEvent(Event{Code: KeyTab}, out)
	assert.Equal(t, []uint32{1, 2, 1}, seen)
}

type completorFunc func(out *Output, input string, cursor int, consecutivePresses uint32) *Completion

func (f completorFunc) Complete(out *Output, input string, cursor int, consecutivePresses uint32) *Completion {
	return f(out, input, cursor, consecutivePresses)
}
