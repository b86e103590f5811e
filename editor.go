package liso

import (
	"time"
	"unicode/utf8"

	"github.com/SolraBizna/liso/internal/wrap"
)

// RememberedOutput is the composite line most recently drawn (status +
// prompt + input, or a notice in their place), along with where the
// cursor ended up and which byte offset within the composite it
// corresponds to. The differential renderer reads and rewrites this on
// every rollout.
type RememberedOutput struct {
	Composite    *Line
	CursorOffset int
	Column       int
	RowOffset    int
}

// EditorState holds everything the worker needs to render the composite
// and interpret keystrokes: the status/prompt/notice lines, the raw input
// buffer and cursor, history navigation position, and the installed
// completor. It is owned exclusively by the worker goroutine.
type EditorState struct {
	status *Line
	prompt *Line
	notice *Line

	noticeDeadline time.Time
	hasNotice      bool

	input        string
	inputCursor  int
	inputAllowed bool
	clipboard    string

	remembered *RememberedOutput

	rolloutNeeded bool
	clearScreen   bool
	suspendSelf   bool

	history         *History
	historyIndex    int // -1 = not navigating (fresh line)
	historyShadow   string
	historyOriginal string

	completor         Completor
	completionPresses uint32
}

// NewEditorState returns a fresh state with input allowed and no history
// navigation in progress.
func NewEditorState() *EditorState {
	return &EditorState{inputAllowed: true, historyIndex: -1}
}

func (e *EditorState) dismissNotice() {
	if e.hasNotice {
		e.hasNotice = false
		e.notice = nil
		e.rolloutNeeded = true
	}
}

func isZeroWidthAt(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return wrap.RuneWidth(r) == 0
}

// fixupCursor advances the cursor past any zero-width code points that
// immediately follow it, so the caret never renders mid-combining-sequence.
func (e *EditorState) fixupCursor() {
	for e.inputCursor < len(e.input) && isZeroWidthAt(e.input, e.inputCursor) {
		_, size := utf8.DecodeRuneInString(e.input[e.inputCursor:])
		e.inputCursor += size
	}
}

func (e *EditorState) moveLeft() {
	if e.inputCursor == 0 {
		return
	}
	e.inputCursor--
	for e.inputCursor > 0 &&
		(!utf8.RuneStart(e.input[e.inputCursor]) || isZeroWidthAt(e.input, e.inputCursor)) {
		e.inputCursor--
	}
}

func (e *EditorState) moveRight() {
	if e.inputCursor >= len(e.input) {
		return
	}
	e.inputCursor++
	for e.inputCursor < len(e.input) &&
		(!utf8.RuneStart(e.input[e.inputCursor]) || isZeroWidthAt(e.input, e.inputCursor)) {
		e.inputCursor++
	}
}

func (e *EditorState) insertChar(r rune) {
	s := string(r)
	e.input = e.input[:e.inputCursor] + s + e.input[e.inputCursor:]
	e.inputCursor += len(s)
}

func (e *EditorState) deleteBack() {
	if e.inputCursor == 0 {
		return
	}
	end := e.inputCursor
	e.moveLeft()
	e.input = e.input[:e.inputCursor] + e.input[end:]
}

func (e *EditorState) deleteForward() {
	if e.inputCursor >= len(e.input) {
		return
	}
	start := e.inputCursor
	e.moveRight()
	e.input = e.input[:start] + e.input[e.inputCursor:]
	e.inputCursor = start
}

func (e *EditorState) deleteWordBack() {
	if e.inputCursor == 0 {
		return
	}
	end := e.inputCursor
	pos := e.inputCursor
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(e.input[:pos])
		if r == ' ' || wrap.RuneWidth(r) == 0 {
			pos -= size
			continue
		}
		break
	}
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(e.input[:pos])
		if r != ' ' {
			pos -= size
			continue
		}
		break
	}
	e.input = e.input[:pos] + e.input[end:]
	e.inputCursor = pos
}

func (e *EditorState) killToEnd() {
	if e.inputCursor >= len(e.input) {
		return
	}
	e.clipboard = e.input[e.inputCursor:]
	e.input = e.input[:e.inputCursor]
}

func (e *EditorState) killToStart() {
	if e.inputCursor == 0 {
		return
	}
	e.clipboard = e.input[:e.inputCursor]
	e.input = e.input[e.inputCursor:]
	e.inputCursor = 0
}

func (e *EditorState) yank() {
	if e.clipboard == "" {
		return
	}
	e.input = e.input[:e.inputCursor] + e.clipboard + e.input[e.inputCursor:]
	e.inputCursor += len(e.clipboard)
	e.fixupCursor()
}

func (e *EditorState) historyPrev() {
	if e.history == nil {
		return
	}
	lines := e.history.Lines()
	if len(lines) == 0 {
		return
	}
	if e.historyIndex < 0 {
		e.historyShadow = e.input
		e.historyIndex = len(lines) - 1
	} else if e.historyIndex > 0 {
		e.historyIndex--
	} else {
		return
	}
	e.historyOriginal = lines[e.historyIndex]
	e.input = e.historyOriginal
	e.inputCursor = len(e.input)
}

func (e *EditorState) historyNext() {
	if e.history == nil || e.historyIndex < 0 {
		return
	}
	lines := e.history.Lines()
	if e.historyIndex+1 >= len(lines) {
		e.input = e.historyShadow
		e.inputCursor = len(e.input)
		e.historyIndex = -1
		e.historyOriginal = ""
		return
	}
	e.historyIndex++
	e.historyOriginal = lines[e.historyIndex]
	e.input = e.historyOriginal
	e.inputCursor = len(e.input)
}

// relocateAfterBump re-finds the currently-selected history entry after
// a new line has been inserted into the backing History, or falls back
// to restoring the shadowed input if the original entry can no longer be
// found.
func (e *EditorState) relocateAfterBump() {
	if e.historyIndex < 0 {
		return
	}
	lines := e.history.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == e.historyOriginal {
			e.historyIndex = i
			return
		}
	}
	e.input = e.historyShadow
	e.inputCursor = len(e.input)
	e.historyIndex = -1
	e.historyOriginal = ""
}

func (e *EditorState) commit() string {
	input := e.input
	e.input = ""
	e.inputCursor = 0
	e.historyIndex = -1
	e.historyShadow = ""
	e.historyOriginal = ""
	e.completionPresses = 0
	if e.history != nil && input != "" {
		e.history.AddLine(input)
		e.relocateAfterBump()
	}
	return input
}

func (e *EditorState) complete(out *Output) *Response {
	if e.completor == nil {
		return nil
	}
	e.completionPresses++
	result := e.completor.Complete(out, e.input, e.inputCursor, e.completionPresses)
	if result == nil {
		return nil
	}
	switch result.Kind {
	case InsertAtCursor:
		e.input = e.input[:e.inputCursor] + result.Text + e.input[e.inputCursor:]
		e.inputCursor += len(result.Text)
	case ReplaceWholeLine:
		e.input = result.NewLine
		cur := result.NewCursor
		if cur < 0 {
			cur = 0
		}
		if cur > len(e.input) {
			cur = len(e.input)
		}
		e.inputCursor = cur
	}
	e.fixupCursor()
	e.rolloutNeeded = true
	return nil
}

// HandleEvent interprets one decoded input event (a special key or a
// plain rune) against the editor state, mutating it and returning the
// Response it produces, if any. A nil return means the event was
// consumed silently (it may still have set rolloutNeeded).
func (e *EditorState) HandleEvent(ev Event, out *Output) *Response {
	if !e.inputAllowed {
		return nil
	}
	if ev.Code != KeyTab {
		e.completionPresses = 0
	}
	switch ev.Code {
	case KeyLeft:
		e.dismissNotice()
		e.moveLeft()
		e.rolloutNeeded = true
		return nil
	case KeyRight:
		e.dismissNotice()
		e.moveRight()
		e.rolloutNeeded = true
		return nil
	case KeyHome:
		e.dismissNotice()
		e.inputCursor = 0
		e.rolloutNeeded = true
		return nil
	case KeyEnd:
		e.dismissNotice()
		e.inputCursor = len(e.input)
		e.rolloutNeeded = true
		return nil
	case KeyBackspace:
		e.dismissNotice()
		e.deleteBack()
		e.rolloutNeeded = true
		return nil
	case KeyDelete:
		e.dismissNotice()
		e.deleteForward()
		e.rolloutNeeded = true
		return nil
	case KeyUp:
		e.dismissNotice()
		e.historyPrev()
		e.rolloutNeeded = true
		return nil
	case KeyDown:
		e.dismissNotice()
		e.historyNext()
		e.rolloutNeeded = true
		return nil
	case KeyTab:
		return e.complete(out)
	case KeyEnter:
		line := e.commit()
		e.rolloutNeeded = true
		return &Response{Kind: Input, Text: line}
	case KeyEscape:
		return &Response{Kind: Escape}
	case KeyResize:
		e.rolloutNeeded = true
		return nil
	case KeyNone:
		return e.handleRune(ev.Ch, out)
	default:
		return nil
	}
}

func (e *EditorState) handleRune(r rune, out *Output) *Response {
	switch r {
	case 0x01: // Ctrl-A
		e.dismissNotice()
		e.inputCursor = 0
		e.rolloutNeeded = true
	case 0x05: // Ctrl-E
		e.dismissNotice()
		e.inputCursor = len(e.input)
		e.rolloutNeeded = true
	case 0x02: // Ctrl-B
		e.dismissNotice()
		e.moveLeft()
		e.rolloutNeeded = true
	case 0x06: // Ctrl-F
		e.dismissNotice()
		e.moveRight()
		e.rolloutNeeded = true
	case 0x17: // Ctrl-W
		e.dismissNotice()
		e.deleteWordBack()
		e.rolloutNeeded = true
	case 0x0b: // Ctrl-K
		e.dismissNotice()
		e.killToEnd()
		e.rolloutNeeded = true
	case 0x15: // Ctrl-U
		e.dismissNotice()
		e.killToStart()
		e.rolloutNeeded = true
	case 0x19: // Ctrl-Y
		e.dismissNotice()
		e.yank()
		e.rolloutNeeded = true
	case 0x0c: // Ctrl-L
		e.clearScreen = true
		e.rolloutNeeded = true
	case 0x07: // Ctrl-G
		discarded := e.input
		e.input = ""
		e.inputCursor = 0
		e.historyIndex = -1
		e.rolloutNeeded = true
		return &Response{Kind: Discarded, Text: discarded}
	case 0x03: // Ctrl-C
		return &Response{Kind: Quit}
	case 0x04: // Ctrl-D
		if e.input == "" {
			return &Response{Kind: Finish}
		}
		e.input = ""
		e.inputCursor = 0
		e.rolloutNeeded = true
	case 0x14: // Ctrl-T
		return &Response{Kind: Info}
	case 0x18: // Ctrl-X
		return &Response{Kind: Swap}
	case 0x1c: // Ctrl-backslash
		return &Response{Kind: Break}
	case 0x1b: // Escape
		return &Response{Kind: Escape}
	case 0x1a: // Ctrl-Z (UNIX only; no-op elsewhere)
		e.suspendSelf = true
	case 0x0e: // Ctrl-N
		e.dismissNotice()
		e.historyNext()
		e.rolloutNeeded = true
	case 0x10: // Ctrl-P
		e.dismissNotice()
		e.historyPrev()
		e.rolloutNeeded = true
	case '\n', '\r':
		line := e.commit()
		e.rolloutNeeded = true
		return &Response{Kind: Input, Text: line}
	case 0x08, 0x7f: // Backspace / DEL
		e.dismissNotice()
		e.deleteBack()
		e.rolloutNeeded = true
	case '\t':
		return e.complete(out)
	default:
		if (r >= 0 && r < 0x20) || (r >= 0x80 && r <= 0x9f) {
			return &Response{Kind: Unknown, UnknownByte: byte(r)}
		}
		e.dismissNotice()
		e.insertChar(r)
		e.rolloutNeeded = true
	}
	return nil
}
