package liso

import (
	"github.com/SolraBizna/liso/internal/term"
	"github.com/SolraBizna/liso/internal/wrap"
)

// renderer drives a Terminal with the differential rollout algorithm. It is
// owned exclusively by the worker goroutine and carries state (the last
// attributes actually sent to the terminal) between successive rollouts.
type renderer struct {
	term     term.Terminal
	curAttrs term.Attrs
}

func newRenderer(t term.Terminal) *renderer {
	return &renderer{term: t}
}

// buildComposite assembles the line currently owed to the screen: the
// status line, then either the notice (if one is active) or the prompt
// followed by the input text, and reports the byte offset within the
// composite that the cursor belongs at.
func buildComposite(e *EditorState) (composite *Line, cursorOffset int, hasCursor bool) {
	composite = NewLine()
	if e.status != nil {
		composite.AppendLine(e.status)
	}
	if e.hasNotice {
		composite.AppendLine(e.notice)
		return composite, composite.Len(), false
	}
	if e.prompt != nil {
		composite.AppendLine(e.prompt)
	}
	inputStart := composite.Len()
	composite.AppendLine(LineFromString(e.input))
	return composite, inputStart + e.inputCursor, e.inputAllowed
}

func charsOf(l *Line) []LineChar {
	if l == nil {
		return nil
	}
	var out []LineChar
	it := l.Chars()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

func attrsEqual(a term.Attrs, style Style, fg, bg *Color) bool {
	return a.Style == style && colorPtrEqual(a.FG, fg) && colorPtrEqual(a.BG, bg)
}

func hasVisibleBackground(style Style, bg *Color) bool {
	return bg != nil || style.Contains(Inverse) || style.Contains(Underline)
}

// setAttrs emits a SetAttrs call if the requested attributes differ from
// what was last sent, resetting first if the bit set shrinks (some
// terminals have no code to turn off a single style bit in isolation).
func (rd *renderer) setAttrs(style Style, fg, bg *Color) error {
	if attrsEqual(rd.curAttrs, style, fg, bg) {
		return nil
	}
	if rd.curAttrs.Style&^style != 0 {
		if err := rd.term.ResetAttrs(); err != nil {
			return err
		}
		rd.curAttrs = term.Attrs{}
	}
	a := term.Attrs{Style: style, FG: fg, BG: bg}
	if err := rd.term.SetAttrs(a); err != nil {
		return err
	}
	rd.curAttrs = a
	return nil
}

// rollout repaints the composite, emitting only the operations needed to
// turn the previously-drawn composite into the current one, and leaves the
// cursor on the target position. It is the heart of the library: see the
// algorithm description this mirrors step for step.
func (rd *renderer) rollout(e *EditorState) error {
	width := rd.term.Width()
	if width <= 0 {
		width = 80
	}

	newComposite, cursorTarget, hasCursor := buildComposite(e)
	newText := newComposite.Text()

	var old *Line
	realCol, realRow := 0, 0
	if e.remembered != nil {
		old = e.remembered.Composite
		realCol = e.remembered.Column
		realRow = e.remembered.RowOffset
	}
	oldChars := charsOf(old)
	newChars := charsOf(newComposite)

	simCol, simRow := 0, 0
	targetCol, targetRow := -1, -1

	checkCandidate := func(byteOffset int) {
		if hasCursor && byteOffset == cursorTarget {
			targetCol, targetRow = simCol, simRow
		}
	}

	reconcile := func() error {
		dRow := simRow - realRow
		switch {
		case dRow > 0:
			if err := rd.term.MoveCursorDown(dRow); err != nil {
				return err
			}
		case dRow < 0:
			if err := rd.term.MoveCursorUp(-dRow); err != nil {
				return err
			}
		}
		dCol := simCol - realCol
		switch {
		case dCol > 0:
			if err := rd.term.MoveCursorRight(dCol); err != nil {
				return err
			}
		case dCol < 0:
			if err := rd.term.MoveCursorLeft(-dCol); err != nil {
				return err
			}
		}
		realCol, realRow = simCol, simRow
		return nil
	}

	emitAttrs := rd.setAttrs

	// writeChar prints r, so the real cursor ends where the simulated one does.
	writeChar := func(r rune, style Style, fg, bg *Color) error {
		if r == '\n' {
			if err := rd.term.Newline(); err != nil {
				return err
			}
			if err := rd.term.CarriageReturn(); err != nil {
				return err
			}
			simRow++
			simCol = 0
			realCol, realRow = simCol, simRow
			return nil
		}
		w := wrap.RuneWidth(r)
		if w < 0 {
			w = 0
		}
		if simCol+w > width {
			if hasVisibleBackground(style, bg) {
				if err := rd.term.PrintSpaces(width - simCol); err != nil {
					return err
				}
			} else if err := rd.term.ClearToEndOfLine(); err != nil {
				return err
			}
			if err := rd.term.Newline(); err != nil {
				return err
			}
			if err := rd.term.CarriageReturn(); err != nil {
				return err
			}
			simRow++
			simCol = 0
		}
		if err := emitAttrs(style, fg, bg); err != nil {
			return err
		}
		if err := rd.term.Print(string(r)); err != nil {
			return err
		}
		simCol += w
		realCol, realRow = simCol, simRow
		return nil
	}

	i, j := 0, 0
	abandoned := false
	for i < len(oldChars) && j < len(newChars) {
		oc, nc := oldChars[i], newChars[j]
		checkCandidate(nc.ByteOffset)
		if oc.Ch == nc.Ch && oc.Style == nc.Style && colorPtrEqual(oc.FG, nc.FG) && colorPtrEqual(oc.BG, nc.BG) {
			if err := advanceSim(nc.Ch, width, &simCol, &simRow); err != nil {
				return err
			}
			i++
			j++
			continue
		}
		if (oc.Ch == '\n') != (nc.Ch == '\n') {
			if err := reconcile(); err != nil {
				return err
			}
			if err := rd.term.ClearForwardAndReset(); err != nil {
				return err
			}
			rd.curAttrs = term.Attrs{}
			abandoned = true
			break
		}
		if err := reconcile(); err != nil {
			return err
		}
		if err := writeChar(nc.Ch, nc.Style, nc.FG, nc.BG); err != nil {
			return err
		}
		i++
		j++
	}
	if !abandoned && i < len(oldChars) {
		if err := reconcile(); err != nil {
			return err
		}
		if err := rd.term.ClearForwardAndReset(); err != nil {
			return err
		}
		rd.curAttrs = term.Attrs{}
	}
	for ; j < len(newChars); j++ {
		nc := newChars[j]
		checkCandidate(nc.ByteOffset)
		if err := writeChar(nc.Ch, nc.Style, nc.FG, nc.BG); err != nil {
			return err
		}
	}
	checkCandidate(len(newText))

	if hasVisibleBackground(rd.curAttrs.Style, rd.curAttrs.BG) && simCol < width {
		if err := rd.term.PrintSpaces(width - simCol); err != nil {
			return err
		}
		simCol = width
		realCol = simCol
	}
	if targetCol < 0 {
		targetCol, targetRow = simCol, simRow
	}
	simCol, simRow = targetCol, targetRow
	if err := reconcile(); err != nil {
		return err
	}

	e.remembered = &RememberedOutput{
		Composite:    newComposite,
		CursorOffset: cursorTarget,
		Column:       realCol,
		RowOffset:    realRow,
	}
	e.rolloutNeeded = false
	return rd.term.Flush()
}

// advanceSim moves only the simulated cursor forward past r, applying the
// same wrap-at-column-width accounting that writeChar does, without
// emitting anything (used when old and new agree and nothing need be sent).
func advanceSim(r rune, width int, col, row *int) error {
	if r == '\n' {
		*row++
		*col = 0
		return nil
	}
	w := wrap.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if *col+w > width {
		*row++
		*col = 0
	}
	*col += w
	return nil
}
