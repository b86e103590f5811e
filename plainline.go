package liso

import "github.com/SolraBizna/liso/internal/wrap"

// outputLine prints l above the composite, non-differentially: every
// element's text is emitted with its attributes in order, wrapping at the
// terminal width exactly as rollout does, then the cursor returns to
// column 0 on a fresh line with attributes reset.
func (rd *renderer) outputLine(l *Line) error {
	width := rd.term.Width()
	if width <= 0 {
		width = 80
	}
	col := 0
	it := l.Chars()
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		if c.Ch == '\n' {
			if hasVisibleBackground(rd.curAttrs.Style, rd.curAttrs.BG) && col < width {
				if err := rd.term.PrintSpaces(width - col); err != nil {
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
			col = 0
			continue
		}
		w := wrap.RuneWidth(c.Ch)
		if w < 0 {
			w = 0
		}
		if col+w > width {
			if hasVisibleBackground(rd.curAttrs.Style, rd.curAttrs.BG) {
				if err := rd.term.PrintSpaces(width - col); err != nil {
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
			col = 0
		}
		if err := rd.setAttrs(c.Style, c.FG, c.BG); err != nil {
			return err
		}
		if err := rd.term.Print(string(c.Ch)); err != nil {
			return err
		}
		col += w
	}
	if err := rd.term.ResetAttrs(); err != nil {
		return err
	}
	rd.curAttrs.Style, rd.curAttrs.FG, rd.curAttrs.BG = 0, nil, nil
	if col < width {
		if err := rd.term.ClearToEndOfLine(); err != nil {
			return err
		}
	}
	if err := rd.term.Newline(); err != nil {
		return err
	}
	return rd.term.CarriageReturn()
}

// rollIn erases the drawn composite (moving to its top-left and clearing
// forward) so a plain line can be printed above it without visual
// collision, and forgets the remembered composite: a later rollout
// repaints from scratch.
func (rd *renderer) rollIn(e *EditorState) error {
	if e.remembered == nil {
		return nil
	}
	if err := rd.term.MoveCursorUp(e.remembered.RowOffset); err != nil {
		return err
	}
	if err := rd.term.MoveCursorLeft(e.remembered.Column); err != nil {
		return err
	}
	if err := rd.term.ClearForwardAndReset(); err != nil {
		return err
	}
	rd.curAttrs.Style, rd.curAttrs.FG, rd.curAttrs.BG = 0, nil, nil
	e.remembered = nil
	return nil
}
