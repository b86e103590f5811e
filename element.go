package liso

// LineElement is a span over a Line's text sharing one attribute triple:
// a Style, an optional foreground Color, and an optional background
// Color. Start and End are byte offsets into the owning Line's text,
// always on UTF-8 code-point boundaries, with Start <= End.
//
// A Line's elements appear in ascending Start order and cover the whole
// text contiguously; only the final element may have Start == End, which
// happens when an attribute change was made at the very end of the text
// with no characters following it yet.
type LineElement struct {
	Style Style
	FG    *Color
	BG    *Color
	Start int
	End   int
}

// attrs bundles the triple that determines whether two elements can
// coalesce into one run.
type attrs struct {
	style Style
	fg    *Color
	bg    *Color
}

func (e LineElement) attrs() attrs {
	return attrs{style: e.Style, fg: e.FG, bg: e.BG}
}

func (a attrs) equal(b attrs) bool {
	if a.style != b.style {
		return false
	}
	return colorPtrEqual(a.fg, b.fg) && colorPtrEqual(a.bg, b.bg)
}

func colorPtrEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorPtrClone(c *Color) *Color {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// Len reports the element's span in bytes.
func (e LineElement) Len() int { return e.End - e.Start }
