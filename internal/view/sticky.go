package view

// Presentation-only: the jobs header pins once the page scrolls past the
// header's initial offset, less a small slack so it pins just before the
// header would leave the viewport.

// StickySlackPx is shared with the page script so both sides agree on the
// pin point.
const StickySlackPx = 12

type StickyHeader struct {
	initialOffset float64
}

func NewStickyHeader(initialOffset float64) StickyHeader {
	return StickyHeader{initialOffset: initialOffset}
}

// Stuck recomputes the derived flag from the observed scroll position.
func (h StickyHeader) Stuck(scrollY float64) bool {
	return scrollY > h.initialOffset-StickySlackPx
}
