package gallery

import "fmt"

// Keyboard keys the lightbox responds to, matching the browser KeyboardEvent
// names the frontend forwards.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyEscape     = "Escape"
)

// Slide is one image in the lightbox strip.
type Slide struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Lightbox models the gallery modal viewer: a closed/open state plus a
// selected index that wraps around at both ends of the strip.
type Lightbox struct {
	slides   []Slide
	selected int
	open     bool
}

// NewLightbox builds a closed lightbox over the given slides.
func NewLightbox(slides []Slide) *Lightbox {
	return &Lightbox{slides: slides}
}

// Len returns the number of slides.
func (l *Lightbox) Len() int {
	return len(l.slides)
}

// IsOpen reports whether the viewer is showing.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Open shows the viewer at index i. Out-of-range indexes are ignored.
func (l *Lightbox) Open(i int) {
	if i < 0 || i >= len(l.slides) {
		return
	}
	l.selected = i
	l.open = true
}

// Close hides the viewer.
func (l *Lightbox) Close() {
	l.open = false
}

// Next advances to the following slide, wrapping from the last slide back
// to the first. No-op while closed.
func (l *Lightbox) Next() {
	if !l.open || len(l.slides) == 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.slides)
}

// Prev steps to the preceding slide, wrapping from the first slide to the
// last. No-op while closed.
func (l *Lightbox) Prev() {
	if !l.open || len(l.slides) == 0 {
		return
	}
	l.selected = (l.selected - 1 + len(l.slides)) % len(l.slides)
}

// HandleKey applies keyboard navigation. Unknown keys are ignored, as is
// any key while the viewer is closed.
func (l *Lightbox) HandleKey(key string) {
	if !l.open {
		return
	}
	switch key {
	case KeyArrowRight:
		l.Next()
	case KeyArrowLeft:
		l.Prev()
	case KeyEscape:
		l.Close()
	}
}

// Index returns the selected slide index.
func (l *Lightbox) Index() int {
	return l.selected
}

// NextIndex returns the index Next would move to, wrapping past the end.
func (l *Lightbox) NextIndex() int {
	if len(l.slides) == 0 {
		return 0
	}
	return (l.selected + 1) % len(l.slides)
}

// PrevIndex returns the index Prev would move to, wrapping past the start.
func (l *Lightbox) PrevIndex() int {
	if len(l.slides) == 0 {
		return 0
	}
	return (l.selected - 1 + len(l.slides)) % len(l.slides)
}

// Current returns the selected slide; ok is false while closed or empty.
func (l *Lightbox) Current() (Slide, bool) {
	if !l.open || len(l.slides) == 0 {
		return Slide{}, false
	}
	return l.slides[l.selected], true
}

// Counter renders the "3 / 45" position label shown under the image.
func (l *Lightbox) Counter() string {
	return fmt.Sprintf("%d / %d", l.selected+1, len(l.slides))
}
