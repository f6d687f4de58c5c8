package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlides(n int) []Slide {
	slides := make([]Slide, 0, n)
	for i := 0; i < n; i++ {
		slides = append(slides, Slide{
			Src: fmt.Sprintf("/images/photo-%d.jpeg", i+1),
			Alt: fmt.Sprintf("Photo %d", i+1),
		})
	}
	return slides
}

func TestOpenClose(t *testing.T) {
	l := NewLightbox(testSlides(5))
	assert.False(t, l.IsOpen())

	l.Open(2)
	assert.True(t, l.IsOpen())
	assert.Equal(t, 2, l.Index())

	current, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "/images/photo-3.jpeg", current.Src)

	l.Close()
	assert.False(t, l.IsOpen())
	_, ok = l.Current()
	assert.False(t, ok)
}

func TestOpenOutOfRange(t *testing.T) {
	l := NewLightbox(testSlides(3))

	l.Open(-1)
	assert.False(t, l.IsOpen())

	l.Open(3)
	assert.False(t, l.IsOpen())
}

func TestNextWrapsToFirst(t *testing.T) {
	l := NewLightbox(testSlides(3))
	l.Open(2)

	l.Next()
	assert.Equal(t, 0, l.Index())
}

func TestPrevWrapsToLast(t *testing.T) {
	l := NewLightbox(testSlides(3))
	l.Open(0)

	l.Prev()
	assert.Equal(t, 2, l.Index())
}

func TestNavigationNoopWhileClosed(t *testing.T) {
	l := NewLightbox(testSlides(3))

	l.Next()
	l.Prev()
	assert.Equal(t, 0, l.Index())
	assert.False(t, l.IsOpen())
}

func TestNavigationEmptyStrip(t *testing.T) {
	l := NewLightbox(nil)

	l.Open(0)
	assert.False(t, l.IsOpen())

	l.Next()
	l.Prev()
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, 0, l.NextIndex())
	assert.Equal(t, 0, l.PrevIndex())
}

func TestHandleKey(t *testing.T) {
	l := NewLightbox(testSlides(4))
	l.Open(0)

	l.HandleKey(KeyArrowRight)
	assert.Equal(t, 1, l.Index())

	l.HandleKey(KeyArrowLeft)
	assert.Equal(t, 0, l.Index())

	l.HandleKey("Enter")
	assert.Equal(t, 0, l.Index())
	assert.True(t, l.IsOpen())

	l.HandleKey(KeyEscape)
	assert.False(t, l.IsOpen())

	l.HandleKey(KeyArrowRight)
	assert.Equal(t, 0, l.Index(), "keys must be ignored while closed")
}

func TestNextPrevIndex(t *testing.T) {
	l := NewLightbox(testSlides(4))
	l.Open(3)

	assert.Equal(t, 0, l.NextIndex())
	assert.Equal(t, 2, l.PrevIndex())
}

func TestCounter(t *testing.T) {
	l := NewLightbox(testSlides(45))
	l.Open(2)

	assert.Equal(t, "3 / 45", l.Counter())
}
