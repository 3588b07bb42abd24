// Package canvas is a retained display list. Shapes are addressed by handles
// that stay valid until the shape is deleted or the canvas is cleared, and
// the whole list is replayed onto an ebiten image each frame.
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Handle identifies a drawn shape. The zero Handle never refers to a shape
// and handles are never reused.
type Handle uint64

type Kind int

const (
	KindCircle Kind = iota
	KindLine
)

// Shape is one entry in the display list. Circles use X0, Y0 and Radius;
// lines use both endpoints and Width.
type Shape struct {
	Kind           Kind
	X0, Y0, X1, Y1 float64
	Radius         float64
	Width          float64
	Color          color.RGBA
}

type Canvas struct {
	next   Handle
	order  []Handle
	shapes map[Handle]Shape
}

func New() *Canvas {
	return &Canvas{shapes: map[Handle]Shape{}}
}

// Clear removes every shape. Handles issued before Clear become stale.
func (c *Canvas) Clear() {
	c.order = c.order[:0]
	clear(c.shapes)
}

// Circle adds a filled circle on top of everything drawn so far.
func (c *Canvas) Circle(x, y, r float64, clr color.RGBA) Handle {
	return c.add(Shape{Kind: KindCircle, X0: x, Y0: y, Radius: r, Color: clr})
}

// Line adds a stroked line on top of everything drawn so far.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, clr color.RGBA) Handle {
	return c.add(Shape{Kind: KindLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

// Delete erases the shape behind h. Unknown or stale handles are ignored.
func (c *Canvas) Delete(h Handle) {
	if _, ok := c.shapes[h]; !ok {
		return
	}
	delete(c.shapes, h)
	if len(c.order) > 2*len(c.shapes)+64 {
		c.compact()
	}
}

// Shape returns the shape behind h.
func (c *Canvas) Shape(h Handle) (Shape, bool) {
	s, ok := c.shapes[h]
	return s, ok
}

// Len returns the number of live shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// Shapes returns the live shapes in paint order, bottom first.
func (c *Canvas) Shapes() []Shape {
	out := make([]Shape, 0, len(c.shapes))
	c.each(func(s Shape) { out = append(out, s) })
	return out
}

// Paint replays the display list onto dst.
func (c *Canvas) Paint(dst *ebiten.Image) {
	c.each(func(s Shape) {
		switch s.Kind {
		case KindCircle:
			vector.DrawFilledCircle(dst, float32(s.X0), float32(s.Y0), float32(s.Radius), s.Color, true)
		case KindLine:
			vector.StrokeLine(dst, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), float32(s.Width), s.Color, true)
		}
	})
}

func (c *Canvas) add(s Shape) Handle {
	c.next++
	c.order = append(c.order, c.next)
	c.shapes[c.next] = s
	return c.next
}

func (c *Canvas) each(fn func(Shape)) {
	for _, h := range c.order {
		if s, ok := c.shapes[h]; ok {
			fn(s)
		}
	}
}

func (c *Canvas) compact() {
	live := c.order[:0]
	for _, h := range c.order {
		if _, ok := c.shapes[h]; ok {
			live = append(live, h)
		}
	}
	c.order = live
}
