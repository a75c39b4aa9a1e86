// Package pad turns pointer and touch events into strokes on a canvas.
package pad

import (
	"image/color"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/log"
)

const DefaultLineWidth = 25

// Stroke is one pointer-down to pointer-up gesture in canvas coordinates
type Stroke struct {
	Width  float64
	Color  color.RGBA
	Points []Point
}

// BoundsFunc reports the current displayed box of the canvas. It is called
// on every event since the element can be resized or scrolled.
type BoundsFunc func() Rect

// Controller owns the drawing state of one canvas.
type Controller struct {
	surface canvas.Surface
	bounds  BoundsFunc
	width   float64

	drawing bool
	lastX   float64
	lastY   float64

	strokes []Stroke
	current int // index of the stroke in progress
}

type Option func(*Controller)

// WithLineWidth overrides the stroke width
func WithLineWidth(w float64) Option {
	return func(c *Controller) {
		c.width = w
	}
}

// New prepares surface as a blank pad: black background, white
// round-capped, round-joined strokes. A nil bounds means the canvas is
// displayed at its intrinsic size at the origin.
func New(surface canvas.Surface, bounds BoundsFunc, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		bounds:  bounds,
		width:   DefaultLineWidth,
		current: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bounds == nil {
		c.bounds = c.intrinsicBounds
	}

	w, h := surface.Size()
	surface.SetFillColor(canvas.Black)
	surface.FillRect(0, 0, float64(w), float64(h))
	surface.SetStrokeColor(canvas.White)
	surface.SetLineStyle(canvas.LineStyle{
		Width: c.width,
		Cap:   canvas.RoundCap,
		Join:  canvas.RoundJoin,
	})
	return c
}

func (c *Controller) intrinsicBounds() Rect {
	w, h := c.surface.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}

// Surface returns the canvas the controller draws on
func (c *Controller) Surface() canvas.Surface {
	return c.surface
}

// Drawing reports whether a stroke is in progress
func (c *Controller) Drawing() bool {
	return c.drawing
}

// Last returns the last recorded point
func (c *Controller) Last() Point {
	return Point{X: c.lastX, Y: c.lastY}
}

// Map converts the event position to canvas pixel space
func (c *Controller) Map(ev Event) Point {
	x, y := ev.client()
	w, h := c.surface.Size()
	return MapPoint(x, y, c.bounds(), w, h)
}

// Down enters drawing mode at the event position
func (c *Controller) Down(ev Event) {
	p := c.Map(ev)
	c.drawing = true
	c.lastX, c.lastY = p.X, p.Y
	c.beginStroke(p)
	log.Trace.Printf("pad: down at %.1f,%.1f", p.X, p.Y)
}

// Move strokes from the last point to the event position while drawing
func (c *Controller) Move(ev Event) {
	if !c.drawing {
		return
	}
	p := c.Map(ev)
	c.surface.StrokeLine(c.lastX, c.lastY, p.X, p.Y)
	c.lastX, c.lastY = p.X, p.Y
	c.extendStroke(p)
}

// Up leaves drawing mode
func (c *Controller) Up() {
	c.drawing = false
}

// Leave is the pointer leaving the canvas, same as Up
func (c *Controller) Leave() {
	c.drawing = false
}

// TouchStart, TouchMove and TouchEnd are the touch equivalents of
// Down, Move and Up. The host suppresses the default gesture handling.
func (c *Controller) TouchStart(ev Event) { c.Down(ev) }
func (c *Controller) TouchMove(ev Event) { c.Move(ev) }
func (c *Controller) TouchEnd() { c.Up() }

// Clear repaints the canvas black and re-arms the white stroke color.
// The drawing state is kept, a stroke in progress continues from the last point.
func (c *Controller) Clear() {
	w, h := c.surface.Size()
	c.surface.SetFillColor(canvas.Black)
	c.surface.FillRect(0, 0, float64(w), float64(h))
	c.surface.SetStrokeColor(canvas.White)

	c.strokes = nil
	c.current = -1
	if c.drawing {
		c.beginStroke(c.Last())
	}
}

// Strokes returns a copy of the strokes drawn since the last Clear
func (c *Controller) Strokes() []Stroke {
	out := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		out[i] = Stroke{
			Width:  s.Width,
			Color:  s.Color,
			Points: append([]Point(nil), s.Points...),
		}
	}
	return out
}

// Replay draws strokes given in canvas coordinates and records them.
// The drawing state is not touched.
func (c *Controller) Replay(strokes []Stroke) {
	style := c.surface.LineStyle()
	stroke := c.surface.StrokeColor()
	defer func() {
		c.surface.SetLineStyle(style)
		c.surface.SetStrokeColor(stroke)
	}()

	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		c.surface.SetLineStyle(canvas.LineStyle{Width: s.Width, Cap: style.Cap, Join: style.Join})
		c.surface.SetStrokeColor(s.Color)
		for i := 1; i < len(s.Points); i++ {
			a, b := s.Points[i-1], s.Points[i]
			c.surface.StrokeLine(a.X, a.Y, b.X, b.Y)
		}
		c.strokes = append(c.strokes, Stroke{
			Width:  s.Width,
			Color:  s.Color,
			Points: append([]Point(nil), s.Points...),
		})
	}
	log.Trace.Printf("pad: replayed %d strokes", len(strokes))
}

func (c *Controller) beginStroke(p Point) {
	c.strokes = append(c.strokes, Stroke{
		Width:  c.surface.LineStyle().Width,
		Color:  color.RGBAModel.Convert(c.surface.StrokeColor()).(color.RGBA),
		Points: []Point{p},
	})
	c.current = len(c.strokes) - 1
}

func (c *Controller) extendStroke(p Point) {
	if c.current < 0 {
		return
	}
	s := &c.strokes[c.current]
	s.Points = append(s.Points, p)
}
