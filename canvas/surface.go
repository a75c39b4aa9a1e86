// Package canvas holds the 2D drawing surfaces the pad paints on.
package canvas

import "image/color"

type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

// LineStyle is the stroke state of a surface, like lineWidth/lineCap/lineJoin
// on a 2D context.
type LineStyle struct {
	Width float64
	Cap   LineCap
	Join  LineJoin
}

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// Surface is the subset of a 2D rendering context used by the pad.
// Fill and stroke colors are independent states.
type Surface interface {
	// Size is the backing (intrinsic) resolution in pixels.
	Size() (width, height int)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	StrokeColor() color.Color
	SetLineStyle(style LineStyle)
	LineStyle() LineStyle
	FillRect(x, y, width, height float64)
	// StrokeLine strokes a single segment with the current stroke color and style.
	StrokeLine(x0, y0, x1, y1 float64)
}

// Encoder serializes a surface for submission.
type Encoder interface {
	// DataURL returns the content as a data:image/png;base64 URL
	DataURL() (string, error)
}

// Canvas is a surface that can also be serialized.
type Canvas interface {
	Surface
	Encoder
}

// Gray returns the opaque gray with R=G=B=v
func Gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 255}
}
