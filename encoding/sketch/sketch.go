// Package sketch encodes recorded pad strokes.
//
// Layout, little endian:
//
//	header     32 bytes, HeaderV1 space padded
//	width      uint32  canvas backing width
//	height     uint32  canvas backing height
//	nbStrokes  uint32
//	per stroke:
//	  width    float32 line width
//	  color    uint32  0xRRGGBBAA
//	  nbPoints uint32
//	  points   nbPoints x (float32 x, float32 y)
package sketch

import (
	"github.com/juruen/sketchpad/pad"
)

const (
	HeaderV1  = "sketchpad strokes file, v=1     "
	HeaderLen = 32

	// upper bound accepted when reading counts, a corrupt file must not
	// make us allocate gigabytes
	maxCount = 1 << 20

	// largest canvas side accepted when reading
	maxDimension = 1 << 14
)

// Sketch is a drawing with the size of the canvas it was made on
type Sketch struct {
	Width   int
	Height  int
	Strokes []pad.Stroke
}
