// Package render paints processing results.
package render

import (
	"math"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/process"
)

// Matrix paints m onto surface as a MatrixSize x MatrixSize grid of gray
// cells over a black background. Row i is the vertical cell position,
// column j the horizontal one. m must have been validated.
func Matrix(surface canvas.Surface, m process.Matrix) {
	w, h := surface.Size()
	surface.SetFillColor(canvas.Black)
	surface.FillRect(0, 0, float64(w), float64(h))

	cellWidth := float64(w) / process.MatrixSize
	cellHeight := float64(h) / process.MatrixSize

	for i := 0; i < process.MatrixSize; i++ {
		for j := 0; j < process.MatrixSize; j++ {
			surface.SetFillColor(canvas.Gray(channel(m[i][j])))
			surface.FillRect(float64(j)*cellWidth, float64(i)*cellHeight, cellWidth, cellHeight)
		}
	}
}

// channel rounds v to a color channel, clamped to [0, 255]
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
