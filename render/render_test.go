package render

import (
	"errors"
	"math"
	"testing"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/process"
	"github.com/stretchr/testify/assert"
)

func uniform(v float64) process.Matrix {
	m := make(process.Matrix, process.MatrixSize)
	for i := range m {
		m[i] = make([]float64, process.MatrixSize)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

func assertUniform(t *testing.T, r *canvas.Raster, want uint8) {
	t.Helper()
	w, h := r.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := r.At(x, y); got != canvas.Gray(want) {
				t.Fatalf("pixel %d,%d = %v, want gray %d", x, y, got, want)
			}
		}
	}
}

func TestMatrixBlackAndWhite(t *testing.T) {
	for _, size := range []int{280, 300, 28} {
		r := canvas.NewRaster(size, size)
		Matrix(r, uniform(0))
		assertUniform(t, r, 0)

		Matrix(r, uniform(255))
		assertUniform(t, r, 255)
	}
}

func TestMatrixCellPlacement(t *testing.T) {
	m := uniform(0)
	m[2][5] = 200 // row 2, column 5
	r := canvas.NewRaster(280, 280)
	Matrix(r, m)

	// cells are 10x10, column selects x, row selects y
	assert.Equal(t, canvas.Gray(200), r.At(50, 20))
	assert.Equal(t, canvas.Gray(200), r.At(59, 29))
	assert.Equal(t, canvas.Gray(0), r.At(60, 20))
	assert.Equal(t, canvas.Gray(0), r.At(20, 50))
}

func TestMatrixRewritesPreviousContent(t *testing.T) {
	r := canvas.NewRaster(280, 280)
	Matrix(r, uniform(255))
	Matrix(r, uniform(0))
	assertUniform(t, r, 0)
}

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{12.0, 12},
		{12.4, 12},
		{12.5, 13},
		{254.6, 255},
		{300, 255},
		{-4, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, channel(tt.in), "%v", tt.in)
	}
}

func TestPrediction(t *testing.T) {
	c := 0.873
	assert.Equal(t, "Predicted Letter: A (87.3%)", Prediction("A", &c))

	one := 1.0
	assert.Equal(t, "Predicted Letter: Z (100.0%)", Prediction("Z", &one))

	assert.Equal(t, "Predicted Letter: Q (NaN%)", Prediction("Q", nil))
}

func TestError(t *testing.T) {
	assert.Equal(t, "Error: bad image", Error(errors.New("bad image")))
}

func TestTextLabel(t *testing.T) {
	var l TextLabel
	var label Label = &l
	label.SetText("hello")
	assert.Equal(t, "hello", l.Text)
}
