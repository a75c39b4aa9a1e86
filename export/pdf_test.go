package export

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/juruen/sketchpad/encoding/sketch"
	"github.com/juruen/sketchpad/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s := &sketch.Sketch{
		Width:  448,
		Height: 448,
		Strokes: []pad.Stroke{
			{Width: 25, Color: color.RGBA{255, 255, 255, 255}, Points: []pad.Point{{X: 10, Y: 10}, {X: 200, Y: 220}, {X: 300, Y: 40}}},
			{Width: 25, Color: color.RGBA{255, 255, 255, 255}, Points: []pad.Point{{X: 50, Y: 50}}},
			{Width: 25, Color: color.RGBA{255, 255, 255, 255}},
		},
	}

	var b bytes.Buffer
	require.NoError(t, CreatePdfGenerator(s, PdfGeneratorOptions{}).Generate(&b))
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}

func TestGenerateInvalidSize(t *testing.T) {
	var b bytes.Buffer
	err := CreatePdfGenerator(&sketch.Sketch{}, PdfGeneratorOptions{}).Generate(&b)
	assert.Error(t, err)
	assert.Zero(t, b.Len())
}

func TestNormalized(t *testing.T) {
	g := CreatePdfGenerator(&sketch.Sketch{Width: 100, Height: 100}, PdfGeneratorOptions{Scale: 2})
	x, y := g.normalized(pad.Point{X: 10, Y: 30}, 200)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 140.0, y)
}
