// Package export writes recorded strokes as vector documents.
package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/juruen/sketchpad/encoding/sketch"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/pad"
)

// round cap and round join in PDF line style operators
const (
	roundCap  = "1"
	roundJoin = "1"
)

type PdfGenerator struct {
	sketch  *sketch.Sketch
	options PdfGeneratorOptions
}

type PdfGeneratorOptions struct {
	// Scale maps canvas pixels to PDF points, 0 means 1
	Scale float64
	// Transparent skips the black page background
	Transparent bool
}

func CreatePdfGenerator(s *sketch.Sketch, options PdfGeneratorOptions) *PdfGenerator {
	if options.Scale <= 0 {
		options.Scale = 1
	}
	return &PdfGenerator{sketch: s, options: options}
}

// canvas y grows downwards, pdf y upwards
func (p *PdfGenerator) normalized(pt pad.Point, height float64) (float64, float64) {
	return pt.X * p.options.Scale, height - pt.Y*p.options.Scale
}

// Generate writes a single page PDF holding every stroke
func (p *PdfGenerator) Generate(w io.Writer) error {
	width := float64(p.sketch.Width) * p.options.Scale
	height := float64(p.sketch.Height) * p.options.Scale
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", p.sketch.Width, p.sketch.Height)
	}

	c := creator.New()
	c.SetPageSize(creator.PageSize{width, height})
	page := c.NewPage()

	contentCreator := contentstream.NewContentCreator()
	if !p.options.Transparent {
		contentCreator.Add_q()
		contentCreator.Add_rg(0, 0, 0)
		contentCreator.Add_re(0, 0, width, height)
		contentCreator.Add_f()
		contentCreator.Add_Q()
	}

	count := 0
	for _, stroke := range p.sketch.Strokes {
		if len(stroke.Points) < 1 {
			continue
		}
		points := stroke.Points
		// a lone point still paints a dot with round caps
		if len(points) == 1 {
			points = []pad.Point{points[0], points[0]}
		}

		path := draw.NewPath()
		for _, pt := range points {
			x, y := p.normalized(pt, height)
			path = path.AppendPoint(draw.NewPoint(x, y))
		}

		contentCreator.Add_q()
		contentCreator.Add_w(stroke.Width * p.options.Scale)
		contentCreator.Add_J(roundCap)
		contentCreator.Add_j(roundJoin)
		contentCreator.Add_RG(
			float64(stroke.Color.R)/255,
			float64(stroke.Color.G)/255,
			float64(stroke.Color.B)/255,
		)
		draw.DrawPathWithCreator(path, contentCreator)
		contentCreator.Add_S()
		contentCreator.Add_Q()
		count++
	}

	if err := page.AppendContentStream(string(contentCreator.Operations().Bytes())); err != nil {
		return errors.Wrap(err, "can't append content stream")
	}
	log.Trace.Printf("export: %d strokes on a %.0fx%.0f page", count, width, height)

	if err := c.Write(w); err != nil {
		return errors.Wrap(err, "can't write pdf")
	}
	return nil
}
