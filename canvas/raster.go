package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ Canvas = (*Raster)(nil)

// miter limit used when the join is MiterJoin, same default as a 2D context
const miterLimit = 10

// Raster is an in-memory canvas backed by an RGBA image.
// Strokes are rasterized with rasterx, fills are plain compositing.
type Raster struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher

	fill   color.RGBA
	stroke color.RGBA
	style  LineStyle
}

// NewRaster returns a transparent raster of the given backing size
// with a black fill, black stroke and a 1px butt-capped line.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Raster{
		img:     img,
		scanner: scanner,
		dasher:  rasterx.NewDasher(width, height, scanner),
		fill:    Black,
		stroke:  Black,
		style:   LineStyle{Width: 1, Cap: ButtCap, Join: MiterJoin},
	}
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) SetFillColor(c color.Color) {
	r.fill = color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *Raster) FillColor() color.Color {
	return r.fill
}

func (r *Raster) SetStrokeColor(c color.Color) {
	r.stroke = color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *Raster) StrokeColor() color.Color {
	return r.stroke
}

func (r *Raster) SetLineStyle(style LineStyle) {
	r.style = style
}

func (r *Raster) LineStyle() LineStyle {
	return r.style
}

// FillRect composites the fill color over the rectangle. Edges are rounded
// to the nearest pixel boundary.
func (r *Raster) FillRect(x, y, width, height float64) {
	rect := image.Rect(
		round(x), round(y),
		round(x+width), round(y+height),
	).Canon().Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.NewUniform(r.fill), image.Point{}, draw.Over)
}

func (r *Raster) StrokeLine(x0, y0, x1, y1 float64) {
	capFn := capFuncs[r.style.Cap]
	r.dasher.Clear()
	r.dasher.SetStroke(
		fixed.Int26_6(r.style.Width*64), fixed.Int26_6(miterLimit*64),
		capFn, capFn, gapFuncs[r.style.Join], joinModes[r.style.Join],
		nil, 0,
	)
	r.dasher.Start(rasterx.ToFixedP(x0, y0))
	r.dasher.Line(rasterx.ToFixedP(x1, y1))
	r.dasher.Stop(false)
	r.scanner.SetColor(r.stroke)
	r.dasher.Draw()
}

// At returns the pixel at x, y
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Image exposes the backing image. It is shared, not copied.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the raster as PNG
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return errors.Wrap(err, "can't encode png")
	}
	return nil
}

func (r *Raster) DataURL() (string, error) {
	var b bytes.Buffer
	if err := r.WritePNG(&b); err != nil {
		return "", err
	}
	return EncodeDataURL(PNGMime, b.Bytes()), nil
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

var (
	capFuncs = [...]rasterx.CapFunc{
		ButtCap:   rasterx.ButtCap,
		RoundCap:  rasterx.RoundCap,
		SquareCap: rasterx.SquareCap,
	}

	joinModes = [...]rasterx.JoinMode{
		MiterJoin: rasterx.Miter,
		RoundJoin: rasterx.Round,
		BevelJoin: rasterx.Bevel,
	}

	gapFuncs = [...]rasterx.GapFunc{
		MiterJoin: rasterx.FlatGap,
		RoundJoin: rasterx.RoundGap,
		BevelJoin: rasterx.FlatGap,
	}
)
