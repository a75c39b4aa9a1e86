package canvas

import (
	"image"
	"image/draw"
	"io"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// LoadImage decodes a PNG or JPEG
func LoadImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "can't decode image")
	}
	return img, nil
}

// Import scales img to the raster size and draws it over the current content.
func (r *Raster) Import(img image.Image) {
	w, h := r.Size()
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		img = resize.Resize(uint(w), uint(h), img, resize.Bilinear)
	}
	draw.Draw(r.img, r.img.Bounds(), img, img.Bounds().Min, draw.Over)
}
