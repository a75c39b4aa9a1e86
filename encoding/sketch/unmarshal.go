package sketch

import (
	"bytes"
	"encoding/binary"
	"image/color"

	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/pad"
)

var ErrHeader = errors.New("unknown header")

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (s *Sketch) UnmarshalBinary(data []byte) error {
	r := reader{bytes.NewReader(data)}
	if err := r.checkHeader(); err != nil {
		return err
	}

	width, err := r.readNumber()
	if err != nil {
		return err
	}
	height, err := r.readNumber()
	if err != nil {
		return err
	}
	if width > maxDimension || height > maxDimension {
		return errors.Errorf("canvas size %dx%d too large", width, height)
	}
	nbStrokes, err := r.readCount()
	if err != nil {
		return err
	}

	s.Width, s.Height = int(width), int(height)
	s.Strokes = make([]pad.Stroke, nbStrokes)
	for i := range s.Strokes {
		stroke, err := r.readStroke()
		if err != nil {
			return errors.Wrapf(err, "stroke %d", i)
		}
		s.Strokes[i] = stroke
	}
	return nil
}

type reader struct {
	*bytes.Reader
}

func (r reader) checkHeader() error {
	buf := make([]byte, HeaderLen)
	n, err := r.Read(buf)
	if err != nil || n != HeaderLen {
		return errors.New("wrong header size")
	}
	if string(buf) != HeaderV1 {
		return ErrHeader
	}
	return nil
}

func (r reader) readNumber() (uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, errors.New("wrong number read")
	}
	return n, nil
}

func (r reader) readCount() (uint32, error) {
	n, err := r.readNumber()
	if err != nil {
		return 0, err
	}
	if n > maxCount {
		return 0, errors.Errorf("count %d too large", n)
	}
	return n, nil
}

func (r reader) readFloat32() (float64, error) {
	var f float32
	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		return 0, errors.New("wrong float read")
	}
	return float64(f), nil
}

func (r reader) readStroke() (pad.Stroke, error) {
	var stroke pad.Stroke

	width, err := r.readFloat32()
	if err != nil {
		return stroke, err
	}
	packed, err := r.readNumber()
	if err != nil {
		return stroke, err
	}
	nbPoints, err := r.readCount()
	if err != nil {
		return stroke, err
	}

	stroke.Width = width
	stroke.Color = unpackColor(packed)
	stroke.Points = make([]pad.Point, nbPoints)
	for i := range stroke.Points {
		x, err := r.readFloat32()
		if err != nil {
			return stroke, err
		}
		y, err := r.readFloat32()
		if err != nil {
			return stroke, err
		}
		stroke.Points[i] = pad.Point{X: x, Y: y}
	}
	return stroke, nil
}

func unpackColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
