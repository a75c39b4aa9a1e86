package sketch

import (
	"bytes"
	"encoding/binary"
	"image/color"

	"github.com/juruen/sketchpad/pad"
)

// MarshalBinary implements encoding.BinaryMarshaler
func (s *Sketch) MarshalBinary() ([]byte, error) {
	w := new(writer)

	w.writeHeader()
	w.writeNumber(s.Width)
	w.writeNumber(s.Height)
	w.writeNumber(len(s.Strokes))

	for _, stroke := range s.Strokes {
		w.writeStroke(stroke)
	}

	return w.Bytes(), nil
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader() {
	w.b.WriteString(HeaderV1)
}

// writes to a bytes.Buffer never fail
func (w *writer) writeNumber(n int) {
	binary.Write(&w.b, binary.LittleEndian, uint32(n))
}

func (w *writer) writeFloat32(f float64) {
	binary.Write(&w.b, binary.LittleEndian, float32(f))
}

func (w *writer) writeStroke(s pad.Stroke) {
	w.writeFloat32(s.Width)
	binary.Write(&w.b, binary.LittleEndian, packColor(s.Color))
	w.writeNumber(len(s.Points))
	for _, p := range s.Points {
		w.writeFloat32(p.X)
		w.writeFloat32(p.Y)
	}
}

func packColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
