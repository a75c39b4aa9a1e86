//go:build js && wasm

// Package dom binds the pad surfaces to browser elements.
package dom

import (
	"image/color"
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/pad"
)

// Canvas is a canvas.Canvas drawing on a CanvasRenderingContext2D
type Canvas struct {
	el     js.Value
	ctx    js.Value
	stroke color.Color
	style  canvas.LineStyle
}

// ByID looks up a document element
func ByID(id string) (js.Value, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, errors.Errorf("no element with id %q", id)
	}
	return el, nil
}

// NewCanvas wraps the canvas element with the given id
func NewCanvas(id string) (*Canvas, error) {
	el, err := ByID(id)
	if err != nil {
		return nil, err
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, errors.Errorf("%s: no 2d context", id)
	}
	return &Canvas{el: el, ctx: ctx, stroke: canvas.Black, style: canvas.LineStyle{Width: 1}}, nil
}

func (c *Canvas) Element() js.Value {
	return c.el
}

func (c *Canvas) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

// Bounds reports the displayed box of the element
func (c *Canvas) Bounds() pad.Rect {
	r := c.el.Call("getBoundingClientRect")
	return pad.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (c *Canvas) SetFillColor(col color.Color) {
	c.ctx.Set("fillStyle", canvas.CSSColor(col))
}

func (c *Canvas) SetStrokeColor(col color.Color) {
	c.stroke = col
	c.ctx.Set("strokeStyle", canvas.CSSColor(col))
}

func (c *Canvas) StrokeColor() color.Color {
	return c.stroke
}

func (c *Canvas) SetLineStyle(style canvas.LineStyle) {
	c.style = style
	c.ctx.Set("lineWidth", style.Width)
	c.ctx.Set("lineCap", style.Cap.String())
	c.ctx.Set("lineJoin", style.Join.String())
}

func (c *Canvas) LineStyle() canvas.LineStyle {
	return c.style
}

func (c *Canvas) FillRect(x, y, width, height float64) {
	c.ctx.Call("fillRect", x, y, width, height)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}

func (c *Canvas) DataURL() (string, error) {
	url := c.el.Call("toDataURL", canvas.PNGMime).String()
	if _, _, err := canvas.ParseDataURL(url); err != nil {
		return "", err
	}
	return url, nil
}

// Label writes status text into an element
type Label struct {
	el js.Value
}

func NewLabel(id string) (*Label, error) {
	el, err := ByID(id)
	if err != nil {
		return nil, err
	}
	return &Label{el: el}, nil
}

func (l *Label) SetText(text string) {
	l.el.Set("textContent", text)
}
