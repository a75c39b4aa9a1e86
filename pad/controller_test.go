package pad

import (
	"image/color"
	"testing"

	"github.com/juruen/sketchpad/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	x0, y0, x1, y1 float64
	style          canvas.LineStyle
	color          color.Color
}

// recorder is a surface that remembers the segments it was asked to stroke
type recorder struct {
	w, h   int
	fill   color.Color
	stroke color.Color
	style  canvas.LineStyle
	lines  []line
	fills  int
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) SetFillColor(c color.Color) { r.fill = c }
func (r *recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *recorder) StrokeColor() color.Color { return r.stroke }
func (r *recorder) SetLineStyle(s canvas.LineStyle) { r.style = s }
func (r *recorder) LineStyle() canvas.LineStyle { return r.style }
func (r *recorder) FillRect(x, y, w, h float64) { r.fills++ }
func (r *recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, r.style, r.stroke})
}

func TestNewPreparesSurface(t *testing.T) {
	rec := &recorder{w: 448, h: 448}
	New(rec, nil)

	assert.Equal(t, 1, rec.fills)
	assert.Equal(t, color.Color(canvas.Black), rec.fill)
	assert.Equal(t, color.Color(canvas.White), rec.stroke)
	assert.Equal(t, canvas.LineStyle{Width: 25, Cap: canvas.RoundCap, Join: canvas.RoundJoin}, rec.style)
}

func TestStrokeSequence(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)

	c.Down(MouseEvent(10, 10))
	assert.True(t, c.Drawing())
	c.Move(MouseEvent(20, 15))
	c.Move(MouseEvent(30, 40))
	c.Up()
	assert.False(t, c.Drawing())
	c.Move(MouseEvent(90, 90))

	require.Len(t, rec.lines, 2)
	assert.Equal(t, line{10, 10, 20, 15, rec.style, canvas.White}, rec.lines[0])
	assert.Equal(t, line{20, 15, 30, 40, rec.style, canvas.White}, rec.lines[1])
	for _, l := range rec.lines {
		assert.Equal(t, 25.0, l.style.Width)
		assert.Equal(t, canvas.RoundCap, l.style.Cap)
		assert.Equal(t, canvas.RoundJoin, l.style.Join)
	}

	strokes := c.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []Point{{10, 10}, {20, 15}, {30, 40}}, strokes[0].Points)
	assert.Equal(t, 25.0, strokes[0].Width)
}

func TestMoveWithoutDown(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)
	c.Move(MouseEvent(10, 10))
	assert.Empty(t, rec.lines)
	assert.Empty(t, c.Strokes())
}

func TestLeaveStopsDrawing(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)
	c.Down(MouseEvent(1, 1))
	c.Leave()
	c.Move(MouseEvent(5, 5))
	assert.Empty(t, rec.lines)
}

func TestTouchUsesFirstContact(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)

	c.TouchStart(Event{ClientX: 99, ClientY: 99, Touches: []Touch{{5, 6}, {70, 70}}})
	c.TouchMove(TouchEvent(15, 16))
	c.TouchEnd()

	require.Len(t, rec.lines, 1)
	assert.Equal(t, 5.0, rec.lines[0].x0)
	assert.Equal(t, 6.0, rec.lines[0].y0)
	assert.Equal(t, 15.0, rec.lines[0].x1)
	assert.False(t, c.Drawing())
}

func TestMapCompensatesCSSScaling(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
	}{
		{"intrinsic", Rect{0, 0, 448, 448}},
		{"shrunk", Rect{10, 20, 224, 224}},
		{"stretched", Rect{100, 5, 896, 300}},
		{"fractional", Rect{0.5, 3.25, 333.3, 171.7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{w: 448, h: 448}
			c := New(rec, func() Rect { return tt.bounds })
			cx := tt.bounds.Left + tt.bounds.Width/2
			cy := tt.bounds.Top + tt.bounds.Height/2

			p := c.Map(MouseEvent(cx, cy))
			assert.InDelta(t, 224, p.X, 1e-9)
			assert.InDelta(t, 224, p.Y, 1e-9)

			origin := c.Map(MouseEvent(tt.bounds.Left, tt.bounds.Top))
			assert.InDelta(t, 0, origin.X, 1e-9)
			assert.InDelta(t, 0, origin.Y, 1e-9)
		})
	}
}

func TestMapPointIndependentAxes(t *testing.T) {
	p := MapPoint(60, 30, Rect{Left: 10, Top: 10, Width: 100, Height: 40}, 200, 400)
	assert.Equal(t, Point{X: 100, Y: 200}, p)
}

func TestMapPointZeroBounds(t *testing.T) {
	p := MapPoint(7, 8, Rect{}, 200, 400)
	assert.Equal(t, Point{X: 7, Y: 8}, p)
}

func TestClear(t *testing.T) {
	r := canvas.NewRaster(60, 60)
	c := New(r, nil)
	c.Down(MouseEvent(10, 10))
	c.Move(MouseEvent(50, 50))
	c.Up()
	require.True(t, r.At(30, 30).R > 250)

	r.SetStrokeColor(color.RGBA{255, 0, 0, 255})
	c.Clear()

	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if r.At(x, y) != canvas.Black {
				t.Fatalf("pixel %d,%d not black: %v", x, y, r.At(x, y))
			}
		}
	}
	assert.Equal(t, color.Color(canvas.White), r.StrokeColor())
	assert.Empty(t, c.Strokes())
}

func TestClearKeepsDrawingState(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)
	c.Down(MouseEvent(10, 10))
	c.Move(MouseEvent(20, 20))
	c.Clear()

	assert.True(t, c.Drawing())
	assert.Equal(t, Point{20, 20}, c.Last())

	c.Move(MouseEvent(30, 30))
	strokes := c.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []Point{{20, 20}, {30, 30}}, strokes[0].Points)
}

func TestReplay(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)
	red := color.RGBA{255, 0, 0, 255}

	c.Replay([]Stroke{
		{Width: 10, Color: red, Points: []Point{{1, 1}, {2, 2}, {3, 3}}},
		{Width: 5, Color: canvas.White},
	})

	require.Len(t, rec.lines, 2)
	assert.Equal(t, 10.0, rec.lines[0].style.Width)
	assert.Equal(t, color.Color(red), rec.lines[0].color)
	// style restored
	assert.Equal(t, 25.0, rec.style.Width)
	assert.Equal(t, color.Color(canvas.White), rec.stroke)
	assert.Len(t, c.Strokes(), 1)
}

func TestStrokesIsACopy(t *testing.T) {
	rec := &recorder{w: 100, h: 100}
	c := New(rec, nil)
	c.Down(MouseEvent(1, 1))
	c.Move(MouseEvent(2, 2))

	s := c.Strokes()
	s[0].Points[0] = Point{99, 99}
	assert.Equal(t, Point{1, 1}, c.Strokes()[0].Points[0])
}

func TestWithLineWidth(t *testing.T) {
	rec := &recorder{w: 10, h: 10}
	New(rec, nil, WithLineWidth(3))
	assert.Equal(t, 3.0, rec.style.Width)
}
