package pad

// Point is a position in canvas pixel space
type Point struct {
	X float64
	Y float64
}

// Rect is the displayed box of the canvas element in client coordinates,
// what getBoundingClientRect reports.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Touch is one touch contact
type Touch struct {
	ClientX float64
	ClientY float64
}

// Event is a mouse or touch event. When Touches is not empty the first
// contact is used and ClientX/ClientY are ignored.
type Event struct {
	ClientX float64
	ClientY float64
	Touches []Touch
}

// MouseEvent builds a mouse event at the client position
func MouseEvent(x, y float64) Event {
	return Event{ClientX: x, ClientY: y}
}

// TouchEvent builds a single contact touch event
func TouchEvent(x, y float64) Event {
	return Event{Touches: []Touch{{ClientX: x, ClientY: y}}}
}

func (e Event) client() (float64, float64) {
	if len(e.Touches) > 0 {
		return e.Touches[0].ClientX, e.Touches[0].ClientY
	}
	return e.ClientX, e.ClientY
}

// MapPoint translates client coordinates into canvas pixel space. Each axis is
// scaled by canvas size / displayed size, which undoes any CSS scaling.
func MapPoint(clientX, clientY float64, bounds Rect, canvasWidth, canvasHeight int) Point {
	scaleX, scaleY := 1.0, 1.0
	if bounds.Width > 0 {
		scaleX = float64(canvasWidth) / bounds.Width
	}
	if bounds.Height > 0 {
		scaleY = float64(canvasHeight) / bounds.Height
	}
	return Point{
		X: (clientX - bounds.Left) * scaleX,
		Y: (clientY - bounds.Top) * scaleY,
	}
}
