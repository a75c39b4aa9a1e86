package canvas

import (
	"fmt"
	"image/color"
	"strconv"
)

// CSSColor formats c as a CSS color string, #rrggbb when opaque and
// rgba() otherwise.
func CSSColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	alpha := strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, alpha)
}

var capNames = [...]string{ButtCap: "butt", RoundCap: "round", SquareCap: "square"}
var joinNames = [...]string{MiterJoin: "miter", RoundJoin: "round", BevelJoin: "bevel"}

// String returns the CSS lineCap keyword
func (c LineCap) String() string {
	if int(c) < len(capNames) {
		return capNames[c]
	}
	return "butt"
}

// String returns the CSS lineJoin keyword
func (j LineJoin) String() string {
	if int(j) < len(joinNames) {
		return joinNames[j]
	}
	return "miter"
}
