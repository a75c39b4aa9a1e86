package render

import (
	"fmt"
	"strconv"
)

// Label is the status text element
type Label interface {
	SetText(text string)
}

// TextLabel is a Label kept in memory
type TextLabel struct {
	Text string
}

func (l *TextLabel) SetText(text string) {
	l.Text = text
}

// Prediction formats "Predicted Letter: <label> (<confidence>%)" with the
// confidence as a percentage with one decimal. A nil confidence is NaN.
func Prediction(label string, confidence *float64) string {
	pct := "NaN"
	if confidence != nil {
		pct = strconv.FormatFloat(*confidence*100, 'f', 1, 64)
	}
	return fmt.Sprintf("Predicted Letter: %s (%s%%)", label, pct)
}

// Error formats a failure for the status label
func Error(err error) string {
	return "Error: " + err.Error()
}
