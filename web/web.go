// Package web holds the page hosting the browser build.
package web

import (
	_ "embed"
)

// DOM ids the browser build binds to
const (
	DrawingBoardID = "drawingBoard"
	OutputBoardID  = "outputBoard"
	PredictionID   = "prediction"
	ClearButtonID  = "clearButton"
	SubmitButtonID = "generateButton"
)

//go:embed static/index.html
var IndexHTML []byte
