package board

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/pad"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixJSON(v int) string {
	m := make([][]int, process.MatrixSize)
	for i := range m {
		m[i] = make([]int, process.MatrixSize)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	b, _ := json.Marshal(m)
	return string(b)
}

type fixture struct {
	board  *Board
	input  *canvas.Raster
	output *canvas.Raster
	label  *render.TextLabel
}

func newFixture(t *testing.T, status int, body string) *fixture {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req process.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, strings.HasPrefix(req.Image, "data:image/png;base64,"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := process.NewClient(srv.URL, nil)
	require.NoError(t, err)

	f := &fixture{
		input:  canvas.NewRaster(448, 448),
		output: canvas.NewRaster(280, 280),
		label:  &render.TextLabel{},
	}
	f.board = New(f.input, f.output, f.label, client, nil)
	return f
}

func (f *fixture) outputIs(t *testing.T, want uint8) {
	t.Helper()
	for y := 0; y < 280; y += 7 {
		for x := 0; x < 280; x += 7 {
			if got := f.output.At(x, y); got != canvas.Gray(want) {
				t.Fatalf("output %d,%d = %v, want %d", x, y, got, want)
			}
		}
	}
}

func TestGenerateBlackAndWhite(t *testing.T) {
	f := newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s}`, matrixJSON(255)))
	require.NoError(t, f.board.Generate(context.Background()))
	f.outputIs(t, 255)
	// no prediction leaves the label alone
	assert.Empty(t, f.label.Text)

	f = newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s}`, matrixJSON(0)))
	require.NoError(t, f.board.Generate(context.Background()))
	f.outputIs(t, 0)
}

func TestGeneratePrediction(t *testing.T) {
	f := newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s, "prediction": "A", "confidence": 0.873}`, matrixJSON(0)))
	require.NoError(t, f.board.Generate(context.Background()))
	assert.Equal(t, "Predicted Letter: A (87.3%)", f.label.Text)

	f = newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s, "prediction": "A", "confidence": null}`, matrixJSON(0)))
	require.NoError(t, f.board.Generate(context.Background()))
	assert.Equal(t, "Predicted Letter: A (0.0%)", f.label.Text)

	f = newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s, "prediction": "A"}`, matrixJSON(0)))
	require.NoError(t, f.board.Generate(context.Background()))
	assert.Equal(t, "Predicted Letter: A (NaN%)", f.label.Text)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		label  string
	}{
		{"server message", http.StatusBadRequest, `{"error": "bad image"}`, "Error: bad image"},
		{"empty error body", http.StatusInternalServerError, ``, "Error: Server error"},
		{"missing matrix", http.StatusOK, `{"prediction": "A", "confidence": 0.5}`, "Error: No matrix data received"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.status, tt.body)
			// prior state must survive a failure
			f.output.SetFillColor(canvas.Gray(99))
			f.output.FillRect(0, 0, 280, 280)

			err := f.board.Generate(context.Background())
			assert.Error(t, err)
			assert.Equal(t, tt.label, f.label.Text)
			f.outputIs(t, 99)
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	client, err := process.NewClient("http://127.0.0.1:1", nil)
	require.NoError(t, err)
	label := &render.TextLabel{Text: "Predicted Letter: B (50.0%)"}
	b := New(canvas.NewRaster(448, 448), canvas.NewRaster(280, 280), label, client, nil)

	assert.Error(t, b.Generate(context.Background()))
	assert.True(t, strings.HasPrefix(label.Text, "Error: send request"))
}

func TestGenerateAsync(t *testing.T) {
	f := newFixture(t, http.StatusOK, fmt.Sprintf(`{"matrix": %s, "prediction": "Z", "confidence": 1}`, matrixJSON(255)))

	first := f.board.GenerateAsync(context.Background())
	second := f.board.GenerateAsync(context.Background())
	require.NoError(t, <-first)
	require.NoError(t, <-second)

	f.outputIs(t, 255)
	assert.Equal(t, "Predicted Letter: Z (100.0%)", f.label.Text)
}

type badMatrix struct{}

func (badMatrix) Process(ctx context.Context, image string) (*process.Response, error) {
	return &process.Response{Matrix: process.Matrix{{1}}}, nil
}

func TestGenerateRejectsUnvalidatedMatrix(t *testing.T) {
	label := &render.TextLabel{}
	b := New(canvas.NewRaster(10, 10), canvas.NewRaster(28, 28), label, badMatrix{}, nil)
	assert.Equal(t, process.ErrBadMatrix, b.Generate(context.Background()))
	assert.Equal(t, "Error: Invalid matrix dimensions", label.Text)
}

func TestDrawingReachesSubmission(t *testing.T) {
	images := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req process.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		images <- req.Image
		fmt.Fprintf(w, `{"matrix": %s}`, matrixJSON(0))
	}))
	defer srv.Close()
	client, err := process.NewClient(srv.URL, nil)
	require.NoError(t, err)

	input := canvas.NewRaster(448, 448)
	// displayed at half size
	bounds := func() pad.Rect { return pad.Rect{Width: 224, Height: 224} }
	b := New(input, canvas.NewRaster(280, 280), &render.TextLabel{}, client, bounds)
	b.Pad.Down(pad.MouseEvent(50, 112))
	b.Pad.Move(pad.MouseEvent(174, 112))
	b.Pad.Up()
	require.NoError(t, b.Generate(context.Background()))

	img, err := canvas.DecodeDataURL(<-images)
	require.NoError(t, err)
	r, _, _, _ := img.At(224, 224).RGBA()
	assert.True(t, r > 0xf000)
	r, _, _, _ = img.At(224, 20).RGBA()
	assert.Equal(t, uint32(0), r)
}
