// Package board wires the input pad, the processing client and the output
// renderer into the submission flow of one page.
package board

import (
	"context"
	"sync"

	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/pad"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/render"
)

// Board is one drawing board with its output canvas and status label
type Board struct {
	Pad    *pad.Controller
	input  canvas.Encoder
	output canvas.Surface
	label  render.Label
	client process.Processor

	// serializes surface and label writes when results land from tasks
	mu sync.Mutex
}

// New builds a board drawing on input and rendering to output.
// The output surface is painted black.
func New(input canvas.Canvas, output canvas.Surface, label render.Label, client process.Processor, bounds pad.BoundsFunc, opts ...pad.Option) *Board {
	w, h := output.Size()
	output.SetFillColor(canvas.Black)
	output.FillRect(0, 0, float64(w), float64(h))

	return &Board{
		Pad:    pad.New(input, bounds, opts...),
		input:  input,
		output: output,
		label:  label,
		client: client,
	}
}

// Lock and Unlock guard the surfaces for callers mixing pointer events
// with asynchronous submissions.
func (b *Board) Lock() { b.mu.Lock() }
func (b *Board) Unlock() { b.mu.Unlock() }

// Generate submits the input canvas and applies the answer. Every failure is
// written to the label and returned; prior output is left untouched.
func (b *Board) Generate(ctx context.Context) error {
	image, err := b.encode()
	if err != nil {
		b.fail(err)
		return err
	}
	resp, err := b.client.Process(ctx, image)
	return b.apply(resp, err)
}

// GenerateAsync starts a submission and applies its result when it lands.
// Overlapping submissions are not guarded: the last one to complete wins.
// The returned channel yields the outcome once applied.
func (b *Board) GenerateAsync(ctx context.Context) <-chan error {
	out := make(chan error, 1)

	image, err := b.encode()
	if err != nil {
		b.fail(err)
		out <- err
		return out
	}

	task := process.Submit(ctx, b.client, image)
	go func() {
		resp, err := task.Wait()
		out <- b.apply(resp, err)
	}()
	return out
}

func (b *Board) encode() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.input.DataURL()
}

func (b *Board) apply(resp *process.Response, err error) error {
	if err == nil {
		err = resp.Matrix.Validate()
	}
	if err != nil {
		b.fail(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	render.Matrix(b.output, resp.Matrix)
	if resp.Prediction != "" {
		b.label.SetText(render.Prediction(resp.Prediction, resp.Confidence))
	}
	log.Trace.Printf("board: applied result %q", resp.Prediction)
	return nil
}

func (b *Board) fail(err error) {
	log.Trace.Printf("board: submission failed: %v", err)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label.SetText(render.Error(err))
}
