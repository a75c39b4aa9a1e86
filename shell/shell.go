package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/board"
	"github.com/juruen/sketchpad/canvas"
	"github.com/juruen/sketchpad/config"
	"github.com/juruen/sketchpad/pad"
	"github.com/juruen/sketchpad/process"
)

type ShellCtxt struct {
	Board    *board.Board
	Input    *canvas.Raster
	Output   *canvas.Raster
	Label    *StatusLabel
	Viewport pad.Rect
	Config   config.Config
	Client   *process.Client

	// shell output, stdout when nil
	out io.Writer
}

// StatusLabel keeps the label text and echoes every change
type StatusLabel struct {
	mu    sync.Mutex
	text  string
	print func(string)
}

func (l *StatusLabel) SetText(text string) {
	l.mu.Lock()
	l.text = text
	print := l.print
	l.mu.Unlock()
	if print != nil {
		print(text)
	}
}

func (l *StatusLabel) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

// NewShellCtxt builds a headless board from cfg
func NewShellCtxt(cfg config.Config, client *process.Client) *ShellCtxt {
	ctx := &ShellCtxt{
		Input:  canvas.NewRaster(cfg.CanvasWidth, cfg.CanvasHeight),
		Output: canvas.NewRaster(cfg.OutputSize, cfg.OutputSize),
		Label:  &StatusLabel{},
		Viewport: pad.Rect{
			Width:  float64(cfg.DisplayWidth),
			Height: float64(cfg.DisplayHeight),
		},
		Config: cfg,
		Client: client,
	}
	ctx.Board = board.New(ctx.Input, ctx.Output, ctx.Label, client, ctx.bounds, pad.WithLineWidth(cfg.LineWidth))
	return ctx
}

func (ctx *ShellCtxt) bounds() pad.Rect {
	return ctx.Viewport
}

func (ctx *ShellCtxt) prompt() string {
	state := "idle"
	if ctx.Board.Pad.Drawing() {
		state = "drawing"
	}
	return fmt.Sprintf("[%s]>", state)
}

func setupShell(ctx *ShellCtxt) *ishell.Shell {
	shell := ishell.New()
	if ctx.out != nil {
		shell.SetOut(ctx.out)
	}
	ctx.Label.print = func(text string) {
		shell.Println(text)
	}

	shell.SetPrompt(ctx.prompt())
	shell.AddCmd(downCmd(ctx))
	shell.AddCmd(moveCmd(ctx))
	shell.AddCmd(upCmd(ctx))
	shell.AddCmd(leaveCmd(ctx))
	shell.AddCmd(touchCmd(ctx))
	shell.AddCmd(lineCmd(ctx))
	shell.AddCmd(clearCmd(ctx))
	shell.AddCmd(generateCmd(ctx))
	shell.AddCmd(viewportCmd(ctx))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(loadCmd(ctx))
	shell.AddCmd(strokesCmd(ctx))
	shell.AddCmd(pdfCmd(ctx))
	shell.AddCmd(statusCmd(ctx))
	return shell
}

// RunShell runs args as a single command, or the interactive loop when
// args is empty.
func RunShell(ctx *ShellCtxt, args []string) error {
	shell := setupShell(ctx)

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Printf("sketchpad shell, canvas %dx%d, server %s\n",
		ctx.Config.CanvasWidth, ctx.Config.CanvasHeight, ctx.Config.Server)
	shell.Run()
	return nil
}
