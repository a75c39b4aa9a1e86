package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/encoding/sketch"
)

func currentSketch(ctx *ShellCtxt) *sketch.Sketch {
	ctx.Board.Lock()
	defer ctx.Board.Unlock()
	w, h := ctx.Input.Size()
	return &sketch.Sketch{Width: w, Height: h, Strokes: ctx.Board.Pad.Strokes()}
}

func strokesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "strokes",
		Help:      "save or replay the recorded strokes",
		LongHelp:  "Usage: strokes save|load <file.sketch>\n       strokes",
		Completer: createFileCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				s := currentSketch(ctx)
				for i, stroke := range s.Strokes {
					c.Printf("[%d]\t%d points\twidth %.1f\n", i, len(stroke.Points), stroke.Width)
				}
				return
			}
			if len(c.Args) != 2 {
				c.Err(errors.New("missing file"))
				return
			}

			path := c.Args[1]
			switch c.Args[0] {
			case "save":
				if err := sketch.WriteFile(path, currentSketch(ctx)); err != nil {
					c.Err(err)
					return
				}
			case "load":
				s, err := sketch.ReadFile(path)
				if err != nil {
					c.Err(err)
					return
				}
				w, h := ctx.Input.Size()
				if s.Width != w || s.Height != h {
					c.Err(fmt.Errorf("sketch is %dx%d, canvas is %dx%d", s.Width, s.Height, w, h))
					return
				}
				ctx.Board.Lock()
				ctx.Board.Pad.Replay(s.Strokes)
				ctx.Board.Unlock()
			default:
				c.Err(errors.New("expected save or load"))
				return
			}
			c.Println("OK")
		},
	}
}
