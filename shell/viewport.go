package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func viewportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     "viewport",
		Help:     "set the displayed box of the drawing board",
		LongHelp: "Usage: viewport <width> <height> [<left> <top>]\n\nClient coordinates are mapped through this box.",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				v := ctx.Viewport
				c.Printf("%.1fx%.1f at %.1f,%.1f\n", v.Width, v.Height, v.Left, v.Top)
				return
			}
			if len(c.Args) != 2 && len(c.Args) != 4 {
				c.Err(errors.New("expected width height [left top]"))
				return
			}
			values, err := parseFloats(c.Args, len(c.Args))
			if err != nil {
				c.Err(err)
				return
			}
			if values[0] <= 0 || values[1] <= 0 {
				c.Err(errors.New("width and height must be positive"))
				return
			}

			ctx.Board.Lock()
			ctx.Viewport.Width, ctx.Viewport.Height = values[0], values[1]
			if len(values) == 4 {
				ctx.Viewport.Left, ctx.Viewport.Top = values[2], values[3]
			}
			ctx.Board.Unlock()
		},
	}
}
