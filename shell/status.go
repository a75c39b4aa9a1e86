package shell

import (
	"github.com/abiosoft/ishell"
)

func statusCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "show the label and drawing state",
		Func: func(c *ishell.Context) {
			ctx.Board.Lock()
			drawing := ctx.Board.Pad.Drawing()
			last := ctx.Board.Pad.Last()
			strokes := len(ctx.Board.Pad.Strokes())
			ctx.Board.Unlock()

			c.Printf("label:   %s\n", ctx.Label.Text())
			c.Printf("drawing: %t (last %.1f,%.1f)\n", drawing, last.X, last.Y)
			c.Printf("strokes: %d\n", strokes)
			c.Printf("server:  %s%s\n", ctx.Config.Server, ctx.Config.Endpoint)
		},
	}
}
