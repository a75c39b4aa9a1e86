package shell

import (
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/pad"
)

func pointerCmd(ctx *ShellCtxt, name, help string, apply func(ev pad.Event)) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     name,
		Help:     help,
		LongHelp: "Usage: " + name + " <client_x> <client_y>",
		Func: func(c *ishell.Context) {
			xy, err := parseFloats(c.Args, 2)
			if err != nil {
				c.Err(err)
				return
			}

			ctx.Board.Lock()
			apply(pad.MouseEvent(xy[0], xy[1]))
			ctx.Board.Unlock()
			c.SetPrompt(ctx.prompt())
		},
	}
}

func downCmd(ctx *ShellCtxt) *ishell.Cmd {
	return pointerCmd(ctx, "down", "press the pointer at client coordinates", ctx.Board.Pad.Down)
}

func moveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return pointerCmd(ctx, "move", "move the pointer to client coordinates", ctx.Board.Pad.Move)
}

func upCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "up",
		Help: "release the pointer",
		Func: func(c *ishell.Context) {
			ctx.Board.Lock()
			ctx.Board.Pad.Up()
			ctx.Board.Unlock()
			c.SetPrompt(ctx.prompt())
		},
	}
}

func leaveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "leave",
		Help: "move the pointer out of the canvas",
		Func: func(c *ishell.Context) {
			ctx.Board.Lock()
			ctx.Board.Pad.Leave()
			ctx.Board.Unlock()
			c.SetPrompt(ctx.prompt())
		},
	}
}

func touchCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     "touch",
		Help:     "send a touch event",
		LongHelp: "Usage: touch start|move <client_x> <client_y>\n       touch end",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing touch phase"))
				return
			}

			phase := c.Args[0]
			if phase == "end" {
				ctx.Board.Lock()
				ctx.Board.Pad.TouchEnd()
				ctx.Board.Unlock()
				c.SetPrompt(ctx.prompt())
				return
			}

			xy, err := parseFloats(c.Args[1:], 2)
			if err != nil {
				c.Err(err)
				return
			}
			ev := pad.TouchEvent(xy[0], xy[1])

			ctx.Board.Lock()
			defer ctx.Board.Unlock()
			switch phase {
			case "start":
				ctx.Board.Pad.TouchStart(ev)
			case "move":
				ctx.Board.Pad.TouchMove(ev)
			default:
				c.Err(errors.New("touch phase must be start, move or end"))
				return
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}

func lineCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     "line",
		Help:     "draw a line: down, move and up in one go",
		LongHelp: "Usage: line <x0> <y0> <x1> <y1> [<x2> <y2> ...]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 4 || len(c.Args)%2 != 0 {
				c.Err(errors.New("expected at least two x y pairs"))
				return
			}
			coords, err := parseFloats(c.Args, len(c.Args))
			if err != nil {
				c.Err(err)
				return
			}

			ctx.Board.Lock()
			ctx.Board.Pad.Down(pad.MouseEvent(coords[0], coords[1]))
			for i := 2; i < len(coords); i += 2 {
				ctx.Board.Pad.Move(pad.MouseEvent(coords[i], coords[i+1]))
			}
			ctx.Board.Pad.Up()
			ctx.Board.Unlock()
			c.SetPrompt(ctx.prompt())
		},
	}
}

func clearCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "clear",
		Help: "clear the drawing board",
		Func: func(c *ishell.Context) {
			ctx.Board.Lock()
			ctx.Board.Pad.Clear()
			ctx.Board.Unlock()
		},
	}
}
