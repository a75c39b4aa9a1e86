package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/canvas"
)

func loadCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "load",
		Help:      "draw a PNG or JPEG onto the drawing board, scaled to fit",
		Completer: createFileCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing source file"))
				return
			}

			src := c.Args[0]
			f, err := os.Open(src)
			if err != nil {
				c.Err(fmt.Errorf("Failed to open %s: %s", src, err.Error()))
				return
			}
			defer f.Close()

			img, err := canvas.LoadImage(f)
			if err != nil {
				c.Err(fmt.Errorf("Failed to load %s: %s", src, err.Error()))
				return
			}

			ctx.Board.Lock()
			ctx.Input.Import(img)
			ctx.Board.Unlock()
			c.Println("OK")
		},
	}
}
