package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/canvas"
)

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "save",
		Help:      "save a canvas as PNG",
		LongHelp:  "Usage: save input|output <file.png>",
		Completer: createFileCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("missing canvas or destination file"))
				return
			}

			var raster *canvas.Raster
			switch c.Args[0] {
			case "input":
				raster = ctx.Input
			case "output":
				raster = ctx.Output
			default:
				c.Err(errors.New("canvas must be input or output"))
				return
			}

			dst := c.Args[1]
			if err := writePNG(ctx, raster, dst); err != nil {
				c.Err(fmt.Errorf("Failed to save %s: %s", dst, err.Error()))
				return
			}
			c.Println("OK")
		},
	}
}

func writePNG(ctx *ShellCtxt, raster *canvas.Raster, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx.Board.Lock()
	defer ctx.Board.Unlock()
	return raster.WritePNG(f)
}
