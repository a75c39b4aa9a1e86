package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchpad/export"
)

func pdfCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "pdf",
		Help:      "export the recorded strokes as a vector PDF",
		Completer: createFileCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing destination file"))
				return
			}

			dst := c.Args[0]
			f, err := os.Create(dst)
			if err != nil {
				c.Err(fmt.Errorf("Failed to create %s: %s", dst, err.Error()))
				return
			}
			defer f.Close()

			gen := export.CreatePdfGenerator(currentSketch(ctx), export.PdfGeneratorOptions{})
			if err := gen.Generate(f); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		},
	}
}
