package shell

import (
	"context"
	"flag"

	"github.com/abiosoft/ishell"
)

func generateCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     "generate",
		Help:     "submit the drawing and render the processed matrix",
		LongHelp: "Usage: generate [-async]\n\nThe label is printed when the answer lands.",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("generate", flag.ContinueOnError)
			async := flagSet.Bool("async", false, "return immediately")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			if *async {
				// the result reaches the label, nobody waits on it here
				_ = ctx.Board.GenerateAsync(context.Background())
				c.Println("submitted")
				return
			}

			// failures are already on the label
			_ = ctx.Board.Generate(context.Background())
		},
	}
}
