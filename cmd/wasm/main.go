//go:build js && wasm

// Command wasm is the browser front end of the sketch pad. Build with
// GOOS=js GOARCH=wasm and serve it as static/sketchpad.wasm.
package main

import (
	"context"
	"syscall/js"

	"github.com/juruen/sketchpad/board"
	"github.com/juruen/sketchpad/log"
	"github.com/juruen/sketchpad/pad"
	"github.com/juruen/sketchpad/process"
	"github.com/juruen/sketchpad/render"
	"github.com/juruen/sketchpad/web"
	"github.com/juruen/sketchpad/web/dom"
)

func main() {
	if err := run(); err != nil {
		log.Error.Println(err)
		if label, lerr := dom.NewLabel(web.PredictionID); lerr == nil {
			label.SetText(render.Error(err))
		}
		return
	}
	select {}
}

func run() error {
	input, err := dom.NewCanvas(web.DrawingBoardID)
	if err != nil {
		return err
	}
	output, err := dom.NewCanvas(web.OutputBoardID)
	if err != nil {
		return err
	}
	label, err := dom.NewLabel(web.PredictionID)
	if err != nil {
		return err
	}

	origin := js.Global().Get("window").Get("location").Get("origin").String()
	client, err := process.NewClient(origin, nil)
	if err != nil {
		return err
	}

	b := board.New(input, output, label, client, input.Bounds)
	bindPointer(b, input.Element())

	clearButton, err := dom.ByID(web.ClearButtonID)
	if err != nil {
		return err
	}
	generateButton, err := dom.ByID(web.SubmitButtonID)
	if err != nil {
		return err
	}
	dom.Listen(clearButton, "click", false, func(pad.Event) {
		b.Lock()
		defer b.Unlock()
		b.Pad.Clear()
	})
	dom.Listen(generateButton, "click", false, func(pad.Event) {
		done := b.GenerateAsync(context.Background())
		go func() {
			if err := <-done; err != nil {
				log.Warning.Printf("generate: %v", err)
			}
		}()
	})

	log.Info.Printf("sketchpad ready, processing at %s", origin)
	return nil
}

func bindPointer(b *board.Board, el js.Value) {
	locked := func(f func(pad.Event)) func(pad.Event) {
		return func(ev pad.Event) {
			b.Lock()
			defer b.Unlock()
			f(ev)
		}
	}
	up := func(pad.Event) { b.Pad.Up() }

	dom.Listen(el, "mousedown", false, locked(b.Pad.Down))
	dom.Listen(el, "mousemove", false, locked(b.Pad.Move))
	dom.Listen(el, "mouseup", false, locked(up))
	dom.Listen(el, "mouseout", false, locked(func(pad.Event) { b.Pad.Leave() }))

	dom.Listen(el, "touchstart", true, locked(b.Pad.TouchStart))
	dom.Listen(el, "touchmove", true, locked(b.Pad.TouchMove))
	dom.Listen(el, "touchend", true, locked(func(pad.Event) { b.Pad.TouchEnd() }))
}
