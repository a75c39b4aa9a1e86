//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/juruen/sketchpad/pad"
)

// Event converts a MouseEvent or TouchEvent
func Event(v js.Value) pad.Event {
	ev := pad.Event{}
	if x := v.Get("clientX"); x.Type() == js.TypeNumber {
		ev.ClientX = x.Float()
		ev.ClientY = v.Get("clientY").Float()
	}

	touches := v.Get("touches")
	if touches.Type() != js.TypeObject {
		return ev
	}
	for i := 0; i < touches.Length(); i++ {
		t := touches.Index(i)
		ev.Touches = append(ev.Touches, pad.Touch{
			ClientX: t.Get("clientX").Float(),
			ClientY: t.Get("clientY").Float(),
		})
	}
	return ev
}

// Listen registers handler for event on el. The returned func removes it.
func Listen(el js.Value, event string, preventDefault bool, handler func(pad.Event)) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		if preventDefault {
			args[0].Call("preventDefault")
		}
		handler(Event(args[0]))
		return nil
	})
	// touch listeners default to passive, which ignores preventDefault
	el.Call("addEventListener", event, fn, map[string]interface{}{"passive": !preventDefault})
	return func() {
		el.Call("removeEventListener", event, fn)
		fn.Release()
	}
}
