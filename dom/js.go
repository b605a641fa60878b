//go:build js
// +build js

package dom

import (
	"github.com/gopherjs/gopherjs/js"
)

func missing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

// jsElement wraps a live DOM node.
type jsElement struct {
	o *js.Object
}

// Wrap adapts a DOM node handed over by the page, e.g. the `this` of an
// inline onclick handler. It returns nil for null or undefined.
func Wrap(o *js.Object) Element {
	if missing(o) {
		return nil
	}
	return &jsElement{o: o}
}

func (e *jsElement) SetText(text string) { e.o.Set("textContent", text) }
func (e *jsElement) Text() string        { return e.o.Get("textContent").String() }

func (e *jsElement) AddClass(name string)    { e.o.Get("classList").Call("add", name) }
func (e *jsElement) RemoveClass(name string) { e.o.Get("classList").Call("remove", name) }
func (e *jsElement) HasClass(name string) bool {
	return e.o.Get("classList").Call("contains", name).Bool()
}

func (e *jsElement) SetStyle(property, value string) {
	e.o.Get("style").Call("setProperty", property, value)
}

func (e *jsElement) Style(property string) string {
	return e.o.Get("style").Call("getPropertyValue", property).String()
}

func (e *jsElement) SetAttr(name, value string) { e.o.Call("setAttribute", name, value) }

func (e *jsElement) Value() string {
	v := e.o.Get("value")
	if missing(v) {
		return ""
	}
	return v.String()
}

func (e *jsElement) SetValue(value string) { e.o.Set("value", value) }

func (e *jsElement) Size() (float64, float64) {
	return e.o.Get("offsetWidth").Float(), e.o.Get("offsetHeight").Float()
}

func (e *jsElement) Append(child Element) {
	if c, ok := child.(*jsElement); ok {
		e.o.Call("appendChild", c.o)
	}
}

func (e *jsElement) On(event string, fn func()) {
	e.o.Call("addEventListener", event, func(*js.Object) { fn() })
}

// jsMedia wraps an HTMLMediaElement.
type jsMedia struct {
	jsElement
}

func (m *jsMedia) SetVolume(volume float64) { m.o.Set("volume", volume) }
func (m *jsMedia) Load()                    { m.o.Call("load") }
func (m *jsMedia) Pause()                   { m.o.Call("pause") }
func (m *jsMedia) Paused() bool             { return m.o.Get("paused").Bool() }

func (m *jsMedia) Play(done func(PlayResult)) {
	promise := m.o.Call("play")
	// Older browsers return undefined instead of a promise.
	if missing(promise) {
		done(PlayResult{Outcome: PlaySucceeded})
		return
	}
	promise.Call("then", func() {
		done(PlayResult{Outcome: PlaySucceeded})
	}, func(reason *js.Object) {
		msg := ""
		if !missing(reason) {
			msg = reason.Call("toString").String()
		}
		done(PlayResult{Outcome: PlayRejected, Reason: msg})
	})
}

// jsDocument is window.document.
type jsDocument struct {
	doc *js.Object
	win *js.Object
}

// Browser returns the page the program runs in.
func Browser() Document {
	return &jsDocument{
		doc: js.Global.Get("document"),
		win: js.Global,
	}
}

func (d *jsDocument) ByID(id string) (Element, bool) {
	o := d.doc.Call("getElementById", id)
	if missing(o) {
		return nil, false
	}
	return &jsElement{o: o}, true
}

func (d *jsDocument) MediaByID(id string) (Media, bool) {
	o := d.doc.Call("getElementById", id)
	if missing(o) || missing(o.Get("play")) {
		return nil, false
	}
	return &jsMedia{jsElement{o: o}}, true
}

func (d *jsDocument) ByClass(class string) []Element {
	list := d.doc.Call("querySelectorAll", "."+class)
	n := list.Length()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &jsElement{o: list.Index(i)})
	}
	return out
}

func (d *jsDocument) Create(tag string) Element {
	return &jsElement{o: d.doc.Call("createElement", tag)}
}

func (d *jsDocument) Viewport() (float64, float64) {
	return d.win.Get("innerWidth").Float(), d.win.Get("innerHeight").Float()
}

func (d *jsDocument) SetTitle(title string) { d.doc.Set("title", title) }

func (d *jsDocument) SetRootVar(name, value string) {
	d.doc.Get("documentElement").Get("style").Call("setProperty", name, value)
}
