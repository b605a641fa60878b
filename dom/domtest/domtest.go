// Package domtest is an in-memory dom.Document for tests.
package domtest

import (
	"github.com/simukka/valentine/dom"
)

// Element is a fake DOM node. Fields are exported so tests can inspect and
// arrange state directly.
type Element struct {
	ID       string
	Tag      string
	Content  string
	Classes  map[string]bool
	Styles   map[string]string
	Attrs    map[string]string
	Val      string
	Width    float64
	Height   float64
	Children []*Element

	handlers map[string][]func()
}

var _ dom.Element = (*Element)(nil)

// NewElement returns a detached element.
func NewElement(tag string, classes ...string) *Element {
	e := &Element{
		Tag:      tag,
		Classes:  make(map[string]bool),
		Styles:   make(map[string]string),
		Attrs:    make(map[string]string),
		handlers: make(map[string][]func()),
	}
	for _, c := range classes {
		e.Classes[c] = true
	}
	return e
}

func (e *Element) SetText(text string)             { e.Content = text }
func (e *Element) Text() string                    { return e.Content }
func (e *Element) AddClass(name string)            { e.Classes[name] = true }
func (e *Element) RemoveClass(name string)         { delete(e.Classes, name) }
func (e *Element) HasClass(name string) bool       { return e.Classes[name] }
func (e *Element) SetStyle(property, value string) { e.Styles[property] = value }
func (e *Element) Style(property string) string    { return e.Styles[property] }
func (e *Element) SetAttr(name, value string)      { e.Attrs[name] = value }
func (e *Element) Value() string                   { return e.Val }
func (e *Element) SetValue(value string)           { e.Val = value }
func (e *Element) Size() (float64, float64)        { return e.Width, e.Height }
func (e *Element) On(event string, fn func())      { e.handlers[event] = append(e.handlers[event], fn) }
func (e *Element) Hidden() bool                    { return e.Classes[dom.ClassHidden] }
func (e *Element) Listeners(event string) int      { return len(e.handlers[event]) }

func (e *Element) Append(child dom.Element) {
	if c, ok := child.(*Element); ok {
		e.Children = append(e.Children, c)
	}
}

// Fire runs the handlers registered for event.
func (e *Element) Fire(event string) {
	for _, fn := range e.handlers[event] {
		fn()
	}
}

// Input sets the value and fires an "input" event, like dragging a slider.
func (e *Element) Input(value string) {
	e.Val = value
	e.Fire("input")
}

// Media is a fake audio element. Set Reject to make Play fail with that
// reason; set Defer to hold the outcome until Resolve is called.
type Media struct {
	*Element

	Volume    float64
	VolumeSet bool
	Loads     int
	Plays     int
	Pauses    int
	IsPaused  bool
	Reject    string
	Defer     bool

	pending []func(dom.PlayResult)
}

var _ dom.Media = (*Media)(nil)

// NewMedia returns a paused media element.
func NewMedia() *Media {
	return &Media{Element: NewElement("audio"), IsPaused: true}
}

func (m *Media) SetVolume(volume float64) { m.Volume, m.VolumeSet = volume, true }
func (m *Media) Load()                    { m.Loads++ }
func (m *Media) Paused() bool             { return m.IsPaused }

func (m *Media) Pause() {
	m.Pauses++
	m.IsPaused = true
}

func (m *Media) Play(done func(dom.PlayResult)) {
	m.Plays++
	if m.Defer {
		m.pending = append(m.pending, done)
		return
	}
	m.settle(done)
}

// Resolve delivers the outcomes held back by Defer.
func (m *Media) Resolve() {
	pending := m.pending
	m.pending = nil
	for _, done := range pending {
		m.settle(done)
	}
}

func (m *Media) settle(done func(dom.PlayResult)) {
	if m.Reject != "" {
		done(dom.PlayResult{Outcome: dom.PlayRejected, Reason: m.Reject})
		return
	}
	m.IsPaused = false
	done(dom.PlayResult{Outcome: dom.PlaySucceeded})
}

// Document is a fake page.
type Document struct {
	Title    string
	RootVars map[string]string
	Width    float64
	Height   float64

	byID  map[string]*Element
	media map[string]*Media
	all   []*Element
}

var _ dom.Document = (*Document)(nil)

// NewDocument returns an empty 1280x720 page.
func NewDocument() *Document {
	return &Document{
		RootVars: make(map[string]string),
		Width:    1280,
		Height:   720,
		byID:     make(map[string]*Element),
		media:    make(map[string]*Media),
	}
}

// Add registers an element under id and returns it.
func (d *Document) Add(id, tag string, classes ...string) *Element {
	e := NewElement(tag, classes...)
	e.ID = id
	if id != "" {
		d.byID[id] = e
	}
	d.all = append(d.all, e)
	return e
}

// AddMedia registers a media element under id and returns it.
func (d *Document) AddMedia(id string) *Media {
	m := NewMedia()
	m.ID = id
	d.media[id] = m
	d.byID[id] = m.Element
	d.all = append(d.all, m.Element)
	return m
}

// Get returns the element with id, or nil.
func (d *Document) Get(id string) *Element {
	return d.byID[id]
}

func (d *Document) ByID(id string) (dom.Element, bool) {
	if m, ok := d.media[id]; ok {
		return m, true
	}
	e, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return e, true
}

func (d *Document) MediaByID(id string) (dom.Media, bool) {
	m, ok := d.media[id]
	if !ok {
		return nil, false
	}
	return m, true
}

func (d *Document) ByClass(class string) []dom.Element {
	var out []dom.Element
	for _, e := range d.all {
		if e.Classes[class] {
			out = append(out, e)
		}
	}
	return out
}

func (d *Document) Create(tag string) dom.Element {
	return NewElement(tag)
}

func (d *Document) Viewport() (float64, float64) { return d.Width, d.Height }
func (d *Document) SetTitle(title string)        { d.Title = title }
func (d *Document) SetRootVar(name, value string) {
	d.RootVars[name] = value
}

// CardPage builds the full markup the card expects: three question
// sections (only the first visible), the celebration section, the love
// meter, the floating container and the music controls.
func CardPage() *Document {
	d := NewDocument()
	d.Add("", "div", "floating-elements")
	d.Add("valentineTitle", "h1")

	d.Add("question1", "div", "question-section")
	d.Add("question1Text", "h2")
	d.Add("yesBtn1", "button")
	d.Add("noBtn1", "button")
	d.Add("secretAnswerBtn", "button")

	d.Add("question2", "div", "question-section", dom.ClassHidden)
	d.Add("question2Text", "h2")
	d.Add("startText", "span")
	d.Add("loveMeter", "input").Val = "0"
	d.Add("loveValue", "span")
	d.Add("extraLove", "div", dom.ClassHidden)
	d.Add("nextBtn", "button")

	d.Add("question3", "div", "question-section", dom.ClassHidden)
	d.Add("question3Text", "h2")
	d.Add("yesBtn3", "button")
	d.Add("noBtn3", "button")

	d.Add("celebration", "div", "celebration", dom.ClassHidden)
	d.Add("celebrationTitle", "h2")
	d.Add("celebrationMessage", "p")
	d.Add("celebrationEmojis", "div")

	d.Add("musicControls", "div")
	d.Add("musicToggle", "button")
	d.AddMedia("bgMusic")
	d.Add("musicSource", "source")
	return d
}

// FloatingContainer returns the first .floating-elements node, or nil.
func (d *Document) FloatingContainer() *Element {
	for _, e := range d.all {
		if e.Classes["floating-elements"] {
			return e
		}
	}
	return nil
}

// Remove drops the element with id, simulating a stripped-down page.
func (d *Document) Remove(id string) {
	e := d.byID[id]
	delete(d.byID, id)
	delete(d.media, id)
	for i, x := range d.all {
		if x == e {
			d.all = append(d.all[:i], d.all[i+1:]...)
			break
		}
	}
}
