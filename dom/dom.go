// Package dom is the narrow slice of the browser document the card touches.
//
// The card packages only see these interfaces. The GopherJS implementation
// lives in js.go (js build tag); dom/domtest provides an in-memory document
// for tests.
package dom

// Class markers toggled by the card and styled by the page stylesheet.
const (
	ClassHidden    = "hidden"
	ClassHeart     = "heart"
	ClassBear      = "bear"
	ClassSuperLove = "super-love"
)

// Element is a single DOM node.
type Element interface {
	SetText(text string)
	Text() string

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	SetStyle(property, value string)
	Style(property string) string

	SetAttr(name, value string)

	// Value and SetValue access the value of form controls.
	Value() string
	SetValue(value string)

	// Size is the rendered width and height in CSS pixels.
	Size() (width, height float64)

	Append(child Element)

	// On registers fn for a DOM event such as "click" or "input".
	On(event string, fn func())
}

// PlayOutcome is how an asynchronous play request ended.
type PlayOutcome int

const (
	PlaySucceeded PlayOutcome = iota
	PlayRejected
)

func (o PlayOutcome) String() string {
	if o == PlayRejected {
		return "rejected"
	}
	return "succeeded"
}

// PlayResult is delivered once per Media.Play call.
type PlayResult struct {
	Outcome PlayOutcome
	// Reason is the rejection message reported by the browser.
	Reason string
}

// Media is an audio or video element.
type Media interface {
	Element

	SetVolume(volume float64)
	Load()
	// Play starts playback. done receives the outcome, possibly after
	// Play has returned.
	Play(done func(PlayResult))
	Pause()
	Paused() bool
}

// Document is the page the card renders into.
type Document interface {
	// ByID returns the element with the given id, if present.
	ByID(id string) (Element, bool)
	// MediaByID returns the media element with the given id, if present.
	MediaByID(id string) (Media, bool)
	// ByClass returns every element carrying the class, in document order.
	ByClass(class string) []Element
	// Create makes a detached element.
	Create(tag string) Element

	// Viewport is the inner window size in CSS pixels.
	Viewport() (width, height float64)

	SetTitle(title string)
	// SetRootVar sets a CSS custom property on the document element.
	SetRootVar(name, value string)
}
