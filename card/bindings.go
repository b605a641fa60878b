package card

import (
	"github.com/simukka/valentine/dom"
	"github.com/simukka/valentine/music"
)

// Element identifiers the card binds to.
const (
	TargetValentineTitle = "valentineTitle"

	TargetQuestion1Text = "question1Text"
	TargetYesBtn1       = "yesBtn1"
	TargetNoBtn1        = "noBtn1"
	TargetSecretAnswer  = "secretAnswerBtn"

	TargetQuestion2Text = "question2Text"
	TargetStartText     = "startText"
	TargetNextBtn       = "nextBtn"

	TargetQuestion3Text = "question3Text"
	TargetYesBtn3       = "yesBtn3"
	TargetNoBtn3        = "noBtn3"

	TargetCelebration        = "celebration"
	TargetCelebrationTitle   = "celebrationTitle"
	TargetCelebrationMessage = "celebrationMessage"
	TargetCelebrationEmojis  = "celebrationEmojis"

	TargetLoveMeter = "loveMeter"
	TargetLoveValue = "loveValue"
	TargetExtraLove = "extraLove"

	TargetMusicControls = "musicControls"
	TargetMusicToggle   = "musicToggle"
	TargetMusicSource   = "musicSource"
	TargetBgMusic       = "bgMusic"
)

// Class markers the card looks elements up by.
const (
	ClassQuestionSection = "question-section"
	ClassFloatingElems   = "floating-elements"
)

var catalogue = []string{
	TargetValentineTitle,
	TargetQuestion1Text, TargetYesBtn1, TargetNoBtn1, TargetSecretAnswer,
	TargetQuestion2Text, TargetStartText, TargetNextBtn,
	TargetQuestion3Text, TargetYesBtn3, TargetNoBtn3,
	TargetCelebration, TargetCelebrationTitle, TargetCelebrationMessage, TargetCelebrationEmojis,
	TargetLoveMeter, TargetLoveValue, TargetExtraLove,
	TargetMusicControls, TargetMusicToggle, TargetMusicSource,
}

// Bindings is the lookup table from identifier to element, filled once
// when the card starts. Absent elements are simply not in the table.
type Bindings struct {
	doc       dom.Document
	elems     map[string]dom.Element
	sections  map[string]dom.Element
	order     []dom.Element
	container dom.Element
	audio     dom.Media
}

// Bind looks up every element the card uses.
func Bind(doc dom.Document) *Bindings {
	b := &Bindings{
		doc:      doc,
		elems:    make(map[string]dom.Element, len(catalogue)),
		sections: make(map[string]dom.Element),
	}
	for _, id := range catalogue {
		if el, ok := doc.ByID(id); ok {
			b.elems[id] = el
		}
	}
	for _, id := range []string{sectionID(1), sectionID(2), sectionID(3)} {
		if el, ok := doc.ByID(id); ok {
			b.sections[id] = el
		}
	}
	b.order = doc.ByClass(ClassQuestionSection)
	if floats := doc.ByClass(ClassFloatingElems); len(floats) > 0 {
		b.container = floats[0]
	}
	if m, ok := doc.MediaByID(TargetBgMusic); ok {
		b.audio = m
	}
	return b
}

// Document is the page the table was built from.
func (b *Bindings) Document() dom.Document {
	return b.doc
}

// Get returns the bound element for id.
func (b *Bindings) Get(id string) (dom.Element, bool) {
	el, ok := b.elems[id]
	return el, ok
}

// QuestionSections are every element tagged as a question section.
func (b *Bindings) QuestionSections() []dom.Element {
	return b.order
}

// Section returns the question section with the given identifier.
func (b *Bindings) Section(id string) (dom.Element, bool) {
	el, ok := b.sections[id]
	return el, ok
}

// FloatingContainer is the decorative layer, if the page has one.
func (b *Bindings) FloatingContainer() (dom.Element, bool) {
	return b.container, b.container != nil
}

// MusicHooks collects the audio elements. Missing ones stay nil.
func (b *Bindings) MusicHooks() music.Hooks {
	var h music.Hooks
	h.Controls, _ = b.Get(TargetMusicControls)
	h.Toggle, _ = b.Get(TargetMusicToggle)
	h.Source, _ = b.Get(TargetMusicSource)
	h.Audio = b.audio
	return h
}

// setText writes text into the bound element. Missing targets and empty
// values are skipped.
func (b *Bindings) setText(id, text string) {
	if text == "" {
		return
	}
	if el, ok := b.Get(id); ok {
		el.SetText(text)
	}
}
