package card

import (
	"strconv"

	"github.com/simukka/valentine/common"
	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
)

// ExplosionHearts is how many hearts the celebration adds.
const ExplosionHearts = 50

// Position places one floating emoji.
type Position struct {
	Left     float64 // percent of viewport width, [0,100)
	Delay    float64 // seconds, [0,5)
	Duration float64 // seconds, [10,30)
}

// RandomPosition draws a uniformly random placement.
func RandomPosition(src common.Source) Position {
	return Position{
		Left:     common.RandomFloat(src, 0, 100),
		Delay:    common.RandomFloat(src, 0, 5),
		Duration: common.RandomFloat(src, 10, 30),
	}
}

// Apply writes the placement to el's inline style.
func (p Position) Apply(el dom.Element) {
	el.SetStyle("left", formatFloat(p.Left)+"vw")
	el.SetStyle("animation-delay", formatFloat(p.Delay)+"s")
	el.SetStyle("animation-duration", formatFloat(p.Duration)+"s")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// floater creates one decorative node. The caller appends it.
func floater(doc dom.Document, class, glyph string, src common.Source) dom.Element {
	el := doc.Create("div")
	el.AddClass(class)
	el.SetText(glyph)
	RandomPosition(src).Apply(el)
	return el
}

// CreateFloatingElements fills the decorative layer with one node per
// configured heart and bear. Without a container it does nothing.
func CreateFloatingElements(cfg *config.Config, b *Bindings, src common.Source) int {
	container, ok := b.FloatingContainer()
	if !ok {
		return 0
	}
	doc := b.Document()
	for _, glyph := range cfg.FloatingEmojis.Hearts {
		container.Append(floater(doc, dom.ClassHeart, glyph, src))
	}
	for _, glyph := range cfg.FloatingEmojis.Bears {
		container.Append(floater(doc, dom.ClassBear, glyph, src))
	}
	return len(cfg.FloatingEmojis.Hearts) + len(cfg.FloatingEmojis.Bears)
}

// HeartExplosion adds ExplosionHearts hearts sampled with replacement from
// the configured hearts. It returns the number of nodes added.
func HeartExplosion(cfg *config.Config, b *Bindings, src common.Source) int {
	container, ok := b.FloatingContainer()
	if !ok {
		return 0
	}
	doc := b.Document()
	hearts := cfg.ExplosionHearts()
	for i := 0; i < ExplosionHearts; i++ {
		glyph := hearts[common.RandomInt(src, 0, len(hearts))]
		container.Append(floater(doc, dom.ClassHeart, glyph, src))
	}
	return ExplosionHearts
}
