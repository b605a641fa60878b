// Package card runs the greeting card on a page: it binds the configured
// texts, scatters the floating emojis, steps through the questions and
// throws the celebration.
package card

import (
	"go.uber.org/zap"

	"github.com/simukka/valentine/common"
	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
	"github.com/simukka/valentine/music"
)

// Card holds the complete card state.
type Card struct {
	Config   *config.Config
	Bindings *Bindings
	Scene    *Scene
	Meter    *LoveMeter
	Music    *music.Controller

	rng common.Source
	log *zap.SugaredLogger
}

// New binds the card to doc. cfg is shared with every component and must
// not be modified after Start.
func New(cfg *config.Config, doc dom.Document, rng common.Source, log *zap.SugaredLogger) *Card {
	b := Bind(doc)
	return &Card{
		Config:   cfg,
		Bindings: b,
		Scene:    NewScene(cfg, b, rng, log),
		Meter:    NewLoveMeter(cfg, b),
		Music:    music.New(cfg, b.MusicHooks(), log),
		rng:      rng,
		log:      log,
	}
}

// Start repairs the configuration, then renders the page and attaches the
// widgets. It never fails; problems are logged.
func (c *Card) Start() config.Warnings {
	warnings := config.Validate(c.Config)
	if len(warnings) > 0 {
		c.log.Warn("Configuration warnings:")
		for _, w := range warnings {
			c.log.Warn("- " + w)
		}
	}

	ApplyTheme(c.Config, c.Bindings)
	Render(c.Config, c.Bindings)
	floats := CreateFloatingElements(c.Config, c.Bindings, c.rng)
	state := c.Music.Attach()
	c.Meter.Attach()

	c.log.Debugw("Card started",
		"floats", floats,
		"music", state,
		"meter", c.Meter.Ready(),
	)
	return warnings
}

// ShowQuestion is the page-facing entry point for navigation.
func (c *Card) ShowQuestion(n int) { c.Scene.ShowQuestion(n) }

// MoveButton is the page-facing entry point for the evasive buttons.
func (c *Card) MoveButton(button dom.Element) { c.Scene.MoveEvasiveButton(button) }

// Celebrate is the page-facing entry point for the final "yes".
func (c *Card) Celebrate() { c.Scene.Celebrate() }
