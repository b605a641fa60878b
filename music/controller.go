// Package music drives the optional background track and its play/stop
// toggle.
package music

import (
	"go.uber.org/zap"

	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom"
)

// Hooks are the page elements the controller needs. A nil field means the
// page does not have it.
type Hooks struct {
	Controls dom.Element // wrapper around the toggle
	Toggle   dom.Element
	Source   dom.Element // <source> child of Audio
	Audio    dom.Media
}

// Complete reports whether every hook is present.
func (h Hooks) Complete() bool {
	return h.Controls != nil && h.Toggle != nil && h.Source != nil && h.Audio != nil
}

// State is what the controller did at Attach.
type State int

const (
	// Inactive: hooks missing, nothing touched.
	Inactive State = iota
	// Disabled: controls hidden because music is off.
	Disabled
	// Ready: source loaded and the toggle wired.
	Ready
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Ready:
		return "ready"
	default:
		return "inactive"
	}
}

// Controller owns the audio element once music is enabled.
type Controller struct {
	cfg   *config.Config
	hooks Hooks
	log   *zap.SugaredLogger
	state State
}

// New creates a controller. Nothing happens until Attach.
func New(cfg *config.Config, hooks Hooks, log *zap.SugaredLogger) *Controller {
	return &Controller{cfg: cfg, hooks: hooks, log: log}
}

// State returns the outcome of Attach.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) settings() *config.Music {
	return c.cfg.Music
}

// Attach prepares the track and wires the toggle.
func (c *Controller) Attach() State {
	if !c.hooks.Complete() {
		c.state = Inactive
		return c.state
	}
	if !c.cfg.MusicEnabled() {
		c.hooks.Controls.SetStyle("display", "none")
		c.state = Disabled
		return c.state
	}

	m := c.settings()
	c.hooks.Source.SetAttr("src", m.MusicURL)
	c.hooks.Audio.SetVolume(m.ResolvedVolume())
	c.hooks.Audio.Load()

	if m.Autoplay {
		c.hooks.Audio.Play(c.onAutoplay)
	} else {
		c.hooks.Toggle.SetText(m.StartLabel())
	}

	c.hooks.Toggle.On("click", c.Toggle)
	c.state = Ready
	return c.state
}

func (c *Controller) onAutoplay(r dom.PlayResult) {
	if r.Outcome == dom.PlayRejected {
		c.log.Infow("Autoplay prevented by browser", "reason", r.Reason)
		c.hooks.Toggle.SetText(c.settings().StartLabel())
		return
	}
	c.log.Debug("Autoplay started")
}

// Toggle plays when paused and pauses when playing.
func (c *Controller) Toggle() {
	if c.state != Ready {
		return
	}
	m := c.settings()
	if c.hooks.Audio.Paused() {
		c.hooks.Toggle.SetText(m.StopLabel())
		c.hooks.Audio.Play(func(r dom.PlayResult) {
			if r.Outcome == dom.PlayRejected {
				c.log.Infow("Playback refused", "reason", r.Reason)
				c.hooks.Toggle.SetText(m.StartLabel())
			}
		})
		return
	}
	c.hooks.Audio.Pause()
	c.hooks.Toggle.SetText(m.StartLabel())
}
