package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/valentine/config"
	"github.com/simukka/valentine/dom/domtest"
	"github.com/simukka/valentine/logging"
)

type fixture struct {
	controls *domtest.Element
	toggle   *domtest.Element
	source   *domtest.Element
	audio    *domtest.Media
}

func newFixture() *fixture {
	return &fixture{
		controls: domtest.NewElement("div"),
		toggle:   domtest.NewElement("button"),
		source:   domtest.NewElement("source"),
		audio:    domtest.NewMedia(),
	}
}

func (f *fixture) hooks() Hooks {
	return Hooks{Controls: f.controls, Toggle: f.toggle, Source: f.source, Audio: f.audio}
}

func enabled(m config.Music) *config.Config {
	cfg := config.Default()
	m.Enabled = true
	cfg.Music = &m
	return cfg
}

func TestAttach_MissingHooksIsNoop(t *testing.T) {
	f := newFixture()
	h := f.hooks()
	h.Source = nil

	c := New(enabled(config.Music{MusicURL: "a.mp3"}), h, logging.Nop())

	assert.Equal(t, Inactive, c.Attach())
	assert.Empty(t, f.controls.Styles)
	assert.Zero(t, f.audio.Loads)
	assert.Zero(t, f.toggle.Listeners("click"))
}

func TestAttach_DisabledHidesControls(t *testing.T) {
	for name, cfg := range map[string]*config.Config{
		"default":  config.Default(),
		"absent":   {},
		"disabled": {Music: &config.Music{Enabled: false, MusicURL: "a.mp3"}},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			c := New(cfg, f.hooks(), logging.Nop())

			assert.Equal(t, Disabled, c.Attach())
			assert.Equal(t, "none", f.controls.Style("display"))
			assert.Empty(t, f.source.Attrs)
			assert.Zero(t, f.audio.Loads)
			assert.False(t, f.audio.VolumeSet)
			assert.Zero(t, f.audio.Plays)
		})
	}
}

func TestAttach_NoAutoplayShowsStartLabel(t *testing.T) {
	f := newFixture()
	c := New(enabled(config.Music{MusicURL: "song.mp3", StartText: "Play ♪"}), f.hooks(), logging.Nop())

	require.Equal(t, Ready, c.Attach())

	assert.Equal(t, "song.mp3", f.source.Attrs["src"])
	assert.Equal(t, 0.5, f.audio.Volume)
	assert.Equal(t, 1, f.audio.Loads)
	assert.Zero(t, f.audio.Plays)
	assert.Equal(t, "Play ♪", f.toggle.Text())
}

func TestAttach_AutoplaySucceeds(t *testing.T) {
	f := newFixture()
	c := New(enabled(config.Music{MusicURL: "song.mp3", Autoplay: true, Volume: config.NumberOf(0.8)}), f.hooks(), logging.Nop())

	require.Equal(t, Ready, c.Attach())

	assert.Equal(t, 0.8, f.audio.Volume)
	assert.Equal(t, 1, f.audio.Plays)
	assert.False(t, f.audio.Paused())
	assert.Empty(t, f.toggle.Text())
}

func TestAttach_AutoplayRejectedFallsBackToStartLabel(t *testing.T) {
	f := newFixture()
	f.audio.Reject = "NotAllowedError"
	f.audio.Defer = true
	c := New(enabled(config.Music{MusicURL: "song.mp3", Autoplay: true}), f.hooks(), logging.Nop())

	require.Equal(t, Ready, c.Attach())
	assert.Empty(t, f.toggle.Text(), "label waits for the outcome")

	f.audio.Resolve()

	assert.Equal(t, "Play music", f.toggle.Text())
	assert.True(t, f.audio.Paused())
}

func TestToggle(t *testing.T) {
	f := newFixture()
	c := New(enabled(config.Music{MusicURL: "song.mp3", StopText: "Hush"}), f.hooks(), logging.Nop())
	require.Equal(t, Ready, c.Attach())

	f.toggle.Fire("click")
	assert.False(t, f.audio.Paused())
	assert.Equal(t, "Hush", f.toggle.Text())

	f.toggle.Fire("click")
	assert.True(t, f.audio.Paused())
	assert.Equal(t, 1, f.audio.Pauses)
	assert.Equal(t, "Play music", f.toggle.Text())
}

func TestToggle_RefusedPlayRestoresStartLabel(t *testing.T) {
	f := newFixture()
	f.audio.Reject = "NotAllowedError"
	c := New(enabled(config.Music{MusicURL: "song.mp3"}), f.hooks(), logging.Nop())
	require.Equal(t, Ready, c.Attach())

	c.Toggle()

	assert.Equal(t, "Play music", f.toggle.Text())
}

func TestToggle_BeforeAttachIsNoop(t *testing.T) {
	f := newFixture()
	c := New(enabled(config.Music{MusicURL: "song.mp3"}), f.hooks(), logging.Nop())

	c.Toggle()

	assert.Zero(t, f.audio.Plays)
	assert.Zero(t, f.audio.Pauses)
}
