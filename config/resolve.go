package config

import "math"

// Literal fallbacks for optional fields.
const (
	FallbackPageTitle          = "Valentine 💝"
	FallbackCelebrationTitle   = "Yay!"
	FallbackCelebrationMessage = ""
	FallbackCelebrationEmojis  = "💖"
	FallbackExplosionHeart     = "❤️"
	FallbackMusicStart         = "Play music"
	FallbackMusicStop          = "Stop music"
	FallbackVolume             = 0.5
)

// FallbackLoveMessages are used when the card has no loveMessages group.
var FallbackLoveMessages = LoveMessages{
	Normal:  "Aww 🥹",
	High:    "Okay wow 😳💕",
	Extreme: "MAXIMUM LOVE MODE 🥵💘",
}

// Or returns value unless it is empty, in which case it returns fallback.
func Or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ResolvedPageTitle is the browser tab title.
func (c *Config) ResolvedPageTitle() string {
	return Or(c.PageTitle, FallbackPageTitle)
}

// ResolvedCelebration returns the celebration texts with fallbacks applied.
func (c *Config) ResolvedCelebration() Celebration {
	return Celebration{
		Title:   Or(c.Celebration.Title, FallbackCelebrationTitle),
		Message: Or(c.Celebration.Message, FallbackCelebrationMessage),
		Emojis:  Or(c.Celebration.Emojis, FallbackCelebrationEmojis),
	}
}

// ExplosionHearts returns the glyphs the celebration explosion samples from.
func (c *Config) ExplosionHearts() []string {
	if len(c.FloatingEmojis.Hearts) == 0 {
		return []string{FallbackExplosionHeart}
	}
	return c.FloatingEmojis.Hearts
}

// ResolvedLoveMessages returns the per-tier captions. A partially filled
// group keeps its own entries and falls back for the rest.
func (c *Config) ResolvedLoveMessages() LoveMessages {
	if c.LoveMessages == nil {
		return FallbackLoveMessages
	}
	return LoveMessages{
		Normal:  Or(c.LoveMessages.Normal, FallbackLoveMessages.Normal),
		High:    Or(c.LoveMessages.High, FallbackLoveMessages.High),
		Extreme: Or(c.LoveMessages.Extreme, FallbackLoveMessages.Extreme),
	}
}

// MusicEnabled reports whether the music group is present and switched on.
func (c *Config) MusicEnabled() bool {
	return c.Music != nil && c.Music.Enabled
}

// ResolvedVolume is the playback volume clamped to [0,1]. Anything that
// is not a number plays at FallbackVolume.
func (m *Music) ResolvedVolume() float64 {
	if m == nil {
		return FallbackVolume
	}
	v, ok := m.Volume.Float()
	switch {
	case !ok, math.IsNaN(v):
		return FallbackVolume
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// StartLabel is the toggle caption while paused.
func (m *Music) StartLabel() string {
	if m == nil {
		return FallbackMusicStart
	}
	return Or(m.StartText, FallbackMusicStart)
}

// StopLabel is the toggle caption while playing.
func (m *Music) StopLabel() string {
	if m == nil {
		return FallbackMusicStop
	}
	return Or(m.StopText, FallbackMusicStop)
}

// ExplosionScale returns heartExplosionSize, or the default when it is
// absent or not a number.
func (a Animations) ExplosionScale() float64 {
	if v, ok := a.HeartExplosionSize.Float(); ok {
		return v
	}
	return DefaultExplosionSize
}
