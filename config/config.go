// Package config defines the greeting card configuration, its defaults,
// and the validation pass that repairs user-edited values in place.
//
// A Config is decoded once at startup (YAML or TOML), validated once with
// Validate, and then shared by pointer with every component, which only
// reads it. Optional fields are resolved through the helpers in resolve.go
// so the fallback policy lives in one place.
package config

// Config holds every user-authored setting of the card.
type Config struct {
	ValentineName  string         `yaml:"valentineName" toml:"valentineName"`
	PageTitle      string         `yaml:"pageTitle" toml:"pageTitle"`
	FloatingEmojis FloatingEmojis `yaml:"floatingEmojis" toml:"floatingEmojis"`
	Questions      Questions      `yaml:"questions" toml:"questions"`
	Celebration    Celebration    `yaml:"celebration" toml:"celebration"`
	Colors         Colors         `yaml:"colors" toml:"colors"`
	Animations     Animations     `yaml:"animations" toml:"animations"`
	Music          *Music         `yaml:"music,omitempty" toml:"music,omitempty"`
	LoveMessages   *LoveMessages  `yaml:"loveMessages,omitempty" toml:"loveMessages,omitempty"`
}

// FloatingEmojis are the decorative glyphs drifting in the background.
type FloatingEmojis struct {
	Hearts []string `yaml:"hearts" toml:"hearts"`
	Bears  []string `yaml:"bears" toml:"bears"`
}

// Questions are the three fixed question slots.
type Questions struct {
	First  FirstQuestion  `yaml:"first" toml:"first"`
	Second SecondQuestion `yaml:"second" toml:"second"`
	Third  ThirdQuestion  `yaml:"third" toml:"third"`
}

// FirstQuestion carries the secret answer revealed on hover.
type FirstQuestion struct {
	Text         string `yaml:"text" toml:"text"`
	YesBtn       string `yaml:"yesBtn" toml:"yesBtn"`
	NoBtn        string `yaml:"noBtn" toml:"noBtn"`
	SecretAnswer string `yaml:"secretAnswer" toml:"secretAnswer"`
}

// SecondQuestion hosts the love meter.
type SecondQuestion struct {
	Text      string `yaml:"text" toml:"text"`
	StartText string `yaml:"startText" toml:"startText"`
	NextBtn   string `yaml:"nextBtn" toml:"nextBtn"`
}

// ThirdQuestion is the final ask; its "no" button runs away.
type ThirdQuestion struct {
	Text   string `yaml:"text" toml:"text"`
	YesBtn string `yaml:"yesBtn" toml:"yesBtn"`
	NoBtn  string `yaml:"noBtn" toml:"noBtn"`
}

// Celebration is shown after the final "yes".
// Emojis is a single string; the explosion iterates it rune by rune.
type Celebration struct {
	Title   string `yaml:"title" toml:"title"`
	Message string `yaml:"message,omitempty" toml:"message,omitempty"`
	Emojis  string `yaml:"emojis" toml:"emojis"`
}

// Colors are the five theme slots. Each must be a #RGB or #RRGGBB hex
// string. A nil field was left out of the card and keeps the stylesheet's
// own color.
type Colors struct {
	BackgroundStart  *string `yaml:"backgroundStart,omitempty" toml:"backgroundStart,omitempty"`
	BackgroundEnd    *string `yaml:"backgroundEnd,omitempty" toml:"backgroundEnd,omitempty"`
	ButtonBackground *string `yaml:"buttonBackground,omitempty" toml:"buttonBackground,omitempty"`
	ButtonHover      *string `yaml:"buttonHover,omitempty" toml:"buttonHover,omitempty"`
	TextColor        *string `yaml:"textColor,omitempty" toml:"textColor,omitempty"`
}

// Color keys in declaration order.
const (
	KeyBackgroundStart  = "backgroundStart"
	KeyBackgroundEnd    = "backgroundEnd"
	KeyButtonBackground = "buttonBackground"
	KeyButtonHover      = "buttonHover"
	KeyTextColor        = "textColor"
)

// ColorKeys lists every color slot in declaration order.
var ColorKeys = []string{
	KeyBackgroundStart,
	KeyBackgroundEnd,
	KeyButtonBackground,
	KeyButtonHover,
	KeyTextColor,
}

func (c *Colors) field(key string) **string {
	switch key {
	case KeyBackgroundStart:
		return &c.BackgroundStart
	case KeyBackgroundEnd:
		return &c.BackgroundEnd
	case KeyButtonBackground:
		return &c.ButtonBackground
	case KeyButtonHover:
		return &c.ButtonHover
	case KeyTextColor:
		return &c.TextColor
	}
	return nil
}

// Get returns the color stored under key and whether the card sets it.
func (c *Colors) Get(key string) (string, bool) {
	f := c.field(key)
	if f == nil || *f == nil {
		return "", false
	}
	return **f, true
}

// Value is Get without the presence flag.
func (c *Colors) Value(key string) string {
	v, _ := c.Get(key)
	return v
}

// Set stores value under key. Unknown keys are ignored.
func (c *Colors) Set(key, value string) {
	if f := c.field(key); f != nil {
		*f = &value
	}
}

// Animations are the CSS timing knobs. Units are part of the string values
// and are passed to the stylesheet verbatim.
type Animations struct {
	FloatDuration string `yaml:"floatDuration" toml:"floatDuration"`
	FloatDistance string `yaml:"floatDistance" toml:"floatDistance"`
	BounceSpeed   string `yaml:"bounceSpeed" toml:"bounceSpeed"`
	// HeartExplosionSize is only range checked when it is a number.
	HeartExplosionSize Number `yaml:"heartExplosionSize" toml:"heartExplosionSize"`
}

// Music configures the optional background audio.
type Music struct {
	Enabled   bool   `yaml:"enabled" toml:"enabled"`
	MusicURL  string `yaml:"musicUrl" toml:"musicUrl"`
	Volume    Number `yaml:"volume" toml:"volume"`
	Autoplay  bool   `yaml:"autoplay" toml:"autoplay"`
	StartText string `yaml:"startText" toml:"startText"`
	StopText  string `yaml:"stopText" toml:"stopText"`
}

// LoveMessages are the love meter captions, one per tier.
type LoveMessages struct {
	Normal  string `yaml:"normal" toml:"normal"`
	High    string `yaml:"high" toml:"high"`
	Extreme string `yaml:"extreme" toml:"extreme"`
}

// Default color values used to repair invalid entries.
const (
	DefaultBackgroundStart  = "#ffafbd"
	DefaultBackgroundEnd    = "#ffc3a0"
	DefaultButtonBackground = "#ff6b6b"
	DefaultButtonHover      = "#ff8787"
	DefaultTextColor        = "#ff4757"
)

// DefaultExplosionSize replaces out-of-range heartExplosionSize values.
const DefaultExplosionSize = 1.5

// MinFloatDuration is the shortest float duration accepted, in seconds.
const MinFloatDuration = 5

var defaultColors = map[string]string{
	KeyBackgroundStart:  DefaultBackgroundStart,
	KeyBackgroundEnd:    DefaultBackgroundEnd,
	KeyButtonBackground: DefaultButtonBackground,
	KeyButtonHover:      DefaultButtonHover,
	KeyTextColor:        DefaultTextColor,
}

// DefaultColor returns the repair value for a color key, or "" for an
// unknown key.
func DefaultColor(key string) string {
	return defaultColors[key]
}

// Default returns the stock card, the same one card.yaml ships. It is
// used when no configuration can be loaded.
func Default() *Config {
	cfg := &Config{
		ValentineName: "Kyle",
		PageTitle:     "Will you be my valentine?💕",
		FloatingEmojis: FloatingEmojis{
			Hearts: []string{"💜", "💖", "💙", "💜", "💓"},
			Bears:  []string{"🧸", "🐻"},
		},
		Questions: Questions{
			First: FirstQuestion{
				Text:         "Do you like me",
				YesBtn:       "Yes",
				NoBtn:        "No",
				SecretAnswer: "More than anything",
			},
			Second: SecondQuestion{
				Text:      "Do you really really like me?",
				StartText: "Ofcourse baby",
				NextBtn:   "Stop",
			},
			Third: ThirdQuestion{
				Text:   "Will you be my valentine? 🌹",
				YesBtn: "Yes!",
				NoBtn:  "No",
			},
		},
		Celebration: Celebration{
			Title:  "Woo Hoo! 🎉💝💖💝💓",
			Emojis: "🎁💙🤗💝💋💜💕",
		},
		Animations: Animations{
			FloatDuration:      "15s",
			FloatDistance:      "50px",
			BounceSpeed:        "0.5s",
			HeartExplosionSize: NumberOf(DefaultExplosionSize),
		},
		Music: &Music{
			Volume:    NumberOf(0.5),
			Autoplay:  true,
			StartText: "Play music 🎵",
			StopText:  "Stop music 🔇",
		},
		LoveMessages: &LoveMessages{
			Normal:  "And beyond! 🥰",
			High:    "To infinity and beyond! 🚀💝",
			Extreme: "WOOOOW You love me that much?? 🥰🚀💝",
		},
	}
	cfg.Colors.Set(KeyBackgroundStart, "#a294ff")
	cfg.Colors.Set(KeyBackgroundEnd, "#7f76ff")
	cfg.Colors.Set(KeyButtonBackground, "#4d3d66")
	cfg.Colors.Set(KeyButtonHover, "#9891ff")
	cfg.Colors.Set(KeyTextColor, "#9a7bcc")
	return cfg
}
