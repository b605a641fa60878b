package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/simukka/valentine/config"
)

const tomlCard = `
valentineName = "Sam"
pageTitle = "Be mine?"

[floatingEmojis]
hearts = ["💖"]
bears = ["🧸"]

[questions.first]
text = "Do you like me"
yesBtn = "Yes"
noBtn = "No"
secretAnswer = "Always"

[questions.second]
text = "How much?"
startText = "This much"
nextBtn = "Next"

[questions.third]
text = "Valentine?"
yesBtn = "Yes!"
noBtn = "No"

[celebration]
title = "Hooray"
emojis = "🎉"

[colors]
backgroundStart = "#fff"
backgroundEnd = "#000000"
buttonBackground = "#123"
buttonHover = "pink"
textColor = "#abcdef"

[animations]
floatDuration = "2s"
floatDistance = "40px"
bounceSpeed = "0.4s"
heartExplosionSize = 9.0

[music]
enabled = true
musicUrl = "song.mp3"
volume = 0.25
autoplay = false
`

type LoadTestSuite struct {
	suite.Suite
	dir string
}

func (s *LoadTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *LoadTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *LoadTestSuite) TestEmbeddedCardIsValid() {
	cfg, err := config.Embedded()
	s.Require().NoError(err)

	s.Empty(config.Validate(cfg))
	s.Equal(config.Default(), cfg)
	s.Equal("Kyle", cfg.ValentineName)
	s.Len(cfg.FloatingEmojis.Hearts, 5)
	s.Require().NotNil(cfg.LoveMessages)
	s.Equal("And beyond! 🥰", cfg.LoveMessages.Normal)
	s.Require().NotNil(cfg.Music)
	s.False(cfg.Music.Enabled)
	s.Equal("Yes", cfg.Questions.First.YesBtn)
}

func (s *LoadTestSuite) TestLoadTOML() {
	cfg, err := config.Load(s.write("card.toml", tomlCard))
	s.Require().NoError(err)

	s.Equal("Sam", cfg.ValentineName)
	s.Equal("Always", cfg.Questions.First.SecretAnswer)
	s.Nil(cfg.LoveMessages)
	s.Require().NotNil(cfg.Music)
	s.Equal(0.25, cfg.Music.ResolvedVolume())

	warnings := config.Validate(cfg)
	s.Len(warnings, 3)
	s.Equal(config.DefaultButtonHover, cfg.Colors.Value(config.KeyButtonHover))
	s.Equal("5s", cfg.Animations.FloatDuration)
	s.Equal(config.DefaultExplosionSize, cfg.Animations.ExplosionScale())
}

func (s *LoadTestSuite) TestLoadYAMLMatchesEmbedded() {
	data, err := os.ReadFile("card.yaml")
	s.Require().NoError(err)

	cfg, err := config.Load(s.write("card.yml", string(data)))
	s.Require().NoError(err)

	embedded, err := config.Embedded()
	s.Require().NoError(err)
	s.Equal(embedded, cfg)
}

func (s *LoadTestSuite) TestLoadKeepsCardWithOddValues() {
	tests := []struct {
		name      string
		file      string
		content   string
		size      string
		sizeIsNum bool
		volume    float64
		warnings  config.Warnings
		colors    map[string]string
	}{
		{
			name:    "yaml explosion size not a number",
			file:    "card.yaml",
			content: "valentineName: Sam\nanimations:\n  heartExplosionSize: big\n",
			size:    "big",
			volume:  config.FallbackVolume,
			colors:  map[string]string{},
		},
		{
			name:      "yaml volume not a number",
			file:      "card.yaml",
			content:   "valentineName: Sam\nanimations:\n  heartExplosionSize: 2\nmusic:\n  enabled: true\n  volume: loud\n",
			size:      "2",
			sizeIsNum: true,
			volume:    config.FallbackVolume,
			colors:    map[string]string{},
		},
		{
			name:    "yaml quoted number is text",
			file:    "card.yaml",
			content: "valentineName: Sam\nanimations:\n  heartExplosionSize: \"9\"\n",
			size:    "9",
			volume:  config.FallbackVolume,
			colors:  map[string]string{},
		},
		{
			name:    "toml explosion size and volume not numbers",
			file:    "card.toml",
			content: "valentineName = \"Sam\"\n[animations]\nheartExplosionSize = \"big\"\n[music]\nvolume = \"loud\"\n",
			size:    "big",
			volume:  config.FallbackVolume,
			colors:  map[string]string{},
		},
		{
			name:      "toml integer explosion size out of range",
			file:      "card.toml",
			content:   "valentineName = \"Sam\"\n[animations]\nheartExplosionSize = 9\n[music]\nvolume = 1\n",
			size:      "1.5",
			sizeIsNum: true,
			volume:    1,
			warnings:  config.Warnings{"Heart explosion size should be between 1 and 3! Using default."},
			colors:    map[string]string{},
		},
		{
			name:     "yaml partial colors",
			file:     "card.yaml",
			content:  "valentineName: Sam\ncolors:\n  textColor: \"#fff\"\n  buttonHover: pink\n",
			volume:   config.FallbackVolume,
			warnings: config.Warnings{"Invalid color for buttonHover! Using default."},
			colors: map[string]string{
				config.KeyTextColor:   "#fff",
				config.KeyButtonHover: config.DefaultButtonHover,
			},
		},
		{
			name:    "toml partial colors",
			file:    "card.toml",
			content: "valentineName = \"Sam\"\n[colors]\ntextColor = \"#fff\"\n",
			volume:  config.FallbackVolume,
			colors:  map[string]string{config.KeyTextColor: "#fff"},
		},
		{
			name:    "no colors group",
			file:    "card.yaml",
			content: "valentineName: Sam\n",
			volume:  config.FallbackVolume,
			colors:  map[string]string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg, err := config.Load(s.write(tt.file, tt.content))
			s.Require().NoError(err)
			s.Equal("Sam", cfg.ValentineName)

			s.Equal(tt.warnings, config.Validate(cfg))

			size := cfg.Animations.HeartExplosionSize
			s.Equal(tt.size, size.String())
			_, isNum := size.Float()
			s.Equal(tt.sizeIsNum, isNum)
			s.Equal(tt.volume, cfg.Music.ResolvedVolume())

			got := map[string]string{}
			for _, key := range config.ColorKeys {
				if v, ok := cfg.Colors.Get(key); ok {
					got[key] = v
				}
			}
			s.Equal(tt.colors, got)
		})
	}
}

func (s *LoadTestSuite) TestLoadUnknownExtension() {
	_, err := config.Load(s.write("card.json", "{}"))
	s.ErrorIs(err, config.ErrUnknownFormat)
}

func (s *LoadTestSuite) TestLoadMissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "missing.yaml"))
	s.Error(err)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *LoadTestSuite) TestParseMalformedYAML() {
	_, err := config.Parse([]byte("colors: [unclosed"), config.FormatYAML)
	s.Error(err)
}

func (s *LoadTestSuite) TestParseUnknownFormat() {
	_, err := config.Parse([]byte(""), config.Format("ini"))
	s.ErrorIs(err, config.ErrUnknownFormat)
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}
