package card

import (
	"github.com/simukka/valentine/config"
)

// Render copies the configured texts into their elements. Absent elements
// and empty values are skipped.
func Render(cfg *config.Config, b *Bindings) {
	if cfg.ValentineName != "" {
		b.setText(TargetValentineTitle, cfg.ValentineName+", my love...")
	}

	q := cfg.Questions
	b.setText(TargetQuestion1Text, q.First.Text)
	b.setText(TargetYesBtn1, q.First.YesBtn)
	b.setText(TargetNoBtn1, q.First.NoBtn)
	b.setText(TargetSecretAnswer, q.First.SecretAnswer)

	b.setText(TargetQuestion2Text, q.Second.Text)
	b.setText(TargetStartText, q.Second.StartText)
	b.setText(TargetNextBtn, q.Second.NextBtn)

	b.setText(TargetQuestion3Text, q.Third.Text)
	b.setText(TargetYesBtn3, q.Third.YesBtn)
	b.setText(TargetNoBtn3, q.Third.NoBtn)
}

// ThemeVars maps CSS custom properties to their configured values.
func ThemeVars(cfg *config.Config) map[string]string {
	return map[string]string{
		"--background-start":     cfg.Colors.Value(config.KeyBackgroundStart),
		"--background-end":       cfg.Colors.Value(config.KeyBackgroundEnd),
		"--button-background":    cfg.Colors.Value(config.KeyButtonBackground),
		"--button-hover":         cfg.Colors.Value(config.KeyButtonHover),
		"--text-color":           cfg.Colors.Value(config.KeyTextColor),
		"--float-duration":       cfg.Animations.FloatDuration,
		"--float-distance":       cfg.Animations.FloatDistance,
		"--bounce-speed":         cfg.Animations.BounceSpeed,
		"--heart-explosion-size": formatFloat(cfg.Animations.ExplosionScale()),
	}
}

// ApplyTheme sets the page title and publishes colors and animation knobs
// as CSS variables for the stylesheet. Empty values leave the stylesheet
// defaults in place.
func ApplyTheme(cfg *config.Config, b *Bindings) {
	doc := b.Document()
	doc.SetTitle(cfg.ResolvedPageTitle())
	for name, value := range ThemeVars(cfg) {
		if value != "" {
			doc.SetRootVar(name, value)
		}
	}
}
