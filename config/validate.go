package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/multierr"
)

var (
	hexColor      = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
	leadingNumber = regexp.MustCompile(`^[\t\n\v\f\r ]*([+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?))`)
)

// Warnings are the diagnostics produced while repairing a Config.
type Warnings []string

// Err folds the warnings into a single error, or nil when there are none.
func (w Warnings) Err() error {
	var err error
	for _, msg := range w {
		err = multierr.Append(err, errors.New(msg))
	}
	return err
}

// IsValidHex reports whether s is a #RGB or #RRGGBB color.
func IsValidHex(s string) bool {
	return hexColor.MatchString(s)
}

// LeadingFloat parses the numeric prefix of s the way browsers parse
// CSS-ish values such as "15s" or " 2.5e1px". ok is false when s has no
// numeric prefix.
func LeadingFloat(s string) (v float64, ok bool) {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		// Only range errors get here; ParseFloat still returns ±Inf.
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}
	return f, true
}

// Validate checks cfg and repairs invalid values in place. It never fails:
// every problem is replaced with a default and reported as a warning.
func Validate(cfg *Config) Warnings {
	if cfg == nil {
		return nil
	}
	var warnings Warnings

	for _, key := range ColorKeys {
		if value, ok := cfg.Colors.Get(key); ok && !IsValidHex(value) {
			warnings = append(warnings, fmt.Sprintf("Invalid color for %s! Using default.", key))
			cfg.Colors.Set(key, DefaultColor(key))
		}
	}

	if d := cfg.Animations.FloatDuration; d != "" {
		if v, ok := LeadingFloat(d); ok && v < MinFloatDuration {
			warnings = append(warnings, "Float duration too short! Setting to 5s minimum.")
			cfg.Animations.FloatDuration = "5s"
		}
	}

	if size, ok := cfg.Animations.HeartExplosionSize.Float(); ok && (size < 1 || size > 3) {
		warnings = append(warnings, "Heart explosion size should be between 1 and 3! Using default.")
		cfg.Animations.HeartExplosionSize = NumberOf(DefaultExplosionSize)
	}

	return warnings
}
