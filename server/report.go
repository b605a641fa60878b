//go:build !js
// +build !js

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/simukka/valentine/config"
)

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Report the repairs the card would make to a configuration file",
		Long: `Load a YAML or TOML card configuration and run the same validation the
page runs at startup. Invalid values are listed with the value that replaces
them. The card never refuses a configuration; use --strict to fail on any
repair, e.g. in CI.`,
		Example: "valentine validate card.yaml --strict",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			warnings := config.Validate(cfg)

			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintf(out, "%s: ok\n", args[0])
				return nil
			}
			fmt.Fprintln(out, renderWarnings(warnings, isTerminal(out)))
			if strict {
				return fmt.Errorf("%s: %d repair(s): %w", args[0], len(warnings), warnings.Err())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any value needs repair")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a configuration after repairs and fallbacks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			config.Validate(cfg)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderConfig(cfg, isTerminal(out)))
			return nil
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newTable(color bool) table.Writer {
	tw := table.NewWriter()
	if color {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}
	return tw
}

func renderWarnings(warnings config.Warnings, color bool) string {
	tw := newTable(color)
	tw.AppendHeader(table.Row{"#", "Repair"})
	for i, w := range warnings {
		tw.AppendRow(table.Row{i + 1, w})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return tw.Render()
}

const unset = "(unset)"

func optional(n config.Number) string {
	if !n.IsSet() {
		return unset
	}
	if _, ok := n.Float(); !ok {
		return n.String() + " (not a number)"
	}
	return n.String()
}

// configRows flattens the resolved configuration into key/value rows.
func configRows(cfg *config.Config) [][2]string {
	celebration := cfg.ResolvedCelebration()
	messages := cfg.ResolvedLoveMessages()
	rows := [][2]string{
		{"valentineName", cfg.ValentineName},
		{"pageTitle", cfg.ResolvedPageTitle()},
		{"floatingEmojis.hearts", strings.Join(cfg.FloatingEmojis.Hearts, " ")},
		{"floatingEmojis.bears", strings.Join(cfg.FloatingEmojis.Bears, " ")},
		{"questions.first.text", cfg.Questions.First.Text},
		{"questions.second.text", cfg.Questions.Second.Text},
		{"questions.third.text", cfg.Questions.Third.Text},
		{"celebration.title", celebration.Title},
		{"celebration.message", celebration.Message},
		{"celebration.emojis", celebration.Emojis},
	}
	for _, key := range config.ColorKeys {
		value, ok := cfg.Colors.Get(key)
		if !ok {
			value = unset
		}
		rows = append(rows, [2]string{"colors." + key, value})
	}
	rows = append(rows,
		[2]string{"animations.floatDuration", cfg.Animations.FloatDuration},
		[2]string{"animations.floatDistance", cfg.Animations.FloatDistance},
		[2]string{"animations.bounceSpeed", cfg.Animations.BounceSpeed},
		[2]string{"animations.heartExplosionSize", optional(cfg.Animations.HeartExplosionSize)},
		[2]string{"loveMessages.normal", messages.Normal},
		[2]string{"loveMessages.high", messages.High},
		[2]string{"loveMessages.extreme", messages.Extreme},
		[2]string{"music.enabled", strconv.FormatBool(cfg.MusicEnabled())},
	)
	if cfg.MusicEnabled() {
		rows = append(rows,
			[2]string{"music.musicUrl", cfg.Music.MusicURL},
			[2]string{"music.volume", strconv.FormatFloat(cfg.Music.ResolvedVolume(), 'f', -1, 64)},
			[2]string{"music.autoplay", strconv.FormatBool(cfg.Music.Autoplay)},
			[2]string{"music.startText", cfg.Music.StartLabel()},
			[2]string{"music.stopText", cfg.Music.StopLabel()},
		)
	}
	return rows
}

func renderConfig(cfg *config.Config, color bool) string {
	tw := newTable(color)
	tw.AppendHeader(table.Row{"Key", "Value"})
	for _, row := range configRows(cfg) {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
