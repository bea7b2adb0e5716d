// Package cli wires configuration, the dictionary and a front end into
// cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-term/internal/config"
	"github.com/robalobadob/wordle-term/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions holds flag values. A flag only overrides the loaded
// configuration when it was set on the command line.
type rootOptions struct {
	configPath string
	source     string
	logLevel   string

	attempts int
	scoring  string
	daily    bool
	cheat    bool
	tui      bool
	color    string
}

// Execute runs the root command, cancelling on interrupt, and returns
// the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, NewRootCmd())
}

// execute prints a failure straight to the command's stderr. The leveled
// logger may be filtered out (--log-level disabled), the diagnostic may not.
func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("wordle exited")
		fmt.Fprintf(cmd.ErrOrStderr(), "wordle: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Running it without a subcommand
// plays one game.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the five-letter word",
		Long: `Play Wordle in the terminal.

Each guess is scored letter by letter:
  correct  right letter, right place
  present  in the word, somewhere else
  absent   not in the word

Without color the tiers print as [A], (A) and " A ".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return play(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVarP(&opts.source, "words", "w", "", `dictionary source: "embedded", a file path or an http(s) URL`)
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	f := cmd.Flags()
	f.IntVarP(&opts.attempts, "attempts", "n", 0, "maximum number of guesses")
	f.StringVar(&opts.scoring, "scoring", "", "scoring rule: positional or classic")
	f.BoolVar(&opts.daily, "daily", false, "play the word of the day")
	f.BoolVar(&opts.cheat, "cheat", false, "show the target word in the prompt")
	f.BoolVar(&opts.tui, "tui", false, "use the full-screen interface when stdin is a terminal")
	f.StringVar(&opts.color, "color", "", "color output: auto, always or never")

	cmd.AddCommand(
		newVersionCmd(),
		newWordsCmd(opts),
	)
	return cmd
}

// loadConfig layers changed flags over config.Load, validates the result
// and sets up logging on the command's stderr.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if changed("words") {
		cfg.Words.Source = opts.source
	}
	if changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if changed("attempts") {
		cfg.Game.MaxAttempts = opts.attempts
	}
	if changed("scoring") {
		cfg.Game.Scoring = opts.scoring
	}
	if changed("daily") {
		cfg.Game.Daily = opts.daily
	}
	if changed("cheat") {
		cfg.Game.Cheat = opts.cheat
	}
	if changed("tui") {
		cfg.UI.Mode = config.UIModeLine
		if opts.tui {
			cfg.UI.Mode = config.UIModeTUI
		}
	}
	if changed("color") {
		cfg.UI.Color = opts.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := logging.Setup(cfg.Log, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return cfg, nil
}
