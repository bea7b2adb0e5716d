package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle-term/internal/config"
	"github.com/robalobadob/wordle-term/internal/console"
	"github.com/robalobadob/wordle-term/internal/game"
	"github.com/robalobadob/wordle-term/internal/render"
	"github.com/robalobadob/wordle-term/internal/tui"
	"github.com/robalobadob/wordle-term/internal/words"
)

// now is swapped in tests that need a fixed daily word.
var now = time.Now

func play(cmd *cobra.Command, cfg *config.Config) error {
	dict, err := loadDictionary(cmd.Context(), cfg.Words)
	if err != nil {
		return err
	}

	target := dict.Random()
	if cfg.Game.Daily {
		var idx int
		target, idx = dict.Daily(now(), cfg.Game.DailySalt)
		log.Debug().Int("index", idx).Msg("daily word selected")
	}

	scorer, err := game.ScorerByName(cfg.Game.Scoring)
	if err != nil {
		return err
	}
	sess, err := game.New(target, dict,
		game.WithMaxAttempts(cfg.Game.MaxAttempts),
		game.WithScorer(scorer),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	colorMode, err := render.ParseColorMode(cfg.UI.Color)
	if err != nil {
		return err
	}
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	r := render.New(out, colorMode)

	log.Info().
		Str("session", sess.ID()).
		Str("scoring", cfg.Game.Scoring).
		Bool("daily", cfg.Game.Daily).
		Int("max_attempts", sess.MaxAttempts()).
		Msg("session started")

	var outcome game.Outcome
	if cfg.UI.Mode == config.UIModeTUI && isTerminal(in) {
		outcome, err = tui.Run(sess, r, cfg.Game.Cheat, in, out)
	} else {
		if cfg.UI.Mode == config.UIModeTUI {
			log.Warn().Msg("stdin is not a terminal, falling back to line mode")
		}
		outcome, err = console.New(sess, in, out, r, console.Options{Cheat: cfg.Game.Cheat}).Run()
	}
	if err != nil && !errors.Is(err, console.ErrInputClosed) {
		return err
	}

	log.Info().
		Str("session", sess.ID()).
		Str("outcome", string(outcome)).
		Int("attempts", sess.Attempts()).
		Msg("session finished")
	return nil
}

// loadDictionary bounds the load by the configured timeout.
func loadDictionary(ctx context.Context, cfg config.WordsConfig) (*words.Dictionary, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	start := time.Now()
	dict, err := words.Load(ctx, cfg.Source, nil)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", words.Describe(cfg.Source)).
		Int("words", dict.Len()).
		Dur("took", time.Since(start)).
		Msg("dictionary loaded")
	return dict, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
