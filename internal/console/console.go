// internal/console/console.go
//
// Line-oriented play loop.
//
// Flow per turn:
//  1. Print the prompt (attempt counter, optional hint).
//  2. Read one line. Lines longer than maxLine are rejected as a wrong
//     length without ending the game.
//  3. Submit it; on a validation error say so and go back to 1.
//  4. Print every guess so far and the letter board.
//
// The loop ends when the session reaches a terminal state or input runs out.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-term/internal/game"
	"github.com/robalobadob/wordle-term/internal/render"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed")

// maxLine caps the bytes kept from one input line.
const maxLine = 1024

// Options tweaks prompts.
type Options struct {
	// Cheat prints the target next to the prompt.
	Cheat bool
}

// Console plays one session over a reader and a writer.
type Console struct {
	sess *game.Session
	in   *bufio.Reader
	out  io.Writer
	r    *render.Renderer
	opts Options
}

// New wires a console. r must have been built for out.
func New(sess *game.Session, in io.Reader, out io.Writer, r *render.Renderer, opts Options) *Console {
	return &Console{
		sess: sess,
		in:   bufio.NewReader(in),
		out:  out,
		r:    r,
		opts: opts,
	}
}

// Run plays until the session ends. The final outcome is returned;
// ErrInputClosed (with OutcomeInProgress) if input ran out first.
func (c *Console) Run() (game.Outcome, error) {
	for !c.sess.State().Terminal() {
		c.prompt()
		line, long, err := c.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, c.r.Result(game.OutcomeInProgress, c.sess.Target()))
			return game.OutcomeInProgress, ErrInputClosed
		}
		if err != nil {
			return game.OutcomeInProgress, fmt.Errorf("read guess: %w", err)
		}
		if long {
			log.Debug().Str("session", c.sess.ID()).Err(game.ErrInvalidLength).Msg("oversized line rejected")
			fmt.Fprintln(c.out, c.r.Notice("not a valid guess! ("+game.ErrInvalidLength.Error()+")"))
			continue
		}

		g, err := c.sess.SubmitGuess(line)
		var ve *game.ValidationError
		switch {
		case errors.As(err, &ve):
			log.Debug().Str("session", c.sess.ID()).Str("input", line).Err(ve.Err).Msg("guess rejected")
			fmt.Fprintln(c.out, c.r.Notice("not a valid guess! ("+ve.Err.Error()+")"))
			continue
		case err != nil:
			return c.sess.CheckOutcome(), err
		}

		log.Debug().
			Str("session", c.sess.ID()).
			Str("guess", g.Word).
			Int("attempt", c.sess.Attempts()).
			Msg("guess accepted")
		fmt.Fprintln(c.out, c.r.Turn(c.sess.Guesses(), c.sess.Board()))
	}

	outcome := c.sess.CheckOutcome()
	fmt.Fprintln(c.out, c.r.Result(outcome, c.sess.Target()))
	return outcome, nil
}

func (c *Console) prompt() {
	msg := fmt.Sprintf("Enter your guess (%d/%d).", c.sess.Attempts()+1, c.sess.MaxAttempts())
	if c.opts.Cheat {
		msg += " Hint: " + c.sess.Target()
	}
	fmt.Fprintln(c.out, msg)
}

// readLine returns the next line without its terminator. Bytes past
// maxLine are dropped and long is set; the rest of the line is still
// consumed so the next read starts on a fresh line.
func (c *Console) readLine() (string, bool, error) {
	var (
		buf  []byte
		long bool
	)
	for {
		chunk, more, err := c.in.ReadLine()
		if err != nil {
			return "", false, err
		}
		if len(buf)+len(chunk) <= maxLine {
			buf = append(buf, chunk...)
		} else {
			long = true
		}
		if !more {
			return string(buf), long, nil
		}
	}
}
