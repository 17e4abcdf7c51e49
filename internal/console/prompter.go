package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"twentyone/internal/game"
)

// Prompter reads one answer per line. Lines are read on the caller's
// goroutine, so a cancelled context is only noticed between questions.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Ask(ctx context.Context, q game.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := q.Text
	if q.Retry && q.Kind != game.AskName {
		text = retryText(q.Kind)
	}
	fmt.Fprintf(p.out, "=> %s\n", text)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", game.ErrInputClosed
	}
	return p.in.Text(), nil
}

func retryText(k game.QuestionKind) string {
	switch k {
	case game.AskHitOrStay:
		return "Sorry, must enter 'h' or 's'."
	case game.AskPlayAgain:
		return "Sorry, must enter 'y' or 'n'."
	default:
		return "Sorry, I didn't get that."
	}
}
