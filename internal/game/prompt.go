package game

import (
	"context"
	"errors"
	"strings"
)

// ErrInputClosed is returned by a Prompter once no more answers can arrive.
var ErrInputClosed = errors.New("input closed")

type QuestionKind int

const (
	AskName QuestionKind = iota
	AskHitOrStay
	AskPlayAgain
)

type Question struct {
	Kind QuestionKind
	Text string
	// Retry is set when the previous answer was not understood.
	Retry bool
}

// Prompter blocks until the human answers a question.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// askName keeps asking until a non-empty name comes back.
func askName(ctx context.Context, p Prompter) (string, error) {
	q := Question{Kind: AskName, Text: "What's your name?"}
	for {
		answer, err := p.Ask(ctx, q)
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(answer); name != "" {
			return name, nil
		}
		q.Retry = true
		q.Text = "Sorry, you must enter a name."
	}
}

// askChoice asks q until the trimmed answer starts with one of the given
// letters and returns that letter. The comparison is case-sensitive.
func askChoice(ctx context.Context, p Prompter, q Question, letters ...byte) (byte, error) {
	for {
		answer, err := p.Ask(ctx, q)
		if err != nil {
			return 0, err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			for _, l := range letters {
				if answer[0] == l {
					return l, nil
				}
			}
		}
		q.Retry = true
	}
}

func askHitOrStay(ctx context.Context, p Prompter) (bool, error) {
	l, err := askChoice(ctx, p, Question{Kind: AskHitOrStay, Text: "Would you like to (h)it or (s)tay?"}, 'h', 's')
	if err != nil {
		return false, err
	}
	return l == 'h', nil
}

func askPlayAgain(ctx context.Context, p Prompter) (bool, error) {
	l, err := askChoice(ctx, p, Question{Kind: AskPlayAgain, Text: "Would you like to play again? (y/n)"}, 'y', 'n')
	if err != nil {
		return false, err
	}
	return l == 'y', nil
}
