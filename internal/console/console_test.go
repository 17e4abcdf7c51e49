package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twentyone/internal/game"
)

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Ann\nh\n"), &out)
	ctx := context.Background()

	a, err := p.Ask(ctx, game.Question{Kind: game.AskName, Text: "What's your name?"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", a)

	a, err = p.Ask(ctx, game.Question{Kind: game.AskHitOrStay, Text: "hit or stay?", Retry: true})
	require.NoError(t, err)
	assert.Equal(t, "h", a)

	_, err = p.Ask(ctx, game.Question{Kind: game.AskPlayAgain, Text: "again?"})
	assert.ErrorIs(t, err, game.ErrInputClosed)

	assert.Equal(t, "=> What's your name?\n=> Sorry, must enter 'h' or 's'.\n=> again?\n", out.String())
}

func TestPrompterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPrompter(strings.NewReader("Ann\n"), &bytes.Buffer{}).Ask(ctx, game.Question{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJoinAnd(t *testing.T) {
	tests := []struct {
		items    []string
		expected string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, JoinAnd(tt.items))
	}
}

func TestFormatSeat(t *testing.T) {
	hidden := game.SeatView{Name: "Dealer", Cards: []string{"Ace of Spades", game.HiddenCard}}
	assert.Equal(t, "Dealer has: Ace of Spades and an unknown card (points: unknown)", FormatSeat(hidden))

	shown := game.SeatView{Name: "Ann", Cards: []string{"2 of Hearts", "King of Clubs", "9 of Spades"}, Points: 21, PointsKnown: true}
	assert.Equal(t, "Ann has: 2 of Hearts, King of Clubs, and 9 of Spades (points: 21)", FormatSeat(shown))
}

func TestFormatRound(t *testing.T) {
	r := game.RoundResult{
		Outcome: game.OutcomeDealerWins,
		Winner:  "Dealer",
		ByBust:  true,
		Table: game.Table{
			Player: game.SeatView{Name: "Ann", Points: 25, PointsKnown: true, Busted: true},
			Dealer: game.SeatView{Name: "Dealer", Points: 15, PointsKnown: true, Score: 3},
		},
	}
	out := FormatRound(r)
	assert.Contains(t, out, "Dealer wins by bust!")
	assert.Contains(t, out, "Score: Ann 0, Dealer 3")

	r.Outcome, r.Winner = game.OutcomeTie, ""
	assert.Contains(t, FormatRound(r), "It's a tie!")
}

func TestFormatMatch(t *testing.T) {
	tests := []struct {
		name     string
		result   game.MatchResult
		contains []string
	}{
		{
			name:     "grand winner",
			result:   game.MatchResult{PlayerName: "Ann", GrandWinner: "Ann", PlayerScore: 5, DealerScore: 2, Cash: 300, Rounds: 7},
			contains: []string{"Ann is the GRAND WINNER!", "You won $300!"},
		},
		{
			name:     "loss",
			result:   game.MatchResult{PlayerName: "Ann", PlayerScore: 1, DealerScore: 3, Cash: -200, Rounds: 4},
			contains: []string{"You lost $200."},
		},
		{
			name:     "even",
			result:   game.MatchResult{PlayerName: "Ann", Rounds: 1, Summary: &game.Summary{Rounds: 1, Ties: 1}},
			contains: []string{"didn't win or lose", "tied: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatMatch(tt.result)
			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
		})
	}
	assert.NotContains(t, FormatMatch(tests[1].result), "GRAND WINNER")
}

func TestConsoleMatch(t *testing.T) {
	in := strings.NewReader("Ann\ns\nn\n")
	var out bytes.Buffer

	rules := game.DefaultRules()
	rules.Pace = 0
	m, err := game.NewMatch(game.MatchConfig{
		Rules:     rules,
		Prompter:  NewPrompter(in, &out),
		Announcer: NewAnnouncer(&out),
	})
	require.NoError(t, err)

	res, err := m.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.PlayerName)
	assert.Equal(t, 1, res.Rounds)

	text := out.String()
	assert.Contains(t, text, "---------- Round 1 ----------")
	assert.Contains(t, text, "points: unknown")
	assert.Contains(t, text, "Ann stays.")
	assert.Contains(t, text, "Final score: Ann")
}
