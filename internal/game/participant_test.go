package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerRule(t *testing.T) {
	tests := []struct {
		points int
		hit    bool
	}{
		{4, true},
		{12, true},
		{16, true},
		{17, false},
		{20, false},
		{21, false},
	}

	rule := DealerRule{StandOn: 17}
	for _, tt := range tests {
		hit, err := rule.DecidesToHit(context.Background(), tt.points)
		require.NoError(t, err)
		assert.Equal(t, tt.hit, hit, "points %d", tt.points)
	}
}

func TestHumanDecider(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		hit     bool
		asked   int
	}{
		{name: "hit", answers: []string{"hit"}, hit: true, asked: 1},
		{name: "stay", answers: []string{"s"}, hit: false, asked: 1},
		{name: "leading letter is enough", answers: []string{"  heck yes"}, hit: true, asked: 1},
		{name: "reprompts on garbage", answers: []string{"", "x", "stay"}, hit: false, asked: 3},
		{name: "upper case is not recognised", answers: []string{"Hit", "h"}, hit: true, asked: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := script(tt.answers...)
			hit, err := HumanDecider{Prompter: p}.DecidesToHit(context.Background(), 12)
			require.NoError(t, err)
			assert.Equal(t, tt.hit, hit)
			require.Len(t, p.asked, tt.asked)
			assert.False(t, p.asked[0].Retry)
			for _, q := range p.asked[1:] {
				assert.True(t, q.Retry)
				assert.Equal(t, AskHitOrStay, q.Kind)
			}
		})
	}
}

func TestHumanDeciderInputClosed(t *testing.T) {
	_, err := HumanDecider{Prompter: script()}.DecidesToHit(context.Background(), 12)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestParticipant(t *testing.T) {
	d := NewDealer(17)
	assert.Equal(t, DealerName, d.Name())
	assert.True(t, d.IsDealer())

	deck := stackDeck(card(Nine, Hearts), card(Ace, Spades), card(Five, Clubs))
	d.Draw(deck, 21)
	d.Draw(deck, 21)
	assert.Equal(t, 20, d.Points())

	stays, err := d.Stays(context.Background())
	require.NoError(t, err)
	assert.True(t, stays)

	d.Draw(deck, 21)
	assert.Equal(t, 15, d.Points())
	assert.False(t, d.Busted(21))
	assert.Len(t, d.Cards(), 3)

	d.addWin()
	d.EmptyHand()
	assert.Empty(t, d.Cards())
	assert.Equal(t, 0, d.Points())
	assert.Equal(t, 1, d.Score(), "score survives an emptied hand")

	d.resetScore()
	assert.Equal(t, 0, d.Score())
}

func TestPlayer(t *testing.T) {
	p := NewPlayer("Ann", script("s"))
	assert.Equal(t, "Ann", p.Name())
	assert.False(t, p.IsDealer())

	stays, err := p.Stays(context.Background())
	require.NoError(t, err)
	assert.True(t, stays)
}
