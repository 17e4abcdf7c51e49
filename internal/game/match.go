package game

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Summary is the round tally a Recorder keeps for one match.
type Summary struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Ties       int
}

// Recorder stores round results for the lifetime of the process.
type Recorder interface {
	RecordRound(ctx context.Context, matchID string, res RoundResult) error
	Summary(ctx context.Context, matchID string) (Summary, error)
}

type CashOutcome int

const (
	CashEven CashOutcome = iota
	CashWon
	CashLost
)

type MatchResult struct {
	ID          string
	PlayerName  string
	Rounds      int
	GrandWinner string
	PlayerScore int
	DealerScore int
	// Cash is positive when the player came out ahead.
	Cash    int
	Summary *Summary
}

func (r MatchResult) CashOutcome() CashOutcome {
	switch {
	case r.Cash > 0:
		return CashWon
	case r.Cash < 0:
		return CashLost
	default:
		return CashEven
	}
}

// CashAmount is the size of the win or loss.
func (r MatchResult) CashAmount() int {
	if r.Cash < 0 {
		return -r.Cash
	}
	return r.Cash
}

type MatchConfig struct {
	Rules     Rules
	Prompter  Prompter
	Announcer Announcer
	// Shuffler may be nil.
	Shuffler Shuffler
	// Recorder may be nil, in which case results carry no Summary.
	Recorder Recorder
}

// Match runs rounds between one human and the dealer until someone reaches
// the grand score or the human stops.
type Match struct {
	id       string
	rules    Rules
	prompter Prompter
	out      Announcer
	recorder Recorder
	deck     *Deck

	player *Participant
	dealer *Participant
	rounds int
}

func NewMatch(cfg MatchConfig) (*Match, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if cfg.Prompter == nil {
		return nil, fmt.Errorf("match needs a prompter")
	}

	out := cfg.Announcer
	if out == nil {
		out = nopAnnouncer{}
	}

	return &Match{
		id:       uuid.NewString(),
		rules:    cfg.Rules,
		prompter: cfg.Prompter,
		out:      out,
		recorder: cfg.Recorder,
		deck:     NewDeck(cfg.Shuffler),
		dealer:   NewDealer(cfg.Rules.DealerStandsOn),
	}, nil
}

func (m *Match) ID() string { return m.id }

// Play runs the whole match. On error the result holds what was played so far.
func (m *Match) Play(ctx context.Context) (MatchResult, error) {
	name, err := askName(ctx, m.prompter)
	if err != nil {
		return m.result(ctx), err
	}
	m.player = NewPlayer(name, m.prompter)
	m.player.resetScore()
	m.dealer.resetScore()

	m.out.Announce(Event{Kind: EventMatchStarted, Actor: name})

	for {
		if m.rounds > 0 {
			m.deck.Reshuffle()
			m.player.EmptyHand()
			m.dealer.EmptyHand()
		}
		m.rounds++

		round := NewRound(m.rounds, m.rules, m.deck, m.player, m.dealer, m.out)
		res, err := round.Play(ctx)
		if err != nil {
			return m.result(ctx), err
		}
		m.record(ctx, res)

		if m.grandWinner() != nil {
			break
		}

		again, err := askPlayAgain(ctx, m.prompter)
		if err != nil {
			return m.result(ctx), err
		}
		if !again {
			break
		}
	}

	res := m.result(ctx)
	m.out.Announce(Event{Kind: EventMatchOver, Round: m.rounds, Match: &res})
	return res, nil
}

func (m *Match) grandWinner() *Participant {
	for _, p := range []*Participant{m.player, m.dealer} {
		if p.Score() >= m.rules.GrandScore {
			return p
		}
	}
	return nil
}

func (m *Match) record(ctx context.Context, res RoundResult) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.RecordRound(ctx, m.id, res); err != nil {
		log.Printf("Failed to record round %d of match %s: %v", res.Number, m.id, err)
	}
}

func (m *Match) result(ctx context.Context) MatchResult {
	res := MatchResult{
		ID:          m.id,
		Rounds:      m.rounds,
		DealerScore: m.dealer.Score(),
	}
	if m.player != nil {
		res.PlayerName = m.player.Name()
		res.PlayerScore = m.player.Score()
		if gw := m.grandWinner(); gw != nil {
			res.GrandWinner = gw.Name()
		}
	}
	res.Cash = (res.PlayerScore - res.DealerScore) * m.rules.CashPerPoint

	if m.recorder != nil && m.rounds > 0 {
		s, err := m.recorder.Summary(context.WithoutCancel(ctx), m.id)
		if err != nil {
			log.Printf("Failed to load summary for match %s: %v", m.id, err)
		} else {
			res.Summary = &s
		}
	}
	return res
}
