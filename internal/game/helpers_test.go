package game

import (
	"context"
	"sync"
)

// scriptedPrompter answers questions from a fixed list and fails with
// ErrInputClosed once it runs out.
type scriptedPrompter struct {
	answers []string
	asked   []Question
}

func script(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.asked = append(p.asked, q)
	if len(p.answers) == 0 {
		return "", ErrInputClosed
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) kinds() []QuestionKind {
	out := make([]QuestionKind, len(p.asked))
	for i, q := range p.asked {
		out[i] = q.Kind
	}
	return out
}

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) Announce(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}

func (l *eventLog) count(k EventKind, actor string) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k && e.Actor == actor {
			n++
		}
	}
	return n
}

func card(r Rank, s Suit) Card {
	return NewCard(s, r)
}

// stackDeck returns a deck that deals cards in the given order.
func stackDeck(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards)), shuffler: globalShuffler{}}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// riggedShuffler arranges each reshuffle so the listed cards come off the
// top in order. It cycles through deals and leaves the rest of the deck in
// fresh order.
type riggedShuffler struct {
	deals [][]Card
	calls int
}

func freshIndex(c Card) int {
	return int(c.Suit)*len(ranks) + int(c.Rank-Two)
}

func (r *riggedShuffler) Shuffle(n int, swap func(i, j int)) {
	order := r.deals[r.calls%len(r.deals)]
	r.calls++

	pos := make([]int, n)
	at := make([]int, n)
	for i := range pos {
		pos[i], at[i] = i, i
	}
	for i, c := range order {
		target := n - 1 - i
		k := freshIndex(c)
		p := pos[k]
		if p == target {
			continue
		}
		swap(p, target)
		other := at[target]
		at[p], pos[other] = other, p
		at[target], pos[k] = k, target
	}
}
