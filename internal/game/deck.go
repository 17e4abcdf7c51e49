package game

import "math/rand"

const DeckSize = 52

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck builds a shuffled deck. A nil shuffler uses the math/rand global source.
func NewDeck(s Shuffler) *Deck {
	if s == nil {
		s = globalShuffler{}
	}
	d := &Deck{shuffler: s}
	d.Reshuffle()
	return d
}

// Reshuffle throws away whatever is left and shuffles a fresh 52 cards.
func (d *Deck) Reshuffle() {
	d.cards = freshCards()
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card. The deck must not be empty; a two-hand table
// never gets close.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		panic("game: draw from empty deck")
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// freshCards returns the unshuffled deck, suit by suit, Two through Ace.
func freshCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, NewCard(s, r))
		}
	}
	return cards
}
