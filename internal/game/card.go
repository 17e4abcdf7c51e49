package game

import "strconv"

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "?"
	}
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is a suit/rank pair with a worth that an ace may lose once.
type Card struct {
	Suit Suit
	Rank Rank

	worth    int
	devalued bool
}

func NewCard(s Suit, r Rank) Card {
	c := Card{Suit: s, Rank: r}
	c.worth = c.InitialWorth()
	return c
}

func (c Card) InitialWorth() int {
	switch {
	case c.IsFace():
		return 10
	case c.IsAce():
		return 11
	default:
		return int(c.Rank)
	}
}

func (c Card) Worth() int {
	return c.worth
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func (c Card) Devalued() bool {
	return c.devalued
}

// Devalue drops an undevalued ace to 1. Reports whether the card changed.
func (c *Card) Devalue() bool {
	if !c.IsAce() || c.devalued {
		return false
	}
	c.worth = 1
	c.devalued = true
	return true
}

func (c Card) Name() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

func (c Card) String() string {
	return c.Name()
}
