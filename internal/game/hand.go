package game

// Hand keeps cards in draw order along with their settled point total.
type Hand struct {
	cards  []Card
	points int
}

// Add appends a card and re-settles the total against bustLimit.
func (h *Hand) Add(c Card, bustLimit int) {
	h.cards = append(h.cards, c)
	h.settle(bustLimit)
}

// settle devalues aces left to right, one at a time, until the hand is at or
// under bustLimit or no undevalued ace is left.
func (h *Hand) settle(bustLimit int) {
	total := h.sum()
	for total > bustLimit {
		i := h.firstLiveAce()
		if i < 0 {
			break
		}
		h.cards[i].Devalue()
		total = h.sum()
	}
	h.points = total
}

func (h *Hand) sum() int {
	total := 0
	for _, c := range h.cards {
		total += c.Worth()
	}
	return total
}

func (h *Hand) firstLiveAce() int {
	for i, c := range h.cards {
		if c.IsAce() && !c.Devalued() {
			return i
		}
	}
	return -1
}

func (h *Hand) Points() int {
	return h.points
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Empty() {
	h.cards = h.cards[:0]
	h.points = 0
}
