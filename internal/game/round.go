package game

import "context"

type Outcome int

const (
	OutcomeNoWinner Outcome = iota
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWins:
		return "player"
	case OutcomeDealerWins:
		return "dealer"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

type RoundResult struct {
	Number  int
	Outcome Outcome
	// Winner is empty on a tie or when nobody is left standing.
	Winner string
	// ByBust is set when the winner won because the other side went over.
	ByBust bool
	Table  Table
}

// Round plays one deal of the two hands. Create a fresh Round per deal.
type Round struct {
	number int
	rules  Rules
	deck   *Deck
	player *Participant
	dealer *Participant
	out    Announcer

	revealed     bool
	playerStayed bool
	dealerStayed bool
	winner       *Participant
}

func NewRound(number int, rules Rules, deck *Deck, player, dealer *Participant, out Announcer) *Round {
	if out == nil {
		out = nopAnnouncer{}
	}
	return &Round{
		number: number,
		rules:  rules,
		deck:   deck,
		player: player,
		dealer: dealer,
		out:    out,
	}
}

func (r *Round) Number() int { return r.number }

// Revealed reports whether the dealer's second card is face up.
func (r *Round) Revealed() bool { return r.revealed }

func (r *Round) Winner() *Participant { return r.winner }

func (r *Round) Play(ctx context.Context) (RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return RoundResult{}, err
	}

	r.emit(Event{Kind: EventRoundStarted})
	r.deal()
	r.emit(Event{Kind: EventDealt})

	if err := r.turn(ctx, r.player, &r.playerStayed); err != nil {
		return RoundResult{}, err
	}

	r.revealed = true
	r.emit(Event{Kind: EventRevealed, Actor: r.dealer.Name()})

	if !r.player.Busted(r.rules.BustLimit) {
		if err := r.turn(ctx, r.dealer, &r.dealerStayed); err != nil {
			return RoundResult{}, err
		}
	}

	res := r.resolve()
	if r.winner != nil {
		r.winner.addWin()
	}
	res.Table = r.Table()

	r.emit(Event{Kind: EventRoundOver, Result: &res})
	return res, nil
}

// deal hands out two cards each, alternating player then dealer.
func (r *Round) deal() {
	for i := 0; i < 2; i++ {
		r.player.Draw(r.deck, r.rules.BustLimit)
		r.dealer.Draw(r.deck, r.rules.BustLimit)
	}
}

func (r *Round) turn(ctx context.Context, p *Participant, stayed *bool) error {
	for {
		if p.Busted(r.rules.BustLimit) {
			r.emit(Event{Kind: EventBusted, Actor: p.Name()})
			return nil
		}

		r.emit(Event{Kind: EventTurn, Actor: p.Name()})
		r.rules.pause()

		stays, err := p.Stays(ctx)
		if err != nil {
			return err
		}
		if stays {
			*stayed = true
			r.emit(Event{Kind: EventStayed, Actor: p.Name()})
			return nil
		}

		c := p.Draw(r.deck, r.rules.BustLimit)
		r.emit(Event{Kind: EventDrew, Actor: p.Name(), Card: c})
		r.rules.pause()
	}
}

func (r *Round) resolve() RoundResult {
	res := RoundResult{Number: r.number}

	var remaining []*Participant
	for _, p := range []*Participant{r.player, r.dealer} {
		if !p.Busted(r.rules.BustLimit) {
			remaining = append(remaining, p)
		}
	}

	switch len(remaining) {
	case 1:
		r.winner = remaining[0]
		res.ByBust = true
	case 2:
		switch pp, dp := r.player.Points(), r.dealer.Points(); {
		case pp > dp:
			r.winner = r.player
		case dp > pp:
			r.winner = r.dealer
		default:
			res.Outcome = OutcomeTie
		}
	}

	switch r.winner {
	case r.player:
		res.Outcome = OutcomePlayerWins
		res.Winner = r.player.Name()
	case r.dealer:
		res.Outcome = OutcomeDealerWins
		res.Winner = r.dealer.Name()
	}
	return res
}

// Table snapshots both seats, hiding the dealer's second card until reveal.
func (r *Round) Table() Table {
	return Table{
		Player: r.seat(r.player, r.playerStayed, true),
		Dealer: r.seat(r.dealer, r.dealerStayed, r.revealed),
	}
}

func (r *Round) seat(p *Participant, stayed, visible bool) SeatView {
	cards := p.Cards()
	v := SeatView{
		Name:   p.Name(),
		Cards:  make([]string, len(cards)),
		Busted: p.Busted(r.rules.BustLimit),
		Stayed: stayed,
		Score:  p.Score(),
	}
	for i, c := range cards {
		v.Cards[i] = c.Name()
	}
	if !visible {
		if len(v.Cards) > 1 {
			v.Cards = append(v.Cards[:1], HiddenCard)
		}
		return v
	}
	v.PointsKnown = true
	v.Points = p.Points()
	return v
}

func (r *Round) emit(e Event) {
	e.Round = r.number
	e.Table = r.Table()
	r.out.Announce(e)
}
