package game

import "context"

const DealerName = "Dealer"

// Decider is the hit/stay policy of a participant.
type Decider interface {
	DecidesToHit(ctx context.Context, points int) (bool, error)
}

// HumanDecider puts the question to a person.
type HumanDecider struct {
	Prompter Prompter
}

func (d HumanDecider) DecidesToHit(ctx context.Context, _ int) (bool, error) {
	return askHitOrStay(ctx, d.Prompter)
}

// DealerRule hits below StandOn and stands from there up.
type DealerRule struct {
	StandOn int
}

func (d DealerRule) DecidesToHit(_ context.Context, points int) (bool, error) {
	return points < d.StandOn, nil
}

type Participant struct {
	name    string
	dealer  bool
	hand    Hand
	score   int
	decider Decider
}

func NewPlayer(name string, p Prompter) *Participant {
	return &Participant{name: name, decider: HumanDecider{Prompter: p}}
}

func NewDealer(standOn int) *Participant {
	return &Participant{name: DealerName, dealer: true, decider: DealerRule{StandOn: standOn}}
}

func (p *Participant) Name() string { return p.name }
func (p *Participant) IsDealer() bool { return p.dealer }
func (p *Participant) Score() int { return p.score }
func (p *Participant) Points() int { return p.hand.Points() }
func (p *Participant) Cards() []Card { return p.hand.Cards() }

func (p *Participant) Busted(bustLimit int) bool {
	return p.hand.Points() > bustLimit
}

// Draw moves the top card of d into the hand and returns it.
func (p *Participant) Draw(d *Deck, bustLimit int) Card {
	c := d.Draw()
	p.hand.Add(c, bustLimit)
	return c
}

// Stays asks the policy and inverts it.
func (p *Participant) Stays(ctx context.Context) (bool, error) {
	hit, err := p.decider.DecidesToHit(ctx, p.hand.Points())
	if err != nil {
		return false, err
	}
	return !hit, nil
}

func (p *Participant) EmptyHand() {
	p.hand.Empty()
}

func (p *Participant) addWin() {
	p.score++
}

func (p *Participant) resetScore() {
	p.score = 0
}
