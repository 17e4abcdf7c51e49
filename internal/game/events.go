package game

type EventKind int

const (
	EventMatchStarted EventKind = iota
	EventRoundStarted
	EventDealt
	EventTurn
	EventDrew
	EventStayed
	EventBusted
	EventRevealed
	EventRoundOver
	EventMatchOver
)

func (k EventKind) String() string {
	switch k {
	case EventMatchStarted:
		return "match_started"
	case EventRoundStarted:
		return "round_started"
	case EventDealt:
		return "dealt"
	case EventTurn:
		return "turn"
	case EventDrew:
		return "drew"
	case EventStayed:
		return "stayed"
	case EventBusted:
		return "busted"
	case EventRevealed:
		return "revealed"
	case EventRoundOver:
		return "round_over"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is what the controllers tell the presentation layer, in order.
type Event struct {
	Kind  EventKind
	Round int
	// Actor is the participant the event is about, if any.
	Actor string
	// Card is set for EventDrew.
	Card   Card
	Table  Table
	Result *RoundResult
	Match  *MatchResult
}

type Announcer interface {
	Announce(e Event)
}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(Event) {}

// HiddenCard stands in for the dealer's concealed second card.
const HiddenCard = "an unknown card"

// SeatView is the visible state of one participant.
type SeatView struct {
	Name  string
	Cards []string
	// PointsKnown is false while the dealer's second card is face down.
	PointsKnown bool
	Points      int
	Busted      bool
	Stayed      bool
	Score       int
}

type Table struct {
	Player SeatView
	Dealer SeatView
}
