package console

import (
	"fmt"
	"io"
	"strings"

	"twentyone/internal/game"
)

// Announcer prints game events as plain text.
type Announcer struct {
	out io.Writer
}

func NewAnnouncer(out io.Writer) *Announcer {
	return &Announcer{out: out}
}

func (a *Announcer) Announce(e game.Event) {
	switch e.Kind {
	case game.EventMatchStarted:
		a.printf("Hi %s! First to win enough rounds takes the match.\n", e.Actor)
	case game.EventRoundStarted:
		a.printf("\n---------- Round %d ----------\n", e.Round)
	case game.EventDealt:
		a.printf("%s\n", FormatTable(e.Table))
	case game.EventTurn:
		a.printf("%s's turn...\n", e.Actor)
	case game.EventDrew:
		a.printf("%s hits and draws the %s.\n", e.Actor, e.Card.Name())
		a.printf("%s\n", FormatTable(e.Table))
	case game.EventStayed:
		a.printf("%s stays.\n", e.Actor)
	case game.EventBusted:
		a.printf("%s busted!\n", e.Actor)
	case game.EventRevealed:
		a.printf("%s reveals: %s\n", e.Actor, FormatSeat(e.Table.Dealer))
	case game.EventRoundOver:
		a.printf("%s\n", FormatRound(*e.Result))
	case game.EventMatchOver:
		a.printf("\n%s\n", FormatMatch(*e.Match))
	}
}

func (a *Announcer) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// JoinAnd lists items as "a", "a and b" or "a, b, and c".
func JoinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func FormatSeat(s game.SeatView) string {
	points := "unknown"
	if s.PointsKnown {
		points = fmt.Sprintf("%d", s.Points)
	}
	return fmt.Sprintf("%s has: %s (points: %s)", s.Name, JoinAnd(s.Cards), points)
}

func FormatTable(t game.Table) string {
	return FormatSeat(t.Dealer) + "\n" + FormatSeat(t.Player)
}

func FormatRound(r game.RoundResult) string {
	var sb strings.Builder
	sb.WriteString(FormatTable(r.Table))
	sb.WriteString("\n")

	switch r.Outcome {
	case game.OutcomeTie:
		sb.WriteString("It's a tie!")
	case game.OutcomeNoWinner:
		sb.WriteString("Nobody wins this round.")
	default:
		if r.ByBust {
			sb.WriteString(fmt.Sprintf("%s wins by bust!", r.Winner))
		} else {
			sb.WriteString(fmt.Sprintf("%s wins!", r.Winner))
		}
	}

	sb.WriteString(fmt.Sprintf("\nScore: %s %d, %s %d",
		r.Table.Player.Name, r.Table.Player.Score, r.Table.Dealer.Name, r.Table.Dealer.Score))
	return sb.String()
}

func FormatMatch(m game.MatchResult) string {
	var sb strings.Builder

	if m.GrandWinner != "" {
		sb.WriteString(fmt.Sprintf("%s is the GRAND WINNER!\n", m.GrandWinner))
	}
	sb.WriteString(fmt.Sprintf("Final score: %s %d, %s %d after %d round(s).\n",
		m.PlayerName, m.PlayerScore, game.DealerName, m.DealerScore, m.Rounds))

	if s := m.Summary; s != nil {
		sb.WriteString(fmt.Sprintf("Rounds won: %d, lost: %d, tied: %d.\n", s.PlayerWins, s.DealerWins, s.Ties))
	}

	switch m.CashOutcome() {
	case game.CashWon:
		sb.WriteString(fmt.Sprintf("You won $%d!", m.CashAmount()))
	case game.CashLost:
		sb.WriteString(fmt.Sprintf("You lost $%d.", m.CashAmount()))
	default:
		sb.WriteString("You didn't win or lose anything.")
	}
	return sb.String()
}
