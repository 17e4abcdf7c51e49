package game

import (
	"fmt"
	"time"
)

// Rules holds the table constants the round and match controllers play by.
type Rules struct {
	BustLimit      int
	DealerStandsOn int
	GrandScore     int
	CashPerPoint   int
	// Pace is the pause after turn announcements and draws. Zero disables it.
	Pace time.Duration
}

func DefaultRules() Rules {
	return Rules{
		BustLimit:      21,
		DealerStandsOn: 17,
		GrandScore:     5,
		CashPerPoint:   100,
		Pace:           600 * time.Millisecond,
	}
}

func (r Rules) Validate() error {
	if r.BustLimit <= 0 {
		return fmt.Errorf("bust limit must be positive, got %d", r.BustLimit)
	}
	if r.DealerStandsOn <= 0 || r.DealerStandsOn > r.BustLimit {
		return fmt.Errorf("dealer stand threshold must be in 1..%d, got %d", r.BustLimit, r.DealerStandsOn)
	}
	if r.GrandScore <= 0 {
		return fmt.Errorf("grand score must be positive, got %d", r.GrandScore)
	}
	if r.CashPerPoint < 0 {
		return fmt.Errorf("cash per point must not be negative, got %d", r.CashPerPoint)
	}
	if r.Pace < 0 {
		return fmt.Errorf("pace must not be negative, got %s", r.Pace)
	}
	return nil
}

func (r Rules) pause() {
	if r.Pace > 0 {
		time.Sleep(r.Pace)
	}
}
