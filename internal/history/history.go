package history

import (
	"context"
	"database/sql"
	"fmt"

	"twentyone/internal/game"
)

// Repository is the round ledger of the running process.
type Repository interface {
	RecordRound(ctx context.Context, matchID string, res game.RoundResult) error
	Summary(ctx context.Context, matchID string) (game.Summary, error)
	Rounds(ctx context.Context, matchID string) ([]Round, error)
}

// Round is one stored round result.
type Round struct {
	MatchID      string
	Number       int
	PlayerName   string
	Outcome      string
	Winner       string
	ByBust       bool
	PlayerPoints int
	DealerPoints int
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) RecordRound(ctx context.Context, matchID string, res game.RoundResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rounds (match_id, number, player_name, outcome, winner, by_bust, player_points, dealer_points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, matchID, res.Number, res.Table.Player.Name, res.Outcome.String(), res.Winner,
		res.ByBust, res.Table.Player.Points, res.Table.Dealer.Points)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Summary(ctx context.Context, matchID string) (game.Summary, error) {
	var s game.Summary

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0)
		FROM rounds WHERE match_id = ?
	`, game.OutcomePlayerWins.String(), game.OutcomeDealerWins.String(), game.OutcomeTie.String(), matchID).Scan(
		&s.Rounds, &s.PlayerWins, &s.DealerWins, &s.Ties,
	)
	if err != nil {
		return game.Summary{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return s, nil
}

func (r *SQLiteRepository) Rounds(ctx context.Context, matchID string) ([]Round, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, number, player_name, outcome, winner, by_bust, player_points, dealer_points
		FROM rounds
		WHERE match_id = ?
		ORDER BY number
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var rd Round
		if err := rows.Scan(&rd.MatchID, &rd.Number, &rd.PlayerName, &rd.Outcome, &rd.Winner,
			&rd.ByBust, &rd.PlayerPoints, &rd.DealerPoints); err != nil {
			return nil, err
		}
		rounds = append(rounds, rd)
	}

	return rounds, rows.Err()
}
