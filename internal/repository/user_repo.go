package repository

import (
	"context"
	"errors"
	"fmt"

	"pirate_economy/internal/domain"

	"github.com/jackc/pgx/v5"
)

// EnsureUser creates a zeroed account if none exists. Every mutating path
// calls this first, so referencing an unknown user is never an error.
func EnsureUser(ctx context.Context, tx pgx.Tx, userID int64) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	return err
}

// GetAccount reads the full account row. An unknown user is zero-state, not
// an error.
func GetAccount(ctx context.Context, tx pgx.Tx, userID int64) (*domain.UserAccount, error) {
	u := &domain.UserAccount{UserID: userID}
	err := tx.QueryRow(ctx,
		`SELECT balance, total_earned,
		        last_passive_earn, last_search, last_steal, last_daily,
		        compass_active, compass_durability,
		        spyglass_active, spyglass_durability,
		        COALESCE(equipped_weapon, ''), created_at
		 FROM users WHERE user_id = $1`,
		userID,
	).Scan(
		&u.Balance, &u.TotalEarned,
		&u.LastPassive, &u.LastSearch, &u.LastSteal, &u.LastDaily,
		&u.Effects.CompassActive, &u.Effects.CompassDurability,
		&u.Effects.SpyglassActive, &u.Effects.SpyglassDurability,
		&u.Effects.EquippedWeapon, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetBalance returns a user's balance, 0 for unknown users.
func GetBalance(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1`, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

// GetStats returns balance and total earned, zeros for unknown users.
func GetStats(ctx context.Context, tx pgx.Tx, userID int64) (balance, totalEarned int64, err error) {
	err = tx.QueryRow(ctx,
		`SELECT balance, total_earned FROM users WHERE user_id = $1`, userID,
	).Scan(&balance, &totalEarned)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, nil
	}
	return balance, totalEarned, err
}

// AddBalance applies a signed delta. total_earned grows only on credits, and
// the statement refuses to take the balance negative: the guard and the
// mutation are one statement, so check-then-update cannot interleave.
func AddBalance(ctx context.Context, tx pgx.Tx, userID int64, delta int64) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx,
		`UPDATE users
		 SET balance = balance + $1,
		     total_earned = total_earned + GREATEST($1, 0)
		 WHERE user_id = $2 AND balance + $1 >= 0
		 RETURNING balance`,
		delta, userID,
	).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrInsufficientFunds
	}
	return newBalance, err
}

// AdjustBalance applies a signed delta without touching total_earned. Used
// for transfers and shop movements, which redistribute rather than earn.
func AdjustBalance(ctx context.Context, tx pgx.Tx, userID int64, delta int64) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx,
		`UPDATE users SET balance = balance + $1
		 WHERE user_id = $2 AND balance + $1 >= 0
		 RETURNING balance`,
		delta, userID,
	).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrInsufficientFunds
	}
	return newBalance, err
}

// Leaderboard returns the top accounts by balance. Ties break on user_id
// ascending so the order is deterministic.
func Leaderboard(ctx context.Context, tx pgx.Tx, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := tx.Query(ctx,
		`SELECT user_id, balance, total_earned
		 FROM users
		 ORDER BY balance DESC, user_id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	rank := 1
	for rows.Next() {
		e := domain.LeaderboardEntry{Rank: rank}
		if err := rows.Scan(&e.UserID, &e.Balance, &e.TotalEarned); err != nil {
			return nil, err
		}
		entries = append(entries, e)
		rank++
	}
	return entries, rows.Err()
}

func cooldownColumn(kind domain.ActionKind) (string, error) {
	switch kind {
	case domain.ActionPassiveEarn:
		return "last_passive_earn", nil
	case domain.ActionSearch:
		return "last_search", nil
	case domain.ActionSteal:
		return "last_steal", nil
	case domain.ActionDaily:
		return "last_daily", nil
	default:
		return "", fmt.Errorf("unknown action kind %q", kind)
	}
}

// GetCooldown reads the last-trigger timestamp for (user, action), 0 for
// unknown users.
func GetCooldown(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind) (int64, error) {
	col, err := cooldownColumn(kind)
	if err != nil {
		return 0, err
	}
	var last int64
	err = tx.QueryRow(ctx,
		`SELECT `+col+` FROM users WHERE user_id = $1`, userID,
	).Scan(&last)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return last, err
}

// SetCooldown stores the last-trigger timestamp for (user, action).
func SetCooldown(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind, ts int64) error {
	col, err := cooldownColumn(kind)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE users SET `+col+` = $1 WHERE user_id = $2`, ts, userID,
	)
	return err
}

// GetEffects reads the effect state, zero-state for unknown users.
func GetEffects(ctx context.Context, tx pgx.Tx, userID int64) (domain.EffectState, error) {
	var s domain.EffectState
	err := tx.QueryRow(ctx,
		`SELECT compass_active, compass_durability,
		        spyglass_active, spyglass_durability,
		        COALESCE(equipped_weapon, '')
		 FROM users WHERE user_id = $1`,
		userID,
	).Scan(
		&s.CompassActive, &s.CompassDurability,
		&s.SpyglassActive, &s.SpyglassDurability,
		&s.EquippedWeapon,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.EffectState{}, nil
	}
	return s, err
}

// SetEffects writes the full effect state in one statement, so the
// active/durability pair can never be observed half-updated.
func SetEffects(ctx context.Context, tx pgx.Tx, userID int64, s domain.EffectState) error {
	_, err := tx.Exec(ctx,
		`UPDATE users
		 SET compass_active = $1, compass_durability = $2,
		     spyglass_active = $3, spyglass_durability = $4,
		     equipped_weapon = NULLIF($5, '')
		 WHERE user_id = $6`,
		s.CompassActive, s.CompassDurability,
		s.SpyglassActive, s.SpyglassDurability,
		s.EquippedWeapon, userID,
	)
	return err
}
