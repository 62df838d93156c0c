package service

import (
	"context"
	"time"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/repository"

	"github.com/jackc/pgx/v5"
)

// CooldownGate enforces the per-(user, action) minimum intervals. It runs
// inside the caller's store transaction so an action's eligibility check,
// mutations and trigger record commit together. The clock is injectable for
// tests.
type CooldownGate struct {
	Now func() int64
}

func NewCooldownGate() CooldownGate {
	return CooldownGate{Now: func() int64 { return time.Now().Unix() }}
}

// Check returns a CooldownActiveError with the remaining wait if the action
// is not yet eligible.
func (g CooldownGate) Check(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind) error {
	last, err := repository.GetCooldown(ctx, tx, userID, kind)
	if err != nil {
		return err
	}
	now := g.Now()
	if !domain.CanTrigger(last, now, kind) {
		return &domain.CooldownActiveError{
			Action:    kind,
			Remaining: domain.CooldownRemaining(last, now, kind),
		}
	}
	return nil
}

// Record stamps the action as triggered now.
func (g CooldownGate) Record(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind) error {
	return repository.SetCooldown(ctx, tx, userID, kind, g.Now())
}

// Rewind moves the stored timestamp back, making the user eligible sooner.
// The timestamp floors at 0, the never-triggered default.
func (g CooldownGate) Rewind(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind, seconds int64) error {
	last, err := repository.GetCooldown(ctx, tx, userID, kind)
	if err != nil {
		return err
	}
	rewound := last - seconds
	if rewound < 0 {
		rewound = 0
	}
	return repository.SetCooldown(ctx, tx, userID, kind, rewound)
}

// Remaining reports the wait for an action without touching it.
func (g CooldownGate) Remaining(ctx context.Context, tx pgx.Tx, userID int64, kind domain.ActionKind) (int64, error) {
	last, err := repository.GetCooldown(ctx, tx, userID, kind)
	if err != nil {
		return 0, err
	}
	return domain.CooldownRemaining(last, g.Now(), kind), nil
}
