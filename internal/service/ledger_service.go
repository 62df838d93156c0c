package service

import (
	"context"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/metrics"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
)

// LedgerService is the balance and total-earned bookkeeping. Credits grow
// total_earned; debits and transfers never shrink it.
type LedgerService struct {
	store *store.Store
}

func NewLedgerService(st *store.Store) *LedgerService {
	return &LedgerService{store: st}
}

// GetBalance returns a user's balance; unknown users hold 0.
func (s *LedgerService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		balance, err = repository.GetBalance(ctx, tx, userID)
		return err
	})
	return balance, err
}

// GetStats returns balance and lifetime earnings.
func (s *LedgerService) GetStats(ctx context.Context, userID int64) (balance, totalEarned int64, err error) {
	err = s.store.View(ctx, func(tx pgx.Tx) error {
		var e error
		balance, totalEarned, e = repository.GetStats(ctx, tx, userID)
		return e
	})
	return balance, totalEarned, err
}

// AddCoins applies a signed amount and logs it. A debit that would take the
// balance below zero fails with ErrInsufficientFunds and changes nothing.
func (s *LedgerService) AddCoins(ctx context.Context, userID int64, amount int64, txType string, meta map[string]any) (int64, error) {
	if amount == 0 {
		return 0, domain.ErrInvalidAmount
	}

	var newBalance int64
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		var err error
		newBalance, err = repository.AddBalance(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		return repository.RecordTransaction(ctx, tx, &domain.Transaction{
			UserID: userID,
			Type:   txType,
			Amount: amount,
			Meta:   meta,
		})
	})
	if err != nil {
		return 0, err
	}
	if amount > 0 {
		metrics.CoinsMinted.Add(float64(amount))
	}
	return newBalance, nil
}

// Transfer moves amount between two accounts as one atomic unit. Neither
// side's total_earned moves: a transfer redistributes, it does not earn.
func (s *LedgerService) Transfer(ctx context.Context, fromID, toID, amount int64, txType string, meta map[string]any) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		return transferTx(ctx, tx, fromID, toID, amount, txType, meta)
	})
	if err != nil {
		return err
	}
	metrics.CoinsTransferred.Add(float64(amount))
	return nil
}

// transferTx is the paired debit/credit within an already-open transaction,
// shared with the action resolver so steal settles in the same atomic unit
// as its roll.
func transferTx(ctx context.Context, tx pgx.Tx, fromID, toID, amount int64, txType string, meta map[string]any) error {
	if err := repository.EnsureUser(ctx, tx, fromID); err != nil {
		return err
	}
	if err := repository.EnsureUser(ctx, tx, toID); err != nil {
		return err
	}

	if _, err := repository.AdjustBalance(ctx, tx, fromID, -amount); err != nil {
		return err
	}
	if _, err := repository.AdjustBalance(ctx, tx, toID, amount); err != nil {
		return err
	}

	outMeta := cloneMeta(meta)
	outMeta["to_user_id"] = toID
	if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
		UserID: fromID,
		Type:   txType + "_out",
		Amount: -amount,
		Meta:   outMeta,
	}); err != nil {
		return err
	}

	inMeta := cloneMeta(meta)
	inMeta["from_user_id"] = fromID
	return repository.RecordTransaction(ctx, tx, &domain.Transaction{
		UserID: toID,
		Type:   txType + "_in",
		Amount: amount,
		Meta:   inMeta,
	})
}

// Leaderboard returns the top accounts by balance, deterministic order.
func (s *LedgerService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []domain.LeaderboardEntry
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		entries, err = repository.Leaderboard(ctx, tx, limit)
		return err
	})
	return entries, err
}

// History returns a user's recent ledger entries.
func (s *LedgerService) History(ctx context.Context, userID int64, limit int) ([]*domain.Transaction, error) {
	var result []*domain.Transaction
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		result, err = repository.TransactionHistory(ctx, tx, userID, limit)
		return err
	})
	return result, err
}

func cloneMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta)+1)
	for k, v := range meta {
		out[k] = v
	}
	return out
}
