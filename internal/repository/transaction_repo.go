package repository

import (
	"context"
	"encoding/json"
	"time"

	"pirate_economy/internal/domain"

	"github.com/jackc/pgx/v5"
)

// RecordTransaction appends one ledger log entry inside the caller's
// transaction, so the log and the balance move commit together.
func RecordTransaction(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	metaJSON, err := json.Marshal(t.Meta)
	if err != nil {
		metaJSON = []byte("{}")
	}

	return tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, type, amount, meta)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.UserID, t.Type, t.Amount, metaJSON,
	).Scan(&t.ID, &t.CreatedAt)
}

// TransactionHistory returns a user's most recent ledger entries.
func TransactionHistory(ctx context.Context, tx pgx.Tx, userID int64, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := tx.Query(ctx,
		`SELECT id, user_id, type, amount, meta, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Transaction
	for rows.Next() {
		var (
			t         domain.Transaction
			metaJSON  []byte
			createdAt time.Time
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &metaJSON, &createdAt); err != nil {
			return nil, err
		}
		t.CreatedAt = createdAt
		if len(metaJSON) > 0 {
			_ = json.Unmarshal(metaJSON, &t.Meta)
		}
		result = append(result, &t)
	}
	return result, rows.Err()
}
