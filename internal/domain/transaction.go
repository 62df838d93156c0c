package domain

import "time"

// Transaction is one ledger log entry. Amount is signed: credits positive,
// debits negative.
type Transaction struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Type      string         `json:"type"`
	Amount    int64          `json:"amount"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Transaction types written by the engine. Transfer types get an _out/_in
// suffix per side.
const (
	TxSearch       = "search"
	TxSteal        = "steal"
	TxStealPenalty = "steal_penalty"
	TxBuy          = "buy"
	TxSell         = "sell"
	TxDaily        = "daily"
	TxPassive      = "passive"
	TxAdminGrant   = "admin_grant"
	TxAdminRevoke  = "admin_revoke"
)
