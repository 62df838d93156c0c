package domain

import "time"

// UserAccount is one row of the users table. Accounts are created implicitly
// on the first mutating reference and never deleted.
type UserAccount struct {
	UserID      int64       `json:"user_id"`
	Balance     int64       `json:"balance"`
	TotalEarned int64       `json:"total_earned"`
	LastPassive int64       `json:"-"`
	LastSearch  int64       `json:"-"`
	LastSteal   int64       `json:"-"`
	LastDaily   int64       `json:"-"`
	Effects     EffectState `json:"effects"`
	CreatedAt   time.Time   `json:"created_at"`
}

// LeaderboardEntry is one row of the balance ranking.
type LeaderboardEntry struct {
	Rank        int   `json:"rank"`
	UserID      int64 `json:"user_id"`
	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`
}
