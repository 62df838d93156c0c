package domain

// ActionKind names a rate-limited action. Each kind has its own last-trigger
// timestamp per user, stored as epoch seconds (0 = never triggered).
type ActionKind string

const (
	ActionPassiveEarn ActionKind = "passive_earn"
	ActionSearch      ActionKind = "search"
	ActionSteal       ActionKind = "steal"
	ActionDaily       ActionKind = "daily"
)

// Cooldown thresholds in seconds.
const (
	PassiveEarnCooldown = 60
	SearchCooldown      = 300
	StealCooldown       = 600
	DailyCooldown       = 86400

	// RumCooldownRewind is how far Rum moves the search timestamp back.
	RumCooldownRewind = 120
)

// Threshold returns the minimum interval for an action kind.
func Threshold(kind ActionKind) int64 {
	switch kind {
	case ActionPassiveEarn:
		return PassiveEarnCooldown
	case ActionSearch:
		return SearchCooldown
	case ActionSteal:
		return StealCooldown
	case ActionDaily:
		return DailyCooldown
	default:
		return 0
	}
}

// CanTrigger reports whether an action is eligible given its last trigger time.
func CanTrigger(last, now int64, kind ActionKind) bool {
	return now-last >= Threshold(kind)
}

// CooldownRemaining returns the seconds until the action becomes eligible,
// 0 if it already is.
func CooldownRemaining(last, now int64, kind ActionKind) int64 {
	remaining := Threshold(kind) - (now - last)
	if remaining < 0 {
		return 0
	}
	return remaining
}
