package game

import "pirate_economy/internal/domain"

// Steal tuning.
const (
	BaseStealChance     = 40
	CrewStealBonus      = 10
	CrewProtectionBonus = 10
	MinStealChance      = 20
	MaxStealChance      = 60

	MinVictimBalance = 10
	MinStealAmount   = 10
	MaxStealAmount   = 500
	StealFractionMin = 0.05
	StealFractionMax = 0.25

	StealPenaltyMin = 5
	StealPenaltyMax = 15
)

// WeaponBonus is the fixed additive success bonus for an equipped weapon.
// Absent or unknown weapons give 0.
func WeaponBonus(weapon string) int {
	switch weapon {
	case domain.ItemPirateHook:
		return 5
	case domain.ItemCutlass:
		return 10
	case domain.ItemFlintlockPistol:
		return 15
	case domain.ItemFlintlockMusket:
		return 20
	case domain.ItemCannon:
		return 25
	case domain.ItemGrenade:
		return 30
	default:
		return 0
	}
}

// StealSuccessChance combines crew standing and the thief's weapon into a
// success percentage, clamped to [MinStealChance, MaxStealChance].
func StealSuccessChance(thiefInCrew, victimInCrew bool, weapon string) int {
	chance := BaseStealChance
	if thiefInCrew {
		chance += CrewStealBonus
	}
	if victimInCrew {
		chance -= CrewProtectionBonus
	}
	chance += WeaponBonus(weapon)

	if chance < MinStealChance {
		chance = MinStealChance
	}
	if chance > MaxStealChance {
		chance = MaxStealChance
	}
	return chance
}

// StolenAmount draws 5-25% of the victim's balance, clamped to
// [MinStealAmount, MaxStealAmount] and re-clamped to the victim's balance.
func StolenAmount(victimBalance int64) int64 {
	fraction := StealFractionMin + RandFloat()*(StealFractionMax-StealFractionMin)
	amount := int64(float64(victimBalance) * fraction)

	if amount < MinStealAmount {
		amount = MinStealAmount
	}
	if amount > MaxStealAmount {
		amount = MaxStealAmount
	}
	if amount > victimBalance {
		amount = victimBalance
	}
	return amount
}

// StealPenalty draws what a failed thief loses to the guards:
// uniform in [StealPenaltyMin, min(StealPenaltyMax, balance)], or 0 when the
// thief cannot even cover the minimum.
func StealPenalty(thiefBalance int64) int64 {
	upper := int64(StealPenaltyMax)
	if thiefBalance < upper {
		upper = thiefBalance
	}
	if upper < StealPenaltyMin {
		return 0
	}
	return int64(RandRange(StealPenaltyMin, int(upper)))
}
