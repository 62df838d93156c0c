package game

import "pirate_economy/internal/domain"

// Search tuning.
const (
	BaseCoinChance = 60
	BaseItemChance = 20
	CoinFindMin    = 15
	CoinFindMax    = 45

	CrewCoinMultiplier = 1.5

	CompassCoinBonus  = 15
	SpyglassCoinBonus = 20

	ShipMaintenanceCoinBonus = 30
	ShipMaintenanceMultBonus = 0.5
	TreasureMapCoinBonus     = 25
	TreasureMapMultBonus     = 1.0
)

// SearchPlan is the resolved modifier set for one search attempt, computed
// from the pre-roll effect and inventory state. Consume flags mark the
// crew-only single-use boosters that must leave the inventory as part of the
// same attempt.
type SearchPlan struct {
	CoinChance             int
	ItemChance             int
	Multiplier             float64
	ConsumeShipMaintenance bool
	ConsumeTreasureMap     bool
}

// BuildSearchPlan folds active consumables and crew boosters into the base
// percentages. Crew-only boosters count only for crew members.
func BuildSearchPlan(effects domain.EffectState, inventory map[string]int, isCrew bool) SearchPlan {
	plan := SearchPlan{
		CoinChance: BaseCoinChance,
		ItemChance: BaseItemChance,
		Multiplier: 1.0,
	}

	if effects.CompassActive {
		plan.CoinChance += CompassCoinBonus
	}
	if effects.SpyglassActive {
		plan.CoinChance += SpyglassCoinBonus
	}

	if isCrew && inventory[domain.ItemShipMaintenance] > 0 {
		plan.CoinChance += ShipMaintenanceCoinBonus
		plan.Multiplier += ShipMaintenanceMultBonus
		plan.ConsumeShipMaintenance = true
	}
	if isCrew && inventory[domain.ItemTreasureMap] > 0 {
		plan.CoinChance += TreasureMapCoinBonus
		plan.Multiplier += TreasureMapMultBonus
		plan.ConsumeTreasureMap = true
	}

	return plan
}

// CoinsFound applies the multiplier to a base find, flooring at each step.
// The crew bonus is applied last, after the plan multiplier.
func CoinsFound(base int, multiplier float64, isCrew bool) int64 {
	coins := int64(float64(base) * multiplier)
	if isCrew {
		coins = int64(float64(coins) * CrewCoinMultiplier)
	}
	return coins
}

// SearchOutcome is the raw result of the two independent rolls.
type SearchOutcome struct {
	CoinRoll  int
	ItemRoll  int
	Coins     int64
	ItemFound string
}

// ResolveSearch rolls the coin and item chances independently and computes
// the winnings. It performs no mutation; consuming boosters, crediting coins
// and ticking durability are the caller's job.
func ResolveSearch(plan SearchPlan, isCrew bool) SearchOutcome {
	out := SearchOutcome{
		CoinRoll: RollPercent(),
		ItemRoll: RollPercent(),
	}

	if out.CoinRoll <= plan.CoinChance {
		base := RandRange(CoinFindMin, CoinFindMax)
		out.Coins = CoinsFound(base, plan.Multiplier, isCrew)
	}
	if out.ItemRoll <= plan.ItemChance {
		out.ItemFound = DrawLoot(isCrew)
	}

	return out
}
