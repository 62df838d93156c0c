package game

import "pirate_economy/internal/domain"

// LootEntry is one item in a weighted draw table.
type LootEntry struct {
	Item   string
	Weight int
}

// NonCrewLootTable is what anyone can find while searching.
func NonCrewLootTable() []LootEntry {
	return []LootEntry{
		{domain.ItemCompass, 15},
		{domain.ItemSpyglass, 15},
		{domain.ItemRum, 20},
		{domain.ItemPirateHook, 12},
		{domain.ItemCutlass, 8},
		{domain.ItemFlintlockPistol, 5},
	}
}

// CrewLootTable extends the draw with crew-only items at lower weights.
func CrewLootTable() []LootEntry {
	return []LootEntry{
		{domain.ItemCompass, 10},
		{domain.ItemSpyglass, 10},
		{domain.ItemRum, 15},
		{domain.ItemPirateHook, 8},
		{domain.ItemCutlass, 6},
		{domain.ItemFlintlockPistol, 4},
		{domain.ItemShipMaintenance, 5},
		{domain.ItemTreasureMap, 3},
		{domain.ItemBarrel, 7},
		{domain.ItemFlintlockMusket, 4},
		{domain.ItemCannon, 2},
		{domain.ItemGrenade, 1},
	}
}

// Draw picks one entry by cumulative weight.
func Draw(table []LootEntry) string {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	if total <= 0 {
		return ""
	}

	n := int(randInt(int64(total)))
	cumulative := 0
	for _, e := range table {
		cumulative += e.Weight
		if n < cumulative {
			return e.Item
		}
	}
	// unreachable with positive weights
	return table[len(table)-1].Item
}

// DrawLoot draws one found item for the given membership variant.
func DrawLoot(isCrew bool) string {
	if isCrew {
		return Draw(CrewLootTable())
	}
	return Draw(NonCrewLootTable())
}
