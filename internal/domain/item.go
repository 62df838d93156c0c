package domain

// ItemKind classifies a shop item.
type ItemKind string

const (
	ItemConsumable ItemKind = "consumable"
	ItemWeapon     ItemKind = "weapon"
)

// Item names as seeded in the catalog.
const (
	ItemCompass         = "Compass"
	ItemSpyglass        = "Spyglass"
	ItemRum             = "Rum"
	ItemPirateHook      = "Pirate Hook"
	ItemCutlass         = "Cutlass"
	ItemFlintlockPistol = "Flintlock Pistol"
	ItemShipMaintenance = "Ship Maintenance"
	ItemTreasureMap     = "Treasure Map"
	ItemBarrel          = "Barrel"
	ItemFlintlockMusket = "Flintlock Musket"
	ItemCannon          = "Cannon"
	ItemGrenade         = "Grenade"
)

// ShopItem is a static catalog entry, seeded once and immutable at runtime.
type ShopItem struct {
	Name         string   `json:"name"`
	Kind         ItemKind `json:"kind"`
	Price        int64    `json:"price"`
	CrewRequired bool     `json:"crew_required"`
	Description  string   `json:"description"`
}

// InventoryEntry is one (user, item) stack. Zero-quantity stacks are pruned.
type InventoryEntry struct {
	UserID   int64  `json:"user_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// SellPrice is what the shop pays back per unit: half the list price,
// rounded down.
func SellPrice(listPrice int64) int64 {
	return listPrice / 2
}

// Catalog returns the fixed 12-item shop seed.
func Catalog() []ShopItem {
	return []ShopItem{
		{Name: ItemCompass, Kind: ItemConsumable, Price: 100, Description: "Increases odds of finding money, breaks over time"},
		{Name: ItemSpyglass, Kind: ItemConsumable, Price: 150, Description: "Increases odds of finding money, breaks over time"},
		{Name: ItemRum, Kind: ItemConsumable, Price: 50, Description: "Decreases cooldown for search command"},
		{Name: ItemPirateHook, Kind: ItemWeapon, Price: 200, Description: "Basic weapon for stealing"},
		{Name: ItemCutlass, Kind: ItemWeapon, Price: 350, Description: "Improved weapon for stealing"},
		{Name: ItemFlintlockPistol, Kind: ItemWeapon, Price: 500, Description: "Advanced weapon for stealing"},
		{Name: ItemShipMaintenance, Kind: ItemConsumable, Price: 800, CrewRequired: true, Description: "Greatly increases chances of finding money"},
		{Name: ItemTreasureMap, Kind: ItemConsumable, Price: 1200, CrewRequired: true, Description: "Increases odds and amount of money found"},
		{Name: ItemBarrel, Kind: ItemConsumable, Price: 400, CrewRequired: true, Description: "Increases money inventory capacity"},
		{Name: ItemFlintlockMusket, Kind: ItemWeapon, Price: 1000, CrewRequired: true, Description: "Crew weapon for stealing"},
		{Name: ItemCannon, Kind: ItemWeapon, Price: 1800, CrewRequired: true, Description: "Powerful crew weapon for stealing"},
		{Name: ItemGrenade, Kind: ItemWeapon, Price: 2500, CrewRequired: true, Description: "Elite crew weapon for stealing"},
	}
}
