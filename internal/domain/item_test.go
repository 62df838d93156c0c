package domain

import "testing"

func TestSellPrice(t *testing.T) {
	cases := []struct {
		price int64
		want  int64
	}{
		{100, 50},
		{350, 175},
		{50, 25},
		{2500, 1250},
		{1, 0},
	}

	for _, tc := range cases {
		if got := SellPrice(tc.price); got != tc.want {
			t.Fatalf("SellPrice(%d) = %d; want %d", tc.price, got, tc.want)
		}
	}
}

func TestCatalog(t *testing.T) {
	items := Catalog()
	if len(items) != 12 {
		t.Fatalf("catalog has %d items; want 12", len(items))
	}

	byName := make(map[string]ShopItem, len(items))
	for _, item := range items {
		if item.Price <= 0 {
			t.Fatalf("%s has price %d", item.Name, item.Price)
		}
		if item.Kind != ItemConsumable && item.Kind != ItemWeapon {
			t.Fatalf("%s has kind %q", item.Name, item.Kind)
		}
		byName[item.Name] = item
	}
	if len(byName) != 12 {
		t.Fatalf("duplicate item names in catalog")
	}

	crewOnly := []string{ItemShipMaintenance, ItemTreasureMap, ItemBarrel, ItemFlintlockMusket, ItemCannon, ItemGrenade}
	for _, name := range crewOnly {
		if !byName[name].CrewRequired {
			t.Fatalf("%s should be crew-gated", name)
		}
	}
	open := []string{ItemCompass, ItemSpyglass, ItemRum, ItemPirateHook, ItemCutlass, ItemFlintlockPistol}
	for _, name := range open {
		if byName[name].CrewRequired {
			t.Fatalf("%s should not be crew-gated", name)
		}
	}
}
