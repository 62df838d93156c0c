package game

import (
	"testing"

	"pirate_economy/internal/domain"
)

func TestWeaponBonus(t *testing.T) {
	cases := []struct {
		weapon string
		want   int
	}{
		{"", 0},
		{"Rubber Chicken", 0},
		{domain.ItemPirateHook, 5},
		{domain.ItemCutlass, 10},
		{domain.ItemFlintlockPistol, 15},
		{domain.ItemFlintlockMusket, 20},
		{domain.ItemCannon, 25},
		{domain.ItemGrenade, 30},
	}

	for _, tc := range cases {
		if got := WeaponBonus(tc.weapon); got != tc.want {
			t.Fatalf("WeaponBonus(%q) = %d; want %d", tc.weapon, got, tc.want)
		}
	}
}

func TestStealSuccessChance(t *testing.T) {
	cases := []struct {
		name         string
		thiefInCrew  bool
		victimInCrew bool
		weapon       string
		want         int
	}{
		{"unarmed", false, false, "", 40},
		{"thief in crew", true, false, "", 50},
		{"victim in crew", false, true, "", 30},
		{"both in crews", true, true, "", 40},
		{"hook", false, false, domain.ItemPirateHook, 45},
		{"cutlass against crew victim", false, true, domain.ItemCutlass, 40},
		{"grenade capped", false, false, domain.ItemGrenade, 60},
		{"grenade from crew also capped", true, false, domain.ItemGrenade, 60},
		{"musket just at cap", false, false, domain.ItemFlintlockMusket, 60},
		{"cannon near cap", false, true, domain.ItemCannon, 55},
	}

	for _, tc := range cases {
		got := StealSuccessChance(tc.thiefInCrew, tc.victimInCrew, tc.weapon)
		if got != tc.want {
			t.Fatalf("%s: chance = %d; want %d", tc.name, got, tc.want)
		}
		if got < MinStealChance || got > MaxStealChance {
			t.Fatalf("%s: chance %d outside [%d,%d]", tc.name, got, MinStealChance, MaxStealChance)
		}
	}
}

func TestStolenAmount(t *testing.T) {
	// small balance: the minimum clamp can exceed what the victim holds,
	// so the amount re-clamps to the balance itself
	for i := 0; i < 200; i++ {
		if got := StolenAmount(10); got != 10 {
			t.Fatalf("StolenAmount(10) = %d; want 10", got)
		}
	}

	for i := 0; i < 1000; i++ {
		got := StolenAmount(1000)
		if got < MinStealAmount || got > 250 {
			t.Fatalf("StolenAmount(1000) = %d; want within [10,250]", got)
		}
	}

	// huge balance hits the absolute cap
	for i := 0; i < 1000; i++ {
		got := StolenAmount(1_000_000)
		if got < MinStealAmount || got > MaxStealAmount {
			t.Fatalf("StolenAmount(1000000) = %d; want within [%d,%d]", got, MinStealAmount, MaxStealAmount)
		}
	}
}

func TestStealPenalty(t *testing.T) {
	// broke thief pays nothing
	for _, balance := range []int64{0, 1, 4} {
		if got := StealPenalty(balance); got != 0 {
			t.Fatalf("StealPenalty(%d) = %d; want 0", balance, got)
		}
	}

	// penalty never exceeds the thief's balance or the fixed range
	for i := 0; i < 1000; i++ {
		got := StealPenalty(8)
		if got < StealPenaltyMin || got > 8 {
			t.Fatalf("StealPenalty(8) = %d; want within [5,8]", got)
		}
	}
	for i := 0; i < 1000; i++ {
		got := StealPenalty(10_000)
		if got < StealPenaltyMin || got > StealPenaltyMax {
			t.Fatalf("StealPenalty(10000) = %d; want within [%d,%d]", got, StealPenaltyMin, StealPenaltyMax)
		}
	}
}
