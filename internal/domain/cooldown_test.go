package domain

import "testing"

func TestThreshold(t *testing.T) {
	cases := []struct {
		kind ActionKind
		want int64
	}{
		{ActionPassiveEarn, 60},
		{ActionSearch, 300},
		{ActionSteal, 600},
		{ActionDaily, 86400},
		{ActionKind("unknown"), 0},
	}

	for _, tc := range cases {
		if got := Threshold(tc.kind); got != tc.want {
			t.Fatalf("Threshold(%s) = %d; want %d", tc.kind, got, tc.want)
		}
	}
}

func TestCanTrigger(t *testing.T) {
	cases := []struct {
		name string
		last int64
		now  int64
		kind ActionKind
		want bool
	}{
		{"never triggered", 0, 1000, ActionSearch, true},
		{"exactly at threshold", 1000, 1300, ActionSearch, true},
		{"one second early", 1000, 1299, ActionSearch, false},
		{"one second late", 1000, 1301, ActionSearch, true},
		{"steal early", 1000, 1500, ActionSteal, false},
		{"daily boundary", 1000, 87400, ActionDaily, true},
	}

	for _, tc := range cases {
		if got := CanTrigger(tc.last, tc.now, tc.kind); got != tc.want {
			t.Fatalf("%s: CanTrigger(%d,%d,%s) = %v; want %v", tc.name, tc.last, tc.now, tc.kind, got, tc.want)
		}
	}
}

func TestCooldownRemaining(t *testing.T) {
	cases := []struct {
		last int64
		now  int64
		kind ActionKind
		want int64
	}{
		{1000, 1000, ActionSearch, 300},
		{1000, 1100, ActionSearch, 200},
		{1000, 1300, ActionSearch, 0},
		{1000, 5000, ActionSearch, 0},
	}

	for _, tc := range cases {
		if got := CooldownRemaining(tc.last, tc.now, tc.kind); got != tc.want {
			t.Fatalf("CooldownRemaining(%d,%d,%s) = %d; want %d", tc.last, tc.now, tc.kind, got, tc.want)
		}
	}
}
