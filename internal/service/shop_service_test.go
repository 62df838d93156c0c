package service

import (
	"context"
	"testing"

	"pirate_economy/internal/domain"

	"github.com/stretchr/testify/assert"
)

// Quantity validation fires before the store is touched, so a nil store is
// enough to exercise it.
func TestBuyQuantityValidation(t *testing.T) {
	svc := NewShopService(nil)
	crew := domain.CrewMembership{}

	cases := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -3},
		{"above cap", MaxBuyQuantity + 1},
	}

	for _, tc := range cases {
		_, err := svc.Buy(context.Background(), 1, domain.ItemCompass, tc.qty, crew)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, tc.name)
	}
}

func TestSellQuantityValidation(t *testing.T) {
	svc := NewShopService(nil)

	for _, qty := range []int{0, -1} {
		_, err := svc.Sell(context.Background(), 1, domain.ItemRum, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}
