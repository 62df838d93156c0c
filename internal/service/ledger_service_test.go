package service

import (
	"context"
	"testing"

	"pirate_economy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAddCoinsRejectsZero(t *testing.T) {
	svc := NewLedgerService(nil)

	_, err := svc.AddCoins(context.Background(), 1, 0, domain.TxAdminGrant, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestTransferAmountValidation(t *testing.T) {
	svc := NewLedgerService(nil)

	for _, amount := range []int64{0, -50} {
		err := svc.Transfer(context.Background(), 1, 2, amount, "gift", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

func TestCloneMeta(t *testing.T) {
	orig := map[string]any{"a": 1}
	clone := cloneMeta(orig)
	clone["b"] = 2

	assert.Len(t, orig, 1)
	assert.Len(t, clone, 2)
	assert.Equal(t, 1, clone["a"])
}
