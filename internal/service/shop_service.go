package service

import (
	"context"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/metrics"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
)

// MaxBuyQuantity caps one purchase.
const MaxBuyQuantity = 50

// ShopService handles catalog reads and the buy/sell transactions. Shop
// movements are earning-neutral: buying and selling redistribute coins
// between the user and the shop, they do not earn.
type ShopService struct {
	store *store.Store
}

func NewShopService(st *store.Store) *ShopService {
	return &ShopService{store: st}
}

// Catalog lists the shop; crew-gated items only for crew members.
func (s *ShopService) Catalog(ctx context.Context, crew domain.CrewMembership) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		items, err = repository.ListItems(ctx, tx, crew.IsMember)
		return err
	})
	return items, err
}

// PurchaseResult reports a completed buy.
type PurchaseResult struct {
	Item       domain.ShopItem `json:"item"`
	Quantity   int             `json:"quantity"`
	TotalCost  int64           `json:"total_cost"`
	NewBalance int64           `json:"balance"`
}

// Buy debits price*qty and credits qty units, all-or-nothing.
func (s *ShopService) Buy(ctx context.Context, userID int64, itemName string, qty int, crew domain.CrewMembership) (*PurchaseResult, error) {
	if qty < 1 || qty > MaxBuyQuantity {
		return nil, domain.ErrInvalidQuantity
	}

	var res PurchaseResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		item, err := repository.GetItem(ctx, tx, itemName)
		if err != nil {
			return err
		}
		if item.CrewRequired && !crew.IsMember {
			return domain.ErrCrewRequired
		}

		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}

		totalCost := item.Price * int64(qty)
		balance, err := repository.AdjustBalance(ctx, tx, userID, -totalCost)
		if err != nil {
			return err
		}
		if err := repository.AddItem(ctx, tx, userID, item.Name, qty); err != nil {
			return err
		}
		if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
			UserID: userID,
			Type:   domain.TxBuy,
			Amount: -totalCost,
			Meta:   map[string]any{"item": item.Name, "quantity": qty},
		}); err != nil {
			return err
		}

		res = PurchaseResult{Item: *item, Quantity: qty, TotalCost: totalCost, NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ActionsTotal.WithLabelValues("buy", "ok").Inc()
	return &res, nil
}

// SaleResult reports a completed sell.
type SaleResult struct {
	Item       string `json:"item"`
	Quantity   int    `json:"quantity"`
	Proceeds   int64  `json:"proceeds"`
	UnitPrice  int64  `json:"unit_price"`
	NewBalance int64  `json:"balance"`
}

// Sell pays half the list price per unit, flooring once on the unit price.
func (s *ShopService) Sell(ctx context.Context, userID int64, itemName string, qty int) (*SaleResult, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	var res SaleResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		item, err := repository.GetItem(ctx, tx, itemName)
		if err != nil {
			return err
		}

		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := repository.RemoveItem(ctx, tx, userID, item.Name, qty); err != nil {
			return err
		}

		unit := domain.SellPrice(item.Price)
		proceeds := unit * int64(qty)
		balance, err := repository.AdjustBalance(ctx, tx, userID, proceeds)
		if err != nil {
			return err
		}
		if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
			UserID: userID,
			Type:   domain.TxSell,
			Amount: proceeds,
			Meta:   map[string]any{"item": item.Name, "quantity": qty},
		}); err != nil {
			return err
		}

		res = SaleResult{Item: item.Name, Quantity: qty, Proceeds: proceeds, UnitPrice: unit, NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ActionsTotal.WithLabelValues("sell", "ok").Inc()
	return &res, nil
}
