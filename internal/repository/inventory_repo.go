package repository

import (
	"context"
	"errors"

	"pirate_economy/internal/domain"

	"github.com/jackc/pgx/v5"
)

// AddItem credits qty units of an item, creating the stack if absent.
func AddItem(ctx context.Context, tx pgx.Tx, userID int64, itemName string, qty int) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO inventory (user_id, item_name, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, item_name)
		 DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity`,
		userID, itemName, qty,
	)
	return err
}

// RemoveItem is the check-then-decrement: the guard is part of the UPDATE, so
// the stack can never go negative. Emptied stacks are pruned, not kept.
func RemoveItem(ctx context.Context, tx pgx.Tx, userID int64, itemName string, qty int) error {
	var remaining int
	err := tx.QueryRow(ctx,
		`UPDATE inventory SET quantity = quantity - $1
		 WHERE user_id = $2 AND item_name = $3 AND quantity >= $1
		 RETURNING quantity`,
		qty, userID, itemName,
	).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInsufficientQuantity
	}
	if err != nil {
		return err
	}

	if remaining == 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM inventory WHERE user_id = $1 AND item_name = $2`,
			userID, itemName,
		)
	}
	return err
}

// GetQuantity returns how many units of an item a user holds.
func GetQuantity(ctx context.Context, tx pgx.Tx, userID int64, itemName string) (int, error) {
	var qty int
	err := tx.QueryRow(ctx,
		`SELECT quantity FROM inventory WHERE user_id = $1 AND item_name = $2`,
		userID, itemName,
	).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return qty, err
}

// GetInventory lists a user's stacks, item name ascending.
func GetInventory(ctx context.Context, tx pgx.Tx, userID int64) ([]domain.InventoryEntry, error) {
	rows, err := tx.Query(ctx,
		`SELECT item_name, quantity FROM inventory
		 WHERE user_id = $1 AND quantity > 0
		 ORDER BY item_name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		e := domain.InventoryEntry{UserID: userID}
		if err := rows.Scan(&e.ItemName, &e.Quantity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetInventoryMap is GetInventory keyed by item name, for modifier lookups.
func GetInventoryMap(ctx context.Context, tx pgx.Tx, userID int64) (map[string]int, error) {
	entries, err := GetInventory(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[e.ItemName] = e.Quantity
	}
	return m, nil
}
