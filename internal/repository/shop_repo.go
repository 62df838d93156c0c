package repository

import (
	"context"
	"errors"

	"pirate_economy/internal/domain"

	"github.com/jackc/pgx/v5"
)

// SeedCatalog inserts the fixed shop items, skipping ones already present.
// The catalog is immutable after startup.
func SeedCatalog(ctx context.Context, tx pgx.Tx) error {
	for _, item := range domain.Catalog() {
		_, err := tx.Exec(ctx,
			`INSERT INTO shop_items (item_name, item_kind, price, crew_required, description)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (item_name) DO NOTHING`,
			item.Name, string(item.Kind), item.Price, item.CrewRequired, item.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetItem looks up one catalog entry by exact name.
func GetItem(ctx context.Context, tx pgx.Tx, name string) (*domain.ShopItem, error) {
	item := &domain.ShopItem{}
	var kind string
	err := tx.QueryRow(ctx,
		`SELECT item_name, item_kind, price, crew_required, description
		 FROM shop_items WHERE item_name = $1`,
		name,
	).Scan(&item.Name, &kind, &item.Price, &item.CrewRequired, &item.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnknownItem
	}
	if err != nil {
		return nil, err
	}
	item.Kind = domain.ItemKind(kind)
	return item, nil
}

// ListItems returns the catalog; crew-gated items are included only when
// includeCrew is set.
func ListItems(ctx context.Context, tx pgx.Tx, includeCrew bool) ([]domain.ShopItem, error) {
	rows, err := tx.Query(ctx,
		`SELECT item_name, item_kind, price, crew_required, description
		 FROM shop_items
		 WHERE crew_required = false OR $1
		 ORDER BY crew_required, item_kind, price`,
		includeCrew,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ShopItem
	for rows.Next() {
		var item domain.ShopItem
		var kind string
		if err := rows.Scan(&item.Name, &kind, &item.Price, &item.CrewRequired, &item.Description); err != nil {
			return nil, err
		}
		item.Kind = domain.ItemKind(kind)
		items = append(items, item)
	}
	return items, rows.Err()
}
