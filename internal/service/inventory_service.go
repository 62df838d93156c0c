package service

import (
	"context"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/game"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
)

// InventoryService handles inventory views and the use/equip item state
// machine.
type InventoryService struct {
	store *store.Store
	gate  CooldownGate
}

func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st, gate: NewCooldownGate()}
}

// InventoryView is a user's stacks plus current effect state.
type InventoryView struct {
	Items   []domain.InventoryEntry `json:"items"`
	Effects domain.EffectState      `json:"effects"`
}

// Inventory returns a consistent snapshot of items and effects.
func (s *InventoryService) Inventory(ctx context.Context, userID int64) (*InventoryView, error) {
	var view InventoryView
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		view.Items, err = repository.GetInventory(ctx, tx, userID)
		if err != nil {
			return err
		}
		view.Effects, err = repository.GetEffects(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UseResult reports what using a consumable did.
type UseResult struct {
	Item            string             `json:"item"`
	Activated       bool               `json:"activated"`
	CooldownReduced int64              `json:"cooldown_reduced,omitempty"`
	AutoApplied     bool               `json:"auto_applied,omitempty"`
	Effects         domain.EffectState `json:"effects"`
}

// UseItem activates a consumable. Compass and Spyglass go Inactive ->
// Active(10), consuming one unit, and fail with ErrAlreadyActive (no
// mutation) while running. Rum consumes one unit and rewinds the search
// cooldown. Other consumables apply automatically during search, so using
// them by hand changes nothing.
func (s *InventoryService) UseItem(ctx context.Context, userID int64, itemName string) (*UseResult, error) {
	var res UseResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		item, err := repository.GetItem(ctx, tx, itemName)
		if err != nil {
			return err
		}
		if item.Kind != domain.ItemConsumable {
			return domain.ErrNotConsumable
		}

		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		res.Item = item.Name

		switch item.Name {
		case domain.ItemCompass, domain.ItemSpyglass:
			effects, err := repository.GetEffects(ctx, tx, userID)
			if err != nil {
				return err
			}
			activated, err := effects.Activate(item.Name)
			if err != nil {
				return err
			}
			if err := repository.RemoveItem(ctx, tx, userID, item.Name, 1); err != nil {
				return err
			}
			if err := repository.SetEffects(ctx, tx, userID, activated); err != nil {
				return err
			}
			res.Activated = true
			res.Effects = activated
		case domain.ItemRum:
			if err := repository.RemoveItem(ctx, tx, userID, item.Name, 1); err != nil {
				return err
			}
			if err := s.gate.Rewind(ctx, tx, userID, domain.ActionSearch, domain.RumCooldownRewind); err != nil {
				return err
			}
			res.CooldownReduced = domain.RumCooldownRewind
			res.Effects, err = repository.GetEffects(ctx, tx, userID)
			return err
		default:
			// Ship Maintenance, Treasure Map, Barrel: consumed by search itself.
			res.AutoApplied = true
			res.Effects, err = repository.GetEffects(ctx, tx, userID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// EquipResult reports an equipped weapon and its steal bonus.
type EquipResult struct {
	Weapon     string             `json:"weapon"`
	StealBonus int                `json:"steal_bonus"`
	Effects    domain.EffectState `json:"effects"`
}

// Equip sets the weapon register. The weapon must be held (quantity > 0) but
// is not consumed; a previously equipped weapon is overwritten
// unconditionally.
func (s *InventoryService) Equip(ctx context.Context, userID int64, weaponName string) (*EquipResult, error) {
	var res EquipResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		item, err := repository.GetItem(ctx, tx, weaponName)
		if err != nil {
			return err
		}
		if item.Kind != domain.ItemWeapon {
			return domain.ErrNotWeapon
		}

		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		qty, err := repository.GetQuantity(ctx, tx, userID, item.Name)
		if err != nil {
			return err
		}
		if qty < 1 {
			return domain.ErrInsufficientQuantity
		}

		effects, err := repository.GetEffects(ctx, tx, userID)
		if err != nil {
			return err
		}
		effects.EquippedWeapon = item.Name
		if err := repository.SetEffects(ctx, tx, userID, effects); err != nil {
			return err
		}

		res = EquipResult{
			Weapon:     item.Name,
			StealBonus: game.WeaponBonus(item.Name),
			Effects:    effects,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
