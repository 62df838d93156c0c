package domain

// ConsumableDurability is the number of searches a freshly activated
// consumable survives.
const ConsumableDurability = 10

// EffectState holds a user's active consumable slots and equipped weapon.
// Invariant: an active slot always has durability > 0. The equipped weapon
// has no durability and persists until replaced ("" = none).
type EffectState struct {
	CompassActive      bool   `json:"compass_active"`
	CompassDurability  int    `json:"compass_durability"`
	SpyglassActive     bool   `json:"spyglass_active"`
	SpyglassDurability int    `json:"spyglass_durability"`
	EquippedWeapon     string `json:"equipped_weapon,omitempty"`
}

// ApplyDurabilityTick returns the state after one search has consumed a use
// from every active slot. A slot whose durability would hit 0 deactivates in
// the same transition, so durability is never observed below zero and an
// active slot never shows durability 0.
func ApplyDurabilityTick(s EffectState) EffectState {
	if s.CompassActive {
		s.CompassDurability--
		if s.CompassDurability <= 0 {
			s.CompassActive = false
			s.CompassDurability = 0
		}
	}
	if s.SpyglassActive {
		s.SpyglassDurability--
		if s.SpyglassDurability <= 0 {
			s.SpyglassActive = false
			s.SpyglassDurability = 0
		}
	}
	return s
}

// Activate turns on the named consumable slot with full durability.
// Returns ErrAlreadyActive if the slot is already running.
func (s EffectState) Activate(item string) (EffectState, error) {
	switch item {
	case ItemCompass:
		if s.CompassActive {
			return s, ErrAlreadyActive
		}
		s.CompassActive = true
		s.CompassDurability = ConsumableDurability
	case ItemSpyglass:
		if s.SpyglassActive {
			return s, ErrAlreadyActive
		}
		s.SpyglassActive = true
		s.SpyglassDurability = ConsumableDurability
	}
	return s, nil
}
