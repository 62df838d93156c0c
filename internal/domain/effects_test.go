package domain

import (
	"errors"
	"testing"
)

func TestActivate(t *testing.T) {
	s, err := EffectState{}.Activate(ItemCompass)
	if err != nil {
		t.Fatalf("activate compass: %v", err)
	}
	if !s.CompassActive || s.CompassDurability != ConsumableDurability {
		t.Fatalf("after activate: %+v", s)
	}

	if _, err := s.Activate(ItemCompass); !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("second activate = %v; want ErrAlreadyActive", err)
	}

	// other slot unaffected
	s, err = s.Activate(ItemSpyglass)
	if err != nil {
		t.Fatalf("activate spyglass: %v", err)
	}
	if !s.SpyglassActive || s.SpyglassDurability != ConsumableDurability {
		t.Fatalf("after spyglass activate: %+v", s)
	}
	if !s.CompassActive || s.CompassDurability != ConsumableDurability {
		t.Fatalf("compass slot changed: %+v", s)
	}
}

func TestApplyDurabilityTick(t *testing.T) {
	s, _ := EffectState{}.Activate(ItemCompass)

	for i := 0; i < ConsumableDurability-1; i++ {
		s = ApplyDurabilityTick(s)
		if !s.CompassActive {
			t.Fatalf("deactivated after %d ticks", i+1)
		}
		if s.CompassDurability != ConsumableDurability-i-1 {
			t.Fatalf("tick %d: durability %d", i+1, s.CompassDurability)
		}
	}

	// the last use deactivates and zeroes in the same transition
	s = ApplyDurabilityTick(s)
	if s.CompassActive || s.CompassDurability != 0 {
		t.Fatalf("after final tick: %+v", s)
	}

	// ticking an inactive slot is a no-op
	s = ApplyDurabilityTick(s)
	if s.CompassActive || s.CompassDurability != 0 {
		t.Fatalf("tick on inactive slot changed state: %+v", s)
	}
}

func TestApplyDurabilityTickBothSlots(t *testing.T) {
	s, _ := EffectState{}.Activate(ItemCompass)
	s, _ = s.Activate(ItemSpyglass)
	s.SpyglassDurability = 1

	s = ApplyDurabilityTick(s)
	if !s.CompassActive || s.CompassDurability != ConsumableDurability-1 {
		t.Fatalf("compass: %+v", s)
	}
	if s.SpyglassActive || s.SpyglassDurability != 0 {
		t.Fatalf("spyglass should have expired: %+v", s)
	}
}

func TestActiveSlotInvariant(t *testing.T) {
	// active implies durability > 0, through a full lifecycle
	s, _ := EffectState{}.Activate(ItemSpyglass)
	for i := 0; i < ConsumableDurability+3; i++ {
		if s.SpyglassActive && s.SpyglassDurability <= 0 {
			t.Fatalf("active with durability %d at tick %d", s.SpyglassDurability, i)
		}
		if s.SpyglassDurability < 0 {
			t.Fatalf("negative durability %d at tick %d", s.SpyglassDurability, i)
		}
		s = ApplyDurabilityTick(s)
	}
}
