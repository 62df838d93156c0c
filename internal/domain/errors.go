package domain

import (
	"errors"
	"fmt"
)

// Engine failure classes. All validation happens before any mutation, so a
// returned sentinel means nothing changed. Any other error bubbling out of
// the store is a storage failure that aborted the whole operation.
var (
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrSelfTarget           = errors.New("cannot target yourself")
	ErrInvalidTarget        = errors.New("invalid target")
	ErrVictimTooPoor        = errors.New("victim below minimum balance")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrCooldownActive       = errors.New("cooldown active")
	ErrAlreadyActive        = errors.New("consumable already active")
	ErrUnknownItem          = errors.New("unknown item")
	ErrNotConsumable        = errors.New("item is not a consumable")
	ErrNotWeapon            = errors.New("item is not a weapon")
	ErrCrewRequired         = errors.New("crew membership required")
	ErrCrewRoleExists       = errors.New("crew role already registered")
	ErrCrewRoleNotFound     = errors.New("crew role not found")
)

// CooldownActiveError carries the remaining wait for a rate-limited action.
// errors.Is(err, ErrCooldownActive) matches it.
type CooldownActiveError struct {
	Action    ActionKind
	Remaining int64
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("%s on cooldown for another %ds", e.Action, e.Remaining)
}

func (e *CooldownActiveError) Is(target error) bool {
	return target == ErrCooldownActive
}
