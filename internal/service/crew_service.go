package service

import (
	"context"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
)

// CrewService manages the per-community crew role registry the adapter uses
// to resolve membership. Resolution itself is pure (domain.ResolveCrew).
type CrewService struct {
	store *store.Store
}

func NewCrewService(st *store.Store) *CrewService {
	return &CrewService{store: st}
}

// AddRole registers a crew role with its command structure.
func (s *CrewService) AddRole(ctx context.Context, role domain.CrewRole) error {
	return s.store.Update(ctx, func(tx pgx.Tx) error {
		return repository.InsertCrewRole(ctx, tx, role)
	})
}

// RemoveRole unregisters a crew role.
func (s *CrewService) RemoveRole(ctx context.Context, communityID, roleID int64) error {
	return s.store.Update(ctx, func(tx pgx.Tx) error {
		return repository.DeleteCrewRole(ctx, tx, communityID, roleID)
	})
}

// ListRoles returns a community's configured crew roles.
func (s *CrewService) ListRoles(ctx context.Context, communityID int64) ([]domain.CrewRole, error) {
	var roles []domain.CrewRole
	err := s.store.View(ctx, func(tx pgx.Tx) error {
		var err error
		roles, err = repository.ListCrewRoles(ctx, tx, communityID)
		return err
	})
	return roles, err
}

// Resolve maps a user's role set to a crew membership using the community's
// registry. Lowest role id wins when several registered roles match.
func (s *CrewService) Resolve(ctx context.Context, communityID int64, userRoles []int64) (domain.CrewMembership, error) {
	roles, err := s.ListRoles(ctx, communityID)
	if err != nil {
		return domain.CrewMembership{}, err
	}
	if match := domain.ResolveCrew(userRoles, roles); match != nil {
		return domain.CrewMembership{IsMember: true, CrewName: match.RoleName}, nil
	}
	return domain.CrewMembership{}, nil
}
