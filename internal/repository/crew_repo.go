package repository

import (
	"context"

	"pirate_economy/internal/domain"

	"github.com/jackc/pgx/v5"
)

// InsertCrewRole registers a role as a crew for a community. Returns
// ErrCrewRoleExists if the (community, role) pair is already registered.
func InsertCrewRole(ctx context.Context, tx pgx.Tx, role domain.CrewRole) error {
	tag, err := tx.Exec(ctx,
		`INSERT INTO crew_roles (community_id, role_id, role_name, captain_role_id, first_mate_role_id)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (community_id, role_id) DO NOTHING`,
		role.CommunityID, role.RoleID, role.RoleName, role.CaptainRoleID, role.FirstMateRoleID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCrewRoleExists
	}
	return nil
}

// DeleteCrewRole removes a crew registration. Returns ErrCrewRoleNotFound if
// it was never registered.
func DeleteCrewRole(ctx context.Context, tx pgx.Tx, communityID, roleID int64) error {
	tag, err := tx.Exec(ctx,
		`DELETE FROM crew_roles WHERE community_id = $1 AND role_id = $2`,
		communityID, roleID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCrewRoleNotFound
	}
	return nil
}

// ListCrewRoles returns a community's crew roles, role id ascending.
func ListCrewRoles(ctx context.Context, tx pgx.Tx, communityID int64) ([]domain.CrewRole, error) {
	rows, err := tx.Query(ctx,
		`SELECT community_id, role_id, role_name, captain_role_id, first_mate_role_id
		 FROM crew_roles WHERE community_id = $1
		 ORDER BY role_id`,
		communityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.CrewRole
	for rows.Next() {
		var r domain.CrewRole
		if err := rows.Scan(&r.CommunityID, &r.RoleID, &r.RoleName, &r.CaptainRoleID, &r.FirstMateRoleID); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}
