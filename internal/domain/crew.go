package domain

// CrewRole maps a chat-platform role to a crew, per community. The captain
// and first mate roles describe the crew's command structure and are kept for
// the adapter's rendering; the engine only cares about membership.
type CrewRole struct {
	CommunityID     int64  `json:"community_id"`
	RoleID          int64  `json:"role_id"`
	RoleName        string `json:"role_name"`
	CaptainRoleID   int64  `json:"captain_role_id"`
	FirstMateRoleID int64  `json:"first_mate_role_id"`
}

// CrewMembership is the pre-resolved crew identity the adapter passes into
// engine operations.
type CrewMembership struct {
	IsMember bool   `json:"is_member"`
	CrewName string `json:"crew_name,omitempty"`
}

// ResolveCrew returns the configured crew role matching any of the user's
// roles, or nil. When several configured roles match, the lowest role id wins
// so the result does not depend on the order of either slice.
func ResolveCrew(userRoles []int64, configured []CrewRole) *CrewRole {
	var best *CrewRole
	for i := range configured {
		role := &configured[i]
		for _, id := range userRoles {
			if id != role.RoleID {
				continue
			}
			if best == nil || role.RoleID < best.RoleID {
				best = role
			}
		}
	}
	return best
}
