package domain

import "testing"

func TestResolveCrew(t *testing.T) {
	configured := []CrewRole{
		{CommunityID: 1, RoleID: 30, RoleName: "Black Pearl"},
		{CommunityID: 1, RoleID: 10, RoleName: "Flying Dutchman"},
		{CommunityID: 1, RoleID: 20, RoleName: "Queen Anne's Revenge"},
	}

	cases := []struct {
		name      string
		userRoles []int64
		wantRole  int64
		wantNil   bool
	}{
		{"no roles", nil, 0, true},
		{"no match", []int64{5, 99}, 0, true},
		{"single match", []int64{20}, 20, false},
		{"multiple matches pick lowest id", []int64{30, 10, 20}, 10, false},
		{"order independent", []int64{20, 30}, 20, false},
	}

	for _, tc := range cases {
		got := ResolveCrew(tc.userRoles, configured)
		if tc.wantNil {
			if got != nil {
				t.Fatalf("%s: got %+v; want nil", tc.name, got)
			}
			continue
		}
		if got == nil || got.RoleID != tc.wantRole {
			t.Fatalf("%s: got %+v; want role %d", tc.name, got, tc.wantRole)
		}
	}
}
