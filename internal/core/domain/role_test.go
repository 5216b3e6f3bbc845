package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRank(t *testing.T) {
	tests := []struct {
		role Role
		want int
	}{
		{RoleSociety, 0},
		{RoleCommunity, 1},
		{RoleCity, 2},
		{RoleCountry, 3},
		{RoleGlobal, 4},
		{Role("superadmin"), -1},
		{Role(""), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Rank())
		})
	}
}

func TestRoleCanManage(t *testing.T) {
	tests := []struct {
		name    string
		manager Role
		target  Role
		want    bool
	}{
		{"global manages everyone", RoleGlobal, RoleSociety, true},
		{"global manages global", RoleGlobal, RoleGlobal, true},
		{"same rank manages itself", RoleCity, RoleCity, true},
		{"city manages community", RoleCity, RoleCommunity, true},
		{"city cannot manage global", RoleCity, RoleGlobal, false},
		{"society cannot manage community", RoleSociety, RoleCommunity, false},
		{"country cannot manage global", RoleCountry, RoleGlobal, false},
		{"unknown manager denied", Role("root"), RoleSociety, false},
		{"unknown target denied", RoleGlobal, Role("root"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.manager.CanManage(tt.target))
		})
	}
}

func TestRolesAscendingOrder(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, 5)
	for i := 1; i < len(roles); i++ {
		assert.Greater(t, roles[i].Rank(), roles[i-1].Rank())
	}
}
