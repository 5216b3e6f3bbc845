package domain

// Role is an admin level in the management hierarchy.
// Each level manages levels at or below its own rank.
type Role string

const (
	RoleSociety   Role = "society"
	RoleCommunity Role = "community"
	RoleCity      Role = "city"
	RoleCountry   Role = "country"
	RoleGlobal    Role = "global"
)

// roleRanks maps each role to its position in the hierarchy.
// society < community < city < country < global
var roleRanks = map[Role]int{
	RoleSociety:   0,
	RoleCommunity: 1,
	RoleCity:      2,
	RoleCountry:   3,
	RoleGlobal:    4,
}

// Rank returns the role's position in the hierarchy, or -1 for unknown roles.
func (r Role) Rank() int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// Valid reports whether r is one of the five hierarchy levels.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// CanManage reports whether r may view or manage an admin holding target.
// Unknown roles manage nothing and are managed by nobody.
func (r Role) CanManage(target Role) bool {
	if !r.Valid() || !target.Valid() {
		return false
	}
	return r.Rank() >= target.Rank()
}

// Roles lists all hierarchy levels in ascending rank order.
func Roles() []Role {
	return []Role{RoleSociety, RoleCommunity, RoleCity, RoleCountry, RoleGlobal}
}
