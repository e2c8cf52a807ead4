package constants

// Console account roles, in increasing privilege order. Viewers can read
// rosters, operators can additionally generate rosters and move seats,
// admins can additionally manage users and read the audit trail.
const (
	RoleViewer   = "viewer"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// ValidRole reports whether s is a known role name.
func ValidRole(s string) bool {
	return s == RoleViewer || s == RoleOperator || s == RoleAdmin
}
