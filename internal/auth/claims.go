package auth

import (
	"flightops/frms/internal/constants"
)

// UserClaims is what the role middleware and handlers see about the
// authenticated caller, regardless of how the request authenticated.
type UserClaims interface {
	UserID() int64
	Email() string
	Role() string
	SessionID() string
}

// TokenClaims backs UserClaims for JWT bearer requests.
type TokenClaims struct {
	UserIDValue    int64
	EmailValue     string
	RoleValue      string
	SessionIDValue string
}

func (c *TokenClaims) UserID() int64     { return c.UserIDValue }
func (c *TokenClaims) Email() string     { return c.EmailValue }
func (c *TokenClaims) Role() string      { return c.RoleValue }
func (c *TokenClaims) SessionID() string { return c.SessionIDValue }

// CanEditSeats reports whether the role may generate rosters and move
// seats. Viewers are read-only.
func CanEditSeats(claims UserClaims) bool {
	if claims == nil {
		return false
	}
	role := claims.Role()
	return role == constants.RoleOperator || role == constants.RoleAdmin
}
