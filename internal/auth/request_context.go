package auth

import "context"

type contextKey string

var userClaimsKey contextKey = "user_claims"

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	if claims, ok := ctx.Value(userClaimsKey).(UserClaims); ok {
		return claims
	}
	return nil
}

// CallerEmail returns the authenticated caller's email, or nil when the
// request is unauthenticated. Shaped for the audit log's nullable column.
func CallerEmail(ctx context.Context) *string {
	claims := GetUserClaims(ctx)
	if claims == nil {
		return nil
	}
	email := claims.Email()
	return &email
}
