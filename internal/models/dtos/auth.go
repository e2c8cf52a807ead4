package dtos

// LoginResponse carries the signed bearer token and the session id the
// token is bound to. Logging out deletes the session, which invalidates
// the token before its JWT expiry.
type LoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
