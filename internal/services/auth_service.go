package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"flightops/frms/internal/auth"
	"flightops/frms/internal/common"
	"flightops/frms/internal/constants"
	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/models/dtos"
	gormModels "flightops/frms/internal/models/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("email and password required")
)

// AuthService owns console accounts and their Redis-backed sessions.
type AuthService struct {
	users    *repositories.UserRepository
	sessions *common.SessionService
	audit    AuditSink
}

func NewAuthService(users *repositories.UserRepository, sessions *common.SessionService, audit AuditSink) *AuthService {
	return &AuthService{users: users, sessions: sessions, audit: audit}
}

// Register creates a viewer account. Roles are only raised afterwards by
// an admin.
func (svc *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	if _, err := svc.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := gormModels.User{Email: email, PasswordHash: string(hash), Role: constants.RoleViewer}
	if err := svc.users.Create(ctx, &user); err != nil {
		return nil, ErrEmailTaken
	}

	if svc.audit != nil {
		_ = svc.audit.Insert(ctx, &email, "INFO", "UserRegistered", email)
	}
	return &dtos.UserInfo{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Login verifies credentials, opens a session and returns a bearer token
// bound to it.
func (svc *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		if svc.audit != nil {
			_ = svc.audit.Insert(ctx, nil, "WARN", "LoginFailed", email)
		}
		return nil, ErrInvalidCredentials
	}

	sessionID, err := svc.sessions.CreateSession(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	token, err := auth.SignToken(user.ID, user.Email, user.Role, sessionID)
	if err != nil {
		return nil, err
	}

	if svc.audit != nil {
		_ = svc.audit.Insert(ctx, &user.Email, "INFO", "Login", user.Email)
	}
	return &dtos.LoginResponse{Token: token, SessionID: sessionID, Email: user.Email, Role: user.Role}, nil
}

// Logout revokes the caller's session; the bearer token dies with it.
func (svc *AuthService) Logout(ctx context.Context, claims auth.UserClaims) error {
	if claims == nil {
		return nil
	}
	if svc.audit != nil {
		email := claims.Email()
		_ = svc.audit.Insert(ctx, &email, "INFO", "Logout", email)
	}
	return svc.sessions.DeleteSession(ctx, claims.SessionID())
}
