package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minhct267/Tech-Lab-Management/internal/config"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
	"github.com/minhct267/Tech-Lab-Management/internal/security"
)

// ErrInvalidCredentials is deliberately vague: the caller never learns
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies credentials and manages sessions. The engine core only
// needs "who is asking"; everything here is host plumbing around that.
type AuthService struct {
	users    repository.Repository[models.User]
	sessions *repository.SessionRepository
	cfg      *config.Config
}

func NewAuthService(users repository.Repository[models.User], sessions *repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, sessions: sessions, cfg: cfg}
}

// Login verifies the password against the stored salt+hash and issues a JWT
// backed by a Redis session record.
func (s *AuthService) Login(ctx context.Context, username, password, userAgent string) (string, *models.User, error) {
	found, err := s.users.Query(ctx, func(u *models.User) bool { return u.Username == username })
	if err != nil {
		return "", nil, fmt.Errorf("error looking up user: %w", err)
	}
	if len(found) == 0 {
		return "", nil, ErrInvalidCredentials
	}
	user := found[0]
	if !security.Verify(password, user.PasswordSalt, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	sessionID, err := security.RandomToken(16)
	if err != nil {
		return "", nil, fmt.Errorf("error generating session id: %w", err)
	}

	now := int(time.Now().Unix())
	session := &models.Session{
		SessionID:      sessionID,
		UserID:         user.ID,
		Username:       user.Username,
		Role:           user.Role,
		IsValid:        true,
		CreatedAt:      now,
		LastActivityAt: now,
		UserAgent:      userAgent,
	}
	ttl := time.Duration(s.cfg.JWTExpiredHours) * time.Hour
	if err := s.sessions.Save(ctx, session, ttl); err != nil {
		return "", nil, fmt.Errorf("error caching session: %w", err)
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    s.cfg.ServiceName,
		},
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("error generating token string: %w", err)
	}
	return tokenString, user, nil
}

// Logout drops the session record; the JWT is useless without it.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// ProvisionUser creates a user with derived credential material. Role is
// fixed at provisioning; there is no role-change workflow.
func (s *AuthService) ProvisionUser(ctx context.Context, name, email, username, password string, role models.UserRole, supervisorID string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	existing, err := s.users.Query(ctx, func(u *models.User) bool { return u.Username == username })
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: username %s already taken", ErrInvalidState, username)
	}

	salt, hash, err := security.CreateHash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordSalt: salt,
		PasswordHash: hash,
		Role:         role,
		SupervisorID: supervisorID,
		CreatedAt:    int(time.Now().Unix()),
	}
	return s.users.Add(ctx, user)
}

// ListUsers returns all provisioned users.
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}
