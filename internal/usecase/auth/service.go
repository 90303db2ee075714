package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
	"news-portal/pkg/config"
)

const minPasswordLength = 6

// LoginInput carries the submitted credentials. Username accepts either
// the username or the email address.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is the issued token plus the public identity fields.
type LoginResult struct {
	Token string
	Admin *entity.Admin
}

// Service provides authentication use cases.
type Service struct {
	Repo   repository.AdminRepository
	Secret []byte
	Expiry time.Duration
}

// NewService builds the auth service, reading the token lifetime from
// JWT_EXPIRE (default 24h).
func NewService(repo repository.AdminRepository, secret []byte) *Service {
	return &Service{
		Repo:   repo,
		Secret: secret,
		Expiry: config.GetEnvDuration("JWT_EXPIRE", 24*time.Hour),
	}
}

// Login verifies the credentials and issues a signed token. Identifiers
// containing "@" are tried as email first, then as username; plain
// identifiers the other way round. All failure modes collapse into
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Username == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}
	if in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}

	admin, err := s.lookup(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := IssueToken(s.Secret, Claims{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
	}, s.Expiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, Admin: admin}, nil
}

func (s *Service) lookup(ctx context.Context, identifier string) (*entity.Admin, error) {
	first, second := s.Repo.GetByUsername, s.Repo.GetByEmail
	if strings.Contains(identifier, "@") {
		first, second = second, first
	}

	admin, err := first(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if admin != nil {
		return admin, nil
	}
	admin, err = second(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	return admin, nil
}

// ChangePassword replaces the stored credential after verifying the old
// one. The new password must be at least six characters and differ from
// the old one; both checks run before any store access.
func (s *Service) ChangePassword(ctx context.Context, adminID int64, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return &entity.ValidationError{Field: "oldPassword", Message: "is required"}
	}
	if newPassword == "" {
		return &entity.ValidationError{Field: "newPassword", Message: "is required"}
	}
	if len(newPassword) < minPasswordLength {
		return &entity.ValidationError{Field: "newPassword", Message: "must be at least 6 characters"}
	}
	if newPassword == oldPassword {
		return &entity.ValidationError{Field: "newPassword", Message: "must differ from the old password"}
	}

	admin, err := s.Repo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("get admin: %w", err)
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	found, err := s.Repo.UpdatePassword(ctx, adminID, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if !found {
		return ErrAdminNotFound
	}
	return nil
}
