package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"marinahub/api/internal/config"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
	"marinahub/api/internal/security"
)

var (
	// ErrInvalidCredentials is returned for unknown email AND wrong
	// password alike; callers must not be able to tell the difference.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
	ErrNothingToUpdate    = errors.New("nothing to update")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, username *string, email *string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, log: log}
}

type SignupInput struct {
	Username  string
	Email     string
	Password  string
	AvatarURL *string
}

type AuthResult struct {
	Token string
	User  models.User
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: passwordHash,
		AvatarURL:    input.AvatarURL,
	})
	if err != nil {
		return AuthResult{}, err
	}

	return s.mintToken(user)
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.mintToken(user)
}

// EditProfile updates username and/or email. A nil field is left as is;
// an email matching another account is a conflict. Both nil (or blank)
// is ErrNothingToUpdate.
func (s *AuthService) EditProfile(ctx context.Context, userID int64, username *string, email *string) (models.User, error) {
	username = trimmed(username)
	email = trimmed(email)
	if username == nil && email == nil {
		return models.User{}, ErrNothingToUpdate
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if email != nil {
		lower := strings.ToLower(*email)
		email = &lower
		if lower != user.Email {
			if existing, err := s.users.FindByEmail(ctx, lower); err == nil && existing.ID != userID {
				return models.User{}, ErrEmailTaken
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return models.User{}, err
			}
		} else {
			email = nil
		}
	}

	if username == nil && email == nil {
		return user, nil
	}

	if err := s.users.UpdateProfile(ctx, userID, username, email); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error {
	if len(strings.TrimSpace(newPassword)) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !security.VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	// Length is validated on the trimmed value, but the password is
	// stored as typed so logins with deliberate spaces keep working.
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) mintToken(user models.User) (AuthResult, error) {
	token, err := security.GenerateToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		user.Email,
		user.AvatarURL,
		s.cfg.Security.TokenTTL,
	)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
