package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"marinahub/api/internal/config"
	"marinahub/api/internal/models"
	"marinahub/api/internal/repository"
	"marinahub/api/internal/security"
)

type fakeUserStore struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id int64, username *string, email *string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if username != nil {
		u.Username = *username
	}
	if email != nil {
		u.Email = *email
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash []byte) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[id] = u
	return nil
}

func newTestAuthService(store UserStore) *AuthService {
	cfg := &config.AppConfig{}
	cfg.Security.JWTSecret = "unit-test-secret"
	cfg.Security.TokenTTL = time.Hour
	return NewAuthService(store, cfg, zerolog.Nop())
}

func TestSignup_CreatesUserAndToken(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	result, err := svc.Signup(context.Background(), SignupInput{
		Username: "  dana ",
		Email:    "  Dana@Example.COM ",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, "dana", result.User.Username)
	require.Equal(t, "dana@example.com", result.User.Email)
	require.NotEmpty(t, result.Token)

	claims, err := security.ParseToken(result.Token, "unit-test-secret")
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.UserID)
	require.Equal(t, "dana@example.com", claims.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{Username: "b", Email: "A@B.C", Password: "other"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), "nobody@b.c", "hunter22")
	_, errWrongPw := svc.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "A@B.C", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "a@b.c", result.User.Email)
}

func TestEditProfile(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	first, err := svc.Signup(ctx, SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)
	second, err := svc.Signup(ctx, SignupInput{Username: "b", Email: "b@b.c", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.EditProfile(ctx, first.User.ID, nil, nil)
	require.ErrorIs(t, err, ErrNothingToUpdate)

	username := "renamed"
	updated, err := svc.EditProfile(ctx, first.User.ID, &username, nil)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Username)

	taken := "b@b.c"
	_, err = svc.EditProfile(ctx, first.User.ID, nil, &taken)
	require.ErrorIs(t, err, ErrEmailTaken)

	// Re-submitting your own email is a no-op, not a conflict.
	own := "b@b.c"
	kept, err := svc.EditProfile(ctx, second.User.ID, nil, &own)
	require.NoError(t, err)
	require.Equal(t, "b@b.c", kept.Email)
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	result, err := svc.Signup(ctx, SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)
	id := result.User.ID

	require.ErrorIs(t, svc.ChangePassword(ctx, id, "hunter22", "short"), ErrPasswordTooShort)
	require.ErrorIs(t, svc.ChangePassword(ctx, id, "wrong", "new-password"), ErrWrongPassword)
	require.NoError(t, svc.ChangePassword(ctx, id, "hunter22", "new-password"))

	_, err = svc.Login(ctx, "a@b.c", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@b.c", "new-password")
	require.NoError(t, err)
}

func TestChangePassword_KeepsSurroundingSpaces(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	result, err := svc.Signup(ctx, SignupInput{Username: "a", Email: "a@b.c", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, result.User.ID, "hunter22", "  spaced pass  "))

	_, err = svc.Login(ctx, "a@b.c", "  spaced pass  ")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "a@b.c", "spaced pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
