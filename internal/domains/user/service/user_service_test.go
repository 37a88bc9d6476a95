package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"djbooking-backend/internal/domains/user"
	"djbooking-backend/internal/domains/user/model"
	"djbooking-backend/internal/shared/apperrors"
	"djbooking-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*model.User
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) (*model.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, user.ErrEmailAlreadyExists
	}

	stored := *u
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	f.byEmail[stored.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestUserService() ServiceInterface {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(newFakeUserRepo(), manager)
}

func registerRequest(email string) *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:                email,
		Password:             "correct horse battery",
		PasswordConfirmation: "correct horse battery",
	}
}

func TestUserService_Register(t *testing.T) {
	svc := newTestUserService()

	auth, err := svc.Register(context.Background(), registerRequest("dj@example.com"))

	require.NoError(t, err)
	assert.Equal(t, "dj@example.com", auth.User.Email)
	assert.NotEmpty(t, auth.Tokens.AccessToken)
	assert.NotEmpty(t, auth.Tokens.RefreshToken)
	// The stored hash never equals the plaintext.
	assert.NotEqual(t, "correct horse battery", auth.User.PasswordHash)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("dj@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("dj@example.com"))

	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	assert.Equal(t, apperrors.KindConflict, apperrors.Classify(err).Kind)
}

func TestUserService_Login(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("dj@example.com"))
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dj@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.Tokens.AccessToken)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register(context.Background(), registerRequest("dj@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "dj@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_LoginUnknownEmailSameError(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Refresh(t *testing.T) {
	svc := newTestUserService()

	auth, err := svc.Register(context.Background(), registerRequest("dj@example.com"))
	require.NoError(t, err)

	tokens, err := svc.Refresh(context.Background(), &model.RefreshTokenRequest{
		RefreshToken: auth.Tokens.RefreshToken,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestUserService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestUserService()

	auth, err := svc.Register(context.Background(), registerRequest("dj@example.com"))
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), &model.RefreshTokenRequest{
		RefreshToken: auth.Tokens.AccessToken,
	})

	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestUserService_RefreshGarbageToken(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Refresh(context.Background(), &model.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	})

	require.ErrorIs(t, err, user.ErrInvalidToken)
	assert.Equal(t, apperrors.KindAuthentication, apperrors.Classify(err).Kind)
}

func TestRegisterRequest_ConfirmationMismatch(t *testing.T) {
	req := model.RegisterRequest{
		Email:                "dj@example.com",
		Password:             "one password",
		PasswordConfirmation: "another password",
	}

	assert.Error(t, req.Validate())
}

func TestRegisterRequest_PasswordBounds(t *testing.T) {
	req := registerRequest("dj@example.com")
	req.Password = "short"
	req.PasswordConfirmation = "short"

	assert.Error(t, req.Validate())
}
