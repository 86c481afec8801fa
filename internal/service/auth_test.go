package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/packwise/api/internal/model"
	"github.com/packwise/api/pkg/jwt"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockUserRepo struct {
	createFunc     func(ctx context.Context, user *model.User) error
	getByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func newTestAuthService(t *testing.T, userRepo *mockUserRepo) *AuthService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return NewAuthService(userRepo, jwt.NewTestService(key, "packwise-test", 15*time.Minute))
}

func testHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_NewEmail_ReturnsToken(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:1"
			return nil
		},
	}
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "Packer@Example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a signed access token")
	}
	if resp.User.Email != "packer@example.com" {
		t.Errorf("expected the email lowercased, got %q", resp.User.Email)
	}
}

func TestRegister_ExistingEmail_ReturnsConflict(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "packer@example.com",
		Password: "correct horse battery",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegister_ShortPassword_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t, &mockUserRepo{})

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "packer@example.com",
		Password: "short",
	})

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_CorrectPassword_ReturnsToken(t *testing.T) {
	t.Parallel()

	hash := testHash(t, "correct horse battery")
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email, Hash: &hash}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "packer@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a signed access token")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %q", resp.TokenType)
	}
}

func TestLogin_WrongPassword_ReturnsInvalidCredentials(t *testing.T) {
	t.Parallel()

	hash := testHash(t, "correct horse battery")
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email, Hash: &hash}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "packer@example.com",
		Password: "wrong horse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail_ReturnsInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t, &mockUserRepo{})

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse battery",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
