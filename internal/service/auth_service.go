package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bragboard/internal/cache"
	"bragboard/internal/metrics"
	"bragboard/internal/model"
	"bragboard/internal/repository"
)

const (
	bcryptCost = 10

	tokenCacheKeyPrefix = "auth_token:"
	tokenCacheTTL       = 10 * time.Minute
)

var (
	// ErrUserExists is returned when the signup email is already registered.
	ErrUserExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a bearer token cannot be resolved.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService handles signup, login, and bearer token resolution.
type AuthService interface {
	Signup(ctx context.Context, email, fullName, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Resolve(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	employeeRepo repository.EmployeeRepository
	cache        *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	employeeRepo repository.EmployeeRepository,
	cache *cache.Client,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		employeeRepo: employeeRepo,
		cache:        cache,
	}
}

// Signup creates a User and a matching Employee directory entry. The
// employee name falls back to the local part of the email when no full name
// was given.
func (s *authService) Signup(ctx context.Context, email, fullName, password, role string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if role == "" {
		role = model.RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    email,
		FullName: fullName,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	name := fullName
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	employee := &model.Employee{
		Name:   name,
		Email:  email,
		Role:   role,
		Active: true,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a fresh opaque token bound to the
// user. Tokens are never expired or invalidated; logout is not modeled.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	token := &model.Token{
		Token:  uuid.New().String(),
		UserID: user.ID,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", nil, fmt.Errorf("create token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token.Token, user, nil
}

// Resolve maps an opaque bearer token back to its user. A Redis fast path
// avoids the two table lookups on hot tokens; on any cache miss or error the
// database remains authoritative.
func (s *authService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if cached, _ := s.cache.Get(ctx, tokenCacheKeyPrefix+token); cached != nil {
		if uid, err := uuid.ParseBytes(cached); err == nil {
			if user, err := s.userRepo.FindByID(ctx, uid); err == nil {
				return user, nil
			}
		}
	}

	row, err := s.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(ctx, row.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	_ = s.cache.Set(ctx, tokenCacheKeyPrefix+token, []byte(user.ID.String()), tokenCacheTTL)
	return user, nil
}
