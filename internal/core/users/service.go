package users

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shubham0328/mini-blog-api/internal/auth"
)

const maxUsernameLength = 150

type userService struct {
	userRepo Repository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup creates a new account after validating the request.
// The password is hashed before it ever reaches the repository.
func (s *userService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if len(req.Username) > maxUsernameLength {
		return nil, NewValidationError("username", "username is too long")
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "password is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	// Repository maps the unique constraint violation to ErrUsernameTaken,
	// which closes the check-then-create race without a prior lookup.
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", slog.Int64("user_id", created.ID))
	return created, nil
}

// Authenticate verifies a username/password pair
func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by their identifier
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.userRepo.GetByID(ctx, id)
}
