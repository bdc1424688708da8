package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shubham0328/mini-blog-api/internal/auth"
)

// MockUserRepository is a mock implementation of Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*User), args.Error(1)
}

func TestSignup_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		// Never store the plaintext
		return u.Username == "alice" && u.PasswordHash != "s3cret" && u.PasswordHash != ""
	})).Return(&User{ID: 1, Username: "alice"}, nil)

	created, err := svc.Signup(context.Background(), SignupRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	repo.AssertExpectations(t)
}

func TestSignup_MissingFields(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	_, err := svc.Signup(context.Background(), SignupRequest{Username: "", Password: "pw"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Signup(context.Background(), SignupRequest{Username: "alice", Password: ""})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	repo.AssertNotCalled(t, "Create")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrUsernameTaken)

	_, err := svc.Signup(context.Background(), SignupRequest{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	user, err := svc.Authenticate(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&User{ID: 1, Username: "alice", PasswordHash: hash}, nil)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUserIsIndistinguishable(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
