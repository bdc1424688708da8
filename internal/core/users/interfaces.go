package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByIDs retrieves multiple users in a single batch query.
	// Returns a map of ID → User; missing users are simply absent from the
	// map, which is not an error. Used to hydrate post/comment authors
	// without a query per row.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*User, error)
}

// Service defines the interface for user business logic
type Service interface {
	// Signup creates a new account with a bcrypt-hashed credential.
	// Both username and password are required.
	Signup(ctx context.Context, req SignupRequest) (*User, error)

	// Authenticate verifies a username/password pair and returns the
	// matching user. Returns ErrInvalidCredentials on any mismatch,
	// without distinguishing unknown user from wrong password.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	GetByID(ctx context.Context, id int64) (*User, error)
}
