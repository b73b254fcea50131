package auth

import "context"

// MockVerifier returns a fixed user or error.
type MockVerifier struct {
	User  *User
	Error error
}

func (m *MockVerifier) Verify(_ context.Context, _ string) (*User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestAdmin returns a user holding the admin claim.
func TestAdmin() *User {
	return &User{UID: "admin-123", Email: "admin@example.com", Admin: true}
}

var _ Verifier = (*MockVerifier)(nil)
