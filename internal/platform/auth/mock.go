package auth

import "context"

// MockVerifier implements Verifier for tests.
type MockVerifier struct {
	User  *FirebaseUser
	Error error
}

func (m *MockVerifier) Verify(_ context.Context, _ string) (*FirebaseUser, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

// TestUser returns a fixed authenticated user for tests.
func TestUser() *FirebaseUser {
	return &FirebaseUser{
		UID:   "test-uid-123",
		Email: "test@example.com",
		Name:  "Test User",
	}
}

// MockPasswords implements PasswordAuthenticator for tests. SignIn and SignUp
// return the configured credentials or error; calls are counted for assertions.
type MockPasswords struct {
	Creds       *Credentials
	SignInErr   error
	SignUpErr   error
	SignInCalls int
	SignUpCalls int
}

func (m *MockPasswords) SignUp(_ context.Context, email, _ string) (*Credentials, error) {
	m.SignUpCalls++
	if m.SignUpErr != nil {
		return nil, m.SignUpErr
	}
	creds := *m.Creds
	if creds.Email == "" {
		creds.Email = email
	}
	return &creds, nil
}

func (m *MockPasswords) SignIn(_ context.Context, email, _ string) (*Credentials, error) {
	m.SignInCalls++
	if m.SignInErr != nil {
		return nil, m.SignInErr
	}
	creds := *m.Creds
	if creds.Email == "" {
		creds.Email = email
	}
	return &creds, nil
}

// MockAccounts implements AccountManager for tests.
type MockAccounts struct {
	DeleteErr   error
	RevokeErr   error
	DeletedUIDs []string
	RevokedUIDs []string
}

func (m *MockAccounts) DeleteAccount(_ context.Context, uid string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedUIDs = append(m.DeletedUIDs, uid)
	return nil
}

func (m *MockAccounts) RevokeTokens(_ context.Context, uid string) error {
	if m.RevokeErr != nil {
		return m.RevokeErr
	}
	m.RevokedUIDs = append(m.RevokedUIDs, uid)
	return nil
}

var (
	_ Verifier              = (*MockVerifier)(nil)
	_ PasswordAuthenticator = (*MockPasswords)(nil)
	_ AccountManager        = (*MockAccounts)(nil)
)
