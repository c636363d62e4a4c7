package portfolio

import (
	"context"
	"errors"
)

// Sentinel errors surfaced to callers. Handlers map these to user-facing
// responses; anything else is an internal store failure.
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// CreateParams is the initial profile content written at registration.
type CreateParams struct {
	Name     string
	Username string
	Email    string
}

// CoreParams is the identity-card field group edited on the dashboard.
type CoreParams struct {
	Name          string
	Username      string
	DateOfBirth   string
	Bio           string
	ProfilePicURL string
}

// Service is the profile store adapter. Each Save* method persists one field
// group independently; the caller keeps its in-memory Profile consistent with
// what was sent (optimistic write, no re-read after a successful save).
// Projects are replaced as a whole array on every add or delete.
type Service interface {
	Create(ctx context.Context, uid string, params CreateParams) (*Profile, error)
	LoadOrCreate(ctx context.Context, uid, fallbackEmail string) (*Profile, error)
	GetPublic(ctx context.Context, uid string) (*Profile, error)
	SaveCore(ctx context.Context, uid string, core CoreParams) error
	SaveContact(ctx context.Context, uid string, contact Contact) error
	SaveSkills(ctx context.Context, uid string, skills []string) error
	SaveProjects(ctx context.Context, uid string, projects []Project) error
	ListAll(ctx context.Context) ([]*Profile, error)
	Delete(ctx context.Context, uid string) error
}

// categorizeError returns a safe category string for logging.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}
