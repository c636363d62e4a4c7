package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// Sentinel errors for token verification failures.
var (
	ErrNoToken          = errors.New("no bearer token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrUserDisabled     = errors.New("user disabled")
	ErrCertificateFetch = errors.New("certificate fetch failed")
)

// FirebaseUser is the authenticated identity extracted from a verified ID token.
type FirebaseUser struct {
	UID   string
	Email string
	Name  string
}

// Verifier verifies a bearer token and resolves the authenticated user.
type Verifier interface {
	Verify(ctx context.Context, token string) (*FirebaseUser, error)
}

// FirebaseVerifier verifies Firebase ID tokens using the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a verifier backed by the given Auth client.
func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify checks the ID token signature, expiry, and revocation state.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*FirebaseUser, error) {
	decoded, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, mapVerifyError(err)
	}

	user := &FirebaseUser{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		user.Name = name
	}
	return user, nil
}

func mapVerifyError(err error) error {
	switch {
	case fbauth.IsIDTokenExpired(err):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case fbauth.IsIDTokenRevoked(err):
		return fmt.Errorf("%w: %w", ErrTokenRevoked, err)
	case fbauth.IsUserDisabled(err):
		return fmt.Errorf("%w: %w", ErrUserDisabled, err)
	case strings.Contains(err.Error(), "certificate"):
		return fmt.Errorf("%w: %w", ErrCertificateFetch, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
}

// ExtractBearerToken parses an Authorization header and returns the bearer token.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNoToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
