package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Sentinel errors for password credential operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
)

// Credentials is the result of a successful password sign-in or sign-up.
type Credentials struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}

// PasswordAuthenticator performs email+password credential operations against
// the identity provider. Reauthentication is a SignIn whose UID must match the
// already-authenticated user.
type PasswordAuthenticator interface {
	SignUp(ctx context.Context, email, password string) (*Credentials, error)
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
}

// IdentityToolkitClient implements PasswordAuthenticator against the Google
// Identity Toolkit REST API, the same surface the Firebase web SDK uses.
// When FIREBASE_AUTH_EMULATOR_HOST is set, requests target the emulator.
type IdentityToolkitClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewIdentityToolkitClient creates a client using the given web API key.
func NewIdentityToolkitClient(apiKey string) *IdentityToolkitClient {
	base := "https://identitytoolkit.googleapis.com/v1"
	if host := os.Getenv("FIREBASE_AUTH_EMULATOR_HOST"); host != "" {
		base = fmt.Sprintf("http://%s/identitytoolkit.googleapis.com/v1", host)
	}
	return &IdentityToolkitClient{
		apiKey:     apiKey,
		baseURL:    base,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type identityToolkitRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityToolkitResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type identityToolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates a new identity with the given email and password.
func (c *IdentityToolkitClient) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	return c.post(ctx, "accounts:signUp", email, password)
}

// SignIn verifies the given email and password and returns fresh credentials.
func (c *IdentityToolkitClient) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	return c.post(ctx, "accounts:signInWithPassword", email, password)
}

func (c *IdentityToolkitClient) post(ctx context.Context, action, email, password string) (*Credentials, error) {
	payload, err := json.Marshal(identityToolkitRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: encode %s request: %w", action, err)
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", c.baseURL, action, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("auth: build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: %s: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var apiErr identityToolkitError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil {
			return nil, fmt.Errorf("auth: %s returned status %d", action, resp.StatusCode)
		}
		return nil, mapIdentityToolkitError(action, apiErr.Error.Message)
	}

	var result identityToolkitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("auth: decode %s response: %w", action, err)
	}

	creds := &Credentials{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
	}
	if result.ExpiresIn != "" {
		if d, parseErr := time.ParseDuration(result.ExpiresIn + "s"); parseErr == nil {
			creds.ExpiresIn = d
		}
	}
	return creds, nil
}

func mapIdentityToolkitError(action, message string) error {
	code, _, _ := strings.Cut(message, " ")
	switch code {
	case "EMAIL_EXISTS":
		return fmt.Errorf("%w: %s", ErrEmailInUse, action)
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, action)
	default:
		return fmt.Errorf("auth: %s failed: %s", action, message)
	}
}
