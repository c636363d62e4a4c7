package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestToolkitClient(handler http.HandlerFunc) (*IdentityToolkitClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &IdentityToolkitClient{
		apiKey:     "test-key",
		baseURL:    srv.URL + "/identitytoolkit.googleapis.com/v1",
		httpClient: srv.Client(),
	}
	return client, srv
}

func toolkitSuccess(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", r.URL.RawQuery)
		}
		var req identityToolkitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if !req.ReturnSecureToken {
			t.Error("expected returnSecureToken true")
		}
		_ = json.NewEncoder(w).Encode(identityToolkitResponse{
			LocalID:      "uid-1",
			Email:        req.Email,
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    "3600",
		})
	}
}

func toolkitError(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		var body identityToolkitError
		body.Error.Message = message
		_ = json.NewEncoder(w).Encode(body)
	}
}

func TestIdentityToolkit_SignIn(t *testing.T) {
	client, srv := newTestToolkitClient(toolkitSuccess(t))
	defer srv.Close()

	creds, err := client.SignIn(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if creds.UID != "uid-1" {
		t.Fatalf("expected uid 'uid-1', got %q", creds.UID)
	}
	if creds.Email != "ana@example.com" {
		t.Fatalf("expected email echoed back, got %q", creds.Email)
	}
	if creds.ExpiresIn != time.Hour {
		t.Fatalf("expected expiry 1h, got %v", creds.ExpiresIn)
	}
}

func TestIdentityToolkit_SignUpEmailExists(t *testing.T) {
	client, srv := newTestToolkitClient(toolkitError(http.StatusBadRequest, "EMAIL_EXISTS"))
	defer srv.Close()

	_, err := client.SignUp(context.Background(), "taken@example.com", "secret123")
	if !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestIdentityToolkit_SignInWrongPassword(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"invalid password", "INVALID_PASSWORD"},
		{"unknown email", "EMAIL_NOT_FOUND"},
		{"combined code", "INVALID_LOGIN_CREDENTIALS"},
		{"disabled user", "USER_DISABLED"},
		{"code with detail", "INVALID_PASSWORD : The password is invalid."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestToolkitClient(toolkitError(http.StatusBadRequest, tt.message))
			defer srv.Close()

			_, err := client.SignIn(context.Background(), "ana@example.com", "wrong")
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestIdentityToolkit_UnknownError(t *testing.T) {
	client, srv := newTestToolkitClient(toolkitError(http.StatusBadRequest, "OPERATION_NOT_ALLOWED"))
	defer srv.Close()

	_, err := client.SignIn(context.Background(), "ana@example.com", "secret123")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected unmapped error, got %v", err)
	}
}

func TestIdentityToolkit_MalformedErrorBody(t *testing.T) {
	client, srv := newTestToolkitClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	})
	defer srv.Close()

	_, err := client.SignIn(context.Background(), "ana@example.com", "secret123")
	if err == nil {
		t.Fatal("expected error for malformed error body")
	}
}
