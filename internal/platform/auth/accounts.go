package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// AccountManager performs administrative operations on identities.
type AccountManager interface {
	// DeleteAccount permanently removes the identity.
	DeleteAccount(ctx context.Context, uid string) error
	// RevokeTokens invalidates all refresh tokens for the identity,
	// forcing re-authentication once the current ID token expires.
	RevokeTokens(ctx context.Context, uid string) error
}

// FirebaseAccounts implements AccountManager with the Admin SDK.
type FirebaseAccounts struct {
	client *fbauth.Client
}

// NewFirebaseAccounts creates an account manager backed by the given Auth client.
func NewFirebaseAccounts(client *fbauth.Client) *FirebaseAccounts {
	return &FirebaseAccounts{client: client}
}

func (a *FirebaseAccounts) DeleteAccount(ctx context.Context, uid string) error {
	if err := a.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("auth: delete account %s: %w", uid, err)
	}
	return nil
}

func (a *FirebaseAccounts) RevokeTokens(ctx context.Context, uid string) error {
	if err := a.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("auth: revoke tokens %s: %w", uid, err)
	}
	return nil
}

var _ AccountManager = (*FirebaseAccounts)(nil)
