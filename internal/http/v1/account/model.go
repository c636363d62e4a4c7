package account

// Session is the credential set returned by login and register. The ID
// token authenticates subsequent requests; the refresh token renews it.
type Session struct {
	UID          string `json:"uid"          cbor:"uid"`
	Email        string `json:"email"        cbor:"email"`
	IDToken      string `json:"idToken"      cbor:"idToken"`
	RefreshToken string `json:"refreshToken" cbor:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"    cbor:"expiresIn"`
}
