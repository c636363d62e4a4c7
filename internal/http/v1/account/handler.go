package account

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/artashes-tumo/portfolio-hub/internal/platform/auth"
	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
)

// RegisterPublic wires the unauthenticated auth routes into the group.
func RegisterPublic(g *echo.Group, pw auth.PasswordAuthenticator, svc portfolio.Service, dir *portfolio.Directory) {
	g.POST("/auth/register", handleRegister(pw, svc, dir))
	g.POST("/auth/login", handleLogin(pw))
}

// RegisterProtected wires the routes requiring a verified identity.
// The group is expected to have auth middleware applied.
func RegisterProtected(
	g *echo.Group,
	pw auth.PasswordAuthenticator,
	accounts auth.AccountManager,
	svc portfolio.Service,
	dir *portfolio.Directory,
) {
	g.POST("/auth/logout", handleLogout(accounts))
	g.DELETE("/account", handleDeleteAccount(pw, accounts, svc, dir))
}

// handleRegister godoc
//
//	@Summary		Register
//	@Description	Creates a new identity and writes its initial profile document
//	@Tags			auth
//	@Produce		json,application/cbor
//	@Param			body	body		RegisterInput	true	"Registration request body"
//	@Success		201		{object}	Session
//	@Failure		409		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Router			/auth/register [post]
func handleRegister(pw auth.PasswordAuthenticator, svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input RegisterInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		ctx := c.Request().Context()
		email := strings.TrimSpace(input.Email)

		creds, err := pw.SignUp(ctx, email, input.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmailInUse) {
				return respond.Error409("email already in use")
			}
			applog.LogError(ctx, "registration failed", err)
			return respond.Error500("registration failed")
		}

		if _, err := svc.Create(ctx, creds.UID, portfolio.CreateParams{
			Name:     strings.TrimSpace(input.Name),
			Username: strings.TrimSpace(input.Username),
			Email:    email,
		}); err != nil && !errors.Is(err, portfolio.ErrAlreadyExists) {
			// The identity exists; the profile will be synthesized on the
			// first dashboard load instead.
			applog.LogError(ctx, "initial profile write failed", err)
		}
		dir.Invalidate()

		applog.LogAuditEvent(ctx, "account.register", creds.UID, "profile", creds.UID, "success", nil)

		return respond.Negotiate(c, http.StatusCreated, toSession(creds))
	}
}

// handleLogin godoc
//
//	@Summary		Login
//	@Description	Verifies email and password and returns fresh credentials
//	@Tags			auth
//	@Produce		json,application/cbor
//	@Param			body	body		LoginInput	true	"Login request body"
//	@Success		200		{object}	Session
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Router			/auth/login [post]
func handleLogin(pw auth.PasswordAuthenticator) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input LoginInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		ctx := c.Request().Context()
		creds, err := pw.SignIn(ctx, strings.TrimSpace(input.Email), input.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return respond.Error401("invalid email or password")
			}
			applog.LogError(ctx, "login failed", err)
			return respond.Error500("login failed")
		}

		return respond.Negotiate(c, http.StatusOK, toSession(creds))
	}
}

// handleLogout godoc
//
//	@Summary		Logout
//	@Description	Revokes the user's refresh tokens
//	@Tags			auth
//	@Success		204
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func handleLogout(accounts auth.AccountManager) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		if err := accounts.RevokeTokens(ctx, user.UID); err != nil {
			applog.LogError(ctx, "logout failed", err)
			return respond.Error500("logout failed")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// handleDeleteAccount godoc
//
//	@Summary		Delete account
//	@Description	Reauthenticates with the password, then removes the profile document and the identity
//	@Tags			auth
//	@Produce		json,application/cbor
//	@Param			body	body		DeleteInput	true	"Account deletion request body"
//	@Success		204
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		403	{object}	respond.ProblemDetails
//	@Failure		422	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/account [delete]
func handleDeleteAccount(
	pw auth.PasswordAuthenticator,
	accounts auth.AccountManager,
	svc portfolio.Service,
	dir *portfolio.Directory,
) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input DeleteInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()

		// Reauthenticate first: destruction only proceeds on a freshly
		// proven identity.
		creds, err := pw.SignIn(ctx, user.Email, input.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return respond.Error401("password is incorrect")
			}
			applog.LogError(ctx, "reauthentication failed", err)
			return respond.Error500("reauthentication failed")
		}
		if creds.UID != user.UID {
			return respond.Error403("credentials do not match the signed-in user")
		}

		if err := svc.Delete(ctx, user.UID); err != nil && !errors.Is(err, portfolio.ErrNotFound) {
			applog.LogError(ctx, "error deleting profile", err)
			return respond.Error500("error deleting account")
		}
		dir.Invalidate()

		if err := accounts.DeleteAccount(ctx, user.UID); err != nil {
			applog.LogError(ctx, "error deleting identity", err)
			return respond.Error500("error deleting account")
		}

		applog.LogAuditEvent(ctx, "account.delete", user.UID, "profile", user.UID, "success", nil)

		return c.NoContent(http.StatusNoContent)
	}
}

func toSession(creds *auth.Credentials) Session {
	return Session{
		UID:          creds.UID,
		Email:        creds.Email,
		IDToken:      creds.IDToken,
		RefreshToken: creds.RefreshToken,
		ExpiresIn:    int64(creds.ExpiresIn.Seconds()),
	}
}
