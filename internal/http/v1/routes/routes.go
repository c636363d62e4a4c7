package routes

import (
	"github.com/labstack/echo/v5"

	"github.com/artashes-tumo/portfolio-hub/internal/http/v1/account"
	"github.com/artashes-tumo/portfolio-hub/internal/http/v1/dashboard"
	"github.com/artashes-tumo/portfolio-hub/internal/http/v1/profiles"
	"github.com/artashes-tumo/portfolio-hub/internal/http/v1/search"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/auth"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
)

// Register wires all v1 routes into the provided group. Public surfaces
// (profile view, search, login/register) carry no auth middleware; the
// dashboard and account routes require a verified identity.
func Register(
	v1 *echo.Group,
	verifier auth.Verifier,
	pw auth.PasswordAuthenticator,
	accounts auth.AccountManager,
	svc portfolio.Service,
	dir *portfolio.Directory,
) {
	profiles.Register(v1, svc)
	search.Register(v1, dir)
	account.RegisterPublic(v1, pw, svc, dir)

	protected := v1.Group("", auth.Middleware(verifier))
	dashboard.Register(protected, svc, dir)
	account.RegisterProtected(protected, pw, accounts, svc, dir)
}
