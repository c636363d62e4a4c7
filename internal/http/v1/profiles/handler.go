package profiles

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
	"github.com/artashes-tumo/portfolio-hub/internal/view"
)

// Register wires the public profile routes into the provided group.
// No auth middleware: anyone can view a profile by uid.
func Register(g *echo.Group, svc portfolio.Service) {
	g.GET("/profiles/:uid", handleGetProfile(svc))
}

// PublicProfile is the full rendered public profile page.
type PublicProfile struct {
	Profile  view.ProfileView  `json:"profile"  cbor:"profile"`
	Projects view.ProjectsView `json:"projects" cbor:"projects"`
	Skills   view.SkillsView   `json:"skills"   cbor:"skills"`
	Contact  view.ContactView  `json:"contact"  cbor:"contact"`
}

// handleGetProfile godoc
//
//	@Summary		View public profile
//	@Description	Returns the rendered public profile for the given user
//	@Tags			profiles
//	@Produce		json,application/cbor
//	@Param			uid	path		string	true	"Profile owner uid"
//	@Success		200	{object}	PublicProfile
//	@Failure		404	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Router			/profiles/{uid} [get]
func handleGetProfile(svc portfolio.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		uid := c.Param("uid")
		if uid == "" {
			return respond.Error404("profile not found")
		}

		ctx := c.Request().Context()
		p, err := svc.GetPublic(ctx, uid)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		return respond.Negotiate(c, http.StatusOK, render(p))
	}
}

func render(p *portfolio.Profile) PublicProfile {
	return PublicProfile{
		Profile:  view.RenderProfile(p),
		Projects: view.RenderProjects(p),
		Skills:   view.RenderSkills(p),
		Contact:  view.RenderContact(p),
	}
}

func mapServiceError(ctx context.Context, err error) error {
	if errors.Is(err, portfolio.ErrNotFound) {
		return respond.Error404("profile not found")
	}
	applog.LogError(ctx, "unexpected service error", err)
	return respond.Error500("internal error")
}
