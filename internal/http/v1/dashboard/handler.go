package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/artashes-tumo/portfolio-hub/internal/platform/auth"
	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
	"github.com/artashes-tumo/portfolio-hub/internal/view"
)

// Register wires dashboard routes into the provided group.
// The group is expected to have auth middleware applied.
func Register(g *echo.Group, svc portfolio.Service, dir *portfolio.Directory) {
	g.GET("/dashboard", handleGetDashboard(svc))
	g.PUT("/dashboard/profile", handleSaveProfile(svc, dir))
	g.PUT("/dashboard/contact", handleSaveContact(svc, dir))
	g.PUT("/dashboard/skills", handleSaveSkills(svc, dir))
	g.POST("/dashboard/projects", handleAddProject(svc, dir))
	g.DELETE("/dashboard/projects/:index", handleDeleteProject(svc, dir))
}

// handleGetDashboard godoc
//
//	@Summary		Get dashboard
//	@Description	Loads the authenticated user's profile, creating the default record on first access
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Success		200	{object}	Dashboard
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func handleGetDashboard(svc portfolio.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		return respond.Negotiate(c, http.StatusOK, Dashboard{
			Header:   view.HeaderLine(p),
			Profile:  view.RenderProfile(p),
			Projects: view.RenderProjects(p),
			Skills:   view.RenderSkills(p),
			Contact:  view.RenderContact(p),
		})
	}
}

// handleSaveProfile godoc
//
//	@Summary		Save profile fields
//	@Description	Persists the core profile field group
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Param			body	body		SaveProfileInput	true	"Core profile fields"
//	@Success		200		{object}	SaveResult
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard/profile [put]
func handleSaveProfile(svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input SaveProfileInput
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
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		core := portfolio.CoreParams{
			Name:          strings.TrimSpace(input.Name),
			Username:      strings.TrimSpace(input.Username),
			DateOfBirth:   strings.TrimSpace(input.DateOfBirth),
			Bio:           strings.TrimSpace(input.Bio),
			ProfilePicURL: strings.TrimSpace(input.ProfilePicURL),
		}

		p.Name = core.Name
		p.Username = core.Username
		p.DateOfBirth = core.DateOfBirth
		p.Bio = core.Bio
		p.ProfilePicURL = core.ProfilePicURL

		if err := svc.SaveCore(ctx, user.UID, core); err != nil {
			applog.LogError(ctx, "error saving profile", err)
			return respond.Error500("error saving profile")
		}
		dir.Invalidate()

		profileView := view.RenderProfile(p)
		return respond.Negotiate(c, http.StatusOK, SaveResult{
			Message: "Profile saved.",
			Header:  view.HeaderLine(p),
			Profile: &profileView,
		})
	}
}

// handleSaveContact godoc
//
//	@Summary		Save contact fields
//	@Description	Persists the contact field group
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Param			body	body		SaveContactInput	true	"Contact fields"
//	@Success		200		{object}	SaveResult
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard/contact [put]
func handleSaveContact(svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input SaveContactInput
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
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		p.Contact = portfolio.Contact{
			Email:   strings.TrimSpace(input.Email),
			Socials: strings.TrimSpace(input.Socials),
			Website: strings.TrimSpace(input.Website),
			Phone:   strings.TrimSpace(input.Phone),
		}

		if err := svc.SaveContact(ctx, user.UID, p.Contact); err != nil {
			applog.LogError(ctx, "error saving contact", err)
			return respond.Error500("error saving contact")
		}
		dir.Invalidate()

		contactView := view.RenderContact(p)
		return respond.Negotiate(c, http.StatusOK, SaveResult{
			Message: "Contact saved.",
			Contact: &contactView,
		})
	}
}

// handleSaveSkills godoc
//
//	@Summary		Save skills
//	@Description	Normalizes the comma-separated skills field and persists the list
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Param			body	body		SaveSkillsInput	true	"Comma-separated skills"
//	@Success		200		{object}	SaveResult
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard/skills [put]
func handleSaveSkills(svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input SaveSkillsInput
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
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		p.Skills = portfolio.NormalizeSkills(input.Skills)

		if err := svc.SaveSkills(ctx, user.UID, p.Skills); err != nil {
			applog.LogError(ctx, "error saving skills", err)
			return respond.Error500("error saving skills")
		}
		dir.Invalidate()

		skillsView := view.RenderSkills(p)
		return respond.Negotiate(c, http.StatusOK, SaveResult{
			Message: "Skills saved.",
			Skills:  &skillsView,
		})
	}
}

// handleAddProject godoc
//
//	@Summary		Add project
//	@Description	Appends a project and persists the entire projects list
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Param			body	body		AddProjectInput	true	"New project"
//	@Success		201		{object}	SaveResult
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard/projects [post]
func handleAddProject(svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input AddProjectInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		title := strings.TrimSpace(input.Title)
		description := strings.TrimSpace(input.Description)
		if title == "" || description == "" {
			return respond.Error422("title and description are required")
		}

		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		p.Projects = append(p.Projects, portfolio.Project{
			Title:       title,
			Description: description,
			Link:        strings.TrimSpace(input.Link),
		})

		if err := svc.SaveProjects(ctx, user.UID, p.Projects); err != nil {
			applog.LogError(ctx, "error adding project", err)
			return respond.Error500("error adding project")
		}
		dir.Invalidate()

		projectsView := view.RenderProjects(p)
		return respond.Negotiate(c, http.StatusCreated, SaveResult{
			Message:  "Project added.",
			Projects: &projectsView,
		})
	}
}

// handleDeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Removes the project at the given index and persists the entire projects list
//	@Tags			dashboard
//	@Produce		json,application/cbor
//	@Param			index	path		int	true	"Project index"
//	@Success		200		{object}	SaveResult
//	@Failure		400		{object}	respond.ProblemDetails
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		404		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/dashboard/projects/{index} [delete]
func handleDeleteProject(svc portfolio.Service, dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return respond.Error400("project index must be an integer")
		}

		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		p, err := svc.LoadOrCreate(ctx, user.UID, user.Email)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		remaining, err := portfolio.RemoveProjectAt(p.Projects, index)
		if err != nil {
			return respond.Error404("project not found")
		}
		p.Projects = remaining

		if err := svc.SaveProjects(ctx, user.UID, p.Projects); err != nil {
			applog.LogError(ctx, "error deleting project", err)
			return respond.Error500("error deleting project")
		}
		dir.Invalidate()

		projectsView := view.RenderProjects(p)
		return respond.Negotiate(c, http.StatusOK, SaveResult{
			Message:  "Project deleted.",
			Projects: &projectsView,
		})
	}
}

func mapServiceError(ctx context.Context, err error) error {
	if errors.Is(err, portfolio.ErrNotFound) {
		return respond.Error404("profile not found")
	}
	applog.LogError(ctx, "unexpected service error", err)
	return respond.Error500("internal error")
}
