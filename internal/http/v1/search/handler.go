package search

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"

	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
	"github.com/artashes-tumo/portfolio-hub/internal/view"
)

// Register wires the search route into the provided group.
// Search is public: the directory snapshot contains only public content.
func Register(g *echo.Group, dir *portfolio.Directory) {
	g.GET("/search", handleSearch(dir))
}

// handleSearch godoc
//
//	@Summary		Search profiles and projects
//	@Description	Case-insensitive substring search over the full profile directory
//	@Tags			search
//	@Produce		json,application/cbor
//	@Param			q		query		string	false	"Search query"
//	@Param			type	query		string	false	"Search mode"	Enums(users, projects)
//	@Success		200		{object}	Response
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Router			/search [get]
func handleSearch(dir *portfolio.Directory) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input Input
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		mode := input.Type
		if mode == "" {
			mode = ModeUsers
		}
		query := strings.TrimSpace(input.Query)

		ctx := c.Request().Context()
		profiles, err := dir.Snapshot(ctx)
		if err != nil {
			applog.LogError(ctx, "error loading users", err)
			return respond.Error500("error loading users")
		}

		var resp Response
		if mode == ModeUsers {
			resp = searchUsers(profiles, query)
		} else {
			resp = searchProjects(profiles, query)
		}
		resp.Query = query
		resp.Type = mode

		return respond.Negotiate(c, http.StatusOK, resp)
	}
}

func searchUsers(profiles []*portfolio.Profile, query string) Response {
	users := []UserResult{}
	if query == "" {
		return Response{Users: users, Message: "Start typing to see user results."}
	}

	q := strings.ToLower(query)
	for _, p := range profiles {
		name := strings.ToLower(p.Name)
		username := strings.ToLower(p.Username)
		if !strings.Contains(name, q) && !strings.Contains(username, q) {
			continue
		}
		rendered := view.RenderProfile(p)
		users = append(users, UserResult{
			ID:           p.ID,
			Name:         rendered.Name,
			Username:     rendered.Username,
			ProjectCount: len(p.Projects),
		})
	}

	if len(users) == 0 {
		return Response{Users: users, Message: "No users found."}
	}
	return Response{
		Users:   users,
		Count:   len(users),
		Message: fmt.Sprintf("%d user(s) found.", len(users)),
	}
}

func searchProjects(profiles []*portfolio.Profile, query string) Response {
	projects := []ProjectResult{}
	if query == "" {
		return Response{Projects: projects, Message: "Start typing to see project results."}
	}

	q := strings.ToLower(query)
	for _, p := range profiles {
		owner := strings.ToLower(p.Name)
		for _, project := range p.Projects {
			title := strings.ToLower(project.Title)
			desc := strings.ToLower(project.Description)
			if !strings.Contains(title, q) && !strings.Contains(desc, q) && !strings.Contains(owner, q) {
				continue
			}
			projects = append(projects, ProjectResult{
				Title:       project.Title,
				Description: project.Description,
				Link:        project.Link,
				Owner:       view.OwnerLine(p),
				OwnerID:     p.ID,
			})
		}
	}

	if len(projects) == 0 {
		return Response{Projects: projects, Message: "No projects found."}
	}
	return Response{
		Projects: projects,
		Count:    len(projects),
		Message:  fmt.Sprintf("%d project(s) found.", len(projects)),
	}
}
