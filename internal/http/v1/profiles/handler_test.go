package profiles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/validate"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
	"github.com/artashes-tumo/portfolio-hub/internal/view"
)

func setupEcho(svc portfolio.Service) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()

	Register(e.Group(""), svc)
	return e
}

func TestGetProfile_Success(t *testing.T) {
	svc := portfolio.NewMockStore()
	svc.Seed(&portfolio.Profile{
		ID:       "uid-1",
		Name:     "Ana",
		Username: "ana",
		Bio:      "building things",
		Skills:   []string{"Go"},
		Projects: []portfolio.Project{{Title: "Hub", Description: "a directory"}},
		Contact:  portfolio.Contact{Email: "ana@example.com"},
	})
	e := setupEcho(svc)

	req := httptest.NewRequest(http.MethodGet, "/profiles/uid-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var page PublicProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if page.Profile.Name != "Ana" {
		t.Fatalf("expected name 'Ana', got %q", page.Profile.Name)
	}
	if page.Profile.Username != "@ana" {
		t.Fatalf("expected username '@ana', got %q", page.Profile.Username)
	}
	if len(page.Projects.Projects) != 1 || page.Projects.Projects[0].Title != "Hub" {
		t.Fatalf("unexpected projects region: %+v", page.Projects)
	}
	if len(page.Skills.Skills) != 1 {
		t.Fatalf("unexpected skills region: %+v", page.Skills)
	}
	if len(page.Contact.Entries) != 1 || page.Contact.Entries[0].Label != "Email" {
		t.Fatalf("unexpected contact region: %+v", page.Contact)
	}
}

func TestGetProfile_BlankFieldsRenderPlaceholders(t *testing.T) {
	svc := portfolio.NewMockStore()
	svc.Seed(&portfolio.Profile{ID: "uid-1"})
	e := setupEcho(svc)

	req := httptest.NewRequest(http.MethodGet, "/profiles/uid-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var page PublicProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if page.Profile.Name != view.PlaceholderName {
		t.Fatalf("expected %q, got %q", view.PlaceholderName, page.Profile.Name)
	}
	if page.Projects.Empty != view.EmptyProjectsText {
		t.Fatalf("expected %q, got %q", view.EmptyProjectsText, page.Projects.Empty)
	}
	if page.Skills.Empty != view.EmptySkillsText {
		t.Fatalf("expected %q, got %q", view.EmptySkillsText, page.Skills.Empty)
	}
	if page.Contact.Empty != view.EmptyContactText {
		t.Fatalf("expected %q, got %q", view.EmptyContactText, page.Contact.Empty)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := portfolio.NewMockStore()
	e := setupEcho(svc)

	req := httptest.NewRequest(http.MethodGet, "/profiles/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var problem respond.ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to unmarshal problem: %v", err)
	}
	if problem.Detail != "profile not found" {
		t.Fatalf("expected detail 'profile not found', got %q", problem.Detail)
	}
}

func TestGetProfile_StoreError(t *testing.T) {
	svc := portfolio.NewMockStore()
	svc.Err = http.ErrHandlerTimeout
	e := setupEcho(svc)

	req := httptest.NewRequest(http.MethodGet, "/profiles/uid-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d; body: %s", rec.Code, rec.Body.String())
	}
}
