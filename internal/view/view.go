// Package view maps profile records to presentation view-models. Renderers
// are pure functions: they accept a Profile (or nil for the empty/guest
// state), never read prior output, and always substitute defined placeholder
// text for missing fields instead of producing blank regions.
package view

import (
	"fmt"

	"github.com/artashes-tumo/portfolio-hub/internal/platform/timeutil"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
)

// Placeholder text for empty fields and regions.
const (
	PlaceholderName   = "Unnamed user"
	PlaceholderHandle = "No username"
	PlaceholderDOB    = "Not provided"
	PlaceholderBio    = "No bio yet."
	EmptySkillsText   = "No skills added yet."
	EmptyProjectsText = "No projects yet."
	EmptyContactText  = "No contact information provided."
)

// ProfileView is the rendered identity card of a profile.
type ProfileView struct {
	ID          string        `json:"id"          cbor:"id"`
	Name        string        `json:"name"        cbor:"name"`
	Username    string        `json:"username"    cbor:"username"`
	DateOfBirth string        `json:"dateOfBirth" cbor:"dateOfBirth"`
	Bio         string        `json:"bio"         cbor:"bio"`
	PictureURL  string        `json:"pictureUrl,omitempty" cbor:"pictureUrl,omitempty"`
	JoinedAt    timeutil.Time `json:"joinedAt"    cbor:"joinedAt"`
}

// ProjectCard is one rendered project. Link is omitted entirely when the
// project has none, so an empty link never produces a link affordance.
type ProjectCard struct {
	Title       string `json:"title"          cbor:"title"`
	Description string `json:"description"    cbor:"description"`
	Link        string `json:"link,omitempty" cbor:"link,omitempty"`
}

// ProjectsView is the rendered projects region.
type ProjectsView struct {
	Projects []ProjectCard `json:"projects"        cbor:"projects"`
	Empty    string        `json:"empty,omitempty" cbor:"empty,omitempty"`
}

// SkillsView is the rendered skills region.
type SkillsView struct {
	Skills []string `json:"skills"          cbor:"skills"`
	Empty  string   `json:"empty,omitempty" cbor:"empty,omitempty"`
}

// ContactEntry is one labeled contact channel.
type ContactEntry struct {
	Label string `json:"label" cbor:"label"`
	Value string `json:"value" cbor:"value"`
}

// ContactView is the rendered contact region. Only present channels appear.
type ContactView struct {
	Entries []ContactEntry `json:"entries"         cbor:"entries"`
	Empty   string         `json:"empty,omitempty" cbor:"empty,omitempty"`
}

// RenderProfile renders the identity card.
func RenderProfile(p *portfolio.Profile) ProfileView {
	if p == nil {
		p = &portfolio.Profile{}
	}
	v := ProfileView{
		ID:          p.ID,
		Name:        p.Name,
		Username:    PlaceholderHandle,
		DateOfBirth: p.DateOfBirth,
		Bio:         p.Bio,
		PictureURL:  p.ProfilePicURL,
		JoinedAt:    timeutil.Time{Time: p.CreatedAt},
	}
	if v.Name == "" {
		v.Name = PlaceholderName
	}
	if p.Username != "" {
		v.Username = "@" + p.Username
	}
	if v.DateOfBirth == "" {
		v.DateOfBirth = PlaceholderDOB
	}
	if v.Bio == "" {
		v.Bio = PlaceholderBio
	}
	return v
}

// RenderProjects renders the projects region in stored order.
func RenderProjects(p *portfolio.Profile) ProjectsView {
	if p == nil || len(p.Projects) == 0 {
		return ProjectsView{Projects: []ProjectCard{}, Empty: EmptyProjectsText}
	}
	cards := make([]ProjectCard, len(p.Projects))
	for i, project := range p.Projects {
		cards[i] = ProjectCard{
			Title:       project.Title,
			Description: project.Description,
			Link:        project.Link,
		}
	}
	return ProjectsView{Projects: cards}
}

// RenderSkills renders the skills region.
func RenderSkills(p *portfolio.Profile) SkillsView {
	if p == nil || len(p.Skills) == 0 {
		return SkillsView{Skills: []string{}, Empty: EmptySkillsText}
	}
	return SkillsView{Skills: append([]string{}, p.Skills...)}
}

// RenderContact renders the contact region, skipping absent channels.
func RenderContact(p *portfolio.Profile) ContactView {
	entries := []ContactEntry{}
	if p != nil {
		channels := []ContactEntry{
			{Label: "Email", Value: p.Contact.Email},
			{Label: "Socials", Value: p.Contact.Socials},
			{Label: "Website", Value: p.Contact.Website},
			{Label: "Phone", Value: p.Contact.Phone},
		}
		for _, entry := range channels {
			if entry.Value != "" {
				entries = append(entries, entry)
			}
		}
	}
	if len(entries) == 0 {
		return ContactView{Entries: entries, Empty: EmptyContactText}
	}
	return ContactView{Entries: entries}
}

// HeaderLine renders the dashboard header identifying the current user.
func HeaderLine(p *portfolio.Profile) string {
	name := "Unnamed"
	username := "no username"
	if p != nil {
		if p.Name != "" {
			name = p.Name
		}
		if p.Username != "" {
			username = p.Username
		}
	}
	return fmt.Sprintf("%s (%s)", name, username)
}

// OwnerLine renders the attribution line of a search result.
func OwnerLine(p *portfolio.Profile) string {
	if p == nil || p.Name == "" {
		if p != nil && p.Username != "" {
			return fmt.Sprintf("%s (@%s)", PlaceholderName, p.Username)
		}
		return PlaceholderName
	}
	if p.Username == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (@%s)", p.Name, p.Username)
}
