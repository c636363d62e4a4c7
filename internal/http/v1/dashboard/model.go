package dashboard

import "github.com/artashes-tumo/portfolio-hub/internal/view"

// Dashboard is the full editor page state for the authenticated user.
type Dashboard struct {
	Header   string            `json:"header"   cbor:"header"`
	Profile  view.ProfileView  `json:"profile"  cbor:"profile"`
	Projects view.ProjectsView `json:"projects" cbor:"projects"`
	Skills   view.SkillsView   `json:"skills"   cbor:"skills"`
	Contact  view.ContactView  `json:"contact"  cbor:"contact"`
}

// SaveResult is returned after a successful field-group save. The repainted
// regions come from the mutated local copy, not a re-fetch.
type SaveResult struct {
	Message  string             `json:"message"            cbor:"message"`
	Header   string             `json:"header,omitempty"   cbor:"header,omitempty"`
	Profile  *view.ProfileView  `json:"profile,omitempty"  cbor:"profile,omitempty"`
	Projects *view.ProjectsView `json:"projects,omitempty" cbor:"projects,omitempty"`
	Skills   *view.SkillsView   `json:"skills,omitempty"   cbor:"skills,omitempty"`
	Contact  *view.ContactView  `json:"contact,omitempty"  cbor:"contact,omitempty"`
}
