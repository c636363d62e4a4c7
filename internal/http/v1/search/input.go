package search

// Search modes.
const (
	ModeUsers    = "users"
	ModeProjects = "projects"
)

// Input defines query parameters for search.
type Input struct {
	Query string `query:"q"    validate:"omitempty,max=200"`
	Type  string `query:"type" validate:"omitempty,oneof=users projects"`
}

// UserResult is one matched profile in user mode.
type UserResult struct {
	ID           string `json:"id"           cbor:"id"`
	Name         string `json:"name"         cbor:"name"`
	Username     string `json:"username"     cbor:"username"`
	ProjectCount int    `json:"projectCount" cbor:"projectCount"`
}

// ProjectResult is one matched project in project mode.
type ProjectResult struct {
	Title       string `json:"title"          cbor:"title"`
	Description string `json:"description"    cbor:"description"`
	Link        string `json:"link,omitempty" cbor:"link,omitempty"`
	Owner       string `json:"owner"          cbor:"owner"`
	OwnerID     string `json:"ownerId"        cbor:"ownerId"`
}

// Response is the rendered search result set for the active mode.
type Response struct {
	Query    string          `json:"query"              cbor:"query"`
	Type     string          `json:"type"               cbor:"type"`
	Count    int             `json:"count"              cbor:"count"`
	Message  string          `json:"message"            cbor:"message"`
	Users    []UserResult    `json:"users,omitempty"    cbor:"users,omitempty"`
	Projects []ProjectResult `json:"projects,omitempty" cbor:"projects,omitempty"`
}
