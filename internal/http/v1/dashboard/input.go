package dashboard

// SaveProfileInput is the core field group edited on the dashboard.
// Validation is presence and size checks only; fields are free text.
type SaveProfileInput struct {
	Name          string `json:"name"          validate:"required,min=1,max=100"`
	Username      string `json:"username"      validate:"omitempty,max=100"`
	DateOfBirth   string `json:"dateOfBirth"   validate:"omitempty,max=100"`
	Bio           string `json:"bio"           validate:"omitempty,max=2000"`
	ProfilePicURL string `json:"profilePicUrl" validate:"omitempty,max=500"`
}

// SaveContactInput is the contact field group.
type SaveContactInput struct {
	Email   string `json:"email"   validate:"omitempty,max=200"`
	Socials string `json:"socials" validate:"omitempty,max=500"`
	Website string `json:"website" validate:"omitempty,max=500"`
	Phone   string `json:"phone"   validate:"omitempty,max=50"`
}

// SaveSkillsInput carries the comma-separated skills edit field.
type SaveSkillsInput struct {
	Skills string `json:"skills" validate:"omitempty,max=2000"`
}

// AddProjectInput is a new project entry. Title and description are
// required; link is optional.
type AddProjectInput struct {
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Link        string `json:"link"        validate:"omitempty,max=500"`
}
