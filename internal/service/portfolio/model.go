package portfolio

import "time"

// Profile is the persisted portfolio record for one identity. The document
// is keyed by the identity UID; ID mirrors the document key and is never
// stored inside the document itself.
type Profile struct {
	ID            string    `firestore:"-"             json:"id"`
	Name          string    `firestore:"name"          json:"name"`
	Username      string    `firestore:"username"      json:"username"`
	DateOfBirth   string    `firestore:"dateOfBirth"   json:"dateOfBirth"`
	Bio           string    `firestore:"bio"           json:"bio"`
	ProfilePicURL string    `firestore:"profilePicUrl" json:"profilePicUrl"`
	Skills        []string  `firestore:"skills"        json:"skills"`
	Projects      []Project `firestore:"projects"      json:"projects"`
	Contact       Contact   `firestore:"contact"       json:"contact"`
	CreatedAt     time.Time `firestore:"createdAt"     json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt"     json:"updatedAt"`
}

// Project is a single portfolio entry. Title and description are required;
// link is optional.
type Project struct {
	Title       string `firestore:"title"       json:"title"`
	Description string `firestore:"description" json:"description"`
	Link        string `firestore:"link"        json:"link"`
}

// Contact holds the optional contact channels of a profile.
type Contact struct {
	Email   string `firestore:"email"   json:"email"`
	Socials string `firestore:"socials" json:"socials"`
	Website string `firestore:"website" json:"website"`
	Phone   string `firestore:"phone"   json:"phone"`
}

// NewProfile builds the default blank record written on first access.
// The fallback email doubles as a provisional display name.
func NewProfile(uid, fallbackEmail string) *Profile {
	name := fallbackEmail
	if name == "" {
		name = "New user"
	}
	now := time.Now().UTC()
	return &Profile{
		ID:        uid,
		Name:      name,
		Skills:    []string{},
		Projects:  []Project{},
		Contact:   Contact{Email: fallbackEmail},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy. Slices are copied so callers can mutate the
// clone without aliasing stored state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Projects = append([]Project(nil), p.Projects...)
	return &clone
}
