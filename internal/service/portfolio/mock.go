package portfolio

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockStore implements Service with in-memory storage for testing.
// Writes counts persisting operations so tests can assert write behavior.
type MockStore struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	Writes   int

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockStore creates a new in-memory profile store.
func NewMockStore() *MockStore {
	return &MockStore{profiles: make(map[string]*Profile)}
}

// Seed stores a profile directly, bypassing write counting.
func (m *MockStore) Seed(p *Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p.Clone()
}

func (m *MockStore) Create(_ context.Context, uid string, params CreateParams) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[uid]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, uid)
	}

	p := NewProfile(uid, params.Email)
	if params.Name != "" {
		p.Name = params.Name
	}
	p.Username = params.Username

	m.profiles[uid] = p.Clone()
	m.Writes++
	return p, nil
}

func (m *MockStore) LoadOrCreate(_ context.Context, uid, fallbackEmail string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.profiles[uid]; ok {
		return p.Clone(), nil
	}

	p := NewProfile(uid, fallbackEmail)
	m.profiles[uid] = p.Clone()
	m.Writes++
	return p, nil
}

func (m *MockStore) GetPublic(_ context.Context, uid string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	return p.Clone(), nil
}

func (m *MockStore) SaveCore(_ context.Context, uid string, core CoreParams) error {
	return m.mutate(uid, func(p *Profile) {
		p.Name = core.Name
		p.Username = core.Username
		p.DateOfBirth = core.DateOfBirth
		p.Bio = core.Bio
		p.ProfilePicURL = core.ProfilePicURL
	})
}

func (m *MockStore) SaveContact(_ context.Context, uid string, contact Contact) error {
	return m.mutate(uid, func(p *Profile) {
		p.Contact = contact
	})
}

func (m *MockStore) SaveSkills(_ context.Context, uid string, skills []string) error {
	return m.mutate(uid, func(p *Profile) {
		p.Skills = append([]string{}, skills...)
	})
}

func (m *MockStore) SaveProjects(_ context.Context, uid string, projects []Project) error {
	return m.mutate(uid, func(p *Profile) {
		p.Projects = append([]Project{}, projects...)
	})
}

func (m *MockStore) mutate(uid string, apply func(*Profile)) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[uid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	apply(p)
	p.UpdatedAt = time.Now().UTC()
	m.Writes++
	return nil
}

func (m *MockStore) ListAll(_ context.Context) ([]*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := make([]*Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		profiles = append(profiles, p.Clone())
	}
	return profiles, nil
}

func (m *MockStore) Delete(_ context.Context, uid string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[uid]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, uid)
	}
	delete(m.profiles, uid)
	m.Writes++
	return nil
}

var _ Service = (*MockStore)(nil)
