package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
)

// usersCollection matches the document layout of the original web client.
const usersCollection = "users"

// FirestoreStore implements Service against Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a store backed by the given Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

// Create writes the initial profile document for a new registration.
func (s *FirestoreStore) Create(ctx context.Context, uid string, params CreateParams) (*Profile, error) {
	p := NewProfile(uid, params.Email)
	if params.Name != "" {
		p.Name = params.Name
	}
	p.Username = params.Username

	if _, err := s.doc(uid).Create(ctx, p); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, uid)
		}
		return nil, fmt.Errorf("create profile %s: %w", uid, err)
	}
	return p, nil
}

// LoadOrCreate fetches the profile for uid, synthesizing and persisting the
// default blank record when none exists. The authenticated-self path never
// observes a not-found outcome.
func (s *FirestoreStore) LoadOrCreate(ctx context.Context, uid, fallbackEmail string) (*Profile, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err == nil {
		return profileFromSnapshot(uid, snap)
	}
	if status.Code(err) != codes.NotFound {
		return nil, fmt.Errorf("load profile %s: %w", uid, err)
	}

	p := NewProfile(uid, fallbackEmail)
	if _, err := s.doc(uid).Create(ctx, p); err != nil {
		// Lost a creation race; the winner's document is authoritative.
		if status.Code(err) == codes.AlreadyExists {
			snap, getErr := s.doc(uid).Get(ctx)
			if getErr != nil {
				return nil, fmt.Errorf("load profile %s: %w", uid, getErr)
			}
			return profileFromSnapshot(uid, snap)
		}
		return nil, fmt.Errorf("create default profile %s: %w", uid, err)
	}

	applog.LogInfo(ctx, "created default profile", slog.String("uid", uid))
	return p, nil
}

// GetPublic fetches the profile for uid without implicit creation.
func (s *FirestoreStore) GetPublic(ctx context.Context, uid string) (*Profile, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, uid)
		}
		return nil, fmt.Errorf("get profile %s: %w", uid, err)
	}
	return profileFromSnapshot(uid, snap)
}

// SaveCore persists the identity-card field group via merge update.
func (s *FirestoreStore) SaveCore(ctx context.Context, uid string, core CoreParams) error {
	return s.update(ctx, uid, []firestore.Update{
		{Path: "name", Value: core.Name},
		{Path: "username", Value: core.Username},
		{Path: "dateOfBirth", Value: core.DateOfBirth},
		{Path: "bio", Value: core.Bio},
		{Path: "profilePicUrl", Value: core.ProfilePicURL},
	})
}

// SaveContact persists the contact field group.
func (s *FirestoreStore) SaveContact(ctx context.Context, uid string, contact Contact) error {
	return s.update(ctx, uid, []firestore.Update{
		{Path: "contact", Value: contact},
	})
}

// SaveSkills persists the full skills list.
func (s *FirestoreStore) SaveSkills(ctx context.Context, uid string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	return s.update(ctx, uid, []firestore.Update{
		{Path: "skills", Value: skills},
	})
}

// SaveProjects replaces the entire projects array.
func (s *FirestoreStore) SaveProjects(ctx context.Context, uid string, projects []Project) error {
	if projects == nil {
		projects = []Project{}
	}
	return s.update(ctx, uid, []firestore.Update{
		{Path: "projects", Value: projects},
	})
}

func (s *FirestoreStore) update(ctx context.Context, uid string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})
	if _, err := s.doc(uid).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, uid)
		}
		applog.LogWarn(ctx, "profile update failed",
			slog.String("uid", uid),
			slog.String("category", categorizeError(err)))
		return fmt.Errorf("update profile %s: %w", uid, err)
	}
	return nil
}

// ListAll materializes every profile document. The directory is small by
// design; search filters the returned slice in memory.
func (s *FirestoreStore) ListAll(ctx context.Context) ([]*Profile, error) {
	snaps, err := s.client.Collection(usersCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]*Profile, 0, len(snaps))
	for _, snap := range snaps {
		p, err := profileFromSnapshot(snap.Ref.ID, snap)
		if err != nil {
			applog.LogWarn(ctx, "skipping malformed profile document",
				slog.String("uid", snap.Ref.ID))
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Delete removes the profile document. Deleting a nonexistent profile is an
// ErrNotFound, matching the explicit lifecycle of account deletion.
func (s *FirestoreStore) Delete(ctx context.Context, uid string) error {
	if _, err := s.doc(uid).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, uid)
		}
		return fmt.Errorf("delete profile %s: %w", uid, err)
	}
	if _, err := s.doc(uid).Delete(ctx); err != nil {
		return fmt.Errorf("delete profile %s: %w", uid, err)
	}
	return nil
}

func profileFromSnapshot(uid string, snap *firestore.DocumentSnapshot) (*Profile, error) {
	var p Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", uid, err)
	}
	p.ID = uid
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	return &p, nil
}

var _ Service = (*FirestoreStore)(nil)
