package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/idobelieveinmiracle/clubs/clients/gcp"
)

type Service interface {
	// Get returns the public profile stored for the given auth uid.
	Get(ctx context.Context, ID string) (*User, error)
	// Create writes the public profile row for a freshly registered user.
	// The document is keyed by the auth uid so profile reads stay point lookups.
	Create(ctx context.Context, u User) error
	// GetMap returns the profiles for the given uids keyed by uid. Missing
	// profiles are simply absent from the map, callers substitute placeholders.
	GetMap(ctx context.Context, ids []string) (map[string]User, error)
	// ImportAvatar fetches an image from a remote URL, stores a copy in the
	// avatar bucket and points the user's profile at the stored copy.
	ImportAvatar(ctx context.Context, userID string, sourceURL string) (string, error)
}

type userService struct {
	db     *firestore.Client
	http   *resty.Client
	bucket string
}

var _ Service = (*userService)(nil)

const usersCollection = "Users"

func NewService(client *firestore.Client, bucket string) Service {
	return &userService{
		db:     client,
		http:   resty.New().SetTimeout(30 * time.Second),
		bucket: bucket,
	}
}

var NotFound = errors.New("user not found")

func (s *userService) Get(ctx context.Context, ID string) (*User, error) {
	doc, err := s.db.Collection(usersCollection).Doc(ID).Get(ctx)
	if err != nil {
		return nil, NotFound
	}
	u := User{}
	if err := doc.DataTo(&u); err != nil {
		return nil, err
	}
	u.ID = doc.Ref.ID
	return &u, nil
}

func (s *userService) Create(ctx context.Context, u User) error {
	if u.ID == "" {
		return errors.New("user id is empty")
	}
	_, err := s.db.Collection(usersCollection).Doc(u.ID).Set(ctx, map[string]any{
		"displayName": u.DisplayName,
		"avatarUrl":   u.AvatarURL,
		"email":       u.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to create public profile: %w", err)
	}
	return nil
}

func (s *userService) GetMap(ctx context.Context, ids []string) (map[string]User, error) {
	result := make(map[string]User)
	if len(ids) == 0 {
		return result, nil
	}
	docs, err := s.db.Collection(usersCollection).
		Where(firestore.DocumentID, "in", docRefs(s.db, usersCollection, ids)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, doc := range docs {
		u := User{}
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
		}
		u.ID = doc.Ref.ID
		result[u.ID] = u
	}
	return result, nil
}

func (s *userService) ImportAvatar(ctx context.Context, userID string, sourceURL string) (string, error) {
	resp, err := s.http.R().SetContext(ctx).Get(sourceURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch avatar: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch avatar: status %d", resp.StatusCode())
	}

	path := fmt.Sprintf("users/avatars/%s_%d", userID, time.Now().UnixMilli())
	url, err := gcp.UploadAvatar(s.bucket, path, bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	_, err = s.db.Collection(usersCollection).Doc(userID).Set(ctx, map[string]any{
		"avatarUrl": url,
	}, firestore.MergeAll)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to save avatar url")
		return "", err
	}
	return url, nil
}

// docRefs maps raw ids to document refs for DocumentID "in" filters.
func docRefs(db *firestore.Client, collection string, ids []string) []*firestore.DocumentRef {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, db.Collection(collection).Doc(id))
	}
	return refs
}
