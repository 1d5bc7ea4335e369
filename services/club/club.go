package club

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"github.com/idobelieveinmiracle/clubs/clients/gcp"
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/set"
)

type Service interface {
	// Create inserts the club, makes the owner its captain and stores the
	// avatar. These are sequential writes with no rollback: a failure
	// partway through can leave a club without a captain or avatar.
	Create(ctx context.Context, name string, ownerID string, avatar io.Reader) (*Club, error)
	Get(ctx context.Context, clubID string) (*Club, error)
	// Search matches clubs by name prefix and by exact id, merged.
	Search(ctx context.Context, text string) ([]Club, error)
	// ListForUser returns the clubs the user holds a membership in,
	// pending requests included.
	ListForUser(ctx context.Context, userID string) ([]Club, error)
}

type service struct {
	db          *firestore.Client
	memberships membership.Service
	bucket      string
}

var _ Service = (*service)(nil)

const clubsCollection = "Clubs"

func NewService(db *firestore.Client, memberships membership.Service, bucket string) Service {
	return &service{
		db:          db,
		memberships: memberships,
		bucket:      bucket,
	}
}

var NotFound = errors.New("club not found")

func (s *service) Create(ctx context.Context, name string, ownerID string, avatar io.Reader) (*Club, error) {
	ref, _, err := s.db.Collection(clubsCollection).Add(ctx, map[string]any{
		"name":  name,
		"owner": ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save club: %w", err)
	}
	c := Club{ID: ref.ID, Name: name, Owner: ownerID}

	if err := s.memberships.AddCaptain(ctx, c.ID, ownerID); err != nil {
		// The club document already exists at this point. No rollback, the
		// orphan stays behind.
		return nil, err
	}

	if avatar == nil {
		return &c, nil
	}

	path := fmt.Sprintf("clubs/avatars/%s_%d", c.ID, time.Now().UnixMilli())
	url, err := gcp.UploadAvatar(s.bucket, path, avatar)
	if err != nil {
		log.Error().Err(err).Str("clubId", c.ID).Msg("failed to upload club avatar")
		return &c, nil
	}

	_, err = ref.Update(ctx, []firestore.Update{
		{Path: "avatarUrl", Value: url},
	})
	if err != nil {
		log.Error().Err(err).Str("clubId", c.ID).Msg("failed to save avatar url")
		return &c, nil
	}
	c.AvatarURL = url
	return &c, nil
}

func (s *service) Get(ctx context.Context, clubID string) (*Club, error) {
	doc, err := s.db.Collection(clubsCollection).Doc(clubID).Get(ctx)
	if err != nil {
		return nil, NotFound
	}
	return toClub(doc)
}

func (s *service) Search(ctx context.Context, text string) ([]Club, error) {
	byName, err := s.searchByName(ctx, text)
	if err != nil {
		return nil, err
	}

	results := byName
	if c, err := s.Get(ctx, text); err == nil {
		results = append(results, *c)
	}

	seen := set.New[string]()
	merged := make([]Club, 0, len(results))
	for _, c := range results {
		if seen.Contains(c.ID) {
			continue
		}
		seen.Add(c.ID)
		merged = append(merged, c)
	}
	return merged, nil
}

func (s *service) searchByName(ctx context.Context, text string) ([]Club, error) {
	iter := s.db.Collection(clubsCollection).
		OrderBy("name", firestore.Asc).
		StartAt(text).
		EndAt(text + "~").
		Documents(ctx)
	clubs := make([]Club, 0)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := toClub(doc)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Club, error) {
	players, err := s.memberships.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return []Club{}, nil
	}

	ids := set.New[string]()
	for _, p := range players {
		if p.ClubID != "" {
			ids.Add(p.ClubID)
		}
	}

	refs := make([]*firestore.DocumentRef, 0, ids.Size())
	for _, id := range ids.ToSlice() {
		refs = append(refs, s.db.Collection(clubsCollection).Doc(id))
	}
	docs, err := s.db.Collection(clubsCollection).
		Where(firestore.DocumentID, "in", refs).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load clubs: %w", err)
	}

	clubs := make([]Club, 0, len(docs))
	for _, doc := range docs {
		c, err := toClub(doc)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, nil
}

func toClub(doc *firestore.DocumentSnapshot) (*Club, error) {
	c := Club{}
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}
