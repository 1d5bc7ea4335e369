package match

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
)

type Service interface {
	// Create stores a new match for the club with an empty roster. The
	// captain-only policy is enforced by the caller, not here.
	Create(ctx context.Context, clubID string, location string, time int64, cost int) (*Match, error)
	Get(ctx context.Context, matchID string) (*Match, error)
	ListByClub(ctx context.Context, clubID string) ([]Match, error)
	// Roster resolves the match's attendee list into player records joined
	// with their public profiles. Roster ids that no longer resolve come
	// back as anonymous placeholders so the displayed count stays honest.
	Roster(ctx context.Context, matchID string) ([]membership.Player, error)
	// Join adds the user's player record for the match's owning club to
	// the roster. The roster write is read-then-write, concurrent joins
	// can race and one can be lost.
	Join(ctx context.Context, matchID string, userID string) JoinResult
	// JoinEligibility reports whether the user could join: not already on
	// the resolved roster and holding a membership in the match's club.
	JoinEligibility(ctx context.Context, matchID string, userID string, roster []membership.Player) bool
}

type service struct {
	db          *firestore.Client
	memberships membership.Service
	users       user.Service
}

var _ Service = (*service)(nil)

const (
	matchesCollection = "Matches"
	playersCollection = "Players"
)

func NewService(db *firestore.Client, memberships membership.Service, users user.Service) Service {
	return &service{
		db:          db,
		memberships: memberships,
		users:       users,
	}
}

var NotFound = errors.New("match not found")

func (s *service) Create(ctx context.Context, clubID string, location string, time int64, cost int) (*Match, error) {
	m := Match{
		ClubID:   clubID,
		Location: location,
		Time:     time,
		Cost:     cost,
		Players:  []string{},
	}
	ref, _, err := s.db.Collection(matchesCollection).Add(ctx, structs.Map(m))
	if err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}
	m.ID = ref.ID
	return &m, nil
}

func (s *service) Get(ctx context.Context, matchID string) (*Match, error) {
	doc, err := s.db.Collection(matchesCollection).Doc(matchID).Get(ctx)
	if err != nil {
		return nil, NotFound
	}
	return toMatch(doc)
}

func (s *service) ListByClub(ctx context.Context, clubID string) ([]Match, error) {
	iter := s.db.Collection(matchesCollection).
		Where("clubId", "==", clubID).
		Documents(ctx)
	matches := make([]Match, 0)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		m, err := toMatch(doc)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, nil
}

func (s *service) Roster(ctx context.Context, matchID string) ([]membership.Player, error) {
	m, err := s.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if len(m.Players) == 0 {
		return []membership.Player{}, nil
	}

	players, err := s.playersByIDs(ctx, m.Players)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(players))
	for _, p := range players {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := s.users.GetMap(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	return ReconcileRoster(players, users, len(m.Players)), nil
}

func (s *service) Join(ctx context.Context, matchID string, userID string) JoinResult {
	if userID == "" {
		return joinFailed("User data error")
	}

	m, err := s.Get(ctx, matchID)
	if err != nil || m.ClubID == "" {
		return joinFailed("Club data error")
	}

	player, err := s.memberships.FindMembership(ctx, m.ClubID, userID)
	if err != nil {
		return joinFailed("Player data error")
	}

	roster := AppendRoster(m.Players, player.ID)
	_, err = s.db.Collection(matchesCollection).Doc(matchID).Update(ctx, []firestore.Update{
		{Path: "players", Value: roster},
	})
	if err != nil {
		log.Error().Err(err).Str("matchId", matchID).Msg("failed to update roster")
		return joinFailed("Join match failed")
	}
	return JoinResult{Success: true}
}

func (s *service) JoinEligibility(ctx context.Context, matchID string, userID string, roster []membership.Player) bool {
	if userID == "" {
		return false
	}
	if InRoster(roster, userID) {
		return false
	}
	m, err := s.Get(ctx, matchID)
	if err != nil {
		return false
	}
	if _, err := s.memberships.FindMembership(ctx, m.ClubID, userID); err != nil {
		return false
	}
	return true
}

func (s *service) playersByIDs(ctx context.Context, ids []string) ([]membership.Player, error) {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, s.db.Collection(playersCollection).Doc(id))
	}
	docs, err := s.db.Collection(playersCollection).
		Where(firestore.DocumentID, "in", refs).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster players: %w", err)
	}
	players := make([]membership.Player, 0, len(docs))
	for _, doc := range docs {
		p := membership.Player{}
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		players = append(players, p)
	}
	return players, nil
}

func toMatch(doc *firestore.DocumentSnapshot) (*Match, error) {
	m := Match{}
	if err := doc.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
	}
	m.ID = doc.Ref.ID
	return &m, nil
}
