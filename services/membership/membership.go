package membership

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

// Service is the repository over Player records. Confirmed members and
// pending join requests live in the same collection, told apart by the
// sign of the number field.
type Service interface {
	// Get returns a single player record by id.
	Get(ctx context.Context, playerID string) (*Player, error)
	// ListConfirmed returns the club's confirmed members (number >= 0).
	ListConfirmed(ctx context.Context, clubID string) ([]Player, error)
	// ListPending returns the club's unapproved join requests (number < 0).
	ListPending(ctx context.Context, clubID string) ([]Player, error)
	// FindMembership returns the player record for (club, user) whether
	// confirmed or pending. Returns NotFound when none exists.
	FindMembership(ctx context.Context, clubID string, userID string) (*Player, error)
	// ListForUser returns every membership the user holds across clubs.
	ListForUser(ctx context.Context, userID string) ([]Player, error)
	// AddCaptain creates the founding captain record for a new club.
	AddCaptain(ctx context.Context, clubID string, userID string) error
	// RequestJoin creates a pending record for the user. Calling it twice
	// creates two pending records, the creation path does not de-duplicate.
	RequestJoin(ctx context.Context, clubID string, userID string) error
	// CancelRequest deletes the caller's own pending record. Confirmed
	// memberships are never touched, removing a member goes through Kick.
	// Returns NotFound when the user has no pending request in the club.
	CancelRequest(ctx context.Context, clubID string, userID string) error
	// Approve promotes a pending record to confirmed by assigning the next
	// sequential member number.
	Approve(ctx context.Context, clubID string, playerID string) error
	// Reject deletes a pending record outright.
	Reject(ctx context.Context, playerID string) error
	// Kick deletes a confirmed record unconditionally.
	Kick(ctx context.Context, playerID string) error
	// AdjustBalance adds delta to the player's stored balance. This is a
	// read followed by a write, concurrent adjustments can lose updates.
	AdjustBalance(ctx context.Context, playerID string, delta int) error
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const playersCollection = "Players"

// pendingNumber is the sentinel the mobile clients write for a join
// request, foundingNumber is the captain's number at club creation.
const (
	pendingNumber  = -1
	foundingNumber = 10
)

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

var NotFound = errors.New("player not found")

func (s *service) Get(ctx context.Context, playerID string) (*Player, error) {
	doc, err := s.db.Collection(playersCollection).Doc(playerID).Get(ctx)
	if err != nil {
		return nil, NotFound
	}
	return toPlayer(doc)
}

func (s *service) ListConfirmed(ctx context.Context, clubID string) ([]Player, error) {
	iter := s.db.Collection(playersCollection).
		Where("clubId", "==", clubID).
		Where("number", ">=", 0).
		Documents(ctx)
	return collectPlayers(iter)
}

func (s *service) ListPending(ctx context.Context, clubID string) ([]Player, error) {
	iter := s.db.Collection(playersCollection).
		Where("clubId", "==", clubID).
		Where("number", "<", 0).
		Documents(ctx)
	return collectPlayers(iter)
}

func (s *service) FindMembership(ctx context.Context, clubID string, userID string) (*Player, error) {
	docs, err := s.db.Collection(playersCollection).
		Where("clubId", "==", clubID).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, NotFound
	}
	return toPlayer(docs[0])
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Player, error) {
	iter := s.db.Collection(playersCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	return collectPlayers(iter)
}

func (s *service) AddCaptain(ctx context.Context, clubID string, userID string) error {
	p := Player{
		ClubID:  clubID,
		UserID:  userID,
		Number:  foundingNumber,
		Role:    RoleCaptain,
		Balance: 0,
	}
	_, _, err := s.db.Collection(playersCollection).Add(ctx, structs.Map(p))
	if err != nil {
		return fmt.Errorf("failed to create captain: %w", err)
	}
	return nil
}

func (s *service) RequestJoin(ctx context.Context, clubID string, userID string) error {
	p := Player{
		ClubID:  clubID,
		UserID:  userID,
		Number:  pendingNumber,
		Role:    RoleMember,
		Balance: 0,
	}
	_, _, err := s.db.Collection(playersCollection).Add(ctx, structs.Map(p))
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

func (s *service) CancelRequest(ctx context.Context, clubID string, userID string) error {
	// The number filter keeps a confirmed membership out of reach here, a
	// member calling cancel on their own club must not delete themselves.
	docs, err := s.db.Collection(playersCollection).
		Where("clubId", "==", clubID).
		Where("userId", "==", userID).
		Where("number", "<", 0).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return NotFound
	}
	return s.deletePlayer(ctx, docs[0].Ref.ID)
}

func (s *service) Approve(ctx context.Context, clubID string, playerID string) error {
	confirmed, err := s.ListConfirmed(ctx, clubID)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}
	number := NextMemberNumber(confirmed)

	// Read then write, two concurrent approvals can hand out the same
	// number. Accepted, there is no uniqueness constraint on numbers.
	_, err = s.db.Collection(playersCollection).Doc(playerID).Update(ctx, []firestore.Update{
		{Path: "number", Value: number},
	})
	if err != nil {
		return fmt.Errorf("failed to approve player: %w", err)
	}
	return nil
}

func (s *service) Reject(ctx context.Context, playerID string) error {
	return s.deletePlayer(ctx, playerID)
}

func (s *service) Kick(ctx context.Context, playerID string) error {
	return s.deletePlayer(ctx, playerID)
}

func (s *service) AdjustBalance(ctx context.Context, playerID string, delta int) error {
	p, err := s.Get(ctx, playerID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(playersCollection).Doc(playerID).Update(ctx, []firestore.Update{
		{Path: "balance", Value: p.Balance + delta},
	})
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

func (s *service) deletePlayer(ctx context.Context, playerID string) error {
	_, err := s.db.Collection(playersCollection).Doc(playerID).Delete(ctx)
	if err != nil {
		log.Error().Err(err).Str("playerId", playerID).Msg("failed to delete player")
		return err
	}
	return nil
}

func toPlayer(doc *firestore.DocumentSnapshot) (*Player, error) {
	p := Player{}
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to convert doc %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func collectPlayers(iter *firestore.DocumentIterator) ([]Player, error) {
	players := make([]Player, 0)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := toPlayer(doc)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, nil
}
