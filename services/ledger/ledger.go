package ledger

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/idobelieveinmiracle/clubs/services/match"
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/utils"
)

// NetBalance derives the player's displayed balance: the raw stored
// balance minus the cost of every match the player attended. Each
// attendee owes the match's full listed cost, the cost is not divided
// among attendees. That matches the shipped clients, so changing it here
// would change every displayed balance at once.
func NetBalance(p membership.Player, matches []match.Match) int {
	owed := 0
	for _, m := range matches {
		owed += m.Cost
	}
	return p.Balance - owed
}

// Service computes net balances from the stored ledger data.
type Service interface {
	// MatchesForPlayer returns the matches whose roster contains the player.
	MatchesForPlayer(ctx context.Context, playerID string) ([]match.Match, error)
	// NetBalanceForPlayer loads the player's attended matches and derives
	// the net balance from the stored raw balance.
	NetBalanceForPlayer(ctx context.Context, p membership.Player) (int, error)
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const matchesCollection = "Matches"

func NewService(db *firestore.Client) Service {
	return &service{db: db}
}

func (s *service) MatchesForPlayer(ctx context.Context, playerID string) ([]match.Match, error) {
	docs, err := s.db.Collection(matchesCollection).
		Where("players", "array-contains", playerID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for player %s: %w", playerID, err)
	}
	// Only the cost is read here, document ids are not needed.
	return utils.GetAllToStructs[match.Match](docs)
}

func (s *service) NetBalanceForPlayer(ctx context.Context, p membership.Player) (int, error) {
	matches, err := s.MatchesForPlayer(ctx, p.ID)
	if err != nil {
		return 0, err
	}
	return NetBalance(p, matches), nil
}
