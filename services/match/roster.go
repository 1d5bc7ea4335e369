package match

import (
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
	"github.com/idobelieveinmiracle/clubs/set"
)

// AppendRoster returns the roster with playerID appended. The roster is
// stored as a list but behaves as a set, joining twice leaves a single
// entry in place.
func AppendRoster(roster []string, playerID string) []string {
	s := set.FromSlice(roster)
	s.Add(playerID)
	return s.ToSlice()
}

// InRoster reports whether the user already appears among the resolved
// roster players.
func InRoster(players []membership.Player, userID string) bool {
	for _, p := range players {
		if p.User.ID == userID || p.UserID == userID {
			return true
		}
	}
	return false
}

// ReconcileRoster joins resolved players with their public profiles and
// pads the list back up to rosterSize with anonymous placeholders for
// roster ids that no longer resolve to a player record.
func ReconcileRoster(players []membership.Player, users map[string]user.User, rosterSize int) []membership.Player {
	result := make([]membership.Player, 0, rosterSize)
	for _, p := range players {
		if u, ok := users[p.UserID]; ok {
			p.User = u
		} else {
			p.User = user.User{ID: p.UserID}
		}
		result = append(result, p)
	}
	for len(result) < rosterSize {
		result = append(result, anonymousPlayer())
	}
	return result
}

func anonymousPlayer() membership.Player {
	return membership.Player{
		Number: 0,
		Role:   membership.RoleMember,
		User:   user.User{DisplayName: "Anonymous"},
	}
}
