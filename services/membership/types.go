package membership

import (
	"fmt"

	"github.com/idobelieveinmiracle/clubs/services/user"
)

// Role is the privilege tier of a confirmed club member. The stored int
// value is fixed by the mobile clients, lower means more privilege.
type Role int

const (
	RoleCaptain    Role = 1
	RoleSubCaptain Role = 2
	RoleMember     Role = 3
)

func RoleFromValue(value int) (Role, error) {
	switch Role(value) {
	case RoleCaptain, RoleSubCaptain, RoleMember:
		return Role(value), nil
	default:
		return 0, fmt.Errorf("invalid role value %d", value)
	}
}

// CanManage reports whether the role may add matches and handle join
// requests. Only set membership matters here, never the numeric order.
func (r Role) CanManage() bool {
	return r == RoleCaptain || r == RoleSubCaptain
}

func (r Role) String() string {
	switch r {
	case RoleCaptain:
		return "CAPTAIN"
	case RoleSubCaptain:
		return "SUB_CAPTAIN"
	case RoleMember:
		return "MEMBER"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Player is one membership record, one per (user, club) pair.
// Number >= 0 marks a confirmed member, a negative number marks a pending
// join request (the clients write -1).
type Player struct {
	ID      string `json:"playerId" firestore:"-" structs:"-"`
	ClubID  string `json:"clubId" firestore:"clubId" structs:"clubId"`
	UserID  string `json:"userId" firestore:"userId" structs:"userId"`
	Number  int    `json:"number" firestore:"number" structs:"number"`
	Role    Role   `json:"role" firestore:"role" structs:"role"`
	Balance int    `json:"balance" firestore:"balance" structs:"balance"`

	// User is the reconciled public profile, filled in by callers that
	// joined the player list against the Users collection.
	User user.User `json:"user" firestore:"-" structs:"-"`
}

// Confirmed reports whether the record is a full membership rather than a
// pending join request.
func (p Player) Confirmed() bool {
	return p.Number >= 0
}

// ActionType is what the viewing user may do on a club screen.
type ActionType string

const (
	ActionNone      ActionType = "NONE"
	ActionAskToJoin ActionType = "ASK_TO_JOIN"
	ActionCancelAsk ActionType = "CANCEL_ASK"
	ActionAddMatch  ActionType = "ADD_MATCH"
)
