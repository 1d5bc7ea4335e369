package notification

import (
	"context"
	"fmt"

	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
)

// Notification is one entry in a club's join-request inbox. ID is the
// pending player record the captain acts on.
type Notification struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Message     string `json:"message"`
	AvatarURL   string `json:"avatarUrl"`
}

type Service interface {
	// Fetch returns the club's pending join requests as inbox entries,
	// joined with the requesters' public profiles.
	Fetch(ctx context.Context, clubID string) ([]Notification, error)
	// Agree approves the join request behind the notification.
	Agree(ctx context.Context, clubID string, playerID string) error
	// Disagree rejects the join request behind the notification.
	Disagree(ctx context.Context, playerID string) error
}

type service struct {
	memberships membership.Service
	users       user.Service
}

var _ Service = (*service)(nil)

func NewService(memberships membership.Service, users user.Service) Service {
	return &service{
		memberships: memberships,
		users:       users,
	}
}

func (s *service) Fetch(ctx context.Context, clubID string) ([]Notification, error) {
	pending, err := s.memberships.ListPending(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []Notification{}, nil
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.GetMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	return Build(pending, users), nil
}

func (s *service) Agree(ctx context.Context, clubID string, playerID string) error {
	return s.memberships.Approve(ctx, clubID, playerID)
}

func (s *service) Disagree(ctx context.Context, playerID string) error {
	return s.memberships.Reject(ctx, playerID)
}

// Build turns pending player records into inbox entries. Requesters with
// no readable profile show up as "A player".
func Build(pending []membership.Player, users map[string]user.User) []Notification {
	notifications := make([]Notification, 0, len(pending))
	for _, p := range pending {
		name := "A player"
		avatar := ""
		if u, ok := users[p.UserID]; ok && u.DisplayName != "" {
			name = u.DisplayName
			avatar = u.AvatarURL
		}
		notifications = append(notifications, Notification{
			ID:          p.ID,
			DisplayName: name,
			Message:     fmt.Sprintf("%s want to join your club", name),
			AvatarURL:   avatar,
		})
	}
	return notifications
}
