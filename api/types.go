package api

import (
	"github.com/idobelieveinmiracle/clubs/services/club"
	"github.com/idobelieveinmiracle/clubs/services/match"
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/notification"
)

type Pong struct {
	Ping string `json:"ping"`
}

type CreateUserRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	AvatarURL   string `json:"avatarUrl"`
}

type ImportAvatarRequest struct {
	SourceURL string `json:"sourceUrl" binding:"required"`
}

type ClubDetailsResponse struct {
	Club    club.Club             `json:"club"`
	Players []membership.Player   `json:"players"`
	Matches []match.Match         `json:"matches"`
	Action  membership.ActionType `json:"action"`
}

type PlayerDetailsResponse struct {
	Player     membership.Player `json:"player"`
	ViewerRole membership.Role   `json:"viewerRole"`
	NetBalance int               `json:"netBalance"`
}

// Delta and Time are pointers because gin's required binding treats the
// zero value as missing, and both fields legitimately take zero.
type AdjustBalanceRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

type CreateMatchRequest struct {
	Location string `json:"location" binding:"required"`
	Time     *int64 `json:"time" binding:"required"`
	Cost     int    `json:"cost"`
}

type MatchDetailsResponse struct {
	Match       match.Match         `json:"match"`
	Players     []membership.Player `json:"players"`
	JoinEnabled bool                `json:"joinEnabled"`
}

type NotificationsResponse struct {
	Club          club.Club                   `json:"club"`
	Notifications []notification.Notification `json:"notifications"`
}
