package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idobelieveinmiracle/clubs/services/club"
	"github.com/idobelieveinmiracle/clubs/services/ledger"
	"github.com/idobelieveinmiracle/clubs/services/match"
	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/notification"
	"github.com/idobelieveinmiracle/clubs/services/user"
	"github.com/idobelieveinmiracle/clubs/validator"
)

type Server struct {
	Users         user.Service
	Clubs         club.Service
	Memberships   membership.Service
	Matches       match.Service
	Ledger        ledger.Service
	Notifications notification.Service
}

func NewServer(
	users user.Service,
	clubs club.Service,
	memberships membership.Service,
	matches match.Service,
	ledgers ledger.Service,
	notifications notification.Service,
) Server {
	return Server{
		Users:         users,
		Clubs:         clubs,
		Memberships:   memberships,
		Matches:       matches,
		Ledger:        ledgers,
		Notifications: notifications,
	}
}

// RegisterRoutes wires the HTTP surface. Reads work anonymously and
// resolve to NONE / false permissions, writes require a viewer.
func (s Server) RegisterRoutes(r *gin.Engine, verifier *validator.Verifier) {
	r.Use(RequestID())
	r.Use(validator.Authenticate(verifier))

	r.GET("/ping", s.GetPing)
	r.GET("/clubs/search", s.SearchClubs)
	r.GET("/clubs/:clubId", s.GetClubDetails)
	r.GET("/matches/:matchId", s.GetMatchDetails)
	r.GET("/players/:playerId", s.GetPlayerDetails)

	authed := r.Group("/", validator.RequireViewer())
	authed.GET("/me", s.GetMe)
	authed.POST("/users", s.CreateUser)
	authed.POST("/users/avatar", s.ImportAvatar)
	authed.GET("/clubs", s.GetMyClubs)
	authed.POST("/clubs", s.CreateClub)
	authed.POST("/clubs/:clubId/join", s.AskToJoin)
	authed.DELETE("/clubs/:clubId/join", s.CancelAsk)
	authed.GET("/clubs/:clubId/notifications", s.GetNotifications)
	authed.POST("/clubs/:clubId/matches", s.CreateMatch)
	authed.POST("/players/:playerId/approve", s.ApprovePlayer)
	authed.POST("/players/:playerId/reject", s.RejectPlayer)
	authed.POST("/players/:playerId/balance", s.AdjustBalance)
	authed.DELETE("/players/:playerId", s.KickPlayer)
	authed.POST("/matches/:matchId/join", s.JoinMatch)
}

// GetPing (GET /ping)
func (Server) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, Pong{Ping: "pong"})
}
