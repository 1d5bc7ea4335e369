package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/idobelieveinmiracle/clubs/services/club"
	"github.com/idobelieveinmiracle/clubs/services/membership"
)

// SearchClubs (GET /clubs/search?q=)
func (s Server) SearchClubs(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []club.Club{})
		return
	}
	clubs, err := s.Clubs.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GetMyClubs (GET /clubs)
func (s Server) GetMyClubs(c *gin.Context) {
	clubs, err := s.Clubs.ListForUser(c.Request.Context(), viewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load clubs"})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// CreateClub (POST /clubs) accepts a multipart form with a name field and
// an optional avatar file. The creator becomes the club's captain.
func (s Server) CreateClub(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	var avatar io.Reader
	if file, err := c.FormFile("avatar"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable avatar"})
			return
		}
		defer f.Close()
		avatar = f
	}

	created, err := s.Clubs.Create(c.Request.Context(), name, viewerID(c), avatar)
	if err != nil {
		log.Error().Err(err).Msg("failed to create club")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create club"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClubDetails (GET /clubs/:clubId) returns the club together with its
// member list, matches and the action the viewer may take. The member and
// pending lists are separate reads, the action reflects whatever state
// each one observed.
func (s Server) GetClubDetails(c *gin.Context) {
	ctx := c.Request.Context()
	clubID := c.Param("clubId")

	clubData, err := s.Clubs.Get(ctx, clubID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		return
	}

	players, err := s.Memberships.ListConfirmed(ctx, clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load players"})
		return
	}
	users, err := s.Users.GetMap(ctx, userIDs(players))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load players"})
		return
	}
	players = attachProfiles(players, users)

	matches, err := s.Matches.ListByClub(ctx, clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load matches"})
		return
	}

	action := membership.ActionNone
	if viewer := viewerID(c); viewer != "" {
		pending, err := s.Memberships.ListPending(ctx, clubID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load players"})
			return
		}
		action = membership.ResolveAction(viewer, players, pending)
	}

	c.JSON(http.StatusOK, ClubDetailsResponse{
		Club:    *clubData,
		Players: players,
		Matches: matches,
		Action:  action,
	})
}

// AskToJoin (POST /clubs/:clubId/join)
func (s Server) AskToJoin(c *gin.Context) {
	clubID := c.Param("clubId")
	if _, err := s.Clubs.Get(c.Request.Context(), clubID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		return
	}
	if err := s.Memberships.RequestJoin(c.Request.Context(), clubID, viewerID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to ask to join"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelAsk (DELETE /clubs/:clubId/join)
func (s Server) CancelAsk(c *gin.Context) {
	err := s.Memberships.CancelRequest(c.Request.Context(), c.Param("clubId"), viewerID(c))
	if err != nil {
		if errors.Is(err, membership.NotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no join request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetNotifications (GET /clubs/:clubId/notifications)
func (s Server) GetNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	clubID := c.Param("clubId")

	clubData, err := s.Clubs.Get(ctx, clubID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		return
	}
	if !s.requireManager(c, clubID) {
		return
	}

	notifications, err := s.Notifications.Fetch(ctx, clubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, NotificationsResponse{
		Club:          *clubData,
		Notifications: notifications,
	})
}
