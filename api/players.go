package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/idobelieveinmiracle/clubs/services/membership"
)

// GetPlayerDetails (GET /players/:playerId) returns the player joined
// with their public profile, the viewer's role in the player's club and
// the derived net balance.
func (s Server) GetPlayerDetails(c *gin.Context) {
	ctx := c.Request.Context()

	player, err := s.Memberships.Get(ctx, c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	users, err := s.Users.GetMap(ctx, []string{player.UserID})
	if err == nil {
		if u, ok := users[player.UserID]; ok {
			player.User = u
		}
	}

	// Non-members view as plain members.
	viewerRole := membership.RoleMember
	if viewer := viewerID(c); viewer != "" {
		if p, err := s.Memberships.FindMembership(ctx, player.ClubID, viewer); err == nil {
			viewerRole = p.Role
		}
	}

	netBalance, err := s.Ledger.NetBalanceForPlayer(ctx, *player)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, PlayerDetailsResponse{
		Player:     *player,
		ViewerRole: viewerRole,
		NetBalance: netBalance,
	})
}

// ApprovePlayer (POST /players/:playerId/approve) promotes a pending join
// request to a confirmed membership.
func (s Server) ApprovePlayer(c *gin.Context) {
	ctx := c.Request.Context()

	player, err := s.Memberships.Get(ctx, c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	if player.Confirmed() {
		c.JSON(http.StatusConflict, gin.H{"error": "player already confirmed"})
		return
	}
	if !s.requireManager(c, player.ClubID) {
		return
	}

	if err := s.Notifications.Agree(ctx, player.ClubID, player.ID); err != nil {
		log.Error().Err(err).Str("playerId", player.ID).Msg("failed to approve player")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RejectPlayer (POST /players/:playerId/reject) deletes a pending join
// request.
func (s Server) RejectPlayer(c *gin.Context) {
	ctx := c.Request.Context()

	player, err := s.Memberships.Get(ctx, c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	if player.Confirmed() {
		c.JSON(http.StatusConflict, gin.H{"error": "player already confirmed"})
		return
	}
	if !s.requireManager(c, player.ClubID) {
		return
	}

	if err := s.Notifications.Disagree(ctx, player.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustBalance (POST /players/:playerId/balance)
func (s Server) AdjustBalance(c *gin.Context) {
	ctx := c.Request.Context()

	var req AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	player, err := s.Memberships.Get(ctx, c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	if !s.requireManager(c, player.ClubID) {
		return
	}

	if err := s.Memberships.AdjustBalance(ctx, player.ID, *req.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update balance"})
		return
	}
	c.Status(http.StatusNoContent)
}

// KickPlayer (DELETE /players/:playerId) removes a confirmed member.
// Nothing stops a captain from kicking themselves or a club's only
// captain, the stored data has no such invariant.
func (s Server) KickPlayer(c *gin.Context) {
	ctx := c.Request.Context()

	player, err := s.Memberships.Get(ctx, c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}
	if !s.requireManager(c, player.ClubID) {
		return
	}

	if err := s.Memberships.Kick(ctx, player.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to kick player"})
		return
	}
	c.Status(http.StatusNoContent)
}
