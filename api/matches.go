package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateMatch (POST /clubs/:clubId/matches)
func (s Server) CreateMatch(c *gin.Context) {
	clubID := c.Param("clubId")

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and time are required"})
		return
	}
	if !s.requireManager(c, clubID) {
		return
	}

	created, err := s.Matches.Create(c.Request.Context(), clubID, req.Location, *req.Time, req.Cost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Save error!"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMatchDetails (GET /matches/:matchId) returns the match, its resolved
// roster and whether the viewer could join.
func (s Server) GetMatchDetails(c *gin.Context) {
	ctx := c.Request.Context()
	matchID := c.Param("matchId")

	m, err := s.Matches.Get(ctx, matchID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	players, err := s.Matches.Roster(ctx, matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load players"})
		return
	}

	joinEnabled := false
	if viewer := viewerID(c); viewer != "" {
		joinEnabled = s.Matches.JoinEligibility(ctx, matchID, viewer, players)
	}

	c.JSON(http.StatusOK, MatchDetailsResponse{
		Match:       *m,
		Players:     players,
		JoinEnabled: joinEnabled,
	})
}

// JoinMatch (POST /matches/:matchId/join)
func (s Server) JoinMatch(c *gin.Context) {
	result := s.Matches.Join(c.Request.Context(), c.Param("matchId"), viewerID(c))
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
