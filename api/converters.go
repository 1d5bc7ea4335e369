package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idobelieveinmiracle/clubs/services/membership"
	"github.com/idobelieveinmiracle/clubs/services/user"
	"github.com/idobelieveinmiracle/clubs/validator"
)

// attachProfiles joins player records with their public profiles by user
// id. Players without a profile keep the bare user id.
func attachProfiles(players []membership.Player, users map[string]user.User) []membership.Player {
	result := make([]membership.Player, 0, len(players))
	for _, p := range players {
		if u, ok := users[p.UserID]; ok {
			p.User = u
		} else {
			p.User = user.User{ID: p.UserID}
		}
		result = append(result, p)
	}
	return result
}

func userIDs(players []membership.Player) []string {
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.UserID)
	}
	return ids
}

func viewerID(c *gin.Context) string {
	v, ok := validator.FromContext(c)
	if !ok {
		return ""
	}
	return v.UserID
}

// requireManager checks that the viewer is a captain or sub-captain of
// the club, writing a 403 otherwise. The stored data does not enforce
// this, the API edge is the only gate.
func (s Server) requireManager(c *gin.Context, clubID string) bool {
	p, err := s.Memberships.FindMembership(c.Request.Context(), clubID, viewerID(c))
	if err != nil || !p.Confirmed() || !p.Role.CanManage() {
		c.JSON(http.StatusForbidden, gin.H{"error": "captain rights required"})
		return false
	}
	return true
}
