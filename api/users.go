package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idobelieveinmiracle/clubs/services/user"
)

// GetMe (GET /me)
func (s Server) GetMe(c *gin.Context) {
	u, err := s.Users.Get(c.Request.Context(), viewerID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser (POST /users) stores the public profile row for the
// authenticated user. Registration itself happens against Firebase Auth
// on the client, this is the second step and can be retried if it failed
// the first time around.
func (s Server) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and displayName are required"})
		return
	}

	u := user.User{
		ID:          viewerID(c),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	if err := s.Users.Create(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// ImportAvatar (POST /users/avatar) copies a remote image into the avatar
// bucket and points the viewer's profile at the stored copy.
func (s Server) ImportAvatar(c *gin.Context) {
	var req ImportAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceUrl is required"})
		return
	}

	url, err := s.Users.ImportAvatar(c.Request.Context(), viewerID(c), req.SourceURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
