package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwk"
	"github.com/lestrrat-go/jwx/jwt"
)

type key string

const viewerKey key = "viewer_info"

// Viewer is the authenticated user attached to the request context.
type Viewer struct {
	UserID string
}

func FromContext(ctx context.Context) (*Viewer, bool) {
	v, ok := ctx.Value(string(viewerKey)).(*Viewer)
	return v, ok
}

// SetViewer attaches the viewer to the gin context so handlers can fetch
// it through FromContext.
func SetViewer(c *gin.Context, userID string) {
	c.Set(string(viewerKey), &Viewer{UserID: userID})
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
)

// certsURL serves the rotating signing keys for Firebase ID tokens.
const certsURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	// Check for the Authorization header.
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	// We expect a header value of the form "Bearer <token>", with 1 space after
	// Bearer, per RFC 6750.
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimPrefix(authHdr, prefix), nil
}

// Verifier validates Firebase ID tokens against the project's signing keys.
type Verifier struct {
	projectID string
	refresher *jwk.AutoRefresh
}

func NewVerifier(ctx context.Context, projectID string) *Verifier {
	ar := jwk.NewAutoRefresh(ctx)
	ar.Configure(certsURL)
	return &Verifier{
		projectID: projectID,
		refresher: ar,
	}
}

// Verify parses and validates the raw token and returns the auth uid.
func (v *Verifier) Verify(ctx context.Context, raw string) (string, error) {
	keySet, err := v.refresher.Fetch(ctx, certsURL)
	if err != nil {
		return "", fmt.Errorf("fetching signing keys: %w", err)
	}
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
	)
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	if token.Subject() == "" {
		return "", errors.New("token has no subject")
	}
	return token.Subject(), nil
}

// Authenticate attaches the viewer to the request when a bearer token is
// present. Requests without a token pass through anonymously, permission
// checks downstream resolve to NONE / false for them.
func Authenticate(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		jws, err := GetJWSFromRequest(c.Request)
		if err != nil {
			c.Next()
			return
		}
		uid, err := v.Verify(c.Request.Context(), jws)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		SetViewer(c, uid)
		c.Next()
	}
}

// RequireViewer rejects anonymous requests. Put it behind Authenticate on
// every mutating route.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := FromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
