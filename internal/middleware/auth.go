package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"
)

var errInvalidToken = errors.New("invalid token")

// Claims carry the user id in "sub" and the role in "role".
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func ParseToken(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// Auth requires a valid bearer token and puts the caller into the context.
func Auth(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.Set("error", domain.ErrNotAuthenticated.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrNotAuthenticated.Error()})
			return
		}

		claims, err := ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": errInvalidToken.Error()})
			return
		}

		role := domain.Role(claims.Role)
		if !role.Valid() {
			role = domain.RoleUser
		}
		SetActor(c, domain.Actor{UserID: claims.Subject, Role: role})

		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := actorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrNotAuthenticated.Error()})
			return
		}
		if !actor.IsAdmin() {
			c.Set("error", domain.ErrAdminOnly.Error())
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrAdminOnly.Error()})
			return
		}

		c.Next()
	}
}

func SetActor(c *ginext.Context, actor domain.Actor) {
	c.Set(actorIDKey, actor.UserID)
	c.Set(actorRoleKey, string(actor.Role))
}

// ActorFromContext returns the zero Actor for anonymous requests.
func ActorFromContext(c *ginext.Context) domain.Actor {
	actor, _ := actorFrom(c)
	return actor
}

func actorFrom(c *ginext.Context) (domain.Actor, bool) {
	id := c.GetString(actorIDKey)
	if id == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Role: domain.Role(c.GetString(actorRoleKey))}, true
}
