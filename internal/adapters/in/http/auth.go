package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey         = "fulfillment.actor"
	authenticatedContextKey = "fulfillment.authenticated"
)

var ErrSystemRoleInToken = errors.New("system role cannot be granted by a user token")

// AuthConfig configures actor resolution.
type AuthConfig struct {
	// JWTSecret verifies HS256 user tokens. Empty rejects every user token.
	JWTSecret []byte

	// InternalToken is the shared secret of internal callers (payment
	// callbacks, jobs). It resolves to the system actor.
	InternalToken string
}

// ActorClaims are the claims of a user token.
type ActorClaims struct {
	UserID uint64 `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a user token for the given actor.
func IssueToken(secret []byte, userID uint64, role kernel.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ActorClaims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ActorMiddleware resolves the caller from the Authorization header. A request
// without the header continues as a guest; a malformed or invalid token is
// rejected with 401.
func ActorMiddleware(cfg AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				ctx.Set(actorContextKey, kernel.NewGuestActor())
				ctx.Set(authenticatedContextKey, false)
				return next(ctx)
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return unauthorized(ctx, "missing or invalid token")
			}

			actor, err := resolveActor(cfg, strings.TrimSpace(token))
			if err != nil {
				ctx.Logger().Debugf("token rejected: %v", err)
				return unauthorized(ctx, "invalid token")
			}

			ctx.Set(actorContextKey, actor)
			ctx.Set(authenticatedContextKey, true)
			return next(ctx)
		}
	}
}

func resolveActor(cfg AuthConfig, token string) (kernel.Actor, error) {
	if cfg.InternalToken != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(cfg.InternalToken)) == 1 {
		return kernel.SystemActor(), nil
	}
	if len(cfg.JWTSecret) == 0 {
		return kernel.Actor{}, errors.New("user tokens are not accepted")
	}

	claims := &ActorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return cfg.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return kernel.Actor{}, err
	}
	if !parsed.Valid {
		return kernel.Actor{}, errors.New("token is not valid")
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("role claim: %w", err)
	}
	if role == kernel.RoleSystem {
		return kernel.Actor{}, ErrSystemRoleInToken
	}
	return kernel.NewActor(claims.UserID, role)
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{Code: http.StatusUnauthorized, Message: message})
}

// actorFrom returns the resolved actor, or a guest when no middleware ran.
func actorFrom(ctx echo.Context) kernel.Actor {
	if actor, ok := ctx.Get(actorContextKey).(kernel.Actor); ok {
		return actor
	}
	return kernel.NewGuestActor()
}

func isAuthenticated(ctx echo.Context) bool {
	authenticated, _ := ctx.Get(authenticatedContextKey).(bool)
	return authenticated
}
