package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bizdesk/backend/internal/domain/identity"
	"github.com/bizdesk/backend/internal/infrastructure/auth"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth context keys and header constants
const (
	CallerKey     = "caller"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds JWT middleware configuration
type AuthConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are exact paths that never require a token
	SkipPaths []string
	Logger    *zap.Logger
}

// DefaultAuthConfig returns the middleware configuration with the open
// endpoints: health, registration and login
func DefaultAuthConfig(jwtService *auth.JWTService) AuthConfig {
	return AuthConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
		},
	}
}

// Auth validates the bearer token and stores the caller identity in the
// gin context. Requests to non-skip paths without a valid token are
// rejected before any repository operation runs.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			rejectUnauthenticated(c, cfg, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			rejectUnauthenticated(c, cfg, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := cfg.JWTService.Validate(tokenString)
		if err != nil {
			reason := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				reason = "Token has expired"
			}
			rejectUnauthenticated(c, cfg, reason)
			return
		}

		caller, err := claims.Caller()
		if err != nil {
			rejectUnauthenticated(c, cfg, "Invalid token claims")
			return
		}

		c.Set(CallerKey, caller)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, caller.UserID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. It must run after
// Auth on the same route group.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}
		if !caller.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin role required"))
			return
		}
		c.Next()
	}
}

// GetCaller returns the authenticated caller stored by Auth
func GetCaller(c *gin.Context) (identity.Caller, bool) {
	value, exists := c.Get(CallerKey)
	if !exists {
		return identity.Caller{}, false
	}
	caller, ok := value.(identity.Caller)
	return caller, ok
}

func rejectUnauthenticated(c *gin.Context, cfg AuthConfig, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("reason", message))
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
