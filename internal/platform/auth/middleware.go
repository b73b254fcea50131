// Package auth guards mutating operations with Firebase ID tokens.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/portfolio-api/internal/platform/logging"
)

// SchemeName is the OpenAPI security scheme name.
const SchemeName = "bearerAuth"

// Anonymous is the actor recorded when no user is authenticated.
const Anonymous = "anonymous"

type userContextKey struct{}

// SecurityScheme describes the bearer scheme for the OpenAPI document.
func SecurityScheme() *huma.SecurityScheme {
	return &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
		Description:  "Firebase ID token of a user with the admin custom claim.",
	}
}

// BearerRequirement is the operation security requirement for protected routes.
func BearerRequirement() []map[string][]string {
	return []map[string][]string{{SchemeName: {}}}
}

// NewAuthMiddleware verifies tokens on operations that declare a security
// requirement. Operations without one pass through untouched.
func NewAuthMiddleware(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, err := ExtractBearerToken(ctx.Header("Authorization"))
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", "no_token"))
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		user, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			applog.LogWarn(ctx.Context(), "auth failed", zap.String("reason", categorizeAuthError(err)))
			if errors.Is(err, ErrCertificateFetch) {
				ctx.SetHeader("Retry-After", "30")
				_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable, "authentication service temporarily unavailable")
				return
			}
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if !user.Admin {
			applog.LogWarn(ctx.Context(), "auth failed",
				zap.String("reason", "not_admin"), zap.String("uid", user.UID))
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "admin privileges required")
			return
		}

		next(huma.WithValue(ctx, userContextKey{}, user))
	}
}

func categorizeAuthError(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrTokenRevoked):
		return "token_revoked"
	case errors.Is(err, ErrUserDisabled):
		return "user_disabled"
	case errors.Is(err, ErrCertificateFetch):
		return "certificate_fetch_failed"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	default:
		return "unknown"
	}
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey{}).(*User)
	return user
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// ActorID identifies the caller for audit records.
func ActorID(ctx context.Context) string {
	if u := UserFromContext(ctx); u != nil && u.UID != "" {
		return u.UID
	}
	return Anonymous
}
