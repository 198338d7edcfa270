package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
)

// ErrAdminRequired is returned when a non-admin calls an admin procedure.
var ErrAdminRequired = errors.New("admin access required")

// Identity is the verified caller of an RPC, taken from a valid token.
type Identity struct {
	UserID   string
	Email    string
	Username string
	IsAdmin  bool
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFrom extracts the caller identity from the context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.UserID
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", auth.ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

// RequireAuth returns an interceptor that validates JWT tokens and places the
// caller's Identity in the request context. Procedures listed in public are
// passed through without a token.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			if open[procedure] {
				return next(ctx, req)
			}

			token, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				slog.Warn("RPC rejected", "procedure", procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				slog.Warn("RPC rejected", "procedure", procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			ctx = WithIdentity(ctx, Identity{
				UserID:   claims.UserID,
				Email:    claims.Email,
				Username: claims.Username,
				IsAdmin:  claims.IsAdmin,
			})
			return next(ctx, req)
		}
	}
}

// RequireAdmin returns an interceptor that only lets admins through. It must
// run after RequireAuth.
func RequireAdmin() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id, ok := IdentityFrom(ctx)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}
			if !id.IsAdmin {
				slog.Warn("RPC rejected", "procedure", req.Spec().Procedure, "user_id", id.UserID, "error", ErrAdminRequired)
				return nil, connect.NewError(connect.CodePermissionDenied, ErrAdminRequired)
			}
			return next(ctx, req)
		}
	}
}
