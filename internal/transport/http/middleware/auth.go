package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/domain"
	"github.com/sirupsen/logrus"
)

type contextKey string

const userKey contextKey = "user"

// SessionResolver turns a bearer token into an active user. Satisfied by
// service.AuthService.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Session authenticates every request behind it. All token-stage failures
// produce the same unauthorized body; the actual reason only goes to the log.
// An inactive account is the one case the client may distinguish.
func Session(resolver SessionResolver, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			user, err := resolver.Resolve(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInactiveUser):
					http.Error(w, `{"error":{"code":"INACTIVE_USER","message":"Account is disabled"}}`, http.StatusForbidden)
				case auth.IsTokenError(err):
					log.WithFields(logrus.Fields{
						"reason":     err.Error(),
						"request_id": GetRequestID(r.Context()),
					}).Info("rejected bearer token")
					unauthorized(w)
				default:
					log.WithError(err).Error("session resolution failed")
					http.Error(w, `{"error":{"code":"INTERNAL","message":"Something went wrong"}}`, http.StatusInternalServerError)
				}
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Could not validate credentials"}}`, http.StatusUnauthorized)
}

// GetUser extracts the resolved user from the request context. Only valid
// behind the Session middleware.
func GetUser(ctx context.Context) *domain.User {
	return ctx.Value(userKey).(*domain.User)
}
