package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/quartermaster-erp/quartermaster/internal/shared"
)

// LoginPath is the sign-in entry point unauthenticated callers are sent to.
const LoginPath = "/auth/login"

// RequireUser resolves the acting identity from the session and rejects the
// request before any handler runs when no identity is present. Handlers
// downstream pass the identity explicitly into service calls.
func RequireUser(logger *slog.Logger, service *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			if sess == nil || sess.User() == "" {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			userID, err := parseUserID(sess.User())
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			user, err := service.GetUser(r.Context(), userID)
			if err != nil || !user.IsActive {
				if err != nil && logger != nil {
					logger.Warn("resolve session user", slog.Any("error", err))
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			ctx := shared.ContextWithIdentity(r.Context(), service.Identity(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: malformed user id in session: %w", err)
	}
	return id, nil
}
