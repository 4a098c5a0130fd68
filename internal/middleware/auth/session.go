package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const SessionName = "craneworks_session"

// Sessions idle out after this long without a request.
const sessionMaxIdle = 30 * time.Minute

type ctxKey int

const userIDKey ctxKey = iota

// EditorSession requires a logged-in user with the editor or admin role and
// slides the session's idle expiry on every request. The authenticated user
// id is placed on the request context for handlers.
func EditorSession(log *slog.Logger, store sessions.Store) func(http.Handler) http.Handler {
	const op = "middleware.auth.EditorSession"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, SessionName)

			lastActivity, ok := session.Values["last_activity"].(int64)
			if !ok || time.Now().Unix()-lastActivity > int64(sessionMaxIdle.Seconds()) {
				session.Options.MaxAge = -1
				if err := session.Save(r, w); err != nil {
					log.Warn("failed to drop expired session",
						slog.String("op", op), slog.String("error", err.Error()))
				}
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}

			userID, ok := session.Values["user_id"].(int64)
			if !ok {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			role, _ := session.Values["role"].(string)
			if role != "editor" && role != "admin" {
				http.Error(w, "Editor role required", http.StatusForbidden)
				return
			}

			// A failed save only means the idle expiry was not slid; the
			// request itself is still authenticated.
			session.Values["last_activity"] = time.Now().Unix()
			if err := session.Save(r, w); err != nil {
				log.Warn("failed to save session",
					slog.String("op", op), slog.String("error", err.Error()))
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's id, 0 when the request never passed
// EditorSession.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
