package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	mwauth "craneworks/internal/middleware/auth"
	"craneworks/internal/storage"
)

type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*storage.User, error)
}

// Login checks credentials and opens a cookie session carrying the user id
// and role. The response never says whether the user or the password was
// wrong.
func Login(log *slog.Logger, sessionStore sessions.Store, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		var credentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := users.GetUserByUsername(ctx, credentials.Username)
		if err != nil {
			log.With(slog.String("op", op), slog.String("username", credentials.Username)).Warn("login failed")
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
			log.With(slog.String("op", op), slog.String("username", credentials.Username)).Warn("login failed")
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		session, _ := sessionStore.Get(r, mwauth.SessionName)
		session.Values["user_id"] = user.ID
		session.Values["role"] = user.Role
		session.Values["last_activity"] = time.Now().Unix()
		if err := session.Save(r, w); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to save session")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, user)
	}
}

func Logout(log *slog.Logger, sessionStore sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Logout"

		session, _ := sessionStore.Get(r, mwauth.SessionName)
		session.Values["user_id"] = nil
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to save session")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
