package update

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TemplateUpdater interface {
	SetTemplateActiveAdmin(ctx context.Context, id int64, active bool) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// UpdateTemplateActiveAdmin toggles a template's active flag. Deactivated
// templates stay in the database but disappear from pickers and are refused
// at generation time.
func UpdateTemplateActiveAdmin(log *slog.Logger, templates TemplateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.UpdateTemplateActiveAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid template id", http.StatusBadRequest)
			return
		}

		var req struct {
			IsActive bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := templates.SetTemplateActiveAdmin(ctx, id, req.IsActive); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "Template not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to update template")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
