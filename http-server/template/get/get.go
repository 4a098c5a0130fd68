package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"craneworks/internal/middleware/auth"
	"craneworks/internal/storage"
)

type TemplateProvider interface {
	ListAccessibleTemplates(ctx context.Context, userID int64) ([]*storage.Template, error)
	ListAllTemplatesAdmin(ctx context.Context) ([]*storage.Template, error)
}

type ResponseAllTemplates struct {
	Templates []*storage.Template `json:"templates"`
	Error     string              `json:"error"`
}

// ListTemplates returns the active report templates the logged-in user may
// pick: their own plus the global defaults.
func ListTemplates(log *slog.Logger, templates TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.ListTemplates"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := templates.ListAccessibleTemplates(ctx, auth.UserID(r.Context()))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to fetch templates")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseAllTemplates{Templates: list})
	}
}

func ListAllTemplatesAdmin(log *slog.Logger, templates TemplateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.ListAllTemplatesAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := templates.ListAllTemplatesAdmin(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to fetch templates")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseAllTemplates{Templates: list})
	}
}
