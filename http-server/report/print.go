package report

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"craneworks/internal/middleware/auth"
)

// PrintOne renders one work record into the chosen template and streams the
// document back.
func PrintOne(log *slog.Logger, gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.PrintOne"

		recordID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid work record id", http.StatusBadRequest)
			return
		}

		templateIDStr := r.URL.Query().Get("template_id")
		if templateIDStr == "" {
			log.With(slog.String("op", op)).Error("missing 'template_id' in query parameters")
			http.Error(w, "template_id is required", http.StatusBadRequest)
			return
		}
		templateID, err := strconv.ParseInt(templateIDStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid template_id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		doc, err := gen.GenerateOne(ctx, recordID, templateID, auth.UserID(r.Context()))
		if err != nil {
			writeError(log, w, op, err)
			return
		}

		writeDocument(w, doc)
	}
}
