package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"craneworks/internal/middleware/auth"
)

// PrintBatch renders many work records against one template and streams the
// resulting zip. Batches can be large, so the timeout is generous.
func PrintBatch(log *slog.Logger, gen Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.PrintBatch"

		var req struct {
			RecordIDs  []int64 `json:"record_ids"`
			TemplateID int64   `json:"template_id"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
		defer cancel()

		doc, err := gen.GenerateBatch(ctx, req.RecordIDs, req.TemplateID, auth.UserID(r.Context()))
		if err != nil {
			writeError(log, w, op, err)
			return
		}

		writeDocument(w, doc)
	}
}
