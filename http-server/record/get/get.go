package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"craneworks/internal/storage"
)

type RecordProvider interface {
	GetWorkRecord(ctx context.Context, id int64) (*storage.WorkRecord, error)
	ListWorkRecords(ctx context.Context) ([]*storage.WorkRecord, error)
}

func GetWorkRecord(log *slog.Logger, records RecordProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.record.GetWorkRecord"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid work record id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rec, err := records.GetWorkRecord(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				log.With(slog.String("op", op), slog.Int64("id", id)).Warn("work record not found")
				http.Error(w, "Work record not found", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to fetch work record")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, rec)
	}
}

type ResponseAllRecords struct {
	Records []*storage.WorkRecord `json:"records"`
	Error   string                `json:"error"`
}

func ListWorkRecords(log *slog.Logger, records RecordProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.record.ListWorkRecords"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		recs, err := records.ListWorkRecords(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to fetch work records")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseAllRecords{Records: recs})
	}
}
