package report

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"craneworks/internal/service/generate"
	"craneworks/internal/service/render"
)

type Generator interface {
	GenerateOne(ctx context.Context, recordID, templateID, userID int64) (*generate.Document, error)
	GenerateBatch(ctx context.Context, recordIDs []int64, templateID, userID int64) (*generate.Document, error)
}

// writeError maps the generation error taxonomy onto HTTP statuses.
func writeError(log *slog.Logger, w http.ResponseWriter, op string, err error) {
	var (
		validationErr  *generate.ValidationError
		notFoundErr    *generate.NotFoundError
		unsupportedErr *generate.UnsupportedFormatError
		renderErr      *render.RenderError
	)

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Msg, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Msg, http.StatusNotFound)
	case errors.As(err, &unsupportedErr):
		http.Error(w, unsupportedErr.Error(), http.StatusUnsupportedMediaType)
	case errors.As(err, &renderErr):
		log.Error("template render failed", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, renderErr.Error(), http.StatusInternalServerError)
	default:
		log.Error("report generation failed", slog.String("op", op), slog.String("error", err.Error()))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// writeDocument sends the finished file. Filenames are Japanese, so only the
// RFC 5987 encoded form is emitted.
func writeDocument(w http.ResponseWriter, doc *generate.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(doc.Filename))
	w.Write(doc.Bytes)
}
