package save

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"craneworks/internal/storage"
)

type TemplateSaver interface {
	CreateTemplateAdmin(ctx context.Context, tpl storage.Template) (int64, error)
}

type Response struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// SaveTemplateAdmin uploads a new report template: multipart form with the
// binary under "file" plus "name", "mime_type" and optional "is_default".
// Only the two OOXML types are accepted; content is stored as-is, never
// inspected.
func SaveTemplateAdmin(log *slog.Logger, templates TemplateSaver, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.template.SaveTemplateAdmin"

		if err := r.ParseMultipartForm(maxSize); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		mimeType := r.FormValue("mime_type")
		isDefault, _ := strconv.ParseBool(r.FormValue("is_default"))

		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if mimeType != storage.MimeWord && mimeType != storage.MimeExcel {
			http.Error(w, "mime_type must be a Word or Excel OOXML type", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxSize))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to read upload")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		id, err := templates.CreateTemplateAdmin(ctx, storage.Template{
			Name:         name,
			TemplateType: storage.TemplateTypeReport,
			MimeType:     mimeType,
			Content:      content,
			IsActive:     true,
			IsDefault:    isDefault,
		})
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to save template")
			render.JSON(w, r, Response{Error: "failed to save template"})
			return
		}

		render.JSON(w, r, Response{ID: id})
	}
}
