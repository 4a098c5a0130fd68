package generate

import (
	"archive/zip"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"craneworks/internal/service/placeholder"
	"craneworks/internal/service/render"
	"craneworks/internal/storage"
)

const (
	filePrefix    = "作業記録"
	BatchFilename = "作業記録一括印刷.zip"
)

type RecordStore interface {
	GetWorkRecord(ctx context.Context, id int64) (*storage.WorkRecord, error)
	GetWorkRecords(ctx context.Context, ids []int64) ([]*storage.WorkRecord, error)
}

type TemplateStore interface {
	GetAccessibleTemplate(ctx context.Context, id, userID int64) (*storage.Template, error)
}

// Document is a finished download: bytes plus the headers the handler needs.
type Document struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

type Service struct {
	log       *slog.Logger
	records   RecordStore
	templates TemplateStore

	// Swappable in tests; render.ForMimeType in production.
	rendererFor func(mimeType string) (render.Renderer, string, bool)
}

func NewService(log *slog.Logger, records RecordStore, templates TemplateStore) *Service {
	return &Service{
		log:         log,
		records:     records,
		templates:   templates,
		rendererFor: render.ForMimeType,
	}
}

// GenerateOne renders a single work record into the given template.
func (s *Service) GenerateOne(ctx context.Context, recordID, templateID, userID int64) (*Document, error) {
	const op = "service.generate.GenerateOne"

	if templateID <= 0 {
		return nil, &ValidationError{Msg: "template id is required"}
	}
	if recordID <= 0 {
		return nil, &ValidationError{Msg: "work record id is required"}
	}

	var (
		rec *storage.WorkRecord
		tpl *storage.Template
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = s.records.GetWorkRecord(gCtx, recordID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{Msg: fmt.Sprintf("work record %d not found", recordID)}
			}
			return fmt.Errorf("record: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tpl, err = s.templates.GetAccessibleTemplate(gCtx, templateID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{Msg: fmt.Sprintf("template %d not found", templateID)}
			}
			return fmt.Errorf("template: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	renderer, ext, ok := s.rendererFor(tpl.MimeType)
	if !ok {
		return nil, &UnsupportedFormatError{MimeType: tpl.MimeType}
	}

	out, err := safeRender(renderer, tpl.Content, placeholder.Build(rec))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Document{
		Bytes:       out,
		Filename:    recordFilename(rec, ext),
		ContentType: tpl.MimeType,
	}, nil
}

// GenerateBatch renders every record against one template and packs the
// results into a zip. A record that fails to render is logged and skipped;
// the zip is returned even when everything was skipped.
func (s *Service) GenerateBatch(ctx context.Context, recordIDs []int64, templateID, userID int64) (*Document, error) {
	const op = "service.generate.GenerateBatch"

	if len(recordIDs) == 0 {
		return nil, &ValidationError{Msg: "work record ids are required"}
	}
	if templateID <= 0 {
		return nil, &ValidationError{Msg: "template id is required"}
	}

	var (
		records []*storage.WorkRecord
		tpl     *storage.Template
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.GetWorkRecords(gCtx, recordIDs)
		if err != nil {
			return fmt.Errorf("records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tpl, err = s.templates.GetAccessibleTemplate(gCtx, templateID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{Msg: fmt.Sprintf("template %d not found", templateID)}
			}
			return fmt.Errorf("template: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(records) == 0 {
		return nil, &NotFoundError{Msg: "no work records found"}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// Rendering stays strictly sequential: the zip writer is single-writer
	// and one request owns it.
	used := map[string]int{}
	for _, rec := range records {
		renderer, ext, ok := s.rendererFor(tpl.MimeType)
		if !ok {
			s.log.Warn("skipping record: unsupported template format",
				slog.String("op", op),
				slog.Int64("record_id", rec.ID),
				slog.String("mime_type", tpl.MimeType))
			continue
		}

		out, err := safeRender(renderer, tpl.Content, placeholder.Build(rec))
		if err != nil {
			s.log.Warn("skipping record: render failed",
				slog.String("op", op),
				slog.Int64("record_id", rec.ID),
				slog.String("error", err.Error()))
			continue
		}

		name := recordFilename(rec, ext)
		if n := used[name]; n > 0 {
			used[name] = n + 1
			name = strings.TrimSuffix(name, ext) + fmt.Sprintf(" (%d)", n) + ext
		} else {
			used[name] = 1
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if _, err := w.Write(out); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Document{
		Bytes:       buf.Bytes(),
		Filename:    BatchFilename,
		ContentType: storage.MimeZip,
	}, nil
}

// safeRender turns a panic inside the merge engine into a render error so
// one broken template or record cannot take down the whole request.
func safeRender(r render.Renderer, template []byte, placeholders map[string]string) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = &render.RenderError{Err: fmt.Errorf("merge engine panic: %v", rec)}
		}
	}()
	return r.Render(template, placeholders)
}

func recordFilename(rec *storage.WorkRecord, ext string) string {
	company := ""
	equipment := ""
	if rec.Equipment != nil {
		equipment = rec.Equipment.Name
		if rec.Equipment.Company != nil {
			company = rec.Equipment.Company.Name
		}
	}

	name := fmt.Sprintf("%s_%s_%s_%s%s",
		filePrefix, company, equipment, rec.InspectionDate.Format("2006-01-02"), ext)

	// Path separators in company or equipment names would turn into archive
	// directories.
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")

	return name
}
