package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"craneworks/internal/storage"
)

// GetAccessibleTemplate resolves an active report template the given user may
// use: either their own upload or a global default.
func (s *Storage) GetAccessibleTemplate(ctx context.Context, id, userID int64) (*storage.Template, error) {
	const op = "storage.mysql.GetAccessibleTemplate"

	query := `
		SELECT id, name, template_type, mime_type, content, is_active, is_default, user_id
		FROM document_templates
		WHERE id = ? AND template_type = ? AND is_active = TRUE
		  AND (user_id = ? OR is_default = TRUE)
	`

	tpl := &storage.Template{}

	err := s.db.QueryRowContext(ctx, query, id, storage.TemplateTypeReport, userID).Scan(
		&tpl.ID, &tpl.Name, &tpl.TemplateType, &tpl.MimeType, &tpl.Content,
		&tpl.IsActive, &tpl.IsDefault, &tpl.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: template %d not found or not accessible: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tpl, nil
}

// ListAccessibleTemplates returns active report templates without their binary
// content, for pickers in the UI.
func (s *Storage) ListAccessibleTemplates(ctx context.Context, userID int64) ([]*storage.Template, error) {
	const op = "storage.mysql.ListAccessibleTemplates"

	query := `
		SELECT id, name, template_type, mime_type, is_active, is_default, user_id
		FROM document_templates
		WHERE template_type = ? AND is_active = TRUE AND (user_id = ? OR is_default = TRUE)
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query, storage.TemplateTypeReport, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.Template

	for rows.Next() {
		tpl := &storage.Template{}

		err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.TemplateType, &tpl.MimeType,
			&tpl.IsActive, &tpl.IsDefault, &tpl.UserID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		templates = append(templates, tpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) ListAllTemplatesAdmin(ctx context.Context) ([]*storage.Template, error) {
	const op = "storage.mysql.ListAllTemplatesAdmin"

	query := `
		SELECT id, name, template_type, mime_type, is_active, is_default, user_id
		FROM document_templates
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var templates []*storage.Template

	for rows.Next() {
		tpl := &storage.Template{}

		err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.TemplateType, &tpl.MimeType,
			&tpl.IsActive, &tpl.IsDefault, &tpl.UserID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		templates = append(templates, tpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) CreateTemplateAdmin(ctx context.Context, tpl storage.Template) (int64, error) {
	const op = "storage.mysql.CreateTemplateAdmin"

	stmt := `
		INSERT INTO document_templates (name, template_type, mime_type, content, is_active, is_default, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, stmt, tpl.Name, tpl.TemplateType, tpl.MimeType,
		tpl.Content, tpl.IsActive, tpl.IsDefault, tpl.UserID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) SetTemplateActiveAdmin(ctx context.Context, id int64, active bool) error {
	const op = "storage.mysql.SetTemplateActiveAdmin"

	res, err := s.db.ExecContext(ctx,
		"UPDATE document_templates SET is_active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: template %d not found: %w", op, id, sql.ErrNoRows)
	}

	return nil
}
