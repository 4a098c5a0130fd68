package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"craneworks/internal/storage"
)

const workRecordSelect = `
	SELECT wr.id, wr.work_type, wr.inspection_date, wr.findings, wr.document_no,
	       wr.installation_factory, COALESCE(wr.checklist, ''),
	       e.id, e.name, e.model, e.serial_no, e.location,
	       c.id, c.name, c.address, c.phone,
	       p.id, p.name, p.status, p.amount, p.start_date, p.end_date,
	       u.id, u.username, u.full_name, u.email, u.phone, u.role
	FROM work_records wr
	JOIN equipment e ON e.id = wr.equipment_id
	JOIN companies c ON c.id = e.company_id
	JOIN projects p ON p.id = e.project_id
	JOIN users u ON u.id = wr.user_id
`

func scanWorkRecord(row interface{ Scan(...any) error }) (*storage.WorkRecord, error) {
	rec := &storage.WorkRecord{
		Equipment: &storage.Equipment{
			Company: &storage.Company{},
			Project: &storage.Project{},
		},
		User: &storage.User{},
	}

	err := row.Scan(
		&rec.ID, &rec.WorkType, &rec.InspectionDate, &rec.Findings, &rec.DocumentNo,
		&rec.InstallationFactory, &rec.ChecklistJSON,
		&rec.Equipment.ID, &rec.Equipment.Name, &rec.Equipment.Model,
		&rec.Equipment.SerialNo, &rec.Equipment.Location,
		&rec.Equipment.Company.ID, &rec.Equipment.Company.Name,
		&rec.Equipment.Company.Address, &rec.Equipment.Company.Phone,
		&rec.Equipment.Project.ID, &rec.Equipment.Project.Name,
		&rec.Equipment.Project.Status, &rec.Equipment.Project.Amount,
		&rec.Equipment.Project.StartDate, &rec.Equipment.Project.EndDate,
		&rec.User.ID, &rec.User.Username, &rec.User.FullName,
		&rec.User.Email, &rec.User.Phone, &rec.User.Role,
	)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Storage) GetWorkRecord(ctx context.Context, id int64) (*storage.WorkRecord, error) {
	const op = "storage.mysql.GetWorkRecord"

	row := s.db.QueryRowContext(ctx, workRecordSelect+" WHERE wr.id = ?", id)

	rec, err := scanWorkRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: work record %d not found: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

// GetWorkRecords fetches all requested records in one query. IDs that do not
// exist are simply absent from the result.
func (s *Storage) GetWorkRecords(ctx context.Context, ids []int64) ([]*storage.WorkRecord, error) {
	const op = "storage.mysql.GetWorkRecords"

	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		workRecordSelect+" WHERE wr.id IN ("+placeholders+") ORDER BY wr.inspection_date",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []*storage.WorkRecord

	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) ListWorkRecords(ctx context.Context) ([]*storage.WorkRecord, error) {
	const op = "storage.mysql.ListWorkRecords"

	rows, err := s.db.QueryContext(ctx, workRecordSelect+" ORDER BY wr.inspection_date DESC")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []*storage.WorkRecord

	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}
