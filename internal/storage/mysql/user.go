package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"craneworks/internal/storage"
)

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByUsername"

	query := `
		SELECT id, username, full_name, email, phone, role, password
		FROM users
		WHERE username = ?
	`

	user := &storage.User{}

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.FullName, &user.Email,
		&user.Phone, &user.Role, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: user %q not found: %w", op, username, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
