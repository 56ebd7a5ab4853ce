package repository

import (
	"context"

	"github.com/sadiqhasanrupani/server/internal/model"
)

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	row := q.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func (q *Queries) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	var user model.User
	row := q.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// GetUserWithRole looks a user up by id constrained to a role, so callers
// can treat a role mismatch the same as an absent row.
func (q *Queries) GetUserWithRole(ctx context.Context, userID int64, role model.Role) (model.User, error) {
	var user model.User
	row := q.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE id = $1 AND role = $2
	`, userID, role)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func (q *Queries) GetUserRole(ctx context.Context, userID int64) (model.Role, error) {
	var role model.Role
	err := q.db.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, userID).Scan(&role)
	return role, err
}

func (q *Queries) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (q *Queries) CreateUser(ctx context.Context, name, email, passwordHash string, role model.Role) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, name, email, passwordHash, role).Scan(&id)
	return id, err
}

func (q *Queries) UpdateUser(ctx context.Context, userID int64, name, email, passwordHash string) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE users
		SET name = $2, email = $3, password = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, userID, name, email, passwordHash)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) DeleteUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
