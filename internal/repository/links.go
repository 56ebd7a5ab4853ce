package repository

import (
	"context"

	"github.com/sadiqhasanrupani/server/internal/model"
)

func (q *Queries) CreateOwnershipLink(ctx context.Context, userID, createdBy int64) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO users_created_by (user_id, created_by)
		VALUES ($1, $2)
		RETURNING id
	`, userID, createdBy).Scan(&id)
	return id, err
}

func (q *Queries) DeleteOwnershipLinksByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM users_created_by WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListStudentsCreatedBy returns the students whose ownership link points at
// the given mentor, newest first.
func (q *Queries) ListStudentsCreatedBy(ctx context.Context, mentorID int64) ([]model.User, error) {
	rows, err := q.db.Query(ctx, `
		SELECT u.id, u.name, u.email, u.password, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN users_created_by ucb ON ucb.user_id = u.id
		WHERE u.role = 'student' AND ucb.created_by = $1
		ORDER BY u.created_at DESC
	`, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, user)
	}
	return students, rows.Err()
}
