package repository

import (
	"context"

	"github.com/sadiqhasanrupani/server/internal/model"
)

// TeacherSummary is one row of the principal's teacher listing. The listing
// is shaped per (teacher, held classroom): a teacher holding several of the
// principal's classrooms appears once per classroom, and a teacher holding
// none appears once with nil classroom fields.
type TeacherSummary struct {
	ID            int64
	Name          string
	Email         string
	ClassroomID   *int64
	ClassroomName *string
	StudentCount  int64
}

// ListTeachers returns the teachers created by the principal together with
// the classrooms they hold under that principal and their student counts,
// one row per held classroom.
func (q *Queries) ListTeachers(ctx context.Context, principalID int64) ([]TeacherSummary, error) {
	rows, err := q.db.Query(ctx, `
		SELECT u.id, u.name, u.email, c.id, c.name,
		       COUNT(cs.student_id)
		FROM users u
		JOIN users_created_by ucb ON ucb.user_id = u.id AND ucb.created_by = $1
		LEFT JOIN classrooms c ON c.teacher_id = u.id AND c.principal_id = $1
		LEFT JOIN classroom_students cs ON cs.classroom_id = c.id AND cs.student_id IS NOT NULL
		WHERE u.role = 'teacher'
		GROUP BY u.id, u.name, u.email, u.created_at, c.id, c.name
		ORDER BY u.created_at DESC
	`, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []TeacherSummary
	for rows.Next() {
		var t TeacherSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.ClassroomID, &t.ClassroomName, &t.StudentCount); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// ListUnassignedTeachers returns the teachers created by the principal that
// hold none of that principal's classrooms.
func (q *Queries) ListUnassignedTeachers(ctx context.Context, principalID int64) ([]model.User, error) {
	rows, err := q.db.Query(ctx, `
		SELECT u.id, u.name, u.email, u.password, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN users_created_by ucb ON ucb.user_id = u.id AND ucb.created_by = $1
		WHERE u.role = 'teacher'
		  AND NOT EXISTS (
			SELECT 1 FROM classrooms c
			WHERE c.teacher_id = u.id AND c.principal_id = $1
		  )
		ORDER BY u.created_at DESC
	`, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.User
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
		teachers = append(teachers, user)
	}
	return teachers, rows.Err()
}
