package repository

import (
	"context"

	"github.com/sadiqhasanrupani/server/internal/model"
)

func (q *Queries) CreateClassroom(ctx context.Context, name string, teacherID *int64, principalID int64) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO classrooms (name, teacher_id, principal_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, teacherID, principalID).Scan(&id)
	return id, err
}

func (q *Queries) GetClassroom(ctx context.Context, classroomID int64) (model.Classroom, error) {
	var room model.Classroom
	row := q.db.QueryRow(ctx, `
		SELECT id, name, teacher_id, principal_id, created_at, updated_at
		FROM classrooms
		WHERE id = $1
	`, classroomID)
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.TeacherID,
		&room.PrincipalID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	return room, err
}

// AssignTeacherIfUnassigned sets the classroom's teacher only when no teacher
// holds it yet; zero affected rows means it was already taken.
func (q *Queries) AssignTeacherIfUnassigned(ctx context.Context, classroomID, teacherID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE classrooms
		SET teacher_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND teacher_id IS NULL
	`, classroomID, teacherID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) UnassignTeacherClassrooms(ctx context.Context, teacherID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE classrooms
		SET teacher_id = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE teacher_id = $1
	`, teacherID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) DeleteClassroom(ctx context.Context, classroomID, principalID int64) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM classrooms WHERE id = $1 AND principal_id = $2`,
		classroomID, principalID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ClassroomSummary is one row of the principal's classroom listing before
// sessions are grouped onto it.
type ClassroomSummary struct {
	ID           int64
	Name         string
	TeacherID    *int64
	TeacherName  *string
	StudentCount int64
}

func (q *Queries) ListClassrooms(ctx context.Context, principalID int64) ([]ClassroomSummary, error) {
	rows, err := q.db.Query(ctx, `
		SELECT c.id, c.name, u.id, u.name,
		       (SELECT COUNT(cs.student_id) FROM classroom_students cs
		        WHERE cs.classroom_id = c.id AND cs.student_id IS NOT NULL)
		FROM classrooms c
		LEFT JOIN users u ON u.id = c.teacher_id
		WHERE c.principal_id = $1
		ORDER BY c.created_at DESC
	`, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []ClassroomSummary
	for rows.Next() {
		var s ClassroomSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.TeacherID, &s.TeacherName, &s.StudentCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (q *Queries) ListUnassignedClassrooms(ctx context.Context, principalID int64) ([]model.Classroom, error) {
	rows, err := q.db.Query(ctx, `
		SELECT id, name, teacher_id, principal_id, created_at, updated_at
		FROM classrooms
		WHERE principal_id = $1 AND teacher_id IS NULL
		ORDER BY created_at DESC
	`, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Classroom
	for rows.Next() {
		var room model.Classroom
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.TeacherID,
			&room.PrincipalID,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (q *Queries) CreateClassroomStudentSeed(ctx context.Context, classroomID, assignedBy int64) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `
		INSERT INTO classroom_students (classroom_id, assigned_by)
		VALUES ($1, $2)
		RETURNING id
	`, classroomID, assignedBy).Scan(&id)
	return id, err
}

func (q *Queries) DeleteClassroomStudentsByStudent(ctx context.Context, studentID int64) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM classroom_students WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) DeleteClassroomStudentsByAssigner(ctx context.Context, teacherID int64) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`DELETE FROM classroom_students WHERE assigned_by = $1`, teacherID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
