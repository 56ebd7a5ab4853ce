package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/sadiqhasanrupani/server/internal/model"
)

// CreateClassroomSessions bulk-inserts the submitted session rows in one
// statement and returns the number of rows actually written, so a partial
// batch is detectable by the caller.
func (q *Queries) CreateClassroomSessions(ctx context.Context, classroomID int64, sessions []model.ClassroomSession) (int64, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO classroom_sessions (classroom_id, day_of_week, start_time, end_time) VALUES `)
	args := make([]any, 0, len(sessions)*4)
	for i, session := range sessions {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
		args = append(args, classroomID, session.DayOfWeek, session.StartTime, session.EndTime)
	}

	tag, err := q.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) ListSessionsByClassrooms(ctx context.Context, classroomIDs []int64) ([]model.ClassroomSession, error) {
	if len(classroomIDs) == 0 {
		return nil, nil
	}
	rows, err := q.db.Query(ctx, `
		SELECT id, classroom_id, day_of_week,
		       to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS')
		FROM classroom_sessions
		WHERE classroom_id = ANY($1)
		ORDER BY classroom_id, start_time
	`, classroomIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.ClassroomSession
	for rows.Next() {
		var s model.ClassroomSession
		if err := rows.Scan(&s.ID, &s.ClassroomID, &s.DayOfWeek, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
