package operations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/db"
	"github.com/sadiqhasanrupani/server/internal/model"
	"github.com/sadiqhasanrupani/server/internal/repository"
)

type SessionInput struct {
	DayOfWeek model.Weekday
	StartTime string
	EndTime   string
}

type CreateClassroomInput struct {
	Name      string
	TeacherID *int64
	Sessions  []SessionInput
}

// CreateClassroom inserts the classroom and its weekly sessions in one
// transaction. The session batch must land whole: an inserted count short of
// the submitted count aborts and rolls everything back.
func CreateClassroom(ctx context.Context, store *db.Store, principalID int64, input CreateClassroomInput) (int64, error) {
	var classroomID int64

	err := store.WithTx(ctx, func(q *repository.Queries) error {
		if input.TeacherID != nil {
			if _, err := q.GetUserWithRole(ctx, *input.TeacherID, model.RoleTeacher); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperr.New(apperr.NotFound, "teacher not found")
				}
				return apperr.From(err, "unable to check the teacher")
			}
		}

		id, err := q.CreateClassroom(ctx, input.Name, input.TeacherID, principalID)
		if err != nil {
			return apperr.From(err, "unable to create a classroom")
		}
		classroomID = id

		sessions := make([]model.ClassroomSession, len(input.Sessions))
		for i, s := range input.Sessions {
			sessions[i] = model.ClassroomSession{
				ClassroomID: id,
				DayOfWeek:   s.DayOfWeek,
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
			}
		}
		inserted, err := q.CreateClassroomSessions(ctx, id, sessions)
		if err != nil {
			return apperr.From(err, "unable to create the classroom sessions")
		}
		if inserted != int64(len(sessions)) {
			return apperr.New(apperr.WriteFailed, "classroom sessions were only partially written")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return classroomID, nil
}

// SessionView is one weekly slot in a classroom listing.
type SessionView struct {
	Day       model.Weekday `json:"day"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
}

type ClassroomView struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	AssignedTeacher   *string       `json:"assignedTeacher"`
	AssignedTeacherID *int64        `json:"assignedTeacherId"`
	Students          int64         `json:"students"`
	Days              []SessionView `json:"days"`
}

// ListClassrooms returns the principal's classrooms with their weekly
// sessions grouped per classroom.
func ListClassrooms(ctx context.Context, q *repository.Queries, principalID int64) ([]ClassroomView, error) {
	summaries, err := q.ListClassrooms(ctx, principalID)
	if err != nil {
		return nil, apperr.From(err, "unable to get the classrooms")
	}

	ids := make([]int64, len(summaries))
	views := make([]ClassroomView, len(summaries))
	byID := make(map[int64]*ClassroomView, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
		views[i] = ClassroomView{
			ID:                s.ID,
			Name:              s.Name,
			AssignedTeacher:   s.TeacherName,
			AssignedTeacherID: s.TeacherID,
			Students:          s.StudentCount,
			Days:              []SessionView{},
		}
		byID[s.ID] = &views[i]
	}

	sessions, err := q.ListSessionsByClassrooms(ctx, ids)
	if err != nil {
		return nil, apperr.From(err, "unable to get the classroom sessions")
	}
	for _, session := range sessions {
		view, ok := byID[session.ClassroomID]
		if !ok {
			continue
		}
		view.Days = append(view.Days, SessionView{
			Day:       session.DayOfWeek,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
		})
	}
	return views, nil
}

func ListUnassignedClassrooms(ctx context.Context, q *repository.Queries, principalID int64) ([]model.Classroom, error) {
	rooms, err := q.ListUnassignedClassrooms(ctx, principalID)
	if err != nil {
		return nil, apperr.From(err, "unable to get the unassigned classrooms")
	}
	return rooms, nil
}

// DeleteClassroom removes a classroom the caller owns; sessions and student
// assignments go with it through the schema's cascade rules.
func DeleteClassroom(ctx context.Context, store *db.Store, principalID, classroomID int64) error {
	return store.WithTx(ctx, func(q *repository.Queries) error {
		deleted, err := q.DeleteClassroom(ctx, classroomID, principalID)
		if err != nil {
			return apperr.From(err, "unable to delete the classroom")
		}
		if deleted == 0 {
			return apperr.New(apperr.NotFound, "classroom not found")
		}
		return nil
	})
}
