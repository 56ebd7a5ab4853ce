package operations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/crypto"
	"github.com/sadiqhasanrupani/server/internal/db"
	"github.com/sadiqhasanrupani/server/internal/model"
	"github.com/sadiqhasanrupani/server/internal/repository"
)

type CreateTeacherInput struct {
	Name     string
	Email    string
	Password string
	ClassID  *int64
}

// CreateTeacher creates the teacher account, records who created it, and,
// when a classroom id was submitted, assigns the new teacher to it if it is
// still unassigned. An already-assigned classroom leaves the teacher
// unassigned rather than failing the whole create.
func CreateTeacher(ctx context.Context, store *db.Store, principalID int64, input CreateTeacherInput, bcryptCost int) (int64, bool, error) {
	var (
		teacherID int64
		assigned  bool
	)

	err := store.WithTx(ctx, func(q *repository.Queries) error {
		exists, err := q.EmailExists(ctx, input.Email)
		if err != nil {
			return apperr.From(err, "unable to check the email")
		}
		if exists {
			return apperr.Validation(apperr.Field("email already exists", "email", input.Email))
		}

		hash, err := crypto.HashPassword(input.Password, bcryptCost)
		if err != nil {
			return apperr.From(err, "unable to hash the password")
		}

		id, err := q.CreateUser(ctx, input.Name, input.Email, hash, model.RoleTeacher)
		if err != nil {
			return apperr.From(err, "unable to create the teacher")
		}
		teacherID = id

		if _, err := q.CreateOwnershipLink(ctx, id, principalID); err != nil {
			return apperr.From(err, "unable to record who created the teacher")
		}

		if input.ClassID == nil {
			return nil
		}

		room, err := q.GetClassroom(ctx, *input.ClassID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.New(apperr.NotFound, "classroom not found")
			}
			return apperr.From(err, "unable to check the classroom")
		}
		if room.PrincipalID != principalID {
			return apperr.New(apperr.Forbidden, "classroom belongs to another principal")
		}

		updated, err := q.AssignTeacherIfUnassigned(ctx, room.ID, id)
		if err != nil {
			return apperr.From(err, "unable to assign the classroom")
		}
		if updated == 0 {
			// Already held by another teacher; the create still stands.
			return nil
		}

		if _, err := q.CreateClassroomStudentSeed(ctx, room.ID, id); err != nil {
			return apperr.From(err, "unable to prepare the classroom roster")
		}
		assigned = true
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return teacherID, assigned, nil
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateTeacher rewrites the teacher's profile. An empty password keeps the
// stored hash; a submitted one replaces it.
func UpdateTeacher(ctx context.Context, store *db.Store, teacherID int64, input UpdateUserInput, bcryptCost int) error {
	return store.WithTx(ctx, func(q *repository.Queries) error {
		return updateRoleUser(ctx, q, teacherID, model.RoleTeacher, input, bcryptCost)
	})
}

// DeleteTeacher releases everything the teacher holds before removing the
// account: their classrooms become unassigned, their roster rows and
// ownership links go away, and only then is the user row deleted.
func DeleteTeacher(ctx context.Context, store *db.Store, teacherID int64) error {
	return store.WithTx(ctx, func(q *repository.Queries) error {
		if _, err := q.GetUserWithRole(ctx, teacherID, model.RoleTeacher); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.New(apperr.NotFound, "teacher not found")
			}
			return apperr.From(err, "unable to check the teacher")
		}

		if _, err := q.UnassignTeacherClassrooms(ctx, teacherID); err != nil {
			return apperr.From(err, "unable to unassign the teacher's classrooms")
		}
		if _, err := q.DeleteClassroomStudentsByAssigner(ctx, teacherID); err != nil {
			return apperr.From(err, "unable to clear the teacher's roster rows")
		}
		if _, err := q.DeleteOwnershipLinksByUser(ctx, teacherID); err != nil {
			return apperr.From(err, "unable to clear the teacher's ownership links")
		}

		deleted, err := q.DeleteUser(ctx, teacherID)
		if err != nil {
			return apperr.From(err, "unable to delete the teacher")
		}
		if deleted == 0 {
			return apperr.New(apperr.WriteFailed, "teacher row was not deleted")
		}
		return nil
	})
}

func GetTeacher(ctx context.Context, q *repository.Queries, teacherID int64) (model.User, error) {
	user, err := q.GetUserWithRole(ctx, teacherID, model.RoleTeacher)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, apperr.New(apperr.NotFound, "teacher not found")
		}
		return model.User{}, apperr.From(err, "unable to get the teacher")
	}
	return user, nil
}

func ListTeachers(ctx context.Context, q *repository.Queries, principalID int64) ([]repository.TeacherSummary, error) {
	teachers, err := q.ListTeachers(ctx, principalID)
	if err != nil {
		return nil, apperr.From(err, "unable to get the teachers")
	}
	return teachers, nil
}

func ListUnassignedTeachers(ctx context.Context, q *repository.Queries, principalID int64) ([]model.User, error) {
	teachers, err := q.ListUnassignedTeachers(ctx, principalID)
	if err != nil {
		return nil, apperr.From(err, "unable to get the unassigned teachers")
	}
	return teachers, nil
}

func updateRoleUser(ctx context.Context, q *repository.Queries, userID int64, role model.Role, input UpdateUserInput, bcryptCost int) error {
	current, err := q.GetUserWithRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.New(apperr.NotFound, string(role)+" not found")
		}
		return apperr.From(err, "unable to check the user")
	}

	hash := current.PasswordHash
	if input.Password != "" {
		hash, err = crypto.HashPassword(input.Password, bcryptCost)
		if err != nil {
			return apperr.From(err, "unable to hash the password")
		}
	}

	updated, err := q.UpdateUser(ctx, userID, input.Name, input.Email, hash)
	if err != nil {
		return apperr.From(err, "unable to update the user")
	}
	if updated == 0 {
		return apperr.New(apperr.WriteFailed, "user row was not updated")
	}
	return nil
}
