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

type CreateStudentInput struct {
	Name     string
	Email    string
	Password string
}

// CreateStudent creates the student account and its ownership link under the
// calling mentor, atomically.
func CreateStudent(ctx context.Context, store *db.Store, mentorID int64, input CreateStudentInput, bcryptCost int) (int64, error) {
	var studentID int64

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

		id, err := q.CreateUser(ctx, input.Name, input.Email, hash, model.RoleStudent)
		if err != nil {
			return apperr.From(err, "unable to add the student")
		}
		studentID = id

		if _, err := q.CreateOwnershipLink(ctx, id, mentorID); err != nil {
			return apperr.From(err, "unable to record who created the student")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return studentID, nil
}

func GetStudent(ctx context.Context, q *repository.Queries, studentID int64) (model.User, error) {
	user, err := q.GetUserWithRole(ctx, studentID, model.RoleStudent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, apperr.New(apperr.NotFound, "student not found")
		}
		return model.User{}, apperr.From(err, "unable to get the student")
	}
	return user, nil
}

// ListStudents returns the students the mentor created, newest first.
func ListStudents(ctx context.Context, q *repository.Queries, mentorID int64) ([]model.User, error) {
	students, err := q.ListStudentsCreatedBy(ctx, mentorID)
	if err != nil {
		return nil, apperr.From(err, "unable to get the students")
	}
	return students, nil
}

func UpdateStudent(ctx context.Context, store *db.Store, studentID int64, input UpdateUserInput, bcryptCost int) error {
	return store.WithTx(ctx, func(q *repository.Queries) error {
		return updateRoleUser(ctx, q, studentID, model.RoleStudent, input, bcryptCost)
	})
}

// DeleteStudent removes the student's classroom assignments and ownership
// links before deleting the account.
func DeleteStudent(ctx context.Context, store *db.Store, studentID int64) error {
	return store.WithTx(ctx, func(q *repository.Queries) error {
		if _, err := q.GetUserWithRole(ctx, studentID, model.RoleStudent); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.New(apperr.NotFound, "student not found")
			}
			return apperr.From(err, "unable to check the student")
		}

		if _, err := q.DeleteClassroomStudentsByStudent(ctx, studentID); err != nil {
			return apperr.From(err, "unable to clear the student's classroom rows")
		}
		if _, err := q.DeleteOwnershipLinksByUser(ctx, studentID); err != nil {
			return apperr.From(err, "unable to clear the student's ownership links")
		}

		deleted, err := q.DeleteUser(ctx, studentID)
		if err != nil {
			return apperr.From(err, "unable to delete the student")
		}
		if deleted == 0 {
			return apperr.New(apperr.WriteFailed, "student row was not deleted")
		}
		return nil
	})
}
