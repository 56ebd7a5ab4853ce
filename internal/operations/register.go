// Package operations composes repository calls into the multi-step writes
// behind each endpoint. Every write sequence runs inside a single
// transaction, so a failed step never leaves partial state behind.
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

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// Register creates a self-service account and returns the stored user.
// The email pre-check only buys a friendlier field-level error; the unique
// constraint on users.email is what actually prevents duplicates under
// concurrent registration, surfacing as Conflict.
func Register(ctx context.Context, store *db.Store, input RegisterInput, bcryptCost int) (model.User, error) {
	var user model.User

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

		id, err := q.CreateUser(ctx, input.Name, input.Email, hash, input.Role)
		if err != nil {
			return apperr.From(err, "unable to register the user")
		}

		user, err = q.GetUserByID(ctx, id)
		if err != nil {
			return apperr.From(err, "unable to get the registered user")
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login verifies credentials and returns the stored user for token issuance.
func Login(ctx context.Context, q *repository.Queries, email, password string) (model.User, error) {
	user, err := q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, apperr.Validation(apperr.Field("email is invalid", "email", email))
		}
		return model.User{}, apperr.From(err, "unable to look the user up")
	}

	if err := crypto.CheckPassword(user.PasswordHash, password); err != nil {
		return model.User{}, apperr.Validation(apperr.Field("password is invalid", "password", ""))
	}
	return user, nil
}
