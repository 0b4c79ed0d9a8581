package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// UserRepo is the repository for caseworkers and other service users.
type UserRepo = Repository[domain.User]

// NewUserRepo constructs a UserRepo backed by db.
func NewUserRepo(db db) UserRepo {
	return newRepository(db, table[domain.User]{
		name:  "users",
		label: "UserRepo",
		columns: []string{
			"id", "email", "first_name", "last_name", "team",
			"active_directory_user_id", "created_at", "updated_at",
		},
		scan: func(s scanner) (domain.User, error) {
			var (
				u  domain.User
				id pgtype.UUID
			)
			err := s.Scan(&id, &u.Email, &u.FirstName, &u.LastName, (*string)(&u.Team),
				&u.ActiveDirectoryUserID, &u.CreatedAt, &u.UpdatedAt)
			if err != nil {
				return domain.User{}, err
			}
			u.ID = uuid.UUID(id.Bytes)
			return u, nil
		},
		values: func(u domain.User) pgx.NamedArgs {
			return withID(pgx.NamedArgs{
				"email":                    u.Email,
				"first_name":               u.FirstName,
				"last_name":                u.LastName,
				"team":                     string(u.Team),
				"active_directory_user_id": u.ActiveDirectoryUserID,
			}, u.ID)
		},
	})
}
