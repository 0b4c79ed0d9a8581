package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// Conversions between nullable pgtype values and the pointer fields used by
// the domain types.

func uuidOrNil(v pgtype.UUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := uuid.UUID(v.Bytes)
	return &id
}

func dateOrNil(v pgtype.Date) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func timestampOrNil(v pgtype.Timestamptz) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func boolOrNil(v pgtype.Bool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func intOrNil(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func ukprnOrNil(v pgtype.Int4) *domain.Ukprn {
	if !v.Valid {
		return nil
	}
	u := domain.Ukprn(v.Int32)
	return &u
}

func urnOrNil(v pgtype.Int4) *domain.Urn {
	if !v.Valid {
		return nil
	}
	u := domain.Urn(v.Int32)
	return &u
}

// nullInt converts an optional named integer into a driver value (nil → NULL).
func nullInt[T ~int](v *T) any {
	if v == nil {
		return nil
	}
	return int(*v)
}

// nullString converts an optional named string into a driver value (nil → NULL).
func nullString[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

// withID sets the id column only when the caller chose one; otherwise the
// database default generates it.
func withID(args pgx.NamedArgs, id uuid.UUID) pgx.NamedArgs {
	if id != uuid.Nil {
		args["id"] = id
	}
	return args
}
