// Package repo contains all database access logic for the Complete API.
// A single generic Postgres repository serves every table; each entity file
// only declares its columns, how a row is scanned and which values an insert
// writes. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines the persistence operations shared by every entity.
// Services depend on this interface so they can be unit-tested with a mock.
type Repository[T any] interface {
	// Get returns the first row matching f.
	// Returns domain.ErrNotFound if nothing matches.
	Get(ctx context.Context, f Filter) (T, error)

	// Find retrieves a single row by its UUID primary key.
	// Returns domain.ErrNotFound if no row with that ID exists.
	Find(ctx context.Context, id uuid.UUID) (T, error)

	// Fetch returns every row matching f, honouring its ordering and paging.
	Fetch(ctx context.Context, f Filter) ([]T, error)

	// Count returns the number of rows matching f. Paging is ignored.
	Count(ctx context.Context, f Filter) (int64, error)

	// Add inserts entity and returns the persisted record, with DB-generated
	// id, created_at and updated_at populated.
	Add(ctx context.Context, entity T) (T, error)

	// Remove deletes every row matching f and returns how many were removed.
	// An empty filter is rejected.
	Remove(ctx context.Context, f Filter) (int64, error)
}

// table describes how one entity maps onto its Postgres table.
type table[T any] struct {
	name    string
	label   string // used in wrapped errors, e.g. "ProjectRepo"
	columns []string
	scan    func(s scanner) (T, error)
	values  func(entity T) pgx.NamedArgs
}

// pgRepository is the Postgres implementation of Repository.
type pgRepository[T any] struct {
	db db
	t  table[T]
}

func newRepository[T any](db db, t table[T]) Repository[T] {
	return &pgRepository[T]{db: db, t: t}
}

func (r *pgRepository[T]) selectSQL(f Filter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(r.t.columns, ", "), r.t.name)
	b.WriteString(f.whereSQL())
	if f.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(f.orderBy)
	}
	return b.String()
}

func (r *pgRepository[T]) Get(ctx context.Context, f Filter) (T, error) {
	q := r.selectSQL(f) + " LIMIT 1"

	result, err := r.scanOne(r.db.QueryRow(ctx, q, f.namedArgs()))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Get: %w", r.t.label, err)
	}
	return result, nil
}

func (r *pgRepository[T]) Find(ctx context.Context, id uuid.UUID) (T, error) {
	f := Eq("id", id)

	result, err := r.scanOne(r.db.QueryRow(ctx, r.selectSQL(f), f.namedArgs()))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Find: %w", r.t.label, err)
	}
	return result, nil
}

func (r *pgRepository[T]) Fetch(ctx context.Context, f Filter) ([]T, error) {
	q := r.selectSQL(f)
	if f.limit > 0 {
		q += fmt.Sprintf(" LIMIT %d OFFSET %d", f.limit, f.offset)
	}

	rows, err := r.db.Query(ctx, q, f.namedArgs())
	if err != nil {
		return nil, fmt.Errorf("repo.%s.Fetch: %w", r.t.label, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := r.t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.%s.Fetch: scan: %w", r.t.label, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.%s.Fetch: rows: %w", r.t.label, err)
	}
	return out, nil
}

func (r *pgRepository[T]) Count(ctx context.Context, f Filter) (int64, error) {
	q := "SELECT count(*) FROM " + r.t.name + f.whereSQL()

	var n int64
	if err := r.db.QueryRow(ctx, q, f.namedArgs()).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.%s.Count: %w", r.t.label, err)
	}
	return n, nil
}

func (r *pgRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	args := r.t.values(entity)

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	placeholders := make([]string, len(keys))
	for i, k := range keys {
		placeholders[i] = "@" + k
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.t.name,
		strings.Join(keys, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.t.columns, ", "),
	)

	result, err := r.scanOne(r.db.QueryRow(ctx, q, args))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Add: %w", r.t.label, err)
	}
	return result, nil
}

func (r *pgRepository[T]) Remove(ctx context.Context, f Filter) (int64, error) {
	if len(f.conds) == 0 {
		return 0, fmt.Errorf("repo.%s.Remove: refusing to delete without a filter", r.t.label)
	}

	tag, err := r.db.Exec(ctx, "DELETE FROM "+r.t.name+f.whereSQL(), f.namedArgs())
	if err != nil {
		return 0, fmt.Errorf("repo.%s.Remove: %w", r.t.label, err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgRepository[T]) scanOne(row pgx.Row) (T, error) {
	result, err := r.t.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, domain.ErrNotFound
	}
	return result, err
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing each scan
// function to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}
