package repo

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// Filter is an immutable description of a WHERE clause plus ordering and
// paging. Column names come from code, never from request input; values are
// always passed as named arguments.
//
//	repo.Eq("type", "conversion").Ne("state", "deleted").OrderBy("urn")
type Filter struct {
	conds   []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

// All returns a filter that matches every row.
func All() Filter { return Filter{} }

// Eq starts a filter matching column = value.
func Eq(column string, value any) Filter { return All().Eq(column, value) }

// Eq adds column = value.
func (f Filter) Eq(column string, value any) Filter {
	return f.with("%s = %s", column, value)
}

// Ne adds column <> value.
func (f Filter) Ne(column string, value any) Filter {
	return f.with("%s <> %s", column, value)
}

// In adds column = ANY(values). values must be a slice.
func (f Filter) In(column string, values any) Filter {
	return f.with("%s = ANY(%s)", column, values)
}

// Gte adds column >= value.
func (f Filter) Gte(column string, value any) Filter {
	return f.with("%s >= %s", column, value)
}

// Lt adds column < value.
func (f Filter) Lt(column string, value any) Filter {
	return f.with("%s < %s", column, value)
}

// NotNull adds column IS NOT NULL.
func (f Filter) NotNull(column string) Filter {
	out := f.clone()
	out.conds = append(out.conds, column+" IS NOT NULL")
	return out
}

// OrderBy sets the ORDER BY expression, e.g. "created_at DESC".
func (f Filter) OrderBy(expr string) Filter {
	out := f.clone()
	out.orderBy = expr
	return out
}

// Page restricts Fetch to one page of results.
func (f Filter) Page(p domain.PaginationParams) Filter {
	out := f.clone()
	out.limit = p.Limit
	out.offset = p.Offset()
	return out
}

func (f Filter) with(format, column string, value any) Filter {
	out := f.clone()
	name := fmt.Sprintf("p%d", len(out.args))
	out.conds = append(out.conds, fmt.Sprintf(format, column, "@"+name))
	out.args = append(out.args, value)
	return out
}

// clone copies the slices so that derived filters never share backing arrays.
func (f Filter) clone() Filter {
	out := f
	out.conds = append([]string(nil), f.conds...)
	out.args = append([]any(nil), f.args...)
	return out
}

func (f Filter) whereSQL() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

func (f Filter) namedArgs() pgx.NamedArgs {
	args := make(pgx.NamedArgs, len(f.args))
	for i, v := range f.args {
		args[fmt.Sprintf("p%d", i)] = v
	}
	return args
}

// String renders the filter as SQL with its arguments, for logs and tests:
//
//	WHERE type = @p0 ORDER BY urn [conversion]
func (f Filter) String() string {
	s := strings.TrimSpace(f.whereSQL())
	if f.orderBy != "" {
		s = strings.TrimSpace(s + " ORDER BY " + f.orderBy)
	}
	if f.limit > 0 {
		s = strings.TrimSpace(fmt.Sprintf("%s LIMIT %d OFFSET %d", s, f.limit, f.offset))
	}
	return fmt.Sprintf("%s %v", s, f.args)
}
