package csvexport

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNilModels is returned by ContentGenerator.Generate for a nil model slice.
// An empty, non-nil slice is valid and renders the header alone.
var ErrNilModels = errors.New("csvexport: nil models")

// RowGenerator renders the header and rows for a fixed column set.
type RowGenerator[T any] struct {
	columns []Column[T]
}

// NewRowGenerator returns a RowGenerator over columns, in order.
func NewRowGenerator[T any](columns []Column[T]) *RowGenerator[T] {
	return &RowGenerator[T]{columns: columns}
}

// GenerateHeader joins the column titles with commas.
func (g *RowGenerator[T]) GenerateHeader() string {
	titles := make([]string, len(g.columns))
	for i, c := range g.columns {
		titles[i] = c.Header
	}
	return strings.Join(titles, ",")
}

// GenerateRow runs every builder against m and joins the cells with commas.
func (g *RowGenerator[T]) GenerateRow(ctx context.Context, m T) (string, error) {
	cells := make([]string, len(g.columns))
	for i, c := range g.columns {
		v, err := c.Builder.Build(ctx, m)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", c.Header, err)
		}
		cells[i] = v
	}
	return strings.Join(cells, ","), nil
}

// ContentGenerator renders a complete CSV document.
type ContentGenerator[T any] struct {
	rows *RowGenerator[T]
}

// NewContentGenerator returns a ContentGenerator over columns.
func NewContentGenerator[T any](columns []Column[T]) *ContentGenerator[T] {
	return &ContentGenerator[T]{rows: NewRowGenerator(columns)}
}

// Generate returns the header line followed by one line per model. Every
// line, the last included, ends with "\n".
func (g *ContentGenerator[T]) Generate(ctx context.Context, models []T) (string, error) {
	if models == nil {
		return "", ErrNilModels
	}

	var b strings.Builder
	b.WriteString(g.rows.GenerateHeader())
	b.WriteByte('\n')

	for i, m := range models {
		row, err := g.rows.GenerateRow(ctx, m)
		if err != nil {
			return "", fmt.Errorf("csvexport: row %d: %w", i, err)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
