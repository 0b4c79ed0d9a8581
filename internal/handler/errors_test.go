package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfe-complete/complete-api/internal/domain"
)

func TestUnwrapMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"bare sentinel", domain.ErrValidation, "validation error"},
		{"service wrapped", fmt.Errorf("service.ExportService.ConversionCSV: %w", fmt.Errorf("%w: year must be between 2000 and 2100", domain.ErrValidation)), "year must be between 2000 and 2100"},
		{"unrelated", errors.New("boom"), "boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unwrapMessage(tc.err))
		})
	}
}
