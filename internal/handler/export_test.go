package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/handler"
)

const csvFixture = "School name,School URN\nSt Mary's,123456\n"

func exportServicer(t *testing.T, wantMonth, wantYear int) *mockExportServicer {
	return &mockExportServicer{
		conversionCSV: func(_ context.Context, month, year int) (string, error) {
			assert.Equal(t, wantMonth, month)
			assert.Equal(t, wantYear, year)
			return csvFixture, nil
		},
	}
}

// ---- POST /v1/csv-export ---------------------------------------------------

func TestGetConversionCSV_200_Attachment(t *testing.T) {
	rec := serve(handler.Services{Export: exportServicer(t, 9, 2025)},
		httptest.NewRequest(http.MethodPost, "/v1/csv-export?month=9&year=2025", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="filename.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, fmt.Sprint(len(csvFixture)), rec.Header().Get("Content-Length"))
	assert.Equal(t, csvFixture, rec.Body.String())
}

func TestGetConversionCSV_400_MissingParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing month", "/v1/csv-export?year=2025"},
		{"missing year", "/v1/csv-export?month=9"},
		{"non-numeric month", "/v1/csv-export?month=sep&year=2025"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(handler.Services{Export: &mockExportServicer{}},
				httptest.NewRequest(http.MethodPost, tc.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "bad_request", decodeError(t, rec).Code)
		})
	}
}

func TestGetConversionCSV_422_OutOfRange(t *testing.T) {
	svc := &mockExportServicer{
		conversionCSV: func(context.Context, int, int) (string, error) {
			return "", fmt.Errorf("%w: month must be between 1 and 12", domain.ErrValidation)
		},
	}

	rec := serve(handler.Services{Export: svc},
		httptest.NewRequest(http.MethodPost, "/v1/csv-export?month=13&year=2025", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "month must be between 1 and 12", decodeError(t, rec).Message)
}

// ---- POST /v1/csv-export/contents ------------------------------------------

func TestGetConversionCSVContents_200_PlainText(t *testing.T) {
	rec := serve(handler.Services{Export: exportServicer(t, 1, 2026)},
		httptest.NewRequest(http.MethodPost, "/v1/csv-export/contents?month=1&year=2026", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, csvFixture, rec.Body.String())
}
