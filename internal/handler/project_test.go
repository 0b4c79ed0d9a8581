package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfe-complete/complete-api/internal/domain"
	"github.com/dfe-complete/complete-api/internal/handler"
	"github.com/dfe-complete/complete-api/internal/service"
)

func projectFixture() domain.Project {
	sig := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	assignee := uuid.New()
	return domain.Project{
		ID:                         uuid.New(),
		Urn:                        123456,
		Type:                       domain.ProjectTypeConversion,
		State:                      domain.ProjectStateActive,
		IncomingTrustUkprn:         domain.UkprnPtr(10059853),
		SignificantDate:            &sig,
		SignificantDateProvisional: true,
		Team:                       domain.TeamLondon,
		Region:                     "London",
		AssignedToID:               &assignee,
		CreatedAt:                  time.Now().UTC(),
		UpdatedAt:                  time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- POST /v1/projects -----------------------------------------------------

func TestCreateProject_201(t *testing.T) {
	fixture := projectFixture()
	var got domain.CreateConversionProject
	svc := &mockProjectServicer{
		createConversion: func(_ context.Context, in domain.CreateConversionProject) (domain.Project, error) {
			got = in
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/projects", jsonBody(t, map[string]any{
		"urn":                          123456,
		"significantDate":              "2025-09-01",
		"isSignificantDateProvisional": true,
		"incomingTrustUkprn":           10059853,
		"isDueTo2Ri":                   true,
		"hasAcademyOrderBeenIssued":    false,
		"advisoryBoardDate":            "2025-05-14",
		"advisoryBoardConditions":      "None",
		"establishmentSharepointLink":  "https://sharepoint.example/school",
		"incomingTrustSharepointLink":  "https://sharepoint.example/trust",
		"userAdId":                     "ad-123",
	}))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(handler.Services{Projects: svc}, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.Urn(123456), got.Urn)
	assert.Equal(t, domain.Ukprn(10059853), got.IncomingTrustUkprn)
	assert.Equal(t, "2025-09-01", got.SignificantDate.Format("2006-01-02"))
	assert.Equal(t, "2025-05-14", got.AdvisoryBoardDate.Format("2006-01-02"))
	assert.Equal(t, "None", got.AdvisoryBoardConditions)
	assert.Equal(t, "ad-123", got.UserAdID)
	assert.True(t, got.IsDueTo2Ri)

	var resp handler.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, 123456, resp.Urn)
	require.NotNil(t, resp.IncomingTrustUkprn)
	assert.Equal(t, 10059853, *resp.IncomingTrustUkprn)
	require.NotNil(t, resp.SignificantDate)
	assert.Equal(t, "2025-09-01", resp.SignificantDate.Format("2006-01-02"))
	assert.Equal(t, "london", resp.Team)
}

func TestCreateProject_422_ValidationError(t *testing.T) {
	svc := &mockProjectServicer{
		createConversion: func(context.Context, domain.CreateConversionProject) (domain.Project, error) {
			return domain.Project{}, fmt.Errorf("%w: urn must be a 6 digit number", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/projects", strings.NewReader(`{"urn":1}`))
	rec := serve(handler.Services{Projects: svc}, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Equal(t, "urn must be a 6 digit number", detail.Message)
}

func TestCreateProject_400_MalformedBody(t *testing.T) {
	svc := &mockProjectServicer{}

	req := httptest.NewRequest(http.MethodPost, "/v1/projects", strings.NewReader(`{"significantDate":"not-a-date"}`))
	rec := serve(handler.Services{Projects: svc}, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestCreateProject_500_ServiceError(t *testing.T) {
	svc := &mockProjectServicer{
		createConversion: func(context.Context, domain.CreateConversionProject) (domain.Project, error) {
			return domain.Project{}, errors.New("db down")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/projects", strings.NewReader(`{}`))
	rec := serve(handler.Services{Projects: svc}, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "internal_error", detail.Code)
	assert.NotContains(t, detail.Message, "db down")
}

// ---- GET /v1/projects?urn= -------------------------------------------------

func TestGetProject_200(t *testing.T) {
	fixture := projectFixture()
	svc := &mockProjectServicer{
		getByURN: func(_ context.Context, urn domain.Urn) (domain.Project, error) {
			assert.Equal(t, domain.Urn(123456), urn)
			return fixture, nil
		},
	}

	rec := serve(handler.Services{Projects: svc}, httptest.NewRequest(http.MethodGet, "/v1/projects?urn=123456", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, fixture.AssignedToID, resp.AssignedToId)
}

func TestGetProject_404(t *testing.T) {
	svc := &mockProjectServicer{
		getByURN: func(context.Context, domain.Urn) (domain.Project, error) {
			return domain.Project{}, fmt.Errorf("service.ProjectService.GetByURN: %w", domain.ErrNotFound)
		},
	}

	rec := serve(handler.Services{Projects: svc}, httptest.NewRequest(http.MethodGet, "/v1/projects?urn=123456", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestGetProject_400(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing urn", "/v1/projects"},
		{"non-numeric urn", "/v1/projects?urn=abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(handler.Services{Projects: &mockProjectServicer{}}, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// ---- DELETE /v1/projects?urn= ----------------------------------------------

func TestRemoveProject_204(t *testing.T) {
	var removed domain.Urn
	svc := &mockProjectServicer{
		removeByURN: func(_ context.Context, urn domain.Urn) error {
			removed = urn
			return nil
		},
	}

	rec := serve(handler.Services{Projects: svc}, httptest.NewRequest(http.MethodDelete, "/v1/projects?urn=123456", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.Urn(123456), removed)
}

func TestRemoveProject_404(t *testing.T) {
	svc := &mockProjectServicer{
		removeByURN: func(context.Context, domain.Urn) error { return domain.ErrNotFound },
	}

	rec := serve(handler.Services{Projects: svc}, httptest.NewRequest(http.MethodDelete, "/v1/projects?urn=123456", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /v1/projects/list/all ---------------------------------------------

func TestListAllProjects_200_Defaults(t *testing.T) {
	item := domain.ProjectListItem{
		EstablishmentName: "St Mary's",
		ProjectID:         uuid.New(),
		Urn:               123456,
		State:             domain.ProjectStateActive,
		Type:              domain.ProjectTypeConversion,
		FormAMat:          true,
		AssignedToName:    "Jo Bloggs",
	}
	svc := &mockProjectServicer{
		listAll: func(_ context.Context, f domain.ProjectFilter, p domain.PaginationParams) (service.ListResult, error) {
			assert.Equal(t, domain.ProjectFilter{}, f)
			assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
			return service.ListResult{Items: []domain.ProjectListItem{item}, Total: 1}, nil
		},
	}

	rec := serve(handler.Services{Projects: svc}, httptest.NewRequest(http.MethodGet, "/v1/projects/list/all", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.ProjectList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "St Mary's", resp.Data[0].EstablishmentName)
	assert.Equal(t, item.ProjectID, resp.Data[0].ProjectId)
	assert.True(t, resp.Data[0].FormAMat)
	assert.Nil(t, resp.Data[0].SignificantDate)
	assert.Equal(t, handler.Pagination{Page: 1, Limit: 20, Total: 1}, resp.Pagination)
}

func TestListAllProjects_200_Params(t *testing.T) {
	svc := &mockProjectServicer{
		listAll: func(_ context.Context, f domain.ProjectFilter, p domain.PaginationParams) (service.ListResult, error) {
			assert.Equal(t, domain.ProjectFilter{State: domain.ProjectStateCompleted, Type: domain.ProjectTypeTransfer}, f)
			assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 100}, p)
			return service.ListResult{Total: 0}, nil
		},
	}

	rec := serve(handler.Services{Projects: svc},
		httptest.NewRequest(http.MethodGet, "/v1/projects/list/all?page=2&limit=500&state=completed&type=transfer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.ProjectList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp.Data, "empty pages must encode as []")
	assert.Empty(t, resp.Data)
}

func TestListAllProjects_400_BadPage(t *testing.T) {
	rec := serve(handler.Services{Projects: &mockProjectServicer{}},
		httptest.NewRequest(http.MethodGet, "/v1/projects/list/all?page=first", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAllProjects_422_UnknownState(t *testing.T) {
	svc := &mockProjectServicer{
		listAll: func(context.Context, domain.ProjectFilter, domain.PaginationParams) (service.ListResult, error) {
			return service.ListResult{}, fmt.Errorf("%w: unknown project state %q", domain.ErrValidation, "archived")
		},
	}

	rec := serve(handler.Services{Projects: svc},
		httptest.NewRequest(http.MethodGet, "/v1/projects/list/all?state=archived", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /v1/projects/count/all --------------------------------------------

func TestCountAllProjects_200(t *testing.T) {
	svc := &mockProjectServicer{
		count: func(_ context.Context, f domain.ProjectFilter) (int64, error) {
			assert.Equal(t, domain.ProjectTypeConversion, f.Type)
			return 12, nil
		},
	}

	rec := serve(handler.Services{Projects: svc},
		httptest.NewRequest(http.MethodGet, "/v1/projects/count/all?type=conversion", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.CountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(12), resp.Count)
}
