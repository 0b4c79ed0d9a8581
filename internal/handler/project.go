package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// CreateConversionProjectRequest is the body of POST /v1/projects.
type CreateConversionProjectRequest struct {
	Urn                                  int                `json:"urn"`
	SignificantDate                      openapi_types.Date `json:"significantDate"`
	IsSignificantDateProvisional         bool               `json:"isSignificantDateProvisional"`
	IncomingTrustUkprn                   int                `json:"incomingTrustUkprn"`
	IsDueTo2Ri                           bool               `json:"isDueTo2Ri"`
	HasAcademyOrderBeenIssued            bool               `json:"hasAcademyOrderBeenIssued"`
	AdvisoryBoardDate                    openapi_types.Date `json:"advisoryBoardDate"`
	AdvisoryBoardConditions              *string            `json:"advisoryBoardConditions,omitempty"`
	EstablishmentSharepointLink          string             `json:"establishmentSharepointLink"`
	IncomingTrustSharepointLink          string             `json:"incomingTrustSharepointLink"`
	HandingOverToRegionalCaseworkService bool               `json:"handingOverToRegionalCaseworkService"`
	UserAdId                             string             `json:"userAdId"`
}

// Project is the JSON representation of a project.
type Project struct {
	Id                         openapi_types.UUID  `json:"id"`
	Urn                        int                 `json:"urn"`
	Type                       string              `json:"type"`
	State                      string              `json:"state"`
	IncomingTrustUkprn         *int                `json:"incomingTrustUkprn,omitempty"`
	AcademyUrn                 *int                `json:"academyUrn,omitempty"`
	SignificantDate            *openapi_types.Date `json:"significantDate,omitempty"`
	SignificantDateProvisional bool                `json:"significantDateProvisional"`
	AdvisoryBoardDate          *openapi_types.Date `json:"advisoryBoardDate,omitempty"`
	Team                       string              `json:"team,omitempty"`
	Region                     string              `json:"region,omitempty"`
	AssignedToId               *openapi_types.UUID `json:"assignedToId,omitempty"`
	CreatedAt                  time.Time           `json:"createdAt"`
	UpdatedAt                  time.Time           `json:"updatedAt"`
}

// ProjectListItem is one row of GET /v1/projects/list/all.
type ProjectListItem struct {
	EstablishmentName string              `json:"establishmentName"`
	ProjectId         openapi_types.UUID  `json:"projectId"`
	Urn               int                 `json:"urn"`
	SignificantDate   *openapi_types.Date `json:"significantDate,omitempty"`
	State             string              `json:"state"`
	Type              string              `json:"type"`
	FormAMat          bool                `json:"formAMat"`
	AssignedToName    string              `json:"assignedToName"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ProjectList is the body of GET /v1/projects/list/all.
type ProjectList struct {
	Data       []ProjectListItem `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// CountResponse is the body of GET /v1/projects/count/all.
type CountResponse struct {
	Count int64 `json:"count"`
}

// CreateProject handles POST /v1/projects.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body CreateConversionProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, errors.New("request body must be a JSON conversion project"))
		return
	}

	created, err := s.projects.CreateConversion(r.Context(), requestToConversion(body))
	if err != nil {
		writeServiceError(w, r, err, "project not found")
		return
	}
	writeJSON(w, http.StatusCreated, projectToResponse(created))
}

// GetProject handles GET /v1/projects?urn=.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	var urn int
	if err := queryParam(r, "urn", true, &urn); err != nil {
		badRequest(w, err)
		return
	}

	p, err := s.projects.GetByURN(r.Context(), domain.Urn(urn))
	if err != nil {
		writeServiceError(w, r, err, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(p))
}

// RemoveProject handles DELETE /v1/projects?urn=.
func (s *Server) RemoveProject(w http.ResponseWriter, r *http.Request) {
	var urn int
	if err := queryParam(r, "urn", true, &urn); err != nil {
		badRequest(w, err)
		return
	}

	if err := s.projects.RemoveByURN(r.Context(), domain.Urn(urn)); err != nil {
		writeServiceError(w, r, err, "project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAllProjects handles GET /v1/projects/list/all.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and the
// optional ?state= and ?type= filters.
func (s *Server) ListAllProjects(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", false, &page); err != nil {
		badRequest(w, err)
		return
	}
	if err := queryParam(r, "limit", false, &limit); err != nil {
		badRequest(w, err)
		return
	}
	filter, err := projectFilterParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	res, err := s.projects.ListAll(r.Context(), filter, params)
	if err != nil {
		writeServiceError(w, r, err, "projects not found")
		return
	}

	data := make([]ProjectListItem, len(res.Items))
	for i, item := range res.Items {
		data[i] = listItemToResponse(item)
	}
	writeJSON(w, http.StatusOK, ProjectList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(res.Total),
		},
	})
}

// CountAllProjects handles GET /v1/projects/count/all.
func (s *Server) CountAllProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := projectFilterParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	n, err := s.projects.Count(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "projects not found")
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Count: n})
}

// --- mapping helpers --------------------------------------------------------

func projectFilterParams(r *http.Request) (domain.ProjectFilter, error) {
	var state, typ *string
	if err := queryParam(r, "state", false, &state); err != nil {
		return domain.ProjectFilter{}, err
	}
	if err := queryParam(r, "type", false, &typ); err != nil {
		return domain.ProjectFilter{}, err
	}
	var f domain.ProjectFilter
	if state != nil {
		f.State = domain.ProjectState(*state)
	}
	if typ != nil {
		f.Type = domain.ProjectType(*typ)
	}
	return f, nil
}

// requestToConversion converts the request body into the service command.
func requestToConversion(body CreateConversionProjectRequest) domain.CreateConversionProject {
	in := domain.CreateConversionProject{
		Urn:                                  domain.Urn(body.Urn),
		SignificantDate:                      body.SignificantDate.Time,
		IsSignificantDateProvisional:         body.IsSignificantDateProvisional,
		IncomingTrustUkprn:                   domain.Ukprn(body.IncomingTrustUkprn),
		IsDueTo2Ri:                           body.IsDueTo2Ri,
		HasAcademyOrderBeenIssued:            body.HasAcademyOrderBeenIssued,
		AdvisoryBoardDate:                    body.AdvisoryBoardDate.Time,
		EstablishmentSharepointLink:          body.EstablishmentSharepointLink,
		IncomingTrustSharepointLink:          body.IncomingTrustSharepointLink,
		HandingOverToRegionalCaseworkService: body.HandingOverToRegionalCaseworkService,
		UserAdID:                             body.UserAdId,
	}
	if body.AdvisoryBoardConditions != nil {
		in.AdvisoryBoardConditions = *body.AdvisoryBoardConditions
	}
	return in
}

// projectToResponse converts a domain.Project into its JSON shape.
func projectToResponse(p domain.Project) Project {
	resp := Project{
		Id:                         p.ID,
		Urn:                        int(p.Urn),
		Type:                       string(p.Type),
		State:                      string(p.State),
		SignificantDate:            optionalDate(p.SignificantDate),
		SignificantDateProvisional: p.SignificantDateProvisional,
		AdvisoryBoardDate:          optionalDate(p.AdvisoryBoardDate),
		Team:                       string(p.Team),
		Region:                     string(p.Region),
		AssignedToId:               p.AssignedToID,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
	if p.IncomingTrustUkprn != nil {
		u := int(*p.IncomingTrustUkprn)
		resp.IncomingTrustUkprn = &u
	}
	if p.AcademyUrn != nil {
		u := int(*p.AcademyUrn)
		resp.AcademyUrn = &u
	}
	return resp
}

func listItemToResponse(item domain.ProjectListItem) ProjectListItem {
	return ProjectListItem{
		EstablishmentName: item.EstablishmentName,
		ProjectId:         item.ProjectID,
		Urn:               int(item.Urn),
		SignificantDate:   optionalDate(item.SignificantDate),
		State:             string(item.State),
		Type:              string(item.Type),
		FormAMat:          item.FormAMat,
		AssignedToName:    item.AssignedToName,
	}
}

// optionalDate converts a nullable timestamp into a nullable calendar date.
func optionalDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
