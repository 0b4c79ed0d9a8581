package handler

import (
	"net/http"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// TrustWithProjects is one row of GET /v1/trusts/list/all.
type TrustWithProjects struct {
	Ukprn            int    `json:"ukprn"`
	Name             string `json:"name"`
	ConversionsCount int    `json:"conversionsCount"`
	TransfersCount   int    `json:"transfersCount"`
}

// ListAllTrusts handles GET /v1/trusts/list/all.
func (s *Server) ListAllTrusts(w http.ResponseWriter, r *http.Request) {
	trusts, err := s.trusts.ListAllWithProjects(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "trusts not found")
		return
	}

	out := make([]TrustWithProjects, len(trusts))
	for i, t := range trusts {
		out[i] = trustToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func trustToResponse(t domain.TrustWithProjects) TrustWithProjects {
	return TrustWithProjects{
		Ukprn:            int(t.Ukprn),
		Name:             t.Name,
		ConversionsCount: t.ConversionsCount,
		TransfersCount:   t.TransfersCount,
	}
}
