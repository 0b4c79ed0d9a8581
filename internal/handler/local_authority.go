package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// LocalAuthority is the JSON representation of a local authority.
type LocalAuthority struct {
	Id              openapi_types.UUID `json:"id"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	Address1        string             `json:"address1"`
	Address2        string             `json:"address2,omitempty"`
	Address3        string             `json:"address3,omitempty"`
	AddressTown     string             `json:"addressTown,omitempty"`
	AddressCounty   string             `json:"addressCounty,omitempty"`
	AddressPostcode string             `json:"addressPostcode"`
}

// GetLocalAuthority handles GET /v1/local-authorities/{code}.
func (s *Server) GetLocalAuthority(w http.ResponseWriter, r *http.Request) {
	var code string
	if err := pathParam(r, "code", &code); err != nil {
		badRequest(w, err)
		return
	}

	la, err := s.las.GetByCode(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, err, "local authority not found")
		return
	}
	writeJSON(w, http.StatusOK, localAuthorityToResponse(la))
}

func localAuthorityToResponse(la domain.LocalAuthority) LocalAuthority {
	return LocalAuthority{
		Id:              la.ID,
		Code:            la.Code,
		Name:            la.Name,
		Address1:        la.Address1,
		Address2:        la.Address2,
		Address3:        la.Address3,
		AddressTown:     la.AddressTown,
		AddressCounty:   la.AddressCounty,
		AddressPostcode: la.AddressPostcode,
	}
}
