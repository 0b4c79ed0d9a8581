package domain

import "github.com/google/uuid"

// LocalAuthority is a council responsible for maintained schools.
type LocalAuthority struct {
	ID              uuid.UUID
	Name            string
	Code            string
	Address1        string
	Address2        string
	Address3        string
	AddressTown     string
	AddressCounty   string
	AddressPostcode string
}

// GetName returns the authority name, or "" for a nil authority.
func (la *LocalAuthority) GetName() string {
	if la == nil {
		return ""
	}
	return la.Name
}
