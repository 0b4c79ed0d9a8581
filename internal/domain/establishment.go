package domain

import "github.com/google/uuid"

// Establishment is a school or academy record from the GIAS register.
type Establishment struct {
	ID                  uuid.UUID
	Urn                 Urn
	Ukprn               *Ukprn
	Name                string
	LocalAuthorityCode  string
	LocalAuthorityName  string
	EstablishmentNumber string
	TypeName            string
	PhaseName           string
	RegionName          string
	DioceseName         string
	AgeRangeLower       *int
	AgeRangeUpper       *int
	AddressStreet       string
	AddressLocality     string
	AddressAdditional   string
	AddressTown         string
	AddressCounty       string
	AddressPostcode     string
}

// The getters below are nil-safe so export columns can read optional
// establishments without guarding every access.

func (e *Establishment) GetName() string {
	if e == nil {
		return ""
	}
	return e.Name
}

func (e *Establishment) GetTypeName() string {
	if e == nil {
		return ""
	}
	return e.TypeName
}

func (e *Establishment) GetRegionName() string {
	if e == nil {
		return ""
	}
	return e.RegionName
}

func (e *Establishment) GetDioceseName() string {
	if e == nil {
		return ""
	}
	return e.DioceseName
}

// Address returns the six address lines in export order:
// street, locality, additional, town, county, postcode.
func (e *Establishment) Address() [6]string {
	if e == nil {
		return [6]string{}
	}
	return [6]string{
		e.AddressStreet, e.AddressLocality, e.AddressAdditional,
		e.AddressTown, e.AddressCounty, e.AddressPostcode,
	}
}
