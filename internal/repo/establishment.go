package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// EstablishmentRepo is the repository for schools and academies, keyed by URN.
type EstablishmentRepo = Repository[domain.Establishment]

// NewEstablishmentRepo constructs an EstablishmentRepo backed by db.
func NewEstablishmentRepo(db db) EstablishmentRepo {
	return newRepository(db, table[domain.Establishment]{
		name:  "establishments",
		label: "EstablishmentRepo",
		columns: []string{
			"id", "urn", "ukprn", "name",
			"local_authority_code", "local_authority_name", "establishment_number",
			"type_name", "phase_name", "region_name", "diocese_name",
			"age_range_lower", "age_range_upper",
			"address_street", "address_locality", "address_additional",
			"address_town", "address_county", "address_postcode",
		},
		scan:   scanEstablishment,
		values: establishmentValues,
	})
}

func scanEstablishment(s scanner) (domain.Establishment, error) {
	var (
		e            domain.Establishment
		id           pgtype.UUID
		ukprn        pgtype.Int4
		lower, upper pgtype.Int4
	)

	err := s.Scan(
		&id, (*int)(&e.Urn), &ukprn, &e.Name,
		&e.LocalAuthorityCode, &e.LocalAuthorityName, &e.EstablishmentNumber,
		&e.TypeName, &e.PhaseName, &e.RegionName, &e.DioceseName,
		&lower, &upper,
		&e.AddressStreet, &e.AddressLocality, &e.AddressAdditional,
		&e.AddressTown, &e.AddressCounty, &e.AddressPostcode,
	)
	if err != nil {
		return domain.Establishment{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.Ukprn = ukprnOrNil(ukprn)
	e.AgeRangeLower = intOrNil(lower)
	e.AgeRangeUpper = intOrNil(upper)
	return e, nil
}

func establishmentValues(e domain.Establishment) pgx.NamedArgs {
	return withID(pgx.NamedArgs{
		"urn":                  int(e.Urn),
		"ukprn":                nullInt(e.Ukprn),
		"name":                 e.Name,
		"local_authority_code": e.LocalAuthorityCode,
		"local_authority_name": e.LocalAuthorityName,
		"establishment_number": e.EstablishmentNumber,
		"type_name":            e.TypeName,
		"phase_name":           e.PhaseName,
		"region_name":          e.RegionName,
		"diocese_name":         e.DioceseName,
		"age_range_lower":      e.AgeRangeLower,
		"age_range_upper":      e.AgeRangeUpper,
		"address_street":       e.AddressStreet,
		"address_locality":     e.AddressLocality,
		"address_additional":   e.AddressAdditional,
		"address_town":         e.AddressTown,
		"address_county":       e.AddressCounty,
		"address_postcode":     e.AddressPostcode,
	}, e.ID)
}
