package repo

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// LocalAuthorityRepo is the repository for local authorities.
type LocalAuthorityRepo = Repository[domain.LocalAuthority]

// NewLocalAuthorityRepo constructs a LocalAuthorityRepo backed by db.
func NewLocalAuthorityRepo(db db) LocalAuthorityRepo {
	return newRepository(db, table[domain.LocalAuthority]{
		name:  "local_authorities",
		label: "LocalAuthorityRepo",
		columns: []string{
			"id", "name", "code",
			"address_1", "address_2", "address_3",
			"address_town", "address_county", "address_postcode",
		},
		scan: func(s scanner) (domain.LocalAuthority, error) {
			var (
				la domain.LocalAuthority
				id pgtype.UUID
			)
			err := s.Scan(&id, &la.Name, &la.Code,
				&la.Address1, &la.Address2, &la.Address3,
				&la.AddressTown, &la.AddressCounty, &la.AddressPostcode)
			if err != nil {
				return domain.LocalAuthority{}, err
			}
			la.ID = uuid.UUID(id.Bytes)
			return la, nil
		},
		values: func(la domain.LocalAuthority) pgx.NamedArgs {
			return withID(pgx.NamedArgs{
				"name":             la.Name,
				"code":             la.Code,
				"address_1":        la.Address1,
				"address_2":        la.Address2,
				"address_3":        la.Address3,
				"address_town":     la.AddressTown,
				"address_county":   la.AddressCounty,
				"address_postcode": la.AddressPostcode,
			}, la.ID)
		},
	})
}
