package domain

// Trust is an academy trust as reported by the trust directory.
// Values are shared read-only once fetched.
type Trust struct {
	Ukprn                Ukprn
	ReferenceNumber      string
	Name                 string
	CompaniesHouseNumber string
	Address              TrustAddress
}

// TrustAddress is the registered postal address of a trust.
type TrustAddress struct {
	Street     string
	Locality   string
	Additional string
	Town       string
	County     string
	Postcode   string
}

// TrustWithProjects summarises the projects an incoming trust is involved in.
type TrustWithProjects struct {
	Ukprn            Ukprn
	Name             string
	ConversionsCount int
	TransfersCount   int
}
