package csvexport

import (
	"strconv"

	"github.com/dfe-complete/complete-api/internal/domain"
)

// Column pairs a header title with the builder for its cells, so the header
// and every row always have the same number of cells.
type Column[T any] struct {
	Header  string
	Builder Builder[T]
}

type conversion = domain.ConversionCSVModel

// Selectors shared by several conversion columns.
func project(m conversion) *domain.Project             { return &m.Project }
func currentSchool(m conversion) *domain.Establishment { return m.CurrentSchool }
func createdBy(m conversion) *domain.User              { return m.CreatedBy }
func assignedTo(m conversion) *domain.User             { return m.AssignedTo }

func rpaOption(m conversion) *domain.RiskProtectionArrangementOption {
	if m.ConversionTasks == nil {
		return nil
	}
	return m.ConversionTasks.RiskProtectionArrangementOption
}

func tasks(m conversion) domain.ConversionTasksData {
	if m.ConversionTasks == nil {
		return domain.ConversionTasksData{}
	}
	return *m.ConversionTasks
}

func schoolAddress(i int) Func[conversion] {
	return func(m conversion) string { return m.CurrentSchool.Address()[i] }
}

func contactName(sel func(conversion) *domain.Contact) Func[conversion] {
	return func(m conversion) string { return sel(m).GetName() }
}

func contactEmail(sel func(conversion) *domain.Contact) Func[conversion] {
	return func(m conversion) string { return sel(m).GetEmail() }
}

// contactRole renders role when the contact exists.
func contactRole(sel func(conversion) *domain.Contact, role string) Func[conversion] {
	return func(m conversion) string {
		if sel(m) == nil {
			return ""
		}
		return role
	}
}

// ConversionColumns returns the conversion export schema in output order.
// trusts is consulted for every incoming-trust column; pass a cache that
// has already been hydrated for the models being rendered.
func ConversionColumns(trusts TrustLookup) []Column[conversion] {
	trustField := func(field func(*domain.Trust) string) Builder[conversion] {
		return IncomingTrustData(trusts, project, field)
	}

	headteacher := func(m conversion) *domain.Contact { return m.Headteacher }
	ceo := func(m conversion) *domain.Contact { return m.IncomingCEOContact }
	laContact := func(m conversion) *domain.Contact { return m.LocalAuthorityContact }
	incoming := func(m conversion) *domain.Contact { return m.IncomingContact }
	outgoing := func(m conversion) *domain.Contact { return m.OutgoingContact }
	solicitor := func(m conversion) *domain.Contact { return m.SolicitorContact }
	diocese := func(m conversion) *domain.Contact { return m.DioceseContact }
	director := func(m conversion) *domain.Contact { return m.DirectorOfServicesContact }

	return []Column[conversion]{
		// School and academy
		{"School name", BlankIfEmpty(func(m conversion) string { return m.CurrentSchool.GetName() })},
		{"School URN", Func[conversion](func(m conversion) string { return m.Project.Urn.String() })},
		{"Project type", ProjectType()},
		{"Academy name", BlankIfEmpty(func(m conversion) string { return m.Academy.GetName() })},
		{"Academy URN", Func[conversion](func(m conversion) string {
			if m.Academy == nil {
				return ""
			}
			return m.Academy.Urn.String()
		})},
		{"Academy DfE number/LAESTAB", DfeNumberLAESTAB()},
		{"Incoming trust name", trustField(func(t *domain.Trust) string { return t.Name })},
		{"Local authority", BlankIfEmpty(func(m conversion) string { return m.LocalAuthority.GetName() })},
		{"Region", BlankIfEmpty(func(m conversion) string { return m.CurrentSchool.GetRegionName() })},
		{"Diocese", BlankIfEmpty(func(m conversion) string { return m.CurrentSchool.GetDioceseName() })},

		// Dates and decisions
		{"Provisional conversion date", ProvisionalDate()},
		{"Confirmed conversion date", DefaultIf(
			func(m conversion) bool { return m.Project.SignificantDateProvisional },
			func(m conversion) string { return formatDate(m.Project.SignificantDate) },
			"unconfirmed",
		)},
		{"Academy order type", AcademyOrderType(project)},
		{"2RI (Two Requires Improvement)", Bool(func(m conversion) *bool { return m.Project.TwoRequiresImprovement }, "yes", "no")},
		{"Advisory board date", Func[conversion](func(m conversion) string { return formatDate(m.Project.AdvisoryBoardDate) })},
		{"Advisory board conditions", BlankIfEmpty(func(m conversion) string { return m.Project.AdvisoryBoardConditions })},
		{"Risk protection arrangement", RPAOption(rpaOption)},
		{"Reason for commercial insurance", DefaultIf(
			func(m conversion) bool {
				opt := rpaOption(m)
				return opt == nil || *opt != domain.RPACommercial
			},
			func(m conversion) string { return tasks(m).RiskProtectionArrangementReason },
			"not applicable",
		)},
		{"All conditions met", Bool(func(m conversion) *bool { return m.Project.AllConditionsMet }, "yes", "no")},
		{"Completed grant payment certificate received", DefaultIfEmpty(
			func(m conversion) string { return formatDate(tasks(m).ReceiveGrantPaymentCertificateDateReceived) },
			"unconfirmed",
		)},

		// School details
		{"School type", BlankIfEmpty(func(m conversion) string { return m.CurrentSchool.GetTypeName() })},
		{"School age range", AgeRange(currentSchool)},
		{"School phase", SchoolPhase(currentSchool)},
		{"Proposed capacity for pupils in reception to year 6", BlankIfEmpty(func(m conversion) string {
			return tasks(m).ProposedCapacityOfTheAcademyReceptionToSixYears
		})},
		{"Proposed capacity for pupils in years 7 to 11", BlankIfEmpty(func(m conversion) string {
			return tasks(m).ProposedCapacityOfTheAcademySevenToElevenYears
		})},
		{"Proposed capacity for students in year 12 or above", BlankIfEmpty(func(m conversion) string {
			return tasks(m).ProposedCapacityOfTheAcademyTwelveOrAboveYears
		})},
		{"School address 1", schoolAddress(0)},
		{"School address 2", schoolAddress(1)},
		{"School address 3", schoolAddress(2)},
		{"School town", schoolAddress(3)},
		{"School county", schoolAddress(4)},
		{"School postcode", schoolAddress(5)},
		{"School sharepoint folder", BlankIfEmpty(func(m conversion) string { return m.Project.EstablishmentSharepointLink })},

		// Incoming trust
		{"Conversion type", FormAMat(project)},
		{"Incoming trust UKPRN", trustField(func(t *domain.Trust) string {
			if t.Ukprn == 0 {
				return ""
			}
			return strconv.Itoa(int(t.Ukprn))
		})},
		{"Incoming trust group identifier", trustField(func(t *domain.Trust) string { return t.ReferenceNumber })},
		{"Incoming trust companies house number", trustField(func(t *domain.Trust) string { return t.CompaniesHouseNumber })},
		{"Incoming trust address 1", trustField(func(t *domain.Trust) string { return t.Address.Street })},
		{"Incoming trust address 2", trustField(func(t *domain.Trust) string { return t.Address.Locality })},
		{"Incoming trust address 3", trustField(func(t *domain.Trust) string { return t.Address.Additional })},
		{"Incoming trust address town", trustField(func(t *domain.Trust) string { return t.Address.Town })},
		{"Incoming trust address county", trustField(func(t *domain.Trust) string { return t.Address.County })},
		{"Incoming trust address postcode", trustField(func(t *domain.Trust) string { return t.Address.Postcode })},
		{"Incoming trust sharepoint link", BlankIfEmpty(func(m conversion) string { return m.Project.IncomingTrustSharepointLink })},

		// People
		{"Project created by name", UserName(createdBy)},
		{"Project created by email address", BlankIfEmpty(func(m conversion) string { return m.CreatedBy.GetEmail() })},
		{"Assigned to name", UserName(assignedTo)},
		{"Team managing the project", BlankIfEmpty(func(m conversion) string { return m.Project.Team.DisplayName() })},
		{"Project main contact name", contactName(func(m conversion) *domain.Contact { return m.MainContact })},
		{"Headteacher name", contactName(headteacher)},
		{"Headteacher role", contactRole(headteacher, "Headteacher")},
		{"Headteacher email", contactEmail(headteacher)},
		{"Local authority contact name", contactName(laContact)},
		{"Local authority contact email", contactEmail(laContact)},
		{"Primary contact for incoming trust name", contactName(incoming)},
		{"Primary contact for incoming trust email", contactEmail(incoming)},
		{"Primary contact for outgoing trust name", contactName(outgoing)},
		{"Primary contact for outgoing trust email", contactEmail(outgoing)},
		{"Incoming trust CEO name", contactName(ceo)},
		{"Incoming trust CEO role", contactRole(ceo, "CEO")},
		{"Incoming trust CEO email", contactEmail(ceo)},
		{"Solicitor contact name", contactName(solicitor)},
		{"Solicitor contact email", contactEmail(solicitor)},
		{"Diocese contact name", contactName(diocese)},
		{"Diocese contact email", contactEmail(diocese)},
		{"Director of child services name", contactName(director)},
		{"Director of child services email", contactEmail(director)},
		{"Director of child services role", Func[conversion](func(m conversion) string { return director(m).GetTitle() })},
	}
}
