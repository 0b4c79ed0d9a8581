package domain

// ConversionCSVModel is everything needed to render one row of the
// conversion export: the project and the records joined to it.
//
// Only Project is guaranteed; every other association may be nil and renders
// as blank columns.
type ConversionCSVModel struct {
	Project                Project
	CurrentSchool          *Establishment
	Academy                *Establishment
	LocalAuthority         *LocalAuthority
	SignificantDateHistory *SignificantDateHistory
	ConversionTasks        *ConversionTasksData
	CreatedBy              *User
	AssignedTo             *User

	MainContact               *Contact
	Headteacher               *Contact
	LocalAuthorityContact     *Contact
	IncomingContact           *Contact
	OutgoingContact           *Contact
	IncomingCEOContact        *Contact
	SolicitorContact          *Contact
	DioceseContact            *Contact
	DirectorOfServicesContact *Contact
}
