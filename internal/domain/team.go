package domain

// ProjectTeam is the team responsible for a project or a user's home team.
type ProjectTeam string

const (
	TeamLondon                   ProjectTeam = "london"
	TeamSouthEast                ProjectTeam = "south_east"
	TeamYorkshireAndTheHumber    ProjectTeam = "yorkshire_and_the_humber"
	TeamNorthWest                ProjectTeam = "north_west"
	TeamEastOfEngland            ProjectTeam = "east_of_england"
	TeamWestMidlands             ProjectTeam = "west_midlands"
	TeamNorthEast                ProjectTeam = "north_east"
	TeamSouthWest                ProjectTeam = "south_west"
	TeamEastMidlands             ProjectTeam = "east_midlands"
	TeamRegionalCaseworkServices ProjectTeam = "regional_casework_services"
	TeamServiceSupport           ProjectTeam = "service_support"
	TeamBusinessSupport          ProjectTeam = "business_support"
	TeamDataConsumers            ProjectTeam = "data_consumers"
)

var teamDisplayNames = map[ProjectTeam]string{
	TeamLondon:                   "London",
	TeamSouthEast:                "South East",
	TeamYorkshireAndTheHumber:    "Yorkshire and the Humber",
	TeamNorthWest:                "North West",
	TeamEastOfEngland:            "East of England",
	TeamWestMidlands:             "West Midlands",
	TeamNorthEast:                "North East",
	TeamSouthWest:                "South West",
	TeamEastMidlands:             "East Midlands",
	TeamRegionalCaseworkServices: "Regional casework services",
	TeamServiceSupport:           "Service support",
	TeamBusinessSupport:          "Business support",
	TeamDataConsumers:            "Data consumers",
}

// DisplayName returns the human-readable team name, or "" when the team is
// unset or unknown.
func (t ProjectTeam) DisplayName() string {
	return teamDisplayNames[t]
}

// Valid reports whether t is a known team.
func (t ProjectTeam) Valid() bool {
	_, ok := teamDisplayNames[t]
	return ok
}
