package models

// Lead status constants. Enquiries and registrations move forward through
// new, contacted and closed.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead source constants
const (
	SourceWebsite       = "website"
	SourcePropertyPage  = "property_page"
	SourceEMICalculator = "emi_calculator"
	SourceLandingPage   = "landing_page"
)

var (
	LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusClosed}
	LeadSources  = []string{SourceWebsite, SourcePropertyPage, SourceEMICalculator, SourceLandingPage}
)

// IsValidLeadStatus checks if the lead status is valid
func IsValidLeadStatus(status string) bool {
	return contains(LeadStatuses, status)
}

// IsValidLeadSource checks if the lead source is valid
func IsValidLeadSource(source string) bool {
	return contains(LeadSources, source)
}

// CanTransitionLead reports whether a lead may move from one status to
// another. Re-applying the current status is allowed so repeated admin
// clicks are harmless; moving backwards is not.
func CanTransitionLead(from, to string) bool {
	fromRank, toRank := leadRank(from), leadRank(to)
	if fromRank < 0 || toRank < 0 {
		return false
	}
	return toRank >= fromRank
}

func leadRank(status string) int {
	for i, s := range LeadStatuses {
		if s == status {
			return i
		}
	}
	return -1
}
