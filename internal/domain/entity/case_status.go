// Package entity contains the core business objects of the project.
package entity

// CaseStatus represents the lifecycle status of a case.
// Any status may move to any other; the enum only gates membership.
type CaseStatus string

const (
	// StatusRegistered is the initial status of every new case.
	StatusRegistered CaseStatus = "Registered"
	// StatusUnderInvestigation indicates active investigative work.
	StatusUnderInvestigation CaseStatus = "UnderInvestigation"
	// StatusClosed indicates the case has been resolved.
	StatusClosed CaseStatus = "Closed"
	// StatusColdCase indicates an unresolved case with no active leads.
	StatusColdCase CaseStatus = "ColdCase"
)

// String returns the string representation of the CaseStatus.
func (s CaseStatus) String() string {
	return string(s)
}

// IsValid checks if the CaseStatus is a valid value.
func (s CaseStatus) IsValid() bool {
	switch s {
	case StatusRegistered, StatusUnderInvestigation, StatusClosed, StatusColdCase:
		return true
	default:
		return false
	}
}
