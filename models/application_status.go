package models

import "fmt"

// Application status graph:
//
//	submitted ──► under_review ──► interview ──► offer ──► hired
//	    │              │               │           │
//	    ├──────────────┴───────────────┴───────────┴──► rejected
//	    └──────────────┴───────────────┴───────────┴──► withdrawn
//
// hired, rejected and withdrawn are terminal. Schools drive the forward
// transitions and rejections; withdrawn is teacher-initiated.
type ApplicationStatus string

const (
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationInterview   ApplicationStatus = "interview"
	ApplicationOffer       ApplicationStatus = "offer"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationSubmitted:   {ApplicationUnderReview, ApplicationRejected, ApplicationWithdrawn},
	ApplicationUnderReview: {ApplicationInterview, ApplicationRejected, ApplicationWithdrawn},
	ApplicationInterview:   {ApplicationOffer, ApplicationRejected, ApplicationWithdrawn},
	ApplicationOffer:       {ApplicationHired, ApplicationRejected, ApplicationWithdrawn},
	// hired, rejected and withdrawn have no outgoing transitions
}

// ParseApplicationStatus converts a raw string to an ApplicationStatus,
// returning an error for unknown values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationSubmitted, ApplicationUnderReview, ApplicationInterview,
		ApplicationOffer, ApplicationHired, ApplicationRejected, ApplicationWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition reports whether moving from → to is permitted.
func (from ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	for _, s := range applicationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}
