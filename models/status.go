package models

// RequestStatus is the shared status vocabulary of projects and change
// requests. Transitions are validated against the known set; values outside
// it are rejected instead of being stored as free text.
type RequestStatus string

const (
	StatusPending             RequestStatus = "PENDING"
	StatusApproved            RequestStatus = "APPROVED"
	StatusAccepted            RequestStatus = "ACCEPTED"
	StatusRejected            RequestStatus = "REJECTED"
	StatusDiscussion          RequestStatus = "DISCUSSION"
	StatusDocumentation       RequestStatus = "DOCUMENTATION"
	StatusDevDiscussion       RequestStatus = "DEVELOPERS_DISCUSSION"
	StatusTesting             RequestStatus = "TESTING"
	StatusInt                 RequestStatus = "INT"
	StatusQA                  RequestStatus = "QA"
	StatusUAT                 RequestStatus = "UAT"
	StatusQASignOffInProgress RequestStatus = "QA_SIGN_OFF_IN_PROGRESS"
	StatusQASignOffComplete   RequestStatus = "QA_SIGN_OFF_COMPLETE"
	StatusReleaseNotes        RequestStatus = "RELEASE_NOTES_PREPARED"
	StatusReleasedToProd      RequestStatus = "RELEASED_TO_PRODUCTION"
)

var knownStatuses = map[RequestStatus]struct{}{
	StatusPending:             {},
	StatusApproved:            {},
	StatusAccepted:            {},
	StatusRejected:            {},
	StatusDiscussion:          {},
	StatusDocumentation:       {},
	StatusDevDiscussion:       {},
	StatusTesting:             {},
	StatusInt:                 {},
	StatusQA:                  {},
	StatusUAT:                 {},
	StatusQASignOffInProgress: {},
	StatusQASignOffComplete:   {},
	StatusReleaseNotes:        {},
	StatusReleasedToProd:      {},
}

func (s RequestStatus) IsValid() bool {
	_, exist := knownStatuses[s]
	return exist
}

// IsAllowChange reports whether a transition from s to next is permitted.
// Self-transitions are not; RELEASED_TO_PRODUCTION is terminal apart from a
// rollback to REJECTED.
func (s RequestStatus) IsAllowChange(next RequestStatus) bool {
	if !next.IsValid() || next == s {
		return false
	}
	if s == StatusReleasedToProd {
		return next == StatusRejected
	}
	return true
}
