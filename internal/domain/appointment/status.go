package appointment

import "github.com/campusconnect/campus-scheduler/internal/httperr"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no transition leaves the status.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanApprove permits Pending -> Approved only.
func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel permits Pending -> Cancelled and Approved -> Cancelled.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete guards the Complete transition. The historical behavior
// accepts Complete from any non-terminal status; requireApproved
// tightens it to Approved only.
func CanComplete(current Status, requireApproved bool) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	if requireApproved && current != StatusApproved {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
