package schedule

import "github.com/campusconnect/campus-scheduler/internal/httperr"

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusCancelled:
		return true
	}
	return false
}

// CanBook allows only available schedules to be claimed.
func CanBook(current Status) error {
	if current != StatusAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

// CanEdit rejects time edits and deletion while a schedule is booked.
func CanEdit(current Status) error {
	if current == StatusBooked {
		return httperr.ErrBusiness("schedule_booked")
	}
	return nil
}
