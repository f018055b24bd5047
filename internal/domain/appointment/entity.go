package appointment

import "github.com/campusconnect/campus-scheduler/internal/models"

// Domain actions mutate the event in memory; persistence is the
// caller's concern.

func Approve(ev *models.Event) error {
	if err := CanApprove(Status(ev.Status)); err != nil {
		return err
	}
	ev.Status = string(StatusApproved)
	return nil
}

func Cancel(ev *models.Event) error {
	if err := CanCancel(Status(ev.Status)); err != nil {
		return err
	}
	ev.Status = string(StatusCancelled)
	return nil
}

func Complete(ev *models.Event, requireApproved bool) error {
	if err := CanComplete(Status(ev.Status), requireApproved); err != nil {
		return err
	}
	ev.Status = string(StatusCompleted)
	return nil
}
