package appointment

import (
	"context"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type AddNotes struct {
	repo domain.Repository
}

func NewAddNotes(repo domain.Repository) *AddNotes {
	return &AddNotes{repo: repo}
}

// Execute overwrites the teacher's notes. No status change, no
// notification; repeating the call with the same notes is a no-op.
func (uc *AddNotes) Execute(
	ctx context.Context,
	eventID uint,
	teacherID uint,
	notes string,
) (*models.Event, error) {

	ev, err := uc.repo.GetForTeacher(ctx, eventID, teacherID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	ev.Notes = notes

	if err := uc.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	return ev, nil
}
