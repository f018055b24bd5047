package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
)

func TestBookAppointment(t *testing.T) {
	t.Run("books an available slot", func(t *testing.T) {
		f := newFixture()
		teacher, student, sched := f.seedBooking()

		ev, err := f.bookUC().Execute(context.Background(), student.ID, BookAppointmentInput{
			ScheduleID: sched.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusPending), ev.Status)
		assert.Equal(t, teacher.ID, ev.TeacherID)
		assert.Equal(t, student.ID, ev.StudentID)
		require.NotNil(t, ev.ScheduleID)
		assert.Equal(t, sched.ID, *ev.ScheduleID)
		assert.Equal(t,
			"Jane Doe booked an appointment on Monday 10th of March 2025 09:00 AM to 09:30 AM",
			ev.Title,
		)

		require.NotNil(t, ev.MeetingID)
		require.NotNil(t, ev.MeetingLink)
		assert.Equal(t, "981234", *ev.MeetingID)
		assert.Equal(t, "https://zoom.us/j/981234", *ev.MeetingLink)

		assert.Equal(t, string(schedDomain.StatusBooked), f.store.scheduleStatus(sched.ID))

		notifs := f.store.notificationsFor(teacher.ID)
		require.Len(t, notifs, 1)
		assert.Equal(t,
			"Jane Doe has requested an appointment on Monday 10th of March 2025 09:00 AM",
			notifs[0].Message,
		)
		assert.Equal(t, student.ID, notifs[0].SenderID)
		assert.False(t, notifs[0].IsRead)
		require.NotNil(t, notifs[0].EventID)
		assert.Equal(t, ev.ID, *notifs[0].EventID)
	})

	t.Run("keeps a caller-supplied title", func(t *testing.T) {
		f := newFixture()
		_, student, sched := f.seedBooking()

		ev, err := f.bookUC().Execute(context.Background(), student.ID, BookAppointmentInput{
			ScheduleID: sched.ID,
			Title:      "Thesis check-in",
			Notes:      "chapter 3 draft",
		})
		require.NoError(t, err)

		assert.Equal(t, "Thesis check-in", ev.Title)
		assert.Equal(t, "chapter 3 draft", ev.Notes)
	})

	t.Run("provisioning failure still books, without a link", func(t *testing.T) {
		f := newFixture()
		teacher, student, sched := f.seedBooking()
		f.provisioner.err = errors.New("zoom: 429 too many requests")

		ev, err := f.bookUC().Execute(context.Background(), student.ID, BookAppointmentInput{
			ScheduleID: sched.ID,
		})
		require.NoError(t, err)

		assert.Nil(t, ev.MeetingID)
		assert.Nil(t, ev.MeetingLink)
		assert.Equal(t, string(domain.StatusPending), ev.Status)
		assert.Equal(t, string(schedDomain.StatusBooked), f.store.scheduleStatus(sched.ID))

		// The teacher is still notified of the request.
		assert.Len(t, f.store.notificationsFor(teacher.ID), 1)
	})

	t.Run("rejects a booked slot", func(t *testing.T) {
		f := newFixture()
		_, student, sched := f.seedBooking()
		require.NoError(t, f.store.UpdateStatus(context.Background(), sched.ID,
			schedDomain.StatusAvailable, schedDomain.StatusBooked))

		_, err := f.bookUC().Execute(context.Background(), student.ID, BookAppointmentInput{
			ScheduleID: sched.ID,
		})

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "slot_unavailable", code)
		assert.Equal(t, 0, f.store.eventCount())
	})

	t.Run("rejects an unknown slot", func(t *testing.T) {
		f := newFixture()
		_, student, _ := f.seedBooking()

		_, err := f.bookUC().Execute(context.Background(), student.ID, BookAppointmentInput{
			ScheduleID: 9999,
		})

		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "slot_unavailable", code)
	})

	t.Run("concurrent bookings produce exactly one winner", func(t *testing.T) {
		f := newFixture()
		_, student, sched := f.seedBooking()
		rival := *student
		rival.ID = 3
		f.store.addUser(rival)

		uc := f.bookUC()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, id := range []uint{student.ID, rival.ID} {
			wg.Add(1)
			go func(i int, studentID uint) {
				defer wg.Done()
				_, errs[i] = uc.Execute(context.Background(), studentID, BookAppointmentInput{
					ScheduleID: sched.ID,
				})
			}(i, id)
		}
		wg.Wait()

		var wins, losses int
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			code, ok := httperr.BusinessCode(err)
			require.True(t, ok)
			assert.Equal(t, "slot_unavailable", code)
			losses++
		}

		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, losses)
		assert.Equal(t, 1, f.store.eventCount())
		assert.Equal(t, string(schedDomain.StatusBooked), f.store.scheduleStatus(sched.ID))
	})
}
