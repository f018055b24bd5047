package appointment

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/meeting"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/notify"
)

// memStore backs both the event and schedule repositories so slot
// claims observe shared state, like rows in one database.
type memStore struct {
	mu sync.Mutex

	users         map[uint]*models.User
	schedules     map[uint]*models.Schedule
	events        map[uint]*models.Event
	notifications map[uint]*models.Notification

	nextEventID    uint
	nextScheduleID uint
	nextNotifID    uint
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uint]*models.User),
		schedules:     make(map[uint]*models.Schedule),
		events:        make(map[uint]*models.Event),
		notifications: make(map[uint]*models.Notification),
	}
}

func (m *memStore) addUser(u models.User) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = &u
	return &u
}

func (m *memStore) addSchedule(s models.Schedule) *models.Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == 0 {
		m.nextScheduleID++
		s.ID = m.nextScheduleID
	}
	m.schedules[s.ID] = &s
	return &s
}

func (m *memStore) scheduleStatus(id uint) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedules[id].Status
}

func (m *memStore) eventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func (m *memStore) notificationsFor(receiverID uint) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Notification
	for _, n := range m.notifications {
		if n.ReceiverID == receiverID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --------------------------------------------------
// domain/appointment.Repository
// --------------------------------------------------

func (m *memStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) CreateWithSlotClaim(_ context.Context, ev *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.ScheduleID == nil {
		return httperr.ErrBusiness("slot_unavailable")
	}
	s, ok := m.schedules[*ev.ScheduleID]
	if !ok || s.Status != string(schedDomain.StatusAvailable) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	s.Status = string(schedDomain.StatusBooked)

	m.nextEventID++
	ev.ID = m.nextEventID
	ev.CreatedAt = time.Now()
	cp := *ev
	m.events[ev.ID] = &cp
	return nil
}

func (m *memStore) GetForTeacher(_ context.Context, eventID, teacherID uint) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ev, ok := m.events[eventID]
	if !ok || ev.TeacherID != teacherID {
		return nil, errors.New("record not found")
	}

	cp := *ev
	if ev.ScheduleID != nil {
		if s, ok := m.schedules[*ev.ScheduleID]; ok {
			sc := *s
			cp.Schedule = &sc
		}
	}
	if u, ok := m.users[ev.StudentID]; ok {
		cp.Student = *u
	}
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, ev *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.events[ev.ID]
	if !ok {
		return errors.New("record not found")
	}
	stored.Status = ev.Status
	stored.Notes = ev.Notes
	return nil
}

func (m *memStore) UpdateWithSlotRelease(_ context.Context, ev *models.Event, scheduleID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.events[ev.ID]
	if !ok {
		return errors.New("record not found")
	}

	s, ok := m.schedules[scheduleID]
	if !ok || s.Status != string(schedDomain.StatusBooked) {
		return httperr.ErrBusiness("status_conflict")
	}

	stored.Status = ev.Status
	s.Status = string(schedDomain.StatusAvailable)
	return nil
}

func (m *memStore) ListForUser(_ context.Context, userID uint, role string, f domain.ListFilter) ([]models.Event, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Event
	for _, ev := range m.events {
		scoped := ev.StudentID
		if role == models.RoleTeacher {
			scoped = ev.TeacherID
		}
		if scoped != userID {
			continue
		}
		if f.Status != "" && f.Status != "all" && ev.Status != f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(ev.Title, f.Search) {
			continue
		}

		cp := *ev
		if ev.ScheduleID != nil {
			if s, ok := m.schedules[*ev.ScheduleID]; ok {
				sc := *s
				cp.Schedule = &sc
			}
		}
		if u, ok := m.users[ev.StudentID]; ok {
			cp.Student = *u
		}
		if u, ok := m.users[ev.TeacherID]; ok {
			cp.Teacher = *u
		}
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (m *memStore) GetApproved(ctx context.Context, userID uint, role string) ([]models.Event, error) {
	all, _, err := m.ListForUser(ctx, userID, role, domain.ListFilter{Status: string(domain.StatusApproved)})
	return all, err
}

func (m *memStore) CountByStatus(_ context.Context, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, ev := range m.events {
		if ev.Status == status {
			count++
		}
	}
	return count, nil
}

// --------------------------------------------------
// domain/schedule.Repository
// --------------------------------------------------

func (m *memStore) CreateBatch(_ context.Context, schedules []models.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range schedules {
		m.nextScheduleID++
		schedules[i].ID = m.nextScheduleID
		cp := schedules[i]
		m.schedules[cp.ID] = &cp
	}
	return nil
}

func (m *memStore) FindByID(_ context.Context, id uint) (*models.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.schedules[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) GetAvailable(_ context.Context, teacherID uint, today time.Time) ([]models.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := today.Format(schedDomain.DateLayout)
	var out []models.Schedule
	for _, s := range m.schedules {
		if s.TeacherID == teacherID &&
			s.Status == string(schedDomain.StatusAvailable) &&
			s.Date >= cutoff {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartDateTime.Before(out[j].StartDateTime)
	})
	return out, nil
}

func (m *memStore) ListForTeacher(_ context.Context, teacherID uint, f schedDomain.ListFilter) ([]models.Schedule, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Schedule
	for _, s := range m.schedules {
		if s.TeacherID == teacherID {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memStore) UpdateStatus(_ context.Context, id uint, from, to schedDomain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.schedules[id]
	if !ok || s.Status != string(from) {
		return httperr.ErrBusiness("status_conflict")
	}
	s.Status = string(to)
	return nil
}

func (m *memStore) UpdateSchedule(_ context.Context, s *models.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.schedules[s.ID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.schedules, id)
	// Events keep their row but lose the reference, like the database
	// foreign key's SET NULL action.
	for _, ev := range m.events {
		if ev.ScheduleID != nil && *ev.ScheduleID == id {
			ev.ScheduleID = nil
		}
	}
	return nil
}

func (m *memStore) HasAny(_ context.Context, teacherID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.schedules {
		if s.TeacherID == teacherID {
			return true, nil
		}
	}
	return false, nil
}

// scheduleRepo adapts memStore to the schedule repository interface;
// Update would otherwise collide with the event Update method.
type scheduleRepo struct {
	*memStore
}

func (r scheduleRepo) Update(ctx context.Context, s *models.Schedule) error {
	return r.UpdateSchedule(ctx, s)
}

var _ schedDomain.Repository = scheduleRepo{}
var _ domain.Repository = (*memStore)(nil)

// --------------------------------------------------
// Notification repository
// --------------------------------------------------

type memNotifications struct {
	store   *memStore
	failing bool
}

func (m *memNotifications) Create(_ context.Context, n *models.Notification) error {
	if m.failing {
		return errors.New("notification insert failed")
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.store.nextNotifID++
	n.ID = m.store.nextNotifID
	n.CreatedAt = time.Now()
	cp := *n
	m.store.notifications[n.ID] = &cp
	return nil
}

func (m *memNotifications) ListForReceiver(_ context.Context, receiverID uint) ([]models.Notification, error) {
	return m.store.notificationsFor(receiverID), nil
}

func (m *memNotifications) MarkRead(_ context.Context, id, receiverID uint) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	n, ok := m.store.notifications[id]
	if !ok || n.ReceiverID != receiverID {
		return errors.New("record not found")
	}
	n.IsRead = true
	return nil
}

func (m *memNotifications) MarkAllRead(_ context.Context, receiverID uint) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for _, n := range m.store.notifications {
		if n.ReceiverID == receiverID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *memNotifications) Delete(_ context.Context, id, receiverID uint) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	n, ok := m.store.notifications[id]
	if !ok || n.ReceiverID != receiverID {
		return errors.New("record not found")
	}
	delete(m.store.notifications, id)
	return nil
}

func (m *memNotifications) UnreadCount(_ context.Context, receiverID uint) (int64, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	var count int64
	for _, n := range m.store.notifications {
		if n.ReceiverID == receiverID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// --------------------------------------------------
// Provisioner, publisher, audit
// --------------------------------------------------

type stubProvisioner struct {
	mu      sync.Mutex
	meeting *meeting.Meeting
	err     error
	calls   int
}

func (p *stubProvisioner) CreateMeeting(context.Context, string, string) (*meeting.Meeting, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.meeting, nil
}

type capturePublisher struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg notify.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

type noopAuditWriter struct{}

func (noopAuditWriter) Log(*uint, string, string, *uint, any) error { return nil }

// --------------------------------------------------
// Fixture
// --------------------------------------------------

type fixture struct {
	store       *memStore
	notifRepo   *memNotifications
	provisioner *stubProvisioner
	publisher   *capturePublisher
	dispatcher  *notify.Dispatcher
	auditor     *audit.Dispatcher
	logger      *zap.Logger
}

func newFixture() *fixture {
	store := newMemStore()
	logger := zap.NewNop()
	publisher := &capturePublisher{}

	return &fixture{
		store:     store,
		notifRepo: &memNotifications{store: store},
		provisioner: &stubProvisioner{
			meeting: &meeting.Meeting{ID: "981234", JoinURL: "https://zoom.us/j/981234"},
		},
		publisher:  publisher,
		dispatcher: notify.NewDispatcher(publisher, logger),
		auditor:    audit.NewDispatcher(noopAuditWriter{}, logger),
		logger:     logger,
	}
}

func (f *fixture) bookUC() *BookAppointment {
	return NewBookAppointment(
		f.store,
		scheduleRepo{f.store},
		f.notifRepo,
		f.provisioner,
		f.dispatcher,
		f.auditor,
		f.logger,
	)
}

func (f *fixture) approveUC() *ApproveAppointment {
	return NewApproveAppointment(f.store, f.notifRepo, f.dispatcher, f.auditor)
}

func (f *fixture) cancelUC() *CancelAppointment {
	return NewCancelAppointment(f.store, f.notifRepo, f.dispatcher, f.auditor)
}

func (f *fixture) completeUC(requireApproved bool) *CompleteAppointment {
	return NewCompleteAppointment(f.store, f.notifRepo, f.dispatcher, f.auditor, requireApproved)
}

// seedBooking sets up a teacher, a student and one available schedule.
func (f *fixture) seedBooking() (teacher, student *models.User, sched *models.Schedule) {
	teacher = f.store.addUser(models.User{
		ID:   1,
		Name: "tmorris",
		Role: models.RoleTeacher,
		Profile: &models.Profile{
			FirstName: "Tom",
			LastName:  "Morris",
		},
	})
	student = f.store.addUser(models.User{
		ID:   2,
		Name: "jdoe",
		Role: models.RoleStudent,
		Profile: &models.Profile{
			FirstName: "Jane",
			LastName:  "Doe",
		},
	})
	sched = f.store.addSchedule(models.Schedule{
		TeacherID:     teacher.ID,
		Date:          "2025-03-10",
		Day:           "Monday",
		StartDateTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
		EndDateTime:   time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local),
		Duration:      30,
		Status:        string(schedDomain.StatusAvailable),
	})
	return teacher, student, sched
}
