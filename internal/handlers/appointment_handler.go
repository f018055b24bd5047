package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	ucAppointment "github.com/campusconnect/campus-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC     *ucAppointment.BookAppointment
	approveUC  *ucAppointment.ApproveAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	addNotesUC *ucAppointment.AddNotes
	listUC     *ucAppointment.ListAppointments
	calendarUC *ucAppointment.GetApprovedEvents
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	approveUC *ucAppointment.ApproveAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	addNotesUC *ucAppointment.AddNotes,
	listUC *ucAppointment.ListAppointments,
	calendarUC *ucAppointment.GetApprovedEvents,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:     bookUC,
		approveUC:  approveUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		addNotesUC: addNotesUC,
		listUC:     listUC,
		calendarUC: calendarUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ScheduleID uint   `json:"schedule_id" binding:"required"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`
}

type AddNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// ======================================================
// STUDENT
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	studentID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ev, err := h.bookUC.Execute(c.Request.Context(), studentID, ucAppointment.BookAppointmentInput{
		ScheduleID: req.ScheduleID,
		Title:      req.Title,
		Notes:      req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_book_appointment")
		return
	}

	httpresp.OK(c, ev)
}

// ======================================================
// TEACHER
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	h.transition(c, func(eventID, teacherID uint) (any, error) {
		return h.approveUC.Execute(c.Request.Context(), eventID, teacherID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(eventID, teacherID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), eventID, teacherID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(eventID, teacherID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), eventID, teacherID)
	})
}

func (h *AppointmentHandler) AddNotes(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req AddNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Notes are required.")
		return
	}

	ev, err := h.addNotesUC.Execute(c.Request.Context(), uint(id), teacherID, req.Notes)
	if err != nil {
		writeBusinessError(c, err, "failed_to_add_notes")
		return
	}

	httpresp.OK(c, ev)
}

func (h *AppointmentHandler) transition(c *gin.Context, fn func(eventID, teacherID uint) (any, error)) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ev, err := fn(uint(id), teacherID)
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ev)
}

// ======================================================
// SHARED QUERIES
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	appointments, total, err := h.listUC.Execute(c.Request.Context(), userID, role, domain.ListFilter{
		Status:  c.DefaultQuery("status", "all"),
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.Page(c, appointments, total, page, perPage)
}

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	events, err := h.calendarUC.Execute(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar.")
		return
	}

	httpresp.List(c, events)
}
