package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	ucSchedule "github.com/campusconnect/campus-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createUC        *ucSchedule.CreateSchedules
	updateUC        *ucSchedule.UpdateSchedule
	deleteUC        *ucSchedule.DeleteSchedule
	listUC          *ucSchedule.ListSchedules
	listAvailableUC *ucSchedule.ListAvailableSchedules
}

func NewScheduleHandler(
	createUC *ucSchedule.CreateSchedules,
	updateUC *ucSchedule.UpdateSchedule,
	deleteUC *ucSchedule.DeleteSchedule,
	listUC *ucSchedule.ListSchedules,
	listAvailableUC *ucSchedule.ListAvailableSchedules,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		listUC:          listUC,
		listAvailableUC: listAvailableUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	StartDateTime string `json:"start_date_time" binding:"required"`
	EndDateTime   string `json:"end_date_time" binding:"required"`
	Status        string `json:"status"`
}

type UpdateScheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

const dateTimeLayout = "2006-01-02 15:04"

// ======================================================
// TEACHER ROUTES
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule data.")
		return
	}

	start, err := time.ParseInLocation(dateTimeLayout, req.StartDateTime, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid start date or time.")
		return
	}
	end, err := time.ParseInLocation(dateTimeLayout, req.EndDateTime, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid end date or time.")
		return
	}

	schedules, err := h.createUC.Execute(c.Request.Context(), teacherID, ucSchedule.CreateSchedulesInput{
		StartDateTime: start,
		EndDateTime:   end,
		Status:        req.Status,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_schedules")
		return
	}

	out := make([]any, 0, len(schedules))
	for i := range schedules {
		out = append(out, ucSchedule.FormatSchedule(&schedules[i]))
	}
	httpresp.List(c, out)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	schedules, total, err := h.listUC.Execute(c.Request.Context(), teacherID, schedDomain.ListFilter{
		Status:  c.DefaultQuery("status", "all"),
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not load schedules.")
		return
	}

	httpresp.Page(c, schedules, total, page, perPage)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid schedule id.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule data.")
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), uint(id), teacherID, ucSchedule.UpdateScheduleInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_schedule")
		return
	}

	httpresp.OK(c, ucSchedule.FormatSchedule(s))
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid schedule id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), teacherID); err != nil {
		writeBusinessError(c, err, "failed_to_delete_schedule")
		return
	}

	httpresp.OK(c, gin.H{"message": "Schedule deleted"})
}

// ======================================================
// STUDENT ROUTES
// ======================================================

func (h *ScheduleHandler) Available(c *gin.Context) {
	teacherID, err := strconv.ParseUint(c.Param("teacherId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid teacher id.")
		return
	}

	schedules, err := h.listAvailableUC.Execute(c.Request.Context(), uint(teacherID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not load schedules.")
		return
	}

	httpresp.List(c, schedules)
}
