package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/campusconnect/campus-scheduler/internal/domain/appointment"
	schedDomain "github.com/campusconnect/campus-scheduler/internal/domain/schedule"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	"github.com/campusconnect/campus-scheduler/internal/models"
)

type DashboardHandler struct {
	db           *gorm.DB
	eventRepo    domain.Repository
	scheduleRepo schedDomain.Repository
}

func NewDashboardHandler(
	db *gorm.DB,
	eventRepo domain.Repository,
	scheduleRepo schedDomain.Repository,
) *DashboardHandler {
	return &DashboardHandler{
		db:           db,
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Admin aggregate counters.
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	var totalTeachers, totalStudents int64

	if err := h.db.Model(&models.User{}).
		Where("role = ?", models.RoleTeacher).
		Count(&totalTeachers).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("role = ?", models.RoleStudent).
		Count(&totalStudents).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	approved, err := h.eventRepo.CountByStatus(c.Request.Context(), string(domain.StatusApproved))
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	httpresp.OK(c, gin.H{
		"total_teachers":        totalTeachers,
		"total_students":        totalStudents,
		"approved_appointments": approved,
	})
}

// TeacherHome reports whether the teacher published any schedules yet.
func (h *DashboardHandler) TeacherHome(c *gin.Context) {
	teacherID := c.MustGet(middleware.ContextUserID).(uint)

	hasSchedule, err := h.scheduleRepo.HasAny(c.Request.Context(), teacherID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Could not load dashboard.")
		return
	}

	httpresp.OK(c, gin.H{"has_schedule": hasSchedule})
}

// Teachers lists teachers for the student's booking page.
func (h *DashboardHandler) Teachers(c *gin.Context) {
	var teachers []models.User
	if err := h.db.Preload("Profile").
		Where("role = ?", models.RoleTeacher).
		Order("name ASC").
		Find(&teachers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_teachers", "Could not load teachers.")
		return
	}

	out := make([]gin.H, 0, len(teachers))
	for i := range teachers {
		t := &teachers[i]
		entry := gin.H{
			"id":    t.ID,
			"name":  t.DisplayName(),
			"email": t.Email,
		}
		if t.Profile != nil {
			entry["department"] = t.Profile.Department
			entry["avatar_url"] = t.Profile.AvatarURL
		}
		out = append(out, entry)
	}

	httpresp.List(c, out)
}
