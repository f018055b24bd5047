package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-scheduler/internal/audit"
	"github.com/campusconnect/campus-scheduler/internal/clock"
	"github.com/campusconnect/campus-scheduler/internal/config"
	"github.com/campusconnect/campus-scheduler/internal/handlers"
	infraRepo "github.com/campusconnect/campus-scheduler/internal/infra/repository"
	"github.com/campusconnect/campus-scheduler/internal/meeting"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/notify"
	"github.com/campusconnect/campus-scheduler/internal/storage"
	ucAppointment "github.com/campusconnect/campus-scheduler/internal/usecase/appointment"
	ucSchedule "github.com/campusconnect/campus-scheduler/internal/usecase/schedule"
	ucUser "github.com/campusconnect/campus-scheduler/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	eventRepo := infraRepo.NewEventGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	publisher := notify.NewRedisPublisher(rdb)
	notifyDispatcher := notify.NewDispatcher(publisher, logger)

	provisioner := meeting.NewZoomClient(
		meeting.ZoomConfig{
			AccountID:    cfg.ZoomAccountID,
			ClientID:     cfg.ZoomClientID,
			ClientSecret: cfg.ZoomClientSecret,
		},
		meeting.NewRedisTokenStore(rdb),
		logger,
	)

	avatars := storage.NewAvatarStore(cfg)
	clk := clock.System()

	// ======================================================
	// USE CASES: SCHEDULES
	// ======================================================
	createSchedulesUC := ucSchedule.NewCreateSchedules(scheduleRepo, auditDispatcher)
	updateScheduleUC := ucSchedule.NewUpdateSchedule(scheduleRepo, auditDispatcher)
	deleteScheduleUC := ucSchedule.NewDeleteSchedule(scheduleRepo, auditDispatcher)
	listSchedulesUC := ucSchedule.NewListSchedules(scheduleRepo)
	listAvailableUC := ucSchedule.NewListAvailableSchedules(scheduleRepo, clk)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		eventRepo,
		scheduleRepo,
		notificationRepo,
		provisioner,
		notifyDispatcher,
		auditDispatcher,
		logger,
	)
	approveUC := ucAppointment.NewApproveAppointment(eventRepo, notificationRepo, notifyDispatcher, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(eventRepo, notificationRepo, notifyDispatcher, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(
		eventRepo,
		notificationRepo,
		notifyDispatcher,
		auditDispatcher,
		cfg.RequireApprovedBeforeComplete,
	)
	addNotesUC := ucAppointment.NewAddNotes(eventRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(eventRepo)
	calendarUC := ucAppointment.NewGetApprovedEvents(eventRepo)

	// ======================================================
	// USE CASES: ADMIN USER MANAGEMENT
	// ======================================================
	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)
	listUsersUC := ucUser.NewListUsers(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	scheduleHandler := handlers.NewScheduleHandler(
		createSchedulesUC,
		updateScheduleUC,
		deleteScheduleUC,
		listSchedulesUC,
		listAvailableUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		approveUC,
		cancelUC,
		completeUC,
		addNotesUC,
		listAppointmentsUC,
		calendarUC,
	)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	adminUserHandler := handlers.NewAdminUserHandler(createUserUC, updateUserUC, deleteUserUC, listUsersUC)
	profileHandler := handlers.NewProfileHandler(db, avatars)
	dashboardHandler := handlers.NewDashboardHandler(db, eventRepo, scheduleRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", profileHandler.GetMe)
			secured.PATCH("/me/profile", profileHandler.Update)
			secured.POST("/me/avatar", profileHandler.UploadAvatar)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.GET("/me/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)
			secured.DELETE("/me/notifications/:id", notificationHandler.Delete)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/calendar", appointmentHandler.Calendar)

			// ------------------------------
			// TEACHER
			// ------------------------------
			teacher := secured.Group("/")
			teacher.Use(middleware.RequireRole(models.RoleTeacher))
			{
				teacher.GET("/me/dashboard", dashboardHandler.TeacherHome)

				teacher.GET("/me/schedules", scheduleHandler.List)
				teacher.POST("/me/schedules", scheduleHandler.Create)
				teacher.PATCH("/me/schedules/:id", scheduleHandler.Update)
				teacher.DELETE("/me/schedules/:id", scheduleHandler.Delete)

				teacher.PATCH("/me/appointments/:id/approve", appointmentHandler.Approve)
				teacher.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
				teacher.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
				teacher.PATCH("/me/appointments/:id/notes", appointmentHandler.AddNotes)
			}

			// ------------------------------
			// STUDENT
			// ------------------------------
			student := secured.Group("/")
			student.Use(middleware.RequireRole(models.RoleStudent))
			{
				student.GET("/teachers", dashboardHandler.Teachers)
				student.GET("/teachers/:teacherId/schedules", scheduleHandler.Available)
				student.POST("/appointments", appointmentHandler.Book)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/admin/stats", dashboardHandler.AdminStats)

				admin.GET("/admin/users", adminUserHandler.List)
				admin.POST("/admin/users", adminUserHandler.Create)
				admin.PATCH("/admin/users/:id", adminUserHandler.Update)
				admin.DELETE("/admin/users/:id", adminUserHandler.Delete)
			}
		}
	}
}
