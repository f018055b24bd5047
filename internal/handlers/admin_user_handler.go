package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	userDomain "github.com/campusconnect/campus-scheduler/internal/domain/user"
	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	ucUser "github.com/campusconnect/campus-scheduler/internal/usecase/user"
	"github.com/campusconnect/campus-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// AdminUserHandler manages teacher and student accounts on behalf of
// an administrator.
type AdminUserHandler struct {
	createUC *ucUser.CreateUser
	updateUC *ucUser.UpdateUser
	deleteUC *ucUser.DeleteUser
	listUC   *ucUser.ListUsers
}

func NewAdminUserHandler(
	createUC *ucUser.CreateUser,
	updateUC *ucUser.UpdateUser,
	deleteUC *ucUser.DeleteUser,
	listUC *ucUser.ListUsers,
) *AdminUserHandler {
	return &AdminUserHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=teacher student"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

type UpdateUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AdminUserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	users, total, err := h.listUC.Execute(c.Request.Context(), userDomain.ListFilter{
		Role:    c.DefaultQuery("role", "all"),
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not load users.")
		return
	}

	httpresp.Page(c, users, total, page, perPage)
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user data.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	u, err := h.createUC.Execute(c.Request.Context(), adminID, ucUser.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_user")
		return
	}

	httpresp.Created(c, gin.H{
		"id":    u.ID,
		"name":  u.DisplayName(),
		"email": u.Email,
		"role":  u.Role,
	})
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user data.")
		return
	}

	u, err := h.updateUC.Execute(c.Request.Context(), adminID, uint(id), ucUser.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		Bio:        req.Bio,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_user")
		return
	}

	httpresp.OK(c, gin.H{
		"id":    u.ID,
		"name":  u.DisplayName(),
		"email": u.Email,
		"role":  u.Role,
	})
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, uint(id)); err != nil {
		writeBusinessError(c, err, "failed_to_delete_user")
		return
	}

	httpresp.OK(c, gin.H{"message": "User deleted"})
}
