package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusconnect/campus-scheduler/internal/httperr"
	"github.com/campusconnect/campus-scheduler/internal/httpresp"
	"github.com/campusconnect/campus-scheduler/internal/middleware"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/storage"
)

const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewProfileHandler(db *gorm.DB, avatars *storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{db: db, avatars: avatars}
}

type UpdateProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Profile").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		profile = models.Profile{UserID: userID}
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Phone = req.Phone
	profile.Department = req.Department
	profile.Bio = req.Bio

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Avatar file is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Could not read the avatar.")
		return
	}
	if len(data) > maxAvatarBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "avatar_too_large", "Avatar must be under 5MB.")
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), userID, data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Could not store the avatar.")
		return
	}

	if err := h.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	httpresp.OK(c, gin.H{"avatar_url": url})
}
