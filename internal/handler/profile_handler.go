package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ratewave/internal/middleware"
	"ratewave/internal/service"
	"ratewave/internal/utils"
	"ratewave/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Profile renders the logged-in user's own profile (GET /profile).
func (h *ProfileHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.renderProfile(c, user.ID, true)
}

// ProfileDetail renders someone else's profile (GET /profile/:id).
func (h *ProfileHandler) ProfileDetail(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	viewer := middleware.CurrentUser(c)
	isSelf := viewer != nil && viewer.ID == profileID
	h.renderProfile(c, profileID, isSelf)
}

func (h *ProfileHandler) renderProfile(c *gin.Context, profileID uuid.UUID, isSelf bool) {
	profileUser, err := h.profileService.GetUser(profileID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/browse")
		return
	}

	profilePic := ""
	if profileUser.ProfilePic != nil {
		profilePic = h.profileService.ResolvePicture(*profileUser.ProfilePic)
	}

	comments, err := h.profileService.ListComments(profileID)
	if err != nil {
		logger.Log.Error("Failed to load profile comments",
			zap.String("profile_user_id", profileID.String()),
			zap.Error(err),
		)
	}

	c.HTML(http.StatusOK, "profile.html", pageData(c, gin.H{
		"ProfileUser": profileUser,
		"ProfilePic":  profilePic,
		"IsSelf":      isSelf,
		"Comments":    buildCommentViews(comments, middleware.CurrentUser(c), h.profileService),
	}))
}

// EditForm renders the profile editor (GET /profile-edit).
func (h *ProfileHandler) EditForm(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profilePic := ""
	if user.ProfilePic != nil {
		profilePic = h.profileService.ResolvePicture(*user.ProfilePic)
	}

	c.HTML(http.StatusOK, "profile-edit.html", pageData(c, gin.H{
		"ProfileUser": user,
		"ProfilePic":  profilePic,
	}))
}

// EditSubmit applies the profile-edit form (POST /profile-edit). Blank
// fields keep their stored values.
func (h *ProfileHandler) EditSubmit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	username := strings.TrimSpace(c.PostForm("username_edit"))
	about := strings.TrimSpace(c.PostForm("about"))
	favorite0 := strings.TrimSpace(c.PostForm("favorite0"))

	if err := h.profileService.UpdateInfo(user, username, about, favorite0); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.SetFlash(c, "error", "That username is already taken.")
			c.Redirect(http.StatusSeeOther, "/profile-edit")
			return
		}
		utils.SetFlash(c, "error", "Could not update your profile.")
		c.Redirect(http.StatusSeeOther, "/profile-edit")
		return
	}

	c.Redirect(http.StatusSeeOther, "/profile")
}

// Upload stores a new profile picture (POST /profile/upload).
func (h *ProfileHandler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("profile_pic")
	if err != nil || fileHeader.Filename == "" {
		utils.SetFlash(c, "profile", "No file selected.")
		c.Redirect(http.StatusSeeOther, "/profile-edit")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.SetFlash(c, "profile", "Could not read the uploaded file.")
		c.Redirect(http.StatusSeeOther, "/profile-edit")
		return
	}
	defer src.Close()

	if _, err := h.profileService.UploadPicture(user, fileHeader.Filename, src); err != nil {
		if errors.Is(err, service.ErrBadFileType) {
			utils.SetFlash(c, "profile", "Unsupported file type.")
		} else {
			utils.SetFlash(c, "profile", "Could not save the picture.")
		}
		c.Redirect(http.StatusSeeOther, "/profile-edit")
		return
	}

	utils.SetFlash(c, "profile", "Profile picture updated.")
	c.Redirect(http.StatusSeeOther, "/profile-edit")
}

// Remove clears the picture reference (POST /profile/remove). The stored
// file is left on disk.
func (h *ProfileHandler) Remove(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.profileService.RemovePicture(user); err != nil {
		utils.SetFlash(c, "profile", "Could not remove the picture.")
		c.Redirect(http.StatusSeeOther, "/profile-edit")
		return
	}

	utils.SetFlash(c, "profile", "Profile picture removed.")
	c.Redirect(http.StatusSeeOther, "/profile-edit")
}

// CommentAdd leaves a comment on a profile (POST /profile/comments). The
// optional profile_user field targets another user's profile; it defaults
// to the commenter's own.
func (h *ProfileHandler) CommentAdd(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profileID := user.ID
	if raw := c.PostForm("profile_user"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		profileID = parsed
	}

	message := c.PostForm("comment")
	// Blank messages are dropped quietly, matching the form's behavior.
	if _, err := h.profileService.AddComment(profileID, user.ID, message); err != nil && !errors.Is(err, service.ErrEmptyMessage) {
		logger.Log.Warn("Failed to add profile comment",
			zap.String("author_id", user.ID.String()),
			zap.Error(err),
		)
	}

	h.redirectToProfile(c, profileID, user.ID)
}

// CommentEdit rewrites one of the caller's own comments.
func (h *ProfileHandler) CommentEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseCommentID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	message := c.PostForm("comment")
	if err := h.profileService.EditComment(id, user.ID, message); err != nil && !errors.Is(err, service.ErrEmptyMessage) {
		logger.Log.Warn("Failed to edit profile comment",
			zap.Uint("comment_id", id),
			zap.String("caller_id", user.ID.String()),
			zap.Error(err),
		)
	}

	c.Redirect(http.StatusSeeOther, "/profile")
}

// CommentDelete removes one of the caller's own comments.
func (h *ProfileHandler) CommentDelete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseCommentID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	if err := h.profileService.DeleteComment(id, user.ID); err != nil {
		logger.Log.Warn("Failed to delete profile comment",
			zap.Uint("comment_id", id),
			zap.String("caller_id", user.ID.String()),
			zap.Error(err),
		)
	}

	c.Redirect(http.StatusSeeOther, "/profile")
}

func (h *ProfileHandler) redirectToProfile(c *gin.Context, profileID, viewerID uuid.UUID) {
	if profileID == viewerID {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+profileID.String())
}

func parseCommentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
