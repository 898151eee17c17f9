package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/internal/pkg/cloudinary"
	"github.com/huddleapp/huddle/internal/pkg/logger"
	"github.com/huddleapp/huddle/internal/pkg/pagination"
	"github.com/huddleapp/huddle/internal/pkg/response"
)

type Handler struct {
	repo *auth.Repository
	cld  *cloudinary.Service
}

func NewHandler(repo *auth.Repository, cld *cloudinary.Service) *Handler {
	return &Handler{repo: repo, cld: cld}
}

// UpdateProfileRequest carries the display fields a user may change.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// caller resolves the authenticated subject to its directory record, failing
// closed with a 404 when the record is missing.
func (h *Handler) caller(c *gin.Context) *auth.User {
	user, err := h.repo.GetBySubject(c.Request.Context(), c.GetString(auth.ContextSubject))
	if err != nil {
		logger.Error("directory lookup failed: %v", err)
		response.InternalServerError(c, "Failed to resolve user", err)
		return nil
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return nil
	}
	return user
}

// Directory godoc
// @Summary Browse the workspace directory
// @Description Paginated user summaries, optionally filtered by a name/email search; feeds the share and invite dialogs
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name or email fragment"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, max 50" default(20)
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users [get]
func (h *Handler) Directory(c *gin.Context) {
	if h.caller(c) == nil {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	page, limit := pagination.Parse(c.Query("page"), c.Query("limit"))

	found, total, err := h.repo.Search(c.Request.Context(), query, (page-1)*limit, limit)
	if err != nil {
		logger.Error("directory search failed: %v", err)
		response.InternalServerError(c, "Failed to fetch users", err)
		return
	}

	summaries := make([]auth.UserSummary, 0, len(found))
	for i := range found {
		summaries = append(summaries, found[i].Summary())
	}

	response.Success(c, gin.H{
		"users":      summaries,
		"pagination": pagination.New(page, limit, total),
	})
}

// Me godoc
// @Summary Get the caller's own record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=auth.User}
// @Failure 404 {object} response.Envelope
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := h.caller(c)
	if user == nil {
		return
	}
	response.Success(c, user)
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Description Change display name or image URL
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=auth.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	user := h.caller(c)
	if user == nil {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			response.BadRequest(c, "Name cannot be empty")
			return
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), user.ID, updates); err != nil {
		logger.Error("profile update failed: %v", err)
		response.InternalServerError(c, "Failed to update profile", err)
		return
	}

	updated, err := h.repo.GetByID(c.Request.Context(), user.ID)
	if err != nil || updated == nil {
		response.InternalServerError(c, "Failed to fetch updated profile", err)
		return
	}

	response.SuccessMessage(c, "Profile updated successfully", updated)
}

// UploadAvatar godoc
// @Summary Upload a profile image
// @Description Stores the image in Cloudinary and saves its URL on the caller's record
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Avatar image"
// @Success 200 {object} response.Envelope{data=auth.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/me/avatar [put]
func (h *Handler) UploadAvatar(c *gin.Context) {
	if h.cld == nil {
		response.Fail(c, http.StatusServiceUnavailable, "Avatar uploads are not configured")
		return
	}

	user := h.caller(c)
	if user == nil {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "An image file is required")
		return
	}

	if err := cloudinary.ValidateImage(header); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload", err)
		return
	}
	defer file.Close()

	result, err := h.cld.UploadAvatar(c.Request.Context(), file, user.ID.Hex())
	if err != nil {
		logger.Error("avatar upload failed: %v", err)
		response.InternalServerError(c, "Failed to upload avatar", err)
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), user.ID, bson.M{"image": result.URL}); err != nil {
		logger.Error("avatar save failed: %v", err)
		response.InternalServerError(c, "Failed to save avatar", err)
		return
	}

	updated, err := h.repo.GetByID(c.Request.Context(), user.ID)
	if err != nil || updated == nil {
		response.InternalServerError(c, "Failed to fetch updated profile", err)
		return
	}

	response.SuccessMessage(c, "Avatar updated successfully", updated)
}
