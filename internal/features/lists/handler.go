package lists

import (
	"github.com/gin-gonic/gin"

	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/internal/pkg/logger"
	"github.com/huddleapp/huddle/internal/pkg/response"
	"github.com/huddleapp/huddle/pkg/errors"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if errors.KindOf(err) == errors.KindInternal {
		logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	response.FromError(c, err, fallback)
}

// Create godoc
// @Summary Create a list
// @Description Create a channel-scoped to-do list owned by the caller
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListRequest true "List fields"
// @Success 201 {object} response.Envelope{data=ListView}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	view, err := h.service.Create(c.Request.Context(), c.GetString(auth.ContextSubject), req)
	if err != nil {
		h.fail(c, err, "Failed to create list")
		return
	}

	response.Created(c, "List created successfully", view)
}

// List godoc
// @Summary List the caller's lists
// @Description Lists created by or shared with the caller, newest activity first
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, created, or shared" default(all)
// @Param channelId query string false "Narrow to one channel"
// @Success 200 {object} response.Envelope{data=[]ListView}
// @Failure 404 {object} response.Envelope
// @Router /lists [get]
func (h *Handler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", FilterAll)
	channelID := c.Query("channelId")

	views, err := h.service.List(c.Request.Context(), c.GetString(auth.ContextSubject), filter, channelID)
	if err != nil {
		h.fail(c, err, "Failed to fetch lists")
		return
	}

	response.Success(c, views)
}

// Get godoc
// @Summary Get a list
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId} [get]
func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"))
	if err != nil {
		h.fail(c, err, "Failed to fetch list")
		return
	}

	response.Success(c, view)
}

// Update godoc
// @Summary Update list metadata
// @Description Change name, description, or color; creator only
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Param request body UpdateListRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	view, err := h.service.UpdateMetadata(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"), req)
	if err != nil {
		h.fail(c, err, "Failed to update list")
		return
	}

	response.SuccessMessage(c, "List updated successfully", view)
}

// Archive godoc
// @Summary Archive a list
// @Description Soft-delete; the list disappears from every listing but stays fetchable by id
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId}/archive [post]
func (h *Handler) Archive(c *gin.Context) {
	view, err := h.service.Archive(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"))
	if err != nil {
		h.fail(c, err, "Failed to archive list")
		return
	}

	response.SuccessMessage(c, "List archived successfully", view)
}

// Delete godoc
// @Summary Delete a list
// @Description Hard delete of the list and all its items; creator only
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"))
	if err != nil {
		h.fail(c, err, "Failed to delete list")
		return
	}

	response.SuccessMessage(c, "List deleted successfully", nil)
}

// Share godoc
// @Summary Share a list
// @Description Grant read access to other users; creator only, idempotent per id
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Param request body ShareListRequest true "Target user ids"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId}/share [post]
func (h *Handler) Share(c *gin.Context) {
	var req ShareListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	view, err := h.service.Share(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"), req.UserIDs)
	if err != nil {
		h.fail(c, err, "Failed to share list")
		return
	}

	response.SuccessMessage(c, "List shared successfully", view)
}

// AddItem godoc
// @Summary Add an item
// @Description Append a task row; any collaborator may add items
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Param request body AddItemRequest true "Item fields"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"), req)
	if err != nil {
		h.fail(c, err, "Failed to add item")
		return
	}

	response.SuccessMessage(c, "Item added successfully", view)
}

// UpdateItem godoc
// @Summary Update an item
// @Description Patch text/completed/assignee/due date; absent fields are untouched, explicit nulls clear
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Param itemId path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId}/items/{itemId} [put]
func (h *Handler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format")
		return
	}

	view, err := h.service.UpdateItem(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"), c.Param("itemId"), req)
	if err != nil {
		h.fail(c, err, "Failed to update item")
		return
	}

	response.SuccessMessage(c, "Item updated successfully", view)
}

// DeleteItem godoc
// @Summary Delete an item
// @Description Remove a task row; removing an absent id still succeeds
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param listId path string true "List ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.Envelope{data=ListView}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lists/{listId}/items/{itemId} [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	view, err := h.service.RemoveItem(c.Request.Context(), c.GetString(auth.ContextSubject), c.Param("listId"), c.Param("itemId"))
	if err != nil {
		h.fail(c, err, "Failed to delete item")
		return
	}

	response.SuccessMessage(c, "Item deleted successfully", view)
}
