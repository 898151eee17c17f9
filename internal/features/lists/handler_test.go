package lists

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/huddleapp/huddle/internal/features/auth"
)

// testRouter mounts the list endpoints behind a stub auth layer that injects
// the given subject, so handler tests exercise the full HTTP surface without
// real tokens.
func testRouter(svc *Service, subject string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(auth.ContextSubject, subject)
		c.Next()
	})

	handler := NewHandler(svc)
	group := router.Group("/lists")
	{
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:listId", handler.Get)
		group.PUT("/:listId", handler.Update)
		group.DELETE("/:listId", handler.Delete)
		group.POST("/:listId/archive", handler.Archive)
		group.POST("/:listId/share", handler.Share)
		group.POST("/:listId/items", handler.AddItem)
		group.PUT("/:listId/items/:itemId", handler.UpdateItem)
		group.DELETE("/:listId/items/:itemId", handler.DeleteItem)
	}
	return router
}

func doJSON(router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	var envelope map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestHandlerCreate_Envelope(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	router := testRouter(svc, "sub-owner")

	w, envelope := doJSON(router, "POST", "/lists", `{"name":"Sprint","channelId":"C1","channelName":"general"}`)
	require.Equal(t, 201, w.Code)
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "List created successfully", envelope["message"])

	data := envelope["data"].(map[string]any)
	require.Equal(t, "Sprint", data["name"])
	require.Equal(t, DefaultColor, data["color"])
	require.NotContains(t, envelope, "error")
}

func TestHandlerCreate_BadBody(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	router := testRouter(svc, "sub-owner")

	w, envelope := doJSON(router, "POST", "/lists", `{not json`)
	require.Equal(t, 400, w.Code)
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "Invalid request format", envelope["message"])
	require.NotContains(t, envelope, "data")
}

func TestHandlerCreate_ValidationMapsTo400(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	router := testRouter(svc, "sub-owner")

	w, envelope := doJSON(router, "POST", "/lists", `{"name":"","channelId":"C1","channelName":"general"}`)
	require.Equal(t, 400, w.Code)
	require.Equal(t, "Name, channelId, and channelName are required", envelope["message"])
}

func TestHandlerGet_ForbiddenMapsTo403(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	dir.add("sub-stranger", "mallory")
	view := createList(t, svc, "sub-owner", "C1")

	router := testRouter(svc, "sub-stranger")
	w, envelope := doJSON(router, "GET", "/lists/"+view.ID.Hex(), "")
	require.Equal(t, 403, w.Code)
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "You don't have access to this list", envelope["message"])
}

func TestHandlerGet_MalformedIDMapsTo404(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	router := testRouter(svc, "sub-owner")

	w, envelope := doJSON(router, "GET", "/lists/not-an-id", "")
	require.Equal(t, 404, w.Code)
	require.Equal(t, "List not found", envelope["message"])
}

func TestHandlerDelete_ReturnsNoData(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	view := createList(t, svc, "sub-owner", "C1")

	router := testRouter(svc, "sub-owner")
	w, envelope := doJSON(router, "DELETE", "/lists/"+view.ID.Hex(), "")
	require.Equal(t, 200, w.Code)
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "List deleted successfully", envelope["message"])
}

func TestHandlerList_FilterQuery(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	createList(t, svc, "sub-owner", "C1")

	router := testRouter(svc, "sub-owner")
	w, envelope := doJSON(router, "GET", "/lists?filter=created&channelId=C1", "")
	require.Equal(t, 200, w.Code)

	data := envelope["data"].([]any)
	require.Len(t, data, 1)
}

func TestHandlerUnknownSubject_MapsTo404(t *testing.T) {
	svc, _, _ := newTestService()
	router := testRouter(svc, "sub-ghost")

	w, envelope := doJSON(router, "GET", "/lists", "")
	require.Equal(t, 404, w.Code)
	require.Equal(t, "User not found", envelope["message"])
}

func TestHandlerUpdateItem_AbsentVersusNull(t *testing.T) {
	svc, _, dir := newTestService()
	dir.add("sub-owner", "alice")
	assignee := dir.add("sub-member", "bob")

	view := createList(t, svc, "sub-owner", "C1")
	withItem, err := svc.AddItem(context.Background(), "sub-owner", view.ID.Hex(), AddItemRequest{
		Text:       "task",
		AssignedTo: assignee.ID.Hex(),
	})
	require.NoError(t, err)
	itemPath := "/lists/" + view.ID.Hex() + "/items/" + withItem.Items[0].ID.Hex()

	router := testRouter(svc, "sub-owner")

	// body without assignedTo leaves the assignment untouched
	w, envelope := doJSON(router, "PUT", itemPath, `{"completed":true}`)
	require.Equal(t, 200, w.Code)
	item := envelope["data"].(map[string]any)["items"].([]any)[0].(map[string]any)
	require.Equal(t, true, item["completed"])
	require.NotNil(t, item["assignedTo"])

	// explicit null clears it
	w, envelope = doJSON(router, "PUT", itemPath, `{"assignedTo":null}`)
	require.Equal(t, 200, w.Code)
	item = envelope["data"].(map[string]any)["items"].([]any)[0].(map[string]any)
	require.Nil(t, item["assignedTo"])
}
