package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/storage"
)

type WorkspaceHandler struct {
	store storage.Store
}

func NewWorkspaceHandler(store storage.Store) *WorkspaceHandler {
	return &WorkspaceHandler{store: store}
}

// ListWorkspaces returns all workspaces, newest first.
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	workspaces, err := h.store.GetWorkspaces()
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, workspaces)
}

// GetWorkspace returns a workspace by id.
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ws, err := h.store.GetWorkspace(id)
	if err != nil {
		apierrors.FromStorage(c, err, "Workspace not found")
		return
	}
	c.JSON(http.StatusOK, ws)
}

// CreateWorkspace creates a new workspace.
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	type CreateWorkspaceRequest struct {
		Name        string `json:"name" binding:"required"`
		Color       string `json:"color" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ws, err := h.store.CreateWorkspace(storage.CreateWorkspaceInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, ws)
}

// UpdateWorkspace merges the provided fields onto a workspace.
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input storage.UpdateWorkspaceInput
	if name, ok := raw["name"].(string); ok {
		input.Name = &name
	}
	if color, ok := raw["color"].(string); ok {
		input.Color = &color
	}
	if description, ok := raw["description"].(string); ok {
		input.Description = &description
	}

	ws, err := h.store.UpdateWorkspace(id, input)
	if err != nil {
		apierrors.FromStorage(c, err, "Workspace not found")
		return
	}
	c.JSON(http.StatusOK, ws)
}

// DeleteWorkspace removes a workspace.
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteWorkspace(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Workspace not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListWorkspaceTasks returns the tasks belonging to a workspace.
func (h *WorkspaceHandler) ListWorkspaceTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.store.GetTasksByWorkspace(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}
