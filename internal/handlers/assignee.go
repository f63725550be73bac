package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workflowhq/workflow-api/internal/dto"
	apierrors "github.com/workflowhq/workflow-api/internal/errors"
)

// AssignUser links a user to a task. Assigning the same user twice is a
// no-op that returns the existing link.
func (h *TaskHandler) AssignUser(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	assignee, err := h.store.AssignUserToTask(taskID, userID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, assignee)
}

// UnassignUser removes a user's assignment from a task.
func (h *TaskHandler) UnassignUser(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	removed, err := h.store.RemoveUserFromTask(taskID, userID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !removed {
		apierrors.NotFound(c, "Assignee not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAssignees returns the users assigned to a task.
func (h *TaskHandler) ListAssignees(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.store.GetTaskAssignees(taskID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}
