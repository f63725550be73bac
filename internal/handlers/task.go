package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

type TaskHandler struct {
	store storage.Store
}

func NewTaskHandler(store storage.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// ListTasks returns all tasks, optionally filtered by status or by user
// (assignee or creator) via query parameters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		if !models.TaskStatus(status).Valid() {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		tasks, err := h.store.GetTasksByStatus(models.TaskStatus(status))
		if err != nil {
			apierrors.FromStorage(c, err, "")
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		tasks, err := h.store.GetTasksByUser(userID)
		if err != nil {
			apierrors.FromStorage(c, err, "")
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	tasks, err := h.store.GetTasks()
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// TodayTasks returns tasks scheduled for today.
func (h *TaskHandler) TodayTasks(c *gin.Context) {
	tasks, err := h.store.GetTodayTasks()
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// UpcomingTasks returns tasks scheduled in the next seven days, excluding
// today.
func (h *TaskHandler) UpcomingTasks(c *gin.Context) {
	tasks, err := h.store.GetUpcomingTasks()
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a task together with its related entities.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.store.GetTaskWithRelations(id)
	if err != nil {
		apierrors.FromStorage(c, err, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		Priority    string     `json:"priority"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		WorkspaceID uint64     `json:"workspace_id" binding:"required"`
		CreatedByID uint64     `json:"created_by_id" binding:"required"`
		TotalBudget float64    `json:"total_budget"`
		PaidAmount  float64    `json:"paid_amount"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.CreateTask(storage.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		WorkspaceID: req.WorkspaceID,
		CreatedByID: req.CreatedByID,
		TotalBudget: req.TotalBudget,
		PaidAmount:  req.PaidAmount,
	})
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask merges the provided fields onto a task. The raw JSON is parsed
// as a map so that absent fields and explicit nulls can be told apart.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	current, err := h.store.GetTask(id)
	if err != nil {
		apierrors.FromStorage(c, err, "Task not found")
		return
	}

	var input storage.UpdateTaskInput
	if title, ok := raw["title"].(string); ok {
		input.Title = &title
	}
	if description, ok := raw["description"].(string); ok {
		input.Description = &description
	}
	if statusStr, ok := raw["status"].(string); ok {
		status := models.TaskStatus(statusStr)
		input.Status = &status

		// completed_at follows the status transition: stamped when a task
		// becomes completed, cleared when it leaves that state.
		if status == models.TaskStatusCompleted {
			if current.CompletedAt == nil {
				now := time.Now()
				input.CompletedAt = &now
			}
		} else if current.CompletedAt != nil {
			input.ClearCompletedAt = true
		}
	}
	if priorityStr, ok := raw["priority"].(string); ok {
		priority := models.TaskPriority(priorityStr)
		input.Priority = &priority
	}
	if set, cleared, bad := parseTimeField(raw, "start_date"); bad {
		apierrors.BadRequest(c, "Invalid start_date")
		return
	} else if cleared {
		input.ClearStartDate = true
	} else if set != nil {
		input.StartDate = set
	}
	if set, cleared, bad := parseTimeField(raw, "end_date"); bad {
		apierrors.BadRequest(c, "Invalid end_date")
		return
	} else if cleared {
		input.ClearEndDate = true
	} else if set != nil {
		input.EndDate = set
	}
	if wsFloat, ok := raw["workspace_id"].(float64); ok {
		wsID := uint64(wsFloat)
		input.WorkspaceID = &wsID
	}
	if budget, ok := raw["total_budget"].(float64); ok {
		input.TotalBudget = &budget
	}
	if paid, ok := raw["paid_amount"].(float64); ok {
		input.PaidAmount = &paid
	}

	task, err := h.store.UpdateTask(id, input)
	if err != nil {
		apierrors.FromStorage(c, err, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task and everything attached to it.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteTask(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Task not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseTimeField reads an optional RFC3339 timestamp from a raw JSON map.
// A present null means "clear"; a present string must parse.
func parseTimeField(raw map[string]any, key string) (value *time.Time, cleared, bad bool) {
	v, present := raw[key]
	if !present {
		return nil, false, false
	}
	if v == nil {
		return nil, true, false
	}
	str, ok := v.(string)
	if !ok {
		return nil, false, true
	}
	parsed, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil, false, true
	}
	return &parsed, false, false
}
