package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// AddComment attaches a comment to a task and returns it joined with its
// author.
func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type AddCommentRequest struct {
		UserID  uint64 `json:"user_id" binding:"required"`
		Content string `json:"content" binding:"required"`
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.store.AddComment(storage.CreateCommentInput{
		TaskID:  taskID,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}

	user, err := h.store.GetUser(comment.UserID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, models.CommentWithUser{Comment: *comment, User: *user})
}

// ListComments returns a task's comments with their authors.
func (h *TaskHandler) ListComments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.store.GetComments(taskID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment.
func (h *TaskHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteComment(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Comment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
