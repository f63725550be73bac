package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// AddAttachment records a file reference against a task. The file itself is
// stored elsewhere; only its metadata lives here.
func (h *TaskHandler) AddAttachment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type AddAttachmentRequest struct {
		FileName     string `json:"file_name" binding:"required"`
		FileType     string `json:"file_type" binding:"required"`
		FileSize     int64  `json:"file_size"`
		FileURL      string `json:"file_url" binding:"required"`
		UploadedByID uint64 `json:"uploaded_by_id" binding:"required"`
	}

	var req AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	attachment, err := h.store.AddTaskAttachment(storage.CreateTaskAttachmentInput{
		TaskID:       taskID,
		FileName:     req.FileName,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		FileURL:      req.FileURL,
		UploadedByID: req.UploadedByID,
	})
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// ListAttachments returns a task's attachments.
func (h *TaskHandler) ListAttachments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.store.GetTaskAttachments(taskID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// DeleteAttachment removes an attachment record.
func (h *TaskHandler) DeleteAttachment(c *gin.Context) {
	id, ok := parseIDParam(c, "attachmentId")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteTaskAttachment(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Attachment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
