package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// AddVoiceNote records a voice note reference against a task.
func (h *TaskHandler) AddVoiceNote(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type AddVoiceNoteRequest struct {
		FileName     string `json:"file_name" binding:"required"`
		FileSize     int64  `json:"file_size"`
		Duration     int    `json:"duration" binding:"required"`
		FileURL      string `json:"file_url" binding:"required"`
		RecordedByID uint64 `json:"recorded_by_id" binding:"required"`
	}

	var req AddVoiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.store.AddVoiceNote(storage.CreateVoiceNoteInput{
		TaskID:       taskID,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		Duration:     req.Duration,
		FileURL:      req.FileURL,
		RecordedByID: req.RecordedByID,
	})
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListVoiceNotes returns a task's voice notes.
func (h *TaskHandler) ListVoiceNotes(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notes, err := h.store.GetVoiceNotes(taskID)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DeleteVoiceNote removes a voice note record.
func (h *TaskHandler) DeleteVoiceNote(c *gin.Context) {
	id, ok := parseIDParam(c, "voiceNoteId")
	if !ok {
		return
	}

	deleted, err := h.store.DeleteVoiceNote(id)
	if err != nil {
		apierrors.FromStorage(c, err, "")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Voice note not found")
		return
	}
	c.Status(http.StatusNoContent)
}
