// Package memstore is the in-process reference implementation of the
// storage contract, backed by per-entity maps. It is used for development
// and as the fixture backend in tests.
package memstore

import (
	"sync"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// Store holds every entity family in a keyed map with a per-family id
// counter starting at 1. All operations are protected by a mutex; each
// mutation is a single atomic map update, so readers never observe partial
// state.
type Store struct {
	mu sync.RWMutex

	users       map[uint64]models.User
	workspaces  map[uint64]models.Workspace
	tasks       map[uint64]models.Task
	assignees   map[uint64]models.TaskAssignee
	attachments map[uint64]models.TaskAttachment
	voiceNotes  map[uint64]models.VoiceNote
	comments    map[uint64]models.Comment

	nextUserID       uint64
	nextWorkspaceID  uint64
	nextTaskID       uint64
	nextAssigneeID   uint64
	nextAttachmentID uint64
	nextVoiceNoteID  uint64
	nextCommentID    uint64
}

var _ storage.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		users:            make(map[uint64]models.User),
		workspaces:       make(map[uint64]models.Workspace),
		tasks:            make(map[uint64]models.Task),
		assignees:        make(map[uint64]models.TaskAssignee),
		attachments:      make(map[uint64]models.TaskAttachment),
		voiceNotes:       make(map[uint64]models.VoiceNote),
		comments:         make(map[uint64]models.Comment),
		nextUserID:       1,
		nextWorkspaceID:  1,
		nextTaskID:       1,
		nextAssigneeID:   1,
		nextAttachmentID: 1,
		nextVoiceNoteID:  1,
		nextCommentID:    1,
	}
}

// NewSeeded returns a store preloaded with the demonstration data set.
func NewSeeded() (*Store, error) {
	s := New()
	if err := storage.SeedDemoData(s); err != nil {
		return nil, err
	}
	return s, nil
}
