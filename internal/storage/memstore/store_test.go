package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// MemStoreTestSuite defines the test suite for the in-memory backend
type MemStoreTestSuite struct {
	suite.Suite
	store *Store
}

// SetupTest runs before each test
func (suite *MemStoreTestSuite) SetupTest() {
	suite.store = New()
}

// Helper function to create test data
func (suite *MemStoreTestSuite) createTestUser(username string) *models.User {
	user, err := suite.store.CreateUser(storage.CreateUserInput{
		Username: username,
		Password: "hashedpassword",
		FullName: "Test User",
		Email:    username + "@example.com",
	})
	suite.Require().NoError(err)
	return user
}

func (suite *MemStoreTestSuite) createTestWorkspace(name string) *models.Workspace {
	ws, err := suite.store.CreateWorkspace(storage.CreateWorkspaceInput{
		Name:  name,
		Color: "#0073ea",
	})
	suite.Require().NoError(err)
	return ws
}

func (suite *MemStoreTestSuite) createTestTask(title string, workspaceID, creatorID uint64) *models.Task {
	task, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       title,
		WorkspaceID: workspaceID,
		CreatedByID: creatorID,
	})
	suite.Require().NoError(err)
	return task
}

// TestCreateTask_Defaults tests that status and priority default when omitted
func (suite *MemStoreTestSuite) TestCreateTask_Defaults() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	task := suite.createTestTask("Bare Task", ws.ID, user.ID)

	assert.Equal(suite.T(), models.TaskStatusTodo, task.Status)
	assert.Equal(suite.T(), models.TaskPriorityMedium, task.Priority)
	assert.Equal(suite.T(), float64(0), task.TotalBudget)
	assert.Equal(suite.T(), float64(0), task.PaidAmount)
	assert.Nil(suite.T(), task.StartDate)
	assert.Nil(suite.T(), task.CompletedAt)
}

// TestCreateTask_GetAfterCreate tests that a created task reads back identically
func (suite *MemStoreTestSuite) TestCreateTask_GetAfterCreate() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	start := time.Now().Add(2 * time.Hour)
	created, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Full Task",
		Description: "With everything set",
		Status:      models.TaskStatusInProgress,
		Priority:    models.TaskPriorityHigh,
		StartDate:   &start,
		WorkspaceID: ws.ID,
		CreatedByID: user.ID,
		TotalBudget: 2500,
		PaidAmount:  1500,
	})
	suite.Require().NoError(err)

	got, err := suite.store.GetTask(created.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), created, got)
}

// TestCreateTask_UnknownWorkspace tests that a missing workspace is a validation error
func (suite *MemStoreTestSuite) TestCreateTask_UnknownWorkspace() {
	user := suite.createTestUser("creator")

	_, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Orphan",
		WorkspaceID: 999,
		CreatedByID: user.ID,
	})

	assert.True(suite.T(), storage.IsValidation(err))
}

// TestCreateTask_InvalidStatus tests rejection of unknown status values
func (suite *MemStoreTestSuite) TestCreateTask_InvalidStatus() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	_, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Bad Status",
		Status:      "done",
		WorkspaceID: ws.ID,
		CreatedByID: user.ID,
	})

	assert.True(suite.T(), storage.IsValidation(err))
}

// TestGetTask_NotFound tests the missing-id error
func (suite *MemStoreTestSuite) TestGetTask_NotFound() {
	_, err := suite.store.GetTask(42)
	assert.ErrorIs(suite.T(), err, storage.ErrNotFound)
}

// TestGetTasks_Ordering tests newest-first ordering with id tiebreak
func (suite *MemStoreTestSuite) TestGetTasks_Ordering() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	first := suite.createTestTask("First", ws.ID, user.ID)
	second := suite.createTestTask("Second", ws.ID, user.ID)
	third := suite.createTestTask("Third", ws.ID, user.ID)

	tasks, err := suite.store.GetTasks()
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	assert.Equal(suite.T(), third.ID, tasks[0].ID)
	assert.Equal(suite.T(), second.ID, tasks[1].ID)
	assert.Equal(suite.T(), first.ID, tasks[2].ID)
}

// TestUpdateTask_PartialMerge tests that omitted fields survive an update
func (suite *MemStoreTestSuite) TestUpdateTask_PartialMerge() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	start := time.Now().Add(time.Hour)
	created, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Original",
		Description: "Keep me",
		Priority:    models.TaskPriorityHigh,
		StartDate:   &start,
		WorkspaceID: ws.ID,
		CreatedByID: user.ID,
		TotalBudget: 100,
	})
	suite.Require().NoError(err)

	newTitle := "Renamed"
	updated, err := suite.store.UpdateTask(created.ID, storage.UpdateTaskInput{Title: &newTitle})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Renamed", updated.Title)
	assert.Equal(suite.T(), "Keep me", updated.Description)
	assert.Equal(suite.T(), models.TaskPriorityHigh, updated.Priority)
	assert.Equal(suite.T(), float64(100), updated.TotalBudget)
	suite.Require().NotNil(updated.StartDate)
	assert.True(suite.T(), updated.StartDate.Equal(start))
}

// TestUpdateTask_ClearDates tests explicit nulling of nullable fields
func (suite *MemStoreTestSuite) TestUpdateTask_ClearDates() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	start := time.Now()
	end := start.Add(time.Hour)
	created, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Scheduled",
		StartDate:   &start,
		EndDate:     &end,
		WorkspaceID: ws.ID,
		CreatedByID: user.ID,
	})
	suite.Require().NoError(err)

	updated, err := suite.store.UpdateTask(created.ID, storage.UpdateTaskInput{
		ClearStartDate: true,
		ClearEndDate:   true,
	})
	suite.Require().NoError(err)
	assert.Nil(suite.T(), updated.StartDate)
	assert.Nil(suite.T(), updated.EndDate)
}

// TestUpdateTask_NotFound tests updating a missing task
func (suite *MemStoreTestSuite) TestUpdateTask_NotFound() {
	title := "Ghost"
	_, err := suite.store.UpdateTask(42, storage.UpdateTaskInput{Title: &title})
	assert.ErrorIs(suite.T(), err, storage.ErrNotFound)
}

// TestDeleteTask_Cascades tests that related entities go with the task
func (suite *MemStoreTestSuite) TestDeleteTask_Cascades() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Doomed", ws.ID, user.ID)

	_, err := suite.store.AssignUserToTask(task.ID, user.ID)
	suite.Require().NoError(err)
	_, err = suite.store.AddTaskAttachment(storage.CreateTaskAttachmentInput{
		TaskID:       task.ID,
		FileName:     "spec.pdf",
		FileType:     "application/pdf",
		FileSize:     1024,
		FileURL:      "/uploads/spec.pdf",
		UploadedByID: user.ID,
	})
	suite.Require().NoError(err)
	_, err = suite.store.AddVoiceNote(storage.CreateVoiceNoteInput{
		TaskID:       task.ID,
		FileName:     "note.mp3",
		FileSize:     2048,
		Duration:     10,
		FileURL:      "/uploads/note.mp3",
		RecordedByID: user.ID,
	})
	suite.Require().NoError(err)
	_, err = suite.store.AddComment(storage.CreateCommentInput{
		TaskID:  task.ID,
		UserID:  user.ID,
		Content: "so long",
	})
	suite.Require().NoError(err)

	deleted, err := suite.store.DeleteTask(task.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), deleted)

	_, err = suite.store.GetTask(task.ID)
	assert.ErrorIs(suite.T(), err, storage.ErrNotFound)

	assignees, err := suite.store.GetTaskAssignees(task.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), assignees)

	attachments, err := suite.store.GetTaskAttachments(task.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), attachments)

	notes, err := suite.store.GetVoiceNotes(task.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), notes)

	comments, err := suite.store.GetComments(task.ID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), comments)
}

// TestDeleteTask_Idempotent tests that the second delete reports nothing removed
func (suite *MemStoreTestSuite) TestDeleteTask_Idempotent() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Once", ws.ID, user.ID)

	deleted, err := suite.store.DeleteTask(task.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), deleted)

	deleted, err = suite.store.DeleteTask(task.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), deleted)
}

// TestTodayAndUpcoming_Disjoint tests the scheduling windows
func (suite *MemStoreTestSuite) TestTodayAndUpcoming_Disjoint() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	nextMonth := now.AddDate(0, 0, 30)

	mk := func(title string, start *time.Time) *models.Task {
		task, err := suite.store.CreateTask(storage.CreateTaskInput{
			Title:       title,
			StartDate:   start,
			WorkspaceID: ws.ID,
			CreatedByID: user.ID,
		})
		suite.Require().NoError(err)
		return task
	}

	todayTask := mk("Today", &now)
	tomorrowTask := mk("Tomorrow", &tomorrow)
	mk("Far future", &nextMonth)
	mk("Unscheduled", nil)

	today, err := suite.store.GetTodayTasks()
	suite.Require().NoError(err)
	suite.Require().Len(today, 1)
	assert.Equal(suite.T(), todayTask.ID, today[0].ID)

	upcoming, err := suite.store.GetUpcomingTasks()
	suite.Require().NoError(err)
	suite.Require().Len(upcoming, 1)
	assert.Equal(suite.T(), tomorrowTask.ID, upcoming[0].ID)
}

// TestGetTasksByUser tests that both created and assigned tasks are returned
func (suite *MemStoreTestSuite) TestGetTasksByUser() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	ws := suite.createTestWorkspace("Workspace")

	created := suite.createTestTask("Created by Alice", ws.ID, alice.ID)
	assigned := suite.createTestTask("Created by Bob", ws.ID, bob.ID)
	suite.createTestTask("Unrelated", ws.ID, bob.ID)

	_, err := suite.store.AssignUserToTask(assigned.ID, alice.ID)
	suite.Require().NoError(err)

	tasks, err := suite.store.GetTasksByUser(alice.ID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)

	ids := []uint64{tasks[0].ID, tasks[1].ID}
	assert.Contains(suite.T(), ids, created.ID)
	assert.Contains(suite.T(), ids, assigned.ID)
}

// TestAssignUserToTask_Dedupe tests that repeated assignment keeps one link
func (suite *MemStoreTestSuite) TestAssignUserToTask_Dedupe() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Shared", ws.ID, user.ID)

	first, err := suite.store.AssignUserToTask(task.ID, user.ID)
	suite.Require().NoError(err)
	second, err := suite.store.AssignUserToTask(task.ID, user.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), first.ID, second.ID)

	assignees, err := suite.store.GetTaskAssignees(task.ID)
	suite.Require().NoError(err)
	assert.Len(suite.T(), assignees, 1)
}

// TestRemoveUserFromTask tests unassignment and its idempotence
func (suite *MemStoreTestSuite) TestRemoveUserFromTask() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Shared", ws.ID, user.ID)

	_, err := suite.store.AssignUserToTask(task.ID, user.ID)
	suite.Require().NoError(err)

	removed, err := suite.store.RemoveUserFromTask(task.ID, user.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), removed)

	removed, err = suite.store.RemoveUserFromTask(task.ID, user.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), removed)
}

// TestGetTaskWithRelations_Empty tests that a bare task reports empty collections
func (suite *MemStoreTestSuite) TestGetTaskWithRelations_Empty() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Bare", ws.ID, user.ID)

	full, err := suite.store.GetTaskWithRelations(task.ID)
	suite.Require().NoError(err)

	assert.NotNil(suite.T(), full.Assignees)
	assert.Empty(suite.T(), full.Assignees)
	assert.NotNil(suite.T(), full.Attachments)
	assert.Empty(suite.T(), full.Attachments)
	assert.NotNil(suite.T(), full.VoiceNotes)
	assert.Empty(suite.T(), full.VoiceNotes)
	assert.NotNil(suite.T(), full.Comments)
	assert.Empty(suite.T(), full.Comments)
	suite.Require().NotNil(full.Workspace)
	assert.Equal(suite.T(), ws.ID, full.Workspace.ID)
	suite.Require().NotNil(full.CreatedBy)
	assert.Equal(suite.T(), user.ID, full.CreatedBy.ID)
}

// TestGetTaskWithRelations_Full tests aggregate assembly
func (suite *MemStoreTestSuite) TestGetTaskWithRelations_Full() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Busy", ws.ID, alice.ID)

	_, err := suite.store.AssignUserToTask(task.ID, alice.ID)
	suite.Require().NoError(err)
	_, err = suite.store.AssignUserToTask(task.ID, bob.ID)
	suite.Require().NoError(err)
	_, err = suite.store.AddComment(storage.CreateCommentInput{
		TaskID:  task.ID,
		UserID:  bob.ID,
		Content: "looks good",
	})
	suite.Require().NoError(err)

	full, err := suite.store.GetTaskWithRelations(task.ID)
	suite.Require().NoError(err)

	suite.Require().Len(full.Assignees, 2)
	assert.Equal(suite.T(), alice.ID, full.Assignees[0].ID)
	assert.Equal(suite.T(), bob.ID, full.Assignees[1].ID)
	suite.Require().Len(full.Comments, 1)
	assert.Equal(suite.T(), "looks good", full.Comments[0].Content)
	assert.Equal(suite.T(), bob.Username, full.Comments[0].User.Username)
}

// TestAttachmentAndVoiceNote_StampTimestamps tests that creation timestamps
// are assigned server-side
func (suite *MemStoreTestSuite) TestAttachmentAndVoiceNote_StampTimestamps() {
	user := suite.createTestUser("creator")
	ws := suite.createTestWorkspace("Workspace")
	task := suite.createTestTask("Annotated", ws.ID, user.ID)

	attachment, err := suite.store.AddTaskAttachment(storage.CreateTaskAttachmentInput{
		TaskID:       task.ID,
		FileName:     "spec.pdf",
		FileType:     "application/pdf",
		FileSize:     1024,
		FileURL:      "/uploads/spec.pdf",
		UploadedByID: user.ID,
	})
	suite.Require().NoError(err)
	assert.False(suite.T(), attachment.UploadedAt.IsZero())

	note, err := suite.store.AddVoiceNote(storage.CreateVoiceNoteInput{
		TaskID:       task.ID,
		FileName:     "note.mp3",
		FileSize:     2048,
		Duration:     10,
		FileURL:      "/uploads/note.mp3",
		RecordedByID: user.ID,
	})
	suite.Require().NoError(err)
	assert.False(suite.T(), note.RecordedAt.IsZero())
}

// TestCreateUser_DuplicateUsername tests username uniqueness
func (suite *MemStoreTestSuite) TestCreateUser_DuplicateUsername() {
	suite.createTestUser("taken")

	_, err := suite.store.CreateUser(storage.CreateUserInput{
		Username: "taken",
		Password: "whatever",
		FullName: "Someone Else",
		Email:    "else@example.com",
	})
	assert.True(suite.T(), storage.IsValidation(err))
}

// TestWorkspaceLifecycle tests workspace create, update, delete
func (suite *MemStoreTestSuite) TestWorkspaceLifecycle() {
	ws := suite.createTestWorkspace("Original")

	name := "Renamed"
	updated, err := suite.store.UpdateWorkspace(ws.ID, storage.UpdateWorkspaceInput{Name: &name})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Renamed", updated.Name)
	assert.Equal(suite.T(), ws.Color, updated.Color)

	deleted, err := suite.store.DeleteWorkspace(ws.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), deleted)

	deleted, err = suite.store.DeleteWorkspace(ws.ID)
	suite.Require().NoError(err)
	assert.False(suite.T(), deleted)

	_, err = suite.store.GetWorkspace(ws.ID)
	assert.ErrorIs(suite.T(), err, storage.ErrNotFound)
}

// TestNewSeeded tests the demo data set loads with the expected shape
func (suite *MemStoreTestSuite) TestNewSeeded() {
	seeded, err := NewSeeded()
	suite.Require().NoError(err)

	users, err := seeded.GetUsers()
	suite.Require().NoError(err)
	assert.Len(suite.T(), users, 2)

	workspaces, err := seeded.GetWorkspaces()
	suite.Require().NoError(err)
	assert.Len(suite.T(), workspaces, 3)

	tasks, err := seeded.GetTasks()
	suite.Require().NoError(err)
	assert.Len(suite.T(), tasks, 5)

	today, err := seeded.GetTodayTasks()
	suite.Require().NoError(err)
	assert.Len(suite.T(), today, 4)

	upcoming, err := seeded.GetUpcomingTasks()
	suite.Require().NoError(err)
	assert.Len(suite.T(), upcoming, 1)

	full, err := seeded.GetTaskWithRelations(1)
	suite.Require().NoError(err)
	assert.Len(suite.T(), full.Assignees, 2)
	assert.Len(suite.T(), full.Attachments, 2)
	assert.Len(suite.T(), full.VoiceNotes, 1)
	assert.Len(suite.T(), full.Comments, 2)
}

// TestSuite runs the test suite
func TestMemStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemStoreTestSuite))
}
