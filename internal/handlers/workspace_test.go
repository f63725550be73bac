package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
	"github.com/workflowhq/workflow-api/internal/storage/memstore"
)

// WorkspaceHandlerTestSuite defines the test suite for WorkspaceHandler
type WorkspaceHandlerTestSuite struct {
	suite.Suite
	store   *memstore.Store
	handler *WorkspaceHandler
}

// SetupTest runs before each test
func (suite *WorkspaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = memstore.New()
	suite.handler = NewWorkspaceHandler(suite.store)
}

func (suite *WorkspaceHandlerTestSuite) createContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *WorkspaceHandlerTestSuite) createTestWorkspace(name string) *models.Workspace {
	ws, err := suite.store.CreateWorkspace(storage.CreateWorkspaceInput{
		Name:  name,
		Color: "#fdab3d",
	})
	suite.Require().NoError(err)
	return ws
}

// TestCreateWorkspace_Success tests workspace creation
func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_Success() {
	body, _ := json.Marshal(map[string]interface{}{
		"name":  "Marketing",
		"color": "#0073ea",
	})

	c, w := suite.createContext("POST", "/api/workspaces", body)
	suite.handler.CreateWorkspace(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response models.Workspace
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Marketing", response.Name)
	assert.Equal(suite.T(), "#0073ea", response.Color)
	assert.NotZero(suite.T(), response.ID)
}

// TestCreateWorkspace_MissingColor tests required-field validation
func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_MissingColor() {
	body, _ := json.Marshal(map[string]interface{}{"name": "Marketing"})

	c, w := suite.createContext("POST", "/api/workspaces", body)
	suite.handler.CreateWorkspace(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListWorkspaces tests listing, newest first
func (suite *WorkspaceHandlerTestSuite) TestListWorkspaces() {
	first := suite.createTestWorkspace("First")
	second := suite.createTestWorkspace("Second")

	c, w := suite.createContext("GET", "/api/workspaces", nil)
	suite.handler.ListWorkspaces(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Workspace
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 2)
	assert.Equal(suite.T(), second.ID, response[0].ID)
	assert.Equal(suite.T(), first.ID, response[1].ID)
}

// TestGetWorkspace_NotFound tests fetching a missing workspace
func (suite *WorkspaceHandlerTestSuite) TestGetWorkspace_NotFound() {
	c, w := suite.createContext("GET", "/api/workspaces/42", nil)
	setParam(c, "id", "42")
	suite.handler.GetWorkspace(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateWorkspace_Partial tests that omitted fields keep their values
func (suite *WorkspaceHandlerTestSuite) TestUpdateWorkspace_Partial() {
	ws := suite.createTestWorkspace("Original")

	body, _ := json.Marshal(map[string]interface{}{"name": "Renamed"})
	c, w := suite.createContext("PATCH", "/api/workspaces/1", body)
	setParam(c, "id", "1")
	suite.handler.UpdateWorkspace(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response models.Workspace
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Renamed", response.Name)
	assert.Equal(suite.T(), ws.Color, response.Color)
}

// TestDeleteWorkspace tests deletion and its not-found follow-up
func (suite *WorkspaceHandlerTestSuite) TestDeleteWorkspace() {
	suite.createTestWorkspace("Doomed")

	c, w := suite.createContext("DELETE", "/api/workspaces/1", nil)
	setParam(c, "id", "1")
	suite.handler.DeleteWorkspace(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	c, w = suite.createContext("DELETE", "/api/workspaces/1", nil)
	setParam(c, "id", "1")
	suite.handler.DeleteWorkspace(c)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListWorkspaceTasks tests the per-workspace task view
func (suite *WorkspaceHandlerTestSuite) TestListWorkspaceTasks() {
	user, err := suite.store.CreateUser(storage.CreateUserInput{
		Username: "creator",
		Password: "hashedpassword",
		FullName: "Test User",
		Email:    "creator@example.com",
	})
	suite.Require().NoError(err)
	mine := suite.createTestWorkspace("Mine")
	other := suite.createTestWorkspace("Other")

	task, err := suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Here",
		WorkspaceID: mine.ID,
		CreatedByID: user.ID,
	})
	suite.Require().NoError(err)
	_, err = suite.store.CreateTask(storage.CreateTaskInput{
		Title:       "Elsewhere",
		WorkspaceID: other.ID,
		CreatedByID: user.ID,
	})
	suite.Require().NoError(err)

	c, w := suite.createContext("GET", "/api/workspaces/1/tasks", nil)
	setParam(c, "id", "1")
	suite.handler.ListWorkspaceTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 1)
	assert.Equal(suite.T(), task.ID, response[0].ID)
}

// TestSuite runs the test suite
func TestWorkspaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceHandlerTestSuite))
}
