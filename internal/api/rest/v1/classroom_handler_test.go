//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newClassroomTestHandler() (ClassroomHandler, *MockClassroomService) {
	gin.SetMode(gin.TestMode)
	classroomService := new(MockClassroomService)
	return NewClassroomHandler(classroomService), classroomService
}

func TestClassroomHandler_ListOptions_Success(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	classroomService.On("Options", mock.Anything).Return([]*roster.ClassroomOption{
		{ID: 1, Name: "A1"},
		{ID: 2, Name: "B2"},
	}, nil)

	c, w := newTestContext("GET", "/classrooms", nil)
	handler.ListOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"A1"},{"id":2,"name":"B2"}]`, w.Body.String())
}

func TestClassroomHandler_ListOptions_Error(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	classroomService.On("Options", mock.Anything).Return(nil, errors.New("db down"))

	c, w := newTestContext("GET", "/classrooms", nil)
	handler.ListOptions(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestClassroomHandler_GetByID_WithChildren(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	parentID := 1
	classroomService.On("GetByID", mock.Anything, 1).Return(&roster.Classroom{
		ID:   1,
		Name: strPtr("Grade 1"),
		Children: []*roster.Classroom{
			{ID: 2, Name: strPtr("Grade 1a"), ParentID: &parentID},
		},
	}, nil)

	c, w := newTestContext("GET", "/classrooms/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Grade 1","children":[{"id":2,"name":"Grade 1a","parentId":1,"children":[]}]}`,
		w.Body.String())
}

func TestClassroomHandler_GetByID_NotFound(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	classroomService.On("GetByID", mock.Anything, 5).Return(nil, roster.ErrClassroomNotFound)

	c, w := newTestContext("GET", "/classrooms/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClassroomHandler_Create_Success(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	classroomService.On("Create", mock.Anything, mock.MatchedBy(func(c *roster.Classroom) bool {
		return c.Name != nil && *c.Name == "A1"
	})).Return(&roster.Classroom{ID: 3, Name: strPtr("A1")}, nil)

	c, w := newTestContext("POST", "/classrooms", bytes.NewBufferString(`{"name":"A1"}`))
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
}

func TestClassroomHandler_Create_InvalidParent(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	c, w := newTestContext("POST", "/classrooms", bytes.NewBufferString(`{"name":"A1","parentId":-1}`))
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	classroomService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClassroomHandler_DeleteByID_InUse(t *testing.T) {
	handler, classroomService := newClassroomTestHandler()

	classroomService.On("DeleteByID", mock.Anything, 1).Return(roster.ErrClassroomInUse)

	c, w := newTestContext("DELETE", "/classrooms/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.DeleteByID(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
