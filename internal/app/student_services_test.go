//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestStudentService(t *testing.T) (roster.StudentService, *MockStudentRepository) {
	t.Helper()

	repo := new(MockStudentRepository)
	service, err := NewStudentService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return service, repo
}

func exampleRoster() []*roster.Student {
	return []*roster.Student{
		{ID: 1, Name: strPtr("Alice"), GPA: 3.5, ClassroomID: 1, Classroom: &roster.Classroom{ID: 1, Name: strPtr("A1")}, Version: 1},
		{ID: 2, Name: strPtr("Bob"), GPA: 3.0, ClassroomID: 2, Classroom: &roster.Classroom{ID: 2, Name: strPtr("B2")}, Version: 1},
	}
}

func filterWithTerm(term string) interface{} {
	return mock.MatchedBy(func(f *roster.SearchFilter) bool { return f.Term() == term })
}

func TestStudentService_Search(t *testing.T) {
	service, repo := newTestStudentService(t)
	students := exampleRoster()[:1]

	repo.On("Search", mock.Anything, filterWithTerm("3.5")).Return(students, nil)

	result, err := service.Search(context.Background(), "3.5")
	require.NoError(t, err)
	assert.Equal(t, students, result)
	repo.AssertExpectations(t)
}

func TestStudentService_Search_PassesNumericCriterion(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("Search", mock.Anything, mock.MatchedBy(func(f *roster.SearchFilter) bool {
		gpa, ok := f.GPA()
		return ok && gpa == 3.5 && len(f.Criteria()) == 3
	})).Return([]*roster.Student{}, nil)

	_, err := service.Search(context.Background(), "3.5")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestStudentService_Search_Error(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := service.Search(context.Background(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestStudentService_Autocomplete(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("Search", mock.Anything, filterWithTerm("")).Return(exampleRoster(), nil)

	suggestions, err := service.Autocomplete(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, &roster.Suggestion{Label: "Alice", Value: "Alice", ClassroomName: "A1", GPA: 3.5}, suggestions[0])
	assert.Equal(t, &roster.Suggestion{Label: "Bob", Value: "Bob", ClassroomName: "B2", GPA: 3.0}, suggestions[1])
}

func TestStudentService_Autocomplete_Empty(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("Search", mock.Anything, filterWithTerm("Zed")).Return([]*roster.Student{}, nil)

	suggestions, err := service.Autocomplete(context.Background(), "Zed")
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestStudentService_GetByID_NotFound(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("GetByID", mock.Anything, 9).Return(nil, roster.ErrStudentNotFound)

	_, err := service.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, roster.ErrStudentNotFound)
}

func TestStudentService_Create(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := &roster.Student{Name: strPtr("Carol"), GPA: 2.9, ClassroomID: 1}

	repo.On("Create", mock.Anything, student).Run(func(args mock.Arguments) {
		s := args.Get(1).(*roster.Student)
		s.ID = 3
		s.Version = roster.InitialVersion
	}).Return(nil)

	created, err := service.Create(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, roster.InitialVersion, created.Version)
}

func TestStudentService_Create_Invalid(t *testing.T) {
	service, repo := newTestStudentService(t)

	_, err := service.Create(context.Background(), &roster.Student{Name: strPtr("Carol")})
	assert.ErrorIs(t, err, roster.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStudentService_Update(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := exampleRoster()[0]

	repo.On("Update", mock.Anything, student).Run(func(args mock.Arguments) {
		args.Get(1).(*roster.Student).Version++
	}).Return(nil)

	updated, err := service.Update(context.Background(), 1, student)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
}

func TestStudentService_Update_IDMismatch(t *testing.T) {
	service, repo := newTestStudentService(t)

	_, err := service.Update(context.Background(), 2, exampleRoster()[0])
	assert.ErrorIs(t, err, roster.ErrStudentNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestStudentService_Update_Invalid(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := exampleRoster()[0]
	student.ClassroomID = 0

	_, err := service.Update(context.Background(), 1, student)
	assert.ErrorIs(t, err, roster.ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStudentService_Update_Conflict(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := exampleRoster()[0]

	repo.On("Update", mock.Anything, student).Return(roster.ErrConcurrencyConflict)
	repo.On("Exists", mock.Anything, 1).Return(true, nil)

	_, err := service.Update(context.Background(), 1, student)
	assert.ErrorIs(t, err, roster.ErrConcurrencyConflict)
	assert.NotErrorIs(t, err, roster.ErrStudentNotFound)
	repo.AssertExpectations(t)
}

func TestStudentService_Update_DeletedConcurrently(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := exampleRoster()[0]

	repo.On("Update", mock.Anything, student).Return(roster.ErrConcurrencyConflict)
	repo.On("Exists", mock.Anything, 1).Return(false, nil)

	_, err := service.Update(context.Background(), 1, student)
	assert.ErrorIs(t, err, roster.ErrStudentNotFound)
}

func TestStudentService_Update_StoreError(t *testing.T) {
	service, repo := newTestStudentService(t)
	student := exampleRoster()[0]

	repo.On("Update", mock.Anything, student).Return(roster.ErrClassroomNotFound)

	_, err := service.Update(context.Background(), 1, student)
	assert.ErrorIs(t, err, roster.ErrClassroomNotFound)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestStudentService_DeleteByID(t *testing.T) {
	service, repo := newTestStudentService(t)

	repo.On("DeleteByID", mock.Anything, 12345).Return(nil)

	assert.NoError(t, service.DeleteByID(context.Background(), 12345))
	repo.AssertExpectations(t)
}
