//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/stretchr/testify/mock"
)

// MockStudentService is a mock implementation of StudentService
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) Search(ctx context.Context, term string) ([]*roster.Student, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Student), args.Error(1)
}

func (m *MockStudentService) Autocomplete(ctx context.Context, term string) ([]*roster.Suggestion, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Suggestion), args.Error(1)
}

func (m *MockStudentService) GetByID(ctx context.Context, studentID int) (*roster.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Student), args.Error(1)
}

func (m *MockStudentService) Create(ctx context.Context, student *roster.Student) (*roster.Student, error) {
	args := m.Called(ctx, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Student), args.Error(1)
}

func (m *MockStudentService) Update(ctx context.Context, studentID int, student *roster.Student) (*roster.Student, error) {
	args := m.Called(ctx, studentID, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Student), args.Error(1)
}

func (m *MockStudentService) DeleteByID(ctx context.Context, studentID int) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// MockClassroomService is a mock implementation of ClassroomService
type MockClassroomService struct {
	mock.Mock
}

func (m *MockClassroomService) Options(ctx context.Context) ([]*roster.ClassroomOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.ClassroomOption), args.Error(1)
}

func (m *MockClassroomService) List(ctx context.Context) ([]*roster.Classroom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Classroom), args.Error(1)
}

func (m *MockClassroomService) GetByID(ctx context.Context, classroomID int) (*roster.Classroom, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Classroom), args.Error(1)
}

func (m *MockClassroomService) Create(ctx context.Context, classroom *roster.Classroom) (*roster.Classroom, error) {
	args := m.Called(ctx, classroom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Classroom), args.Error(1)
}

func (m *MockClassroomService) DeleteByID(ctx context.Context, classroomID int) error {
	args := m.Called(ctx, classroomID)
	return args.Error(0)
}

// MockRosterTransferService is a mock implementation of RosterTransferService
type MockRosterTransferService struct {
	mock.Mock
}

func (m *MockRosterTransferService) Import(ctx context.Context, r io.Reader, classroomID int) (*roster.ImportResult, error) {
	args := m.Called(ctx, r, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.ImportResult), args.Error(1)
}

func (m *MockRosterTransferService) Export(ctx context.Context, w io.Writer, term string) (int, error) {
	args := m.Called(ctx, w, term)
	return args.Int(0), args.Error(1)
}
