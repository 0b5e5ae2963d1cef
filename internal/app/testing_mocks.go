//go:build unit
// +build unit

package app

import (
	"context"
	"io"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/stretchr/testify/mock"
)

// MockStudentRepository is a mock implementation of StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Search(ctx context.Context, filter *roster.SearchFilter) ([]*roster.Student, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, studentID int) (*roster.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Student), args.Error(1)
}

func (m *MockStudentRepository) Exists(ctx context.Context, studentID int) (bool, error) {
	args := m.Called(ctx, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *roster.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) Update(ctx context.Context, student *roster.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) DeleteByID(ctx context.Context, studentID int) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// MockClassroomRepository is a mock implementation of ClassroomRepository
type MockClassroomRepository struct {
	mock.Mock
}

func (m *MockClassroomRepository) List(ctx context.Context) ([]*roster.Classroom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roster.Classroom), args.Error(1)
}

func (m *MockClassroomRepository) GetByID(ctx context.Context, classroomID int) (*roster.Classroom, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Classroom), args.Error(1)
}

func (m *MockClassroomRepository) Create(ctx context.Context, classroom *roster.Classroom) error {
	args := m.Called(ctx, classroom)
	return args.Error(0)
}

func (m *MockClassroomRepository) DeleteByID(ctx context.Context, classroomID int) error {
	args := m.Called(ctx, classroomID)
	return args.Error(0)
}

func (m *MockClassroomRepository) CountStudents(ctx context.Context, classroomID int) (int64, error) {
	args := m.Called(ctx, classroomID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRosterCodec is a mock implementation of RosterCodec
type MockRosterCodec struct {
	mock.Mock
}

func (m *MockRosterCodec) Decode(r io.Reader) ([]*roster.StudentRecord, []int, error) {
	args := m.Called(r)
	var records []*roster.StudentRecord
	if v := args.Get(0); v != nil {
		records = v.([]*roster.StudentRecord)
	}
	var skipped []int
	if v := args.Get(1); v != nil {
		skipped = v.([]int)
	}
	return records, skipped, args.Error(2)
}

func (m *MockRosterCodec) Encode(w io.Writer, students []*roster.Student) error {
	args := m.Called(w, students)
	return args.Error(0)
}
