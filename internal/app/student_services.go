package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
)

// studentService implements the StudentService interface on top of a StudentRepository
type studentService struct {
	studentRepo roster.StudentRepository
	logger      logger.Logger
}

// NewStudentService creates a new instance of StudentService
func NewStudentService(studentRepo roster.StudentRepository, logger logger.Logger) (roster.StudentService, error) {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}, nil
}

// Search returns the students matching term in storage order.
func (s *studentService) Search(ctx context.Context, term string) ([]*roster.Student, error) {
	filter := roster.NewSearchFilter(term)

	students, err := s.studentRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}

	s.logger.Debug("student search", "term", term, "criteria", len(filter.Criteria()), "results", len(students))
	return students, nil
}

// Autocomplete projects every student matching term onto a suggestion.
func (s *studentService) Autocomplete(ctx context.Context, term string) ([]*roster.Suggestion, error) {
	students, err := s.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*roster.Suggestion, len(students))
	for i, student := range students {
		suggestions[i] = roster.NewSuggestion(student)
	}
	return suggestions, nil
}

// GetByID retrieves a student and its classroom.
func (s *studentService) GetByID(ctx context.Context, studentID int) (*roster.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return student, nil
}

// Create validates and stores a new student.
func (s *studentService) Create(ctx context.Context, student *roster.Student) (*roster.Student, error) {
	if err := student.Validate(); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("student created", "student_id", student.ID, "classroom_id", student.ClassroomID)
	return student, nil
}

// Update stores the edited student. A version mismatch is reported as
// ErrStudentNotFound when the row is gone and ErrConcurrencyConflict otherwise.
func (s *studentService) Update(ctx context.Context, studentID int, student *roster.Student) (*roster.Student, error) {
	if student.ID != studentID {
		return nil, fmt.Errorf("student with ID %d: %w", studentID, roster.ErrStudentNotFound)
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	err := s.studentRepo.Update(ctx, student)
	if err == nil {
		s.logger.Info("student updated", "student_id", student.ID, "version", student.Version)
		return student, nil
	}

	if !errors.Is(err, roster.ErrConcurrencyConflict) {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	exists, existsErr := s.studentRepo.Exists(ctx, studentID)
	if existsErr != nil {
		return nil, fmt.Errorf("failed to check student after conflict: %w", existsErr)
	}
	if !exists {
		return nil, fmt.Errorf("student with ID %d: %w", studentID, roster.ErrStudentNotFound)
	}

	s.logger.Warn("concurrent student update", "student_id", studentID, "version", student.Version)
	return nil, err
}

// DeleteByID removes a student. Unknown IDs are not an error.
func (s *studentService) DeleteByID(ctx context.Context, studentID int) error {
	if err := s.studentRepo.DeleteByID(ctx, studentID); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
