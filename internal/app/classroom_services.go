package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
)

// classroomService implements the ClassroomService interface
type classroomService struct {
	classroomRepo roster.ClassroomRepository
	logger        logger.Logger
}

// NewClassroomService creates a new instance of ClassroomService
func NewClassroomService(classroomRepo roster.ClassroomRepository, logger logger.Logger) (roster.ClassroomService, error) {
	return &classroomService{
		classroomRepo: classroomRepo,
		logger:        logger,
	}, nil
}

func (s *classroomService) Options(ctx context.Context) ([]*roster.ClassroomOption, error) {
	classrooms, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]*roster.ClassroomOption, len(classrooms))
	for i, c := range classrooms {
		options[i] = &roster.ClassroomOption{ID: c.ID, Name: c.DisplayName()}
	}
	return options, nil
}

func (s *classroomService) List(ctx context.Context) ([]*roster.Classroom, error) {
	classrooms, err := s.classroomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}
	return classrooms, nil
}

func (s *classroomService) GetByID(ctx context.Context, classroomID int) (*roster.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return classroom, nil
}

func (s *classroomService) Create(ctx context.Context, classroom *roster.Classroom) (*roster.Classroom, error) {
	if err := classroom.Validate(); err != nil {
		return nil, err
	}

	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, fmt.Errorf("failed to create classroom: %w", err)
	}

	s.logger.Info("classroom created", "classroom_id", classroom.ID)
	return classroom, nil
}

// DeleteByID refuses to delete a classroom that still owns students.
func (s *classroomService) DeleteByID(ctx context.Context, classroomID int) error {
	count, err := s.classroomRepo.CountStudents(ctx, classroomID)
	if err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("classroom with ID %d has %d students: %w", classroomID, count, roster.ErrClassroomInUse)
	}

	if err := s.classroomRepo.DeleteByID(ctx, classroomID); err != nil {
		return fmt.Errorf("failed to delete classroom: %w", err)
	}
	return nil
}
