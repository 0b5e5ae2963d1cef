package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
)

// rosterTransferService moves students between the store and roster spreadsheets
type rosterTransferService struct {
	studentRepo roster.StudentRepository
	codec       roster.RosterCodec
	logger      logger.Logger
}

// NewRosterTransferService creates a new instance of RosterTransferService
func NewRosterTransferService(studentRepo roster.StudentRepository, codec roster.RosterCodec, logger logger.Logger) (roster.RosterTransferService, error) {
	return &rosterTransferService{
		studentRepo: studentRepo,
		codec:       codec,
		logger:      logger,
	}, nil
}

// Import creates one student per decoded row in the given classroom.
// The import stops at the first failing row; rows created before it are kept.
func (s *rosterTransferService) Import(ctx context.Context, r io.Reader, classroomID int) (*roster.ImportResult, error) {
	records, skipped, err := s.codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	result := &roster.ImportResult{SkippedRows: skipped}
	for _, record := range records {
		name := record.Name
		student := &roster.Student{
			Name:        &name,
			GPA:         record.GPA,
			ClassroomID: classroomID,
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			return result, fmt.Errorf("failed to import row %d: %w", record.Row, err)
		}
		result.Imported++
	}

	s.logger.Info("roster imported", "classroom_id", classroomID, "imported", result.Imported, "skipped", len(skipped))
	return result, nil
}

// Export writes every student matching term.
func (s *rosterTransferService) Export(ctx context.Context, w io.Writer, term string) (int, error) {
	students, err := s.studentRepo.Search(ctx, roster.NewSearchFilter(term))
	if err != nil {
		return 0, fmt.Errorf("failed to search students: %w", err)
	}

	if err := s.codec.Encode(w, students); err != nil {
		return 0, fmt.Errorf("failed to write roster: %w", err)
	}

	s.logger.Info("roster exported", "term", term, "students", len(students))
	return len(students), nil
}
