//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/persistence"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/spreadsheet"
	"github.com/MGTheTrain/student-roster/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	StudentService        roster.StudentService
	ClassroomService      roster.ClassroomService
	RosterTransferService roster.RosterTransferService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	studentService, err := NewStudentService(dbContext.StudentRepo, logger)
	require.NoError(t, err, "Failed to create student service")

	classroomService, err := NewClassroomService(dbContext.ClassroomRepo, logger)
	require.NoError(t, err, "Failed to create classroom service")

	codec, err := spreadsheet.NewExcelRosterCodec(logger)
	require.NoError(t, err, "Failed to create roster codec")

	transferService, err := NewRosterTransferService(dbContext.StudentRepo, codec, logger)
	require.NoError(t, err, "Failed to create roster transfer service")

	return &TestServices{
		StudentService:        studentService,
		ClassroomService:      classroomService,
		RosterTransferService: transferService,
		DBContext:             dbContext,
	}
}
