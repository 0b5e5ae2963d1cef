//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentPostgresRepository_Search(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	SeedExampleRoster(t, ctx)

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"empty term returns all", "", []string{"Alice", "Bob"}},
		{"numeric term matches gpa", "3.5", []string{"Alice"}},
		{"classroom name", "A1", []string{"Alice"}},
		{"no match", "Zed", []string{}},
		{"percent is literal", "%", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students, err := ctx.StudentRepo.Search(context.Background(), roster.NewSearchFilter(tt.term))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, StudentNames(students))
		})
	}
}

func TestStudentPostgresRepository_Search_CaseSensitive(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	SeedExampleRoster(t, ctx)

	students, err := ctx.StudentRepo.Search(context.Background(), roster.NewSearchFilter("alice"))
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestStudentPostgresRepository_CreateAndGetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	classroom := CreateTestClassroom(t, ctx, "A1")
	student := CreateTestStudent(t, ctx, "Carol", 2.5, classroom.ID)

	fetched, err := ctx.StudentRepo.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", fetched.DisplayName())
	assert.Equal(t, 2.5, fetched.GPA)
	assert.Equal(t, "A1", fetched.ClassroomName())
	assert.Equal(t, roster.InitialVersion, fetched.Version)
}

func TestStudentPostgresRepository_Update_StaleVersion(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	alice, _ := SeedExampleRoster(t, ctx)

	stale := *alice
	alice.GPA = 3.8
	require.NoError(t, ctx.StudentRepo.Update(context.Background(), alice))

	err := ctx.StudentRepo.Update(context.Background(), &stale)
	assert.ErrorIs(t, err, roster.ErrConcurrencyConflict)
}

func TestStudentPostgresRepository_DeleteByID_Nonexistent(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	assert.NoError(t, ctx.StudentRepo.DeleteByID(context.Background(), 12345))
}
