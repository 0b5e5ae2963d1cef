//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/config"
	"github.com/MGTheTrain/student-roster/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Test constants
const (
	TestPostgresImage    = "postgres:16-alpine"
	TestPostgresUser     = "postgres"
	TestPostgresPassword = "postgres"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	StudentRepo   roster.StudentRepository
	ClassroomRepo roster.ClassroomRepository
}

var (
	postgresOnce     sync.Once
	postgresAdminDSN string
	postgresErr      error
)

// startPostgres launches one Postgres container shared by every test in the package.
// The container is reaped by testcontainers when the test binary exits.
func startPostgres() (string, error) {
	postgresOnce.Do(func() {
		ctx := context.Background()

		var container testcontainers.Container
		func() {
			defer func() {
				if r := recover(); r != nil {
					postgresErr = fmt.Errorf("docker not available: %v", r)
				}
			}()
			req := testcontainers.ContainerRequest{
				Image:        TestPostgresImage,
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     TestPostgresUser,
					"POSTGRES_PASSWORD": TestPostgresPassword,
				},
				WaitingFor: wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60 * time.Second),
			}
			container, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
				ContainerRequest: req,
				Started:          true,
			})
		}()
		if postgresErr != nil {
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			postgresErr = fmt.Errorf("failed to get container host: %w", err)
			return
		}

		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			postgresErr = fmt.Errorf("failed to get container port: %w", err)
			return
		}

		postgresAdminDSN = fmt.Sprintf("user=%s password=%s host=%s port=%s sslmode=disable",
			TestPostgresUser, TestPostgresPassword, host, port.Port())
	})

	return postgresAdminDSN, postgresErr
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// Postgres tests are skipped when Docker is not available.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteInMemoryDSN,
		}

	case config.PostgresDbType:
		adminDSN, err := startPostgres()
		if err != nil {
			t.Skipf("Docker not available, skipping Postgres test: %v", err)
		}

		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  adminDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(adminDSN+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	studentRepo, err := NewGormStudentRepository(db, logger)
	require.NoError(t, err, "Failed to create student repository")

	classroomRepo, err := NewGormClassroomRepository(db, logger)
	require.NoError(t, err, "Failed to create classroom repository")

	return &TestContext{
		DB:            db,
		StudentRepo:   studentRepo,
		ClassroomRepo: classroomRepo,
	}
}

// CreateTestClassroom stores a classroom with the given name
func CreateTestClassroom(t *testing.T, ctx *TestContext, name string) *roster.Classroom {
	t.Helper()

	classroom := &roster.Classroom{Name: &name}
	require.NoError(t, ctx.ClassroomRepo.Create(context.Background(), classroom))
	return classroom
}

// CreateTestStudent stores a student in the given classroom
func CreateTestStudent(t *testing.T, ctx *TestContext, name string, gpa float64, classroomID int) *roster.Student {
	t.Helper()

	student := &roster.Student{Name: &name, GPA: gpa, ClassroomID: classroomID}
	require.NoError(t, ctx.StudentRepo.Create(context.Background(), student))
	return student
}

// SeedExampleRoster stores Alice (3.5, A1) and Bob (3.0, B2)
func SeedExampleRoster(t *testing.T, ctx *TestContext) (alice, bob *roster.Student) {
	t.Helper()

	a1 := CreateTestClassroom(t, ctx, "A1")
	b2 := CreateTestClassroom(t, ctx, "B2")
	alice = CreateTestStudent(t, ctx, "Alice", 3.5, a1.ID)
	bob = CreateTestStudent(t, ctx, "Bob", 3.0, b2.ID)
	return alice, bob
}

// StudentNames extracts display names in order
func StudentNames(students []*roster.Student) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.DisplayName())
	}
	return out
}
