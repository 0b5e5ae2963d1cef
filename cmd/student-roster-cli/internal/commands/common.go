package commands

import (
	"fmt"

	"github.com/MGTheTrain/student-roster/internal/app"
	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/persistence"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/spreadsheet"
	"github.com/MGTheTrain/student-roster/internal/pkg/config"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DefaultSqliteDSN is the database file used when nothing else is configured
const DefaultSqliteDSN = "student-roster.db"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// AddDatabaseFlags registers the persistent --db-* flags on the root command.
// Flags win over ROSTER_DB_* variables, which win over the SQLite default.
func AddDatabaseFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("db-type", "", "Database type (sqlite or postgres)")
	rootCmd.PersistentFlags().String("db-dsn", "", "Database connection string")
	rootCmd.PersistentFlags().String("db-name", "", "Database name (postgres only)")
}

func databaseSettings(cmd *cobra.Command) (*config.DatabaseSettings, error) {
	settings := &config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  DefaultSqliteDSN,
	}
	settings.ApplyEnvOverrides()

	for flag, field := range map[string]*string{
		"db-type": &settings.Type,
		"db-dsn":  &settings.DSN,
		"db-name": &settings.Name,
	} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", flag, err)
		}
		if value != "" {
			*field = value
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// rosterServices bundles the application services a command needs
type rosterServices struct {
	students  roster.StudentService
	classroom roster.ClassroomService
	transfer  roster.RosterTransferService
	close     func()
}

// openServices connects to the configured database, migrates it and wires the services
func openServices(cmd *cobra.Command, log logger.Logger) (*rosterServices, error) {
	settings, err := databaseSettings(cmd)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(*settings)
	if err != nil {
		return nil, err
	}
	closeDB := func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}

	services, err := buildServices(db, log)
	if err != nil {
		closeDB()
		return nil, err
	}
	services.close = closeDB
	return services, nil
}

func buildServices(db *gorm.DB, log logger.Logger) (*rosterServices, error) {
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}

	studentRepo, err := persistence.NewGormStudentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create student repository: %w", err)
	}

	classroomRepo, err := persistence.NewGormClassroomRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create classroom repository: %w", err)
	}

	codec, err := spreadsheet.NewExcelRosterCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster codec: %w", err)
	}

	studentService, err := app.NewStudentService(studentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create student service: %w", err)
	}

	classroomService, err := app.NewClassroomService(classroomRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create classroom service: %w", err)
	}

	transferService, err := app.NewRosterTransferService(studentRepo, codec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster transfer service: %w", err)
	}

	return &rosterServices{
		students:  studentService,
		classroom: classroomService,
		transfer:  transferService,
		close:     func() {},
	}, nil
}
