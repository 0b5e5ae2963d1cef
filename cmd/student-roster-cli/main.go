// Package main is the entry point for the student-roster-cli application.
// It registers the migrate, classroom and student command groups and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/student-roster/cmd/student-roster-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := newRootCmd()

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "student-roster-cli",
		Short: "Student roster administration tool",
		Long: `student-roster-cli manages the student roster database.
It migrates the schema, creates and lists classrooms, searches students
and imports or exports xlsx rosters.

The database defaults to a local SQLite file. Use --db-type, --db-dsn and
--db-name, or the ROSTER_DB_TYPE, ROSTER_DB_DSN and ROSTER_DB_NAME
environment variables, to point at another database.`,
		SilenceUsage: true,
	}
	commands.AddDatabaseFlags(rootCmd)
	return rootCmd
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitClassroomCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize classroom commands: %w", err)
	}

	if err := commands.InitStudentCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize student commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
