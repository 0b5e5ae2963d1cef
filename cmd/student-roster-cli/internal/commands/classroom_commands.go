package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
	"github.com/MGTheTrain/student-roster/internal/pkg/strutil"

	"github.com/spf13/cobra"
)

// ClassroomCommandHandler encapsulates the classroom commands.
type ClassroomCommandHandler struct {
	logger logger.Logger
}

// NewClassroomCommandHandler initializes a ClassroomCommandHandler with the CLI logger.
func NewClassroomCommandHandler() (*ClassroomCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ClassroomCommandHandler{logger: loggerInstance}, nil
}

// CreateClassroomCmd stores a classroom and prints its id
func (commandHandler *ClassroomCommandHandler) CreateClassroomCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	parentID, err := cmd.Flags().GetInt("parent-id")
	if err != nil {
		return fmt.Errorf("invalid parent-id flag: %w", err)
	}

	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	classroom := &roster.Classroom{Name: strutil.PtrOrNil(name)}
	if parentID > 0 {
		classroom.ParentID = &parentID
	}

	created, err := services.classroom.Create(cmd.Context(), classroom)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", created.ID)
	return err
}

// ListClassroomsCmd prints the classroom options
func (commandHandler *ClassroomCommandHandler) ListClassroomsCmd(cmd *cobra.Command, _ []string) error {
	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	options, err := services.classroom.Options(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, option := range options {
		fmt.Fprintf(w, "%d\t%s\n", option.ID, option.Name)
	}
	return w.Flush()
}

// InitClassroomCommands registers the classroom command group.
func InitClassroomCommands(rootCmd *cobra.Command) error {
	handler, err := NewClassroomCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create classroom command handler: %w", err)
	}

	var classroomCmd = &cobra.Command{
		Use:   "classroom",
		Short: "Manage classrooms",
	}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a classroom",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateClassroomCmd,
	}
	createCmd.Flags().String("name", "", "Classroom name")
	createCmd.Flags().Int("parent-id", 0, "Optional parent classroom id")
	classroomCmd.AddCommand(createCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List classrooms",
		Args:  cobra.NoArgs,
		RunE:  handler.ListClassroomsCmd,
	}
	classroomCmd.AddCommand(listCmd)

	rootCmd.AddCommand(classroomCmd)
	return nil
}
