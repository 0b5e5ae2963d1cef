package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/MGTheTrain/student-roster/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// suggestionOutput mirrors the autocomplete JSON of the REST API
type suggestionOutput struct {
	Label         string  `json:"label"`
	Value         string  `json:"value"`
	ClassroomName string  `json:"classroomName"`
	GPA           float64 `json:"gpa"`
}

// StudentCommandHandler encapsulates the student commands.
type StudentCommandHandler struct {
	logger logger.Logger
}

// NewStudentCommandHandler initializes a StudentCommandHandler with the CLI logger.
func NewStudentCommandHandler() (*StudentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &StudentCommandHandler{logger: loggerInstance}, nil
}

// SearchStudentsCmd prints the students matching --term as a table
func (commandHandler *StudentCommandHandler) SearchStudentsCmd(cmd *cobra.Command, _ []string) error {
	term, err := cmd.Flags().GetString("term")
	if err != nil {
		return fmt.Errorf("invalid term flag: %w", err)
	}

	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	students, err := services.students.Search(cmd.Context(), term)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGPA\tCLASSROOM")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\n", s.ID, s.DisplayName(), s.GPA, s.ClassroomName())
	}
	return w.Flush()
}

// AutocompleteCmd prints the suggestions for --term as JSON
func (commandHandler *StudentCommandHandler) AutocompleteCmd(cmd *cobra.Command, _ []string) error {
	term, err := cmd.Flags().GetString("term")
	if err != nil {
		return fmt.Errorf("invalid term flag: %w", err)
	}

	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	suggestions, err := services.students.Autocomplete(cmd.Context(), term)
	if err != nil {
		return err
	}

	output := make([]suggestionOutput, 0, len(suggestions))
	for _, s := range suggestions {
		output = append(output, suggestionOutput{
			Label:         s.Label,
			Value:         s.Value,
			ClassroomName: s.ClassroomName,
			GPA:           s.GPA,
		})
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(output)
}

// ImportStudentsCmd reads an xlsx roster into a classroom
func (commandHandler *StudentCommandHandler) ImportStudentsCmd(cmd *cobra.Command, _ []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}
	classroomID, err := cmd.Flags().GetInt("classroom-id")
	if err != nil {
		return fmt.Errorf("invalid classroom-id flag: %w", err)
	}

	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer file.Close()

	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	result, err := services.transfer.Import(cmd.Context(), file, classroomID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d students, skipped rows %v\n", result.Imported, result.SkippedRows)
	return err
}

// ExportStudentsCmd writes the students matching --term to an xlsx file
func (commandHandler *StudentCommandHandler) ExportStudentsCmd(cmd *cobra.Command, _ []string) error {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}
	term, err := cmd.Flags().GetString("term")
	if err != nil {
		return fmt.Errorf("invalid term flag: %w", err)
	}

	services, err := openServices(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer services.close()

	file, err := os.OpenFile(filepath.Clean(filePath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create roster file: %w", err)
	}

	count, err := services.transfer.Export(cmd.Context(), file, term)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close roster file: %w", closeErr)
	}
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Roster exported", "file", filePath, "students", count)
	return nil
}

// InitStudentCommands registers the student command group.
func InitStudentCommands(rootCmd *cobra.Command) error {
	handler, err := NewStudentCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create student command handler: %w", err)
	}

	var studentCmd = &cobra.Command{
		Use:   "student",
		Short: "Search, import and export students",
	}

	var searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Search students by name, classroom or exact GPA",
		Args:  cobra.NoArgs,
		RunE:  handler.SearchStudentsCmd,
	}
	searchCmd.Flags().String("term", "", "Search term; empty lists every student")
	studentCmd.AddCommand(searchCmd)

	var autocompleteCmd = &cobra.Command{
		Use:   "autocomplete",
		Short: "Print autocomplete suggestions as JSON",
		Args:  cobra.NoArgs,
		RunE:  handler.AutocompleteCmd,
	}
	autocompleteCmd.Flags().String("term", "", "Search term")
	studentCmd.AddCommand(autocompleteCmd)

	var importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import students from an xlsx roster",
		Args:  cobra.NoArgs,
		RunE:  handler.ImportStudentsCmd,
	}
	importCmd.Flags().String("file", "", "Path to the xlsx roster")
	importCmd.Flags().Int("classroom-id", 0, "Classroom that receives the students")
	_ = importCmd.MarkFlagRequired("file")
	_ = importCmd.MarkFlagRequired("classroom-id")
	studentCmd.AddCommand(importCmd)

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export matching students to an xlsx roster",
		Args:  cobra.NoArgs,
		RunE:  handler.ExportStudentsCmd,
	}
	exportCmd.Flags().String("file", "", "Path of the xlsx file to write")
	exportCmd.Flags().String("term", "", "Search term; empty exports every student")
	_ = exportCmd.MarkFlagRequired("file")
	studentCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(studentCmd)
	return nil
}
