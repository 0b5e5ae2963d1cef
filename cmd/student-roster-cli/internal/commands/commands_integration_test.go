//go:build integration
// +build integration

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/student-roster/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// runCLI executes args against a fresh command tree and returns stdout
func runCLI(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()

	rootCmd := newTestRootCmd(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db-type", "sqlite", "--db-dsn", dsn}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()

	rootCmd := &cobra.Command{Use: "student-roster-cli", SilenceUsage: true}
	AddDatabaseFlags(rootCmd)
	require.NoError(t, InitMigrateCommands(rootCmd))
	require.NoError(t, InitClassroomCommands(rootCmd))
	require.NoError(t, InitStudentCommands(rootCmd))
	return rootCmd
}

func writeRoster(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestCLI_RosterWorkflow(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "roster.db")

	_, err := runCLI(t, dsn, "migrate")
	require.NoError(t, err)

	out, err := runCLI(t, dsn, "classroom", "create", "--name", "A1")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = runCLI(t, dsn, "classroom", "create", "--name", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = runCLI(t, dsn, "classroom", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "B2")

	alicePath := filepath.Join(dir, "a1.xlsx")
	writeRoster(t, alicePath, [][]interface{}{{"Name", "GPA"}, {"Alice", 3.5}, {"", 1.0}})
	out, err = runCLI(t, dsn, "student", "import", "--file", alicePath, "--classroom-id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 students")
	assert.Contains(t, out, "[3]")

	bobPath := filepath.Join(dir, "b2.xlsx")
	writeRoster(t, bobPath, [][]interface{}{{"Name", "GPA"}, {"Bob", 3.0}})
	_, err = runCLI(t, dsn, "student", "import", "--file", bobPath, "--classroom-id", "2")
	require.NoError(t, err)

	out, err = runCLI(t, dsn, "student", "search", "--term", "3.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.NotContains(t, out, "Bob")

	out, err = runCLI(t, dsn, "student", "autocomplete", "--term", "B2")
	require.NoError(t, err)
	var suggestions []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lastLine(out)), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Bob", suggestions[0]["label"])
	assert.Equal(t, "B2", suggestions[0]["classroomName"])

	exportPath := filepath.Join(dir, "export.xlsx")
	_, err = runCLI(t, dsn, "student", "export", "--file", exportPath)
	require.NoError(t, err)

	f, err := excelize.OpenFile(exportPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestCLI_ImportMissingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "roster.db")

	_, err := runCLI(t, dsn, "student", "import", "--file", filepath.Join(os.TempDir(), "does-not-exist.xlsx"), "--classroom-id", "1")
	assert.Error(t, err)
}

func TestCLI_ImportInvalidWorkbook(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "roster.db")
	path := testutil.CreateTestFile(t, "roster.xlsx", []byte("not a workbook"))

	_, err := runCLI(t, dsn, "classroom", "create", "--name", "A1")
	require.NoError(t, err)

	_, err = runCLI(t, dsn, "student", "import", "--file", path, "--classroom-id", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster")
}

func TestCLI_ImportRequiresFlags(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "roster.db")

	_, err := runCLI(t, dsn, "student", "import")
	assert.Error(t, err)
}

// lastLine skips log lines that precede the command output
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return lines[len(lines)-1]
}
