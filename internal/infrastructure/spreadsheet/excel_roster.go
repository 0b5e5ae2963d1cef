package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
	"github.com/MGTheTrain/student-roster/internal/pkg/strutil"

	"github.com/xuri/excelize/v2"
)

// RosterSheetName is the sheet written by Encode
const RosterSheetName = "Students"

var rosterHeaders = []string{"ID", "Name", "GPA", "Classroom"}

type excelRosterCodec struct {
	logger logger.Logger
}

// NewExcelRosterCodec creates a RosterCodec backed by excelize.
// Imported workbooks are read from their first sheet. The header row picks
// the "Name" and "GPA" columns; without those headers every row is data,
// column A holds the name and column B the GPA. A header naming only the
// "Name" column leaves the GPA at 0.
func NewExcelRosterCodec(logger logger.Logger) (roster.RosterCodec, error) {
	return &excelRosterCodec{logger: logger}, nil
}

func (c *excelRosterCodec) Decode(r io.Reader) ([]*roster.StudentRecord, []int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.logger.Warn("failed to close excel file", "error", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}
	nameCol, gpaCol, hasHeader := locateColumns(rows[0])
	firstRow := 0
	if hasHeader {
		firstRow = 1
	}

	var records []*roster.StudentRecord
	var skipped []int
	for i := firstRow; i < len(rows); i++ {
		row := rows[i]
		rowNumber := i + 1
		name := cellAt(row, nameCol)
		gpaCell := cellAt(row, gpaCol)

		if name == "" {
			skipped = append(skipped, rowNumber)
			continue
		}

		var gpa float64
		if gpaCell != "" {
			value, ok := strutil.ParseDecimal(gpaCell)
			if !ok {
				c.logger.Warn("skipping roster row with invalid GPA", "row", rowNumber, "gpa", gpaCell)
				skipped = append(skipped, rowNumber)
				continue
			}
			gpa = value
		}

		records = append(records, &roster.StudentRecord{Row: rowNumber, Name: name, GPA: gpa})
	}

	return records, skipped, nil
}

// locateColumns finds the name and GPA columns from the header row.
// A GPA column of -1 means the sheet has none.
func locateColumns(header []string) (nameCol, gpaCol int, hasHeader bool) {
	nameCol, gpaCol = -1, -1
	for i, title := range header {
		switch strings.ToLower(strings.TrimSpace(title)) {
		case "name":
			nameCol = i
		case "gpa":
			gpaCol = i
		}
	}

	switch {
	case nameCol < 0 && gpaCol < 0:
		return 0, 1, false
	case nameCol < 0:
		nameCol = 0
		if gpaCol == 0 {
			nameCol = 1
		}
	}
	return nameCol, gpaCol, true
}

func cellAt(row []string, col int) string {
	if col >= 0 && col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}

func (c *excelRosterCodec) Encode(w io.Writer, students []*roster.Student) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.logger.Warn("failed to close excel file", "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), RosterSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range rosterHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(RosterSheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, s := range students {
		row := i + 2
		values := []interface{}{s.ID, s.DisplayName(), s.GPA, s.ClassroomName()}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(RosterSheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write excel file: %w", err)
	}
	return nil
}
