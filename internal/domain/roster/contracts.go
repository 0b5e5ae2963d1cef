package roster

import (
	"context"
	"io"
)

// StudentRepository defines the persistence operations for students.
type StudentRepository interface {
	// Search lists students (with their classroom) matching filter, in ID order.
	Search(ctx context.Context, filter *SearchFilter) ([]*Student, error)
	// GetByID retrieves a student with its classroom or ErrStudentNotFound.
	GetByID(ctx context.Context, studentID int) (*Student, error)
	// Exists reports whether a student with studentID is stored.
	Exists(ctx context.Context, studentID int) (bool, error)
	// Create stores a new student, assigning ID and the initial version.
	// ErrClassroomNotFound is returned for a dangling classroom reference.
	Create(ctx context.Context, student *Student) error
	// Update stores student if its Version matches the stored one and bumps it.
	// ErrConcurrencyConflict is returned when no row had that ID and version.
	Update(ctx context.Context, student *Student) error
	// DeleteByID removes a student. Unknown IDs are ignored.
	DeleteByID(ctx context.Context, studentID int) error
}

// ClassroomRepository defines the persistence operations for classrooms.
type ClassroomRepository interface {
	List(ctx context.Context) ([]*Classroom, error)
	// GetByID retrieves a classroom with its children or ErrClassroomNotFound.
	GetByID(ctx context.Context, classroomID int) (*Classroom, error)
	Create(ctx context.Context, classroom *Classroom) error
	DeleteByID(ctx context.Context, classroomID int) error
	CountStudents(ctx context.Context, classroomID int) (int64, error)
}

// StudentService defines the student operations offered to the API and CLI.
type StudentService interface {
	// Search returns every student matching term; an empty term returns all students.
	Search(ctx context.Context, term string) ([]*Student, error)

	// Autocomplete returns suggestions for every student matching term,
	// using the same predicate as Search.
	Autocomplete(ctx context.Context, term string) ([]*Suggestion, error)

	// GetByID retrieves a student and its classroom.
	GetByID(ctx context.Context, studentID int) (*Student, error)

	// Create validates and stores a new student.
	Create(ctx context.Context, student *Student) (*Student, error)

	// Update replaces the student stored under studentID. A student whose ID
	// differs from studentID is reported as ErrStudentNotFound.
	Update(ctx context.Context, studentID int, student *Student) (*Student, error)

	// DeleteByID removes a student; deleting an unknown ID is not an error.
	DeleteByID(ctx context.Context, studentID int) error
}

// ClassroomService defines the classroom operations offered to the API and CLI.
type ClassroomService interface {
	// Options lists the classrooms as form select options.
	Options(ctx context.Context) ([]*ClassroomOption, error)
	List(ctx context.Context) ([]*Classroom, error)
	GetByID(ctx context.Context, classroomID int) (*Classroom, error)
	Create(ctx context.Context, classroom *Classroom) (*Classroom, error)
	// DeleteByID removes an empty classroom; ErrClassroomInUse otherwise.
	DeleteByID(ctx context.Context, classroomID int) error
}

// StudentRecord is one row of an imported roster.
type StudentRecord struct {
	// Row is the 1-based spreadsheet row the record came from.
	Row  int
	Name string
	GPA  float64
}

// RosterCodec reads and writes roster spreadsheets.
type RosterCodec interface {
	// Decode reads student rows. Rows without a name are skipped and reported.
	Decode(r io.Reader) (records []*StudentRecord, skipped []int, err error)
	// Encode writes one row per student after a header row.
	Encode(w io.Writer, students []*Student) error
}

// ImportResult summarizes a roster import.
type ImportResult struct {
	Imported    int
	SkippedRows []int
}

// RosterTransferService imports and exports rosters as spreadsheets.
type RosterTransferService interface {
	Import(ctx context.Context, r io.Reader, classroomID int) (*ImportResult, error)
	// Export writes the students matching term and returns how many were written.
	Export(ctx context.Context, w io.Writer, term string) (int, error)
}
