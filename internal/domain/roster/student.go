package roster

import "github.com/MGTheTrain/student-roster/internal/pkg/strutil"

// InitialVersion is the concurrency token of a newly created student.
const InitialVersion = 1

// Student entity
type Student struct {
	ID          int     `validate:"gte=0"`
	Name        *string `validate:"omitempty,max=255"`
	GPA         float64
	ClassroomID int `validate:"required,gt=0"`
	// Classroom is resolved on reads; writes only look at ClassroomID.
	Classroom *Classroom `validate:"-"`
	// Version is the optimistic concurrency token, compared on update.
	Version int `validate:"gte=0"`
}

// Validate for validating Student struct
func (s *Student) Validate() error {
	return validateStruct(s)
}

// DisplayName returns the student name, or "" when unset.
func (s *Student) DisplayName() string {
	return strutil.ValueOrEmpty(s.Name)
}

// ClassroomName returns the owning classroom's name, or "" when the
// classroom was not loaded or has no name.
func (s *Student) ClassroomName() string {
	return s.Classroom.DisplayName()
}
