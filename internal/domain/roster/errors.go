package roster

import "errors"

var (
	// ErrValidation marks an entity that failed its presence checks.
	ErrValidation = errors.New("validation failed")
	// ErrStudentNotFound is returned when no student has the requested ID.
	ErrStudentNotFound = errors.New("student not found")
	// ErrClassroomNotFound is returned when no classroom has the requested ID.
	ErrClassroomNotFound = errors.New("classroom not found")
	// ErrConcurrencyConflict is returned when an update carries a stale
	// version of a student that still exists.
	ErrConcurrencyConflict = errors.New("student was modified concurrently")
	// ErrClassroomInUse is returned when deleting a classroom that still owns students.
	ErrClassroomInUse = errors.New("classroom still has students")
)
