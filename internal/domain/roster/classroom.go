package roster

import "github.com/MGTheTrain/student-roster/internal/pkg/strutil"

// Classroom entity. Children is the self-referential collection of nested
// classrooms; search never looks at it.
type Classroom struct {
	ID       int     `validate:"gte=0"`
	Name     *string `validate:"omitempty,max=255"`
	ParentID *int    `validate:"omitempty,gt=0"`
	Children []*Classroom
}

// Validate for validating Classroom struct
func (c *Classroom) Validate() error {
	return validateStruct(c)
}

// DisplayName returns the classroom name, or "" when unset.
func (c *Classroom) DisplayName() string {
	if c == nil {
		return ""
	}
	return strutil.ValueOrEmpty(c.Name)
}

// ClassroomOption is a selectable entry for the classroom field of a student form.
type ClassroomOption struct {
	ID   int
	Name string
}
