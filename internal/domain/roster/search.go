package roster

import (
	"strings"

	"github.com/MGTheTrain/student-roster/internal/pkg/strutil"
)

// SearchField names the student attribute a Criterion inspects.
type SearchField string

// Searchable fields
const (
	FieldStudentName   SearchField = "student_name"
	FieldClassroomName SearchField = "classroom_name"
	FieldGPA           SearchField = "gpa"
)

// Criterion is one sub-predicate of a SearchFilter. Text fields match when
// they contain Contains; FieldGPA matches when the GPA equals Equals exactly.
type Criterion struct {
	Field    SearchField
	Contains string
	Equals   float64
}

// Matches evaluates the criterion against a single student.
func (c Criterion) Matches(s *Student) bool {
	switch c.Field {
	case FieldStudentName:
		return s.Name != nil && strings.Contains(*s.Name, c.Contains)
	case FieldClassroomName:
		return s.Classroom != nil && s.Classroom.Name != nil && strings.Contains(*s.Classroom.Name, c.Contains)
	case FieldGPA:
		return s.GPA == c.Equals
	default:
		return false
	}
}

// SearchFilter is the predicate built from a free-text search term.
// A student matches when any of its criteria match; an empty filter
// matches every student.
type SearchFilter struct {
	term     string
	criteria []Criterion
}

// NewSearchFilter builds the filter for term. The name and classroom
// substring criteria are always present for a non-empty term; the GPA
// criterion is added only when term parses as a decimal number.
func NewSearchFilter(term string) *SearchFilter {
	f := &SearchFilter{term: term}
	if term == "" {
		return f
	}

	f.criteria = append(f.criteria,
		Criterion{Field: FieldStudentName, Contains: term},
		Criterion{Field: FieldClassroomName, Contains: term},
	)
	if gpa, ok := strutil.ParseDecimal(term); ok {
		f.criteria = append(f.criteria, Criterion{Field: FieldGPA, Equals: gpa})
	}
	return f
}

// Term returns the raw search term.
func (f *SearchFilter) Term() string {
	return f.term
}

// IsEmpty reports whether the filter matches everything.
func (f *SearchFilter) IsEmpty() bool {
	return len(f.criteria) == 0
}

// Criteria returns the OR-combined sub-predicates. The slice is a copy.
func (f *SearchFilter) Criteria() []Criterion {
	out := make([]Criterion, len(f.criteria))
	copy(out, f.criteria)
	return out
}

// GPA returns the parsed numeric term, if any.
func (f *SearchFilter) GPA() (float64, bool) {
	for _, c := range f.criteria {
		if c.Field == FieldGPA {
			return c.Equals, true
		}
	}
	return 0, false
}

// Matches evaluates the filter in memory.
func (f *SearchFilter) Matches(s *Student) bool {
	if f.IsEmpty() {
		return true
	}
	for _, c := range f.criteria {
		if c.Matches(s) {
			return true
		}
	}
	return false
}

// Apply returns the students that match, preserving order. It is the
// in-memory reference the SQL translation of the filter is checked against.
func (f *SearchFilter) Apply(students []*Student) []*Student {
	matched := make([]*Student, 0, len(students))
	for _, s := range students {
		if f.Matches(s) {
			matched = append(matched, s)
		}
	}
	return matched
}
