package persistence

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
)

const likeEscape = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns term into a LIKE pattern matching it literally anywhere
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// buildSearchCondition translates the OR-combined filter criteria into a
// parenthesised SQL condition over the students/classrooms join.
func buildSearchCondition(filter *roster.SearchFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	for _, c := range filter.Criteria() {
		switch c.Field {
		case roster.FieldStudentName:
			clauses = append(clauses, fmt.Sprintf("students.name LIKE ? ESCAPE '%s'", likeEscape))
			args = append(args, containsPattern(c.Contains))
		case roster.FieldClassroomName:
			clauses = append(clauses, fmt.Sprintf("classrooms.name LIKE ? ESCAPE '%s'", likeEscape))
			args = append(args, containsPattern(c.Contains))
		case roster.FieldGPA:
			clauses = append(clauses, "students.gpa = ?")
			args = append(args, c.Equals)
		}
	}

	return "(" + strings.Join(clauses, " OR ") + ")", args
}
