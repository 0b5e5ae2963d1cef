//go:build unit
// +build unit

package roster

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSearchFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	nonEmptyAlpha := gen.AlphaString().SuchThat(func(s string) bool { return s != "" })

	properties.Property("empty term matches every student", prop.ForAll(
		func(name, classroom string, gpa float64) bool {
			student := &Student{Name: &name, GPA: gpa, Classroom: &Classroom{Name: &classroom}}
			return NewSearchFilter("").Matches(student)
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.Float64(),
	))

	properties.Property("substring of the student name matches", prop.ForAll(
		func(prefix, term, suffix string) bool {
			name := prefix + term + suffix
			student := &Student{Name: &name, GPA: -1}
			return NewSearchFilter(term).Matches(student)
		},
		gen.AlphaString(),
		nonEmptyAlpha,
		gen.AlphaString(),
	))

	properties.Property("substring of the classroom name matches", prop.ForAll(
		func(prefix, term, suffix string) bool {
			classroom := prefix + term + suffix
			student := &Student{GPA: -1, Classroom: &Classroom{Name: &classroom}}
			return NewSearchFilter(term).Matches(student)
		},
		gen.AlphaString(),
		nonEmptyAlpha,
		gen.AlphaString(),
	))

	properties.Property("numeric term matches an equal gpa regardless of names", prop.ForAll(
		func(gpa float64, name, classroom string) bool {
			term := strconv.FormatFloat(gpa, 'f', -1, 64)
			student := &Student{Name: &name, GPA: gpa, Classroom: &Classroom{Name: &classroom}}
			return NewSearchFilter(term).Matches(student)
		},
		gen.Float64Range(0, 4),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("numeric term rejects a different gpa with alphabetic names", prop.ForAll(
		func(gpa float64, name, classroom string) bool {
			term := strconv.FormatFloat(gpa, 'f', -1, 64)
			student := &Student{Name: &name, GPA: gpa + 1, Classroom: &Classroom{Name: &classroom}}
			return !NewSearchFilter(term).Matches(student)
		},
		gen.Float64Range(0, 4),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("suggestions project the matched student", prop.ForAll(
		func(name, classroom string, gpa float64) bool {
			student := &Student{Name: &name, GPA: gpa, Classroom: &Classroom{Name: &classroom}}
			suggestion := NewSuggestion(student)
			return suggestion.Label == name && suggestion.Value == name &&
				suggestion.ClassroomName == classroom && suggestion.GPA == gpa
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Float64Range(0, 4),
	))

	properties.TestingRun(t)
}
