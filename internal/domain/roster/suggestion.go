package roster

// Suggestion is an autocomplete entry. Label and Value both carry the
// student name so a type-ahead widget can use them directly.
type Suggestion struct {
	Label         string
	Value         string
	ClassroomName string
	GPA           float64
}

// NewSuggestion projects a student onto a Suggestion.
func NewSuggestion(s *Student) *Suggestion {
	name := s.DisplayName()
	return &Suggestion{
		Label:         name,
		Value:         name,
		ClassroomName: s.ClassroomName(),
		GPA:           s.GPA,
	}
}
