package v1

import (
	"fmt"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain status message
type InfoResponse struct {
	Message string `json:"message"`
}

// StudentRequest is the create/edit payload of a student
type StudentRequest struct {
	ID          int     `json:"id" validate:"gte=0"`
	Name        *string `json:"name" validate:"omitempty,max=255"`
	GPA         float64 `json:"gpa"`
	ClassroomID int     `json:"classroomId" validate:"required,gt=0"`
	Version     int     `json:"version" validate:"gte=0"`
}

// Validate for validating StudentRequest struct
func (r *StudentRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, fmt.Sprintf("Field: %s, Tag: %s", err.Field(), err.Tag()))
		}
		return fmt.Errorf("validation failed: %v", validationErrors)
	}
	return nil
}

// ToDomain converts the request into a student entity
func (r *StudentRequest) ToDomain() *roster.Student {
	return &roster.Student{
		ID:          r.ID,
		Name:        r.Name,
		GPA:         r.GPA,
		ClassroomID: r.ClassroomID,
		Version:     r.Version,
	}
}

// StudentResponse is the JSON view of a student
type StudentResponse struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	GPA           float64 `json:"gpa"`
	ClassroomID   int     `json:"classroomId"`
	ClassroomName string  `json:"classroomName"`
	Version       int     `json:"version"`
}

// NewStudentResponse projects a student onto its response
func NewStudentResponse(s *roster.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID,
		Name:          s.Name,
		GPA:           s.GPA,
		ClassroomID:   s.ClassroomID,
		ClassroomName: s.ClassroomName(),
		Version:       s.Version,
	}
}

// SuggestionResponse is one autocomplete entry
type SuggestionResponse struct {
	Label         string  `json:"label"`
	Value         string  `json:"value"`
	ClassroomName string  `json:"classroomName"`
	GPA           float64 `json:"gpa"`
}

// ClassroomRequest is the create payload of a classroom
type ClassroomRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	ParentID *int    `json:"parentId" validate:"omitempty,gt=0"`
}

// Validate for validating ClassroomRequest struct
func (r *ClassroomRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, fmt.Sprintf("Field: %s, Tag: %s", err.Field(), err.Tag()))
		}
		return fmt.Errorf("validation failed: %v", validationErrors)
	}
	return nil
}

// ClassroomResponse is the JSON view of a classroom and its children
type ClassroomResponse struct {
	ID       int                 `json:"id"`
	Name     *string             `json:"name"`
	ParentID *int                `json:"parentId,omitempty"`
	Children []ClassroomResponse `json:"children"`
}

// NewClassroomResponse projects a classroom onto its response
func NewClassroomResponse(c *roster.Classroom) ClassroomResponse {
	response := ClassroomResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		Children: []ClassroomResponse{},
	}
	for _, child := range c.Children {
		response.Children = append(response.Children, NewClassroomResponse(child))
	}
	return response
}

// ClassroomOptionResponse is a select option for the classroom of a student form
type ClassroomOptionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ImportResponse summarizes a roster upload
type ImportResponse struct {
	Imported    int   `json:"imported"`
	SkippedRows []int `json:"skippedRows"`
}
