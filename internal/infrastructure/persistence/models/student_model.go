package models

import "github.com/MGTheTrain/student-roster/internal/domain/roster"

// StudentModel is the GORM database model for students
type StudentModel struct {
	ID          int            `gorm:"primaryKey;autoIncrement"`
	Name        *string        `gorm:"type:varchar(255);index"`
	GPA         float64        `gorm:"column:gpa;not null"`
	ClassroomID int            `gorm:"not null;index"`
	Classroom   ClassroomModel `gorm:"foreignKey:ClassroomID;constraint:OnDelete:RESTRICT"`
	Version     int            `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}

// ToDomain converts GORM model to domain entity. Classroom is set only when
// the association was loaded.
func (m *StudentModel) ToDomain() *roster.Student {
	student := &roster.Student{
		ID:          m.ID,
		Name:        m.Name,
		GPA:         m.GPA,
		ClassroomID: m.ClassroomID,
		Version:     m.Version,
	}
	if m.Classroom.ID != 0 {
		student.Classroom = m.Classroom.ToDomain()
	}
	return student
}

// FromDomain converts domain entity to GORM model
func (m *StudentModel) FromDomain(s *roster.Student) {
	m.ID = s.ID
	m.Name = s.Name
	m.GPA = s.GPA
	m.ClassroomID = s.ClassroomID
	m.Version = s.Version
}
