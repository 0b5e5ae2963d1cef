package models

import "github.com/MGTheTrain/student-roster/internal/domain/roster"

// ClassroomModel is the GORM database model for classrooms
type ClassroomModel struct {
	ID       int              `gorm:"primaryKey;autoIncrement"`
	Name     *string          `gorm:"type:varchar(255)"`
	ParentID *int             `gorm:"index"`
	Children []ClassroomModel `gorm:"foreignKey:ParentID"`
}

// TableName specifies the table name for GORM
func (ClassroomModel) TableName() string {
	return "classrooms"
}

// ToDomain converts GORM model to domain entity, including loaded children
func (m *ClassroomModel) ToDomain() *roster.Classroom {
	classroom := &roster.Classroom{
		ID:       m.ID,
		Name:     m.Name,
		ParentID: m.ParentID,
	}
	for i := range m.Children {
		classroom.Children = append(classroom.Children, m.Children[i].ToDomain())
	}
	return classroom
}

// FromDomain converts domain entity to GORM model. Children are not copied;
// they are owned by their own rows.
func (m *ClassroomModel) FromDomain(c *roster.Classroom) {
	m.ID = c.ID
	m.Name = c.Name
	m.ParentID = c.ParentID
}
