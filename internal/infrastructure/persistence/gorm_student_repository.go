package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStudentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStudentRepository creates a new GORM-based StudentRepository implementation
func NewGormStudentRepository(db *gorm.DB, logger logger.Logger) (roster.StudentRepository, error) {
	return &gormStudentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStudentRepository) Search(ctx context.Context, filter *roster.SearchFilter) ([]*roster.Student, error) {
	var modelList []*models.StudentModel

	dbQuery := r.db.WithContext(ctx).
		Model(&models.StudentModel{}).
		Select("students.*").
		Joins("LEFT JOIN classrooms ON classrooms.id = students.classroom_id").
		Preload("Classroom")

	if !filter.IsEmpty() {
		condition, args := buildSearchCondition(filter)
		dbQuery = dbQuery.Where(condition, args...)
	}

	if err := dbQuery.Order("students.id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}

	domainList := make([]*roster.Student, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormStudentRepository) GetByID(ctx context.Context, studentID int) (*roster.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).Preload("Classroom").Where("id = ?", studentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student with ID %d: %w", studentID, roster.ErrStudentNotFound)
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStudentRepository) Exists(ctx context.Context, studentID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StudentModel{}).Where("id = ?", studentID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormStudentRepository) Create(ctx context.Context, student *roster.Student) error {
	if err := student.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StudentModel{}
	model.FromDomain(student)
	model.ID = 0
	model.Version = roster.InitialVersion

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureClassroomExists(tx, student.ClassroomID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	student.ID = model.ID
	student.Version = model.Version

	r.logger.Info("created student", "student_id", student.ID, "classroom_id", student.ClassroomID)
	return nil
}

func (r *gormStudentRepository) Update(ctx context.Context, student *roster.Student) error {
	if err := student.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureClassroomExists(tx, student.ClassroomID); err != nil {
			return err
		}

		result := tx.Model(&models.StudentModel{}).
			Where("id = ? AND version = ?", student.ID, student.Version).
			Updates(map[string]interface{}{
				"name":         student.Name,
				"gpa":          student.GPA,
				"classroom_id": student.ClassroomID,
				"version":      gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return roster.ErrConcurrencyConflict
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update student %d: %w", student.ID, err)
	}

	student.Version++

	r.logger.Info("updated student", "student_id", student.ID, "version", student.Version)
	return nil
}

func (r *gormStudentRepository) DeleteByID(ctx context.Context, studentID int) error {
	result := r.db.WithContext(ctx).Where("id = ?", studentID).Delete(&models.StudentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete student: %w", result.Error)
	}

	r.logger.Info("deleted student", "student_id", studentID, "rows", result.RowsAffected)
	return nil
}

// ensureClassroomExists enforces the student -> classroom reference
func ensureClassroomExists(tx *gorm.DB, classroomID int) error {
	var count int64
	if err := tx.Model(&models.ClassroomModel{}).Where("id = ?", classroomID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check classroom: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("classroom with ID %d: %w", classroomID, roster.ErrClassroomNotFound)
	}
	return nil
}
