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

type gormClassroomRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormClassroomRepository creates a new GORM-based ClassroomRepository implementation
func NewGormClassroomRepository(db *gorm.DB, logger logger.Logger) (roster.ClassroomRepository, error) {
	return &gormClassroomRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormClassroomRepository) List(ctx context.Context) ([]*roster.Classroom, error) {
	var modelList []*models.ClassroomModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch classrooms: %w", err)
	}

	domainList := make([]*roster.Classroom, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormClassroomRepository) GetByID(ctx context.Context, classroomID int) (*roster.Classroom, error) {
	var model models.ClassroomModel
	err := r.db.WithContext(ctx).
		Preload("Children", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", classroomID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("classroom with ID %d: %w", classroomID, roster.ErrClassroomNotFound)
		}
		return nil, fmt.Errorf("failed to fetch classroom: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormClassroomRepository) Create(ctx context.Context, classroom *roster.Classroom) error {
	if err := classroom.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClassroomModel{}
	model.FromDomain(classroom)
	model.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if classroom.ParentID != nil {
			if err := ensureClassroomExists(tx, *classroom.ParentID); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create classroom: %w", err)
	}

	classroom.ID = model.ID

	r.logger.Info("created classroom", "classroom_id", classroom.ID)
	return nil
}

// DeleteByID detaches child classrooms before removing the row
func (r *gormClassroomRepository) DeleteByID(ctx context.Context, classroomID int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ClassroomModel{}).
			Where("parent_id = ?", classroomID).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", classroomID).Delete(&models.ClassroomModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete classroom: %w", err)
	}

	r.logger.Info("deleted classroom", "classroom_id", classroomID)
	return nil
}

func (r *gormClassroomRepository) CountStudents(ctx context.Context, classroomID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StudentModel{}).Where("classroom_id = ?", classroomID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
