package repository

import (
	"tripweave/internal/model"

	"gorm.io/gorm"
)

// Repository persists EvaluationRun audit records.
type Repository interface {
	Create(run *model.EvaluationRun) error
	FindByID(id string) (*model.EvaluationRun, error)
	FindAll(limit int) ([]model.EvaluationRun, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(run *model.EvaluationRun) error {
	return r.db.Create(run).Error
}

func (r *repository) FindByID(id string) (*model.EvaluationRun, error) {
	var run model.EvaluationRun
	if err := r.db.First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindAll(limit int) ([]model.EvaluationRun, error) {
	var runs []model.EvaluationRun
	err := r.db.Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}
