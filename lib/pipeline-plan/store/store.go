package planstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PipelinePlan) (id string, err error)
	Delete(id string) error
	GetByID(id string) (*dbmodels.PipelinePlan, error)
	Find(pipelineID string, page, limit int) ([]dbmodels.PipelinePlan, int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PipelinePlan) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to save the plan")
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&dbmodels.PipelinePlanRow{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbmodels.PipelinePlan{}).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete the plan")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.PipelinePlan, error) {
	rec := dbmodels.PipelinePlan{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_special, stage_order")
		}).
		Preload("Pipeline").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Find(pipelineID string, page, limit int) ([]dbmodels.PipelinePlan, int64, error) {
	var result []dbmodels.PipelinePlan
	tx := i.db.Model(dbmodels.PipelinePlan{})
	if pipelineID != "" {
		tx.Where("pipeline_id = ?", pipelineID)
	}
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count plans")
	}
	err := tx.
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_special, stage_order")
		}).
		Preload("Pipeline").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list plans")
	}
	return result, rowCount, nil
}
