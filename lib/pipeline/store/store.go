package pipelinestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TalentPipeline) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.TalentPipeline, error)
	FindByName(name string) (*dbmodels.TalentPipeline, error)
	Find(name, clientID string, onlyActive bool, page, limit int) ([]dbmodels.TalentPipeline, int64, error)
	AddStage(rec dbmodels.PipelineStage) (id string, err error)
	UpdateStage(id string, updMap map[string]interface{}) error
	DeleteStage(id string) error
	GetStage(id string) (*dbmodels.PipelineStage, error)
	GetStages(pipelineID string) ([]dbmodels.PipelineStage, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TalentPipeline) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to create the pipeline")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.TalentPipeline{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update the pipeline")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pipeline_id = ?", id).Delete(&dbmodels.PipelineStage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbmodels.TalentPipeline{}).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete the pipeline")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.TalentPipeline, error) {
	rec := dbmodels.TalentPipeline{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_order")
		}).
		Preload("Client").
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

func (i impl) FindByName(name string) (*dbmodels.TalentPipeline, error) {
	var rec dbmodels.TalentPipeline
	err := i.db.
		Where("LOWER(name) = ?", strings.ToLower(name)).
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

func (i impl) Find(name, clientID string, onlyActive bool, page, limit int) ([]dbmodels.TalentPipeline, int64, error) {
	var result []dbmodels.TalentPipeline
	tx := i.db.Model(dbmodels.TalentPipeline{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	if clientID != "" {
		tx.Where("client_id = ?", clientID)
	}
	if onlyActive {
		tx.Where("is_active = true")
	}
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count pipelines")
	}
	err := tx.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_order")
		}).
		Preload("Client").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pipelines")
	}
	return result, rowCount, nil
}

func (i impl) AddStage(rec dbmodels.PipelineStage) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to add the stage")
	}
	return rec.ID, nil
}

func (i impl) UpdateStage(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.PipelineStage{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update the stage")
	}
	return nil
}

func (i impl) DeleteStage(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.PipelineStage{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to delete the stage")
	}
	return nil
}

func (i impl) GetStage(id string) (*dbmodels.PipelineStage, error) {
	rec := dbmodels.PipelineStage{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetStages(pipelineID string) ([]dbmodels.PipelineStage, error) {
	var result []dbmodels.PipelineStage
	err := i.db.
		Where("pipeline_id = ?", pipelineID).
		Order("stage_order").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pipeline stages")
	}
	return result, nil
}
