package candidatestore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"wfp-backend/models"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.Candidate, error)
	Find(pipelineID, name string, status models.CandidateStatus, page, limit int) ([]dbmodels.Candidate, int64, error)
	CountByStatus(pipelineID string) (map[string]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (string, error) {
	if rec.StatusDate.IsZero() {
		rec.StatusDate = time.Now()
	}
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to create the candidate")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update the candidate")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to delete the candidate")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Find(pipelineID, name string, status models.CandidateStatus, page, limit int) ([]dbmodels.Candidate, int64, error) {
	var result []dbmodels.Candidate
	tx := i.db.Model(dbmodels.Candidate{})
	if pipelineID != "" {
		tx.Where("pipeline_id = ?", pipelineID)
	}
	if status != "" {
		tx.Where("status = ?", status)
	}
	if name != "" {
		pattern := "%" + strings.ToLower(name) + "%"
		tx.Where("LOWER(first_name) like ? OR LOWER(last_name) like ?", pattern, pattern)
	}
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count candidates")
	}
	err := tx.
		Order("status_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list candidates")
	}
	return result, rowCount, nil
}

func (i impl) CountByStatus(pipelineID string) (map[string]int64, error) {
	var rows []dbmodels.StatusCount
	tx := i.db.
		Model(dbmodels.Candidate{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if pipelineID != "" {
		tx.Where("pipeline_id = ?", pipelineID)
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count candidates by status")
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
