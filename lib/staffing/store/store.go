package staffingstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"wfp-backend/models"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StaffingPlan) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.StaffingPlan, error)
	Find(clientID, roleTitle string, status models.StaffingPlanStatus, page, limit int) ([]dbmodels.StaffingPlan, int64, error)
	DemandByClient() ([]dbmodels.ClientDemand, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffingPlan) (string, error) {
	err := i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to create the staffing plan")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.StaffingPlan{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update the staffing plan")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.StaffingPlan{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to delete the staffing plan")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.StaffingPlan, error) {
	rec := dbmodels.StaffingPlan{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.
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

func (i impl) Find(clientID, roleTitle string, status models.StaffingPlanStatus, page, limit int) ([]dbmodels.StaffingPlan, int64, error) {
	var result []dbmodels.StaffingPlan
	tx := i.db.Model(dbmodels.StaffingPlan{})
	if clientID != "" {
		tx.Where("client_id = ?", clientID)
	}
	if roleTitle != "" {
		tx.Where("LOWER(role_title) like ?", "%"+strings.ToLower(roleTitle)+"%")
	}
	if status != "" {
		tx.Where("status = ?", status)
	}
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count staffing plans")
	}
	err := tx.
		Preload("Client").
		Order("need_by_date").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list staffing plans")
	}
	return result, rowCount, nil
}

func (i impl) DemandByClient() ([]dbmodels.ClientDemand, error) {
	var result []dbmodels.ClientDemand
	err := i.db.
		Model(dbmodels.StaffingPlan{}).
		Select("staffing_plans.client_id, clients.name as client_name, SUM(staffing_plans.headcount) as headcount").
		Joins("LEFT JOIN clients ON clients.id = staffing_plans.client_id").
		Where("staffing_plans.status in ?", []models.StaffingPlanStatus{models.StaffingPlanOpen, models.StaffingPlanCommitted}).
		Group("staffing_plans.client_id, clients.name").
		Scan(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate demand by client")
	}
	return result, nil
}
