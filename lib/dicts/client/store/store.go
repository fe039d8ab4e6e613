package clientstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Client) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (*dbmodels.Client, error)
	List(name string, onlyActive bool) ([]dbmodels.Client, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Client) (string, error) {
	unique, err := i.isUnique(rec.ID, rec)
	if err != nil {
		return "", err
	}
	if !unique {
		return "", errors.New("a client with this name already exists")
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to create the client")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Client{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to update the client")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Client{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to delete the client")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(name string, onlyActive bool) ([]dbmodels.Client, error) {
	var result []dbmodels.Client
	tx := i.db.Model(dbmodels.Client{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	if onlyActive {
		tx.Where("is_active = true")
	}
	err := tx.Order("name").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}
	return result, nil
}

func (i impl) isUnique(selfID string, item dbmodels.Client) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Client{})
	tx.Where("LOWER(name) = ?", strings.ToLower(item.Name))
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check client uniqueness")
	}
	return rowCount == 0, nil
}
