package clientprovider

import (
	"github.com/pkg/errors"
	"wfp-backend/db"
	store "wfp-backend/lib/dicts/client/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	clientapimodels "wfp-backend/models/api/client"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(data clientapimodels.ClientData) (id string, err error)
	Update(id string, data clientapimodels.ClientData) error
	Delete(id string) error
	Get(id string) (item clientapimodels.ClientView, err error)
	Find(request clientapimodels.ClientFind) (list []clientapimodels.ClientView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(data clientapimodels.ClientData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Client{
		Name:         data.Name,
		Industry:     data.Industry,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		IsActive:     data.IsActive,
		IsInternal:   data.IsInternal,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data clientapimodels.ClientData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("client not found")
	}
	updMap := map[string]interface{}{
		"name":          data.Name,
		"industry":      data.Industry,
		"contact_name":  data.ContactName,
		"contact_email": data.ContactEmail,
		"is_active":     data.IsActive,
		"is_internal":   data.IsInternal,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (clientapimodels.ClientView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	if rec == nil {
		return clientapimodels.ClientView{}, errors.New("client not found")
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) Find(request clientapimodels.ClientFind) ([]clientapimodels.ClientView, error) {
	recList, err := i.store.List(request.Name, request.OnlyActive)
	if err != nil {
		return nil, err
	}
	result := make([]clientapimodels.ClientView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, clientapimodels.ClientConvert(rec))
	}
	return result, nil
}
