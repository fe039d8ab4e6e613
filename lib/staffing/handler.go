package staffingprovider

import (
	"github.com/pkg/errors"
	"wfp-backend/db"
	store "wfp-backend/lib/staffing/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	"wfp-backend/models"
	staffingapimodels "wfp-backend/models/api/staffing"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(data staffingapimodels.StaffingPlanData) (id string, err error)
	Update(id string, data staffingapimodels.StaffingPlanData) error
	Delete(id string) error
	Get(id string) (item staffingapimodels.StaffingPlanView, err error)
	Find(request staffingapimodels.StaffingPlanFind) (list []staffingapimodels.StaffingPlanView, rowCount int64, err error)
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

func (i impl) Create(data staffingapimodels.StaffingPlanData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	status := data.Status
	if status == "" {
		status = models.StaffingPlanOpen
	}
	rec := dbmodels.StaffingPlan{
		ClientID:   data.ClientID,
		RoleTitle:  data.RoleTitle,
		Headcount:  data.Headcount,
		NeedByDate: data.NeedByDate,
		Priority:   data.Priority,
		Status:     status,
		Notes:      data.Notes,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data staffingapimodels.StaffingPlanData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("staffing plan not found")
	}
	updMap := map[string]interface{}{
		"client_id":    data.ClientID,
		"role_title":   data.RoleTitle,
		"headcount":    data.Headcount,
		"need_by_date": data.NeedByDate,
		"priority":     data.Priority,
		"status":       data.Status,
		"notes":        data.Notes,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (staffingapimodels.StaffingPlanView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return staffingapimodels.StaffingPlanView{}, err
	}
	if rec == nil {
		return staffingapimodels.StaffingPlanView{}, errors.New("staffing plan not found")
	}
	return staffingapimodels.StaffingPlanConvert(*rec), nil
}

func (i impl) Find(request staffingapimodels.StaffingPlanFind) ([]staffingapimodels.StaffingPlanView, int64, error) {
	page, limit := request.GetPage()
	recList, rowCount, err := i.store.Find(request.ClientID, request.RoleTitle, request.Status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]staffingapimodels.StaffingPlanView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, staffingapimodels.StaffingPlanConvert(rec))
	}
	return result, rowCount, nil
}
