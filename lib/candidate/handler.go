package candidateprovider

import (
	"time"

	"github.com/pkg/errors"
	"wfp-backend/db"
	store "wfp-backend/lib/candidate/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	"wfp-backend/models"
	candidateapimodels "wfp-backend/models/api/candidate"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	ChangeStatus(id string, status models.CandidateStatus) error
	Delete(id string) error
	Get(id string) (item candidateapimodels.CandidateView, err error)
	Find(request candidateapimodels.CandidateFind) (list []candidateapimodels.CandidateView, rowCount int64, err error)
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

func (i impl) Create(data candidateapimodels.CandidateData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Candidate{
		PipelineID: data.PipelineID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Email:      data.Email,
		Phone:      data.Phone,
		RoleTitle:  data.RoleTitle,
		Source:     data.Source,
		Status:     data.Status,
		StatusDate: time.Now(),
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	updMap := map[string]interface{}{
		"pipeline_id": data.PipelineID,
		"first_name":  data.FirstName,
		"last_name":   data.LastName,
		"email":       data.Email,
		"phone":       data.Phone,
		"role_title":  data.RoleTitle,
		"source":      data.Source,
	}
	if rec.Status != data.Status {
		updMap["status"] = data.Status
		updMap["status_date"] = time.Now()
	}
	return i.store.Update(id, updMap)
}

func (i impl) ChangeStatus(id string, status models.CandidateStatus) error {
	if status == "" {
		return errors.New("candidate status is required")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	if rec.Status == status {
		return nil
	}
	return i.store.Update(id, map[string]interface{}{
		"status":      status,
		"status_date": time.Now(),
	})
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Get(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("candidate not found")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) Find(request candidateapimodels.CandidateFind) ([]candidateapimodels.CandidateView, int64, error) {
	page, limit := request.GetPage()
	recList, rowCount, err := i.store.Find(request.PipelineID, request.Name, request.Status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, rowCount, nil
}
