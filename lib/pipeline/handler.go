package pipelineprovider

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"wfp-backend/db"
	store "wfp-backend/lib/pipeline/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	pipelineapimodels "wfp-backend/models/api/pipeline"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Create(data pipelineapimodels.PipelineData) (id string, err error)
	CreateFromTemplate(data pipelineapimodels.PipelineData) (id string, err error)
	Update(id string, data pipelineapimodels.PipelineData) error
	Delete(id string) error
	Get(id string) (item pipelineapimodels.PipelineView, err error)
	Find(request pipelineapimodels.PipelineFind) (list []pipelineapimodels.PipelineView, rowCount int64, err error)
	AddStage(pipelineID string, data pipelineapimodels.StageData) (id string, err error)
	UpdateStage(stageID string, data pipelineapimodels.StageData) error
	DeleteStage(stageID string) error
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

func (i impl) Create(data pipelineapimodels.PipelineData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.TalentPipeline{
		Name:        data.Name,
		ClientID:    data.ClientID,
		Description: data.Description,
		Tags:        data.Tags,
		IsInternal:  data.IsInternal,
		CreatedBy:   data.CreatedBy,
		// new pipelines start inactive until the stage set is confirmed
		IsActive: false,
	}
	return i.store.Create(rec)
}

func (i impl) CreateFromTemplate(data pipelineapimodels.PipelineData) (string, error) {
	template, err := i.store.FindByName(dbmodels.DefaultTemplateName)
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", errors.New("default template not found")
	}
	id, err := i.Create(data)
	if err != nil {
		return "", err
	}
	stages, err := i.store.GetStages(template.ID)
	if err != nil {
		return "", err
	}
	for _, stage := range stages {
		rec := dbmodels.PipelineStage{
			PipelineID:     id,
			Name:           stage.Name,
			StageOrder:     stage.StageOrder,
			ConversionRate: stage.ConversionRate,
			TatDays:        stage.TatDays,
			Description:    stage.Description,
			IsSpecial:      stage.IsSpecial,
			MapsToStatus:   stage.MapsToStatus,
		}
		if _, err := i.store.AddStage(rec); err != nil {
			return "", err
		}
	}
	return id, nil
}

func (i impl) Update(id string, data pipelineapimodels.PipelineData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("pipeline not found")
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"client_id":   data.ClientID,
		"description": data.Description,
		"tags":        pq.StringArray(data.Tags),
		"is_active":   data.IsActive,
		"is_internal": data.IsInternal,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if rec.Name == dbmodels.DefaultTemplateName {
		return errors.New("the default template can not be deleted")
	}
	return i.store.Delete(id)
}

func (i impl) Get(id string) (pipelineapimodels.PipelineView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return pipelineapimodels.PipelineView{}, err
	}
	if rec == nil {
		return pipelineapimodels.PipelineView{}, errors.New("pipeline not found")
	}
	return pipelineapimodels.PipelineConvert(*rec), nil
}

func (i impl) Find(request pipelineapimodels.PipelineFind) ([]pipelineapimodels.PipelineView, int64, error) {
	page, limit := request.GetPage()
	recList, rowCount, err := i.store.Find(request.Name, request.ClientID, request.OnlyActive, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]pipelineapimodels.PipelineView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, pipelineapimodels.PipelineConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) AddStage(pipelineID string, data pipelineapimodels.StageData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	pipeline, err := i.store.GetByID(pipelineID)
	if err != nil {
		return "", err
	}
	if pipeline == nil {
		return "", errors.New("pipeline not found")
	}
	if !data.IsSpecial {
		for _, stage := range pipeline.Stages {
			if !stage.IsSpecial && stage.StageOrder == data.StageOrder {
				return "", errors.Errorf("stage order %d is already taken by %q", data.StageOrder, stage.Name)
			}
		}
	}
	rec := dbmodels.PipelineStage{
		PipelineID:     pipelineID,
		Name:           data.Name,
		StageOrder:     data.StageOrder,
		ConversionRate: data.ConversionRate,
		TatDays:        data.TatDays,
		Description:    data.Description,
		IsSpecial:      data.IsSpecial,
		MapsToStatus:   data.MapsToStatus,
	}
	return i.store.AddStage(rec)
}

func (i impl) UpdateStage(stageID string, data pipelineapimodels.StageData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetStage(stageID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("stage not found")
	}
	if !data.IsSpecial {
		stages, err := i.store.GetStages(rec.PipelineID)
		if err != nil {
			return err
		}
		for _, stage := range stages {
			if stage.ID != stageID && !stage.IsSpecial && stage.StageOrder == data.StageOrder {
				return errors.Errorf("stage order %d is already taken by %q", data.StageOrder, stage.Name)
			}
		}
	}
	updMap := map[string]interface{}{
		"name":            data.Name,
		"stage_order":     data.StageOrder,
		"conversion_rate": data.ConversionRate,
		"tat_days":        data.TatDays,
		"description":     data.Description,
		"is_special":      data.IsSpecial,
		"maps_to_status":  data.MapsToStatus,
	}
	return i.store.UpdateStage(stageID, updMap)
}

func (i impl) DeleteStage(stageID string) error {
	return i.store.DeleteStage(stageID)
}
