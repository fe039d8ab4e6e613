package candidateapimodels

import (
	"time"

	"github.com/pkg/errors"
	"wfp-backend/models"
	apimodels "wfp-backend/models/api"
	dbmodels "wfp-backend/models/db"
)

type CandidateData struct {
	PipelineID string                 `json:"pipeline_id"`
	FirstName  string                 `json:"first_name"`
	LastName   string                 `json:"last_name"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	RoleTitle  string                 `json:"role_title"`
	Source     string                 `json:"source"`
	Status     models.CandidateStatus `json:"status"`
}

func (c CandidateData) Validate() error {
	if c.LastName == "" {
		return errors.New("candidate last name is required")
	}
	if c.Status == "" {
		return errors.New("candidate status is required")
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID         string    `json:"id"`
	StatusDate time.Time `json:"status_date"`
}

type CandidateFind struct {
	apimodels.Pagination
	PipelineID string                 `json:"pipeline_id"`
	Status     models.CandidateStatus `json:"status"`
	Name       string                 `json:"name"`
}

type StatusChange struct {
	Status models.CandidateStatus `json:"status"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			PipelineID: rec.PipelineID,
			FirstName:  rec.FirstName,
			LastName:   rec.LastName,
			Email:      rec.Email,
			Phone:      rec.Phone,
			RoleTitle:  rec.RoleTitle,
			Source:     rec.Source,
			Status:     rec.Status,
		},
		ID:         rec.ID,
		StatusDate: rec.StatusDate,
	}
}
