package staffingapimodels

import (
	"time"

	"github.com/pkg/errors"
	"wfp-backend/models"
	apimodels "wfp-backend/models/api"
	dbmodels "wfp-backend/models/db"
)

type StaffingPlanData struct {
	ClientID   string                    `json:"client_id"`
	RoleTitle  string                    `json:"role_title"`
	Headcount  int                       `json:"headcount"`
	NeedByDate time.Time                 `json:"need_by_date"`
	Priority   int                       `json:"priority"`
	Status     models.StaffingPlanStatus `json:"status"`
	Notes      string                    `json:"notes"`
}

func (s StaffingPlanData) Validate() error {
	if s.ClientID == "" {
		return errors.New("client id is required")
	}
	if s.RoleTitle == "" {
		return errors.New("role title is required")
	}
	if s.Headcount <= 0 {
		return errors.New("headcount must be positive")
	}
	return nil
}

type StaffingPlanView struct {
	StaffingPlanData
	ID         string `json:"id"`
	ClientName string `json:"client_name,omitempty"`
}

type StaffingPlanFind struct {
	apimodels.Pagination
	ClientID  string                    `json:"client_id"`
	RoleTitle string                    `json:"role_title"`
	Status    models.StaffingPlanStatus `json:"status"`
}

func StaffingPlanConvert(rec dbmodels.StaffingPlan) StaffingPlanView {
	view := StaffingPlanView{
		StaffingPlanData: StaffingPlanData{
			ClientID:   rec.ClientID,
			RoleTitle:  rec.RoleTitle,
			Headcount:  rec.Headcount,
			NeedByDate: rec.NeedByDate,
			Priority:   rec.Priority,
			Status:     rec.Status,
			Notes:      rec.Notes,
		},
		ID: rec.ID,
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Name
	}
	return view
}
