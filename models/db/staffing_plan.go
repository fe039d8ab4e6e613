package dbmodels

import (
	"time"

	"wfp-backend/models"
)

type StaffingPlan struct {
	BaseModel
	ClientID   string `gorm:"type:varchar(36);index"`
	Client     *Client
	RoleTitle  string `gorm:"type:varchar(255)"`
	Headcount  int
	NeedByDate time.Time
	Priority   int
	Status     models.StaffingPlanStatus `gorm:"type:varchar(50)"`
	Notes      string                    `gorm:"type:varchar(1000)"`
}
