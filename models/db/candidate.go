package dbmodels

import (
	"time"

	"wfp-backend/models"
)

type Candidate struct {
	BaseModel
	PipelineID string                 `gorm:"type:varchar(36);index"`
	FirstName  string                 `gorm:"type:varchar(255)"`
	LastName   string                 `gorm:"type:varchar(255)"`
	Email      string                 `gorm:"type:varchar(255)"`
	Phone      string                 `gorm:"type:varchar(50)"`
	RoleTitle  string                 `gorm:"type:varchar(255)"`
	Source     string                 `gorm:"type:varchar(100)"`
	Status     models.CandidateStatus `gorm:"type:varchar(50);index"`
	StatusDate time.Time
}

func (c Candidate) GetFullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
