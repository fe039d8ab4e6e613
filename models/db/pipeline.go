package dbmodels

import "github.com/lib/pq"

// DefaultTemplateName is the internal pipeline seeded on first start.
const DefaultTemplateName = "Default Template"

type TalentPipeline struct {
	BaseModel
	Name        string `gorm:"index;type:varchar(255)"`
	ClientID    string `gorm:"type:varchar(36);index"`
	Client      *Client
	Description string         `gorm:"type:varchar(1000)"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	IsActive    bool
	IsInternal  bool
	CreatedBy   string          `gorm:"type:varchar(255)"`
	Stages      []PipelineStage `gorm:"foreignKey:PipelineID"`
}
