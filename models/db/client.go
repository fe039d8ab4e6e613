package dbmodels

type Client struct {
	BaseModel
	Name         string `gorm:"index;type:varchar(255)"`
	Industry     string `gorm:"type:varchar(100)"`
	ContactName  string `gorm:"type:varchar(255)"`
	ContactEmail string `gorm:"type:varchar(255)"`
	IsActive     bool
	IsInternal   bool
}
