package dbmodels

type StoredFile struct {
	BaseModel
	Name        string `gorm:"type:varchar(500)"`
	Kind        string `gorm:"type:varchar(50)"` // import-stages, import-staffing
	ContentType string `gorm:"type:varchar(255)"`
	Size        int64
}
