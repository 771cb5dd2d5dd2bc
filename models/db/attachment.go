package dbmodels

type Attachment struct {
	BaseModel
	ProjectID       *string `gorm:"type:varchar(36);index"`
	ChangeRequestID *string `gorm:"type:varchar(36);index"`
	FileName        string  `gorm:"type:varchar(255)"`
	FilePath        string  `gorm:"type:varchar(512)"`
	FileSize        int64
	UploadedByID    string `gorm:"type:varchar(36)"`
	UploadedBy      *User  `gorm:"foreignKey:UploadedByID"`
}
