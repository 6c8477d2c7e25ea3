package models

// File is a metadata record pointing at a file on disk. The absolute path
// is the natural key: attaching by path reuses the row with that path.
// No file content is ever read or written through this API.
type File struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	FileName     string `json:"fileName" gorm:"column:file_name;type:varchar(250);not null"`
	AbsolutePath string `json:"absolutePath" gorm:"column:absolute_path;type:varchar(250);uniqueIndex;not null"`

	ProductFiles []ProductFile `json:"productFiles,omitempty" gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE"`
}

func (File) TableName() string {
	return "File"
}
