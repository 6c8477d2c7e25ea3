package models

// ProductFile links a product to a file. At most one link may exist per
// (product, file) pair; deleting either parent cascades onto the link.
type ProductFile struct {
	ID        int `json:"id" gorm:"primaryKey"`
	ProductID int `json:"productId" gorm:"column:product_id;not null;uniqueIndex:idx_product_file"`
	FileID    int `json:"fileId" gorm:"column:file_id;not null;uniqueIndex:idx_product_file"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	File    *File    `json:"file,omitempty" gorm:"foreignKey:FileID"`
}

func (ProductFile) TableName() string {
	return "ProductFile"
}
