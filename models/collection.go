package models

// Collection groups products under a brand.
type Collection struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	BrandID     int    `json:"brandId" gorm:"column:brand_id;not null"`
	Code        string `json:"code" gorm:"column:code;type:varchar(50);not null"`
	Description string `json:"description" gorm:"column:description;type:varchar(250);not null"`

	Brand    *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CollectionID;constraint:OnDelete:SET NULL"`
}

func (Collection) TableName() string {
	return "Collection"
}
