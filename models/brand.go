package models

// Brand is a product brand identified by a short code.
type Brand struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Code        string `json:"code" gorm:"column:code;type:varchar(50);not null"`
	Description string `json:"description" gorm:"column:description;type:varchar(250);not null"`

	Collections []Collection `json:"collections,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	Products    []Product    `json:"products,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}

func (Brand) TableName() string {
	return "Brand"
}
