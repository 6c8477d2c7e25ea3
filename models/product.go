package models

import (
	"time"
)

// Product is a catalog item. Brand and Collection are optional; deleting
// either one nulls the reference instead of removing the product.
type Product struct {
	ID                  int       `json:"id" gorm:"primaryKey"`
	Code                string    `json:"code" gorm:"column:code;type:varchar(50);uniqueIndex;not null"`
	Description         string    `json:"description" gorm:"column:description;type:varchar(250);not null"`
	ExtendedDescription *string   `json:"extendedDescription,omitempty" gorm:"column:extended_description;type:varchar(250)"`
	CreatedAt           time.Time `json:"createdAt" gorm:"column:created_at"`
	BrandID             *int      `json:"brandId" gorm:"column:brand_id"`
	CollectionID        *int      `json:"collectionId" gorm:"column:collection_id"`

	Brand        *Brand        `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Collection   *Collection   `json:"collection,omitempty" gorm:"foreignKey:CollectionID"`
	ProductFiles []ProductFile `json:"productFiles,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "Product"
}
