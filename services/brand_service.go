package services

import (
	"errors"
	"fmt"

	"github.com/Francesco-Napolitano/WebAppApi/database"
	"github.com/Francesco-Napolitano/WebAppApi/models"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"gorm.io/gorm"
)

// BrandService implements brand CRUD.
type BrandService struct {
	db *gorm.DB
}

// NewBrandService creates a brand service instance.
func NewBrandService() *BrandService {
	return &BrandService{
		db: database.DB,
	}
}

// GetAllBrands returns all brands with their collections attached.
func (s *BrandService) GetAllBrands() ([]models.Brand, error) {
	var brands []models.Brand
	err := s.db.Preload("Collections").Find(&brands).Error
	return brands, err
}

// GetBrandByID returns one brand with its collections.
func (s *BrandService) GetBrandByID(id int) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.Preload("Collections").First(&brand, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &brand, nil
}

// CreateBrand inserts a new brand.
func (s *BrandService) CreateBrand(code, description string) (*models.Brand, error) {
	var existing models.Brand
	if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: brand code already exists", utils.ErrConflict)
	}

	brand := models.Brand{
		Code:        code,
		Description: description,
	}

	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}

	return &brand, nil
}

// UpdateBrand updates a brand's code and description.
func (s *BrandService) UpdateBrand(id int, code, description string) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}

	var existing models.Brand
	if err := s.db.Where("code = ? AND id <> ?", code, id).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: brand code already exists", utils.ErrConflict)
	}

	brand.Code = code
	brand.Description = description

	if err := s.db.Save(&brand).Error; err != nil {
		return nil, err
	}

	return &brand, nil
}

// DeleteBrand removes a brand. Deletion is refused while any collection
// still belongs to the brand; products referencing it get their brand id
// nulled by the schema rule.
func (s *BrandService) DeleteBrand(id int) error {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("brand %d %w", id, utils.ErrNotFound)
		}
		return err
	}

	var count int64
	if err := s.db.Model(&models.Collection{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: brand has collections", utils.ErrConflict)
	}

	return s.db.Delete(&brand).Error
}
