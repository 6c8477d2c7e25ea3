package services

import (
	"errors"
	"fmt"

	"github.com/Francesco-Napolitano/WebAppApi/database"
	"github.com/Francesco-Napolitano/WebAppApi/models"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"gorm.io/gorm"
)

// CollectionService implements collection CRUD.
type CollectionService struct {
	db *gorm.DB
}

// NewCollectionService creates a collection service instance.
func NewCollectionService() *CollectionService {
	return &CollectionService{
		db: database.DB,
	}
}

// GetAllCollections returns all collections with their brand attached.
func (s *CollectionService) GetAllCollections() ([]models.Collection, error) {
	var collections []models.Collection
	err := s.db.Preload("Brand").Find(&collections).Error
	return collections, err
}

// GetCollectionByID returns one collection with its brand.
func (s *CollectionService) GetCollectionByID(id int) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.Preload("Brand").First(&collection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("collection %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &collection, nil
}

// CreateCollection inserts a new collection under an existing brand.
func (s *CollectionService) CreateCollection(brandID int, code, description string) (*models.Collection, error) {
	var brand models.Brand
	if err := s.db.First(&brand, brandID).Error; err != nil {
		return nil, fmt.Errorf("%w: brand not found", utils.ErrValidation)
	}

	collection := models.Collection{
		BrandID:     brandID,
		Code:        code,
		Description: description,
	}

	if err := s.db.Create(&collection).Error; err != nil {
		return nil, err
	}

	return &collection, nil
}

// UpdateCollection updates a collection's brand, code and description.
func (s *CollectionService) UpdateCollection(id, brandID int, code, description string) (*models.Collection, error) {
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("collection %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}

	var brand models.Brand
	if err := s.db.First(&brand, brandID).Error; err != nil {
		return nil, fmt.Errorf("%w: brand not found", utils.ErrValidation)
	}

	collection.BrandID = brandID
	collection.Code = code
	collection.Description = description

	if err := s.db.Save(&collection).Error; err != nil {
		return nil, err
	}

	return &collection, nil
}

// DeleteCollection removes a collection. Products referencing it get
// their collection id nulled by the schema rule.
func (s *CollectionService) DeleteCollection(id int) error {
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("collection %d %w", id, utils.ErrNotFound)
		}
		return err
	}

	return s.db.Delete(&collection).Error
}
