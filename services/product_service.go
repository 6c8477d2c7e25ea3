package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Francesco-Napolitano/WebAppApi/database"
	"github.com/Francesco-Napolitano/WebAppApi/models"
	"github.com/Francesco-Napolitano/WebAppApi/utils"

	"gorm.io/gorm"
)

// ProductService implements product CRUD and the product-file association
// workflow. All checks are advisory: nothing here runs inside a transaction,
// so a concurrent writer can still trip a database constraint after a check
// has passed.
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a product service instance.
func NewProductService() *ProductService {
	return &ProductService{
		db: database.DB,
	}
}

// FileAttachment is one item of an attach-files request. Either FileID
// references an existing file, or AbsolutePath identifies a file record to
// reuse or create.
type FileAttachment struct {
	FileID       *int   `json:"fileId"`
	FileName     string `json:"fileName"`
	AbsolutePath string `json:"absolutePath"`
}

// AttachResult reports the outcome for one attach-files item.
type AttachResult struct {
	ID           int    `json:"id"`
	FileName     string `json:"fileName"`
	AbsolutePath string `json:"absolutePath"`
	Linked       bool   `json:"linked"`
	Reason       string `json:"reason,omitempty"`
}

// FileLink describes one file linked to a product.
type FileLink struct {
	FileID       int    `json:"fileId"`
	FileName     string `json:"fileName"`
	AbsolutePath string `json:"absolutePath"`
}

// GetAllProducts returns all products with brand and collection attached.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Brand").Preload("Collection").Find(&products).Error
	return products, err
}

// GetProductByID returns one product with brand, collection and file links.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Brand").
		Preload("Collection").
		Preload("ProductFiles.File").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct validates and inserts a new product. Embedded relation
// objects are stripped before the insert so a create can never spawn
// brand, collection or link rows as a side effect.
func (s *ProductService) CreateProduct(input *models.Product) (*models.Product, error) {
	var existing models.Product
	if err := s.db.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: product code already exists", utils.ErrConflict)
	}

	if err := s.checkReferences(input.BrandID, input.CollectionID); err != nil {
		return nil, err
	}

	input.Brand = nil
	input.Collection = nil
	input.ProductFiles = nil

	if err := s.db.Create(input).Error; err != nil {
		return nil, err
	}

	return input, nil
}

// UpdateProduct applies the mutable fields of input to the stored product.
// ID and creation timestamp are immutable; file links are untouched.
func (s *ProductService) UpdateProduct(id int, input *models.Product) error {
	if id != input.ID {
		return fmt.Errorf("%w: id mismatch", utils.ErrValidation)
	}

	var existing models.Product
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d %w", id, utils.ErrNotFound)
		}
		return err
	}

	// Re-check uniqueness only when the code actually changes, so a
	// product can always be saved under its own code.
	if !strings.EqualFold(existing.Code, input.Code) {
		var other models.Product
		if err := s.db.Where("code = ? AND id <> ?", input.Code, id).First(&other).Error; err == nil {
			return fmt.Errorf("%w: product code already used by another product", utils.ErrConflict)
		}
	}

	if err := s.checkReferences(input.BrandID, input.CollectionID); err != nil {
		return err
	}

	existing.Code = input.Code
	existing.Description = input.Description
	existing.ExtendedDescription = input.ExtendedDescription
	existing.BrandID = input.BrandID
	existing.CollectionID = input.CollectionID

	return s.db.Save(&existing).Error
}

// DeleteProduct removes a product. Its file links go away through the
// schema's cascade rule; file records are never touched.
func (s *ProductService) DeleteProduct(id int) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d %w", id, utils.ErrNotFound)
		}
		return err
	}

	return s.db.Delete(&product).Error
}

// GetFilesForProduct lists the files linked to a product.
func (s *ProductService) GetFilesForProduct(productID int) ([]FileLink, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}

	var links []models.ProductFile
	if err := s.db.Preload("File").Where("product_id = ?", productID).Find(&links).Error; err != nil {
		return nil, err
	}

	files := make([]FileLink, 0, len(links))
	for _, link := range links {
		files = append(files, FileLink{
			FileID:       link.FileID,
			FileName:     link.File.FileName,
			AbsolutePath: link.File.AbsolutePath,
		})
	}
	return files, nil
}

// AttachFiles links one or more files to a product, creating file records
// on the fly for unknown paths. Items are processed independently in input
// order; a failing item aborts the request but leaves earlier items
// committed.
func (s *ProductService) AttachFiles(productID int, items []FileAttachment) ([]AttachResult, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no files provided", utils.ErrValidation)
	}

	added := make([]AttachResult, 0, len(items))

	for _, item := range items {
		file, err := s.resolveFile(item)
		if err != nil {
			return nil, err
		}

		var link models.ProductFile
		err = s.db.Where("product_id = ? AND file_id = ?", productID, file.ID).First(&link).Error
		if err == nil {
			added = append(added, AttachResult{
				ID:           file.ID,
				FileName:     file.FileName,
				AbsolutePath: file.AbsolutePath,
				Linked:       false,
				Reason:       "already linked",
			})
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		link = models.ProductFile{ProductID: productID, FileID: file.ID}
		if err := s.db.Create(&link).Error; err != nil {
			return nil, err
		}

		added = append(added, AttachResult{
			ID:           file.ID,
			FileName:     file.FileName,
			AbsolutePath: file.AbsolutePath,
			Linked:       true,
		})
	}

	return added, nil
}

// resolveFile turns an attachment item into a file record, creating one
// when an unknown absolute path is given. The new record is persisted
// immediately so its id is available for the link.
func (s *ProductService) resolveFile(item FileAttachment) (*models.File, error) {
	if item.FileID != nil {
		var file models.File
		if err := s.db.First(&file, *item.FileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: file id %d not found", utils.ErrValidation, *item.FileID)
			}
			return nil, err
		}
		return &file, nil
	}

	if strings.TrimSpace(item.AbsolutePath) == "" {
		return nil, fmt.Errorf("%w: absolutePath required when fileId is not provided", utils.ErrValidation)
	}

	var file models.File
	err := s.db.Where("absolute_path = ?", item.AbsolutePath).First(&file).Error
	if err == nil {
		return &file, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fileName := item.FileName
	if fileName == "" {
		fileName = utils.FileNameFromPath(item.AbsolutePath)
	}

	file = models.File{FileName: fileName, AbsolutePath: item.AbsolutePath}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// RemoveFile deletes one product-file link. With removeFile set, a file
// record left with no remaining links is deleted as well; the content on
// disk is never touched.
func (s *ProductService) RemoveFile(productID, fileID int, removeFile bool) error {
	var link models.ProductFile
	err := s.db.Where("product_id = ? AND file_id = ?", productID, fileID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product-file link %w", utils.ErrNotFound)
		}
		return err
	}

	if err := s.db.Delete(&link).Error; err != nil {
		return err
	}

	if removeFile {
		var count int64
		if err := s.db.Model(&models.ProductFile{}).Where("file_id = ?", fileID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := s.db.Delete(&models.File{}, fileID).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// RemoveFiles deletes all links between a product and the given file ids
// in one batch. With removeOrphanFiles set, every requested id that ends
// up unreferenced has its file record deleted in a single follow-up write.
func (s *ProductService) RemoveFiles(productID int, fileIDs []int, removeOrphanFiles bool) error {
	if len(fileIDs) == 0 {
		return fmt.Errorf("%w: no file ids provided", utils.ErrValidation)
	}

	var links []models.ProductFile
	err := s.db.Where("product_id = ? AND file_id IN ?", productID, fileIDs).Find(&links).Error
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return fmt.Errorf("no links %w for the given file ids", utils.ErrNotFound)
	}

	if err := s.db.Delete(&links).Error; err != nil {
		return err
	}

	if removeOrphanFiles {
		// Check every requested id, not just the matched ones: an id
		// orphaned by an earlier request gets cleaned up here too.
		var orphans []int
		for _, fileID := range fileIDs {
			var count int64
			if err := s.db.Model(&models.ProductFile{}).Where("file_id = ?", fileID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				orphans = append(orphans, fileID)
			}
		}
		if len(orphans) > 0 {
			if err := s.db.Delete(&models.File{}, orphans).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// requireProduct fails with a not-found error when the product is absent.
func (s *ProductService) requireProduct(productID int) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("product %d %w", productID, utils.ErrNotFound)
	}
	return nil
}

// checkReferences validates that the optional brand and collection ids
// point at existing rows.
func (s *ProductService) checkReferences(brandID, collectionID *int) error {
	if brandID != nil {
		var brand models.Brand
		if err := s.db.First(&brand, *brandID).Error; err != nil {
			return fmt.Errorf("%w: brand not found", utils.ErrValidation)
		}
	}
	if collectionID != nil {
		var collection models.Collection
		if err := s.db.First(&collection, *collectionID).Error; err != nil {
			return fmt.Errorf("%w: collection not found", utils.ErrValidation)
		}
	}
	return nil
}
