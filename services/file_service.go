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

// FileService implements CRUD for file metadata records. The records are
// pointers only; no bytes are read from or written to disk.
type FileService struct {
	db *gorm.DB
}

// NewFileService creates a file service instance.
func NewFileService() *FileService {
	return &FileService{
		db: database.DB,
	}
}

// GetAllFiles returns all file records.
func (s *FileService) GetAllFiles() ([]models.File, error) {
	var files []models.File
	err := s.db.Find(&files).Error
	return files, err
}

// GetFileByID returns one file record.
func (s *FileService) GetFileByID(id int) (*models.File, error) {
	var file models.File
	err := s.db.First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file %d %w", id, utils.ErrNotFound)
		}
		return nil, err
	}
	return &file, nil
}

// CreateFile inserts a new file record. The absolute path is the natural
// key; the file name defaults to the path's last segment.
func (s *FileService) CreateFile(fileName, absolutePath string) (*models.File, error) {
	if strings.TrimSpace(absolutePath) == "" {
		return nil, fmt.Errorf("%w: absolutePath is required", utils.ErrValidation)
	}

	var existing models.File
	if err := s.db.Where("absolute_path = ?", absolutePath).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: a file with this absolute path already exists", utils.ErrConflict)
	}

	if fileName == "" {
		fileName = utils.FileNameFromPath(absolutePath)
	}

	file := models.File{
		FileName:     fileName,
		AbsolutePath: absolutePath,
	}

	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}

	return &file, nil
}

// DeleteFile removes a file record. Links to products go away through the
// schema's cascade rule.
func (s *FileService) DeleteFile(id int) error {
	var file models.File
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("file %d %w", id, utils.ErrNotFound)
		}
		return err
	}

	return s.db.Delete(&file).Error
}
