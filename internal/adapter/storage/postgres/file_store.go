package postgres

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// FileStore implements domain.FileStore by keeping ticket scans in a
// PostgreSQL table next to the records that reference them. Ticket files
// are small (a page of PDF or one photo) and low-volume, so a separate
// object store would only add an operational dependency.
type FileStore struct {
	db *gorm.DB
}

// NewFileStore creates a FileStore.
func NewFileStore(db *gorm.DB) *FileStore {
	return &FileStore{db: db}
}

func (s *FileStore) UploadFile(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := "tickets/" + uuid.NewString() + sanitizeExt(name)
	record := ticketFileRecord{
		Path:        key,
		Data:        data,
		ContentType: contentType,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("storing ticket file: %w", err)
	}
	return key, nil
}

// RemoveFile deletes the artifact. A missing path is not an error so the
// booking delete flow stays idempotent.
func (s *FileStore) RemoveFile(ctx context.Context, filePath string) error {
	result := s.db.WithContext(ctx).Delete(&ticketFileRecord{}, "path = ?", filePath)
	if result.Error != nil {
		return fmt.Errorf("removing ticket file %s: %w", filePath, result.Error)
	}
	return nil
}

// GetFile fetches the artifact bytes and content type for download.
func (s *FileStore) GetFile(ctx context.Context, filePath string) ([]byte, string, error) {
	var record ticketFileRecord
	if err := s.db.WithContext(ctx).First(&record, "path = ?", filePath).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.NewNotFoundError("ticket file", filePath)
		}
		return nil, "", fmt.Errorf("reading ticket file %s: %w", filePath, err)
	}
	return record.Data, record.ContentType, nil
}

// sanitizeExt keeps only a plain file extension from the upload name.
func sanitizeExt(name string) string {
	ext := strings.ToLower(path.Ext(name))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
