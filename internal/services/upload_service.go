package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/raihanmz/portfolio-backend/internal/storage"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

// UploadService names and stores uploaded images through the configured
// storage port. MIME/size checks happen at the handler, next to the multipart
// parsing.
type UploadService interface {
	StoreImage(ctx context.Context, originalName, contentType string, r io.Reader) (publicURL string, err error)
}

type uploadService struct {
	uploader storage.Uploader
}

func NewUploadService(uploader storage.Uploader) UploadService {
	return &uploadService{uploader: uploader}
}

func (s *uploadService) StoreImage(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	const op = "UploadService.StoreImage"

	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	// timestamp name + original extension; millisecond granularity is enough
	// for a single-admin panel
	ext := strings.ToLower(path.Ext(originalName))
	objectName := fmt.Sprintf("uploads/%d%s", time.Now().UnixMilli(), ext)

	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to store image", err)
	}
	return url, nil
}
