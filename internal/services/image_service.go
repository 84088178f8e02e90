package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onebluedot/site/internal/storage"
	appErr "github.com/onebluedot/site/pkg/errors"
	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type ImageService interface {
	Upload(ctx context.Context, up Upload) (*UploadResult, error)
}

type imageService struct {
	store   storage.Store
	baseURL string
	maxSize int64
	now     func() time.Time
}

// NewImageService uploads into store. Returned URLs live under publicBaseURL
// and stay valid for as long as the object exists.
func NewImageService(store storage.Store, publicBaseURL string, maxSize int64) ImageService {
	return &imageService{store: store, baseURL: publicBaseURL, maxSize: maxSize, now: time.Now}
}

func (s *imageService) Upload(ctx context.Context, up Upload) (*UploadResult, error) {
	ct := mediaType(up.ContentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = mediaType(mime.TypeByExtension(filepath.Ext(up.Filename)))
	}
	defExt, ok := imageExtensions[ct]
	if !ok {
		return nil, appErr.New(appErr.CodeInvalid, "Only JPEG, PNG and WebP images are allowed")
	}
	if up.Size > s.maxSize {
		return nil, appErr.New(appErr.CodeTooLarge, fmt.Sprintf("File exceeds the %d byte limit", s.maxSize))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(up.Filename), "."))
	if ext == "" {
		ext = defExt
	}
	key := fmt.Sprintf("%s%d-%s.%s", storage.UploadPrefix, s.now().UnixMilli(), uuid.NewString(), ext)

	if err := s.store.Put(ctx, key, up.Body, up.Size, ct); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "Failed to upload image")
	}
	logger.L().Info("image uploaded", zap.String("key", key), zap.Int64("size", up.Size))
	return &UploadResult{URL: storage.ObjectURL(s.baseURL, key), Path: key}, nil
}

func mediaType(v string) string {
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}
