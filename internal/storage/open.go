package storage

import (
	"context"
	"fmt"

	"github.com/onebluedot/site/pkg/config"
)

// Open builds the store selected by STORAGE_DRIVER and prepares it.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var s Store
	switch cfg.StorageDriver {
	case "local":
		s = NewLocalStore(cfg.StorageDir, cfg.PublicBaseURL)
	case "s3":
		s3s, err := NewS3Store(ctx, S3Options{Bucket: cfg.S3Bucket, Region: cfg.S3Region, Endpoint: cfg.S3Endpoint})
		if err != nil {
			return nil, err
		}
		s = s3s
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err := s.Init(ctx); err != nil {
		return nil, fmt.Errorf("init %s storage: %w", cfg.StorageDriver, err)
	}
	return s, nil
}
