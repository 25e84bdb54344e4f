package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	imagesvc "nailorders/internal/core/domain/services"
	"nailorders/internal/core/ports"
	"nailorders/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const defaultUploadConcurrency = 4

// ImageSync uploads order images to object storage and deletes the ones an
// order no longer references.
type ImageSync struct {
	storage ports.ObjectStorage
	keys    imagesvc.ObjectKeyGenerator
	locator imagesvc.ImageLocator
	limit   int
	logger  *slog.Logger
}

// NewImageSync builds an ImageSync running at most limit storage calls at a
// time. A non-positive limit falls back to 4.
func NewImageSync(
	storage ports.ObjectStorage,
	keys imagesvc.ObjectKeyGenerator,
	locator imagesvc.ImageLocator,
	limit int,
	logger *slog.Logger,
) *ImageSync {
	if limit <= 0 {
		limit = defaultUploadConcurrency
	}
	return &ImageSync{
		storage: storage,
		keys:    keys,
		locator: locator,
		limit:   limit,
		logger:  logger.With("component", "ImageSync"),
	}
}

// Upload stores every blob under a fresh key derived from prefix and returns
// the public URLs in submission order.
//
// The batch is all or nothing: the first failure cancels the remaining
// uploads, the ones that already landed are discarded, and an
// errs.StorageError is returned.
func (s *ImageSync) Upload(ctx context.Context, prefix string, blobs []ports.ImageBlob) ([]string, error) {
	urls := make([]string, len(blobs))
	if len(blobs) == 0 {
		return urls, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, blob := range blobs {
		g.Go(func() error {
			key := s.keys.NewKey(prefix, blob.Filename)
			if err := s.storage.Put(gctx, key, blob.Data, contentType(blob)); err != nil {
				return asStorageError("put", key, err)
			}
			urls[i] = s.locator.URL(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		landed := make([]string, 0, len(urls))
		for _, url := range urls {
			if url != "" {
				landed = append(landed, url)
			}
		}
		s.logger.ErrorContext(ctx, "image upload failed, discarding batch",
			"prefix", prefix, "uploaded", len(landed), "total", len(blobs), "error", err)
		s.Discard(ctx, landed)
		return nil, err
	}

	return urls, nil
}

// Discard deletes the objects behind urls. It is best effort: failures are
// logged and never reported to the caller, and request cancellation does not
// stop it. URLs outside the storage base URL are skipped.
func (s *ImageSync) Discard(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(s.limit)
	for _, url := range urls {
		key, ok := s.locator.Key(url)
		if !ok {
			s.logger.WarnContext(ctx, "image url is not in storage, skipping delete", "url", url)
			continue
		}
		g.Go(func() error {
			if err := s.storage.Delete(ctx, key); err != nil {
				s.logger.WarnContext(ctx, "image delete failed", "key", key, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func contentType(blob ports.ImageBlob) string {
	if blob.ContentType != "" {
		return blob.ContentType
	}
	return http.DetectContentType(blob.Data)
}

func asStorageError(op, key string, err error) error {
	if errors.Is(err, errs.ErrStorageFailure) {
		return err
	}
	return errs.NewStorageErrorWithCause(op, key, err)
}
