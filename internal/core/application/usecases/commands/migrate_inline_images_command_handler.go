package commands

import (
	"context"
	"log/slog"
	"strings"

	"nailorders/internal/core/domain/model/order"
	"nailorders/internal/core/domain/services"
	"nailorders/internal/core/ports"
)

// MigrationReport summarizes a run of MigrateInlineImagesCommandHandler.
//
// Skipped orders had no inline image. Failed orders were left unchanged.
type MigrationReport struct {
	Scanned   int
	Migrated  int
	Skipped   int
	Failed    int
	FailedIDs []string
}

// MigrateInlineImagesCommandHandler rewrites orders that still carry inline
// images. Each order is all or nothing: if any of its images cannot be
// decoded or uploaded, or the row cannot be written, the order keeps its
// stored list and the fresh uploads are discarded. Inline entries are
// replaced in place, so the cover image stays first.
type MigrateInlineImagesCommandHandler struct {
	repo   ports.OrderRepository
	orders OrderWriter
	images ImageStore
	logger *slog.Logger
}

func NewMigrateInlineImagesCommandHandler(
	repo ports.OrderRepository,
	orders OrderWriter,
	images ImageStore,
	logger *slog.Logger,
) MigrateInlineImagesCommandHandler {
	return MigrateInlineImagesCommandHandler{
		repo:   repo,
		orders: orders,
		images: images,
		logger: logger.With("component", "MigrateInlineImagesCommandHandler"),
	}
}

func (h *MigrateInlineImagesCommandHandler) Handle(
	ctx context.Context,
	cmd MigrateInlineImagesCommand,
) (MigrationReport, error) {
	if err := cmd.Validate(); err != nil {
		return MigrationReport{}, err
	}

	all, err := h.repo.ListAll(ctx)
	if err != nil {
		return MigrationReport{}, err
	}

	report := MigrationReport{FailedIDs: []string{}}
	for _, o := range all {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		report.Scanned++

		positions, blobs, err := inlineBlobs(o.Images())
		switch {
		case err != nil:
			h.logger.WarnContext(ctx, "inline image cannot be decoded", "orderId", o.ID(), "error", err)
			report.fail(o.ID())
			continue
		case len(blobs) == 0:
			report.Skipped++
			continue
		case cmd.DryRun():
			h.logger.InfoContext(ctx, "would migrate order", "orderId", o.ID(), "images", len(blobs))
			report.Migrated++
			continue
		}

		if err = h.migrate(ctx, o, positions, blobs); err != nil {
			h.logger.WarnContext(ctx, "order migration failed", "orderId", o.ID(), "error", err)
			report.fail(o.ID())
			continue
		}
		h.logger.InfoContext(ctx, "order migrated", "orderId", o.ID(), "images", len(blobs))
		report.Migrated++
	}

	return report, nil
}

func (h *MigrateInlineImagesCommandHandler) migrate(
	ctx context.Context,
	o *order.Order,
	positions []int,
	blobs []ports.ImageBlob,
) error {
	urls, err := h.images.Upload(ctx, "migrated-"+o.ID(), blobs)
	if err != nil {
		return err
	}

	images := o.Images()
	for i, pos := range positions {
		images[pos] = urls[i]
	}

	if err = h.orders.Update(ctx, o.ID(), order.ImagesPatch(images)); err != nil {
		h.images.Discard(ctx, urls)
		return err
	}
	return nil
}

func (r *MigrationReport) fail(id string) {
	r.Failed++
	r.FailedIDs = append(r.FailedIDs, id)
}

// inlineBlobs decodes every inline entry of images and returns their indexes.
func inlineBlobs(images []string) ([]int, []ports.ImageBlob, error) {
	var (
		positions []int
		blobs     []ports.ImageBlob
	)
	for i, img := range images {
		if !services.IsInlineImage(img) {
			continue
		}
		data, contentType, err := services.DecodeInlineImage(img)
		if err != nil {
			return nil, nil, err
		}
		positions = append(positions, i)
		blobs = append(blobs, ports.ImageBlob{
			Filename:    "inline." + strings.TrimPrefix(contentType, "image/"),
			ContentType: contentType,
			Data:        data,
		})
	}
	return positions, blobs, nil
}
