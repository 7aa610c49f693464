package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/s3"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

const (
	topContentsLimit = 5

	// Estimated footprint of one row when the database cannot report its size.
	bytesPerRowEstimate = 1024

	DatabaseLimitLabel = "500 MB (free tier)"
	StorageLimitLabel  = "1 GB (free tier)"
)

type DashboardUseCase interface {
	GetDashboard(ctx context.Context) (*entity.Dashboard, error)
}

// StorageUsage reports how much object storage the platform uses.
type StorageUsage interface {
	BucketUsage(ctx context.Context) (*s3.Usage, error)
}

// WatchQueue reports how many watch events are waiting in the broker.
type WatchQueue interface {
	GetQueueLength() (int, error)
}

type dashboardUseCase struct {
	dashboardRepo persistent.DashboardRepository
	storage       StorageUsage
	watchQueue    WatchQueue
	logger        *logger.Logger
	now           func() time.Time
}

// NewDashboardUseCase wires the dashboard. storage and watchQueue may be nil.
func NewDashboardUseCase(dashboardRepo persistent.DashboardRepository, storage StorageUsage, watchQueue WatchQueue, logger *logger.Logger) DashboardUseCase {
	return &dashboardUseCase{
		dashboardRepo: dashboardRepo,
		storage:       storage,
		watchQueue:    watchQueue,
		logger:        logger,
		now:           time.Now,
	}
}

func (uc *dashboardUseCase) GetDashboard(ctx context.Context) (*entity.Dashboard, error) {
	dashboard := &entity.Dashboard{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.dashboardRepo.MemberCounts(gctx)
		if err != nil {
			return fmt.Errorf("member counts: %w", err)
		}
		dashboard.Members = *counts
		return nil
	})
	g.Go(func() error {
		counts, err := uc.dashboardRepo.ContentCounts(gctx)
		if err != nil {
			return fmt.Errorf("content counts: %w", err)
		}
		dashboard.Contents = *counts
		return nil
	})
	g.Go(func() error {
		counts, err := uc.dashboardRepo.WatchCounts(gctx)
		if err != nil {
			return fmt.Errorf("watch counts: %w", err)
		}
		dashboard.Watches = *counts
		return nil
	})
	g.Go(func() error {
		counts, err := uc.dashboardRepo.CouponCounts(gctx, uc.now())
		if err != nil {
			return fmt.Errorf("coupon counts: %w", err)
		}
		dashboard.Coupons = *counts
		return nil
	})
	g.Go(func() error {
		top, err := uc.dashboardRepo.TopContents(gctx, topContentsLimit)
		if err != nil {
			return fmt.Errorf("top contents: %w", err)
		}
		dashboard.TopContents = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Size figures are informational; failures degrade to estimates.
	dashboard.Database = uc.databaseUsage(ctx)
	dashboard.Storage = uc.storageUsage(ctx)
	dashboard.WatchQueue = uc.watchBacklog()

	return dashboard, nil
}

func (uc *dashboardUseCase) databaseUsage(ctx context.Context) entity.Usage {
	usage := entity.Usage{Limit: DatabaseLimitLabel, Available: true}

	size, err := uc.dashboardRepo.DatabaseSize(ctx)
	if err == nil {
		usage.Bytes = size
		usage.Human = FormatBytes(size)
		return usage
	}
	if !errors.Is(err, persistent.ErrSizeUnsupported) {
		uc.logger.Warn("Failed to read database size, estimating: %v", err)
	}

	rows, err := uc.dashboardRepo.RowCount(ctx)
	if err != nil {
		uc.logger.Warn("Failed to count rows for size estimate: %v", err)
		return entity.Usage{Limit: DatabaseLimitLabel, Human: "unavailable"}
	}

	usage.Bytes = rows * bytesPerRowEstimate
	usage.Human = FormatBytes(usage.Bytes)
	usage.Estimated = true
	return usage
}

func (uc *dashboardUseCase) storageUsage(ctx context.Context) entity.Usage {
	usage := entity.Usage{Limit: StorageLimitLabel, Human: "unavailable"}
	if uc.storage == nil {
		return usage
	}

	bucket, err := uc.storage.BucketUsage(ctx)
	if err != nil {
		uc.logger.Warn("Failed to read bucket usage: %v", err)
		return usage
	}

	usage.Bytes = bucket.Bytes
	usage.Human = FormatBytes(bucket.Bytes)
	usage.Available = true
	return usage
}

func (uc *dashboardUseCase) watchBacklog() entity.QueueBacklog {
	if uc.watchQueue == nil {
		return entity.QueueBacklog{}
	}

	pending, err := uc.watchQueue.GetQueueLength()
	if err != nil {
		uc.logger.Warn("Failed to inspect watch event queue: %v", err)
		return entity.QueueBacklog{}
	}
	return entity.QueueBacklog{Pending: pending, Available: true}
}

// FormatBytes renders n with a binary unit, e.g. 1536 -> "1.5 KiB".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
