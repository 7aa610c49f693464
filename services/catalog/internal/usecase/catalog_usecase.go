package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/queue"
	"pilates-club/pkg/youtube"
	"pilates-club/services/catalog/internal/entity"
	"pilates-club/services/catalog/internal/repo/persistent"
)

type CatalogUseCase interface {
	ListVideos(ctx context.Context, opts entity.ListOptions) (*entity.Catalog, error)
	ListCategories(ctx context.Context) ([]string, error)
	Watch(ctx context.Context, memberID, videoKey string, mobile bool) (*entity.WatchPage, error)
	RecordWatch(ctx context.Context, event queue.WatchEvent) error
}

// VideoMetadata looks up durations for contents that have none cached.
type VideoMetadata interface {
	GetVideoDetails(ctx context.Context, id string) (*youtube.VideoDetails, error)
}

// EventPublisher hands watch events to the queue consumer.
type EventPublisher interface {
	PublishWatchEvent(event queue.WatchEvent) error
}

type catalogUseCase struct {
	repo      persistent.CatalogRepository
	metadata  VideoMetadata
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewCatalogUseCase wires the catalog. metadata and publisher may be nil.
func NewCatalogUseCase(
	repo persistent.CatalogRepository,
	metadata VideoMetadata,
	publisher EventPublisher,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		repo:      repo,
		metadata:  metadata,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *catalogUseCase) ListVideos(ctx context.Context, opts entity.ListOptions) (*entity.Catalog, error) {
	var ascending bool
	switch opts.Sort {
	case "", entity.SortNewest:
	case entity.SortOldest:
		ascending = true
	default:
		return nil, ErrInvalidSort
	}

	contents, err := uc.repo.ListVisible(ctx, ascending, strings.TrimSpace(opts.Category))
	if err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, 0, len(contents))
	for _, content := range contents {
		videos = append(videos, uc.enrich(ctx, content))
	}

	catalog := &entity.Catalog{
		Videos: videos,
		Total:  len(videos),
	}
	if opts.Group {
		catalog.Groups = GroupByCategory(videos)
	}

	return catalog, nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (uc *catalogUseCase) Watch(ctx context.Context, memberID, videoKey string, mobile bool) (*entity.WatchPage, error) {
	videoKey = strings.TrimSpace(videoKey)
	if videoKey == "" {
		return nil, ErrVideoKeyMissing
	}

	content, err := uc.repo.GetVisibleByKey(ctx, videoKey)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	video := uc.enrich(ctx, content)
	uc.logWatch(ctx, memberID, content.ID)

	return &entity.WatchPage{
		Video:  video,
		Player: playerConfig(video.YoutubeID, mobile),
	}, nil
}

func (uc *catalogUseCase) RecordWatch(ctx context.Context, event queue.WatchEvent) error {
	watchedAt := event.WatchedAt
	if watchedAt.IsZero() {
		watchedAt = uc.now()
	}

	return uc.repo.CreateWatchLog(ctx, &entity.WatchLog{
		MemberID:  event.MemberID,
		ContentID: event.ContentID,
		WatchedAt: watchedAt,
	})
}

// logWatch never fails the page; a lost watch log only skews the dashboard.
func (uc *catalogUseCase) logWatch(ctx context.Context, memberID, contentID string) {
	if memberID == "" {
		return
	}

	event := queue.WatchEvent{
		MemberID:  memberID,
		ContentID: contentID,
		WatchedAt: uc.now(),
	}

	if uc.publisher != nil {
		err := uc.publisher.PublishWatchEvent(event)
		if err == nil {
			return
		}
		uc.logger.Warn("Publishing watch event for content %s failed, writing directly: %v", contentID, err)
	}

	if err := uc.RecordWatch(ctx, event); err != nil {
		uc.logger.Error("Failed to record watch log for content %s: %v", contentID, err)
	}
}

func (uc *catalogUseCase) enrich(ctx context.Context, content *entity.Content) *entity.Video {
	video := &entity.Video{
		ID:           content.ID,
		Title:        content.Title,
		Description:  content.Description,
		VideoKey:     content.VideoKey,
		YoutubeID:    youtube.ExtractID(content.YoutubeURL),
		ThumbnailURL: youtube.ThumbnailURL(content.YoutubeURL),
		CreatedAt:    content.CreatedAt,
	}
	if content.Category != nil {
		video.Category = *content.Category
	}

	switch {
	case content.FormattedDuration != nil && *content.FormattedDuration != "":
		video.FormattedDuration = *content.FormattedDuration
	case content.Duration != nil && *content.Duration != "":
		video.FormattedDuration = youtube.FormatDuration(*content.Duration)
	default:
		video.FormattedDuration = uc.fetchDuration(ctx, content.ID, video.YoutubeID)
	}

	return video
}

func (uc *catalogUseCase) fetchDuration(ctx context.Context, contentID, youtubeID string) string {
	if uc.metadata == nil || youtubeID == "" {
		return ""
	}

	details, err := uc.metadata.GetVideoDetails(ctx, youtubeID)
	if err != nil {
		uc.logger.Warn("Failed to fetch duration for video %s: %v", youtubeID, err)
		return ""
	}
	if details == nil {
		return ""
	}

	if err := uc.repo.UpdateDuration(ctx, contentID, details.Duration, details.FormattedDuration); err != nil {
		uc.logger.Warn("Failed to cache duration for content %s: %v", contentID, err)
	}
	return details.FormattedDuration
}

// GroupByCategory buckets videos by category in alphabetical order, keeping
// each bucket in input order. Videos without a category go last.
func GroupByCategory(videos []*entity.Video) []*entity.CategoryGroup {
	index := make(map[string]*entity.CategoryGroup)
	var names []string
	var uncategorized *entity.CategoryGroup

	for _, video := range videos {
		if video.Category == "" {
			if uncategorized == nil {
				uncategorized = &entity.CategoryGroup{Category: entity.UncategorizedLabel}
			}
			uncategorized.Videos = append(uncategorized.Videos, video)
			continue
		}

		group, ok := index[video.Category]
		if !ok {
			group = &entity.CategoryGroup{Category: video.Category}
			index[video.Category] = group
			names = append(names, video.Category)
		}
		group.Videos = append(group.Videos, video)
	}

	sort.Strings(names)

	groups := make([]*entity.CategoryGroup, 0, len(names)+1)
	for _, name := range names {
		groups = append(groups, index[name])
	}
	if uncategorized != nil {
		groups = append(groups, uncategorized)
	}
	return groups
}
