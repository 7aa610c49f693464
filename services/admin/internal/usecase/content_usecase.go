package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/videokey"
	"pilates-club/pkg/youtube"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"
)

type ContentUseCase interface {
	ListContents(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error)
	GetContent(ctx context.Context, id string) (*entity.Content, error)
	CreateContent(ctx context.Context, input entity.ContentInput) (*entity.Content, error)
	UpdateContent(ctx context.Context, id string, update entity.ContentUpdate) (*entity.Content, error)
	DeleteContent(ctx context.Context, id string) error
	ToggleVisibility(ctx context.Context, id string) (bool, error)
	BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error)
	GenerateKey() string
	YouTubeInfo(ctx context.Context, url string) (*entity.YouTubeInfo, error)
}

// VideoMetadata looks up a video's duration and title.
type VideoMetadata interface {
	GetVideoDetails(ctx context.Context, id string) (*youtube.VideoDetails, error)
}

type contentUseCase struct {
	contentRepo persistent.ContentRepository
	metadata    VideoMetadata
	logger      *logger.Logger
	generateKey func() string
}

// NewContentUseCase wires content management. metadata may be nil.
func NewContentUseCase(contentRepo persistent.ContentRepository, metadata VideoMetadata, logger *logger.Logger) ContentUseCase {
	return &contentUseCase{
		contentRepo: contentRepo,
		metadata:    metadata,
		logger:      logger,
		generateKey: videokey.Generate,
	}
}

func (uc *contentUseCase) ListContents(ctx context.Context, filter entity.ContentFilter) (*entity.ContentPage, error) {
	page, pageSize, offset := normalizePage(filter.Page, filter.PageSize)
	contents, total, err := uc.contentRepo.List(ctx, filter.Visible, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &entity.ContentPage{
		Items:      contents,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (uc *contentUseCase) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

func (uc *contentUseCase) CreateContent(ctx context.Context, input entity.ContentInput) (*entity.Content, error) {
	title := strings.TrimSpace(input.Title)
	url := strings.TrimSpace(input.YoutubeURL)
	if title == "" || url == "" {
		return nil, ErrContentFieldsRequired
	}

	videoID := youtube.ExtractID(url)
	if videoID == "" {
		return nil, ErrInvalidYoutubeURL
	}

	key := strings.TrimSpace(input.VideoKey)
	if key == "" {
		key = uc.generateKey()
	} else if !videokey.Valid(key) {
		return nil, ErrInvalidVideoKey
	}

	exists, err := uc.contentRepo.KeyExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrVideoKeyTaken
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	content := &entity.Content{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		YoutubeURL:  url,
		VideoKey:    key,
		Visible:     visible,
		Category:    optional(input.Category),
	}

	if duration := strings.TrimSpace(input.Duration); duration != "" {
		formatted := youtube.FormatDuration(duration)
		content.Duration = &duration
		content.FormattedDuration = &formatted
	} else if details := uc.lookup(ctx, videoID); details != nil {
		content.Duration = &details.Duration
		content.FormattedDuration = &details.FormattedDuration
	}

	if err := uc.contentRepo.Create(ctx, content); err != nil {
		if errors.Is(err, persistent.ErrDuplicateVideoKey) {
			return nil, ErrVideoKeyTaken
		}
		return nil, err
	}

	uc.logger.Info("Content %s created with key %s", content.ID, content.VideoKey)
	return content, nil
}

func (uc *contentUseCase) UpdateContent(ctx context.Context, id string, update entity.ContentUpdate) (*entity.Content, error) {
	fields := make(map[string]interface{})

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ErrContentFieldsRequired
		}
		fields["title"] = title
	}
	if update.Description != nil {
		fields["description"] = strings.TrimSpace(*update.Description)
	}
	if update.Category != nil {
		fields["category"] = optional(*update.Category)
	}
	if update.Visible != nil {
		fields["visible"] = *update.Visible
	}

	if update.VideoKey != nil {
		key := strings.TrimSpace(*update.VideoKey)
		if !videokey.Valid(key) {
			return nil, ErrInvalidVideoKey
		}
		taken, err := uc.contentRepo.KeyUsedByOther(ctx, key, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrVideoKeyTaken
		}
		fields["video_key"] = key
	}

	if update.YoutubeURL != nil {
		url := strings.TrimSpace(*update.YoutubeURL)
		if url == "" {
			return nil, ErrContentFieldsRequired
		}
		videoID := youtube.ExtractID(url)
		if videoID == "" {
			return nil, ErrInvalidYoutubeURL
		}

		current, err := uc.GetContent(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.YoutubeURL != url {
			fields["youtube_url"] = url
			fields["duration"] = nil
			fields["formatted_duration"] = nil
			if details := uc.lookup(ctx, videoID); details != nil {
				fields["duration"] = details.Duration
				fields["formatted_duration"] = details.FormattedDuration
			}
		}
	}

	content, err := uc.contentRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		if errors.Is(err, persistent.ErrDuplicateVideoKey) {
			return nil, ErrVideoKeyTaken
		}
		return nil, err
	}
	return content, nil
}

func (uc *contentUseCase) DeleteContent(ctx context.Context, id string) error {
	if err := uc.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	uc.logger.Info("Content %s deleted", id)
	return nil
}

func (uc *contentUseCase) ToggleVisibility(ctx context.Context, id string) (bool, error) {
	visible, err := uc.contentRepo.ToggleVisibility(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return false, ErrContentNotFound
		}
		return false, err
	}
	return visible, nil
}

func (uc *contentUseCase) BulkSetVisibility(ctx context.Context, ids []string, visible bool) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoContentsSelected
	}
	return uc.contentRepo.BulkSetVisibility(ctx, ids, visible)
}

func (uc *contentUseCase) GenerateKey() string {
	return uc.generateKey()
}

func (uc *contentUseCase) YouTubeInfo(ctx context.Context, url string) (*entity.YouTubeInfo, error) {
	videoID := youtube.ExtractID(strings.TrimSpace(url))
	if videoID == "" {
		return nil, ErrInvalidYoutubeURL
	}

	info := &entity.YouTubeInfo{
		VideoID:      videoID,
		ThumbnailURL: youtube.ThumbnailURL(url),
	}
	if details := uc.lookup(ctx, videoID); details != nil {
		info.Duration = details.Duration
		info.FormattedDuration = details.FormattedDuration
		info.Title = details.Title
		info.Description = details.Description
	}
	return info, nil
}

// lookup never fails the caller; metadata is a convenience.
func (uc *contentUseCase) lookup(ctx context.Context, videoID string) *youtube.VideoDetails {
	if uc.metadata == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	details, err := uc.metadata.GetVideoDetails(ctx, videoID)
	if err != nil {
		uc.logger.Warn("Failed to fetch YouTube details for %s: %v", videoID, err)
		return nil
	}
	return details
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
