package persistent

import (
	"pilates-club/services/catalog/internal/entity"
	"pilates-club/services/catalog/internal/model"
)

func ToContentEntity(m *model.ContentModel) *entity.Content {
	if m == nil {
		return nil
	}

	return &entity.Content{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		YoutubeURL:        m.YoutubeURL,
		VideoKey:          m.VideoKey,
		Visible:           m.Visible,
		Category:          m.Category,
		Duration:          m.Duration,
		FormattedDuration: m.FormattedDuration,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToWatchLogModel(e *entity.WatchLog) *model.WatchLogModel {
	if e == nil {
		return nil
	}

	return &model.WatchLogModel{
		ID:        e.ID,
		MemberID:  e.MemberID,
		ContentID: e.ContentID,
		WatchedAt: e.WatchedAt,
	}
}
