package persistent

import (
	"platina/pkg/models"
	"platina/services/content/internal/entity"
)

func ToAuthorEntity(m *models.Author) *entity.Author {
	if m == nil {
		return nil
	}

	return &entity.Author{
		ID:        m.ID,
		Name:      m.Name,
		Avatar:    m.Avatar,
		PsnID:     m.PsnID,
		Instagram: m.Instagram,
		Twitter:   m.Twitter,
		Bio:       m.Bio,
		UserID:    m.UserID,
		Role:      entity.AuthorRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAuthorModel(e *entity.Author) *models.Author {
	if e == nil {
		return nil
	}

	return &models.Author{
		ID:        e.ID,
		Name:      e.Name,
		Avatar:    e.Avatar,
		PsnID:     e.PsnID,
		Instagram: e.Instagram,
		Twitter:   e.Twitter,
		Bio:       e.Bio,
		UserID:    e.UserID,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.AuthorRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         models.UserRole(e.Role),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToReviewModel maps the base row only. Collections are written by the
// join-table reconciliation in SaveReview.
func ToReviewModel(e *entity.Review) *models.Review {
	if e == nil {
		return nil
	}

	row := &models.Review{
		ID:         e.ID,
		Title:      e.Title,
		Slug:       e.Slug,
		Content:    e.Content,
		Image:      e.Image,
		Rating:     string(e.Rating),
		GameName:   e.GameName,
		AuthorID:   e.AuthorID,
		YoutubeURL: e.YoutubeURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}

	// A guide without tips is not worth storing.
	if e.PlatinaGuide != nil && e.PlatinaGuide.Tips != "" {
		row.PlatinaGuide = &models.PlatinaGuide{
			Difficulty:       e.PlatinaGuide.Difficulty,
			TimeToPlat:       e.PlatinaGuide.TimeToPlat,
			MissableTrophies: e.PlatinaGuide.MissableTrophies,
			OnlineRequired:   e.PlatinaGuide.OnlineRequired,
			Tips:             e.PlatinaGuide.Tips,
		}
	}

	return row
}

func toReviewBase(m *models.Review) *entity.Review {
	review := &entity.Review{
		Post: entity.Post{
			ID:         m.ID,
			Title:      m.Title,
			Slug:       m.Slug,
			Content:    m.Content,
			Image:      m.Image,
			Type:       entity.PostTypeReview,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
			AuthorID:   m.AuthorID,
			YoutubeURL: m.YoutubeURL,
		},
		Rating:           entity.TrophyRating(m.Rating),
		GameName:         m.GameName,
		Genres:           []string{},
		Tags:             []string{},
		AdditionalImages: []entity.AdditionalImage{},
	}

	if m.PlatinaGuide != nil {
		review.PlatinaGuide = &entity.PlatinaGuide{
			Difficulty:       m.PlatinaGuide.Difficulty,
			TimeToPlat:       m.PlatinaGuide.TimeToPlat,
			MissableTrophies: m.PlatinaGuide.MissableTrophies,
			OnlineRequired:   m.PlatinaGuide.OnlineRequired,
			Tips:             m.PlatinaGuide.Tips,
		}
	}

	return review
}

func ToNewsModel(e *entity.News) *models.News {
	if e == nil {
		return nil
	}

	return &models.News{
		ID:         e.ID,
		Title:      e.Title,
		Subtitle:   e.Subtitle,
		Slug:       e.Slug,
		Content:    e.Content,
		Image:      e.Image,
		AuthorID:   e.AuthorID,
		YoutubeURL: e.YoutubeURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toNewsBase(m *models.News) *entity.News {
	return &entity.News{
		Post: entity.Post{
			ID:         m.ID,
			Title:      m.Title,
			Slug:       m.Slug,
			Content:    m.Content,
			Image:      m.Image,
			Type:       entity.PostTypeNews,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
			AuthorID:   m.AuthorID,
			YoutubeURL: m.YoutubeURL,
		},
		Subtitle:        m.Subtitle,
		AdditionalMedia: []entity.NewsMedia{},
	}
}

func ToGuideModel(e *entity.Guide) *models.Guide {
	if e == nil {
		return nil
	}

	return &models.Guide{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Content:       e.Content,
		Image:         e.Image,
		GameName:      e.GameName,
		Difficulty:    e.Difficulty,
		EstimatedTime: e.EstimatedTime,
		AuthorID:      e.AuthorID,
		YoutubeURL:    e.YoutubeURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toGuideBase(m *models.Guide) *entity.Guide {
	return &entity.Guide{
		Post: entity.Post{
			ID:         m.ID,
			Title:      m.Title,
			Slug:       m.Slug,
			Content:    m.Content,
			Image:      m.Image,
			Type:       entity.PostTypeGuide,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
			AuthorID:   m.AuthorID,
			YoutubeURL: m.YoutubeURL,
		},
		GameName:      m.GameName,
		Difficulty:    m.Difficulty,
		EstimatedTime: m.EstimatedTime,
		Tags:          []string{},
		Steps:         []entity.GuideStep{},
	}
}

func ToArticleModel(e *entity.Article) *models.Article {
	if e == nil {
		return nil
	}

	return &models.Article{
		ID:         e.ID,
		Title:      e.Title,
		Subtitle:   e.Subtitle,
		Slug:       e.Slug,
		Content:    e.Content,
		Image:      e.Image,
		Category:   e.Category,
		AuthorID:   e.AuthorID,
		YoutubeURL: e.YoutubeURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toArticleBase(m *models.Article) *entity.Article {
	return &entity.Article{
		Post: entity.Post{
			ID:         m.ID,
			Title:      m.Title,
			Slug:       m.Slug,
			Content:    m.Content,
			Image:      m.Image,
			Type:       entity.PostTypeArticle,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
			AuthorID:   m.AuthorID,
			YoutubeURL: m.YoutubeURL,
		},
		Subtitle:     m.Subtitle,
		Category:     m.Category,
		ArticleMedia: []entity.NewsMedia{},
	}
}

// ToPlatinadorTipModel never stores a negative helpful count.
func ToPlatinadorTipModel(e *entity.PlatinadorTip) *models.PlatinadorTip {
	if e == nil {
		return nil
	}

	helpful := e.HelpfulCount
	if helpful < 0 {
		helpful = 0
	}
	return &models.PlatinadorTip{
		ID:           e.ID,
		Title:        e.Title,
		Slug:         e.Slug,
		Content:      e.Content,
		Image:        e.Image,
		Category:     e.Category,
		HelpfulCount: helpful,
		AuthorID:     e.AuthorID,
		YoutubeURL:   e.YoutubeURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toPlatinadorTipBase(m *models.PlatinadorTip) *entity.PlatinadorTip {
	return &entity.PlatinadorTip{
		Post: entity.Post{
			ID:         m.ID,
			Title:      m.Title,
			Slug:       m.Slug,
			Content:    m.Content,
			Image:      m.Image,
			Type:       entity.PostTypePlatinador,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
			AuthorID:   m.AuthorID,
			YoutubeURL: m.YoutubeURL,
		},
		Category:        m.Category,
		HelpfulCount:    m.HelpfulCount,
		PlatinadorMedia: []entity.NewsMedia{},
	}
}

func toAdditionalImage(m *models.ReviewImage) entity.AdditionalImage {
	return entity.AdditionalImage{
		ID:           m.ID,
		URL:          m.URL,
		Caption:      m.Caption,
		DisplayOrder: m.DisplayOrder,
	}
}

func toNewsMedia(m *models.NewsMedia) entity.NewsMedia {
	return entity.NewsMedia{
		ID:           m.ID,
		Type:         entity.MediaType(m.Type),
		URL:          m.URL,
		Caption:      m.Caption,
		DisplayOrder: m.DisplayOrder,
	}
}

func toGuideStep(m *models.GuideStep) entity.GuideStep {
	return entity.GuideStep{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Image:        m.Image,
		Video:        m.Video,
		DisplayOrder: m.DisplayOrder,
	}
}

func toArticleMedia(m *models.ArticleMedia) entity.NewsMedia {
	return entity.NewsMedia{
		ID:           m.ID,
		Type:         entity.MediaType(m.Type),
		URL:          m.URL,
		Caption:      m.Caption,
		DisplayOrder: m.DisplayOrder,
	}
}

func toPlatinadorMedia(m *models.PlatinadorMedia) entity.NewsMedia {
	return entity.NewsMedia{
		ID:           m.ID,
		Type:         entity.MediaType(m.Type),
		URL:          m.URL,
		Caption:      m.Caption,
		DisplayOrder: m.DisplayOrder,
	}
}
