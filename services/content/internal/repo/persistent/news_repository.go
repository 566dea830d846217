package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

func (r *contentRepository) ListNews(ctx context.Context) ([]*entity.News, error) {
	var rows []models.News
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toNewsList(ctx, rows), nil
}

func (r *contentRepository) GetNewsBySlug(ctx context.Context, slug string) (*entity.News, error) {
	var row models.News
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toNews(ctx, &row), nil
}

func (r *contentRepository) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	var row models.News
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toNews(ctx, &row), nil
}

// SaveNews slugs news by title; there is no game name to prefer.
func (r *contentRepository) SaveNews(ctx context.Context, news *entity.News) error {
	row := ToNewsModel(news)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := resolveAuthorID(tx, news.AuthorID)
		if err != nil {
			return err
		}
		row.AuthorID = authorID

		stored, err := lookupStored(tx, models.News{}.TableName(), row.ID)
		if err != nil {
			return err
		}

		if stored != nil {
			row.Slug = deriveSlug(row.Slug, stored.Slug, "")
			if row.Slug, err = uniqueSlug(tx, models.News{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			row.CreatedAt = stored.CreatedAt
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		} else {
			row.Slug = deriveSlug(row.Slug, news.Title, "")
			if row.Slug, err = uniqueSlug(tx, models.News{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("news_id = ?", row.ID).Delete(&models.NewsMedia{}).Error; err != nil {
			return err
		}
		order := 0
		for i, item := range news.AdditionalMedia {
			if item.URL == "" {
				continue
			}
			kind := mediaType(item.Type)
			media := models.NewsMedia{
				NewsID:       row.ID,
				Type:         string(kind),
				URL:          item.URL,
				Caption:      item.Caption,
				DisplayOrder: order,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
			news.AdditionalMedia[i].ID = media.ID
			news.AdditionalMedia[i].Type = kind
			news.AdditionalMedia[i].DisplayOrder = order
			order++
		}
		return nil
	})
	if err != nil {
		return err
	}

	news.ID = row.ID
	news.Slug = row.Slug
	news.Type = entity.PostTypeNews
	news.AuthorID = row.AuthorID
	news.CreatedAt = row.CreatedAt
	news.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *contentRepository) DeleteNews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := countRows(tx, &models.News{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("news_id = ?", id).Delete(&models.NewsMedia{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.News{}).Error
	})
}
