package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

func (r *contentRepository) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	var rows []models.Article
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toArticles(ctx, rows), nil
}

func (r *contentRepository) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var row models.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toArticle(ctx, &row), nil
}

func (r *contentRepository) GetArticleByID(ctx context.Context, id string) (*entity.Article, error) {
	var row models.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toArticle(ctx, &row), nil
}

// SaveArticle slugs articles by title and replaces their media in order.
func (r *contentRepository) SaveArticle(ctx context.Context, article *entity.Article) error {
	row := ToArticleModel(article)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := resolveAuthorID(tx, article.AuthorID)
		if err != nil {
			return err
		}
		row.AuthorID = authorID

		stored, err := lookupStored(tx, models.Article{}.TableName(), row.ID)
		if err != nil {
			return err
		}

		if stored != nil {
			row.Slug = deriveSlug(row.Slug, stored.Slug, "")
			if row.Slug, err = uniqueSlug(tx, models.Article{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			row.CreatedAt = stored.CreatedAt
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		} else {
			row.Slug = deriveSlug(row.Slug, article.Title, "")
			if row.Slug, err = uniqueSlug(tx, models.Article{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("article_id = ?", row.ID).Delete(&models.ArticleMedia{}).Error; err != nil {
			return err
		}
		order := 0
		for i, item := range article.ArticleMedia {
			if item.URL == "" {
				continue
			}
			kind := mediaType(item.Type)
			media := models.ArticleMedia{
				ArticleID:    row.ID,
				Type:         string(kind),
				URL:          item.URL,
				Caption:      item.Caption,
				DisplayOrder: order,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
			article.ArticleMedia[i].ID = media.ID
			article.ArticleMedia[i].Type = kind
			article.ArticleMedia[i].DisplayOrder = order
			order++
		}
		return nil
	})
	if err != nil {
		return err
	}

	article.ID = row.ID
	article.Slug = row.Slug
	article.Type = entity.PostTypeArticle
	article.AuthorID = row.AuthorID
	article.CreatedAt = row.CreatedAt
	article.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *contentRepository) DeleteArticle(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := countRows(tx, &models.Article{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleMedia{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Article{}).Error
	})
}
