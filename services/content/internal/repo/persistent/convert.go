package persistent

import (
	"context"
	"fmt"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// listConcurrency bounds how many rows of one listing are assembled at once.
const listConcurrency = 4

// Converters turn a base row into a full entity by running the nested
// lookups concurrently. They are best-effort: a failed lookup is logged and
// leaves its collection empty, the conversion itself never fails.

func (r *contentRepository) toReview(ctx context.Context, m *models.Review) *entity.Review {
	review := toReviewBase(m)
	db := r.db.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		author, err := lookupAuthor(db, m.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		review.Author = author
		return nil
	})
	g.Go(func() error {
		genres, err := lookupNames(db, "genres", "review_genres", "genre_id", "review_id", m.ID)
		if err != nil {
			return fmt.Errorf("genres: %w", err)
		}
		review.Genres = genres
		return nil
	})
	g.Go(func() error {
		tags, err := lookupNames(db, "tags", "review_tags", "tag_id", "review_id", m.ID)
		if err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		review.Tags = tags
		return nil
	})
	g.Go(func() error {
		var rows []models.ReviewImage
		if err := db.Where("review_id = ?", m.ID).Order("display_order ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("additional images: %w", err)
		}
		images := make([]entity.AdditionalImage, len(rows))
		for i := range rows {
			images[i] = toAdditionalImage(&rows[i])
		}
		review.AdditionalImages = images
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Partial review %s returned, lookup failed: %v", m.ID, err)
	}
	return review
}

func (r *contentRepository) toNews(ctx context.Context, m *models.News) *entity.News {
	news := toNewsBase(m)
	db := r.db.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		author, err := lookupAuthor(db, m.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		news.Author = author
		return nil
	})
	g.Go(func() error {
		var rows []models.NewsMedia
		if err := db.Where("news_id = ?", m.ID).Order("display_order ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("additional media: %w", err)
		}
		media := make([]entity.NewsMedia, len(rows))
		for i := range rows {
			media[i] = toNewsMedia(&rows[i])
		}
		news.AdditionalMedia = media
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Partial news %s returned, lookup failed: %v", m.ID, err)
	}
	return news
}

func (r *contentRepository) toGuide(ctx context.Context, m *models.Guide) *entity.Guide {
	guide := toGuideBase(m)
	db := r.db.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		author, err := lookupAuthor(db, m.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		guide.Author = author
		return nil
	})
	g.Go(func() error {
		tags, err := lookupNames(db, "tags", "guide_tags", "tag_id", "guide_id", m.ID)
		if err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		guide.Tags = tags
		return nil
	})
	g.Go(func() error {
		var rows []models.GuideStep
		if err := db.Where("guide_id = ?", m.ID).Order("display_order ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		steps := make([]entity.GuideStep, len(rows))
		for i := range rows {
			steps[i] = toGuideStep(&rows[i])
		}
		guide.Steps = steps
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Partial guide %s returned, lookup failed: %v", m.ID, err)
	}
	return guide
}

func (r *contentRepository) toArticle(ctx context.Context, m *models.Article) *entity.Article {
	article := toArticleBase(m)
	db := r.db.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		author, err := lookupAuthor(db, m.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		article.Author = author
		return nil
	})
	g.Go(func() error {
		var rows []models.ArticleMedia
		if err := db.Where("article_id = ?", m.ID).Order("display_order ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("article media: %w", err)
		}
		media := make([]entity.NewsMedia, len(rows))
		for i := range rows {
			media[i] = toArticleMedia(&rows[i])
		}
		article.ArticleMedia = media
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Partial article %s returned, lookup failed: %v", m.ID, err)
	}
	return article
}

func (r *contentRepository) toPlatinadorTip(ctx context.Context, m *models.PlatinadorTip) *entity.PlatinadorTip {
	tip := toPlatinadorTipBase(m)
	db := r.db.WithContext(ctx)

	var g errgroup.Group
	g.Go(func() error {
		author, err := lookupAuthor(db, m.AuthorID)
		if err != nil {
			return fmt.Errorf("author: %w", err)
		}
		tip.Author = author
		return nil
	})
	g.Go(func() error {
		var rows []models.PlatinadorMedia
		if err := db.Where("tip_id = ?", m.ID).Order("display_order ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("platinador media: %w", err)
		}
		media := make([]entity.NewsMedia, len(rows))
		for i := range rows {
			media[i] = toPlatinadorMedia(&rows[i])
		}
		tip.PlatinadorMedia = media
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Warn("Partial platinador tip %s returned, lookup failed: %v", m.ID, err)
	}
	return tip
}

// lookupAuthor returns nil without error when the post has no author or the
// referenced author no longer exists.
func lookupAuthor(db *gorm.DB, authorID *string) (*entity.Author, error) {
	if authorID == nil || *authorID == "" {
		return nil, nil
	}

	var row models.Author
	err := db.Where("id = ?", *authorID).Limit(1).Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}
	return ToAuthorEntity(&row), nil
}

// lookupNames reads the names linked to parentID through a join table, in
// display order. table is "genres" or "tags".
func lookupNames(db *gorm.DB, table, joinTable, refColumn, parentColumn, parentID string) ([]string, error) {
	names := []string{}
	err := db.Table(table).
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id", joinTable, joinTable, refColumn, table)).
		Where(fmt.Sprintf("%s.%s = ?", joinTable, parentColumn), parentID).
		Order(fmt.Sprintf("%s.display_order ASC", joinTable)).
		Pluck(table+".name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *contentRepository) toReviews(ctx context.Context, rows []models.Review) []*entity.Review {
	out := make([]*entity.Review, len(rows))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			out[i] = r.toReview(ctx, &rows[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *contentRepository) toNewsList(ctx context.Context, rows []models.News) []*entity.News {
	out := make([]*entity.News, len(rows))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			out[i] = r.toNews(ctx, &rows[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *contentRepository) toGuides(ctx context.Context, rows []models.Guide) []*entity.Guide {
	out := make([]*entity.Guide, len(rows))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			out[i] = r.toGuide(ctx, &rows[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *contentRepository) toArticles(ctx context.Context, rows []models.Article) []*entity.Article {
	out := make([]*entity.Article, len(rows))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			out[i] = r.toArticle(ctx, &rows[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *contentRepository) toPlatinadorTips(ctx context.Context, rows []models.PlatinadorTip) []*entity.PlatinadorTip {
	out := make([]*entity.PlatinadorTip, len(rows))
	var g errgroup.Group
	g.SetLimit(listConcurrency)
	for i := range rows {
		i := i
		g.Go(func() error {
			out[i] = r.toPlatinadorTip(ctx, &rows[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}
