package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

func (r *contentRepository) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	var rows []models.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toReviews(ctx, rows), nil
}

func (r *contentRepository) GetReviewBySlug(ctx context.Context, slug string) (*entity.Review, error) {
	var row models.Review
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toReview(ctx, &row), nil
}

func (r *contentRepository) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	var row models.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toReview(ctx, &row), nil
}

func (r *contentRepository) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}

// SaveReview inserts or updates the review and replaces its genres, tags and
// images in one transaction. The generated id, slug, author and timestamps
// are written back into review.
func (r *contentRepository) SaveReview(ctx context.Context, review *entity.Review) error {
	row := ToReviewModel(review)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := resolveAuthorID(tx, review.AuthorID)
		if err != nil {
			return err
		}
		row.AuthorID = authorID

		stored, err := lookupStored(tx, models.Review{}.TableName(), row.ID)
		if err != nil {
			return err
		}

		if stored != nil {
			row.Slug = deriveSlug(row.Slug, stored.Slug, "")
			if row.Slug, err = uniqueSlug(tx, models.Review{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			row.CreatedAt = stored.CreatedAt
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		} else {
			row.Slug = deriveSlug(row.Slug, review.GameName, review.Title)
			if row.Slug, err = uniqueSlug(tx, models.Review{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		return replaceReviewCollections(tx, row.ID, review)
	})
	if err != nil {
		return err
	}

	review.ID = row.ID
	review.Slug = row.Slug
	review.Type = entity.PostTypeReview
	review.AuthorID = row.AuthorID
	review.CreatedAt = row.CreatedAt
	review.UpdatedAt = row.UpdatedAt
	if row.PlatinaGuide == nil {
		review.PlatinaGuide = nil
	}
	return nil
}

func replaceReviewCollections(tx *gorm.DB, reviewID string, review *entity.Review) error {
	if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewGenre{}).Error; err != nil {
		return err
	}
	ids, err := genreIDs(tx, normalizeNames(review.Genres))
	if err != nil {
		return err
	}
	for i, id := range ids {
		link := models.ReviewGenre{ReviewID: reviewID, GenreID: id, DisplayOrder: i}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewTag{}).Error; err != nil {
		return err
	}
	ids, err = tagIDs(tx, normalizeNames(review.Tags))
	if err != nil {
		return err
	}
	for i, id := range ids {
		link := models.ReviewTag{ReviewID: reviewID, TagID: id, DisplayOrder: i}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewImage{}).Error; err != nil {
		return err
	}
	order := 0
	for i, img := range review.AdditionalImages {
		if img.URL == "" {
			continue
		}
		row := models.ReviewImage{
			ReviewID:     reviewID,
			URL:          img.URL,
			Caption:      img.Caption,
			DisplayOrder: order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		review.AdditionalImages[i].ID = row.ID
		review.AdditionalImages[i].DisplayOrder = order
		order++
	}

	return nil
}

func (r *contentRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := countRows(tx, &models.Review{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Review{}).Error
	})
}
