package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

const (
	minDifficulty = 1
	maxDifficulty = 10
)

func (r *contentRepository) ListGuides(ctx context.Context) ([]*entity.Guide, error) {
	var rows []models.Guide
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toGuides(ctx, rows), nil
}

func (r *contentRepository) GetGuideBySlug(ctx context.Context, slug string) (*entity.Guide, error) {
	var row models.Guide
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toGuide(ctx, &row), nil
}

func (r *contentRepository) GetGuideByID(ctx context.Context, id string) (*entity.Guide, error) {
	var row models.Guide
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toGuide(ctx, &row), nil
}

func (r *contentRepository) SaveGuide(ctx context.Context, guide *entity.Guide) error {
	row := ToGuideModel(guide)
	row.Difficulty = clampDifficulty(row.Difficulty)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := resolveAuthorID(tx, guide.AuthorID)
		if err != nil {
			return err
		}
		row.AuthorID = authorID

		stored, err := lookupStored(tx, models.Guide{}.TableName(), row.ID)
		if err != nil {
			return err
		}

		if stored != nil {
			row.Slug = deriveSlug(row.Slug, stored.Slug, "")
			if row.Slug, err = uniqueSlug(tx, models.Guide{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			row.CreatedAt = stored.CreatedAt
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		} else {
			row.Slug = deriveSlug(row.Slug, guide.GameName, guide.Title)
			if row.Slug, err = uniqueSlug(tx, models.Guide{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		return replaceGuideCollections(tx, row.ID, guide)
	})
	if err != nil {
		return err
	}

	guide.ID = row.ID
	guide.Slug = row.Slug
	guide.Type = entity.PostTypeGuide
	guide.Difficulty = row.Difficulty
	guide.AuthorID = row.AuthorID
	guide.CreatedAt = row.CreatedAt
	guide.UpdatedAt = row.UpdatedAt
	return nil
}

func replaceGuideCollections(tx *gorm.DB, guideID string, guide *entity.Guide) error {
	if err := tx.Where("guide_id = ?", guideID).Delete(&models.GuideTag{}).Error; err != nil {
		return err
	}
	ids, err := tagIDs(tx, normalizeNames(guide.Tags))
	if err != nil {
		return err
	}
	for i, id := range ids {
		link := models.GuideTag{GuideID: guideID, TagID: id, DisplayOrder: i}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("guide_id = ?", guideID).Delete(&models.GuideStep{}).Error; err != nil {
		return err
	}
	for i, step := range guide.Steps {
		row := models.GuideStep{
			GuideID:      guideID,
			Title:        step.Title,
			Description:  step.Description,
			Image:        step.Image,
			Video:        step.Video,
			DisplayOrder: i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		guide.Steps[i].ID = row.ID
		guide.Steps[i].DisplayOrder = i
	}

	return nil
}

// DeleteGuide removes steps and tag links explicitly; the schema cascades too
// but the guide must not leave orphans on stores without foreign keys.
func (r *contentRepository) DeleteGuide(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := countRows(tx, &models.Guide{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("guide_id = ?", id).Delete(&models.GuideStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("guide_id = ?", id).Delete(&models.GuideTag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Guide{}).Error
	})
}

func clampDifficulty(d int) int {
	if d < minDifficulty {
		return minDifficulty
	}
	if d > maxDifficulty {
		return maxDifficulty
	}
	return d
}
