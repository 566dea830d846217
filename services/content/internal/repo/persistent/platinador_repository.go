package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

func (r *contentRepository) ListPlatinadorTips(ctx context.Context) ([]*entity.PlatinadorTip, error) {
	var rows []models.PlatinadorTip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.toPlatinadorTips(ctx, rows), nil
}

func (r *contentRepository) GetPlatinadorTipBySlug(ctx context.Context, slug string) (*entity.PlatinadorTip, error) {
	var row models.PlatinadorTip
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toPlatinadorTip(ctx, &row), nil
}

func (r *contentRepository) GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error) {
	var row models.PlatinadorTip
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return r.toPlatinadorTip(ctx, &row), nil
}

func (r *contentRepository) SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error {
	row := ToPlatinadorTipModel(tip)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorID, err := resolveAuthorID(tx, tip.AuthorID)
		if err != nil {
			return err
		}
		row.AuthorID = authorID

		stored, err := lookupStored(tx, models.PlatinadorTip{}.TableName(), row.ID)
		if err != nil {
			return err
		}

		if stored != nil {
			row.Slug = deriveSlug(row.Slug, stored.Slug, "")
			if row.Slug, err = uniqueSlug(tx, models.PlatinadorTip{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			row.CreatedAt = stored.CreatedAt
			if err := tx.Save(row).Error; err != nil {
				return err
			}
		} else {
			row.Slug = deriveSlug(row.Slug, tip.Title, "")
			if row.Slug, err = uniqueSlug(tx, models.PlatinadorTip{}.TableName(), row.Slug, row.ID); err != nil {
				return err
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("tip_id = ?", row.ID).Delete(&models.PlatinadorMedia{}).Error; err != nil {
			return err
		}
		order := 0
		for i, item := range tip.PlatinadorMedia {
			if item.URL == "" {
				continue
			}
			kind := mediaType(item.Type)
			media := models.PlatinadorMedia{
				TipID:        row.ID,
				Type:         string(kind),
				URL:          item.URL,
				Caption:      item.Caption,
				DisplayOrder: order,
			}
			if err := tx.Create(&media).Error; err != nil {
				return err
			}
			tip.PlatinadorMedia[i].ID = media.ID
			tip.PlatinadorMedia[i].Type = kind
			tip.PlatinadorMedia[i].DisplayOrder = order
			order++
		}
		return nil
	})
	if err != nil {
		return err
	}

	tip.ID = row.ID
	tip.Slug = row.Slug
	tip.Type = entity.PostTypePlatinador
	tip.HelpfulCount = row.HelpfulCount
	tip.AuthorID = row.AuthorID
	tip.CreatedAt = row.CreatedAt
	tip.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *contentRepository) DeletePlatinadorTip(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := countRows(tx, &models.PlatinadorTip{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("tip_id = ?", id).Delete(&models.PlatinadorMedia{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.PlatinadorTip{}).Error
	})
}
