package persistent

import (
	"context"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

func (r *contentRepository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	var rows []models.Author
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	authors := make([]*entity.Author, len(rows))
	for i := range rows {
		authors[i] = ToAuthorEntity(&rows[i])
	}
	return authors, nil
}

func (r *contentRepository) GetAuthorByID(ctx context.Context, id string) (*entity.Author, error) {
	var row models.Author
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToAuthorEntity(&row), nil
}

func (r *contentRepository) GetAuthorByUserID(ctx context.Context, userID string) (*entity.Author, error) {
	var row models.Author
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToAuthorEntity(&row), nil
}

func (r *contentRepository) SaveAuthor(ctx context.Context, author *entity.Author) error {
	row := ToAuthorModel(author)
	if row.Role == "" {
		row.Role = string(entity.AuthorRoleAuthor)
	}
	if row.UserID != nil && *row.UserID == "" {
		row.UserID = nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists := false
		if row.ID != "" {
			var stored models.Author
			err := tx.Select("id", "created_at").Where("id = ?", row.ID).Limit(1).Find(&stored).Error
			if err != nil {
				return err
			}
			if stored.ID != "" {
				exists = true
				row.CreatedAt = stored.CreatedAt
			}
		}

		if exists {
			return tx.Save(row).Error
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return err
	}

	author.ID = row.ID
	author.Role = entity.AuthorRole(row.Role)
	author.UserID = row.UserID
	author.CreatedAt = row.CreatedAt
	author.UpdatedAt = row.UpdatedAt
	return nil
}

// DeleteAuthor detaches the author from its posts before removing it.
func (r *contentRepository) DeleteAuthor(ctx context.Context, id string) (*string, error) {
	var userID *string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Author
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return notFound(err)
		}
		userID = row.UserID

		for _, model := range []interface{}{&models.Review{}, &models.News{}, &models.Guide{}} {
			if err := tx.Model(model).Where("author_id = ?", id).Update("author_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&models.Author{}).Error
	})
	if err != nil {
		return nil, err
	}
	return userID, nil
}
