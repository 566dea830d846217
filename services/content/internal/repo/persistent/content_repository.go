package persistent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"platina/pkg/logger"
	"platina/pkg/models"
	"platina/pkg/slug"
	"platina/services/content/internal/entity"

	"gorm.io/gorm"
)

type ContentRepository interface {
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	GetReviewBySlug(ctx context.Context, slug string) (*entity.Review, error)
	GetReviewByID(ctx context.Context, id string) (*entity.Review, error)
	SaveReview(ctx context.Context, review *entity.Review) error
	DeleteReview(ctx context.Context, id string) error
	CountReviews(ctx context.Context) (int64, error)

	ListNews(ctx context.Context) ([]*entity.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*entity.News, error)
	GetNewsByID(ctx context.Context, id string) (*entity.News, error)
	SaveNews(ctx context.Context, news *entity.News) error
	DeleteNews(ctx context.Context, id string) error

	ListGuides(ctx context.Context) ([]*entity.Guide, error)
	GetGuideBySlug(ctx context.Context, slug string) (*entity.Guide, error)
	GetGuideByID(ctx context.Context, id string) (*entity.Guide, error)
	SaveGuide(ctx context.Context, guide *entity.Guide) error
	DeleteGuide(ctx context.Context, id string) error

	ListArticles(ctx context.Context) ([]*entity.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error)
	GetArticleByID(ctx context.Context, id string) (*entity.Article, error)
	SaveArticle(ctx context.Context, article *entity.Article) error
	DeleteArticle(ctx context.Context, id string) error

	ListPlatinadorTips(ctx context.Context) ([]*entity.PlatinadorTip, error)
	GetPlatinadorTipBySlug(ctx context.Context, slug string) (*entity.PlatinadorTip, error)
	GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error)
	SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error
	DeletePlatinadorTip(ctx context.Context, id string) error

	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthorByID(ctx context.Context, id string) (*entity.Author, error)
	GetAuthorByUserID(ctx context.Context, userID string) (*entity.Author, error)
	SaveAuthor(ctx context.Context, author *entity.Author) error
	// DeleteAuthor returns the id of the login linked to the removed author, if any.
	DeleteAuthor(ctx context.Context, id string) (*string, error)
}

type contentRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewContentRepository(db *gorm.DB, log *logger.Logger) ContentRepository {
	if log == nil {
		log = logger.NewNop()
	}
	return &contentRepository{db: db, logger: log}
}

// resolveAuthorID keeps an explicit author and otherwise falls back to the
// default author, creating it on first use.
func resolveAuthorID(tx *gorm.DB, authorID *string) (*string, error) {
	if authorID != nil && *authorID != "" {
		id := *authorID
		return &id, nil
	}

	var author models.Author
	err := tx.Where(models.Author{Name: entity.DefaultAuthorName}).
		Attrs(models.Author{Role: string(entity.AuthorRoleAdmin)}).
		FirstOrCreate(&author).Error
	if err != nil {
		return nil, err
	}
	return &author.ID, nil
}

type identity struct {
	ID        string
	Slug      string
	CreatedAt time.Time
}

// lookupStored loads the identity columns of a stored post row. A nil result
// means the row does not exist yet and must be inserted.
func lookupStored(tx *gorm.DB, table, id string) (*identity, error) {
	if id == "" {
		return nil, nil
	}

	var rows []identity
	err := tx.Table(table).Select("id", "slug", "created_at").Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func deriveSlug(current, preferred, fallback string) string {
	if current != "" {
		return current
	}
	if strings.TrimSpace(preferred) != "" {
		return slug.Make(preferred)
	}
	return slug.Make(fallback)
}

// uniqueSlug returns base, or base-2, base-3 and so on when another row of
// table already holds it. The row with id itself never conflicts.
func uniqueSlug(tx *gorm.DB, table, base, id string) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		query := tx.Table(table).Where("slug = ?", candidate)
		if id != "" {
			query = query.Where("id <> ?", id)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// normalizeNames trims, drops blanks and removes duplicates while keeping the
// first occurrence's position.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func genreIDs(tx *gorm.DB, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		var genre models.Genre
		if err := tx.Where(models.Genre{Name: name}).FirstOrCreate(&genre).Error; err != nil {
			return nil, err
		}
		ids = append(ids, genre.ID)
	}
	return ids, nil
}

func tagIDs(tx *gorm.DB, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

// mediaType stores anything but an explicit video as an image.
func mediaType(t entity.MediaType) entity.MediaType {
	if t == entity.MediaVideo {
		return t
	}
	return entity.MediaImage
}

func countRows(tx *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
