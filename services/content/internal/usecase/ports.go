package usecase

import (
	"context"
	"io"

	"platina/pkg/queue"
	"platina/services/content/internal/entity"
)

// ContentSource is the read side shared by the live database and the sample
// content.
type ContentSource interface {
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	GetReviewBySlug(ctx context.Context, slug string) (*entity.Review, error)
	GetReviewByID(ctx context.Context, id string) (*entity.Review, error)

	ListNews(ctx context.Context) ([]*entity.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*entity.News, error)
	GetNewsByID(ctx context.Context, id string) (*entity.News, error)

	ListGuides(ctx context.Context) ([]*entity.Guide, error)
	GetGuideBySlug(ctx context.Context, slug string) (*entity.Guide, error)
	GetGuideByID(ctx context.Context, id string) (*entity.Guide, error)

	ListArticles(ctx context.Context) ([]*entity.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error)
	GetArticleByID(ctx context.Context, id string) (*entity.Article, error)

	ListPlatinadorTips(ctx context.Context) ([]*entity.PlatinadorTip, error)
	GetPlatinadorTipBySlug(ctx context.Context, slug string) (*entity.PlatinadorTip, error)
	GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error)

	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthorByID(ctx context.Context, id string) (*entity.Author, error)
}

type ContentStore interface {
	ContentSource

	SaveReview(ctx context.Context, review *entity.Review) error
	DeleteReview(ctx context.Context, id string) error
	CountReviews(ctx context.Context) (int64, error)

	SaveNews(ctx context.Context, news *entity.News) error
	DeleteNews(ctx context.Context, id string) error

	SaveGuide(ctx context.Context, guide *entity.Guide) error
	DeleteGuide(ctx context.Context, id string) error

	SaveArticle(ctx context.Context, article *entity.Article) error
	DeleteArticle(ctx context.Context, id string) error

	SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error
	DeletePlatinadorTip(ctx context.Context, id string) error

	GetAuthorByUserID(ctx context.Context, userID string) (*entity.Author, error)
	SaveAuthor(ctx context.Context, author *entity.Author) error
	DeleteAuthor(ctx context.Context, id string) (*string, error)
}

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, routingKey string, event queue.ContentEvent) error
}

type FileStorage interface {
	UploadFile(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
}

// AuthorPostCache drops cached posts that embed an author's profile.
type AuthorPostCache interface {
	InvalidateAuthor(ctx context.Context, authorID string)
}
