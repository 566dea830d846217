package usecase

import (
	"context"
	"io"
	"time"

	"platina/pkg/logger"
	"platina/pkg/queue"
	"platina/pkg/retry"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockContentStore is a mock implementation of ContentStore
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockContentStore) GetReviewBySlug(ctx context.Context, slug string) (*entity.Review, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockContentStore) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockContentStore) SaveReview(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockContentStore) DeleteReview(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) CountReviews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStore) ListNews(ctx context.Context) ([]*entity.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.News), args.Error(1)
}

func (m *MockContentStore) GetNewsBySlug(ctx context.Context, slug string) (*entity.News, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockContentStore) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockContentStore) SaveNews(ctx context.Context, news *entity.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockContentStore) DeleteNews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) ListGuides(ctx context.Context) ([]*entity.Guide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Guide), args.Error(1)
}

func (m *MockContentStore) GetGuideBySlug(ctx context.Context, slug string) (*entity.Guide, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockContentStore) GetGuideByID(ctx context.Context, id string) (*entity.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockContentStore) SaveGuide(ctx context.Context, guide *entity.Guide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockContentStore) DeleteGuide(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockContentStore) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockContentStore) GetArticleByID(ctx context.Context, id string) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockContentStore) SaveArticle(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockContentStore) DeleteArticle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) ListPlatinadorTips(ctx context.Context) ([]*entity.PlatinadorTip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PlatinadorTip), args.Error(1)
}

func (m *MockContentStore) GetPlatinadorTipBySlug(ctx context.Context, slug string) (*entity.PlatinadorTip, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatinadorTip), args.Error(1)
}

func (m *MockContentStore) GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatinadorTip), args.Error(1)
}

func (m *MockContentStore) SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockContentStore) DeletePlatinadorTip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockContentStore) GetAuthorByID(ctx context.Context, id string) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockContentStore) GetAuthorByUserID(ctx context.Context, userID string) (*entity.Author, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockContentStore) SaveAuthor(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockContentStore) DeleteAuthor(ctx context.Context, id string) (*string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

var _ ContentStore = (*MockContentStore)(nil)
var _ ContentStore = (persistent.ContentRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishContentEvent(ctx context.Context, routingKey string, event queue.ContentEvent) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) UploadFile(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

type MockAuthorPostCache struct {
	mock.Mock
}

func (m *MockAuthorPostCache) InvalidateAuthor(ctx context.Context, authorID string) {
	m.Called(ctx, authorID)
}

var _ AuthorPostCache = (*MockAuthorPostCache)(nil)

// fastRetrier keeps the production attempt count with millisecond waits.
func fastRetrier() *retry.Retrier {
	return retry.New(retry.Policy{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
	}, logger.NewNop())
}
