package http

import (
	"context"

	"platina/services/content/internal/entity"
	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockContentUseCase is a mock implementation of ContentUseCase
type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) LiveBackend() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockContentUseCase) ListReviews(ctx context.Context) []*entity.Review {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.Review)
}

func (m *MockContentUseCase) GetReview(ctx context.Context, slug string) (*entity.Review, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockContentUseCase) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockContentUseCase) SaveReview(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockContentUseCase) DeleteReview(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListNews(ctx context.Context) []*entity.News {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.News)
}

func (m *MockContentUseCase) GetNews(ctx context.Context, slug string) (*entity.News, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockContentUseCase) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}

func (m *MockContentUseCase) SaveNews(ctx context.Context, news *entity.News) error {
	args := m.Called(ctx, news)
	return args.Error(0)
}

func (m *MockContentUseCase) DeleteNews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListGuides(ctx context.Context) []*entity.Guide {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.Guide)
}

func (m *MockContentUseCase) GetGuide(ctx context.Context, slug string) (*entity.Guide, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockContentUseCase) GetGuideByID(ctx context.Context, id string) (*entity.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Guide), args.Error(1)
}

func (m *MockContentUseCase) SaveGuide(ctx context.Context, guide *entity.Guide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockContentUseCase) DeleteGuide(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListArticles(ctx context.Context) []*entity.Article {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.Article)
}

func (m *MockContentUseCase) GetArticle(ctx context.Context, slug string) (*entity.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockContentUseCase) GetArticleByID(ctx context.Context, id string) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockContentUseCase) SaveArticle(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockContentUseCase) DeleteArticle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListPlatinadorTips(ctx context.Context) []*entity.PlatinadorTip {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.PlatinadorTip)
}

func (m *MockContentUseCase) GetPlatinadorTip(ctx context.Context, slug string) (*entity.PlatinadorTip, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatinadorTip), args.Error(1)
}

func (m *MockContentUseCase) GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatinadorTip), args.Error(1)
}

func (m *MockContentUseCase) SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockContentUseCase) DeletePlatinadorTip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListAllPosts(ctx context.Context) []entity.Content {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]entity.Content)
}

func (m *MockContentUseCase) ListAuthors(ctx context.Context) []*entity.Author {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entity.Author)
}

func (m *MockContentUseCase) GetAuthor(ctx context.Context, id string) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockContentUseCase) SeedIfEmpty(ctx context.Context) (*usecase.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SeedResult), args.Error(1)
}

var _ usecase.ContentUseCase = (*MockContentUseCase)(nil)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Me(ctx context.Context, userID string) (*entity.User, *entity.Author, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var author *entity.Author
	if args.Get(1) != nil {
		author = args.Get(1).(*entity.Author)
	}
	return args.Get(0).(*entity.User), author, args.Error(2)
}

func (m *MockAuthUseCase) EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockAuthorUseCase is a mock implementation of AuthorUseCase
type MockAuthorUseCase struct {
	mock.Mock
}

func (m *MockAuthorUseCase) CreateAuthor(ctx context.Context, author *entity.Author, login *usecase.Credentials) error {
	args := m.Called(ctx, author, login)
	return args.Error(0)
}

func (m *MockAuthorUseCase) UpdateAuthor(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorUseCase) RemoveAuthor(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthorUseCase) UpdateMyProfile(ctx context.Context, userID string, profile *entity.Author) (*entity.Author, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

var _ usecase.AuthorUseCase = (*MockAuthorUseCase)(nil)

// MockUploadUseCase is a mock implementation of UploadUseCase
type MockUploadUseCase struct {
	mock.Mock
}

func (m *MockUploadUseCase) Upload(ctx context.Context, file usecase.UploadFile) (*usecase.UploadResult, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UploadResult), args.Error(1)
}

var _ usecase.UploadUseCase = (*MockUploadUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
