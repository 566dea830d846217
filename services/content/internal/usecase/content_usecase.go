package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"platina/pkg/logger"
	"platina/pkg/queue"
	"platina/pkg/retry"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/repo/cache"
	"platina/services/content/internal/repo/persistent"

	"github.com/google/uuid"
)

type ContentUseCase interface {
	// LiveBackend reports whether a database is wired in.
	LiveBackend() bool

	ListReviews(ctx context.Context) []*entity.Review
	GetReview(ctx context.Context, slug string) (*entity.Review, error)
	GetReviewByID(ctx context.Context, id string) (*entity.Review, error)
	SaveReview(ctx context.Context, review *entity.Review) error
	DeleteReview(ctx context.Context, id string) error

	ListNews(ctx context.Context) []*entity.News
	GetNews(ctx context.Context, slug string) (*entity.News, error)
	GetNewsByID(ctx context.Context, id string) (*entity.News, error)
	SaveNews(ctx context.Context, news *entity.News) error
	DeleteNews(ctx context.Context, id string) error

	ListGuides(ctx context.Context) []*entity.Guide
	GetGuide(ctx context.Context, slug string) (*entity.Guide, error)
	GetGuideByID(ctx context.Context, id string) (*entity.Guide, error)
	SaveGuide(ctx context.Context, guide *entity.Guide) error
	DeleteGuide(ctx context.Context, id string) error

	ListArticles(ctx context.Context) []*entity.Article
	GetArticle(ctx context.Context, slug string) (*entity.Article, error)
	GetArticleByID(ctx context.Context, id string) (*entity.Article, error)
	SaveArticle(ctx context.Context, article *entity.Article) error
	DeleteArticle(ctx context.Context, id string) error

	ListPlatinadorTips(ctx context.Context) []*entity.PlatinadorTip
	GetPlatinadorTip(ctx context.Context, slug string) (*entity.PlatinadorTip, error)
	GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error)
	SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error
	DeletePlatinadorTip(ctx context.Context, id string) error

	ListAllPosts(ctx context.Context) []entity.Content
	ListAuthors(ctx context.Context) []*entity.Author
	GetAuthor(ctx context.Context, id string) (*entity.Author, error)

	SeedIfEmpty(ctx context.Context) (*SeedResult, error)
}

type contentUseCase struct {
	live     ContentStore
	fallback ContentSource
	cache    *cache.ContentCache
	events   EventPublisher
	retrier  *retry.Retrier
	logger   *logger.Logger
	now      func() time.Time
}

// NewContentUseCase builds the content use case. live, contentCache and
// events may be nil: reads then come from fallback and writes fail with
// ErrBackendUnavailable.
func NewContentUseCase(
	live ContentStore,
	fallback ContentSource,
	contentCache *cache.ContentCache,
	events EventPublisher,
	retrier *retry.Retrier,
	log *logger.Logger,
) ContentUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	if retrier == nil {
		retrier = retry.New(retry.DefaultPolicy(), log)
	}
	return &contentUseCase{
		live:     live,
		fallback: fallback,
		cache:    contentCache,
		events:   events,
		retrier:  retrier,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *contentUseCase) LiveBackend() bool {
	return uc.live != nil
}

// readList serves the live rows and falls back to the sample set when the
// live read fails or comes back empty.
func readList[T any](
	ctx context.Context,
	uc *contentUseCase,
	name string,
	live func(context.Context) ([]T, error),
	fallback func(context.Context) ([]T, error),
) []T {
	if live != nil {
		items, err := retry.Value(ctx, uc.retrier, name, live)
		if err == nil && len(items) > 0 {
			return items
		}
		if err != nil {
			uc.logger.Warn("%s failed, serving sample content: %v", name, err)
		} else {
			uc.logger.Info("%s returned no rows, serving sample content", name)
		}
	}

	items, err := fallback(ctx)
	if err != nil {
		uc.logger.Error("Sample content for %s unavailable: %v", name, err)
		return []T{}
	}
	return items
}

// readOne looks a single row up by key: cache, then live store, then the
// sample set. Only a miss everywhere is reported, as ErrNotFound.
func readOne[T any](
	ctx context.Context,
	uc *contentUseCase,
	name, key, cacheKey string,
	live func(context.Context, string) (*T, error),
	fallback func(context.Context, string) (*T, error),
) (*T, error) {
	if live != nil {
		if cacheKey != "" {
			hit, err := cache.Get[T](uc.cache, ctx, cacheKey)
			if err == nil && hit != nil {
				return hit, nil
			}
			if err != nil && !errors.Is(err, cache.ErrMiss) {
				uc.logger.Warn("Cache read %s failed: %v", cacheKey, err)
			}
		}

		item, err := retry.Value(ctx, uc.retrier, name, func(ctx context.Context) (*T, error) {
			return live(ctx, key)
		})
		if err == nil && item != nil {
			if cacheKey != "" {
				var err error
				if post, ok := any(item).(entity.Content); ok {
					err = uc.cache.SetPost(ctx, cacheKey, post)
				} else {
					err = uc.cache.SetJSON(ctx, cacheKey, item)
				}
				if err != nil {
					uc.logger.Warn("Cache write %s failed: %v", cacheKey, err)
				}
			}
			return item, nil
		}
		if err != nil && !errors.Is(err, persistent.ErrNotFound) {
			uc.logger.Warn("%s(%s) failed, searching sample content: %v", name, key, err)
		}
	}

	item, err := fallback(ctx, key)
	if err != nil || item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (uc *contentUseCase) ListReviews(ctx context.Context) []*entity.Review {
	var live func(context.Context) ([]*entity.Review, error)
	if uc.live != nil {
		live = uc.live.ListReviews
	}
	return readList(ctx, uc, "getReviews", live, uc.fallback.ListReviews)
}

func (uc *contentUseCase) GetReview(ctx context.Context, slug string) (*entity.Review, error) {
	var live func(context.Context, string) (*entity.Review, error)
	if uc.live != nil {
		live = uc.live.GetReviewBySlug
	}
	return readOne(ctx, uc, "getReviewBySlug", slug, cache.SlugKey(entity.PostTypeReview, slug), live, uc.fallback.GetReviewBySlug)
}

func (uc *contentUseCase) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	var live func(context.Context, string) (*entity.Review, error)
	if uc.live != nil {
		live = uc.live.GetReviewByID
	}
	return readOne(ctx, uc, "getReviewById", id, cache.IDKey(entity.PostTypeReview, id), live, uc.fallback.GetReviewByID)
}

func (uc *contentUseCase) ListNews(ctx context.Context) []*entity.News {
	var live func(context.Context) ([]*entity.News, error)
	if uc.live != nil {
		live = uc.live.ListNews
	}
	return readList(ctx, uc, "getNews", live, uc.fallback.ListNews)
}

func (uc *contentUseCase) GetNews(ctx context.Context, slug string) (*entity.News, error) {
	var live func(context.Context, string) (*entity.News, error)
	if uc.live != nil {
		live = uc.live.GetNewsBySlug
	}
	return readOne(ctx, uc, "getNewsBySlug", slug, cache.SlugKey(entity.PostTypeNews, slug), live, uc.fallback.GetNewsBySlug)
}

func (uc *contentUseCase) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	var live func(context.Context, string) (*entity.News, error)
	if uc.live != nil {
		live = uc.live.GetNewsByID
	}
	return readOne(ctx, uc, "getNewsById", id, cache.IDKey(entity.PostTypeNews, id), live, uc.fallback.GetNewsByID)
}

func (uc *contentUseCase) ListGuides(ctx context.Context) []*entity.Guide {
	var live func(context.Context) ([]*entity.Guide, error)
	if uc.live != nil {
		live = uc.live.ListGuides
	}
	return readList(ctx, uc, "getGuides", live, uc.fallback.ListGuides)
}

func (uc *contentUseCase) GetGuide(ctx context.Context, slug string) (*entity.Guide, error) {
	var live func(context.Context, string) (*entity.Guide, error)
	if uc.live != nil {
		live = uc.live.GetGuideBySlug
	}
	return readOne(ctx, uc, "getGuideBySlug", slug, cache.SlugKey(entity.PostTypeGuide, slug), live, uc.fallback.GetGuideBySlug)
}

func (uc *contentUseCase) GetGuideByID(ctx context.Context, id string) (*entity.Guide, error) {
	var live func(context.Context, string) (*entity.Guide, error)
	if uc.live != nil {
		live = uc.live.GetGuideByID
	}
	return readOne(ctx, uc, "getGuideById", id, cache.IDKey(entity.PostTypeGuide, id), live, uc.fallback.GetGuideByID)
}

func (uc *contentUseCase) ListArticles(ctx context.Context) []*entity.Article {
	var live func(context.Context) ([]*entity.Article, error)
	if uc.live != nil {
		live = uc.live.ListArticles
	}
	return readList(ctx, uc, "getArticles", live, uc.fallback.ListArticles)
}

func (uc *contentUseCase) GetArticle(ctx context.Context, slug string) (*entity.Article, error) {
	var live func(context.Context, string) (*entity.Article, error)
	if uc.live != nil {
		live = uc.live.GetArticleBySlug
	}
	return readOne(ctx, uc, "getArticleBySlug", slug, cache.SlugKey(entity.PostTypeArticle, slug), live, uc.fallback.GetArticleBySlug)
}

func (uc *contentUseCase) GetArticleByID(ctx context.Context, id string) (*entity.Article, error) {
	var live func(context.Context, string) (*entity.Article, error)
	if uc.live != nil {
		live = uc.live.GetArticleByID
	}
	return readOne(ctx, uc, "getArticleById", id, cache.IDKey(entity.PostTypeArticle, id), live, uc.fallback.GetArticleByID)
}

func (uc *contentUseCase) ListPlatinadorTips(ctx context.Context) []*entity.PlatinadorTip {
	var live func(context.Context) ([]*entity.PlatinadorTip, error)
	if uc.live != nil {
		live = uc.live.ListPlatinadorTips
	}
	return readList(ctx, uc, "getPlatinadorTips", live, uc.fallback.ListPlatinadorTips)
}

func (uc *contentUseCase) GetPlatinadorTip(ctx context.Context, slug string) (*entity.PlatinadorTip, error) {
	var live func(context.Context, string) (*entity.PlatinadorTip, error)
	if uc.live != nil {
		live = uc.live.GetPlatinadorTipBySlug
	}
	return readOne(ctx, uc, "getPlatinadorTipBySlug", slug, cache.SlugKey(entity.PostTypePlatinador, slug), live, uc.fallback.GetPlatinadorTipBySlug)
}

func (uc *contentUseCase) GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error) {
	var live func(context.Context, string) (*entity.PlatinadorTip, error)
	if uc.live != nil {
		live = uc.live.GetPlatinadorTipByID
	}
	return readOne(ctx, uc, "getPlatinadorTipById", id, cache.IDKey(entity.PostTypePlatinador, id), live, uc.fallback.GetPlatinadorTipByID)
}

func (uc *contentUseCase) ListAuthors(ctx context.Context) []*entity.Author {
	var live func(context.Context) ([]*entity.Author, error)
	if uc.live != nil {
		live = uc.live.ListAuthors
	}
	return readList(ctx, uc, "getAuthors", live, uc.fallback.ListAuthors)
}

func (uc *contentUseCase) GetAuthor(ctx context.Context, id string) (*entity.Author, error) {
	var live func(context.Context, string) (*entity.Author, error)
	if uc.live != nil {
		live = uc.live.GetAuthorByID
	}
	return readOne(ctx, uc, "getAuthorById", id, "", live, uc.fallback.GetAuthorByID)
}

// ListAllPosts merges every variant into one feed, newest first.
func (uc *contentUseCase) ListAllPosts(ctx context.Context) []entity.Content {
	reviews := uc.ListReviews(ctx)
	news := uc.ListNews(ctx)
	guides := uc.ListGuides(ctx)
	articles := uc.ListArticles(ctx)
	tips := uc.ListPlatinadorTips(ctx)

	posts := make([]entity.Content, 0, len(reviews)+len(news)+len(guides)+len(articles)+len(tips))
	for _, r := range reviews {
		posts = append(posts, r)
	}
	for _, n := range news {
		posts = append(posts, n)
	}
	for _, g := range guides {
		posts = append(posts, g)
	}
	for _, a := range articles {
		posts = append(posts, a)
	}
	for _, t := range tips {
		posts = append(posts, t)
	}
	entity.SortNewestFirst(posts)
	return posts
}

// prepareWrite validates the shared fields. Ids that are not uuids come from
// the sample set and are saved as new rows.
func prepareWrite(p *entity.Post) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return userError("Título é obrigatório", nil)
	}
	if p.ID != "" {
		if _, err := uuid.Parse(p.ID); err != nil {
			p.ID = ""
		}
	}
	return nil
}

// previousSlug returns the stored slug of an existing row so its cache entry
// can be dropped when the slug changes.
func previousSlug[T entity.Content](ctx context.Context, id string, get func(context.Context, string) (T, error)) string {
	if id == "" {
		return ""
	}
	item, err := get(ctx, id)
	if err != nil {
		return ""
	}
	return item.Base().Slug
}

func (uc *contentUseCase) SaveReview(ctx context.Context, review *entity.Review) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	if err := prepareWrite(&review.Post); err != nil {
		return err
	}
	if !review.Rating.Valid() {
		return userError("Classificação inválida", nil)
	}

	oldSlug := previousSlug(ctx, review.ID, uc.live.GetReviewByID)
	if err := uc.live.SaveReview(ctx, review); err != nil {
		uc.logger.Error("Failed to save review %q: %v", review.Title, err)
		return userError("Erro ao salvar review", err)
	}

	uc.afterWrite(ctx, queue.RoutingContentSaved, entity.PostTypeReview, review.ID, review.Slug, oldSlug)
	return nil
}

func (uc *contentUseCase) SaveNews(ctx context.Context, news *entity.News) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	if err := prepareWrite(&news.Post); err != nil {
		return err
	}

	oldSlug := previousSlug(ctx, news.ID, uc.live.GetNewsByID)
	if err := uc.live.SaveNews(ctx, news); err != nil {
		uc.logger.Error("Failed to save news %q: %v", news.Title, err)
		return userError("Erro ao salvar notícia", err)
	}

	uc.afterWrite(ctx, queue.RoutingContentSaved, entity.PostTypeNews, news.ID, news.Slug, oldSlug)
	return nil
}

func (uc *contentUseCase) SaveGuide(ctx context.Context, guide *entity.Guide) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	if err := prepareWrite(&guide.Post); err != nil {
		return err
	}

	oldSlug := previousSlug(ctx, guide.ID, uc.live.GetGuideByID)
	if err := uc.live.SaveGuide(ctx, guide); err != nil {
		uc.logger.Error("Failed to save guide %q: %v", guide.Title, err)
		return userError("Erro ao salvar guia", err)
	}

	uc.afterWrite(ctx, queue.RoutingContentSaved, entity.PostTypeGuide, guide.ID, guide.Slug, oldSlug)
	return nil
}

func (uc *contentUseCase) SaveArticle(ctx context.Context, article *entity.Article) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	if err := prepareWrite(&article.Post); err != nil {
		return err
	}

	oldSlug := previousSlug(ctx, article.ID, uc.live.GetArticleByID)
	if err := uc.live.SaveArticle(ctx, article); err != nil {
		uc.logger.Error("Failed to save article %q: %v", article.Title, err)
		return userError("Erro ao salvar artigo", err)
	}

	uc.afterWrite(ctx, queue.RoutingContentSaved, entity.PostTypeArticle, article.ID, article.Slug, oldSlug)
	return nil
}

func (uc *contentUseCase) SavePlatinadorTip(ctx context.Context, tip *entity.PlatinadorTip) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	if err := prepareWrite(&tip.Post); err != nil {
		return err
	}
	if tip.HelpfulCount < 0 {
		return userError("Contagem de útil inválida", nil)
	}

	oldSlug := previousSlug(ctx, tip.ID, uc.live.GetPlatinadorTipByID)
	if err := uc.live.SavePlatinadorTip(ctx, tip); err != nil {
		uc.logger.Error("Failed to save platinador tip %q: %v", tip.Title, err)
		return userError("Erro ao salvar dica", err)
	}

	uc.afterWrite(ctx, queue.RoutingContentSaved, entity.PostTypePlatinador, tip.ID, tip.Slug, oldSlug)
	return nil
}

func (uc *contentUseCase) DeleteReview(ctx context.Context, id string) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	slug := previousSlug(ctx, id, uc.live.GetReviewByID)
	err := uc.retrier.Do(ctx, "deleteReview", func(ctx context.Context) error {
		return uc.live.DeleteReview(ctx, id)
	})
	if err != nil {
		return uc.deleteError(err, "review", id, "Erro ao excluir review")
	}

	uc.afterWrite(ctx, queue.RoutingContentDeleted, entity.PostTypeReview, id, slug, "")
	return nil
}

func (uc *contentUseCase) DeleteNews(ctx context.Context, id string) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	slug := previousSlug(ctx, id, uc.live.GetNewsByID)
	err := uc.retrier.Do(ctx, "deleteNews", func(ctx context.Context) error {
		return uc.live.DeleteNews(ctx, id)
	})
	if err != nil {
		return uc.deleteError(err, "news", id, "Erro ao excluir notícia")
	}

	uc.afterWrite(ctx, queue.RoutingContentDeleted, entity.PostTypeNews, id, slug, "")
	return nil
}

func (uc *contentUseCase) DeleteGuide(ctx context.Context, id string) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	slug := previousSlug(ctx, id, uc.live.GetGuideByID)
	err := uc.retrier.Do(ctx, "deleteGuide", func(ctx context.Context) error {
		return uc.live.DeleteGuide(ctx, id)
	})
	if err != nil {
		return uc.deleteError(err, "guide", id, "Erro ao excluir guia")
	}

	uc.afterWrite(ctx, queue.RoutingContentDeleted, entity.PostTypeGuide, id, slug, "")
	return nil
}

func (uc *contentUseCase) DeleteArticle(ctx context.Context, id string) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	slug := previousSlug(ctx, id, uc.live.GetArticleByID)
	err := uc.retrier.Do(ctx, "deleteArticle", func(ctx context.Context) error {
		return uc.live.DeleteArticle(ctx, id)
	})
	if err != nil {
		return uc.deleteError(err, "article", id, "Erro ao excluir artigo")
	}

	uc.afterWrite(ctx, queue.RoutingContentDeleted, entity.PostTypeArticle, id, slug, "")
	return nil
}

func (uc *contentUseCase) DeletePlatinadorTip(ctx context.Context, id string) error {
	if uc.live == nil {
		return ErrBackendUnavailable
	}
	slug := previousSlug(ctx, id, uc.live.GetPlatinadorTipByID)
	err := uc.retrier.Do(ctx, "deletePlatinadorTip", func(ctx context.Context) error {
		return uc.live.DeletePlatinadorTip(ctx, id)
	})
	if err != nil {
		return uc.deleteError(err, "platinador tip", id, "Erro ao excluir dica")
	}

	uc.afterWrite(ctx, queue.RoutingContentDeleted, entity.PostTypePlatinador, id, slug, "")
	return nil
}

func (uc *contentUseCase) deleteError(err error, kind, id, message string) error {
	if errors.Is(err, persistent.ErrNotFound) {
		return ErrNotFound
	}
	uc.logger.Error("Failed to delete %s %s: %v", kind, id, err)
	return userError(message, err)
}

// afterWrite drops stale cache entries and announces the change. Neither
// step can fail the write that already committed.
func (uc *contentUseCase) afterWrite(ctx context.Context, routingKey string, kind entity.PostType, id, slug, oldSlug string) {
	uc.cache.Invalidate(ctx, kind, id, slug)
	if oldSlug != "" && oldSlug != slug {
		uc.cache.Invalidate(ctx, kind, "", oldSlug)
	}

	if uc.events == nil {
		return
	}
	event := queue.ContentEvent{
		Kind:       string(kind),
		ID:         id,
		Slug:       slug,
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.events.PublishContentEvent(ctx, routingKey, event); err != nil {
		uc.logger.Warn("Failed to publish %s event for %s %s: %v", routingKey, kind, id, err)
	}
}
