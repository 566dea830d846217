// Package sample serves a fixed, read-only content set used when the live
// database is not configured or not answering.
package sample

import (
	"context"
	"errors"

	"platina/services/content/internal/entity"
)

var ErrNotFound = errors.New("sample content not found")

// Repository returns deep copies so callers may mutate what they get back.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	out := make([]*entity.Review, len(reviews))
	for i := range reviews {
		out[i] = cloneReview(&reviews[i])
	}
	return out, nil
}

func (r *Repository) GetReviewBySlug(ctx context.Context, slug string) (*entity.Review, error) {
	for i := range reviews {
		if reviews[i].Slug == slug {
			return cloneReview(&reviews[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	for i := range reviews {
		if reviews[i].ID == id {
			return cloneReview(&reviews[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListNews(ctx context.Context) ([]*entity.News, error) {
	out := make([]*entity.News, len(news))
	for i := range news {
		out[i] = cloneNews(&news[i])
	}
	return out, nil
}

func (r *Repository) GetNewsBySlug(ctx context.Context, slug string) (*entity.News, error) {
	for i := range news {
		if news[i].Slug == slug {
			return cloneNews(&news[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	for i := range news {
		if news[i].ID == id {
			return cloneNews(&news[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListGuides(ctx context.Context) ([]*entity.Guide, error) {
	out := make([]*entity.Guide, len(guides))
	for i := range guides {
		out[i] = cloneGuide(&guides[i])
	}
	return out, nil
}

func (r *Repository) GetGuideBySlug(ctx context.Context, slug string) (*entity.Guide, error) {
	for i := range guides {
		if guides[i].Slug == slug {
			return cloneGuide(&guides[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) GetGuideByID(ctx context.Context, id string) (*entity.Guide, error) {
	for i := range guides {
		if guides[i].ID == id {
			return cloneGuide(&guides[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	out := make([]*entity.Article, len(articles))
	for i := range articles {
		out[i] = cloneArticle(&articles[i])
	}
	return out, nil
}

func (r *Repository) GetArticleBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	for i := range articles {
		if articles[i].Slug == slug {
			return cloneArticle(&articles[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) GetArticleByID(ctx context.Context, id string) (*entity.Article, error) {
	for i := range articles {
		if articles[i].ID == id {
			return cloneArticle(&articles[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListPlatinadorTips(ctx context.Context) ([]*entity.PlatinadorTip, error) {
	out := make([]*entity.PlatinadorTip, len(platinadorTips))
	for i := range platinadorTips {
		out[i] = clonePlatinadorTip(&platinadorTips[i])
	}
	return out, nil
}

func (r *Repository) GetPlatinadorTipBySlug(ctx context.Context, slug string) (*entity.PlatinadorTip, error) {
	for i := range platinadorTips {
		if platinadorTips[i].Slug == slug {
			return clonePlatinadorTip(&platinadorTips[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) GetPlatinadorTipByID(ctx context.Context, id string) (*entity.PlatinadorTip, error) {
	for i := range platinadorTips {
		if platinadorTips[i].ID == id {
			return clonePlatinadorTip(&platinadorTips[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	out := make([]*entity.Author, len(authors))
	for i := range authors {
		out[i] = cloneAuthor(&authors[i])
	}
	return out, nil
}

func (r *Repository) GetAuthorByID(ctx context.Context, id string) (*entity.Author, error) {
	for i := range authors {
		if authors[i].ID == id {
			return cloneAuthor(&authors[i]), nil
		}
	}
	return nil, ErrNotFound
}

func clonePost(p entity.Post) entity.Post {
	p.Author = cloneAuthor(p.Author)
	if p.AuthorID != nil {
		id := *p.AuthorID
		p.AuthorID = &id
	}
	return p
}

func cloneAuthor(a *entity.Author) *entity.Author {
	if a == nil {
		return nil
	}
	c := *a
	if a.UserID != nil {
		id := *a.UserID
		c.UserID = &id
	}
	return &c
}

func cloneReview(r *entity.Review) *entity.Review {
	c := *r
	c.Post = clonePost(r.Post)
	c.Genres = append([]string{}, r.Genres...)
	c.Tags = append([]string{}, r.Tags...)
	c.AdditionalImages = append([]entity.AdditionalImage{}, r.AdditionalImages...)
	if r.PlatinaGuide != nil {
		guide := *r.PlatinaGuide
		c.PlatinaGuide = &guide
	}
	return &c
}

func cloneNews(n *entity.News) *entity.News {
	c := *n
	c.Post = clonePost(n.Post)
	c.AdditionalMedia = append([]entity.NewsMedia{}, n.AdditionalMedia...)
	return &c
}

func cloneGuide(g *entity.Guide) *entity.Guide {
	c := *g
	c.Post = clonePost(g.Post)
	c.Tags = append([]string{}, g.Tags...)
	c.Steps = append([]entity.GuideStep{}, g.Steps...)
	return &c
}

func cloneArticle(a *entity.Article) *entity.Article {
	c := *a
	c.Post = clonePost(a.Post)
	c.ArticleMedia = append([]entity.NewsMedia{}, a.ArticleMedia...)
	return &c
}

func clonePlatinadorTip(t *entity.PlatinadorTip) *entity.PlatinadorTip {
	c := *t
	c.Post = clonePost(t.Post)
	c.PlatinadorMedia = append([]entity.NewsMedia{}, t.PlatinadorMedia...)
	return &c
}
