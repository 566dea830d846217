package usecase

import (
	"context"
	"fmt"
)

type SeedResult struct {
	Skipped        bool `json:"skipped"`
	Authors        int  `json:"authors"`
	ReusedAuthors  int  `json:"reused_authors"`
	Reviews        int  `json:"reviews"`
	News           int  `json:"news"`
	Guides         int  `json:"guides"`
	Articles       int  `json:"articles"`
	PlatinadorTips int  `json:"platinador_tips"`
}

// SeedIfEmpty copies the sample set into the live store once. A store that
// already holds reviews is left untouched.
func (uc *contentUseCase) SeedIfEmpty(ctx context.Context) (*SeedResult, error) {
	if uc.live == nil {
		return nil, ErrBackendUnavailable
	}

	count, err := uc.live.CountReviews(ctx)
	if err != nil {
		uc.logger.Error("Failed to count reviews before seeding: %v", err)
		return nil, userError("Erro ao popular banco de dados", err)
	}
	if count > 0 {
		uc.logger.Info("Seed skipped, %d reviews already stored", count)
		return &SeedResult{Skipped: true}, nil
	}

	result := &SeedResult{}
	seedErr := func(what string, err error) error {
		uc.logger.Error("Failed to seed %s: %v", what, err)
		return userError("Erro ao popular banco de dados", fmt.Errorf("%s: %w", what, err))
	}

	// Sample ids are not uuids, so every row is inserted fresh and references
	// are remapped to the generated author ids. Authors already stored under
	// the same name, left by an earlier partial run, are reused.
	stored, err := uc.live.ListAuthors(ctx)
	if err != nil {
		return nil, seedErr("existing authors", err)
	}
	storedByName := make(map[string]string, len(stored))
	for _, author := range stored {
		storedByName[author.Name] = author.ID
	}

	authorIDs := make(map[string]string)
	authors, err := uc.fallback.ListAuthors(ctx)
	if err != nil {
		return nil, seedErr("authors", err)
	}
	for _, author := range authors {
		sampleID := author.ID
		if id, ok := storedByName[author.Name]; ok {
			authorIDs[sampleID] = id
			result.ReusedAuthors++
			continue
		}
		author.ID = ""
		if err := uc.live.SaveAuthor(ctx, author); err != nil {
			return nil, seedErr("author "+author.Name, err)
		}
		authorIDs[sampleID] = author.ID
		result.Authors++
	}

	remap := func(authorID *string) *string {
		if authorID == nil {
			return nil
		}
		if id, ok := authorIDs[*authorID]; ok {
			return &id
		}
		return nil
	}

	reviews, err := uc.fallback.ListReviews(ctx)
	if err != nil {
		return nil, seedErr("reviews", err)
	}
	for _, review := range reviews {
		review.ID = ""
		review.AuthorID = remap(review.AuthorID)
		review.Author = nil
		if err := uc.live.SaveReview(ctx, review); err != nil {
			return nil, seedErr("review "+review.Slug, err)
		}
		result.Reviews++
	}

	news, err := uc.fallback.ListNews(ctx)
	if err != nil {
		return nil, seedErr("news", err)
	}
	for _, item := range news {
		item.ID = ""
		item.AuthorID = remap(item.AuthorID)
		item.Author = nil
		if err := uc.live.SaveNews(ctx, item); err != nil {
			return nil, seedErr("news "+item.Slug, err)
		}
		result.News++
	}

	guides, err := uc.fallback.ListGuides(ctx)
	if err != nil {
		return nil, seedErr("guides", err)
	}
	for _, guide := range guides {
		guide.ID = ""
		guide.AuthorID = remap(guide.AuthorID)
		guide.Author = nil
		if err := uc.live.SaveGuide(ctx, guide); err != nil {
			return nil, seedErr("guide "+guide.Slug, err)
		}
		result.Guides++
	}

	articles, err := uc.fallback.ListArticles(ctx)
	if err != nil {
		return nil, seedErr("articles", err)
	}
	for _, article := range articles {
		article.ID = ""
		article.AuthorID = remap(article.AuthorID)
		article.Author = nil
		if err := uc.live.SaveArticle(ctx, article); err != nil {
			return nil, seedErr("article "+article.Slug, err)
		}
		result.Articles++
	}

	tips, err := uc.fallback.ListPlatinadorTips(ctx)
	if err != nil {
		return nil, seedErr("platinador tips", err)
	}
	for _, tip := range tips {
		tip.ID = ""
		tip.AuthorID = remap(tip.AuthorID)
		tip.Author = nil
		if err := uc.live.SavePlatinadorTip(ctx, tip); err != nil {
			return nil, seedErr("platinador tip "+tip.Slug, err)
		}
		result.PlatinadorTips++
	}

	uc.logger.Infow("Seeded sample content",
		"authors", result.Authors,
		"reused_authors", result.ReusedAuthors,
		"reviews", result.Reviews,
		"news", result.News,
		"guides", result.Guides,
		"articles", result.Articles,
		"platinador_tips", result.PlatinadorTips,
	)
	return result, nil
}
