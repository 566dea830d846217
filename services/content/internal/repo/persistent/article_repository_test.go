package persistent

import (
	"context"
	"testing"

	"platina/pkg/models"
	"platina/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveArticle_MediaInOrder(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	article := &entity.Article{
		Post:     entity.Post{Title: "A História do Troféu Platina"},
		Subtitle: "De 2008 até hoje",
		Category: "Especial",
		ArticleMedia: []entity.NewsMedia{
			{URL: "https://example.com/ps3.jpg", Caption: "PS3"},
			{URL: ""},
			{Type: entity.MediaVideo, URL: "https://youtube.com/watch?v=abc", Caption: "documentário"},
		},
	}
	require.NoError(t, repo.SaveArticle(ctx, article))
	assert.Equal(t, "a-historia-do-trofeu-platina", article.Slug)
	assert.Equal(t, entity.PostTypeArticle, article.Type)
	require.NotNil(t, article.AuthorID)

	got, err := repo.GetArticleBySlug(ctx, article.Slug)
	require.NoError(t, err)
	assert.Equal(t, "De 2008 até hoje", got.Subtitle)
	assert.Equal(t, "Especial", got.Category)
	require.Len(t, got.ArticleMedia, 2)
	assert.Equal(t, entity.MediaImage, got.ArticleMedia[0].Type)
	assert.Equal(t, entity.MediaVideo, got.ArticleMedia[1].Type)
	assert.Equal(t, 1, got.ArticleMedia[1].DisplayOrder)
	require.NotNil(t, got.Author)
	assert.Equal(t, entity.DefaultAuthorName, got.Author.Name)

	article.ArticleMedia = article.ArticleMedia[2:]
	article.Category = "História"
	require.NoError(t, repo.SaveArticle(ctx, article))

	byID, err := repo.GetArticleByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "História", byID.Category)
	require.Len(t, byID.ArticleMedia, 1)
	assert.Equal(t, 0, byID.ArticleMedia[0].DisplayOrder)

	list, err := repo.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteArticle(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.DeleteArticle(ctx, "does-not-exist"), ErrNotFound)

	article := &entity.Article{
		Post:         entity.Post{Title: "Artigo"},
		ArticleMedia: []entity.NewsMedia{{URL: "https://example.com/a.jpg"}},
	}
	require.NoError(t, repo.SaveArticle(ctx, article))
	require.NoError(t, repo.DeleteArticle(ctx, article.ID))

	var media int64
	db.Model(&models.ArticleMedia{}).Count(&media)
	assert.Equal(t, int64(0), media)

	_, err := repo.GetArticleByID(ctx, article.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSavePlatinadorTip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	tip := &entity.PlatinadorTip{
		Post:         entity.Post{Title: "Farm de XP no Elden Ring"},
		Category:     "Farm",
		HelpfulCount: -3,
		PlatinadorMedia: []entity.NewsMedia{
			{Type: entity.MediaVideo, URL: "https://youtube.com/watch?v=farm", Caption: "rota"},
		},
	}
	require.NoError(t, repo.SavePlatinadorTip(ctx, tip))
	assert.Equal(t, "farm-de-xp-no-elden-ring", tip.Slug)
	assert.Equal(t, 0, tip.HelpfulCount)
	assert.Equal(t, entity.PostTypePlatinador, tip.Kind())

	tip.HelpfulCount = 42
	require.NoError(t, repo.SavePlatinadorTip(ctx, tip))

	got, err := repo.GetPlatinadorTipBySlug(ctx, tip.Slug)
	require.NoError(t, err)
	assert.Equal(t, tip.ID, got.ID)
	assert.Equal(t, "Farm", got.Category)
	assert.Equal(t, 42, got.HelpfulCount)
	require.Len(t, got.PlatinadorMedia, 1)
	assert.Equal(t, "rota", got.PlatinadorMedia[0].Caption)

	other := &entity.PlatinadorTip{Post: entity.Post{Title: "Farm de XP no Elden Ring"}}
	require.NoError(t, repo.SavePlatinadorTip(ctx, other))
	assert.Equal(t, "farm-de-xp-no-elden-ring-2", other.Slug)

	tips, err := repo.ListPlatinadorTips(ctx)
	require.NoError(t, err)
	assert.Len(t, tips, 2)

	require.NoError(t, repo.DeletePlatinadorTip(ctx, tip.ID))
	assert.ErrorIs(t, repo.DeletePlatinadorTip(ctx, tip.ID), ErrNotFound)
	_, err = repo.GetPlatinadorTipByID(ctx, tip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
