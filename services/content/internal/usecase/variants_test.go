package usecase

import (
	"context"
	"errors"
	"testing"

	"platina/pkg/logger"
	"platina/pkg/queue"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/repo/persistent"
	"platina/services/content/internal/repo/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListArticles_FallsBackOnError(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)

	store.On("ListArticles", mock.Anything).Return(nil, errors.New("permission denied for table articles"))

	got := uc.ListArticles(context.Background())
	assert.Len(t, got, 2)
	store.AssertNumberOfCalls(t, "ListArticles", 1)
}

func TestGetArticle_LiveThenSample(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)
	ctx := context.Background()

	store.On("GetArticleBySlug", mock.Anything, "ao-vivo").
		Return(&entity.Article{Post: entity.Post{ID: storedID, Slug: "ao-vivo"}, Category: "Opinião"}, nil)
	store.On("GetArticleBySlug", mock.Anything, "historia-do-trofeu-de-platina").Return(nil, persistent.ErrNotFound)
	store.On("GetArticleByID", mock.Anything, "missing").Return(nil, persistent.ErrNotFound)

	live, err := uc.GetArticle(ctx, "ao-vivo")
	require.NoError(t, err)
	assert.Equal(t, "Opinião", live.Category)

	sampled, err := uc.GetArticle(ctx, "historia-do-trofeu-de-platina")
	require.NoError(t, err)
	assert.Equal(t, "article-historia-platina", sampled.ID)

	_, err = uc.GetArticleByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveArticle_PublishesEvent(t *testing.T) {
	store := new(MockContentStore)
	events := new(MockEventPublisher)
	uc := newLiveUseCase(store, events)

	store.On("SaveArticle", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		a := args.Get(1).(*entity.Article)
		a.ID = storedID
		a.Slug = "novo-artigo"
	}).Return(nil)
	events.On("PublishContentEvent", mock.Anything, queue.RoutingContentSaved, mock.MatchedBy(func(e queue.ContentEvent) bool {
		return e.Kind == "article" && e.ID == storedID && e.Slug == "novo-artigo"
	})).Return(nil)

	require.NoError(t, uc.SaveArticle(context.Background(), &entity.Article{Post: entity.Post{Title: "Novo artigo"}}))
	events.AssertExpectations(t)
}

func TestSaveArticle_Errors(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)
	ctx := context.Background()

	var userErr *UserError
	require.ErrorAs(t, uc.SaveArticle(ctx, &entity.Article{}), &userErr)
	assert.Equal(t, "Título é obrigatório", userErr.Message)

	store.On("SaveArticle", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	require.ErrorAs(t, uc.SaveArticle(ctx, &entity.Article{Post: entity.Post{Title: "X"}}), &userErr)
	assert.Equal(t, "Erro ao salvar artigo", userErr.Message)
}

func TestDeleteArticle(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)
	ctx := context.Background()

	store.On("GetArticleByID", mock.Anything, storedID).
		Return(&entity.Article{Post: entity.Post{ID: storedID, Slug: "x"}}, nil)
	store.On("DeleteArticle", mock.Anything, storedID).Return(nil).Once()
	require.NoError(t, uc.DeleteArticle(ctx, storedID))

	store.On("GetArticleByID", mock.Anything, "gone").Return(nil, persistent.ErrNotFound)
	store.On("DeleteArticle", mock.Anything, "gone").Return(persistent.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteArticle(ctx, "gone"), ErrNotFound)
}

func TestPlatinadorTips_SampleWhenEmpty(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)
	ctx := context.Background()

	store.On("ListPlatinadorTips", mock.Anything).Return([]*entity.PlatinadorTip{}, nil)
	store.On("GetPlatinadorTipBySlug", mock.Anything, "leia-a-lista-de-trofeus").Return(nil, errors.New("connection reset"))

	assert.Len(t, uc.ListPlatinadorTips(ctx), 2)

	tip, err := uc.GetPlatinadorTip(ctx, "leia-a-lista-de-trofeus")
	require.NoError(t, err)
	assert.Equal(t, 58, tip.HelpfulCount)
}

func TestSavePlatinadorTip(t *testing.T) {
	store := new(MockContentStore)
	events := new(MockEventPublisher)
	uc := newLiveUseCase(store, events)
	ctx := context.Background()

	var userErr *UserError
	err := uc.SavePlatinadorTip(ctx, &entity.PlatinadorTip{Post: entity.Post{Title: "Dica"}, HelpfulCount: -1})
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Contagem de útil inválida", userErr.Message)
	store.AssertNotCalled(t, "SavePlatinadorTip", mock.Anything, mock.Anything)

	store.On("GetPlatinadorTipByID", mock.Anything, storedID).
		Return(&entity.PlatinadorTip{Post: entity.Post{ID: storedID, Slug: "antiga"}}, nil)
	store.On("SavePlatinadorTip", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.PlatinadorTip).Slug = "nova"
	}).Return(nil)
	events.On("PublishContentEvent", mock.Anything, queue.RoutingContentSaved, mock.MatchedBy(func(e queue.ContentEvent) bool {
		return e.Kind == "platinador" && e.ID == storedID && e.Slug == "nova"
	})).Return(nil)

	tip := &entity.PlatinadorTip{Post: entity.Post{ID: storedID, Title: "Dica"}, HelpfulCount: 3}
	require.NoError(t, uc.SavePlatinadorTip(ctx, tip))
	events.AssertExpectations(t)
}

func TestDeletePlatinadorTip_FailureIsUserFacing(t *testing.T) {
	store := new(MockContentStore)
	uc := newLiveUseCase(store, nil)

	store.On("GetPlatinadorTipByID", mock.Anything, storedID).Return(nil, persistent.ErrNotFound)
	store.On("DeletePlatinadorTip", mock.Anything, storedID).Return(errors.New("foreign key violation"))

	err := uc.DeletePlatinadorTip(context.Background(), storedID)
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Erro ao excluir dica", userErr.Message)
}

func TestArticlesAndTips_NoBackend(t *testing.T) {
	uc := NewContentUseCase(nil, sample.NewRepository(), nil, nil, fastRetrier(), logger.NewNop())
	ctx := context.Background()

	assert.False(t, uc.LiveBackend())
	assert.ErrorIs(t, uc.SaveArticle(ctx, &entity.Article{Post: entity.Post{Title: "X"}}), ErrBackendUnavailable)
	assert.ErrorIs(t, uc.DeletePlatinadorTip(ctx, storedID), ErrBackendUnavailable)
}
