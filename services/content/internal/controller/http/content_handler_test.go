package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"platina/pkg/logger"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentRouter(mockUseCase *MockContentUseCase) *gin.Engine {
	handler := NewContentHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)
	router.GET("/reviews", handler.ListReviews)
	router.GET("/reviews/:slug", handler.GetReview)
	router.GET("/news/:slug", handler.GetNews)
	router.GET("/guides/:slug", handler.GetGuide)
	router.GET("/authors/:id", handler.GetAuthor)
	router.GET("/admin/reviews/:id", handler.AdminGetReview)
	router.POST("/admin/reviews", handler.CreateReview)
	router.PUT("/admin/reviews/:id", handler.UpdateReview)
	router.DELETE("/admin/reviews/:id", handler.DeleteReview)
	router.POST("/admin/news", handler.CreateNews)
	router.DELETE("/admin/guides/:id", handler.DeleteGuide)
	router.GET("/articles/:slug", handler.GetArticle)
	router.GET("/platinador-tips", handler.ListPlatinadorTips)
	router.GET("/platinador-tips/:slug", handler.GetPlatinadorTip)
	router.GET("/admin/articles/:id", handler.AdminGetArticle)
	router.POST("/admin/articles", handler.CreateArticle)
	router.PUT("/admin/articles/:id", handler.UpdateArticle)
	router.DELETE("/admin/articles/:id", handler.DeleteArticle)
	router.POST("/admin/platinador-tips", handler.CreatePlatinadorTip)
	router.PUT("/admin/platinador-tips/:id", handler.UpdatePlatinadorTip)
	router.DELETE("/admin/platinador-tips/:id", handler.DeletePlatinadorTip)
	router.POST("/admin/seed", handler.Seed)
	return router
}

func TestListPosts_MixedFeed(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	mockUseCase.On("ListAllPosts", mock.Anything).Return([]entity.Content{
		&entity.News{Post: entity.Post{ID: "n1", Title: "Game Pass", Slug: "game-pass", Type: entity.PostTypeNews, CreatedAt: now}, Subtitle: "Novo plano"},
		&entity.Review{Post: entity.Post{ID: "r1", Title: "Elden Ring", Slug: "elden-ring", Type: entity.PostTypeReview, CreatedAt: now.Add(-time.Hour)}, Rating: entity.RatingPlatinum, GameName: "Elden Ring"},
		&entity.Guide{Post: entity.Post{ID: "g1", Title: "Guia", Slug: "guia", Type: entity.PostTypeGuide, CreatedAt: now.Add(-2 * time.Hour)}, Difficulty: 4},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Posts []PostSummary `json:"posts"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Count)
	assert.Equal(t, entity.PostTypeNews, response.Posts[0].Type)
	assert.Equal(t, "Novo plano", response.Posts[0].Subtitle)
	assert.Equal(t, "platinum", response.Posts[1].Rating)
	assert.Equal(t, entity.RatingPlatinum.Info().Label, response.Posts[1].RatingLabel)
	assert.Equal(t, 4, response.Posts[2].Difficulty)
	mockUseCase.AssertExpectations(t)
}

func TestListReviews(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("ListReviews", mock.Anything).Return([]*entity.Review{
		{Post: entity.Post{ID: "1", Slug: "elden-ring"}, Rating: entity.RatingPlatinum},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
}

func TestGetReview_Found(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetReview", mock.Anything, "elden-ring").Return(&entity.Review{
		Post:     entity.Post{ID: "1", Slug: "elden-ring", Title: "Elden Ring"},
		Rating:   entity.RatingPlatinum,
		GameName: "Elden Ring",
		Genres:   []string{"RPG"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews/elden-ring", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var review entity.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, "Elden Ring", review.GameName)
	assert.Equal(t, []string{"RPG"}, review.Genres)
}

func TestGetReview_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetReview", mock.Anything, "missing").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Review not found")
}

func TestGetNewsAndGuide_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetNews", mock.Anything, "x").Return(nil, usecase.ErrNotFound)
	mockUseCase.On("GetGuide", mock.Anything, "x").Return(nil, usecase.ErrNotFound)
	mockUseCase.On("GetAuthor", mock.Anything, "x").Return(nil, usecase.ErrNotFound)

	for _, path := range []string{"/news/x", "/guides/x", "/authors/x"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestAdminGetReview_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetReviewByID", mock.Anything, "42").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/reviews/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReview_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveReview", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ID == "" && r.Title == "Elden Ring" && r.Rating == entity.RatingGold
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Review).ID = "new-id"
	}).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"id":     "ignored",
		"title":  "Elden Ring",
		"rating": "gold",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "new-id")
	mockUseCase.AssertExpectations(t)
}

func TestCreateReview_InvalidJSON(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/reviews", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SaveReview", mock.Anything, mock.Anything)
}

func TestCreateReview_ValidationError(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveReview", mock.Anything, mock.Anything).
		Return(&usecase.UserError{Message: "Título é obrigatório"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/reviews", bytes.NewBufferString(`{"title":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Título é obrigatório")
}

func TestCreateNews_BackendUnavailable(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveNews", mock.Anything, mock.Anything).Return(usecase.ErrBackendUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/news", bytes.NewBufferString(`{"title":"Nova"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUpdateReview_UsesPathID(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveReview", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ID == "abc"
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/reviews/abc", bytes.NewBufferString(`{"id":"other","title":"T","rating":"bronze"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateReview_SaveFails(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveReview", mock.Anything, mock.Anything).
		Return(&usecase.UserError{Message: "Erro ao salvar review", Err: errors.New("db down")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/reviews/abc", bytes.NewBufferString(`{"title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao salvar review")
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestDeleteReview(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("DeleteReview", mock.Anything, "abc").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/reviews/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")
}

func TestDeleteGuide_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("DeleteGuide", mock.Anything, "abc").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/guides/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeed(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SeedIfEmpty", mock.Anything).Return(&usecase.SeedResult{Authors: 5, Reviews: 5, News: 5, Guides: 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/seed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var result usecase.SeedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Skipped)
	assert.Equal(t, 5, result.Reviews)
}

func TestSeed_Skipped(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SeedIfEmpty", mock.Anything).Return(&usecase.SeedResult{Skipped: true}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/seed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skipped":true`)
}

func TestListPosts_IncludesArticlesAndTips(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	mockUseCase.On("ListAllPosts", mock.Anything).Return([]entity.Content{
		&entity.Article{Post: entity.Post{ID: "a1", Title: "História", Slug: "historia", Type: entity.PostTypeArticle, CreatedAt: now}, Subtitle: "Desde 2008", Category: "Especial"},
		&entity.PlatinadorTip{Post: entity.Post{ID: "t1", Title: "Backup", Slug: "backup", Type: entity.PostTypePlatinador, CreatedAt: now.Add(-time.Hour)}, Category: "Organização", HelpfulCount: 37},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Posts []PostSummary `json:"posts"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 2, response.Count)
	assert.Equal(t, entity.PostTypeArticle, response.Posts[0].Type)
	assert.Equal(t, "Desde 2008", response.Posts[0].Subtitle)
	assert.Equal(t, "Especial", response.Posts[0].Category)
	assert.Equal(t, entity.PostTypePlatinador, response.Posts[1].Type)
	assert.Equal(t, 37, response.Posts[1].HelpfulCount)
}

func TestGetArticle(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetArticle", mock.Anything, "historia").Return(&entity.Article{
		Post:     entity.Post{ID: "a1", Slug: "historia", Title: "História"},
		Category: "Especial",
	}, nil)
	mockUseCase.On("GetArticle", mock.Anything, "missing").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles/historia", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var article entity.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, "Especial", article.Category)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/articles/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Article not found")
}

func TestAdminGetArticle_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetArticleByID", mock.Anything, "abc").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/articles/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArticle_ClearsClientID(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveArticle", mock.Anything, mock.MatchedBy(func(a *entity.Article) bool {
		return a.ID == "" && a.Title == "Nova"
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/articles", bytes.NewBufferString(`{"id":"forged","title":"Nova"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateArticle_UsesPathID(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SaveArticle", mock.Anything, mock.MatchedBy(func(a *entity.Article) bool {
		return a.ID == "abc"
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/articles/abc", bytes.NewBufferString(`{"id":"other","title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteArticle(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("DeleteArticle", mock.Anything, "abc").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/articles/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Article deleted successfully")
}

func TestListPlatinadorTips(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("ListPlatinadorTips", mock.Anything).Return([]*entity.PlatinadorTip{
		{Post: entity.Post{ID: "t1", Slug: "backup"}, HelpfulCount: 37},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/platinador-tips", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
}

func TestGetPlatinadorTip_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("GetPlatinadorTip", mock.Anything, "x").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/platinador-tips/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Tip not found")
}

func TestCreatePlatinadorTip_ValidationError(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SavePlatinadorTip", mock.Anything, mock.Anything).
		Return(&usecase.UserError{Message: "Contagem de útil inválida"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/platinador-tips", bytes.NewBufferString(`{"title":"Dica","helpful_count":-1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Contagem de útil inválida")
}

func TestUpdatePlatinadorTip_UsesPathID(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("SavePlatinadorTip", mock.Anything, mock.MatchedBy(func(tip *entity.PlatinadorTip) bool {
		return tip.ID == "abc" && tip.HelpfulCount == 5
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/platinador-tips/abc", bytes.NewBufferString(`{"title":"T","helpful_count":5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePlatinadorTip_BackendUnavailable(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	router := newContentRouter(mockUseCase)

	mockUseCase.On("DeletePlatinadorTip", mock.Anything, "abc").Return(usecase.ErrBackendUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/platinador-tips/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
