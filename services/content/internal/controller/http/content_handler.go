package http

import (
	"net/http"

	"platina/pkg/logger"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

// ListPosts godoc
// @Summary      List all posts
// @Description  Every post type merged into one feed, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts := summarizeAll(h.contentUseCase.ListAllPosts(c.Request.Context()))
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// ListReviews godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /reviews [get]
func (h *ContentHandler) ListReviews(c *gin.Context) {
	reviews := h.contentUseCase.ListReviews(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

// GetReview godoc
// @Summary      Get review by slug
// @Tags         reviews
// @Produce      json
// @Param        slug  path      string  true  "Review slug"
// @Success      200   {object}  entity.Review
// @Failure      404   {object}  map[string]string
// @Router       /reviews/{slug} [get]
func (h *ContentHandler) GetReview(c *gin.Context) {
	review, err := h.contentUseCase.GetReview(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListNews godoc
// @Summary      List news
// @Tags         news
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /news [get]
func (h *ContentHandler) ListNews(c *gin.Context) {
	news := h.contentUseCase.ListNews(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"news": news, "count": len(news)})
}

// GetNews godoc
// @Summary      Get news by slug
// @Tags         news
// @Produce      json
// @Param        slug  path      string  true  "News slug"
// @Success      200   {object}  entity.News
// @Failure      404   {object}  map[string]string
// @Router       /news/{slug} [get]
func (h *ContentHandler) GetNews(c *gin.Context) {
	news, err := h.contentUseCase.GetNews(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// ListGuides godoc
// @Summary      List guides
// @Tags         guides
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /guides [get]
func (h *ContentHandler) ListGuides(c *gin.Context) {
	guides := h.contentUseCase.ListGuides(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"guides": guides, "count": len(guides)})
}

// GetGuide godoc
// @Summary      Get guide by slug
// @Tags         guides
// @Produce      json
// @Param        slug  path      string  true  "Guide slug"
// @Success      200   {object}  entity.Guide
// @Failure      404   {object}  map[string]string
// @Router       /guides/{slug} [get]
func (h *ContentHandler) GetGuide(c *gin.Context) {
	guide, err := h.contentUseCase.GetGuide(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guide not found"})
		return
	}
	c.JSON(http.StatusOK, guide)
}

// ListArticles godoc
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /articles [get]
func (h *ContentHandler) ListArticles(c *gin.Context) {
	articles := h.contentUseCase.ListArticles(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle godoc
// @Summary      Get article by slug
// @Tags         articles
// @Produce      json
// @Param        slug  path      string  true  "Article slug"
// @Success      200   {object}  entity.Article
// @Failure      404   {object}  map[string]string
// @Router       /articles/{slug} [get]
func (h *ContentHandler) GetArticle(c *gin.Context) {
	article, err := h.contentUseCase.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListPlatinadorTips godoc
// @Summary      List platinador tips
// @Tags         platinador
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /platinador-tips [get]
func (h *ContentHandler) ListPlatinadorTips(c *gin.Context) {
	tips := h.contentUseCase.ListPlatinadorTips(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"tips": tips, "count": len(tips)})
}

// GetPlatinadorTip godoc
// @Summary      Get platinador tip by slug
// @Tags         platinador
// @Produce      json
// @Param        slug  path      string  true  "Tip slug"
// @Success      200   {object}  entity.PlatinadorTip
// @Failure      404   {object}  map[string]string
// @Router       /platinador-tips/{slug} [get]
func (h *ContentHandler) GetPlatinadorTip(c *gin.Context) {
	tip, err := h.contentUseCase.GetPlatinadorTip(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}
	c.JSON(http.StatusOK, tip)
}

// ListAuthors godoc
// @Summary      List authors
// @Tags         authors
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /authors [get]
func (h *ContentHandler) ListAuthors(c *gin.Context) {
	authors := h.contentUseCase.ListAuthors(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}

// GetAuthor godoc
// @Summary      Get author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      string  true  "Author ID"
// @Success      200  {object}  entity.Author
// @Failure      404  {object}  map[string]string
// @Router       /authors/{id} [get]
func (h *ContentHandler) GetAuthor(c *gin.Context) {
	author, err := h.contentUseCase.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, author)
}

// AdminGetReview godoc
// @Summary      Get review by ID (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id} [get]
func (h *ContentHandler) AdminGetReview(c *gin.Context) {
	review, err := h.contentUseCase.GetReviewByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// CreateReview godoc
// @Summary      Create review
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entity.Review  true  "Review"
// @Success      201      {object}  entity.Review
// @Failure      400      {object}  map[string]string
// @Failure      503      {object}  map[string]string
// @Router       /admin/reviews [post]
func (h *ContentHandler) CreateReview(c *gin.Context) {
	var review entity.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review.ID = ""

	if err := h.contentUseCase.SaveReview(c.Request.Context(), &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReview godoc
// @Summary      Update review
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "Review ID"
// @Param        request  body      entity.Review  true  "Review"
// @Success      200      {object}  entity.Review
// @Failure      400      {object}  map[string]string
// @Router       /admin/reviews/{id} [put]
func (h *ContentHandler) UpdateReview(c *gin.Context) {
	var review entity.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review.ID = c.Param("id")

	if err := h.contentUseCase.SaveReview(c.Request.Context(), &review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id} [delete]
func (h *ContentHandler) DeleteReview(c *gin.Context) {
	if err := h.contentUseCase.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// AdminGetNews godoc
// @Summary      Get news by ID (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "News ID"
// @Success      200  {object}  entity.News
// @Failure      404  {object}  map[string]string
// @Router       /admin/news/{id} [get]
func (h *ContentHandler) AdminGetNews(c *gin.Context) {
	news, err := h.contentUseCase.GetNewsByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// CreateNews godoc
// @Summary      Create news
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entity.News  true  "News"
// @Success      201      {object}  entity.News
// @Failure      400      {object}  map[string]string
// @Router       /admin/news [post]
func (h *ContentHandler) CreateNews(c *gin.Context) {
	var news entity.News
	if err := c.ShouldBindJSON(&news); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	news.ID = ""

	if err := h.contentUseCase.SaveNews(c.Request.Context(), &news); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateNews godoc
// @Summary      Update news
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string       true  "News ID"
// @Param        request  body      entity.News  true  "News"
// @Success      200      {object}  entity.News
// @Router       /admin/news/{id} [put]
func (h *ContentHandler) UpdateNews(c *gin.Context) {
	var news entity.News
	if err := c.ShouldBindJSON(&news); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	news.ID = c.Param("id")

	if err := h.contentUseCase.SaveNews(c.Request.Context(), &news); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// DeleteNews godoc
// @Summary      Delete news
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "News ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/news/{id} [delete]
func (h *ContentHandler) DeleteNews(c *gin.Context) {
	if err := h.contentUseCase.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// AdminGetGuide godoc
// @Summary      Get guide by ID (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Guide ID"
// @Success      200  {object}  entity.Guide
// @Failure      404  {object}  map[string]string
// @Router       /admin/guides/{id} [get]
func (h *ContentHandler) AdminGetGuide(c *gin.Context) {
	guide, err := h.contentUseCase.GetGuideByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// CreateGuide godoc
// @Summary      Create guide
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entity.Guide  true  "Guide"
// @Success      201      {object}  entity.Guide
// @Router       /admin/guides [post]
func (h *ContentHandler) CreateGuide(c *gin.Context) {
	var guide entity.Guide
	if err := c.ShouldBindJSON(&guide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guide.ID = ""

	if err := h.contentUseCase.SaveGuide(c.Request.Context(), &guide); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guide)
}

// UpdateGuide godoc
// @Summary      Update guide
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string        true  "Guide ID"
// @Param        request  body      entity.Guide  true  "Guide"
// @Success      200      {object}  entity.Guide
// @Router       /admin/guides/{id} [put]
func (h *ContentHandler) UpdateGuide(c *gin.Context) {
	var guide entity.Guide
	if err := c.ShouldBindJSON(&guide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guide.ID = c.Param("id")

	if err := h.contentUseCase.SaveGuide(c.Request.Context(), &guide); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// DeleteGuide godoc
// @Summary      Delete guide
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Guide ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/guides/{id} [delete]
func (h *ContentHandler) DeleteGuide(c *gin.Context) {
	if err := h.contentUseCase.DeleteGuide(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guide deleted successfully"})
}

// AdminGetArticle godoc
// @Summary      Get article by ID (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  entity.Article
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [get]
func (h *ContentHandler) AdminGetArticle(c *gin.Context) {
	article, err := h.contentUseCase.GetArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateArticle godoc
// @Summary      Create article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entity.Article  true  "Article"
// @Success      201      {object}  entity.Article
// @Failure      400      {object}  map[string]string
// @Router       /admin/articles [post]
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var article entity.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	article.ID = ""

	if err := h.contentUseCase.SaveArticle(c.Request.Context(), &article); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// UpdateArticle godoc
// @Summary      Update article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string          true  "Article ID"
// @Param        request  body      entity.Article  true  "Article"
// @Success      200      {object}  entity.Article
// @Router       /admin/articles/{id} [put]
func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	var article entity.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	article.ID = c.Param("id")

	if err := h.contentUseCase.SaveArticle(c.Request.Context(), &article); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary      Delete article
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/articles/{id} [delete]
func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	if err := h.contentUseCase.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

// AdminGetPlatinadorTip godoc
// @Summary      Get platinador tip by ID (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tip ID"
// @Success      200  {object}  entity.PlatinadorTip
// @Failure      404  {object}  map[string]string
// @Router       /admin/platinador-tips/{id} [get]
func (h *ContentHandler) AdminGetPlatinadorTip(c *gin.Context) {
	tip, err := h.contentUseCase.GetPlatinadorTipByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// CreatePlatinadorTip godoc
// @Summary      Create platinador tip
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entity.PlatinadorTip  true  "Tip"
// @Success      201      {object}  entity.PlatinadorTip
// @Failure      400      {object}  map[string]string
// @Router       /admin/platinador-tips [post]
func (h *ContentHandler) CreatePlatinadorTip(c *gin.Context) {
	var tip entity.PlatinadorTip
	if err := c.ShouldBindJSON(&tip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tip.ID = ""

	if err := h.contentUseCase.SavePlatinadorTip(c.Request.Context(), &tip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tip)
}

// UpdatePlatinadorTip godoc
// @Summary      Update platinador tip
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "Tip ID"
// @Param        request  body      entity.PlatinadorTip  true  "Tip"
// @Success      200      {object}  entity.PlatinadorTip
// @Router       /admin/platinador-tips/{id} [put]
func (h *ContentHandler) UpdatePlatinadorTip(c *gin.Context) {
	var tip entity.PlatinadorTip
	if err := c.ShouldBindJSON(&tip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tip.ID = c.Param("id")

	if err := h.contentUseCase.SavePlatinadorTip(c.Request.Context(), &tip); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// DeletePlatinadorTip godoc
// @Summary      Delete platinador tip
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tip ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/platinador-tips/{id} [delete]
func (h *ContentHandler) DeletePlatinadorTip(c *gin.Context) {
	if err := h.contentUseCase.DeletePlatinadorTip(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted successfully"})
}

// Seed godoc
// @Summary      Seed sample content
// @Description  Copies the sample set into an empty database
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.SeedResult
// @Failure      503  {object}  map[string]string
// @Router       /admin/seed [post]
func (h *ContentHandler) Seed(c *gin.Context) {
	result, err := h.contentUseCase.SeedIfEmpty(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Skipped {
		h.logger.Info("Seed requested on a populated database, nothing written")
	}
	c.JSON(http.StatusOK, result)
}
