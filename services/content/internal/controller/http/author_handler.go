package http

import (
	"net/http"

	"platina/services/content/internal/entity"
	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorUseCase usecase.AuthorUseCase
}

func NewAuthorHandler(authorUseCase usecase.AuthorUseCase) *AuthorHandler {
	return &AuthorHandler{
		authorUseCase: authorUseCase,
	}
}

type CreateAuthorRequest struct {
	entity.Author
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required_with=Email,omitempty,min=6"`
}

// CreateAuthor godoc
// @Summary      Create author
// @Description  Create an author profile, optionally with a login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateAuthorRequest  true  "Author"
// @Success      201      {object}  entity.Author
// @Failure      400      {object}  map[string]string
// @Router       /admin/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var login *usecase.Credentials
	if req.Email != "" {
		login = &usecase.Credentials{Email: req.Email, Password: req.Password}
	}

	author := req.Author
	if err := h.authorUseCase.CreateAuthor(c.Request.Context(), &author, login); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary      Update author
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "Author ID"
// @Param        request  body      entity.Author  true  "Author"
// @Success      200      {object}  entity.Author
// @Failure      404      {object}  map[string]string
// @Router       /admin/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	var author entity.Author
	if err := c.ShouldBindJSON(&author); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	author.ID = c.Param("id")

	if err := h.authorUseCase.UpdateAuthor(c.Request.Context(), &author); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary      Delete author
// @Description  Delete the author profile and the login linked to it
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Author ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	if err := h.authorUseCase.RemoveAuthor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Author deleted successfully"})
}
