package http

import (
	"errors"
	"net/http"
	"time"

	"platina/pkg/middleware"
	"platina/services/content/internal/entity"
	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	authorUseCase usecase.AuthorUseCase
	sessionTTL    time.Duration
	secureCookie  bool
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, authorUseCase usecase.AuthorUseCase, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		authorUseCase: authorUseCase,
		sessionTTL:    sessionTTL,
		secureCookie:  secureCookie,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type MeResponse struct {
	User   *entity.User   `json:"user"`
	Author *entity.Author `json:"author,omitempty"`
}

type ProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	Avatar    string `json:"avatar"`
	PsnID     string `json:"psnId"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Bio       string `json:"bio"`
}

// Login godoc
// @Summary      Login
// @Description  Authenticate and receive a JWT, also set as the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      Get current user
// @Description  The logged-in user and its author profile, if any
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, author, err := h.authUseCase.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: user, Author: author})
}

// UpdateMyProfile godoc
// @Summary      Update my author profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ProfileRequest true "Profile"
// @Success      200  {object}  entity.Author
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me/profile [put]
func (h *AuthHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.authorUseCase.UpdateMyProfile(c.Request.Context(), userID, &entity.Author{
		Name:      req.Name,
		Avatar:    req.Avatar,
		PsnID:     req.PsnID,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		Bio:       req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}
