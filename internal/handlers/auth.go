package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gamercv/gamercv-api/internal/handlers/dto"
	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gamercv/gamercv-api/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type AuthHandler struct {
	accounts   *services.AccountService
	jwtManager *auth.JWTManager
	redis      *redis.Client
}

func NewAuthHandler(accounts *services.AccountService, jwtMgr *auth.JWTManager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{accounts: accounts, jwtManager: jwtMgr, redis: rdb}
}

// Register provisions a new account and returns the profile with a token pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.accounts.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.issueTokens(profile.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   dto.ProfileResponse(profile),
		"tokens": tokens,
	})
}

// Login checks credentials and issues a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.issueTokens(profile.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   dto.ProfileResponse(profile),
		"tokens": tokens,
	})
}

// Logout blacklists the presented token in redis until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ttl := time.Until(exp)
	h.redis.Set(context.Background(), "blacklist:"+rawToken, 1, ttl)

	c.Status(http.StatusOK)
}

// Refresh trades a valid refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.jwtManager.Verify(req.RefreshToken, auth.TokenRefresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	accessToken, err := h.jwtManager.Generate(claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *AuthHandler) issueTokens(userID string) (*dto.TokenPair, error) {
	accessToken, err := h.jwtManager.Generate(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := h.jwtManager.GenerateRefresh(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
