package api

import (
	"errors"
	"net/http"

	reqdto "adslot-panel/internal/handler/dto/request"
	resdto "adslot-panel/internal/handler/dto/response"
	"adslot-panel/internal/handler/httperr"
	"adslot-panel/internal/handler/middleware"
	"adslot-panel/internal/pkg/config"
	"adslot-panel/internal/pkg/cookie"
	"adslot-panel/internal/pkg/jwt"
	"adslot-panel/internal/usecase/commands"
	"adslot-panel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	operatorQueries queries.OperatorQueries
	jwtService      *jwt.Service
	cfg             config.Config
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	operatorQueries queries.OperatorQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		operatorQueries: operatorQueries,
		jwtService:      jwtService,
		cfg:             cfg,
	}
}

// @Summary Operator login
// @Description Authenticate a configured operator and set token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	operatorView, err := h.operatorQueries.GetByID(c.Request.Context(), result.OperatorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken,
		result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(),
		h.jwtService.RefreshTokenDuration(),
	)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Operator: resdto.FromOperatorView(operatorView),
	})
}

// @Summary Refresh tokens
// @Description Rotate the access/refresh token pair from the refresh cookie
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	tokenPair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		tokenPair.AccessToken,
		tokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(),
		h.jwtService.RefreshTokenDuration(),
	)

	c.Status(http.StatusNoContent)
}

// @Summary Logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Description Return the operator behind the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OperatorResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}

	operatorView, err := h.operatorQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown operator", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperatorView(operatorView))
}
