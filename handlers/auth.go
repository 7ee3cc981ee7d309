package handlers

import (
	"errors"
	"net/http"

	"roamly/services/user"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

func (h *AuthHandler) respondErr(c *gin.Context, err error, action string) {
	var vErr user.ValidationError
	var authErr user.AuthenticationError
	var nfErr user.NotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, authErr.Error(), "")
	case errors.As(err, &nfErr):
		utils.JSONError(c, http.StatusNotFound, nfErr.Error(), "")
	default:
		h.Logger.Error(action+" failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error "+action, "")
	}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.Svc.Register(input)
	if err != nil {
		h.respondErr(c, err, "registering user")
		return
	}
	respondCreated(c, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	resp, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		h.respondErr(c, err, "authenticating user")
		return
	}
	respondOK(c, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	usr, err := h.Svc.GetByID(userID)
	if err != nil {
		h.respondErr(c, err, "fetching profile")
		return
	}
	respondOK(c, usr)
}
