package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := validation.BindJSON(c, &req); err != nil {
		respondValidation(c, err)
		return
	}

	input, err := validation.BuildRegisterUserInput(req)
	if err != nil {
		if !respondValidation(c, err) {
			zap.L().Error("failed to validate registration", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailRegisterUser)
		}
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondValidation(c, validation.Errors{{Field: validation.FieldEmail, MsgKey: validation.MsgUniqueEmail}})
		case errors.Is(err, domain.ErrDuplicateUsername):
			respondValidation(c, validation.Errors{{Field: "username", MsgKey: validation.MsgUniqueUsername}})
		default:
			zap.L().Error("failed to register user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailRegisterUser)
		}
		return
	}

	zap.L().Info("user registered", zap.Uint64("user_id", user.ID))
	c.JSON(http.StatusCreated, dto.TokenResponse{
		Message: message(c, msgUserRegistered),
		Token:   token,
		Status:  true,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	payload, err := validation.BindPayload(c)
	if err != nil {
		respondValidation(c, err)
		return
	}

	req, err := validation.DecodeLogin(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidCredentials)
		default:
			zap.L().Error("failed to log in", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailLogin)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message: message(c, msgLoginSuccessful),
		Token:   token,
		Status:  true,
	})
}
