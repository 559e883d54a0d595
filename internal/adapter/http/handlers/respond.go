package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/translator"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(msgKey, middleware.GetLang(c)))
}

// respondValidation writes a 400 for validation.Errors and reports whether it did.
func respondValidation(c *gin.Context, err error) bool {
	var violations validation.Errors
	if !errors.As(err, &violations) {
		return false
	}
	c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(violations, middleware.GetLang(c)))
	return true
}

func message(c *gin.Context, msgKey string) string {
	return translator.Localize(msgKey, middleware.GetLang(c), nil)
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

const (
	msgUserRegistered  = "userRegistered"
	msgLoginSuccessful = "loginSuccessful"
	msgTaskCreated     = "taskCreated"
	msgTaskUpdated     = "taskUpdated"
	msgTaskAssigned    = "taskAssigned"
)
