package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/middleware"
)

// requireSession reads the authenticated user's id and email out of the
// request context. The auth middleware put them there; a miss means the
// route was wired without it. Writes the error response itself and
// returns ok=false in that case.
func requireSession(ctx *gin.Context) (userID int64, email string, ok bool) {
	userIDInterface, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("User ID not found in request context")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, "", false
	}

	userID, castOK := userIDInterface.(int64)
	if !castOK {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Invalid user ID format")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, "", false
	}

	emailInterface, exists := ctx.Get(middleware.ContextEmailKey)
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("Email not found in request context")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, "", false
	}

	email, castOK = emailInterface.(string)
	if !castOK {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Invalid email format")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, "", false
	}

	return userID, email, true
}
