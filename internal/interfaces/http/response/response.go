package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vox-market.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinels are mapped to their HTTP
// shape here; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrVendorPending):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeVendorPending, "Your vendor account is pending verification", err)
	case errors.Is(err, domainerrors.ErrVendorRejected):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeVendorDenied, "Your vendor account has been rejected", err)
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "status has already been decided", err)
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	default:
		return domainerrors.InternalError(err)
	}
}
