package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "jobport.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status; known
// sentinels map to sensible statuses; anything else is a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrOrderNotPending),
		errors.Is(err, domainerrors.ErrInvalidGateway):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrEmailNotConfirmed):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidSignature):
		return domainerrors.NewAppError(http.StatusBadRequest, "invalid signature", err)
	default:
		return domainerrors.InternalError(err)
	}
}
