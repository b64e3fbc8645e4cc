package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"
)

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotConfigured):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrDeliveryFailed):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		logger.L().Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("traceID", logger.TraceIDFromContext(c.Request.Context())),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
