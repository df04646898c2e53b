package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/services"
)

// respondBindError turns a request binding failure into a 400. Field-level
// validation failures name the offending fields; anything else (malformed
// JSON, wrong types) reports the parse error as-is.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" failed on '"+fe.Tag()+"'")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + strings.Join(fields, ", ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// respondServiceError maps service-layer errors onto HTTP statuses. The raw
// message is only exposed for client-caused errors; internal failures get a
// generic body.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(entity+" not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, services.ErrJournalUnbalanced),
		errors.Is(err, services.ErrJournalZeroTotal),
		errors.Is(err, services.ErrJournalMinLines),
		errors.Is(err, services.ErrJournalBothSides):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate "+entity, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting state for "+entity, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrDependency):
		logger.Error("Upstream dependency failed", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream dependency unavailable"})
	default:
		logger.Error("Service call failed", slog.String("entity", entity), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// getPaginationParams reads limit/offset query parameters, falling back to
// sane defaults on absence or garbage.
func getPaginationParams(c *gin.Context) (limit int, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
