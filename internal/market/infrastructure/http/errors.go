package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.PackNotFoundError{}),
		errors.Is(err, &domain.CardNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		c.JSON(http.StatusPaymentRequired, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.NotOwnerError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AlreadyListedError{}),
		errors.Is(err, &domain.CardNotForSaleError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
