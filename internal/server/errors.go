package server

import (
	"errors"
	"net/http"

	inventorydomain "github.com/aushadhi/pos/internal/inventory/domain"
	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	"github.com/aushadhi/pos/internal/pricing"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

var statusByError = map[error]int{
	invoicedomain.ErrEmptyInvoice:      http.StatusBadRequest,
	invoicedomain.ErrInvalidQuantity:   http.StatusBadRequest,
	invoicedomain.ErrInvalidRate:       http.StatusBadRequest,
	invoicedomain.ErrInvalidLine:       http.StatusBadRequest,
	invoicedomain.ErrInvalidPayment:    http.StatusBadRequest,
	invoicedomain.ErrInvalidInvoiceID:  http.StatusBadRequest,
	invoicedomain.ErrInsufficientStock: http.StatusConflict,
	invoicedomain.ErrInvoiceNotFound:   http.StatusNotFound,
	invoicedomain.ErrNotReturnable:     http.StatusConflict,
	invoicedomain.ErrReturnExceedsSold: http.StatusConflict,
	inventorydomain.ErrInvalidItemCode: http.StatusBadRequest,
	inventorydomain.ErrInvalidItemName: http.StatusBadRequest,
	inventorydomain.ErrInvalidQuantity: http.StatusBadRequest,
	inventorydomain.ErrInvalidPrice:    http.StatusBadRequest,
	inventorydomain.ErrBatchNotFound:   http.StatusNotFound,
	reportdomain.ErrInvalidDay:         http.StatusBadRequest,
	reportdomain.ErrInvalidRange:       http.StatusBadRequest,
	pricing.ErrInvalidInput:            http.StatusBadRequest,
}

// AbortWithError maps domain sentinel errors to HTTP statuses. Unknown
// errors become opaque 500s so internals never leak.
func AbortWithError(c *gin.Context, err error) {
	for sentinel, status := range statusByError {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(status, apiError{Code: sentinel.Error()})
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{Code: "internal_error"})
}

func invalidRequestError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, apiError{
		Code:    "invalid_request",
		Message: err.Error(),
	})
}
