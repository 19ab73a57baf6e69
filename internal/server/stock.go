package server

import (
	"net/http"

	inventorydomain "github.com/aushadhi/pos/internal/inventory/domain"
	"github.com/gin-gonic/gin"
)

// ListStock returns the batch catalog, optionally filtered by name,
// code or in-stock status.
func (s *Server) ListStock(c *gin.Context) {
	var req inventorydomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	batches, err := s.inventory.GetAll(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// UpsertStock records a stock intake. Quantity adds onto an existing
// batch row; prices and expiry overwrite it.
func (s *Server) UpsertStock(c *gin.Context) {
	var req inventorydomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c, err)
		return
	}
	batch, err := s.inventory.Upsert(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}
