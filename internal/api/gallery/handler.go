package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store catalog.Store
}

func NewHandler(store catalog.Store) *Handler {
	return &Handler{store: store}
}

// GET /gallery?filter=&value=&order=&pg=
func (h *Handler) List(c *gin.Context) {
	filter := c.Query("filter")
	value := c.Query("value")
	order := c.Query("order")

	q, err := catalog.ResolveListQuery(filter, value, order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	pg, err := strconv.Atoi(c.DefaultQuery("pg", "1"))
	if err != nil || pg < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}

	page, err := catalog.FetchPage(h.store, q, pg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, toListResponse(page, filter, value, order))
}

// GET /gallery/product?id=
func (h *Handler) Product(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := h.store.ByIDNumber(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"painting": p})
}
