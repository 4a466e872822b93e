package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResourceService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// ResourceHandler exposes CRUD routes for one entity type.
type ResourceHandler[T any] struct {
	Service ResourceService[T]
}

func NewResourceHandler[T any](s ResourceService[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{Service: s}
}

// GET /api/<resource>
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/<resource>/:id
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/<resource>
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		badBody(c)
		return
	}
	if err := h.Service.Create(c.Request.Context(), &entity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

// PUT /api/<resource>/:id
// The body is applied over the stored entity, so omitted fields keep their value.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	entity, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(entity); err != nil {
		badBody(c)
		return
	}
	if err := h.Service.Update(c.Request.Context(), id, entity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// DELETE /api/<resource>/:id
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
