package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/inventory/internal/domain/service"
)

// CatalogHandler serves CRUD endpoints for one catalog entity T with wire
// form D.
type CatalogHandler[T any, D any] struct {
	svc     service.Catalog[T]
	toModel func(D, int64) T
	toDTO   func(T) D
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler[T any, D any](svc service.Catalog[T], toModel func(D, int64) T, toDTO func(T) D) *CatalogHandler[T, D] {
	return &CatalogHandler[T, D]{svc: svc, toModel: toModel, toDTO: toDTO}
}

// Register mounts the collection and item routes on group.
func (h *CatalogHandler[T, D]) Register(group gin.IRoutes) {
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *CatalogHandler[T, D]) Create(c *gin.Context) {
	var req D
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.svc.Create(c.Request.Context(), h.toModel(req, 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toDTO(h.toModel(req, id)))
}

func (h *CatalogHandler[T, D]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entity, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(*entity))
}

func (h *CatalogHandler[T, D]) List(c *gin.Context) {
	entities, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(entities) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]D, 0, len(entities))
	for _, e := range entities {
		response = append(response, h.toDTO(e))
	}
	c.JSON(http.StatusOK, response)
}

func (h *CatalogHandler[T, D]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req D
	if !bindJSON(c, &req) {
		return
	}

	entity := h.toModel(req, id)
	if err := h.svc.Update(c.Request.Context(), entity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(entity))
}

func (h *CatalogHandler[T, D]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
