package handler

import (
	appcatalog "github.com/bizdesk/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles service catalog endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *appcatalog.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Create handles POST /services
func (h *CatalogHandler) Create(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appcatalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.catalogService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /services
func (h *CatalogHandler) List(c *gin.Context) {
	var req appcatalog.ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.catalogService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, req.Page, req.PageSize)
}

// Get handles GET /services/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid service id")
		return
	}

	resp, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /services/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid service id")
		return
	}

	var req appcatalog.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.catalogService.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /services/:id (soft delete)
func (h *CatalogHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid service id")
		return
	}

	if err := h.catalogService.Archive(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": id})
}
