package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	appclient "github.com/bizdesk/backend/internal/application/client"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	BaseHandler
	clientService *appclient.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *appclient.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appclient.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.clientService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appclient.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.clientService.List(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, req.Page, req.PageSize)
}

// Search handles GET /clients/search
func (h *ClientHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	matches, err := h.clientService.SearchByName(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, matches)
}

// Export handles GET /clients/export, streaming the caller's clients
// as a CSV attachment
func (h *ClientHandler) Export(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rows, err := h.clientService.Export(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="clients.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"code", "business_name", "business_type", "creator_name", "created_at"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.Code,
			row.BusinessName,
			row.BusinessType,
			row.CreatorName,
			row.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client id")
		return
	}

	resp, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client id")
		return
	}

	var req appclient.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.clientService.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles POST /clients/:id/delete (soft delete)
func (h *ClientHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client id")
		return
	}

	if err := h.clientService.Archive(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": id})
}

// Restore handles POST /clients/:id/restore
func (h *ClientHandler) Restore(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client id")
		return
	}

	if err := h.clientService.Restore(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": id})
}
