package handler

import (
	appquote "github.com/bizdesk/backend/internal/application/quote"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *appquote.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *appquote.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Create handles POST /quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appquote.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.quoteService.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /quotes
func (h *QuoteHandler) List(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appquote.ListQuotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.quoteService.List(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, req.Page, req.PageSize)
}

// Get handles GET /quotes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote id")
		return
	}

	resp, err := h.quoteService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /quotes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote id")
		return
	}

	var req appquote.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.quoteService.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles POST /quotes/:id/delete (soft delete)
func (h *QuoteHandler) Delete(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote id")
		return
	}

	if err := h.quoteService.Archive(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": id})
}
