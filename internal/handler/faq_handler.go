package handler

import (
	"errors"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"github.com/brightlabs/sciencebot-go/internal/service"
	"github.com/brightlabs/sciencebot-go/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FAQHandler exposes the admin-panel CRUD endpoints for FAQ entries.
type FAQHandler struct {
	faqService *service.FAQService
	logger     *zap.Logger
}

// NewFAQHandler creates an FAQ handler.
func NewFAQHandler(faqService *service.FAQService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
		logger:     logger,
	}
}

// List returns all FAQ entries.
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.faqService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("listing faqs failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "listing faqs failed"})
		return
	}

	c.JSON(200, gin.H{"faqs": faqs})
}

// Get returns one FAQ entry.
func (h *FAQHandler) Get(c *gin.Context) {
	faq, err := h.faqService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrFAQNotFound) {
			c.JSON(404, gin.H{"error": "faq not found"})
			return
		}
		h.logger.Error("getting faq failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "getting faq failed"})
		return
	}

	c.JSON(200, faq)
}

// Create stores a new FAQ entry.
func (h *FAQHandler) Create(c *gin.Context) {
	var faq model.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	faq.ID = "" // ids are server-generated on create

	saved, err := h.faqService.Save(c.Request.Context(), faq)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, saved)
}

// Update replaces an existing FAQ entry.
func (h *FAQHandler) Update(c *gin.Context) {
	var faq model.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	faq.ID = c.Param("id")

	saved, err := h.faqService.Save(c.Request.Context(), faq)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, saved)
}

// Delete removes an FAQ entry.
func (h *FAQHandler) Delete(c *gin.Context) {
	err := h.faqService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrFAQNotFound) {
			c.JSON(404, gin.H{"error": "faq not found"})
			return
		}
		h.logger.Error("deleting faq failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "deleting faq failed"})
		return
	}

	c.JSON(200, gin.H{"success": true})
}
