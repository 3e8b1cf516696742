package handlers

import (
	"bytes"
	"context"
	"net/http"

	"awinfeed/internal/logger"
	"awinfeed/internal/services/awin"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker/processors"
	"awinfeed/internal/worker/processors/export"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// Generator produces a fresh normalized feed.
type Generator interface {
	Generate(ctx context.Context) ([]awin.Record, error)
}

type FeedHandler struct {
	generator Generator
	exporter  *export.Exporter
	logger    *logger.Logger
}

func NewFeedHandler(generator Generator, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		generator: generator,
		exporter:  export.New(logger),
		logger:    logger,
	}
}

// Full serves the feed with every AWIN column.
func (h *FeedHandler) Full(c *gin.Context) {
	h.serveCSV(c, "awin_product_feed.csv", awin.FullColumns())
}

// Minimal serves the feed with only the required columns.
func (h *FeedHandler) Minimal(c *gin.Context) {
	h.serveCSV(c, "awin_product_feed_minimal.csv", awin.MinimalColumns())
}

// JSON returns the normalized records for inspection.
func (h *FeedHandler) JSON(c *gin.Context) {
	records, ok := h.generate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"count": len(records),
	})
}

func (h *FeedHandler) serveCSV(c *gin.Context, filename string, columns []string) {
	records, ok := h.generate(c)
	if !ok {
		return
	}

	// rendered to memory first; nothing is sent until it succeeds
	var buf bytes.Buffer
	if err := h.exporter.WriteRows(&buf, processors.Rows(records), columns); err != nil {
		h.logger.Error("Failed to render feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render feed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *FeedHandler) generate(c *gin.Context) ([]awin.Record, bool) {
	records, err := h.generator.Generate(c.Request.Context())
	if err == nil {
		return records, true
	}

	h.logger.Error("Failed to generate feed: %v", err)
	if errors.Is(err, shopify.ErrUnauthorized) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Shopify rejected the configured credentials"})
	} else {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products from Shopify"})
	}
	return nil, false
}
