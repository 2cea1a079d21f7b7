package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vesper-eve/token-pulse/internal/pulse"
)

// PulseHandler handles token pulse API requests
type PulseHandler struct {
	service *pulse.Service
}

// NewPulseHandler creates a new PulseHandler
func NewPulseHandler(service *pulse.Service) *PulseHandler {
	return &PulseHandler{service: service}
}

// Get returns the pulse for one or more token addresses
// GET /api/v1/pulse?token=<addr> | ?tokens=<addr,addr,...> [&format=full|summary]
func (h *PulseHandler) Get(c *gin.Context) {
	format := c.DefaultQuery("format", "full")

	// token wins over tokens when both are present
	if token := strings.TrimSpace(c.Query("token")); token != "" {
		h.getSingle(c, token, format)
		return
	}

	addresses := splitAddresses(c.Query("tokens"))
	if len(addresses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No token address provided",
			"usage":   "GET /api/v1/pulse?token=<address> or ?tokens=<addr1>,<addr2>",
			"example": "/api/v1/pulse?token=0x6982508145454ce325ddbe47a25d4ec3d2311933",
		})
		return
	}
	if len(addresses) > pulse.MaxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Too many addresses",
			"message": "Maximum 10 addresses per request",
		})
		return
	}

	h.getBatch(c, addresses, format)
}

// getSingle serves the token= path. Pipeline errors are not isolated here:
// they surface as the request-level 500.
func (h *PulseHandler) getSingle(c *gin.Context, address, format string) {
	result, err := h.service.GetPulse(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal error",
			"message": err.Error(),
		})
		return
	}

	if format == "summary" {
		c.JSON(http.StatusOK, gin.H{
			"summary": pulse.FormatSummary(result),
			"result":  result,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// getBatch serves the tokens= path with per-address failure isolation.
func (h *PulseHandler) getBatch(c *gin.Context, addresses []string, format string) {
	results := h.service.GetPulseBatch(c.Request.Context(), addresses)

	if format == "summary" {
		summaries := make([]string, len(results))
		for i, r := range results {
			summaries[i] = pulse.FormatSummary(r)
		}
		c.JSON(http.StatusOK, gin.H{
			"count":     len(results),
			"summaries": summaries,
			"results":   results,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// splitAddresses parses a comma-separated address list, trimming entries and
// dropping empties. Addresses are not deduplicated.
func splitAddresses(raw string) []string {
	var addresses []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			addresses = append(addresses, trimmed)
		}
	}
	return addresses
}
