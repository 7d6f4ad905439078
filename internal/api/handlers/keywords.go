package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaniego/hive-scrutineer/internal/text"
)

// KeywordsHandler serves the standalone keyword extraction endpoints,
// usable without running a full analysis.
type KeywordsHandler struct{}

// NewKeywordsHandler creates a new keywords handler.
func NewKeywordsHandler() *KeywordsHandler {
	return &KeywordsHandler{}
}

type extractRequest struct {
	Text          string `json:"text" binding:"required"`
	MinOccurrence int    `json:"min_occurrence"`
	Top           int    `json:"top"`
}

// Keywords godoc
// @Summary Extract single-word keywords from text
// @Description Normalizes the text, drops stop words and returns keyword
// @Description occurrence counts at or above min_occurrence (default 4).
// @Tags keywords
// @Accept json
// @Produce json
// @Param request body extractRequest true "Text and extraction options"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/keywords [post]
func (h *KeywordsHandler) Keywords(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keywords := text.Keywords(text.Normalize(req.Text), req.MinOccurrence)
	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

// Bigrams godoc
// @Summary Extract two-word bigrams from text
// @Description Returns bigram occurrence counts at or above min_occurrence
// @Description (default 4), plus a ranked subset when top is set.
// @Tags keywords
// @Accept json
// @Produce json
// @Param request body extractRequest true "Text and extraction options"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/bigrams [post]
func (h *KeywordsHandler) Bigrams(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bigrams := text.Bigrams(text.Normalize(req.Text), req.MinOccurrence)
	resp := gin.H{"bigrams": bigrams}
	if req.Top > 0 {
		resp["top"] = text.TopBigrams(bigrams, req.Top)
	}
	c.JSON(http.StatusOK, resp)
}
