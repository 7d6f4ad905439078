package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaniego/hive-scrutineer/internal/analysis"
	"github.com/rmaniego/hive-scrutineer/internal/hive"
	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/utils"
)

// excerptRunes bounds the plain-text excerpt returned with each analysis.
const excerptRunes = 280

// AnalyzeHandler serves the post-analysis endpoints.
type AnalyzeHandler struct {
	engine   *analysis.Engine
	fetcher  analysis.PostFetcher
	frontend string
}

// NewAnalyzeHandler creates a new analysis handler.
func NewAnalyzeHandler(engine *analysis.Engine, fetcher analysis.PostFetcher, frontend string) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine:   engine,
		fetcher:  fetcher,
		frontend: frontend,
	}
}

// AnalyzeResponse wraps one analysis outcome. Result is null when the
// post was scored out early (missing title, no scorable content, or an
// auto-skip threshold failure).
type AnalyzeResponse struct {
	Result       *models.Analysis `json:"result"`
	MeetsMinimum bool             `json:"meets_minimum"`
	URL          string           `json:"url,omitempty"`
	Excerpt      string           `json:"excerpt,omitempty"`
}

// analyzeRequest is the POST body: a full post record plus per-call
// options.
type analyzeRequest struct {
	models.Post
	AutoSkip bool `json:"auto_skip"`
}

// AnalyzeByRef godoc
// @Summary Analyze a post by author and permlink
// @Description Resolves the post on the configured Hive node and runs the
// @Description full content-scoring pipeline on it.
// @Tags analysis
// @Produce json
// @Param author path string true "Post author"
// @Param permlink path string true "Post permlink"
// @Param auto_skip query bool false "Abort early when title or emoji score falls below 0.8"
// @Success 200 {object} AnalyzeResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/analyze/{author}/{permlink} [get]
func (h *AnalyzeHandler) AnalyzeByRef(c *gin.Context) {
	author := c.Param("author")
	permlink := c.Param("permlink")
	opts := analysis.Options{AutoSkip: c.Query("auto_skip") == "true"}

	post, err := h.fetcher.GetPost(c.Request.Context(), author, permlink, h.engine.Params().Retries)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	h.analyze(c, post, opts)
}

// AnalyzePost godoc
// @Summary Analyze a supplied post record
// @Description Runs the content-scoring pipeline on a post supplied in the
// @Description request body, without fetching it from the node. Deep mode
// @Description still consults the node for the author's recent posts.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "Post record and options"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) AnalyzePost(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.analyze(c, &req.Post, analysis.Options{AutoSkip: req.AutoSkip})
}

func (h *AnalyzeHandler) analyze(c *gin.Context, post *models.Post, opts analysis.Options) {
	result, err := h.engine.Analyze(c.Request.Context(), post, opts)
	if err != nil {
		h.renderError(c, err)
		return
	}

	resp := AnalyzeResponse{
		Result:       result,
		MeetsMinimum: h.engine.MeetsBar(result),
	}
	if result != nil {
		resp.URL = utils.ResolvePostURL(h.frontend, post.URL, post.Author, post.Permlink)
		resp.Excerpt = utils.Excerpt(post.Body, excerptRunes)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyzeHandler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, hive.ErrNodeFailed) {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
