// Package analysis wires the content-scoring pipeline: normalization,
// keyword extraction, optional deep-mode deduplication, the per-dimension
// analyzers and the weighted aggregate.
package analysis

import (
	"context"
	"strings"

	"github.com/rmaniego/hive-scrutineer/internal/analysis/dimension"
	"github.com/rmaniego/hive-scrutineer/internal/lang"
	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/text"
)

// autoSkipFloor is the score below which a guard dimension (title, emojis)
// aborts the analysis when auto-skip is requested.
const autoSkipFloor = 0.8

// historySampleSize is how many recent posts are fetched when looking for
// a deep-mode comparison baseline.
const historySampleSize = 2

// PostFetcher resolves posts from the remote node. Implementations return
// (nil, nil) for a post that does not exist; errors are reserved for
// transport-level failures.
type PostFetcher interface {
	GetPost(ctx context.Context, author, permlink string, retries int) (*models.Post, error)
	GetRecentPosts(ctx context.Context, author string, limit int) ([]models.Post, error)
}

// Params holds the per-engine analysis thresholds. Weight handling is
// separate (SetWeights) since weights may be replaced after construction.
type Params struct {
	MinimumScore float64
	MaxEmojis    int
	MaxUserTags  int
	MaxTags      int
	Retries      int
	Deep         bool
	Verbose      bool
}

// DefaultParams returns the default analysis thresholds.
func DefaultParams() Params {
	return Params{
		MinimumScore: 80,
		MaxEmojis:    0,
		MaxUserTags:  5,
		MaxTags:      5,
		Retries:      1,
	}
}

// Options are per-call analysis options.
type Options struct {
	// AutoSkip aborts early when the title or emoji score falls below the
	// floor, before the expensive body and image dimensions run.
	AutoSkip bool
}

// Engine scores posts. It processes one post at a time; the author history
// cache is not safe for concurrent Analyze calls on the same Engine.
type Engine struct {
	params   Params
	weights  [6]float64
	fetcher  PostFetcher
	detector lang.Detector
	history  *authorHistory
}

// NewEngine creates an engine with unit weights for all six dimensions.
// fetcher may be nil when posts are always supplied directly and deep mode
// is off.
func NewEngine(fetcher PostFetcher, detector lang.Detector, params Params) *Engine {
	return &Engine{
		params:   params,
		weights:  [6]float64{1, 1, 1, 1, 1, 1},
		fetcher:  fetcher,
		detector: detector,
		history:  &authorHistory{},
	}
}

// SetWeights replaces the per-dimension weights, in the fixed order title,
// body, emojis, images, tagging, tags. Weights are not validated: a
// non-positive weight sum makes the aggregate undefined and is a caller
// error.
func (e *Engine) SetWeights(title, body, emojis, images, tagging, tags float64) {
	e.weights = [6]float64{title, body, emojis, images, tagging, tags}
}

// Params returns the engine's analysis thresholds.
func (e *Engine) Params() Params {
	return e.params
}

// MeetsBar reports whether an analysis clears the configured minimum
// score. The minimum is expressed on a 0-100 scale.
func (e *Engine) MeetsBar(a *models.Analysis) bool {
	return a != nil && a.Score*100 >= e.params.MinimumScore
}

// AnalyzeRef resolves (author, permlink) via the fetcher and analyzes the
// post. A post the node does not know yields (nil, nil).
func (e *Engine) AnalyzeRef(ctx context.Context, author, permlink string, opts Options) (*models.Analysis, error) {
	if e.fetcher == nil {
		return nil, ErrNoFetcher
	}
	post, err := e.fetcher.GetPost(ctx, author, permlink, e.params.Retries)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return e.Analyze(ctx, post, opts)
}

// Analyze scores a post. The empty result (nil, nil) signals an expected
// low-quality outcome: missing title, no scorable content after
// normalization or deduplication, or an auto-skip threshold failure.
// Errors are reserved for collaborator failures.
func (e *Engine) Analyze(ctx context.Context, post *models.Post, opts Options) (*models.Analysis, error) {
	if post == nil || post.Title == "" {
		return nil, nil
	}

	body := post.Body
	if e.params.Deep {
		deduped, err := e.deduplicate(ctx, post)
		if err != nil {
			return nil, err
		}
		body = deduped
	}

	normalized := text.Normalize(body)
	if normalized == "" {
		return nil, nil
	}

	verbose := e.params.Verbose
	keywords := text.Bigrams(normalized, text.DefaultMinOccurrence)

	result := &models.Analysis{
		Author:   post.Author,
		Permlink: post.Permlink,
		Deep:     e.params.Deep,
	}
	if verbose {
		result.URL = post.URL
	}

	// Cheap dimensions first so auto-skip can gate the expensive ones.
	result.Title = dimension.Title(ctx, post.Title, keywords, e.detector, verbose)
	result.Emojis = dimension.Emojis(body, e.params.MaxEmojis, verbose)
	if opts.AutoSkip && (result.Title.Score < autoSkipFloor || result.Emojis.Score < autoSkipFloor) {
		return nil, nil
	}

	result.Body = dimension.Body(ctx, normalized, e.detector, verbose)
	result.Images = dimension.Images(body, dimension.WordCount(normalized), verbose)
	result.Tagging = dimension.Mentions(body, e.params.MaxUserTags, verbose)
	result.Tags = dimension.TagCount(post.Tags(), e.params.MaxTags, verbose)

	scores := [6]float64{
		result.Title.Score,
		result.Body.Score,
		result.Emojis.Score,
		result.Images.Score,
		result.Tagging.Score,
		result.Tags.Score,
	}
	var sum, weightSum float64
	for i, score := range scores {
		sum += score * e.weights[i]
		weightSum += e.weights[i]
	}
	result.Score = sum / weightSum

	return result, nil
}

// deduplicate strips lines from the post body that recur verbatim in the
// author's comparison post. Deep mode without a usable baseline yields no
// scorable content rather than falling back to the raw body.
func (e *Engine) deduplicate(ctx context.Context, post *models.Post) (string, error) {
	if e.fetcher == nil {
		return "", ErrNoFetcher
	}

	template, ok, err := e.history.templateFor(ctx, e.fetcher, post.Author, post.Permlink)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	boilerplate := make(map[string]bool, len(template))
	for _, line := range template {
		boilerplate[line] = true
	}

	lines := strings.Split(post.Body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !boilerplate[line] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}
