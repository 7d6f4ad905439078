package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaniego/hive-scrutineer/internal/models"
)

type stubDetector struct {
	confidences map[string]float64
	err         error
}

func (d *stubDetector) Confidences(_ context.Context, _ string) (map[string]float64, error) {
	return d.confidences, d.err
}

type fakeFetcher struct {
	post        *models.Post
	recent      []models.Post
	recentCalls int
	err         error
}

func (f *fakeFetcher) GetPost(_ context.Context, _, _ string, _ int) (*models.Post, error) {
	return f.post, f.err
}

func (f *fakeFetcher) GetRecentPosts(_ context.Context, _ string, _ int) ([]models.Post, error) {
	f.recentCalls++
	return f.recent, f.err
}

func englishDetector() *stubDetector {
	return &stubDetector{confidences: map[string]float64{"en": 1}}
}

func proseBody(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func samplePost() *models.Post {
	// 800 prose words with two non-adjacent images: 400 words per image is
	// the ideal ratio, so every dimension except title scores exactly.
	body := proseBody(400) + "\n![a](https://x/a.png)\n" +
		proseBody(400) + "\n![b](https://x/b.png)"
	return &models.Post{
		Author:       "alice",
		Permlink:     "garden-update",
		Title:        "a solid weekly garden update",
		Body:         body,
		JSONMetadata: []byte(`{"tags":["garden","nature"]}`),
	}
}

func TestAnalyzeScoresPost(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())

	result, err := engine.Analyze(context.Background(), samplePost(), Options{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "alice", result.Author)
	assert.Equal(t, "garden-update", result.Permlink)
	assert.InDelta(t, 0.95, result.Title.Score, 1e-9)
	assert.InDelta(t, 0.5, result.Body.Score, 1e-9)
	assert.InDelta(t, 1, result.Emojis.Score, 1e-9)
	assert.InDelta(t, 1, result.Images.Score, 1e-9)
	assert.InDelta(t, 1, result.Tagging.Score, 1e-9)
	assert.InDelta(t, 1, result.Tags.Score, 1e-9)

	// Unit weights average the six dimension scores.
	sum := result.Title.Score + result.Body.Score + result.Emojis.Score +
		result.Images.Score + result.Tagging.Score + result.Tags.Score
	assert.InDelta(t, sum/6, result.Score, 1e-9)
	assert.InDelta(t, 5.45/6, result.Score, 1e-9)
	assert.True(t, engine.MeetsBar(result))
}

func TestAnalyzeEmptyTitle(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())

	post := samplePost()
	post.Title = ""
	result, err := engine.Analyze(context.Background(), post, Options{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestAnalyzeNoScorableContent(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())

	post := samplePost()
	post.Body = "![a](https://x/a.png)"
	result, err := engine.Analyze(context.Background(), post, Options{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestAnalyzeAutoSkip(t *testing.T) {
	// Zero english confidence drives the title score to the floor.
	failing := &stubDetector{confidences: map[string]float64{}}
	engine := NewEngine(nil, failing, DefaultParams())

	result, err := engine.Analyze(context.Background(), samplePost(), Options{AutoSkip: true})
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = engine.Analyze(context.Background(), samplePost(), Options{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.Title.Score)
}

func TestSetWeights(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())
	engine.SetWeights(1, 0, 0, 0, 0, 0)

	result, err := engine.Analyze(context.Background(), samplePost(), Options{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, result.Title.Score, result.Score, 1e-9)
}

func TestMeetsBarNil(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())
	assert.False(t, engine.MeetsBar(nil))
}

func TestAnalyzeRefNoFetcher(t *testing.T) {
	engine := NewEngine(nil, englishDetector(), DefaultParams())

	_, err := engine.AnalyzeRef(context.Background(), "alice", "garden-update", Options{})
	require.ErrorIs(t, err, ErrNoFetcher)
}

func TestAnalyzeRefMissingPost(t *testing.T) {
	engine := NewEngine(&fakeFetcher{}, englishDetector(), DefaultParams())

	result, err := engine.AnalyzeRef(context.Background(), "alice", "gone", Options{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func deepParams() Params {
	params := DefaultParams()
	params.Deep = true
	params.Verbose = true
	return params
}

func TestDeepDeduplicatesBoilerplate(t *testing.T) {
	footer := "follow my blog for more garden updates"
	post := samplePost()
	post.Body = proseBody(450) + "\n" + footer

	fetcher := &fakeFetcher{
		recent: []models.Post{
			{Author: "alice", Permlink: "older-post", Body: "different intro\n" + footer},
		},
	}
	engine := NewEngine(fetcher, englishDetector(), deepParams())

	result, err := engine.Analyze(context.Background(), post, Options{})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Body.Detail)

	// The shared footer line is boilerplate and must not count as prose.
	assert.Equal(t, 450, result.Body.Detail.Words)
	assert.True(t, result.Deep)
}

func TestDeepNoBaseline(t *testing.T) {
	post := samplePost()
	fetcher := &fakeFetcher{
		recent: []models.Post{
			{Author: "alice", Permlink: post.Permlink, Body: post.Body},
		},
	}
	engine := NewEngine(fetcher, englishDetector(), deepParams())

	result, err := engine.Analyze(context.Background(), post, Options{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDeepAllBoilerplate(t *testing.T) {
	post := samplePost()
	fetcher := &fakeFetcher{
		recent: []models.Post{
			{Author: "alice", Permlink: "older-post", Body: post.Body},
		},
	}
	engine := NewEngine(fetcher, englishDetector(), deepParams())

	result, err := engine.Analyze(context.Background(), post, Options{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDeepHistoryReused(t *testing.T) {
	post := samplePost()
	fetcher := &fakeFetcher{
		recent: []models.Post{
			{Author: "alice", Permlink: "older-post", Body: "different intro"},
		},
	}
	engine := NewEngine(fetcher, englishDetector(), deepParams())

	for i := 0; i < 2; i++ {
		result, err := engine.Analyze(context.Background(), post, Options{})
		require.NoError(t, err)
		require.NotNil(t, result)
	}
	assert.Equal(t, 1, fetcher.recentCalls)
}
