package analysis

import (
	"context"
	"strings"
	"sync"
)

// authorHistory caches the deep-mode comparison baseline for the author
// most recently analyzed. It is invalidated whenever the author changes
// between successive calls, and refetched when the cached comparison post
// turns out to be the current candidate.
type authorHistory struct {
	mu       sync.Mutex
	author   string
	loaded   bool
	permlink string
	template []string
}

// templateFor returns the line set of the first qualifying comparison post
// for author, skipping candidatePermlink so a post is never compared
// against itself. ok is false when the author has no usable baseline.
func (h *authorHistory) templateFor(ctx context.Context, fetcher PostFetcher, author, candidatePermlink string) ([]string, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded && h.author == author && h.permlink != candidatePermlink {
		return h.template, h.template != nil, nil
	}

	posts, err := fetcher.GetRecentPosts(ctx, author, historySampleSize)
	if err != nil {
		return nil, false, err
	}

	h.author = author
	h.loaded = true
	h.permlink = ""
	h.template = nil
	for _, post := range posts {
		if post.Permlink == candidatePermlink {
			continue
		}
		h.permlink = post.Permlink
		h.template = strings.Split(post.Body, "\n")
		break
	}
	return h.template, h.template != nil, nil
}
