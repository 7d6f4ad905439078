package utils

import (
	"fmt"
	"strings"
)

// DefaultFrontend is the frontend used for post URLs when the node did
// not return one.
const DefaultFrontend = "https://hive.blog"

// PostURL builds the canonical frontend URL for a post.
func PostURL(frontend, author, permlink string) string {
	if frontend == "" {
		frontend = DefaultFrontend
	}
	frontend = strings.TrimRight(frontend, "/")
	return fmt.Sprintf("%s/@%s/%s", frontend, author, permlink)
}

// ResolvePostURL prefers the node-provided relative URL, rooted at the
// frontend, falling back to the canonical author/permlink form.
func ResolvePostURL(frontend, nodeURL, author, permlink string) string {
	if nodeURL == "" {
		return PostURL(frontend, author, permlink)
	}
	if strings.HasPrefix(nodeURL, "http://") || strings.HasPrefix(nodeURL, "https://") {
		return nodeURL
	}
	if frontend == "" {
		frontend = DefaultFrontend
	}
	return strings.TrimRight(frontend, "/") + "/" + strings.TrimLeft(nodeURL, "/")
}
