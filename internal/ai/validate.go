package ai

import (
	"fmt"
	"strings"

	"github.com/alkime/postcraft/internal/post"
)

// postsFromPayload admits a provider array into the domain model. The payload
// is untrusted: it must be non-empty and every entry must carry a non-empty
// post body and intent. IDs are left for the caller to assign.
func postsFromPayload(items []postPayload) ([]post.Post, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty post list", ErrInvalidResponse)
	}
	posts := make([]post.Post, 0, len(items))
	for i, item := range items {
		p, err := postFromPayload(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// postFromPayload validates a single {post, intent} pair.
func postFromPayload(item postPayload) (post.Post, error) {
	if strings.TrimSpace(item.Post) == "" {
		return post.Post{}, fmt.Errorf("%w: missing post body", ErrInvalidResponse)
	}
	if strings.TrimSpace(item.Intent) == "" {
		return post.Post{}, fmt.Errorf("%w: missing intent", ErrInvalidResponse)
	}
	return post.Post{Post: item.Post, Intent: item.Intent}, nil
}
