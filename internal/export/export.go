// Package export renders the working set into clipboard-friendly text.
package export

import (
	"fmt"
	"strings"

	"github.com/alkime/postcraft/internal/post"
	"github.com/alkime/postcraft/pkg/collections"
)

// CSV renders one double-quoted record per post body, inner quotes doubled,
// records joined by newline. No header row. Empty input yields "".
func CSV(posts []post.Post) string {
	if len(posts) == 0 {
		return ""
	}
	records := collections.Apply(posts, func(p post.Post) string {
		return `"` + strings.ReplaceAll(p.Post, `"`, `""`) + `"`
	})
	return strings.Join(records, "\n")
}

// Document renders each post as a markdown block with the body and intent
// under their own headings, blocks separated by a horizontal rule. Empty
// input yields "".
func Document(posts []post.Post) string {
	if len(posts) == 0 {
		return ""
	}
	blocks := collections.Apply(posts, func(p post.Post) string {
		return fmt.Sprintf("## 投稿\n\n%s\n\n### 投稿の意図 / フック\n\n%s", p.Post, p.Intent)
	})
	return strings.Join(blocks, "\n\n---\n\n")
}
