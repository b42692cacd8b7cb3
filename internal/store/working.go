// Package store holds the session's working posts and the durably saved set.
package store

import (
	"sync"

	"github.com/alkime/postcraft/internal/post"
)

// Working is the ordered in-memory set of current posts. It is replaced
// wholesale on each successful generation and mutated in place by ID on
// adjustment. Safe for concurrent use.
type Working struct {
	mu    sync.RWMutex
	posts []post.Post
}

// NewWorking creates an empty working set.
func NewWorking() *Working {
	return &Working{}
}

// Replace discards the prior contents entirely.
func (w *Working) Replace(posts []post.Post) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.posts = make([]post.Post, len(posts))
	copy(w.posts, posts)
}

// List returns a copy of the current posts in order.
func (w *Working) List() []post.Post {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]post.Post, len(w.posts))
	copy(out, w.posts)
	return out
}

// Get returns the post with the given ID.
func (w *Working) Get(id string) (post.Post, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, p := range w.posts {
		if p.ID == id {
			return p, true
		}
	}
	return post.Post{}, false
}

// Update replaces the entry whose ID matches. A miss is a no-op; it only
// happens when a result lands after the set was replaced.
func (w *Working) Update(id string, p post.Post) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.posts {
		if w.posts[i].ID == id {
			p.ID = id
			w.posts[i] = p
			return true
		}
	}
	return false
}

// Len reports the number of working posts.
func (w *Working) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.posts)
}
