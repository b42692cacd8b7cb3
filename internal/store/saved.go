package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/alkime/postcraft/internal/post"
)

// Persister writes the entire saved set to durable storage. Writes are
// whole-set overwrites; the payload is small and mutations user-triggered.
type Persister interface {
	Load(ctx context.Context) ([]post.Post, error)
	Replace(ctx context.Context, posts []post.Post) error
}

// Saved is the durably persisted set of bookmarked posts, deduplicated by
// post body text. Loaded once at startup, persisted whole on every mutation.
type Saved struct {
	mu        sync.Mutex
	posts     []post.Post
	persister Persister
}

// LoadSaved reads the persisted set. Entries persisted before identifiers
// were introduced get a freshly generated ID, stable for the session.
func LoadSaved(ctx context.Context, persister Persister) (*Saved, error) {
	posts, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved posts: %w", err)
	}
	for i := range posts {
		if posts[i].ID == "" {
			posts[i].ID = uuid.NewString()
		}
	}
	return &Saved{posts: posts, persister: persister}, nil
}

// List returns a copy of the saved posts in insertion order.
func (s *Saved) List() []post.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]post.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Save appends the post unless an entry with identical body text already
// exists, then persists the full set. Duplicate saves are silent no-ops.
func (s *Saved) Save(ctx context.Context, p post.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.posts {
		if existing.Post == p.Post {
			return nil
		}
	}
	s.posts = append(s.posts, p)
	if err := s.persister.Replace(ctx, s.posts); err != nil {
		// Keep memory and disk consistent; the entry is not saved.
		s.posts = s.posts[:len(s.posts)-1]
		return fmt.Errorf("failed to persist saved posts: %w", err)
	}
	return nil
}

// Remove deletes the entry with the matching ID and persists the full set.
// Unknown IDs are no-ops.
func (s *Saved) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, p := range s.posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	removed := s.posts[idx]
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	if err := s.persister.Replace(ctx, s.posts); err != nil {
		restored := make([]post.Post, 0, len(s.posts)+1)
		restored = append(restored, s.posts[:idx]...)
		restored = append(restored, removed)
		restored = append(restored, s.posts[idx:]...)
		s.posts = restored
		return fmt.Errorf("failed to persist saved posts: %w", err)
	}
	return nil
}
