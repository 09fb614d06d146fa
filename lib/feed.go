package lib

import (
	"context"
	"fmt"
	"log"
	"sync"

	"socialnet-cli/shared"
)

type FeedClient interface {
	ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError)
	React(ctx context.Context, postId int64, req shared.ReactionRequest) (*shared.Post, *shared.ApiError)
}

// Feed is the local copy of the global post collection, in server order.
// Entries only ever come from server responses: a full load replaces the
// whole sequence and a reaction replaces one entry in place.
type Feed struct {
	client FeedClient

	mu     sync.Mutex
	posts  []*shared.Post
	loaded bool
}

func NewFeed(client FeedClient) *Feed {
	return &Feed{client: client}
}

// Posts returns a copy of the sequence. The entries themselves are shared
// and must not be modified.
func (f *Feed) Posts() []*shared.Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]*shared.Post, len(f.posts))
	copy(res, f.posts)
	return res
}

func (f *Feed) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

func (f *Feed) Find(postId int64) *shared.Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := indexOf(f.posts, postId); i >= 0 {
		return f.posts[i]
	}
	return nil
}

// LoadAll replaces the sequence with the server's current collection. On
// failure the previous sequence is kept.
func (f *Feed) LoadAll(ctx context.Context) error {
	posts, apiErr := f.client.ListPosts(ctx)
	if apiErr != nil {
		log.Printf("error loading posts: %v", apiErr)
		return apiErr
	}

	posts = dedupePosts(posts)

	f.mu.Lock()
	f.posts = posts
	f.loaded = true
	f.mu.Unlock()

	return nil
}

// React sends a like or dislike and swaps the matching entry for the
// server's updated post. Toggle rules live on the server. On failure the
// sequence is unchanged.
func (f *Feed) React(ctx context.Context, postId int64, reaction shared.Reaction) (*shared.Post, error) {
	if !reaction.Valid() {
		return nil, shared.NewValidationError("reaction", fmt.Sprintf("reaction must be 'like' or 'dislike', got '%s'", reaction))
	}

	updated, apiErr := f.client.React(ctx, postId, shared.ReactionRequest{Reaction: reaction})
	if apiErr != nil {
		log.Printf("error reacting to post %d: %v", postId, apiErr)
		return nil, apiErr
	}
	if updated == nil {
		return nil, fmt.Errorf("server returned no post for reaction to %d", postId)
	}

	f.apply(updated)

	return updated, nil
}

func (f *Feed) apply(updated *shared.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := indexOf(f.posts, updated.Id)
	if i < 0 {
		log.Printf("reacted post %d is not in the loaded feed", updated.Id)
		return
	}

	// copy-on-write so earlier Posts() snapshots stay untouched
	posts := make([]*shared.Post, len(f.posts))
	copy(posts, f.posts)
	posts[i] = updated
	f.posts = posts
}

func indexOf(posts []*shared.Post, postId int64) int {
	for i, p := range posts {
		if p.Id == postId {
			return i
		}
	}
	return -1
}

// dedupePosts keeps the first occurrence of each id.
func dedupePosts(posts []*shared.Post) []*shared.Post {
	seen := make(map[int64]bool, len(posts))
	res := make([]*shared.Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		if seen[p.Id] {
			log.Printf("dropping duplicate post %d from list response", p.Id)
			continue
		}
		seen[p.Id] = true
		res = append(res, p)
	}
	return res
}
