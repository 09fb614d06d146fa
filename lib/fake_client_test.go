package lib

import (
	"context"
	"sync"

	"socialnet-cli/shared"
)

// fakeClient records calls in order and serves canned responses.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	profile       *shared.Profile
	profileErr    *shared.ApiError
	posts         []*shared.Post
	postsErr      *shared.ApiError
	reactions     map[int64]*shared.Post
	reactErr      *shared.ApiError
	updated       *shared.Profile
	updateErr     *shared.ApiError
	deleteErr     *shared.ApiError
	lastEdits     shared.ProfileEdits
	lastReaction  shared.ReactionRequest
	createdPost   *shared.Post
	deletedPostId int64

	// runs inside GetProfile, used to change server state between fetches
	onGetProfile func()
}

func (c *fakeClient) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *fakeClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.calls...)
}

func (c *fakeClient) ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError) {
	c.record("ListPosts")
	if c.postsErr != nil {
		return nil, c.postsErr
	}
	// fresh values each time, like a real decode
	res := make([]*shared.Post, len(c.posts))
	for i, p := range c.posts {
		cp := *p
		res[i] = &cp
	}
	return res, nil
}

func (c *fakeClient) React(ctx context.Context, postId int64, req shared.ReactionRequest) (*shared.Post, *shared.ApiError) {
	c.record("React")
	c.mu.Lock()
	c.lastReaction = req
	c.mu.Unlock()
	if c.reactErr != nil {
		return nil, c.reactErr
	}
	p := *c.reactions[postId]
	return &p, nil
}

func (c *fakeClient) GetProfile(ctx context.Context) (*shared.Profile, *shared.ApiError) {
	c.record("GetProfile")
	if c.onGetProfile != nil {
		c.onGetProfile()
	}
	if c.profileErr != nil {
		return nil, c.profileErr
	}
	p := *c.profile
	return &p, nil
}

func (c *fakeClient) UpdateProfile(ctx context.Context, edits shared.ProfileEdits) (*shared.Profile, *shared.ApiError) {
	c.record("UpdateProfile")
	c.lastEdits = edits
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	c.profile = c.updated
	p := *c.updated
	return &p, nil
}

func (c *fakeClient) DeletePost(ctx context.Context, postId int64) *shared.ApiError {
	c.record("DeletePost")
	c.deletedPostId = postId
	return c.deleteErr
}

func (c *fakeClient) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	c.record("CreatePost")
	return c.createdPost, nil
}

var serverErr = &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "boom"}
