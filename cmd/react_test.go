package cmd

import (
	"context"
	"net/http"
	"testing"

	"socialnet-cli/lib"
	"socialnet-cli/shared"
	"socialnet-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedClient struct {
	types.ApiClient

	posts   []*shared.Post
	reacted map[int64]*shared.Post
	calls   []int64
}

func (c *fakeFeedClient) ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError) {
	res := make([]*shared.Post, len(c.posts))
	for i, p := range c.posts {
		cp := *p
		res[i] = &cp
	}
	return res, nil
}

func (c *fakeFeedClient) React(ctx context.Context, postId int64, req shared.ReactionRequest) (*shared.Post, *shared.ApiError) {
	c.calls = append(c.calls, postId)
	p, ok := c.reacted[postId]
	if !ok {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeNotFound, Status: http.StatusNotFound, Msg: "Not found."}
	}
	return p, nil
}

func TestSendReactionToPostMissingFromFeed(t *testing.T) {
	client := &fakeFeedClient{
		posts: []*shared.Post{{Id: 1, LikesCount: 2}},
		reacted: map[int64]*shared.Post{
			9: {Id: 9, LikesCount: 1, UserReaction: shared.ReactionLike},
		},
	}
	f := lib.NewFeed(client)
	require.NoError(t, f.LoadAll(context.Background()))
	before := f.Posts()

	updated, err := sendReaction(context.Background(), f, 9, shared.ReactionLike)

	require.NoError(t, err)
	assert.Equal(t, []int64{9}, client.calls)
	assert.Equal(t, int64(9), updated.Id)
	assert.Equal(t, shared.ReactionLike, updated.UserReaction)
	assert.Equal(t, before, f.Posts())
}

func TestSendReactionUnknownToServer(t *testing.T) {
	client := &fakeFeedClient{posts: []*shared.Post{{Id: 1}}}
	f := lib.NewFeed(client)
	require.NoError(t, f.LoadAll(context.Background()))

	_, err := sendReaction(context.Background(), f, 404, shared.ReactionDislike)

	var apiErr *shared.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, shared.ApiErrorTypeNotFound, apiErr.Type)
	assert.Equal(t, "Failed to react on post: Not found.", describeAlert(err, "react on post"))
}
