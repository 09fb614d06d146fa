package lib

import (
	"context"
	"sync"
	"testing"

	"socialnet-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPosts() []*shared.Post {
	return []*shared.Post{
		{Id: 43, Author: "bob", Description: "beach", LikesCount: 2},
		{Id: 42, Author: "alice", Description: "mountain", DislikesCount: 4},
		{Id: 7, Author: "alice", Description: "city"},
	}
}

func loadedFeed(t *testing.T, client *fakeClient) *Feed {
	feed := NewFeed(client)
	require.NoError(t, feed.LoadAll(context.Background()))
	return feed
}

func TestLoadAllKeepsServerOrder(t *testing.T) {
	client := &fakeClient{posts: testPosts()}
	feed := loadedFeed(t, client)

	posts := feed.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, []int64{43, 42, 7}, ids(posts))
	assert.True(t, feed.Loaded())
}

func TestLoadAllDropsDuplicateIds(t *testing.T) {
	posts := append(testPosts(), &shared.Post{Id: 42, Author: "mallory"})
	client := &fakeClient{posts: posts}
	feed := loadedFeed(t, client)

	assert.Equal(t, []int64{43, 42, 7}, ids(feed.Posts()))
	assert.Equal(t, "alice", feed.Find(42).Author)
}

func TestLoadAllFailureKeepsPrior(t *testing.T) {
	client := &fakeClient{posts: testPosts()}
	feed := loadedFeed(t, client)
	before := feed.Posts()

	client.postsErr = serverErr
	err := feed.LoadAll(context.Background())
	require.Error(t, err)

	assert.Equal(t, before, feed.Posts())
}

func TestLoadAllFirstFailureLeavesEmpty(t *testing.T) {
	feed := NewFeed(&fakeClient{postsErr: serverErr})

	require.Error(t, feed.LoadAll(context.Background()))
	assert.Empty(t, feed.Posts())
	assert.False(t, feed.Loaded())
}

func TestReactReplacesOnlyTarget(t *testing.T) {
	client := &fakeClient{
		posts: testPosts(),
		reactions: map[int64]*shared.Post{
			42: {Id: 42, Author: "alice", Description: "mountain", DislikesCount: 5, UserReaction: shared.ReactionDislike},
		},
	}
	feed := loadedFeed(t, client)
	before := feed.Posts()

	updated, err := feed.React(context.Background(), 42, shared.ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, shared.ReactionDislike, client.lastReaction.Reaction)

	after := feed.Posts()
	assert.Equal(t, []int64{43, 42, 7}, ids(after))

	assert.Same(t, updated, after[1])
	assert.Equal(t, 5, after[1].DislikesCount)
	assert.Equal(t, shared.ReactionDislike, after[1].UserReaction)

	// other entries keep identity and content
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[2], after[2])
	assert.Equal(t, 2, after[0].LikesCount)
	assert.Equal(t, shared.ReactionNone, after[0].UserReaction)

	// the earlier snapshot is not rewritten
	assert.Equal(t, 4, before[1].DislikesCount)
}

func TestReactFailureLeavesFeedUnchanged(t *testing.T) {
	client := &fakeClient{posts: testPosts(), reactErr: serverErr}
	feed := loadedFeed(t, client)
	before := feed.Posts()

	_, err := feed.React(context.Background(), 42, shared.ReactionLike)
	require.Error(t, err)

	after := feed.Posts()
	for i := range before {
		assert.Same(t, before[i], after[i])
	}
}

func TestReactInvalidKindSendsNothing(t *testing.T) {
	client := &fakeClient{posts: testPosts()}
	feed := loadedFeed(t, client)

	_, err := feed.React(context.Background(), 42, shared.Reaction("love"))

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotContains(t, client.Calls(), "React")
}

func TestReactUnknownPostLeavesFeed(t *testing.T) {
	client := &fakeClient{
		posts: testPosts(),
		reactions: map[int64]*shared.Post{
			99: {Id: 99, Author: "carol", LikesCount: 1, UserReaction: shared.ReactionLike},
		},
	}
	feed := loadedFeed(t, client)

	updated, err := feed.React(context.Background(), 99, shared.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(99), updated.Id)
	assert.Equal(t, []int64{43, 42, 7}, ids(feed.Posts()))
}

func TestConcurrentReactionsCommute(t *testing.T) {
	client := &fakeClient{
		posts: testPosts(),
		reactions: map[int64]*shared.Post{
			43: {Id: 43, Author: "bob", LikesCount: 3, UserReaction: shared.ReactionLike},
			42: {Id: 42, Author: "alice", LikesCount: 1, UserReaction: shared.ReactionLike},
			7:  {Id: 7, Author: "alice", DislikesCount: 1, UserReaction: shared.ReactionDislike},
		},
	}
	feed := loadedFeed(t, client)

	var wg sync.WaitGroup
	for _, id := range []int64{43, 42, 7} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := feed.React(context.Background(), id, shared.ReactionLike)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	posts := feed.Posts()
	assert.Equal(t, []int64{43, 42, 7}, ids(posts))
	assert.Equal(t, 3, posts[0].LikesCount)
	assert.Equal(t, 1, posts[1].LikesCount)
	assert.Equal(t, shared.ReactionDislike, posts[2].UserReaction)
}

func TestSearchPosts(t *testing.T) {
	posts := testPosts()

	assert.Equal(t, []int64{42, 7}, ids(SearchPosts(posts, "alice")))
	assert.Equal(t, []int64{43}, ids(SearchPosts(posts, "bch")))
	assert.Equal(t, []int64{43, 42, 7}, ids(SearchPosts(posts, "  ")))
	assert.Empty(t, SearchPosts(posts, "zzz"))
}

func ids(posts []*shared.Post) []int64 {
	res := []int64{}
	for _, p := range posts {
		res = append(res, p.Id)
	}
	return res
}
