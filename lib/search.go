package lib

import (
	"strings"

	"socialnet-cli/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchPosts narrows posts for display by a fuzzy match on author and
// description. It never touches the Feed itself.
func SearchPosts(posts []*shared.Post, query string) []*shared.Post {
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}

	res := []*shared.Post{}
	for _, p := range posts {
		if fuzzy.MatchFold(query, p.Author) || fuzzy.MatchFold(query, p.Description) {
			res = append(res, p)
		}
	}
	return res
}
