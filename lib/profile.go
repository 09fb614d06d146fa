package lib

import (
	"context"
	"fmt"
	"log"
	"sync"

	"socialnet-cli/shared"
)

type ProfileClient interface {
	GetProfile(ctx context.Context) (*shared.Profile, *shared.ApiError)
	UpdateProfile(ctx context.Context, edits shared.ProfileEdits) (*shared.Profile, *shared.ApiError)
	ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError)
	DeletePost(ctx context.Context, postId int64) *shared.ApiError
}

// ProfileSync holds "my profile" and "my posts", the subsequence of the
// global collection authored by the profile's username.
type ProfileSync struct {
	client ProfileClient

	mu      sync.Mutex
	profile *shared.Profile
	myPosts []*shared.Post
}

func NewProfileSync(client ProfileClient) *ProfileSync {
	return &ProfileSync{client: client}
}

func (s *ProfileSync) Profile() *shared.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *ProfileSync) MyPosts() []*shared.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*shared.Post, len(s.myPosts))
	copy(res, s.myPosts)
	return res
}

// LoadProfileAndOwnPosts fetches the profile and only then the posts, since
// the author filter needs the fresh username. Nothing is committed unless
// both fetches succeed.
func (s *ProfileSync) LoadProfileAndOwnPosts(ctx context.Context) error {
	profile, apiErr := s.client.GetProfile(ctx)
	if apiErr != nil {
		log.Printf("error loading profile: %v", apiErr)
		return apiErr
	}
	if profile == nil {
		return fmt.Errorf("server returned no profile")
	}

	posts, apiErr := s.client.ListPosts(ctx)
	if apiErr != nil {
		log.Printf("error loading posts for profile: %v", apiErr)
		return apiErr
	}

	mine := FilterByAuthor(dedupePosts(posts), profile.Username)

	s.mu.Lock()
	s.profile = profile
	s.myPosts = mine
	s.mu.Unlock()

	return nil
}

// SaveProfile submits the edits, takes the server's profile as the new
// local one and then reloads so "my posts" follows a username change.
func (s *ProfileSync) SaveProfile(ctx context.Context, edits shared.ProfileEdits) error {
	err := ValidateProfileEdits(edits)
	if err != nil {
		return err
	}

	profile, apiErr := s.client.UpdateProfile(ctx, edits)
	if apiErr != nil {
		log.Printf("error updating profile: %v", apiErr)
		return apiErr
	}

	if profile != nil {
		s.mu.Lock()
		s.profile = profile
		s.mu.Unlock()
	}

	err = s.LoadProfileAndOwnPosts(ctx)
	if err != nil {
		return &ProfileReloadError{Err: err}
	}

	return nil
}

// DeletePost removes the post on the server and from "my posts" only. Any
// separately loaded Feed keeps the post until its next LoadAll.
func (s *ProfileSync) DeletePost(ctx context.Context, postId int64) error {
	apiErr := s.client.DeletePost(ctx, postId)
	if apiErr != nil {
		log.Printf("error deleting post %d: %v", postId, apiErr)
		return apiErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*shared.Post, 0, len(s.myPosts))
	for _, p := range s.myPosts {
		if p.Id != postId {
			res = append(res, p)
		}
	}
	s.myPosts = res

	return nil
}

// ProfileReloadError means the profile update went through but the fresh
// profile and posts couldn't be fetched afterwards.
type ProfileReloadError struct {
	Err error
}

func (e *ProfileReloadError) Error() string {
	return fmt.Sprintf("profile saved but reload failed: %v", e.Err)
}

func (e *ProfileReloadError) Unwrap() error {
	return e.Err
}

func FilterByAuthor(posts []*shared.Post, username string) []*shared.Post {
	res := []*shared.Post{}
	for _, p := range posts {
		if p.Author == username {
			res = append(res, p)
		}
	}
	return res
}
