package lib

import (
	"context"
	"log"

	"socialnet-cli/shared"
)

type PostCreator interface {
	CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
}

// CreatePost validates the upload locally and then sends it.
func CreatePost(ctx context.Context, client PostCreator, req shared.CreatePostRequest) (*shared.Post, error) {
	err := ValidateCreatePost(req)
	if err != nil {
		return nil, err
	}

	post, apiErr := client.CreatePost(ctx, req)
	if apiErr != nil {
		log.Printf("error creating post: %v", apiErr)
		return nil, apiErr
	}

	return post, nil
}
