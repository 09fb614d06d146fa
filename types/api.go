package types

import (
	"context"

	"socialnet-cli/shared"
)

type SessionReader interface {
	Read() (shared.Session, error)
}

type ApiClient interface {
	Login(ctx context.Context, req shared.LoginRequest) (*shared.SessionResponse, *shared.ApiError)
	Signup(ctx context.Context, req shared.SignupRequest) (*shared.SessionResponse, *shared.ApiError)

	ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError)
	CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	React(ctx context.Context, postId int64, req shared.ReactionRequest) (*shared.Post, *shared.ApiError)
	DeletePost(ctx context.Context, postId int64) *shared.ApiError

	GetProfile(ctx context.Context) (*shared.Profile, *shared.ApiError)
	UpdateProfile(ctx context.Context, edits shared.ProfileEdits) (*shared.Profile, *shared.ApiError)
}
