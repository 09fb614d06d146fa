package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"socialnet-cli/shared"
)

func (a *Api) Login(ctx context.Context, req shared.LoginRequest) (*shared.SessionResponse, *shared.ApiError) {
	return a.createSession(ctx, "login/", req)
}

func (a *Api) Signup(ctx context.Context, req shared.SignupRequest) (*shared.SessionResponse, *shared.ApiError) {
	return a.createSession(ctx, "signup/", req)
}

func (a *Api) createSession(ctx context.Context, path string, req any) (*shared.SessionResponse, *shared.ApiError) {
	resp, apiErr := a.doJSON(ctx, a.unauthenticatedClient, http.MethodPost, path, req)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var session shared.SessionResponse
	err := json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, decodeError(err)
	}

	return &session, nil
}

func (a *Api) ListPosts(ctx context.Context) ([]*shared.Post, *shared.ApiError) {
	resp, apiErr := a.doJSON(ctx, a.authenticatedFastClient, http.MethodGet, "posts/", nil)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var posts []*shared.Post
	err := json.NewDecoder(resp.Body).Decode(&posts)
	if err != nil {
		return nil, decodeError(err)
	}

	return posts, nil
}

func (a *Api) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	form := newMultipartForm()
	form.field("description", req.Description)
	if err := form.file("image", req.ImagePath); err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: err.Error()}
	}

	resp, apiErr := a.doMultipart(ctx, http.MethodPost, "posts/", form)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var post shared.Post
	err := json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, decodeError(err)
	}

	return &post, nil
}

func (a *Api) React(ctx context.Context, postId int64, req shared.ReactionRequest) (*shared.Post, *shared.ApiError) {
	path := fmt.Sprintf("posts/%d/react/", postId)

	resp, apiErr := a.doJSON(ctx, a.authenticatedFastClient, http.MethodPost, path, req)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var post shared.Post
	err := json.NewDecoder(resp.Body).Decode(&post)
	if err != nil {
		return nil, decodeError(err)
	}

	return &post, nil
}

func (a *Api) DeletePost(ctx context.Context, postId int64) *shared.ApiError {
	path := fmt.Sprintf("posts/%d/", postId)

	resp, apiErr := a.doJSON(ctx, a.authenticatedFastClient, http.MethodDelete, path, nil)
	if apiErr != nil {
		return apiErr
	}
	resp.Body.Close()

	return nil
}

func (a *Api) GetProfile(ctx context.Context) (*shared.Profile, *shared.ApiError) {
	resp, apiErr := a.doJSON(ctx, a.authenticatedFastClient, http.MethodGet, "profile/", nil)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var profile shared.Profile
	err := json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return nil, decodeError(err)
	}

	return &profile, nil
}

func (a *Api) UpdateProfile(ctx context.Context, edits shared.ProfileEdits) (*shared.Profile, *shared.ApiError) {
	form := newMultipartForm()
	form.field("username", edits.Username)
	form.field("bio", edits.Bio)
	form.field("location", edits.Location)
	form.field("phone", edits.Phone)
	if edits.DateOfBirth != "" {
		form.field("date_of_birth", edits.DateOfBirth)
	}
	if edits.ProfileImagePath != "" {
		if err := form.file("profile_image", edits.ProfileImagePath); err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: err.Error()}
		}
	}

	resp, apiErr := a.doMultipart(ctx, http.MethodPatch, "profile/", form)
	if apiErr != nil {
		return nil, apiErr
	}
	defer resp.Body.Close()

	var profile shared.Profile
	err := json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return nil, decodeError(err)
	}

	return &profile, nil
}

// doJSON sends an optional JSON body and returns the response when the
// status is below 400. The caller closes the body.
func (a *Api) doJSON(ctx context.Context, client *http.Client, method, path string, body any) (*http.Response, *shared.ApiError) {
	var reader io.Reader
	if body != nil {
		reqBytes, err := json.Marshal(body)
		if err != nil {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
		}
		reader = bytes.NewReader(reqBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, a.host+path, reader)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return a.send(client, request)
}

func (a *Api) doMultipart(ctx context.Context, method, path string, form *multipartForm) (*http.Response, *shared.ApiError) {
	contentType, body, err := form.close()
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error building form: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, method, a.host+path, body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Content-Type", contentType)

	return a.send(a.authenticatedSlowClient, request)
}

func (a *Api) send(client *http.Client, request *http.Request) (*http.Response, *shared.ApiError) {
	resp, err := client.Do(request)
	if err != nil {
		return nil, requestError(err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	return resp, nil
}
